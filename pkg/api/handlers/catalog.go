package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/api/errors"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// CatalogHandler handles vehicle and dealer lookup endpoints
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// Vehicles godoc
// @Summary List vehicles
// @Description Returns the vehicle catalog with variants.
// @Tags Catalog
// @Produce json
// @Success 200 {array} catalog.Vehicle "Vehicles"
// @Router /api/v1/vehicles [get]
func (h *CatalogHandler) Vehicles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Vehicles(c.Request().Context()))
}

// Variants godoc
// @Summary List variants for a vehicle
// @Description Returns the selectable variants for a vehicle slug or display name.
// @Tags Catalog
// @Produce json
// @Param slug path string true "Vehicle slug or name"
// @Success 200 {array} models.Option "Variants"
// @Failure 404 {object} models.ErrorResponse "Unknown vehicle"
// @Router /api/v1/vehicles/{slug}/variants [get]
func (h *CatalogHandler) Variants(c echo.Context) error {
	ctx := c.Request().Context()
	if _, ok := h.catalog.VehicleByRef(ctx, c.Param("slug")); !ok {
		return errors.NotFound(c, "vehicle")
	}
	return c.JSON(http.StatusOK, h.catalog.VariantsFor(ctx, c.Param("slug")))
}

// Dealers godoc
// @Summary List dealers for a pincode
// @Description Returns dealers serving a full 6-digit pincode. Partial pincodes yield an empty list.
// @Tags Catalog
// @Produce json
// @Param pincode query string true "6-digit pincode"
// @Success 200 {array} models.Option "Dealers"
// @Router /api/v1/dealers [get]
func (h *CatalogHandler) Dealers(c echo.Context) error {
	opts := h.catalog.DealersFor(c.Request().Context(), c.QueryParam("pincode"))
	if opts == nil {
		opts = []models.Option{}
	}
	return c.JSON(http.StatusOK, opts)
}
