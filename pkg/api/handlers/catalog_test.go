package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

func newCatalogHandler(t *testing.T) *CatalogHandler {
	t.Helper()
	return NewCatalogHandler(catalog.NewService(nil, logger.New("error", "text")))
}

func TestCatalogVehicles(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Vehicles(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var vehicles []catalog.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	assert.NotEmpty(t, vehicles)

	slugs := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		slugs = append(slugs, v.ID)
	}
	assert.Contains(t, slugs, "jupiter")
}

func TestCatalogVariants(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/jupiter/variants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("jupiter")

	require.NoError(t, h.Variants(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var variants []models.Option
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &variants))
	assert.NotEmpty(t, variants)
}

func TestCatalogVariantsUnknownVehicle(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/hoverboard/variants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("hoverboard")

	require.NoError(t, h.Variants(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogDealers(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dealers?pincode=400001", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Dealers(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var dealers []models.Option
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dealers))
	assert.NotEmpty(t, dealers)
}

func TestCatalogDealersPartialPincode(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dealers?pincode=4000", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Dealers(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	// Partial pincodes yield an empty list, not null and not an error.
	assert.JSONEq(t, "[]", rec.Body.String())
}
