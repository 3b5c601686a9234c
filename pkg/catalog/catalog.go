package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/cache"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

const cacheTTL = 1 * time.Hour

// Vehicle is a catalog entry with its selectable variants.
type Vehicle struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Variants []models.Option `json:"variants"`
}

// Dealer is a showroom reachable from a pincode.
type Dealer struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Pincode   string  `json:"pincode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Service resolves the lookups behind dependent fields: variants for a
// vehicle and dealers for a pincode. Results are cached in Redis when a
// cache client is configured; the in-process seed data is authoritative.
type Service struct {
	cache *cache.Client
	log   logger.Logger
}

// NewService creates a new catalog service. cache may be nil.
func NewService(cacheClient *cache.Client, log logger.Logger) *Service {
	return &Service{cache: cacheClient, log: log}
}

// Vehicles returns the full vehicle catalog.
func (s *Service) Vehicles(ctx context.Context) []Vehicle {
	return vehicles
}

// VehicleByRef finds a vehicle by id or display name, case-insensitive.
func (s *Service) VehicleByRef(ctx context.Context, ref string) (*Vehicle, bool) {
	needle := strings.ToLower(strings.TrimSpace(ref))
	for i := range vehicles {
		if strings.ToLower(vehicles[i].ID) == needle || strings.ToLower(vehicles[i].Name) == needle {
			return &vehicles[i], true
		}
	}
	return nil, false
}

// VariantsFor returns the variant options for a vehicle reference.
// Unknown vehicles yield an empty list, never an error: a cleared or
// bogus driver field must clear its dependents, not fail the session.
func (s *Service) VariantsFor(ctx context.Context, vehicleRef string) []models.Option {
	if vehicleRef == "" {
		return nil
	}

	key := fmt.Sprintf("catalog:variants:%s", strings.ToLower(vehicleRef))
	if opts, ok := s.cachedOptions(ctx, key); ok {
		return opts
	}

	v, found := s.VehicleByRef(ctx, vehicleRef)
	if !found {
		return nil
	}
	s.storeOptions(ctx, key, v.Variants)
	return v.Variants
}

// DealersFor returns dealer options for a full 6-digit pincode. Partial
// pincodes always yield an empty list; no partial matches are shown.
func (s *Service) DealersFor(ctx context.Context, pincode string) []models.Option {
	if len(pincode) != 6 {
		return nil
	}

	key := fmt.Sprintf("catalog:dealers:%s", pincode)
	if opts, ok := s.cachedOptions(ctx, key); ok {
		return opts
	}

	region := pincode[:3]
	out := make([]models.Option, 0)
	for _, d := range dealers {
		if strings.HasPrefix(d.Pincode, region) {
			out = append(out, models.Option{ID: d.ID, Label: fmt.Sprintf("%s, %s", d.Name, d.City)})
		}
	}
	s.storeOptions(ctx, key, out)
	return out
}

// NearestPincode maps device coordinates to the pincode of the closest
// dealer. Squared equirectangular distance is enough at city scale;
// great-circle precision buys nothing here.
func (s *Service) NearestPincode(ctx context.Context, lat, lng float64) (string, bool) {
	if len(dealers) == 0 {
		return "", false
	}

	best := -1
	bestDist := 0.0
	for i, d := range dealers {
		dLat := d.Latitude - lat
		dLng := (d.Longitude - lng) * math.Cos(lat*math.Pi/180)
		dist := dLat*dLat + dLng*dLng
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return dealers[best].Pincode, true
}

// DisplayName resolves an option id within a list to its label,
// falling back to the id itself.
func DisplayName(options []models.Option, id string) string {
	for _, o := range options {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}

func (s *Service) cachedOptions(ctx context.Context, key string) ([]models.Option, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var opts []models.Option
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil, false
	}
	return opts, true
}

func (s *Service) storeOptions(ctx context.Context, key string, opts []models.Option) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, cacheTTL); err != nil && s.log != nil {
		s.log.Warn("catalog cache write failed", "key", key, "error", err)
	}
}
