package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
)

func testEngine() *Engine {
	return NewEngine(catalog.NewService(nil, logger.New("error", "text")), logger.New("error", "text"))
}

type stubLocator struct {
	pincode string
	err     error
}

func (l stubLocator) ResolvePincode(context.Context) (string, error) {
	return l.pincode, l.err
}

func TestEngine_SetVehiclePopulatesVariants(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	s := NewState(d)

	s, res := e.ApplyEvent(context.Background(), d, s, Event{Type: EventSetField, Field: "vehicle", Value: "jupiter"})
	require.True(t, res.Valid())
	assert.NotEmpty(t, s.DependentOptions["availableVariants"])
}

func TestEngine_VehicleByDisplayName(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	s := NewState(d)

	s, res := e.ApplyEvent(context.Background(), d, s, Event{Type: EventSetField, Field: "vehicle", Value: "TVS Jupiter"})
	require.True(t, res.Valid())
	assert.NotEmpty(t, s.DependentOptions["availableVariants"])
}

func TestEngine_PartialPincodeYieldsNoDealers(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	s := NewState(d)

	s, res := e.ApplyEvent(context.Background(), d, s, Event{Type: EventSetField, Field: "pincode", Value: "4000"})
	require.True(t, res.Valid())
	assert.Empty(t, s.DependentOptions["availableDealers"])

	s, res = e.ApplyEvent(context.Background(), d, s, Event{Type: EventSetField, Field: "pincode", Value: "400001"})
	require.True(t, res.Valid())
	assert.NotEmpty(t, s.DependentOptions["availableDealers"])
}

func TestEngine_ChangingVehicleSwapsVariantList(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	ctx := context.Background()
	s := NewState(d)

	s, _ = e.ApplyEvent(ctx, d, s, Event{Type: EventSetField, Field: "vehicle", Value: "jupiter"})
	s, _ = e.ApplyEvent(ctx, d, s, Event{Type: EventSetField, Field: "variant", Value: "jupiter-zx"})

	s, _ = e.ApplyEvent(ctx, d, s, Event{Type: EventSetField, Field: "vehicle", Value: "ntorq"})
	assert.Empty(t, s.Fields["variant"])

	options := s.DependentOptions["availableVariants"]
	require.NotEmpty(t, options)
	for _, o := range options {
		assert.NotContains(t, o.ID, "jupiter", "old vehicle's variants must be gone")
	}
}

func TestEngine_UnknownVehicleClearsOptions(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	ctx := context.Background()
	s := NewState(d)

	s, _ = e.ApplyEvent(ctx, d, s, Event{Type: EventSetField, Field: "vehicle", Value: "jupiter"})
	require.NotEmpty(t, s.DependentOptions["availableVariants"])

	s, res := e.ApplyEvent(ctx, d, s, Event{Type: EventSetField, Field: "vehicle", Value: "hoverboard"})
	require.True(t, res.Valid(), "an unknown vehicle is a schema-valid string; it just has no variants")
	assert.Empty(t, s.DependentOptions["availableVariants"])
}

func TestEngine_AutoLocate(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	s := NewState(d)

	s, res, err := e.AutoLocate(context.Background(), d, s, stubLocator{pincode: "400001"})
	require.NoError(t, err)
	require.True(t, res.Valid())
	assert.Equal(t, "400001", s.Fields["pincode"])
	assert.NotEmpty(t, s.DependentOptions["availableDealers"])
}

func TestEngine_AutoLocateErrorLeavesStateUntouched(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	s := NewState(d)

	got, _, err := e.AutoLocate(context.Background(), d, s, stubLocator{err: errors.New("denied")})
	assert.Error(t, err)
	assert.Empty(t, got.Fields["pincode"])
}

func TestEngine_AutoLocateCanceledContext(t *testing.T) {
	d := testRideDescriptor(t)
	e := testEngine()
	s := NewState(d)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := e.AutoLocate(ctx, d, s, stubLocator{pincode: "400001"})
	assert.ErrorIs(t, err, context.Canceled)
}
