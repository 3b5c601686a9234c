package store

import (
	"context"
	"errors"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// ErrNotFound is returned when no submission exists for a reference id.
var ErrNotFound = errors.New("submission not found")

// Store durably keeps accepted lead submissions. The schema behind it
// is deliberately opaque: leads are stored as JSON envelopes keyed by
// reference id.
type Store interface {
	Save(ctx context.Context, lead *models.LeadSubmission) error
	Get(ctx context.Context, referenceID string) (*models.LeadSubmission, error)
	Count(ctx context.Context) (int64, error)
}
