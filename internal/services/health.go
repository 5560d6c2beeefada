package services

import (
	"context"
	"errors"

	"github.com/atria-app/web-mobile-connect/internal/logger"
)

// ErrStoreUnavailable is returned when the document store cannot be reached.
var ErrStoreUnavailable = errors.New("database connection failed")

// CollectionLister exercises a trivial store operation for connectivity
// checks.
type CollectionLister interface {
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// HealthService verifies store connectivity.
type HealthService struct {
	lister CollectionLister
}

// NewHealthService creates a new HealthService instance.
func NewHealthService(lister CollectionLister) *HealthService {
	return &HealthService{lister: lister}
}

// Check probes the store by listing collection names.
func (svc *HealthService) Check(ctx context.Context) error {
	if _, err := svc.lister.ListCollectionNames(ctx); err != nil {
		logger.Log.Errorw("store health check failed", "error", err)
		return ErrStoreUnavailable
	}
	return nil
}
