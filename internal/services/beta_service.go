// internal/services/beta_service.go
package services

import (
	"github.com/productfindr/backend/internal/apperrors"
	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/store"
)

// BetaTestingService owns the strict 1:1 side table of beta-testing plans
// keyed by product id. It has no identity or lifecycle of its own: a record
// exists exactly while the owning product's HasBetaTesting flag says so.
type BetaTestingService struct {
	store *store.Store
}

func NewBetaTestingService(st *store.Store) *BetaTestingService {
	return &BetaTestingService{store: st}
}

// set overwrites unconditionally (last-write-wins). Only the registration
// path calls it.
func (s *BetaTestingService) set(tx *store.Tx, productID uint64, details *models.BetaTestingDetails) {
	cp := *details
	if details.Goals != nil {
		cp.Goals = append([]string(nil), details.Goals...)
	}
	tx.Beta[productID] = &cp
}

func (s *BetaTestingService) get(tx *store.Tx, productID uint64) (models.BetaTestingDetails, error) {
	d, ok := tx.Beta[productID]
	if !ok {
		return models.BetaTestingDetails{}, apperrors.NotFound("Beta testing details do not exist")
	}
	cp := *d
	cp.Goals = append([]string(nil), d.Goals...)
	return cp, nil
}

func (s *BetaTestingService) Get(productID uint64) (models.BetaTestingDetails, error) {
	var details models.BetaTestingDetails
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		details, err = s.get(tx, productID)
		return err
	})
	return details, err
}
