// internal/services/product_service.go
package services

import (
	"time"

	"github.com/productfindr/backend/internal/apperrors"
	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/store"
)

// ProductService is the authoritative registry of products. Ids are
// sequential starting at 1 and never reused; the owner recorded at
// registration is immutable.
type ProductService struct {
	store       *store.Store
	betaService *BetaTestingService
	trialWindow time.Duration
}

func NewProductService(st *store.Store, betaService *BetaTestingService, trialWindow time.Duration) *ProductService {
	return &ProductService{
		store:       st,
		betaService: betaService,
		trialWindow: trialWindow,
	}
}

// Register stores a new product owned by owner. When betaEnabled is set the
// structured beta plan is forwarded to the beta side table under the new id.
// The operation is all-or-nothing: on any validation failure no record is
// written and the id counter does not move.
func (s *ProductService) Register(owner string, details models.ProductDetails, betaEnabled bool, beta *models.BetaTestingDetails) (uint64, error) {
	var id uint64
	err := s.store.Update(func(tx *store.Tx) error {
		var err error
		id, err = s.register(tx, owner, details, betaEnabled, beta)
		return err
	})
	return id, err
}

func (s *ProductService) register(tx *store.Tx, owner string, details models.ProductDetails, betaEnabled bool, beta *models.BetaTestingDetails) (uint64, error) {
	if details.ProductName == "" {
		return 0, apperrors.InvalidInput("Product name cannot be empty")
	}
	if betaEnabled && details.BetaTestingLink == "" {
		return 0, apperrors.InvalidInput("Beta testing link required")
	}

	p := &models.Product{
		Owner:          owner,
		Details:        details,
		RegisteredAt:   tx.Now,
		Upvoters:       make(map[string]struct{}),
		HasBetaTesting: betaEnabled,
	}
	id := tx.InsertProduct(p)

	if betaEnabled {
		if beta == nil {
			beta = &models.BetaTestingDetails{}
		}
		s.betaService.set(tx, id, beta)
	}
	return id, nil
}

// Upvote records voter's upvote and returns the new count. The owner may not
// upvote their own product and an address counts at most once.
func (s *ProductService) Upvote(id uint64, voter string) (int, error) {
	var count int
	err := s.store.Update(func(tx *store.Tx) error {
		p, ok := tx.Products[id]
		if !ok {
			return apperrors.NotFound("Product does not exist")
		}
		if voter == p.Owner {
			return apperrors.Forbidden("Product owner cannot upvote their own product")
		}
		if _, voted := p.Upvoters[voter]; voted {
			return apperrors.AlreadyDone("User has already upvoted this product")
		}
		p.Upvoters[voter] = struct{}{}
		p.Upvotes++
		count = p.Upvotes
		return nil
	})
	return count, err
}

// Delete removes the product from the live set permanently. Only the owner
// may delete; the id is never recycled.
func (s *ProductService) Delete(id uint64, caller string) error {
	return s.store.Update(func(tx *store.Tx) error {
		p, ok := tx.Products[id]
		if !ok {
			return apperrors.NotFound("Product does not exist")
		}
		if caller != p.Owner {
			return apperrors.Forbidden("Only the product owner can perform this action")
		}
		tx.RemoveProduct(id)
		return nil
	})
}

func (s *ProductService) get(tx *store.Tx, id uint64) (models.Product, error) {
	p, ok := tx.Products[id]
	if !ok {
		return models.Product{}, apperrors.NotFound("Product does not exist")
	}
	return p.Snapshot(), nil
}

// Get returns a read-only snapshot of the product.
func (s *ProductService) Get(id uint64) (models.Product, error) {
	var p models.Product
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		p, err = s.get(tx, id)
		return err
	})
	return p, err
}

// ListIDs returns all currently-live ids in original registration order.
// The result is an unbounded snapshot; there is no pagination.
func (s *ProductService) ListIDs() []uint64 {
	var ids []uint64
	s.store.View(func(tx *store.Tx) error {
		ids = tx.ProductIDs()
		return nil
	})
	return ids
}

func (s *ProductService) canBeListed(tx *store.Tx, id uint64) (bool, error) {
	p, ok := tx.Products[id]
	if !ok {
		return false, apperrors.NotFound("Product does not exist")
	}
	return !tx.Now.Before(p.RegisteredAt.Add(s.trialWindow)), nil
}

// CanBeListed reports whether the anti-spam trial window has elapsed for the
// product. It is a pure function of the registration timestamp and the
// operation's single clock sample.
func (s *ProductService) CanBeListed(id uint64) (bool, error) {
	var listed bool
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		listed, err = s.canBeListed(tx, id)
		return err
	})
	return listed, err
}

// ListedProducts returns snapshots of every product whose trial window has
// elapsed, in registration order.
func (s *ProductService) ListedProducts() []models.Product {
	var listed []models.Product
	s.store.View(func(tx *store.Tx) error {
		for _, id := range tx.ProductIDs() {
			p := tx.Products[id]
			if !tx.Now.Before(p.RegisteredAt.Add(s.trialWindow)) {
				listed = append(listed, p.Snapshot())
			}
		}
		return nil
	})
	return listed
}

// UpdateBetaTestingLink replaces the display link on the product details. The
// structured beta-testing record is untouched; the two are distinct fields.
func (s *ProductService) UpdateBetaTestingLink(id uint64, caller, newLink string) error {
	return s.store.Update(func(tx *store.Tx) error {
		p, ok := tx.Products[id]
		if !ok {
			return apperrors.NotFound("Product does not exist")
		}
		if caller != p.Owner {
			return apperrors.Forbidden("Only the product owner can perform this action")
		}
		p.Details.BetaTestingLink = newLink
		return nil
	})
}
