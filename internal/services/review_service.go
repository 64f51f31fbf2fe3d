// internal/services/review_service.go
package services

import (
	"github.com/productfindr/backend/internal/apperrors"
	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/store"
)

// ReviewService keeps one live review per (product, reviewer). A second
// submission by the same reviewer rewrites the existing entry in place and
// keeps its index; the (product, reviewer) -> index map makes that path O(1)
// instead of a scan over the log.
type ReviewService struct {
	store *store.Store
}

func NewReviewService(st *store.Store) *ReviewService {
	return &ReviewService{store: st}
}

// Add records or rewrites reviewer's review and returns its index.
func (s *ReviewService) Add(reviewer string, productID uint64, content string, rating int) (int, error) {
	var index int
	err := s.store.Update(func(tx *store.Tx) error {
		p, ok := tx.Products[productID]
		if !ok {
			return apperrors.NotFound("Product does not exist")
		}
		if reviewer == p.Owner {
			return apperrors.Forbidden("Product owner cannot review their own product")
		}
		if content == "" {
			return apperrors.InvalidInput("Review content cannot be empty")
		}
		if rating < 1 || rating > 5 {
			return apperrors.InvalidInput("Rating must be between 1 and 5")
		}

		if i, exists := tx.ReviewIndex[productID][reviewer]; exists {
			r := &tx.Reviews[productID][i]
			r.Content = content
			r.Rating = rating
			r.UpdatedAt = tx.Now
			index = i
			return nil
		}

		index = len(tx.Reviews[productID])
		tx.Reviews[productID] = append(tx.Reviews[productID], models.Review{
			ProductID: productID,
			Reviewer:  reviewer,
			Content:   content,
			Rating:    rating,
			CreatedAt: tx.Now,
			UpdatedAt: tx.Now,
		})
		if tx.ReviewIndex[productID] == nil {
			tx.ReviewIndex[productID] = make(map[string]int)
		}
		tx.ReviewIndex[productID][reviewer] = index
		return nil
	})
	return index, err
}

// Update shares Add's code path entirely: resubmitting is the idempotent
// upsert, creating on first call and mutating in place afterwards.
func (s *ReviewService) Update(reviewer string, productID uint64, content string, rating int) (int, error) {
	return s.Add(reviewer, productID, content, rating)
}

func (s *ReviewService) getByIndex(tx *store.Tx, productID uint64, index int) (models.Review, error) {
	if _, ok := tx.Products[productID]; !ok {
		return models.Review{}, apperrors.NotFound("Product does not exist")
	}
	log := tx.Reviews[productID]
	if index < 0 || index >= len(log) {
		return models.Review{}, apperrors.NotFound("Review does not exist")
	}
	return log[index], nil
}

func (s *ReviewService) GetByIndex(productID uint64, index int) (models.Review, error) {
	var r models.Review
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		r, err = s.getByIndex(tx, productID, index)
		return err
	})
	return r, err
}

func (s *ReviewService) count(tx *store.Tx, productID uint64) (int, error) {
	if _, ok := tx.Products[productID]; !ok {
		return 0, apperrors.NotFound("Product does not exist")
	}
	return len(tx.Reviews[productID]), nil
}

func (s *ReviewService) Count(productID uint64) (int, error) {
	var n int
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		n, err = s.count(tx, productID)
		return err
	})
	return n, err
}

// ReviewerOf returns the identity behind the review at index.
func (s *ReviewService) ReviewerOf(productID uint64, index int) (string, error) {
	r, err := s.GetByIndex(productID, index)
	if err != nil {
		return "", err
	}
	return r.Reviewer, nil
}

func (s *ReviewService) list(tx *store.Tx, productID uint64) ([]models.Review, error) {
	if _, ok := tx.Products[productID]; !ok {
		return nil, apperrors.NotFound("Product does not exist")
	}
	return append([]models.Review(nil), tx.Reviews[productID]...), nil
}

// List returns every review on the product in first-submission order.
func (s *ReviewService) List(productID uint64) ([]models.Review, error) {
	var log []models.Review
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		log, err = s.list(tx, productID)
		return err
	})
	return log, err
}
