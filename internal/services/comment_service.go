// internal/services/comment_service.go
package services

import (
	"github.com/productfindr/backend/internal/apperrors"
	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/store"
)

// CommentService is the append-only comment log per product. Entries are
// ordered by insertion and never mutated or removed. Unlike upvotes and
// reviews, the product owner is allowed to comment on their own product.
type CommentService struct {
	store *store.Store
}

func NewCommentService(st *store.Store) *CommentService {
	return &CommentService{store: st}
}

// Add appends a comment and returns its index (the prior count).
func (s *CommentService) Add(productID uint64, author, content string) (int, error) {
	var index int
	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Products[productID]; !ok {
			return apperrors.NotFound("Product does not exist")
		}
		if content == "" {
			return apperrors.InvalidInput("Comment content cannot be empty")
		}
		index = len(tx.Comments[productID])
		tx.Comments[productID] = append(tx.Comments[productID], models.Comment{
			ProductID: productID,
			Commenter: author,
			Content:   content,
			CreatedAt: tx.Now,
		})
		return nil
	})
	return index, err
}

func (s *CommentService) getByIndex(tx *store.Tx, productID uint64, index int) (models.Comment, error) {
	if _, ok := tx.Products[productID]; !ok {
		return models.Comment{}, apperrors.NotFound("Product does not exist")
	}
	log := tx.Comments[productID]
	if index < 0 || index >= len(log) {
		return models.Comment{}, apperrors.NotFound("Comment does not exist")
	}
	return log[index], nil
}

func (s *CommentService) GetByIndex(productID uint64, index int) (models.Comment, error) {
	var c models.Comment
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		c, err = s.getByIndex(tx, productID, index)
		return err
	})
	return c, err
}

func (s *CommentService) count(tx *store.Tx, productID uint64) (int, error) {
	// Existence is checked even for this purely informational query.
	if _, ok := tx.Products[productID]; !ok {
		return 0, apperrors.NotFound("Product does not exist")
	}
	return len(tx.Comments[productID]), nil
}

func (s *CommentService) Count(productID uint64) (int, error) {
	var n int
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		n, err = s.count(tx, productID)
		return err
	})
	return n, err
}

func (s *CommentService) list(tx *store.Tx, productID uint64) ([]models.Comment, error) {
	if _, ok := tx.Products[productID]; !ok {
		return nil, apperrors.NotFound("Product does not exist")
	}
	return append([]models.Comment(nil), tx.Comments[productID]...), nil
}

// List returns every comment on the product in insertion order.
func (s *CommentService) List(productID uint64) ([]models.Comment, error) {
	var log []models.Comment
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		log, err = s.list(tx, productID)
		return err
	})
	return log, err
}
