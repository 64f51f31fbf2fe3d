// internal/services/showcase_service.go
package services

import (
	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/store"
)

// ShowcaseService is the facade composing the registry, the beta side table
// and the two engagement ledgers behind one API. It holds no state of its
// own.
//
// Identity contract: every entry point takes the true actor's identity as an
// explicit argument, fixed once at the HTTP boundary, and forwards it
// unchanged into every downstream call. Nothing below this layer re-derives
// "who is calling" — the facade itself would be the observed caller, and
// every person-sensitive rule (no self-upvote, no self-review, owner-only
// delete, per-address uniqueness) would silently break.
type ShowcaseService struct {
	store    *store.Store
	products *ProductService
	beta     *BetaTestingService
	comments *CommentService
	reviews  *ReviewService
}

// ProductView is the composed read: the product snapshot plus its structured
// beta plan when one exists.
type ProductView struct {
	Product     models.Product             `json:"product"`
	BetaTesting *models.BetaTestingDetails `json:"beta_testing,omitempty"`
}

func NewShowcaseService(st *store.Store, products *ProductService, beta *BetaTestingService, comments *CommentService, reviews *ReviewService) *ShowcaseService {
	return &ShowcaseService{
		store:    st,
		products: products,
		beta:     beta,
		comments: comments,
		reviews:  reviews,
	}
}

// RegisterProduct forwards verbatim to the registry with identical
// validation semantics.
func (s *ShowcaseService) RegisterProduct(actor string, details models.ProductDetails, betaEnabled bool, beta *models.BetaTestingDetails) (uint64, error) {
	return s.products.Register(actor, details, betaEnabled, beta)
}

// GetProduct assembles the product and its beta plan under one store view so
// no interleaving write can be observed as a partial update.
func (s *ShowcaseService) GetProduct(id uint64) (ProductView, error) {
	var view ProductView
	err := s.store.View(func(tx *store.Tx) error {
		p, err := s.products.get(tx, id)
		if err != nil {
			return err
		}
		view.Product = p
		if p.HasBetaTesting {
			d, err := s.beta.get(tx, id)
			if err != nil {
				return err
			}
			view.BetaTesting = &d
		}
		return nil
	})
	return view, err
}

func (s *ShowcaseService) UpvoteProduct(id uint64, actor string) (int, error) {
	return s.products.Upvote(id, actor)
}

func (s *ShowcaseService) DeleteProduct(id uint64, actor string) error {
	return s.products.Delete(id, actor)
}

func (s *ShowcaseService) UpdateBetaTestingLink(id uint64, actor, newLink string) error {
	return s.products.UpdateBetaTestingLink(id, actor, newLink)
}

func (s *ShowcaseService) ListedProducts() []models.Product {
	return s.products.ListedProducts()
}

func (s *ShowcaseService) CanBeListed(id uint64) (bool, error) {
	return s.products.CanBeListed(id)
}

func (s *ShowcaseService) CommentOnProduct(id uint64, actor, content string) (int, error) {
	return s.comments.Add(id, actor, content)
}

func (s *ShowcaseService) GetComment(id uint64, index int) (models.Comment, error) {
	return s.comments.GetByIndex(id, index)
}

func (s *ShowcaseService) GetComments(id uint64) ([]models.Comment, error) {
	return s.comments.List(id)
}

func (s *ShowcaseService) GetCommentsCount(id uint64) (int, error) {
	return s.comments.Count(id)
}

func (s *ShowcaseService) AddReview(actor string, id uint64, content string, rating int) (int, error) {
	return s.reviews.Add(actor, id, content, rating)
}

func (s *ShowcaseService) UpdateReview(actor string, id uint64, content string, rating int) (int, error) {
	return s.reviews.Update(actor, id, content, rating)
}

func (s *ShowcaseService) GetReview(id uint64, index int) (models.Review, error) {
	return s.reviews.GetByIndex(id, index)
}

func (s *ShowcaseService) GetReviews(id uint64) ([]models.Review, error) {
	return s.reviews.List(id)
}

func (s *ShowcaseService) GetReviewsCount(id uint64) (int, error) {
	return s.reviews.Count(id)
}

func (s *ShowcaseService) GetReviewer(id uint64, index int) (string, error) {
	return s.reviews.ReviewerOf(id, index)
}
