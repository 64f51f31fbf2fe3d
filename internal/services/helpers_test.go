// internal/services/helpers_test.go
package services

import (
	"time"

	"github.com/productfindr/backend/internal/config"
	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/store"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type testEnv struct {
	clock    *fakeClock
	store    *store.Store
	beta     *BetaTestingService
	products *ProductService
	comments *CommentService
	reviews  *ReviewService
	showcase *ShowcaseService
	users    *UserService
}

func newTestEnv() *testEnv {
	clock := newFakeClock()
	st := store.NewWithClock(clock.Now)
	beta := NewBetaTestingService(st)
	products := NewProductService(st, beta, 24*time.Hour)
	comments := NewCommentService(st)
	reviews := NewReviewService(st)
	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
		Listing:     config.ListingConfig{TrialWindowHours: 24},
	}
	return &testEnv{
		clock:    clock,
		store:    st,
		beta:     beta,
		products: products,
		comments: comments,
		reviews:  reviews,
		showcase: NewShowcaseService(st, products, beta, comments, reviews),
		users:    NewUserService(st, cfg),
	}
}

func sampleDetails() models.ProductDetails {
	return models.ProductDetails{
		ProductName:      "Test Product",
		TagLine:          "This is a tagline",
		ProductLink:      "http://product.link",
		TwitterLink:      "http://twitter.link",
		Description:      "This is a test product",
		IsOpenSource:     true,
		Category:         "category",
		ThumbNail:        "http://thumbnail.link",
		MediaFile:        "http://media.file",
		LoomLink:         "http://loom.link",
		WorkedWithTeam:   true,
		TeamMembersInput: "team member",
		PricingOption:    "free",
		Offer:            "offer details",
		PromoCode:        "promo code",
		ExpirationDate:   "2023-12-31",
	}
}

func sampleBetaDetails(now time.Time) *models.BetaTestingDetails {
	return &models.BetaTestingDetails{
		TargetNumbersOfTester: 100,
		TestingGoal:           "Test Goal",
		Goals:                 []string{"Goal 1", "Goal 2"},
		StartingDate:          now,
		EndingDate:            now.Add(24 * time.Hour),
		FeatureLoomLink:       "http://feature.loom.link",
	}
}
