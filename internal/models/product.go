// internal/models/product.go
package models

import "time"

// ProductDetails is the registration payload supplied by the product owner.
// BetaTestingLink is the public display link shown on the product page; the
// structured beta-testing plan is a separate BetaTestingDetails record and the
// two must not be conflated.
type ProductDetails struct {
	ProductName      string `json:"product_name"`
	TagLine          string `json:"tag_line"`
	ProductLink      string `json:"product_link"`
	TwitterLink      string `json:"twitter_link"`
	Description      string `json:"description"`
	IsOpenSource     bool   `json:"is_open_source"`
	Category         string `json:"category"`
	ThumbNail        string `json:"thumb_nail"`
	MediaFile        string `json:"media_file"`
	LoomLink         string `json:"loom_link"`
	WorkedWithTeam   bool   `json:"worked_with_team"`
	TeamMembersInput string `json:"team_members_input"`
	PricingOption    string `json:"pricing_option"`
	Offer            string `json:"offer"`
	PromoCode        string `json:"promo_code"`
	ExpirationDate   string `json:"expiration_date"`
	BetaTestingLink  string `json:"beta_testing_link"`
}

// Product is a registered showcase entry. ID and Owner are immutable once
// assigned; Upvotes always equals len(Upvoters).
type Product struct {
	ID             uint64              `json:"id"`
	Owner          string              `json:"owner"`
	Details        ProductDetails      `json:"details"`
	RegisteredAt   time.Time           `json:"registered_at"`
	Upvotes        int                 `json:"upvotes"`
	Upvoters       map[string]struct{} `json:"-"`
	HasBetaTesting bool                `json:"has_beta_testing"`
}

// Snapshot returns a copy that is safe to hand out to callers.
func (p *Product) Snapshot() Product {
	cp := *p
	cp.Upvoters = make(map[string]struct{}, len(p.Upvoters))
	for voter := range p.Upvoters {
		cp.Upvoters[voter] = struct{}{}
	}
	return cp
}

// BetaTestingDetails is the optional structured beta-testing plan attached 1:1
// to a product. It exists exactly when the product's HasBetaTesting flag is set.
type BetaTestingDetails struct {
	TargetNumbersOfTester int       `json:"target_numbers_of_tester"`
	TestingGoal           string    `json:"testing_goal"`
	Goals                 []string  `json:"goals"`
	StartingDate          time.Time `json:"starting_date"`
	EndingDate            time.Time `json:"ending_date"`
	FeatureLoomLink       string    `json:"feature_loom_link"`
}
