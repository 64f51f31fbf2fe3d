// internal/services/showcase_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/productfindr/backend/internal/apperrors"
)

func TestComposedGetProductWithoutBeta(t *testing.T) {
	env := newTestEnv()

	id, err := env.showcase.RegisterProduct("owner", sampleDetails(), false, nil)
	require.NoError(t, err)

	view, err := env.showcase.GetProduct(id)
	require.NoError(t, err)
	assert.Equal(t, "Test Product", view.Product.Details.ProductName)
	assert.Nil(t, view.BetaTesting)
}

func TestComposedGetProductWithBeta(t *testing.T) {
	env := newTestEnv()

	details := sampleDetails()
	details.BetaTestingLink = "http://beta.testing/link"
	id, err := env.showcase.RegisterProduct("owner", details, true, sampleBetaDetails(env.clock.Now()))
	require.NoError(t, err)

	view, err := env.showcase.GetProduct(id)
	require.NoError(t, err)
	assert.True(t, view.Product.HasBetaTesting)
	require.NotNil(t, view.BetaTesting)
	assert.Equal(t, "Test Goal", view.BetaTesting.TestingGoal)
	assert.Equal(t, 100, view.BetaTesting.TargetNumbersOfTester)
}

func TestRegisterForwardsValidationVerbatim(t *testing.T) {
	env := newTestEnv()

	details := sampleDetails()
	details.BetaTestingLink = ""
	_, err := env.showcase.RegisterProduct("owner", details, true, sampleBetaDetails(env.clock.Now()))
	require.Error(t, err)
	assert.EqualError(t, err, "Beta testing link required")

	// The rejected call must not have created anything.
	_, err = env.showcase.GetProduct(1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDisplayLinkDistinctFromBetaRecord(t *testing.T) {
	env := newTestEnv()

	details := sampleDetails()
	details.BetaTestingLink = "http://beta.testing/link"
	beta := sampleBetaDetails(env.clock.Now())
	id, err := env.showcase.RegisterProduct("owner", details, true, beta)
	require.NoError(t, err)

	err = env.showcase.UpdateBetaTestingLink(id, "intruder", "http://hijacked.link")
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	require.NoError(t, env.showcase.UpdateBetaTestingLink(id, "owner", "http://updated.link"))

	// Only the display link moves; the structured plan is untouched.
	view, err := env.showcase.GetProduct(id)
	require.NoError(t, err)
	assert.Equal(t, "http://updated.link", view.Product.Details.BetaTestingLink)
	require.NotNil(t, view.BetaTesting)
	assert.Equal(t, "http://feature.loom.link", view.BetaTesting.FeatureLoomLink)
	assert.Equal(t, beta.StartingDate, view.BetaTesting.StartingDate)
}

// The facade forwards the explicit actor identity into every downstream
// check; the full lifecycle from the product owner's and two voters'
// perspectives exercises each identity-sensitive rule.
func TestShowcaseLifecycle(t *testing.T) {
	env := newTestEnv()
	owner := "user-O"
	voter := "user-U1"

	id, err := env.showcase.RegisterProduct(owner, sampleDetails(), false, nil)
	require.NoError(t, err)

	count, err := env.showcase.UpvoteProduct(id, voter)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = env.showcase.UpvoteProduct(id, owner)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = env.showcase.UpvoteProduct(id, voter)
	assert.Equal(t, apperrors.KindAlreadyDone, apperrors.KindOf(err))

	err = env.showcase.DeleteProduct(id, voter)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	require.NoError(t, env.showcase.DeleteProduct(id, owner))

	_, err = env.showcase.GetProduct(id)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestShowcaseEngagementForwarding(t *testing.T) {
	env := newTestEnv()

	id, err := env.showcase.RegisterProduct("owner", sampleDetails(), false, nil)
	require.NoError(t, err)

	index, err := env.showcase.CommentOnProduct(id, "alice", "This is a comment")
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	c, err := env.showcase.GetComment(id, 0)
	require.NoError(t, err)
	assert.Equal(t, "This is a comment", c.Content)

	n, err := env.showcase.GetCommentsCount(id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	index, err = env.showcase.AddReview("alice", id, "This is a review", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	r, err := env.showcase.GetReview(id, 0)
	require.NoError(t, err)
	assert.Equal(t, "This is a review", r.Content)

	reviewer, err := env.showcase.GetReviewer(id, 0)
	require.NoError(t, err)
	assert.Equal(t, "alice", reviewer)

	n, err = env.showcase.GetReviewsCount(id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
