// internal/services/review_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/productfindr/backend/internal/apperrors"
)

func TestReviewValidation(t *testing.T) {
	env := newTestEnv()

	_, err := env.reviews.Add("reviewer", 1, "great", 5)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	id, err := env.products.Register("owner", sampleDetails(), false, nil)
	require.NoError(t, err)

	_, err = env.reviews.Add("owner", id, "great", 5)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	assert.EqualError(t, err, "Product owner cannot review their own product")

	_, err = env.reviews.Add("reviewer", id, "", 5)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))

	for _, rating := range []int{0, 6, -1} {
		_, err = env.reviews.Add("reviewer", id, "great", rating)
		require.Error(t, err)
		assert.EqualError(t, err, "Rating must be between 1 and 5")
	}
}

func TestReviewUpsertKeepsIndex(t *testing.T) {
	env := newTestEnv()
	id, err := env.products.Register("owner", sampleDetails(), false, nil)
	require.NoError(t, err)

	index, err := env.reviews.Add("alice", id, "first impression", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = env.reviews.Add("bob", id, "solid", 4)
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	firstSeen := env.clock.Now()
	env.clock.Advance(2 * time.Hour)

	// A second submission rewrites alice's entry in place.
	index, err = env.reviews.Add("alice", id, "changed my mind", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	count, err := env.reviews.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	r, err := env.reviews.GetByIndex(id, 0)
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", r.Content)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, firstSeen, r.CreatedAt)
	assert.Equal(t, env.clock.Now(), r.UpdatedAt)

	reviewer, err := env.reviews.ReviewerOf(id, 0)
	require.NoError(t, err)
	assert.Equal(t, "alice", reviewer)
}

func TestReviewUpdateIsIdempotentWithAdd(t *testing.T) {
	env := newTestEnv()
	id, err := env.products.Register("owner", sampleDetails(), false, nil)
	require.NoError(t, err)

	index, err := env.reviews.Update("alice", id, "via update", 2)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = env.reviews.Update("alice", id, "via update again", 4)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	count, err := env.reviews.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReviewIndexOutOfRange(t *testing.T) {
	env := newTestEnv()
	id, err := env.products.Register("owner", sampleDetails(), false, nil)
	require.NoError(t, err)

	_, err = env.reviews.GetByIndex(id, 0)
	require.Error(t, err)
	assert.EqualError(t, err, "Review does not exist")

	_, err = env.reviews.ReviewerOf(id, 0)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestOwnerNeverAmongReviewers(t *testing.T) {
	env := newTestEnv()
	id, err := env.products.Register("owner", sampleDetails(), false, nil)
	require.NoError(t, err)

	_, err = env.reviews.Add("alice", id, "fine", 4)
	require.NoError(t, err)
	_, err = env.reviews.Add("owner", id, "the best", 5)
	require.Error(t, err)

	reviews, err := env.reviews.List(id)
	require.NoError(t, err)
	for _, r := range reviews {
		assert.NotEqual(t, "owner", r.Reviewer)
	}
}
