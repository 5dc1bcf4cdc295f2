package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStatsRevenueFromCompletedPackages(t *testing.T) {
	stats := buildStats(
		entityCounts{total: 12, pending: 5, completed: 7},
		entityCounts{total: 3, pending: 1, completed: 2},
		entityCounts{total: 6, pending: 2, completed: 4},
		20, 15,
	)

	assert.EqualValues(t, 2000, stats.Revenue.Total)
	assert.EqualValues(t, 500, stats.Revenue.Average)
	assert.EqualValues(t, 2000, stats.Revenue.Packages)

	assert.EqualValues(t, 12, stats.Quotes.Total)
	assert.EqualValues(t, 5, stats.Quotes.Pending)
	assert.EqualValues(t, 7, stats.Quotes.Completed)
	assert.EqualValues(t, 2, stats.Demos.Completed)
	assert.EqualValues(t, 4, stats.Packages.Completed)
	assert.EqualValues(t, 4, stats.Packages.PaymentCompleted)

	assert.EqualValues(t, 20, stats.Auth.TotalUsers)
	assert.EqualValues(t, 20, stats.Auth.EmailUsers)
	assert.EqualValues(t, 15, stats.Auth.VerifiedUsers)
	assert.EqualValues(t, 15, stats.Auth.ActiveUsers)
}

func TestBuildStatsNoCompletedPackages(t *testing.T) {
	stats := buildStats(entityCounts{}, entityCounts{}, entityCounts{}, 0, 0)

	assert.Zero(t, stats.Packages.Total)
	assert.Zero(t, stats.Revenue.Total)
	assert.Zero(t, stats.Revenue.Average, "average must be 0 when nothing completed, never NaN")
}

func TestBuildStatsTimeBucketsAreZero(t *testing.T) {
	stats := buildStats(
		entityCounts{total: 9, pending: 4, completed: 5},
		entityCounts{total: 9, pending: 4, completed: 5},
		entityCounts{total: 9, pending: 4, completed: 5},
		9, 9,
	)

	assert.Zero(t, stats.Quotes.Today)
	assert.Zero(t, stats.Quotes.ThisWeek)
	assert.Zero(t, stats.Quotes.ThisMonth)
	assert.Zero(t, stats.Packages.Today)
	assert.Zero(t, stats.Auth.ThisMonth)
}
