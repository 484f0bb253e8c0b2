package services

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture(boosted bool, tierRank int, createdAt time.Time) dto.RankedPost {
	return dto.RankedPost{
		ID:        uuid.New(),
		IsBoosted: boosted,
		TierRank:  tierRank,
		CreatedAt: createdAt,
	}
}

func TestRankLess(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("boosted free post outranks unboosted VIP", func(t *testing.T) {
		boostedFree := rankedFixture(true, models.TierFree.Rank(), now.Add(-time.Hour))
		vip := rankedFixture(false, models.TierVIP.Rank(), now)

		assert.True(t, RankLess(boostedFree, vip))
		assert.False(t, RankLess(vip, boostedFree))
	})

	t.Run("higher tier wins within the unboosted band", func(t *testing.T) {
		express := rankedFixture(false, models.TierExpress.Rank(), now.Add(-time.Hour))
		priority := rankedFixture(false, models.TierPriority.Rank(), now)

		assert.True(t, RankLess(express, priority))
	})

	t.Run("recency breaks ties", func(t *testing.T) {
		older := rankedFixture(false, models.TierPriority.Rank(), now.Add(-time.Hour))
		newer := rankedFixture(false, models.TierPriority.Rank(), now)

		assert.True(t, RankLess(newer, older))
		assert.False(t, RankLess(older, newer))
	})

	t.Run("full ordering", func(t *testing.T) {
		boostedVIP := rankedFixture(true, models.TierVIP.Rank(), now.Add(-3*time.Hour))
		boostedFree := rankedFixture(true, models.TierFree.Rank(), now.Add(-2*time.Hour))
		vip := rankedFixture(false, models.TierVIP.Rank(), now.Add(-4*time.Hour))
		freshFree := rankedFixture(false, models.TierFree.Rank(), now)
		staleFree := rankedFixture(false, models.TierFree.Rank(), now.Add(-time.Hour))

		items := []dto.RankedPost{staleFree, freshFree, vip, boostedFree, boostedVIP}
		sort.SliceStable(items, func(i, j int) bool { return RankLess(items[i], items[j]) })

		require.Len(t, items, 5)
		assert.Equal(t, boostedVIP.ID, items[0].ID)
		assert.Equal(t, boostedFree.ID, items[1].ID)
		assert.Equal(t, vip.ID, items[2].ID)
		assert.Equal(t, freshFree.ID, items[3].ID)
		assert.Equal(t, staleFree.ID, items[4].ID)
	})
}

func TestProjectRankedPost(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 3)
	past := now.AddDate(0, 0, -1)

	activeSub := func(tier models.PackageTier, end time.Time) models.PostSubscription {
		return models.PostSubscription{
			Status:  models.SubscriptionActive,
			EndDate: end,
			Package: models.ServicePackage{Name: string(tier), Tier: tier},
		}
	}

	t.Run("active subscription sets the tier", func(t *testing.T) {
		post := &models.Post{
			Title:         "Lost keys near the station",
			Subscriptions: []models.PostSubscription{activeSub(models.TierExpress, future)},
		}

		ranked := ProjectRankedPost(post, now)
		assert.Equal(t, models.TierExpress.Rank(), ranked.TierRank)
		assert.Equal(t, models.TierExpress, ranked.PackageTier)
		assert.False(t, ranked.IsBoosted)
	})

	t.Run("stale active subscription contributes nothing", func(t *testing.T) {
		post := &models.Post{
			Subscriptions: []models.PostSubscription{activeSub(models.TierVIP, past)},
		}

		ranked := ProjectRankedPost(post, now)
		assert.Zero(t, ranked.TierRank)
		assert.Empty(t, ranked.PackageTier)
	})

	t.Run("pending subscription contributes nothing", func(t *testing.T) {
		pending := activeSub(models.TierVIP, future)
		pending.Status = models.SubscriptionPending
		post := &models.Post{Subscriptions: []models.PostSubscription{pending}}

		assert.Zero(t, ProjectRankedPost(post, now).TierRank)
	})

	t.Run("highest of several subscriptions wins", func(t *testing.T) {
		post := &models.Post{
			Subscriptions: []models.PostSubscription{
				activeSub(models.TierPriority, future),
				activeSub(models.TierVIP, future),
			},
		}

		assert.Equal(t, models.TierVIP.Rank(), ProjectRankedPost(post, now).TierRank)
	})

	t.Run("boost flag respects its end date", func(t *testing.T) {
		boosted := &models.Post{IsBoosted: true, BoostUntil: &future}
		stale := &models.Post{IsBoosted: true, BoostUntil: &past}
		noDate := &models.Post{IsBoosted: true}

		assert.True(t, ProjectRankedPost(boosted, now).IsBoosted)
		assert.False(t, ProjectRankedPost(stale, now).IsBoosted)
		assert.False(t, ProjectRankedPost(noDate, now).IsBoosted)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 5, totalPages(41, 10))
	assert.Equal(t, 0, totalPages(41, 0))
}

func TestNormalizePage(t *testing.T) {
	page, limit := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Greater(t, limit, 0)

	page, limit = normalizePage(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	_, limit = normalizePage(1, 100000)
	assert.LessOrEqual(t, limit, 100)
}
