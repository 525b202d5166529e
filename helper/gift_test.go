package helper

import (
	"sort"
	"testing"

	"wedding_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstPurchasedIndex(gifts []model.GiftResponse) int {
	for i, gift := range gifts {
		if gift.Purchased {
			return i
		}
	}
	return len(gifts)
}

func TestListGifts_PurchasedAlwaysLast(t *testing.T) {
	db := setupTestDB(t)

	createGift(t, db, "panelas", 299.99, true)
	createGift(t, db, "toalhas", 120.00, false)
	createGift(t, db, "cafeteira", 249.50, true)
	createGift(t, db, "liquidificador", 189.90, false)
	createGift(t, db, "taças", 89.90, false)

	for i := 0; i < 5; i++ {
		gifts, err := ListGifts("")
		require.NoError(t, err)
		require.Len(t, gifts, 5)

		boundary := firstPurchasedIndex(gifts)
		assert.Equal(t, 3, boundary)
		for _, gift := range gifts[boundary:] {
			assert.True(t, gift.Purchased)
		}
	}
}

func TestListGifts_PriceAscWithinPartitions(t *testing.T) {
	db := setupTestDB(t)

	createGift(t, db, "a", 300, false)
	createGift(t, db, "b", 100, false)
	createGift(t, db, "c", 200, false)
	createGift(t, db, "d", 50, true)
	createGift(t, db, "e", 400, true)

	gifts, err := ListGifts("asc")
	require.NoError(t, err)
	require.Len(t, gifts, 5)

	boundary := firstPurchasedIndex(gifts)
	assert.Equal(t, 3, boundary)

	available := gifts[:boundary]
	assert.True(t, sort.SliceIsSorted(available, func(i, j int) bool {
		return available[i].Price < available[j].Price
	}))

	purchased := gifts[boundary:]
	assert.True(t, sort.SliceIsSorted(purchased, func(i, j int) bool {
		return purchased[i].Price < purchased[j].Price
	}))
}

func TestListGifts_PriceDesc(t *testing.T) {
	db := setupTestDB(t)

	createGift(t, db, "a", 100, false)
	createGift(t, db, "b", 300, false)
	createGift(t, db, "c", 200, false)

	gifts, err := ListGifts("desc")
	require.NoError(t, err)
	require.Len(t, gifts, 3)
	assert.Equal(t, []float64{300, 200, 100}, []float64{gifts[0].Price, gifts[1].Price, gifts[2].Price})
}

func TestListGiftsAdmin_FilterAndOrder(t *testing.T) {
	db := setupTestDB(t)

	createGift(t, db, "a", 300, false)
	createGift(t, db, "b", 100, true)
	createGift(t, db, "c", 200, false)

	// Default: id ascending, no purchased-last reorder.
	gifts, err := ListGiftsAdmin(model.GiftFilter{})
	require.NoError(t, err)
	require.Len(t, gifts, 3)
	assert.Equal(t, "a", gifts[0].Title)
	assert.Equal(t, "b", gifts[1].Title)
	assert.Equal(t, "c", gifts[2].Title)

	purchased := true
	gifts, err = ListGiftsAdmin(model.GiftFilter{Purchased: &purchased})
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.Equal(t, "b", gifts[0].Title)

	asc := "asc"
	gifts, err = ListGiftsAdmin(model.GiftFilter{SortByPrice: &asc})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, []string{gifts[0].Title, gifts[1].Title, gifts[2].Title})
}

func TestPurchaseGifts_PartitionsInput(t *testing.T) {
	db := setupTestDB(t)

	a := createGift(t, db, "a", 100, false)
	b := createGift(t, db, "b", 200, false)

	purchased, notFound, err := PurchaseGifts([]uint{a.ID, 999, b.ID})
	require.NoError(t, err)

	assert.Equal(t, []uint{a.ID, b.ID}, purchased)
	assert.Equal(t, []uint{999}, notFound)

	var reloaded model.Gift
	require.NoError(t, db.First(&reloaded, a.ID).Error)
	assert.True(t, reloaded.Purchased)
}

func TestCollectCheckoutGifts_SkipsPurchasedSilently(t *testing.T) {
	db := setupTestDB(t)

	bought := createGift(t, db, "bought", 100, true)
	open := createGift(t, db, "open", 200, false)

	eligible, notFound, err := CollectCheckoutGifts([]uint{bought.ID, 777, open.ID})
	require.NoError(t, err)

	require.Len(t, eligible, 1)
	assert.Equal(t, open.ID, eligible[0].ID)
	// The purchased gift is neither eligible nor reported missing.
	assert.Equal(t, []uint{777}, notFound)
}

func TestCollectCheckoutGifts_AllPurchased(t *testing.T) {
	db := setupTestDB(t)

	bought := createGift(t, db, "bought", 100, true)

	eligible, notFound, err := CollectCheckoutGifts([]uint{bought.ID})
	require.NoError(t, err)
	assert.Empty(t, eligible)
	assert.Empty(t, notFound)
}

func TestGiftStats(t *testing.T) {
	db := setupTestDB(t)

	createGift(t, db, "a", 100.50, true)
	createGift(t, db, "b", 200.25, false)
	createGift(t, db, "c", 300, true)

	stats, err := GiftStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Purchased)
	assert.Equal(t, int64(1), stats.Available)
	assert.InDelta(t, 600.75, stats.TotalValue, 0.001)
	assert.InDelta(t, 400.50, stats.PurchasedValue, 0.001)
}

func TestGiftStats_Empty(t *testing.T) {
	setupTestDB(t)

	stats, err := GiftStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.TotalValue)
}
