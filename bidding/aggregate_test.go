package bidding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkex/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func garage(id string, startPrice int64, endsIn time.Duration) domain.Garage {
	return domain.Garage{
		ID:         id,
		OwnerID:    "seller-" + id,
		Title:      "Garage " + id,
		StartPrice: decimal.NewFromInt(startPrice),
		BidEndAt:   testNow.Add(endsIn),
		CreatedAt:  testNow.Add(-24 * time.Hour),
	}
}

func bid(garageID, bidderID string, amount int64, at time.Time) domain.Bid {
	return domain.Bid{
		ID:        garageID + "-" + bidderID + "-" + at.Format("150405"),
		GarageID:  garageID,
		BidderID:  bidderID,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: at,
	}
}

func TestSummarize(t *testing.T) {
	t0 := testNow.Add(-3 * time.Hour)
	bids := []domain.Bid{
		bid("g1", "b1", 50000, t0),
		bid("g1", "b2", 52000, t0.Add(time.Hour)),
		bid("g1", "b1", 51000, t0.Add(30*time.Minute)),
		bid("g2", "b3", 90000, t0),
	}

	s := Summarize("g1", bids)
	require.NotNil(t, s.HighestAmount)
	assert.True(t, s.HighestAmount.Equal(decimal.NewFromInt(52000)))
	assert.Equal(t, "b2", s.HighestBidderID)
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.LastBidAt)
	assert.True(t, s.LastBidAt.Equal(t0.Add(time.Hour)))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize("g1", nil)
	assert.Nil(t, s.HighestAmount)
	assert.Empty(t, s.HighestBidderID)
	assert.Zero(t, s.Count)
	assert.Nil(t, s.LastBidAt)
}

// Duplicate amounts should not exist given strict-increase admission, but
// when they do the earliest bid holds the top spot.
func TestSummarize_TieBreakEarliest(t *testing.T) {
	t0 := testNow.Add(-2 * time.Hour)
	bids := []domain.Bid{
		bid("g1", "late", 70000, t0.Add(time.Hour)),
		bid("g1", "early", 70000, t0),
	}

	s := Summarize("g1", bids)
	assert.Equal(t, "early", s.HighestBidderID)
	assert.Equal(t, 2, s.Count)
}

func TestSummarizeAll(t *testing.T) {
	t0 := testNow.Add(-time.Hour)
	bids := []domain.Bid{
		bid("g1", "b1", 100, t0),
		bid("g2", "b2", 200, t0),
		bid("g2", "b1", 300, t0.Add(time.Minute)),
	}

	all := SummarizeAll(bids)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all["g1"].Count)
	assert.Equal(t, 2, all["g2"].Count)
	assert.True(t, all["g2"].HighestAmount.Equal(decimal.NewFromInt(300)))
}

func TestGarageView_CurrentPrice(t *testing.T) {
	v := GarageView{Garage: garage("g1", 100000, time.Hour)}
	assert.True(t, v.CurrentPrice().Equal(decimal.NewFromInt(100000)), "falls back to start price")

	high := decimal.NewFromInt(120000)
	v.Summary.HighestAmount = &high
	assert.True(t, v.CurrentPrice().Equal(high))
}

func viewsFixture() []GarageView {
	t0 := testNow.Add(-time.Hour)
	garages := []domain.Garage{
		garage("g1", 40000, time.Hour),  // no bids
		garage("g2", 10000, time.Hour),  // 2 bids, top 50000
		garage("g3", 200000, time.Hour), // no bids, pricey
		garage("g4", 10000, time.Hour),  // 5 bids, top 80000
	}
	var bids []domain.Bid
	bids = append(bids,
		bid("g2", "b1", 45000, t0),
		bid("g2", "b2", 50000, t0.Add(time.Minute)),
	)
	for i := int64(0); i < 5; i++ {
		bids = append(bids, bid("g4", "b3", 76000+i*1000, t0.Add(time.Duration(i)*time.Minute)))
	}
	return BuildViews(garages, bids)
}

func ids(views []GarageView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Garage.ID)
	}
	return out
}

func TestSortViews(t *testing.T) {
	views := viewsFixture()

	tests := []struct {
		name string
		mode SortMode
		want []string
	}{
		{name: "newest_preserves_input_order", mode: SortNewest, want: []string{"g1", "g2", "g3", "g4"}},
		{name: "price_high", mode: SortPriceHigh, want: []string{"g3", "g4", "g2", "g1"}},
		{name: "price_low", mode: SortPriceLow, want: []string{"g1", "g2", "g4", "g3"}},
		// g4 (5 bids, top 80000) before g2 (2 bids, top 50000); no-bid
		// listings keep their relative order at the tail.
		{name: "bids_first", mode: SortBidsFirst, want: []string{"g4", "g2", "g1", "g3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortViews(views, tt.mode)
			assert.Equal(t, tt.want, ids(got))
			// Input must never be reordered.
			assert.Equal(t, []string{"g1", "g2", "g3", "g4"}, ids(views))
		})
	}
}

func TestSortViews_BidsBeatAmounts(t *testing.T) {
	// A listing with bids sorts before one without, whatever the amounts.
	views := BuildViews(
		[]domain.Garage{garage("cheap", 100, time.Hour), garage("dear", 900000, time.Hour)},
		[]domain.Bid{bid("cheap", "b1", 101, testNow.Add(-time.Minute))},
	)
	got := SortViews(views, SortBidsFirst)
	assert.Equal(t, []string{"cheap", "dear"}, ids(got))
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortMode(""))
	assert.Equal(t, SortNewest, ParseSortMode("garbage"))
	assert.Equal(t, SortBidsFirst, ParseSortMode("bids_first"))
	assert.Equal(t, SortPriceHigh, ParseSortMode("price_high"))
	assert.Equal(t, SortPriceLow, ParseSortMode("price_low"))
}

func TestSplitActiveEnded(t *testing.T) {
	views := BuildViews([]domain.Garage{
		garage("a1", 100, time.Hour),
		garage("e1", 100, -time.Hour),
		garage("a2", 100, 2*time.Hour),
		garage("e2", 100, -time.Minute),
	}, nil)

	active, ended := SplitActiveEnded(views, testNow)
	assert.Equal(t, []string{"a1", "a2"}, ids(active))
	assert.Equal(t, []string{"e1", "e2"}, ids(ended))
	assert.Len(t, active, 2)
	assert.Len(t, ended, 2)
}

func TestSplitActiveEnded_DeadlineExactlyNow(t *testing.T) {
	views := BuildViews([]domain.Garage{garage("g1", 100, 0)}, nil)
	active, ended := SplitActiveEnded(views, testNow)
	assert.Empty(t, active)
	assert.Len(t, ended, 1)
}
