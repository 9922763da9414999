package bidding

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"parkex/domain"
)

// Summary is the per-listing read model computed from the bid history.
// HighestAmount is nil when the listing has no bids. Equal amounts cannot
// occur when admission is enforced atomically, but if storage ever holds
// duplicates the earliest created_at wins.
type Summary struct {
	HighestAmount   *decimal.Decimal
	HighestBidderID string
	Count           int
	LastBidAt       *time.Time

	// highestAt backs the tie-break; not part of the rendered summary.
	highestAt time.Time
}

// Summarize folds the bids belonging to garageID into a Summary. Bids for
// other garages are ignored, so callers can pass a mixed batch.
func Summarize(garageID string, bids []domain.Bid) Summary {
	var s Summary
	for i := range bids {
		b := bids[i]
		if b.GarageID != garageID {
			continue
		}
		s.Count++
		if s.LastBidAt == nil || b.CreatedAt.After(*s.LastBidAt) {
			t := b.CreatedAt
			s.LastBidAt = &t
		}
		if s.HighestAmount == nil || beats(b, *s.HighestAmount, s.highestAt) {
			amount := b.Amount
			s.HighestAmount = &amount
			s.HighestBidderID = b.BidderID
			s.highestAt = b.CreatedAt
		}
	}
	return s
}

// beats reports whether bid b outranks the current top (amount, placedAt)
// under amount-descending, created-at-ascending order.
func beats(b domain.Bid, amount decimal.Decimal, placedAt time.Time) bool {
	if b.Amount.GreaterThan(amount) {
		return true
	}
	return b.Amount.Equal(amount) && b.CreatedAt.Before(placedAt)
}

// SummarizeAll groups a batch of bids by garage in one pass.
func SummarizeAll(bids []domain.Bid) map[string]Summary {
	out := make(map[string]Summary)
	for i := range bids {
		b := bids[i]
		s := out[b.GarageID]
		s.Count++
		if s.LastBidAt == nil || b.CreatedAt.After(*s.LastBidAt) {
			t := b.CreatedAt
			s.LastBidAt = &t
		}
		if s.HighestAmount == nil || beats(b, *s.HighestAmount, s.highestAt) {
			amount := b.Amount
			s.HighestAmount = &amount
			s.HighestBidderID = b.BidderID
			s.highestAt = b.CreatedAt
		}
		out[b.GarageID] = s
	}
	return out
}

// GarageView pairs a garage with its bid summary for list rendering.
type GarageView struct {
	Garage  domain.Garage
	Summary Summary
}

// CurrentPrice is the highest bid, falling back to the start price when no
// bids exist. It is the value the price sorts compare.
func (v GarageView) CurrentPrice() decimal.Decimal {
	if v.Summary.HighestAmount != nil {
		return *v.Summary.HighestAmount
	}
	return v.Garage.StartPrice
}

func (v GarageView) IsActive(now time.Time) bool {
	return v.Garage.IsActive(now)
}

// BuildViews pairs each garage with the summary of its bids.
func BuildViews(garages []domain.Garage, bids []domain.Bid) []GarageView {
	summaries := SummarizeAll(bids)
	views := make([]GarageView, 0, len(garages))
	for _, g := range garages {
		views = append(views, GarageView{Garage: g, Summary: summaries[g.ID]})
	}
	return views
}

type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortPriceHigh SortMode = "price_high"
	SortPriceLow  SortMode = "price_low"
	SortBidsFirst SortMode = "bids_first"
)

func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceHigh, SortPriceLow, SortBidsFirst:
		return SortMode(s)
	default:
		return SortNewest
	}
}

// SortViews returns a new slice ordered by the given mode. Sorting is
// stable, and SortNewest keeps the input order untouched: list queries
// already come back creation-descending.
func SortViews(views []GarageView, mode SortMode) []GarageView {
	out := make([]GarageView, len(views))
	copy(out, views)

	switch mode {
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentPrice().GreaterThan(out[j].CurrentPrice())
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentPrice().LessThan(out[j].CurrentPrice())
		})
	case SortBidsFirst:
		// Listings with bids come first, highest bid descending inside that
		// group. Listings without bids keep their relative order.
		sort.SliceStable(out, func(i, j int) bool {
			iHas, jHas := out[i].Summary.Count > 0, out[j].Summary.Count > 0
			if iHas != jHas {
				return iHas
			}
			if !iHas {
				return false
			}
			return out[i].Summary.HighestAmount.GreaterThan(*out[j].Summary.HighestAmount)
		})
	}

	return out
}

// SplitActiveEnded partitions views by deadline. Every view lands in
// exactly one partition and relative order is preserved in both.
func SplitActiveEnded(views []GarageView, now time.Time) (active, ended []GarageView) {
	active = make([]GarageView, 0, len(views))
	ended = make([]GarageView, 0)
	for _, v := range views {
		if v.IsActive(now) {
			active = append(active, v)
		} else {
			ended = append(ended, v)
		}
	}
	return active, ended
}
