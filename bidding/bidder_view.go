package bidding

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"parkex/domain"
)

type BidderStatus string

const (
	StatusWinning BidderStatus = "winning" // auction open, bidder holds the top bid
	StatusOutbid  BidderStatus = "outbid"  // auction open, someone else is higher
	StatusWon     BidderStatus = "won"     // auction ended with the bidder on top
	StatusLost    BidderStatus = "lost"    // auction ended, bidder was beaten
)

// BidderEntry is one listing on a bidder's dashboard: their own best bid
// against the listing's global top bid.
type BidderEntry struct {
	Garage    domain.Garage
	OwnAmount decimal.Decimal
	LastBidAt time.Time
	Status    BidderStatus
}

// PerBidderView groups bids by listing from one bidder's point of view.
// bids must contain the full history of every listing the bidder touched,
// not just the bidder's own rows, since winning is judged against the
// global top bid (ties resolved by earliest created_at, as everywhere).
// Entries come back ordered by the bidder's most recent bid, newest first.
func PerBidderView(bids []domain.Bid, garages []domain.Garage, bidderID string, now time.Time) []BidderEntry {
	byID := make(map[string]domain.Garage, len(garages))
	for _, g := range garages {
		byID[g.ID] = g
	}

	summaries := SummarizeAll(bids)

	type own struct {
		amount decimal.Decimal
		lastAt time.Time
	}
	mine := make(map[string]own)
	for i := range bids {
		b := bids[i]
		if b.BidderID != bidderID {
			continue
		}
		cur, seen := mine[b.GarageID]
		if !seen {
			mine[b.GarageID] = own{amount: b.Amount, lastAt: b.CreatedAt}
			continue
		}
		if b.Amount.GreaterThan(cur.amount) {
			cur.amount = b.Amount
		}
		if b.CreatedAt.After(cur.lastAt) {
			cur.lastAt = b.CreatedAt
		}
		mine[b.GarageID] = cur
	}

	entries := make([]BidderEntry, 0, len(mine))
	for garageID, o := range mine {
		g, ok := byID[garageID]
		if !ok {
			continue
		}

		winning := summaries[garageID].HighestBidderID == bidderID
		var status BidderStatus
		switch {
		case g.IsActive(now) && winning:
			status = StatusWinning
		case g.IsActive(now):
			status = StatusOutbid
		case winning:
			status = StatusWon
		default:
			status = StatusLost
		}

		entries = append(entries, BidderEntry{
			Garage:    g,
			OwnAmount: o.amount,
			LastBidAt: o.lastAt,
			Status:    status,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastBidAt.After(entries[j].LastBidAt)
	})

	return entries
}
