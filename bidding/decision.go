// Package bidding holds the auction rules: whether a submitted bid is
// acceptable, and the read-side aggregation of bid history into the
// summaries the listing screens render. Everything here is a pure function
// over values; callers supply the clock and the persisted records.
package bidding

import (
	"time"

	"github.com/shopspring/decimal"
)

type Outcome string

const (
	OutcomeAccepted      Outcome = "accepted"
	OutcomeInvalidAmount Outcome = "invalid_amount"
	OutcomeSelfBid       Outcome = "self_bid"
	OutcomeClosed        Outcome = "closed"
	OutcomeTooLow        Outcome = "too_low"
)

// Decision is the result of admitting a proposed bid. MinimumRequired is
// the floor the next acceptable bid must meet; it is set for every outcome
// except OutcomeInvalidAmount so callers can surface it verbatim.
type Decision struct {
	Outcome         Outcome
	MinimumRequired decimal.Decimal
}

func (d Decision) Accepted() bool {
	return d.Outcome == OutcomeAccepted
}

// ListingTerms is the subset of a garage listing the admission check needs.
type ListingTerms struct {
	OwnerID    string
	StartPrice decimal.Decimal
	BidEndAt   time.Time
}

// MinimumNextBid is the lowest acceptable next bid:
// max(startPrice, currentHighest) plus one whole unit of currency. The
// first bid must therefore beat the start price by one, not merely meet it.
func MinimumNextBid(startPrice decimal.Decimal, currentHighest *decimal.Decimal) decimal.Decimal {
	floor := startPrice
	if currentHighest != nil && currentHighest.GreaterThan(floor) {
		floor = *currentHighest
	}
	return floor.Add(decimal.NewFromInt(1))
}

// Decide is the single admission check for a proposed bid. currentHighest
// is the highest already-accepted bid for the listing, or nil when no bids
// exist. Checks run in a fixed order so the caller always gets the most
// specific rejection: amount shape, then self-bid, then deadline, then
// minimum amount.
//
// Decide never reads the wall clock or touches storage. For the accept path
// to be safe under concurrent submissions it must be re-run against the
// authoritative highest bid inside the same transaction that inserts the
// row; see PgRepository.PlaceBid.
func Decide(amount decimal.Decimal, bidderID string, terms ListingTerms, currentHighest *decimal.Decimal, now time.Time) Decision {
	if bidderID == "" || !amount.IsPositive() {
		return Decision{Outcome: OutcomeInvalidAmount}
	}

	min := MinimumNextBid(terms.StartPrice, currentHighest)

	if bidderID == terms.OwnerID {
		return Decision{Outcome: OutcomeSelfBid, MinimumRequired: min}
	}

	if !terms.BidEndAt.After(now) {
		return Decision{Outcome: OutcomeClosed, MinimumRequired: min}
	}

	if amount.LessThan(min) {
		return Decision{Outcome: OutcomeTooLow, MinimumRequired: min}
	}

	return Decision{Outcome: OutcomeAccepted, MinimumRequired: min}
}
