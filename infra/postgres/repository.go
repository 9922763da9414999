package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	_ "github.com/lib/pq"

	"parkex/app/garage"
	"parkex/bidding"
	"parkex/domain"
)

type PgRepository struct {
	db *sqlx.DB
}

func NewPgRepository(host, database, user, password, port string) *PgRepository {
	db := sqlx.MustConnect("postgres", fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, database,
	))

	// With 3 replicas × 15 conns = 45 total connections (safer for default
	// PG max_connections=100)
	db.SetMaxOpenConns(15)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return &PgRepository{db: db}
}

func (r *PgRepository) Close() error {
	return r.db.Close()
}

// GetPoolStats returns current connection pool statistics
func (r *PgRepository) GetPoolStats() map[string]interface{} {
	stats := r.db.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}
}

func (r *PgRepository) CreateGarage(ctx context.Context, req *garage.CreateGarageRequest) (domain.Garage, error) {
	var g domain.Garage
	query := `
		INSERT INTO garages (
			owner_id, title, description, size, address,
			start_price, bid_end_at
		) VALUES (
			:owner_id, :title, :description, :size, :address,
			:start_price, :bid_end_at
		) RETURNING *`

	rows, err := r.db.NamedQueryContext(ctx, query, req)
	if err != nil {
		return g, err
	}
	defer rows.Close()

	if rows.Next() {
		err = rows.StructScan(&g)
	}
	return g, err
}

func (r *PgRepository) GetActiveGarages(ctx context.Context, limit, offset int) ([]domain.Garage, error) {
	garages := make([]domain.Garage, 0)
	query := `SELECT * FROM garages WHERE bid_end_at > now() ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &garages, query, limit, offset); err != nil {
		return nil, err
	}

	return garages, nil
}

func (r *PgRepository) CountActiveGarages(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM garages WHERE bid_end_at > now()`

	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *PgRepository) GetGarage(ctx context.Context, id string) (domain.Garage, error) {
	var g domain.Garage
	query := `SELECT * FROM garages WHERE id = $1`

	if err := r.db.GetContext(ctx, &g, query, id); err != nil {
		return g, err
	}

	return g, nil
}

func (r *PgRepository) GetGaragesByIDs(ctx context.Context, ids []string) ([]domain.Garage, error) {
	garages := make([]domain.Garage, 0)
	if len(ids) == 0 {
		return garages, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM garages WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	if err := r.db.SelectContext(ctx, &garages, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	return garages, nil
}

func (r *PgRepository) GetSellerGarages(ctx context.Context, ownerID string) ([]domain.Garage, error) {
	garages := make([]domain.Garage, 0)
	query := `SELECT * FROM garages WHERE owner_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &garages, query, ownerID); err != nil {
		return nil, err
	}

	return garages, nil
}

// GetFeaturedGarages feeds the homepage carousel: active listings, the most
// recently bid-on first, newest listings as tie filler.
func (r *PgRepository) GetFeaturedGarages(ctx context.Context, limit int) ([]domain.Garage, error) {
	garages := make([]domain.Garage, 0)
	query := `
		SELECT * FROM garages
		WHERE bid_end_at > now()
		ORDER BY last_bid_at DESC NULLS LAST, created_at DESC
		LIMIT $1`

	if err := r.db.SelectContext(ctx, &garages, query, limit); err != nil {
		return nil, err
	}

	return garages, nil
}

// PlaceBid is the only writer path for bids. Admission is decided inside
// the transaction, after locking the garage row and re-reading the
// authoritative top bid, so two concurrent submissions can never both pass
// the strictly-greater-than check. A non-accepted decision is not an error:
// the bid is simply not inserted and the decision is returned for the
// handler to surface.
func (r *PgRepository) PlaceBid(ctx context.Context, garageID, bidderID string, amount decimal.Decimal, now time.Time) (domain.Bid, bidding.Decision, error) {
	var b domain.Bid

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return b, bidding.Decision{}, err
	}
	defer tx.Rollback()

	var g domain.Garage
	if err := tx.GetContext(ctx, &g, `SELECT * FROM garages WHERE id = $1 FOR UPDATE`, garageID); err != nil {
		return b, bidding.Decision{}, err
	}

	var currentHighest *decimal.Decimal
	var top decimal.Decimal
	err = tx.GetContext(ctx, &top,
		`SELECT amount FROM bids WHERE garage_id = $1 ORDER BY amount DESC, created_at ASC LIMIT 1`,
		garageID,
	)
	switch {
	case err == nil:
		currentHighest = &top
	case errors.Is(err, sql.ErrNoRows):
		// first bid
	default:
		return b, bidding.Decision{}, err
	}

	decision := bidding.Decide(amount, bidderID, bidding.ListingTerms{
		OwnerID:    g.OwnerID,
		StartPrice: g.StartPrice,
		BidEndAt:   g.BidEndAt,
	}, currentHighest, now)

	if !decision.Accepted() {
		return b, decision, nil
	}

	if err := tx.GetContext(ctx, &b,
		`INSERT INTO bids (garage_id, bidder_id, amount) VALUES ($1, $2, $3) RETURNING *`,
		garageID, bidderID, amount,
	); err != nil {
		return domain.Bid{}, bidding.Decision{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Bid{}, bidding.Decision{}, err
	}

	return b, decision, nil
}

func (r *PgRepository) GetBidsByGarage(ctx context.Context, garageID string, limit, offset int) ([]domain.Bid, error) {
	bids := make([]domain.Bid, 0)
	query := `SELECT * FROM bids WHERE garage_id = $1 ORDER BY amount DESC, created_at ASC LIMIT $2 OFFSET $3`

	if err := r.db.SelectContext(ctx, &bids, query, garageID, limit, offset); err != nil {
		return nil, err
	}

	return bids, nil
}

func (r *PgRepository) CountBids(ctx context.Context, garageID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bids WHERE garage_id = $1`

	if err := r.db.GetContext(ctx, &count, query, garageID); err != nil {
		return 0, err
	}

	return count, nil
}

// GetTopBid returns nil when the garage has no bids.
func (r *PgRepository) GetTopBid(ctx context.Context, garageID string) (*domain.Bid, error) {
	var b domain.Bid
	query := `SELECT * FROM bids WHERE garage_id = $1 ORDER BY amount DESC, created_at ASC LIMIT 1`

	err := r.db.GetContext(ctx, &b, query, garageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *PgRepository) GetBidsByBidder(ctx context.Context, bidderID string) ([]domain.Bid, error) {
	bids := make([]domain.Bid, 0)
	query := `SELECT * FROM bids WHERE bidder_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &bids, query, bidderID); err != nil {
		return nil, err
	}

	return bids, nil
}

func (r *PgRepository) GetBidsForGarages(ctx context.Context, garageIDs []string) ([]domain.Bid, error) {
	bids := make([]domain.Bid, 0)
	if len(garageIDs) == 0 {
		return bids, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM bids WHERE garage_id IN (?)`, garageIDs)
	if err != nil {
		return nil, err
	}

	if err := r.db.SelectContext(ctx, &bids, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	return bids, nil
}

// UpdateGarageBidState refreshes the denormalized bid columns after a
// bid.placed event. GREATEST keeps the statement idempotent under
// redelivery as far as the high bid and timestamp go; bid_count may drift
// on redelivery and is reconciled from the bids table by reads that care.
func (r *PgRepository) UpdateGarageBidState(ctx context.Context, garageID string, amount decimal.Decimal, bidTime time.Time) error {
	query := `
		UPDATE garages SET
			current_high_bid = GREATEST(COALESCE(current_high_bid, 0), $2),
			bid_count = bid_count + 1,
			last_bid_at = GREATEST(COALESCE(last_bid_at, to_timestamp(0)), $3),
			updated_at = now()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, garageID, amount, bidTime)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *PgRepository) SaveImage(ctx context.Context, garageID string, imageURL string) (domain.GarageImage, error) {
	var img domain.GarageImage
	query := `INSERT INTO garage_images (garage_id, url) VALUES ($1, $2) RETURNING *`

	if err := r.db.GetContext(ctx, &img, query, garageID, imageURL); err != nil {
		return img, err
	}

	return img, nil
}

func (r *PgRepository) GetGarageImages(ctx context.Context, garageID string) ([]domain.GarageImage, error) {
	images := make([]domain.GarageImage, 0)
	query := `SELECT * FROM garage_images WHERE garage_id = $1 ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &images, query, garageID); err != nil {
		return nil, err
	}

	return images, nil
}

func (r *PgRepository) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	var p domain.Profile
	query := `SELECT * FROM profiles WHERE id = $1`

	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return p, err
	}

	return p, nil
}

func (r *PgRepository) UpsertProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	var out domain.Profile
	query := `
		INSERT INTO profiles (id, email, first_name, last_name, role, phone, address)
		VALUES (:id, :email, :first_name, :last_name, :role, :phone, :address)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			role = EXCLUDED.role,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			updated_at = now()
		RETURNING *`

	rows, err := r.db.NamedQueryContext(ctx, query, p)
	if err != nil {
		return out, err
	}
	defer rows.Close()

	if rows.Next() {
		err = rows.StructScan(&out)
	}
	return out, err
}

func (r *PgRepository) CreateFeedback(ctx context.Context, userID *string, message string, rating *int, contact *string) (domain.Feedback, error) {
	var f domain.Feedback
	query := `INSERT INTO feedback (user_id, message, rating, contact) VALUES ($1, $2, $3, $4) RETURNING *`

	if err := r.db.GetContext(ctx, &f, query, userID, message, rating, contact); err != nil {
		return f, err
	}

	return f, nil
}
