package repository

import (
	"context"
	"fmt"

	"tender-board/internal/biddingerrors"
	model "tender-board/internal/models"
	"tender-board/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// PgxQuerier is the subset of *pgxpool.Pool the PostgreSQL store needs.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepo implements TenderStore and BidStore on top of PostgreSQL.
// The serial seq column preserves insertion order for list-all.
type PostgresRepo struct {
	DB PgxQuerier
}

// NewPostgresRepo creates a PostgreSQL-backed repository
func NewPostgresRepo(db PgxQuerier) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

// ListTenders returns all tenders in insertion order
func (r *PostgresRepo) ListTenders(ctx context.Context) ([]model.Tender, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, description, publish_date, contract_period, turnover, experience, tender_value, state
		FROM tenders ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w: %w", biddingerrors.ErrStore, err)
	}
	defer rows.Close()

	tenders := []model.Tender{}
	for rows.Next() {
		var t model.Tender
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Description,
			&t.PublishDate,
			&t.ContractPeriod,
			&t.Turnover,
			&t.Experience,
			&t.TenderValue,
			&t.State); err != nil {
			return nil, fmt.Errorf("scan tender: %w: %w", biddingerrors.ErrStore, err)
		}
		tenders = append(tenders, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tenders: %w: %w", biddingerrors.ErrStore, err)
	}
	return tenders, nil
}

// CreateTender inserts a new tender under a freshly assigned id
func (r *PostgresRepo) CreateTender(ctx context.Context, fields model.TenderFields) (model.Tender, error) {
	tender := model.Tender{ID: utils.GenerateID(), TenderFields: fields}
	_, err := r.DB.Exec(ctx, `
		INSERT INTO tenders (id, name, description, publish_date, contract_period, turnover, experience, tender_value, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tender.ID,
		tender.Name,
		tender.Description,
		tender.PublishDate,
		tender.ContractPeriod,
		tender.Turnover,
		tender.Experience,
		tender.TenderValue,
		tender.State)
	if err != nil {
		return model.Tender{}, fmt.Errorf("insert tender: %w: %w", biddingerrors.ErrStore, err)
	}
	return tender, nil
}

// UpdateTender replaces every field of an existing tender
func (r *PostgresRepo) UpdateTender(ctx context.Context, id string, fields model.TenderFields) (model.Tender, error) {
	tag, err := r.DB.Exec(ctx, `
		UPDATE tenders
		SET name = $2, description = $3, publish_date = $4, contract_period = $5,
		    turnover = $6, experience = $7, tender_value = $8, state = $9
		WHERE id = $1`,
		id,
		fields.Name,
		fields.Description,
		fields.PublishDate,
		fields.ContractPeriod,
		fields.Turnover,
		fields.Experience,
		fields.TenderValue,
		fields.State)
	if err != nil {
		return model.Tender{}, fmt.Errorf("update tender %s: %w: %w", id, biddingerrors.ErrStore, err)
	}
	if tag.RowsAffected() == 0 {
		return model.Tender{}, fmt.Errorf("update tender %s: %w", id, biddingerrors.ErrTenderNotFound)
	}
	return model.Tender{ID: id, TenderFields: fields}, nil
}

// DeleteTender removes a tender; deleting an unknown id is a no-op
func (r *PostgresRepo) DeleteTender(ctx context.Context, id string) error {
	if _, err := r.DB.Exec(ctx, `DELETE FROM tenders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tender %s: %w: %w", id, biddingerrors.ErrStore, err)
	}
	return nil
}

// ListBids returns all bids in insertion order
func (r *PostgresRepo) ListBids(ctx context.Context) ([]model.Bid, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, tender_id, company_name, bid_cost, bid_time, is_last_five_minutes
		FROM bids ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w: %w", biddingerrors.ErrStore, err)
	}
	defer rows.Close()

	bids := []model.Bid{}
	for rows.Next() {
		var (
			b        model.Bid
			lastFive pgtype.Bool
		)
		if err := rows.Scan(
			&b.BidID,
			&b.TenderID,
			&b.CompanyName,
			&b.BidCost,
			&b.BidTime,
			&lastFive); err != nil {
			return nil, fmt.Errorf("scan bid: %w: %w", biddingerrors.ErrStore, err)
		}
		if lastFive.Valid {
			v := lastFive.Bool
			b.IsLastFiveMinutes = &v
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bids: %w: %w", biddingerrors.ErrStore, err)
	}
	return bids, nil
}

// CreateBid inserts a bid under a freshly assigned id. tender_id carries no foreign key.
func (r *PostgresRepo) CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	bid.BidID = utils.GenerateID()

	var lastFive pgtype.Bool
	if bid.IsLastFiveMinutes != nil {
		lastFive = pgtype.Bool{Bool: *bid.IsLastFiveMinutes, Valid: true}
	}

	_, err := r.DB.Exec(ctx, `
		INSERT INTO bids (id, tender_id, company_name, bid_cost, bid_time, is_last_five_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		bid.BidID,
		bid.TenderID,
		bid.CompanyName,
		bid.BidCost,
		bid.BidTime,
		lastFive)
	if err != nil {
		return model.Bid{}, fmt.Errorf("insert bid: %w: %w", biddingerrors.ErrStore, err)
	}
	return bid, nil
}

// DeleteBid removes a bid; deleting an unknown id is a no-op
func (r *PostgresRepo) DeleteBid(ctx context.Context, id string) error {
	if _, err := r.DB.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete bid %s: %w: %w", id, biddingerrors.ErrStore, err)
	}
	return nil
}
