package postgres

import (
	"context"
	"database/sql"
	"time"

	"salesincentive-backend/internal/domain"
	"salesincentive-backend/internal/repository"
)

type dealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) repository.DealRepository {
	return &dealRepository{db: db}
}

const dealColumns = `id, user_id, date, amount, rate, incentive, status, risk_level,
	deal_name, organization_name, deal_type, expected_close_date, priority, deal_notes,
	policy_id, created_by, client_name, industry, region, currency,
	rejection_reason, admin_comment, approved_by, approved_at, actual_close_date,
	payout_status, payout_date, legacy_deal, created_at, updated_at`

func (r *dealRepository) Create(ctx context.Context, d *domain.Deal) error {
	query := `INSERT INTO deals (user_id, date, amount, rate, incentive, status, risk_level,
		deal_name, organization_name, deal_type, expected_close_date, priority, deal_notes,
		policy_id, created_by, client_name, industry, region, currency,
		rejection_reason, admin_comment, approved_by, approved_at, actual_close_date,
		payout_status, payout_date, legacy_deal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
		$20, $21, $22, $23, $24, $25, $26, $27, $28, $29) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		d.UserID, d.Date, d.Amount, d.Rate, d.Incentive, d.Status, d.RiskLevel,
		d.DealName, d.OrganizationName, d.DealType, d.ExpectedCloseDate, d.Priority, d.DealNotes,
		d.PolicyID, d.CreatedBy, d.ClientName, d.Industry, d.Region, d.Currency,
		d.RejectionReason, d.AdminComment, d.ApprovedBy, d.ApprovedAt, d.ActualCloseDate,
		d.PayoutStatus, d.PayoutDate, d.LegacyDeal, time.Now(), time.Now(),
	).Scan(&d.ID)
}

func (r *dealRepository) GetByID(ctx context.Context, id int64) (*domain.Deal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dealColumns+` FROM deals WHERE id = $1`, id)
	d, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("deal", id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *dealRepository) Update(ctx context.Context, d *domain.Deal) error {
	query := `UPDATE deals SET date=$1, amount=$2, rate=$3, incentive=$4, status=$5, risk_level=$6,
		deal_name=$7, organization_name=$8, deal_type=$9, expected_close_date=$10, priority=$11,
		deal_notes=$12, policy_id=$13, client_name=$14, industry=$15, region=$16, currency=$17,
		rejection_reason=$18, admin_comment=$19, approved_by=$20, approved_at=$21,
		actual_close_date=$22, payout_status=$23, payout_date=$24, updated_at=$25
		WHERE id=$26`
	_, err := r.db.ExecContext(ctx, query,
		d.Date, d.Amount, d.Rate, d.Incentive, d.Status, d.RiskLevel,
		d.DealName, d.OrganizationName, d.DealType, d.ExpectedCloseDate, d.Priority,
		d.DealNotes, d.PolicyID, d.ClientName, d.Industry, d.Region, d.Currency,
		d.RejectionReason, d.AdminComment, d.ApprovedBy, d.ApprovedAt,
		d.ActualCloseDate, d.PayoutStatus, d.PayoutDate, time.Now(), d.ID)
	return err
}

func (r *dealRepository) List(ctx context.Context) ([]domain.Deal, error) {
	return r.queryDeals(ctx, `SELECT `+dealColumns+` FROM deals ORDER BY created_at DESC`)
}

func (r *dealRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Deal, error) {
	return r.queryDeals(ctx, `SELECT `+dealColumns+` FROM deals WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *dealRepository) ListByStatus(ctx context.Context, status domain.DealStatus) ([]domain.Deal, error) {
	return r.queryDeals(ctx, `SELECT `+dealColumns+` FROM deals WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *dealRepository) ListByStatusAndRisk(ctx context.Context, status domain.DealStatus, risk domain.RiskLevel) ([]domain.Deal, error) {
	return r.queryDeals(ctx, `SELECT `+dealColumns+` FROM deals WHERE status = $1 AND risk_level = $2 ORDER BY created_at DESC`, status, risk)
}

func (r *dealRepository) ListByPayoutStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Deal, error) {
	return r.queryDeals(ctx, `SELECT `+dealColumns+` FROM deals WHERE payout_status = $1 ORDER BY created_at DESC`, status)
}

func (r *dealRepository) queryDeals(ctx context.Context, query string, args ...interface{}) ([]domain.Deal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, *d)
	}
	return deals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeal(row rowScanner) (*domain.Deal, error) {
	d := &domain.Deal{}
	err := row.Scan(
		&d.ID, &d.UserID, &d.Date, &d.Amount, &d.Rate, &d.Incentive, &d.Status, &d.RiskLevel,
		&d.DealName, &d.OrganizationName, &d.DealType, &d.ExpectedCloseDate, &d.Priority, &d.DealNotes,
		&d.PolicyID, &d.CreatedBy, &d.ClientName, &d.Industry, &d.Region, &d.Currency,
		&d.RejectionReason, &d.AdminComment, &d.ApprovedBy, &d.ApprovedAt, &d.ActualCloseDate,
		&d.PayoutStatus, &d.PayoutDate, &d.LegacyDeal, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}
