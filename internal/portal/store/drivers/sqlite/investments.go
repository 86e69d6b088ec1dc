package sqlite

import (
	"context"
	"database/sql"

	"github.com/victorygp/portal/internal/portal/domain"
)

type investmentsRepo struct {
	db dbtx
}

const investmentColumns = `id, user_id, deal_name, investment_total, distribution_total, status, close_date, created_at, updated_at`

func scanInvestment(row interface{ Scan(...any) error }) (domain.Investment, error) {
	var (
		inv       domain.Investment
		closeDate sql.NullTime
	)
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.DealName, &inv.InvestmentTotal,
		&inv.DistributionTotal, &inv.Status, &closeDate,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Investment{}, err
	}
	inv.CloseDate = mapNullTimePtr(closeDate)
	return inv, nil
}

func (r *investmentsRepo) CreateInvestment(ctx context.Context, inv domain.Investment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO investments (id, user_id, deal_name, investment_total, distribution_total, status, close_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.UserID, inv.DealName, inv.InvestmentTotal,
		inv.DistributionTotal, inv.Status, mapOptionalTime(inv.CloseDate),
	)
	return mapConstraint(err)
}

func (r *investmentsRepo) GetInvestmentByID(ctx context.Context, id string) (domain.Investment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE id = ?`, id)
	inv, err := scanInvestment(row)
	if err != nil {
		return domain.Investment{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *investmentsRepo) ListInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *investmentsRepo) ListAllInvestments(ctx context.Context) ([]domain.Investment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+investmentColumns+` FROM investments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *investmentsRepo) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE investments
		SET deal_name = ?, investment_total = ?, distribution_total = ?,
		    status = ?, close_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		inv.DealName, inv.InvestmentTotal, inv.DistributionTotal,
		inv.Status, mapOptionalTime(inv.CloseDate), inv.ID,
	)
	return err
}

func (r *investmentsRepo) DeleteInvestment(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM investments WHERE id = ?`, id)
	return err
}

func (r *investmentsRepo) SummarizeInvestmentsByUser(ctx context.Context, userID string) (domain.InvestmentSummary, error) {
	var s domain.InvestmentSummary
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(investment_total), 0),
		       COALESCE(SUM(distribution_total), 0),
		       COUNT(*)
		FROM investments WHERE user_id = ?`, userID,
	).Scan(&s.InvestedTotal, &s.DistributionTotal, &s.Count)
	if err != nil {
		return domain.InvestmentSummary{}, err
	}
	return s, nil
}
