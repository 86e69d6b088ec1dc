package sqlite

import (
	"context"
	"database/sql"

	"github.com/victorygp/portal/internal/portal/domain"
)

type dealsRepo struct {
	db dbtx
}

const dealColumns = `id, name, deal_type, deal_subtype, deal_stage, sponsors, close_date, offering_size, unit_price, status, funding_instructions, details_json, created_at, updated_at`

func scanDeal(row interface{ Scan(...any) error }) (domain.Deal, error) {
	var (
		d                                domain.Deal
		subtype, stage, sponsors         sql.NullString
		fundingInstructions, detailsJSON sql.NullString
		closeDate                        sql.NullTime
		offeringSize, unitPrice          sql.NullFloat64
	)
	err := row.Scan(
		&d.ID, &d.Name, &d.DealType, &subtype, &stage, &sponsors,
		&closeDate, &offeringSize, &unitPrice, &d.Status,
		&fundingInstructions, &detailsJSON, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.Deal{}, err
	}
	d.DealSubtype = mapNullString(subtype)
	d.DealStage = mapNullString(stage)
	d.Sponsors = mapNullString(sponsors)
	d.CloseDate = mapNullTimePtr(closeDate)
	d.OfferingSize = mapNullFloatPtr(offeringSize)
	d.UnitPrice = mapNullFloatPtr(unitPrice)
	d.FundingInstructions = mapNullString(fundingInstructions)
	d.DetailsJSON = mapNullString(detailsJSON)
	return d, nil
}

func (r *dealsRepo) CreateDeal(ctx context.Context, d domain.Deal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO deals (id, name, deal_type, deal_subtype, deal_stage, sponsors, close_date, offering_size, unit_price, status, funding_instructions, details_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.DealType, mapStringNull(d.DealSubtype),
		mapStringNull(d.DealStage), mapStringNull(d.Sponsors),
		mapOptionalTime(d.CloseDate), mapOptionalFloat(d.OfferingSize),
		mapOptionalFloat(d.UnitPrice), d.Status,
		mapStringNull(d.FundingInstructions), mapStringNull(d.DetailsJSON),
	)
	return mapConstraint(err)
}

func (r *dealsRepo) GetDealByID(ctx context.Context, id string) (domain.Deal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+dealColumns+` FROM deals WHERE id = ?`, id)
	d, err := scanDeal(row)
	if err != nil {
		return domain.Deal{}, mapNotFound(err)
	}
	return d, nil
}

func (r *dealsRepo) ListDeals(ctx context.Context, status string) ([]domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *dealsRepo) UpdateDeal(ctx context.Context, d domain.Deal) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE deals
		SET name = ?, deal_type = ?, deal_subtype = ?, deal_stage = ?,
		    sponsors = ?, close_date = ?, offering_size = ?, unit_price = ?,
		    status = ?, funding_instructions = ?, details_json = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		d.Name, d.DealType, mapStringNull(d.DealSubtype), mapStringNull(d.DealStage),
		mapStringNull(d.Sponsors), mapOptionalTime(d.CloseDate),
		mapOptionalFloat(d.OfferingSize), mapOptionalFloat(d.UnitPrice),
		d.Status, mapStringNull(d.FundingInstructions), mapStringNull(d.DetailsJSON),
		d.ID,
	)
	return err
}

func (r *dealsRepo) DeleteDeal(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = ?`, id)
	return err
}

func scanInterest(row interface{ Scan(...any) error }) (domain.DealInterest, error) {
	var i domain.DealInterest
	err := row.Scan(&i.ID, &i.DealID, &i.UserID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return domain.DealInterest{}, err
	}
	return i, nil
}

func (r *dealsRepo) CreateInterest(ctx context.Context, i domain.DealInterest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO deal_interests (id, deal_id, user_id, status)
		VALUES (?, ?, ?, ?)`,
		i.ID, i.DealID, i.UserID, i.Status,
	)
	return mapConstraint(err)
}

func (r *dealsRepo) GetInterest(ctx context.Context, dealID, userID string) (domain.DealInterest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, deal_id, user_id, status, created_at, updated_at
		FROM deal_interests WHERE deal_id = ? AND user_id = ?`,
		dealID, userID,
	)
	i, err := scanInterest(row)
	if err != nil {
		return domain.DealInterest{}, mapNotFound(err)
	}
	return i, nil
}

func (r *dealsRepo) UpdateInterestStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE deal_interests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id,
	)
	return err
}

func (r *dealsRepo) ListInterestsByUser(ctx context.Context, userID string) ([]domain.DealInterest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, deal_id, user_id, status, created_at, updated_at
		FROM deal_interests WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DealInterest
	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *dealsRepo) ListInterestsByDeal(ctx context.Context, dealID string) ([]domain.DealInterest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, deal_id, user_id, status, created_at, updated_at
		FROM deal_interests WHERE deal_id = ? ORDER BY created_at DESC, id DESC`,
		dealID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DealInterest
	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}
