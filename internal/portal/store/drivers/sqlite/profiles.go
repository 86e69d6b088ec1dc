package sqlite

import (
	"context"
	"database/sql"

	"github.com/victorygp/portal/internal/portal/domain"
)

type profilesRepo struct {
	db dbtx
}

const profileColumns = `id, user_id, entity_name, jurisdiction, tax_classification, profile_type, contact_email, contact_phone, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (domain.Profile, error) {
	var (
		p                                                   domain.Profile
		jurisdiction, taxClass, profileType, cEmail, cPhone sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.EntityName, &jurisdiction, &taxClass,
		&profileType, &cEmail, &cPhone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Profile{}, err
	}
	p.Jurisdiction = mapNullString(jurisdiction)
	p.TaxClassification = mapNullString(taxClass)
	p.ProfileType = mapNullString(profileType)
	p.ContactEmail = mapNullString(cEmail)
	p.ContactPhone = mapNullString(cPhone)
	return p, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, user_id, entity_name, jurisdiction, tax_classification, profile_type, contact_email, contact_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.EntityName, mapStringNull(p.Jurisdiction),
		mapStringNull(p.TaxClassification), mapStringNull(p.ProfileType),
		mapStringNull(p.ContactEmail), mapStringNull(p.ContactPhone),
	)
	return mapConstraint(err)
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) ListProfilesByUser(ctx context.Context, userID string) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profilesRepo) ListAllProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profilesRepo) UpdateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET entity_name = ?, jurisdiction = ?, tax_classification = ?,
		    profile_type = ?, contact_email = ?, contact_phone = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		p.EntityName, mapStringNull(p.Jurisdiction), mapStringNull(p.TaxClassification),
		mapStringNull(p.ProfileType), mapStringNull(p.ContactEmail),
		mapStringNull(p.ContactPhone), p.ID,
	)
	return err
}

func (r *profilesRepo) DeleteProfile(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	return err
}
