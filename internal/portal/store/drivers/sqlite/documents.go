package sqlite

import (
	"context"
	"database/sql"

	"github.com/victorygp/portal/internal/portal/domain"
)

type documentsRepo struct {
	db dbtx
}

const documentColumns = `id, name, label, document_type, requirement_key, deal_name, profile_name, deal_id, profile_id, investment_id, file_path, content_type, size_bytes, uploader_id, uploaded_by_role, recipient_id, uploaded_at`

func scanDocument(row interface{ Scan(...any) error }) (domain.Document, error) {
	var (
		d                         domain.Document
		label, dealName, profName sql.NullString
		reqKey, uploaderRole      sql.NullString
		dealID, profID, invID     sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.Name, &label, &d.DocumentType, &reqKey, &dealName, &profName,
		&dealID, &profID, &invID, &d.FilePath, &d.ContentType, &d.SizeBytes,
		&d.UploaderID, &uploaderRole, &d.RecipientID, &d.UploadedAt,
	)
	if err != nil {
		return domain.Document{}, err
	}
	d.Label = mapNullString(label)
	d.RequirementKey = mapNullString(reqKey)
	d.DealName = mapNullString(dealName)
	d.ProfileName = mapNullString(profName)
	d.DealID = mapNullString(dealID)
	d.ProfileID = mapNullString(profID)
	d.InvestmentID = mapNullString(invID)
	d.UploadedByRole = mapNullString(uploaderRole)
	return d, nil
}

func (r *documentsRepo) CreateDocument(ctx context.Context, d domain.Document) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, label, document_type, requirement_key, deal_name, profile_name, deal_id, profile_id, investment_id, file_path, content_type, size_bytes, uploader_id, uploaded_by_role, recipient_id, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, mapStringNull(d.Label), d.DocumentType,
		mapStringNull(d.RequirementKey), mapStringNull(d.DealName),
		mapStringNull(d.ProfileName), mapStringNull(d.DealID),
		mapStringNull(d.ProfileID), mapStringNull(d.InvestmentID),
		d.FilePath, d.ContentType, d.SizeBytes, d.UploaderID,
		mapStringNull(d.UploadedByRole), d.RecipientID, d.UploadedAt,
	)
	return mapConstraint(err)
}

func (r *documentsRepo) GetDocumentByID(ctx context.Context, id string) (domain.Document, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
	d, err := scanDocument(row)
	if err != nil {
		return domain.Document{}, mapNotFound(err)
	}
	return d, nil
}

func (r *documentsRepo) ListDocumentsByRecipient(ctx context.Context, userID string) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE recipient_id = ? OR uploader_id = ? ORDER BY uploaded_at DESC, id DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *documentsRepo) ListAllDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *documentsRepo) NameExistsForRecipient(ctx context.Context, userID, name string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE recipient_id = ? AND name = ?`,
		userID, name,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *documentsRepo) DeleteDocument(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	return err
}
