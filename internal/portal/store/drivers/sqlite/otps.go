package sqlite

import (
	"context"
	"time"

	"github.com/victorygp/portal/internal/portal/domain"
)

type otpRepo struct {
	db dbtx
}

// ReplaceOTPChallenge enforces one live challenge per user by deleting any
// previous row first. Runs as two statements; callers that need atomicity
// wrap this in a store Tx.
func (r *otpRepo) ReplaceOTPChallenge(ctx context.Context, c domain.OTPChallenge) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM otp_challenges WHERE user_id = ?`, c.UserID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO otp_challenges (id, user_id, code, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Code, c.CreatedAt, c.ExpiresAt,
	)
	return mapConstraint(err)
}

func (r *otpRepo) GetOTPChallengeByUser(ctx context.Context, userID string) (domain.OTPChallenge, error) {
	var c domain.OTPChallenge
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, code, created_at, expires_at
		FROM otp_challenges WHERE user_id = ?`, userID,
	).Scan(&c.ID, &c.UserID, &c.Code, &c.CreatedAt, &c.ExpiresAt)
	if err != nil {
		return domain.OTPChallenge{}, mapNotFound(err)
	}
	return c, nil
}

func (r *otpRepo) DeleteOTPChallenge(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM otp_challenges WHERE id = ?`, id)
	return err
}

func (r *otpRepo) DeleteExpiredOTPChallenges(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM otp_challenges WHERE expires_at < ?`, now)
	return err
}
