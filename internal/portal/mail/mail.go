// Package mail sends the portal's transactional email: login codes and
// new-document notifications. Delivery failures surface to the caller; there
// is no retry queue.
package mail

import "context"

// Sender delivers portal email. The SMTP driver is used in production; tests
// use the in-memory recorder.
type Sender interface {
	// SendLoginOTP delivers a one-time login code.
	SendLoginOTP(ctx context.Context, to, name, code string) error

	// SendDocumentNotification tells a user an admin uploaded a document
	// to their account.
	SendDocumentNotification(ctx context.Context, to, name, documentName string) error
}
