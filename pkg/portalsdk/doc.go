// Package portalsdk is a Go client for the investor portal service.
//
// Unauthenticated operations hang off SDKClient; everything else requires a
// Session, obtained by completing the two-step email login:
//
//	client := portalsdk.NewSDKClient("http://localhost:8080")
//
//	// Step 1: password check triggers the OTP email.
//	init, err := client.LoginInit(ctx, "jane@example.com", "hunter2!")
//
//	// Step 2: redeem the emailed code for a session.
//	session, err := client.LoginVerify(ctx, "jane@example.com", "123456")
//
//	investments, err := session.ListInvestments(ctx)
//
// Sessions hold a bearer token; there is no refresh flow. When a token
// expires, log in again.
package portalsdk
