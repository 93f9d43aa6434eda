package notification

import "context"

// Service defines the OTP backend the wizard calls but does not implement:
// code delivery and code verification for an email address.
type Service interface {
	SendCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) (bool, error)
}
