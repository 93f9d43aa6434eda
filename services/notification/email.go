package notification

import (
	"context"
	"fmt"
	"time"

	"lillia/config"
	"lillia/utils"
)

// DefaultEmailService is the production implementation. Codes live in the
// OTP Redis cache with a TTL and are delivered through the mail handoff in
// utils.
type DefaultEmailService struct{}

// NewDefaultEmailService returns the Redis-backed OTP service.
func NewDefaultEmailService() *DefaultEmailService {
	return &DefaultEmailService{}
}

func (s *DefaultEmailService) SendCode(ctx context.Context, email string) error {
	ttl := time.Duration(config.AppConfig.OTPTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if err := utils.InitiateEmailOTP(email, ttl); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}

func (s *DefaultEmailService) VerifyCode(ctx context.Context, email, code string) (bool, error) {
	if err := utils.VerifyEmailOTPRecord(email, code); err != nil {
		return false, nil
	}
	return true, nil
}
