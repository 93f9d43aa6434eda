package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// generateNumericOTP generates a secure random code of the specified length
// using only decimal digits.
func generateNumericOTP(length int) (string, error) {
	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	digits := make([]byte, length)
	for i, b := range randomBytes {
		digits[i] = '0' + b%10
	}
	return string(digits), nil
}

// SendOTPEmail hands the verification code off to the mail provider.
// Replace the body of this function with your actual email integration.
func SendOTPEmail(email, message string) error {
	// For example, you could use an HTTP client to call your mail provider:
	// resp, err := http.Post("https://api.yourmailprovider.com/send", "application/json", payloadReader)
	// Handle response and errors accordingly.
	// For now, we log the outgoing message.
	GetLogger().Sugar().Infof("Sending verification email to %s: %s", email, message)
	return nil
}

// InitiateEmailOTP generates a 6-digit code, stores it in Redis with a TTL,
// and sends it to the given address.
func InitiateEmailOTP(email string, ttl time.Duration) error {
	code, err := generateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	otpKey := OTPCachePrefix + email

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, code, ttl).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate email OTP")
	}

	message := fmt.Sprintf("Your Lillia verification code is: %s. It expires in %v.", code, ttl)
	if err := SendOTPEmail(email, message); err != nil {
		GetLogger().Error("Failed to send OTP email", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}

	GetLogger().Sugar().Infof("Sent OTP to %s (expires in %v)", email, ttl)
	return nil
}

// VerifyEmailOTPRecord retrieves the stored code from Redis and compares it
// to the provided one. On a match the code is deleted from the cache.
func VerifyEmailOTPRecord(email, providedOTP string) error {
	otpKey := OTPCachePrefix + email
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
