// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for wizard session cache keys.
const SessionCachePrefix = "wizardSession:"

// OTPCachePrefix is the prefix used for verification code cache keys.
const OTPCachePrefix = "otp:"

// SessionCacheTTL is the time-to-live for wizard session entries.
const SessionCacheTTL = 30 * time.Minute
