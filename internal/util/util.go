package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

func NowISO() string {
	return time.Now().Format(time.RFC3339)
}

// NewRequestID tags one processed upload in the logs.
func NewRequestID() string {
	return uuid.NewString()[:8]
}

func NormalizeBool(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "yes", "true", "1", "y", "on", "all":
		return true
	default:
		return false
	}
}

func HMACSHA256Hex(secret, msg string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil))
}

// SheetToken signs a sheet range for the public announcement link.
func SheetToken(secret, sheetRange string) string {
	return HMACSHA256Hex(secret, "sheet:"+sheetRange)
}

// ValidToken compares a presented token with the expected one in constant time.
func ValidToken(got, want string) bool {
	return hmac.Equal([]byte(got), []byte(want))
}
