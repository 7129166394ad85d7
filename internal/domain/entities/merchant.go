package entities

import (
	"encoding/base64"
	"strings"
	"time"
)

// Merchant is the authenticated account acting on merchant-scoped endpoints.
type Merchant struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// MerchantCredential is a stored gateway secret (api_keys). Only one is
// active per (user, service); replaced keys are deactivated, never deleted.
type MerchantCredential struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Service         string     `json:"service"`
	EncryptedKey    string     `json:"-"`
	BestfyCompanyID string     `json:"bestfy_company_id,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	DeactivatedAt   *time.Time `json:"deactivated_at,omitempty"`
}

// EncodeSecret returns the stored representation of a raw gateway secret.
func EncodeSecret(secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.TrimSpace(secret)))
}

// Secret decodes the stored key. Keys saved before encoding was introduced
// are returned as-is.
func (c MerchantCredential) Secret() string {
	b, err := base64.StdEncoding.DecodeString(c.EncryptedKey)
	if err != nil {
		return c.EncryptedKey
	}
	return string(b)
}

// MaskedSecret shows only the last four characters of the key.
func (c MerchantCredential) MaskedSecret() string {
	s := c.Secret()
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// CompanyMapping is the auditable company -> merchant attribution used to
// assign inbound notifications to an owner.
type CompanyMapping struct {
	CompanyID string    `json:"company_id"`
	UserID    string    `json:"user_id"`
	Source    string    `json:"source"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DefaultRecoveryDelayMinutes = 3
	MinRecoveryDelayMinutes     = 1
	MaxRecoveryDelayMinutes     = 60
)

// UserSettings holds per-merchant recovery preferences.
type UserSettings struct {
	UserID                    string    `json:"user_id"`
	RecoveryEmailDelayMinutes int       `json:"recovery_email_delay_minutes"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{UserID: userID, RecoveryEmailDelayMinutes: DefaultRecoveryDelayMinutes}
}

func ValidRecoveryDelay(minutes int) bool {
	return minutes >= MinRecoveryDelayMinutes && minutes <= MaxRecoveryDelayMinutes
}

// RecoveryDelay returns the configured delay, falling back to the default
// when the stored value is out of range.
func (s UserSettings) RecoveryDelay() time.Duration {
	m := s.RecoveryEmailDelayMinutes
	if !ValidRecoveryDelay(m) {
		m = DefaultRecoveryDelayMinutes
	}
	return time.Duration(m) * time.Minute
}
