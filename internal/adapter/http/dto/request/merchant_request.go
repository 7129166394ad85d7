package request

// UpdateSettingsRequest is the body of PUT /v1/settings.
type UpdateSettingsRequest struct {
	RecoveryEmailDelayMinutes *int `json:"recovery_email_delay_minutes" binding:"required"`
}

type SaveAPIKeyRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}
