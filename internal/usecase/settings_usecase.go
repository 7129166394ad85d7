package usecase

import (
	"context"
	"errors"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

var ErrInvalidRecoveryDelay = errors.New("recovery_email_delay_minutes must be between 1 and 60")

//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/mock_settings_usecase.go -package=mocks

type ISettingsUseCase interface {
	Get(ctx context.Context, merchant entities.Merchant) (entities.UserSettings, error)
	Save(ctx context.Context, merchant entities.Merchant, delayMinutes int) (entities.UserSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the merchant's settings, or the defaults when none were saved.
func (u *SettingsUseCase) Get(ctx context.Context, merchant entities.Merchant) (entities.UserSettings, error) {
	s, err := u.repo.GetByUser(ctx, merchant.UserID)
	if err != nil {
		return entities.UserSettings{}, err
	}
	if s.UserID == "" {
		return entities.DefaultUserSettings(merchant.UserID), nil
	}
	return s, nil
}

func (u *SettingsUseCase) Save(ctx context.Context, merchant entities.Merchant, delayMinutes int) (entities.UserSettings, error) {
	if !entities.ValidRecoveryDelay(delayMinutes) {
		return entities.UserSettings{}, ErrInvalidRecoveryDelay
	}
	return u.repo.Upsert(ctx, entities.UserSettings{
		UserID:                    merchant.UserID,
		RecoveryEmailDelayMinutes: delayMinutes,
		UpdatedAt:                 time.Now().UTC(),
	})
}
