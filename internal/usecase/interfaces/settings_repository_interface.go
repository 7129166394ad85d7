package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/mock_settings_repository_interface.go -package=mock_interfaces

type ISettingsRepository interface {
	GetByUser(ctx context.Context, userID string) (entities.UserSettings, error)
	Upsert(ctx context.Context, s entities.UserSettings) (entities.UserSettings, error)
}
