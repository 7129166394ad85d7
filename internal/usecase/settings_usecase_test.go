package usecase

import (
	"context"
	"errors"
	"testing"

	"pix_checkout/internal/domain/entities"
	mock_interfaces "pix_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Save(t *testing.T) {
	merchant := entities.Merchant{UserID: "u-1"}

	for _, delay := range []int{0, 61, -5} {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		if _, err := uc.Save(context.Background(), merchant, delay); !errors.Is(err, ErrInvalidRecoveryDelay) {
			t.Fatalf("delay %d: expected ErrInvalidRecoveryDelay, got %v", delay, err)
		}
	}

	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	uc := NewSettingsUseCase(repo)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.UserSettings) (entities.UserSettings, error) {
		if s.UserID != "u-1" || s.RecoveryEmailDelayMinutes != 3 || s.UpdatedAt.IsZero() {
			t.Fatalf("unexpected settings: %+v", s)
		}
		return s, nil
	})
	got, err := uc.Save(context.Background(), merchant, 3)
	if err != nil || got.RecoveryEmailDelayMinutes != 3 {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
}

func TestSettingsUseCase_Get(t *testing.T) {
	merchant := entities.Merchant{UserID: "u-1"}

	t.Run("defaults when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		repo.EXPECT().GetByUser(gomock.Any(), "u-1").Return(entities.UserSettings{}, nil)

		s, err := NewSettingsUseCase(repo).Get(context.Background(), merchant)
		if err != nil || s.RecoveryEmailDelayMinutes != entities.DefaultRecoveryDelayMinutes || s.UserID != "u-1" {
			t.Fatalf("unexpected settings %+v err=%v", s, err)
		}
	})

	t.Run("stored value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		repo.EXPECT().GetByUser(gomock.Any(), "u-1").Return(entities.UserSettings{UserID: "u-1", RecoveryEmailDelayMinutes: 30}, nil)

		s, err := NewSettingsUseCase(repo).Get(context.Background(), merchant)
		if err != nil || s.RecoveryEmailDelayMinutes != 30 {
			t.Fatalf("unexpected settings %+v err=%v", s, err)
		}
	})
}
