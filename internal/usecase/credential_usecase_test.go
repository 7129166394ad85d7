package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pix_checkout/internal/domain/entities"
	mock_interfaces "pix_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCredentialUseCase_Save(t *testing.T) {
	merchant := entities.Merchant{UserID: "u-1"}

	t.Run("empty key", func(t *testing.T) {
		uc := NewCredentialUseCase(nil, nil, nil, "bestfy")
		if _, err := uc.Save(context.Background(), merchant, "  "); !errors.Is(err, ErrInvalidAPIKey) {
			t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
		}
	})

	t.Run("rejected key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		uc := NewCredentialUseCase(nil, nil, gateway, "bestfy")
		gateway.EXPECT().ValidateKey(gomock.Any(), "sk_bad").Return(&entities.GatewayError{StatusCode: http.StatusForbidden})

		if _, err := uc.Save(context.Background(), merchant, "sk_bad"); !errors.Is(err, ErrAPIKeyRejected) {
			t.Fatalf("expected ErrAPIKeyRejected, got %v", err)
		}
	})

	t.Run("replaces previous key and maps company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		creds := mock_interfaces.NewMockICredentialRepository(ctrl)
		mappings := mock_interfaces.NewMockICompanyMappingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		uc := NewCredentialUseCase(creds, mappings, gateway, "bestfy")

		gateway.EXPECT().ValidateKey(gomock.Any(), "sk_live_1234").Return(nil)
		gateway.EXPECT().FetchCompanyID(gomock.Any(), "sk_live_1234").Return("999", nil)
		creds.EXPECT().GetActiveByUser(gomock.Any(), "u-1", "bestfy").Return(entities.MerchantCredential{ID: "old"}, nil)
		creds.EXPECT().Deactivate(gomock.Any(), "old", gomock.Any()).Return(nil)
		creds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.MerchantCredential) (entities.MerchantCredential, error) {
			if c.Secret() != "sk_live_1234" || c.EncryptedKey == "sk_live_1234" {
				t.Fatalf("secret must be stored encoded: %+v", c)
			}
			if !c.IsActive || c.BestfyCompanyID != "999" || c.Service != "bestfy" {
				t.Fatalf("unexpected credential: %+v", c)
			}
			return c, nil
		})
		mappings.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m entities.CompanyMapping) error {
			if m.CompanyID != "999" || m.UserID != "u-1" {
				t.Fatalf("unexpected mapping: %+v", m)
			}
			return nil
		})

		view, err := uc.Save(context.Background(), merchant, " sk_live_1234 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.MaskedKey != "********1234" {
			t.Fatalf("unexpected masked key %q", view.MaskedKey)
		}
	})

	t.Run("company id lookup failure still saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		creds := mock_interfaces.NewMockICredentialRepository(ctrl)
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		uc := NewCredentialUseCase(creds, nil, gateway, "bestfy")

		gateway.EXPECT().ValidateKey(gomock.Any(), "k").Return(nil)
		gateway.EXPECT().FetchCompanyID(gomock.Any(), "k").Return("", errors.New("timeout"))
		creds.EXPECT().GetActiveByUser(gomock.Any(), "u-1", "bestfy").Return(entities.MerchantCredential{}, nil)
		creds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.MerchantCredential) (entities.MerchantCredential, error) {
			return c, nil
		})

		if _, err := uc.Save(context.Background(), merchant, "k"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCredentialUseCase_GetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock_interfaces.NewMockICredentialRepository(ctrl)
	uc := NewCredentialUseCase(creds, nil, nil, "bestfy")

	creds.EXPECT().GetActiveByUser(gomock.Any(), "u-1", "bestfy").Return(entities.MerchantCredential{}, nil)
	if _, err := uc.GetActive(context.Background(), entities.Merchant{UserID: "u-1"}); !errors.Is(err, ErrCredentialMissing) {
		t.Fatalf("expected ErrCredentialMissing, got %v", err)
	}
}
