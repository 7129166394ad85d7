package repository

import (
	"context"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUserSettingsTableName = "user_settings"

type userSettingsItem struct {
	UserID                    string `dynamodbav:"user_id"`
	RecoveryEmailDelayMinutes int    `dynamodbav:"recovery_email_delay_minutes"`
	UpdatedAt                 string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists UserSettings (PK: user_id).
type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "USER_SETTINGS_TABLE", defaultUserSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetByUser(ctx context.Context, userID string) (entities.UserSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": stringValue(userID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserSettings{}, nil
	}
	var it userSettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserSettings{}, err
	}
	return entities.UserSettings{
		UserID:                    it.UserID,
		RecoveryEmailDelayMinutes: it.RecoveryEmailDelayMinutes,
		UpdatedAt:                 parseTime(it.UpdatedAt),
	}, nil
}

func (r *SettingsDynamoRepository) Upsert(ctx context.Context, s entities.UserSettings) (entities.UserSettings, error) {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(userSettingsItem{
		UserID:                    s.UserID,
		RecoveryEmailDelayMinutes: s.RecoveryEmailDelayMinutes,
		UpdatedAt:                 formatTime(s.UpdatedAt),
	})
	if err != nil {
		return entities.UserSettings{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.UserSettings{}, err
	}
	return s, nil
}
