package repository

import (
	"context"
	"errors"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAPIKeysTableName = "api_keys"
	apiKeysUserIDIndex      = "user_id-index"
	apiKeysCompanyIDIndex   = "bestfy_company_id-index"
)

type credentialItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	Service         string `dynamodbav:"service"`
	EncryptedKey    string `dynamodbav:"encrypted_key"`
	BestfyCompanyID string `dynamodbav:"bestfy_company_id,omitempty"`
	IsActive        bool   `dynamodbav:"is_active"`
	CreatedAt       string `dynamodbav:"created_at"`
	DeactivatedAt   string `dynamodbav:"deactivated_at,omitempty"`
}

// CredentialDynamoRepository persists merchant gateway keys.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//   - GSI: bestfy_company_id-index (PK: bestfy_company_id)
type CredentialDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICredentialRepository = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb DynamoAPI, tableName string) *CredentialDynamoRepository {
	return &CredentialDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "API_KEYS_TABLE", defaultAPIKeysTableName),
	}
}

func (r *CredentialDynamoRepository) Create(ctx context.Context, c entities.MerchantCredential) (entities.MerchantCredential, error) {
	av, err := attributevalue.MarshalMap(toCredentialItem(c))
	if err != nil {
		return entities.MerchantCredential{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.MerchantCredential{}, interfaces.ErrAlreadyExists
		}
		return entities.MerchantCredential{}, err
	}
	return c, nil
}

// GetActiveByUser returns the newest active credential of the user for service.
func (r *CredentialDynamoRepository) GetActiveByUser(ctx context.Context, userID, service string) (entities.MerchantCredential, error) {
	items, err := queryAll[credentialItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(apiKeysUserIDIndex),
		KeyConditionExpression: aws.String("#uid = :uid"),
		FilterExpression:       aws.String("#active = :active AND #service = :service"),
		ExpressionAttributeNames: map[string]string{
			"#uid":     "user_id",
			"#active":  "is_active",
			"#service": "service",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":     stringValue(userID),
			":active":  &types.AttributeValueMemberBOOL{Value: true},
			":service": stringValue(service),
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil || len(items) == 0 {
		return entities.MerchantCredential{}, err
	}
	return fromCredentialItem(newestCredential(items)), nil
}

func (r *CredentialDynamoRepository) FindActiveByCompanyID(ctx context.Context, companyID string) (entities.MerchantCredential, error) {
	items, err := queryAll[credentialItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(apiKeysCompanyIDIndex),
		KeyConditionExpression: aws.String("#cid = :cid"),
		FilterExpression:       aws.String("#active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#cid":    "bestfy_company_id",
			"#active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    stringValue(companyID),
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil || len(items) == 0 {
		return entities.MerchantCredential{}, err
	}
	return fromCredentialItem(newestCredential(items)), nil
}

func (r *CredentialDynamoRepository) ListActive(ctx context.Context, service string) ([]entities.MerchantCredential, error) {
	items, err := scanAll[credentialItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :active AND #service = :service"),
		ExpressionAttributeNames: map[string]string{
			"#active":  "is_active",
			"#service": "service",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":  &types.AttributeValueMemberBOOL{Value: true},
			":service": stringValue(service),
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.MerchantCredential, 0, len(items))
	for _, it := range items {
		out = append(out, fromCredentialItem(it))
	}
	return out, nil
}

func (r *CredentialDynamoRepository) Deactivate(ctx context.Context, id string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :inactive, #deactivated_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#active":         "is_active",
			"#deactivated_at": "deactivated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inactive": &types.AttributeValueMemberBOOL{Value: false},
			":at":       stringValue(formatTime(at)),
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

func newestCredential(items []credentialItem) credentialItem {
	latest := items[0]
	for _, it := range items[1:] {
		if it.CreatedAt > latest.CreatedAt {
			latest = it
		}
	}
	return latest
}

func toCredentialItem(c entities.MerchantCredential) credentialItem {
	return credentialItem{
		ID:              c.ID,
		UserID:          c.UserID,
		Service:         c.Service,
		EncryptedKey:    c.EncryptedKey,
		BestfyCompanyID: c.BestfyCompanyID,
		IsActive:        c.IsActive,
		CreatedAt:       formatTime(c.CreatedAt),
		DeactivatedAt:   formatTimePtr(c.DeactivatedAt),
	}
}

func fromCredentialItem(it credentialItem) entities.MerchantCredential {
	return entities.MerchantCredential{
		ID:              it.ID,
		UserID:          it.UserID,
		Service:         it.Service,
		EncryptedKey:    it.EncryptedKey,
		BestfyCompanyID: it.BestfyCompanyID,
		IsActive:        it.IsActive,
		CreatedAt:       parseTime(it.CreatedAt),
		DeactivatedAt:   parseTimePtr(it.DeactivatedAt),
	}
}

const defaultCompanyMappingsTableName = "merchant_company_mappings"

type companyMappingItem struct {
	CompanyID string `dynamodbav:"company_id"`
	UserID    string `dynamodbav:"user_id"`
	Source    string `dynamodbav:"source"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CompanyMappingDynamoRepository stores company_id -> user_id attributions.
//
// Table requirements:
//   - PK: company_id (string)
type CompanyMappingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICompanyMappingRepository = (*CompanyMappingDynamoRepository)(nil)

func NewCompanyMappingDynamoRepository(ddb DynamoAPI, tableName string) *CompanyMappingDynamoRepository {
	return &CompanyMappingDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "COMPANY_MAPPINGS_TABLE", defaultCompanyMappingsTableName),
	}
}

func (r *CompanyMappingDynamoRepository) GetByCompanyID(ctx context.Context, companyID string) (entities.CompanyMapping, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"company_id": stringValue(companyID),
		},
	})
	if err != nil {
		return entities.CompanyMapping{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompanyMapping{}, nil
	}
	var it companyMappingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CompanyMapping{}, err
	}
	return entities.CompanyMapping{
		CompanyID: it.CompanyID,
		UserID:    it.UserID,
		Source:    it.Source,
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}

func (r *CompanyMappingDynamoRepository) Upsert(ctx context.Context, m entities.CompanyMapping) error {
	if m.CompanyID == "" || m.UserID == "" {
		return errors.New("company mapping requires company_id and user_id")
	}
	av, err := attributevalue.MarshalMap(companyMappingItem{
		CompanyID: m.CompanyID,
		UserID:    m.UserID,
		Source:    m.Source,
		UpdatedAt: formatTime(m.UpdatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
