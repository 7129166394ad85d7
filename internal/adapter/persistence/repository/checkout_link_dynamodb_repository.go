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
	defaultCheckoutLinksTableName = "checkout_links"
	checkoutSlugIndex             = "checkout_slug-index"
	checkoutThankYouSlugIndex     = "thank_you_slug-index"
	checkoutPaymentBestfyIDIndex  = "payment_bestfy_id-index"
	checkoutPaymentIDIndex        = "payment_id-index"
	checkoutUserIDIndex           = "user_id-index"
)

type checkoutLinkItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id,omitempty"`
	PaymentID    string `dynamodbav:"payment_id,omitempty"`
	CheckoutSlug string `dynamodbav:"checkout_slug,omitempty"`

	CustomerName     string `dynamodbav:"customer_name"`
	CustomerEmail    string `dynamodbav:"customer_email"`
	CustomerDocument string `dynamodbav:"customer_document,omitempty"`
	CustomerPhone    string `dynamodbav:"customer_phone,omitempty"`
	ProductName      string `dynamodbav:"product_name"`

	Amount             int64 `dynamodbav:"amount"`
	OriginalAmount     int64 `dynamodbav:"original_amount"`
	DiscountPercentage int   `dynamodbav:"discount_percentage"`
	DiscountAmount     int64 `dynamodbav:"discount_amount"`
	FinalAmount        int64 `dynamodbav:"final_amount"`

	PaymentBestfyID string `dynamodbav:"payment_bestfy_id,omitempty"`
	PaymentStatus   string `dynamodbav:"payment_status"`
	PixQRCode       string `dynamodbav:"pix_qrcode,omitempty"`
	PixExpiresAt    string `dynamodbav:"pix_expires_at,omitempty"`
	PixGeneratedAt  string `dynamodbav:"pix_generated_at,omitempty"`
	LastStatusCheck string `dynamodbav:"last_status_check,omitempty"`

	AccessCount    int    `dynamodbav:"access_count"`
	LastAccessedAt string `dynamodbav:"last_accessed_at,omitempty"`

	ExpiresAt          string `dynamodbav:"expires_at"`
	ThankYouSlug       string `dynamodbav:"thank_you_slug,omitempty"`
	ThankYouAccessedAt string `dynamodbav:"thank_you_accessed_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CheckoutLinkDynamoRepository persists CheckoutLink entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: checkout_slug-index (PK: checkout_slug)
//   - GSI: thank_you_slug-index (PK: thank_you_slug)
//   - GSI: payment_bestfy_id-index (PK: payment_bestfy_id)
//   - GSI: payment_id-index (PK: payment_id, SK: created_at)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
type CheckoutLinkDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICheckoutLinkRepository = (*CheckoutLinkDynamoRepository)(nil)

func NewCheckoutLinkDynamoRepository(ddb DynamoAPI, tableName string) *CheckoutLinkDynamoRepository {
	return &CheckoutLinkDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "CHECKOUT_LINKS_TABLE", defaultCheckoutLinksTableName),
	}
}

func (r *CheckoutLinkDynamoRepository) Create(ctx context.Context, l entities.CheckoutLink) (entities.CheckoutLink, error) {
	av, err := attributevalue.MarshalMap(toCheckoutLinkItem(l))
	if err != nil {
		return entities.CheckoutLink{}, err
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
			return entities.CheckoutLink{}, interfaces.ErrAlreadyExists
		}
		return entities.CheckoutLink{}, err
	}
	return l, nil
}

func (r *CheckoutLinkDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutLink, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutLink{}, nil
	}

	var it checkoutLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkItem(it), nil
}

func (r *CheckoutLinkDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.CheckoutLink, error) {
	return r.getByIndex(ctx, checkoutSlugIndex, "checkout_slug", slug)
}

func (r *CheckoutLinkDynamoRepository) GetByThankYouSlug(ctx context.Context, slug string) (entities.CheckoutLink, error) {
	return r.getByIndex(ctx, checkoutThankYouSlugIndex, "thank_you_slug", slug)
}

func (r *CheckoutLinkDynamoRepository) GetLatestByPaymentID(ctx context.Context, paymentID string) (entities.CheckoutLink, error) {
	it, ok, err := queryFirst[checkoutLinkItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkoutPaymentIDIndex),
		KeyConditionExpression: aws.String("#pid = :pid"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "payment_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": stringValue(paymentID),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil || !ok {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkItem(it), nil
}

func (r *CheckoutLinkDynamoRepository) ListByPaymentBestfyID(ctx context.Context, bestfyID string) ([]entities.CheckoutLink, error) {
	return r.listByIndex(ctx, checkoutPaymentBestfyIDIndex, "payment_bestfy_id", bestfyID)
}

func (r *CheckoutLinkDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.CheckoutLink, error) {
	return r.listByIndex(ctx, checkoutUserIDIndex, "user_id", userID)
}

func (r *CheckoutLinkDynamoRepository) ListAll(ctx context.Context) ([]entities.CheckoutLink, error) {
	items, err := scanAll[checkoutLinkItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromCheckoutLinkItems(items), nil
}

func (r *CheckoutLinkDynamoRepository) PropagatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, thankYouSlug string, at time.Time) (entities.CheckoutLink, error) {
	u := newUpdate().
		set("payment_status", stringValue(string(status))).
		set("last_status_check", stringValue(formatTime(at))).
		set("updated_at", stringValue(formatTime(at)))
	if thankYouSlug != "" {
		u.setIfNotExists("thank_you_slug", stringValue(thankYouSlug))
	}
	l, err := r.update(ctx, id, u, "")
	if errors.Is(err, interfaces.ErrConditionNotMet) {
		return entities.CheckoutLink{}, nil
	}
	return l, err
}

func (r *CheckoutLinkDynamoRepository) SavePix(ctx context.Context, id string, upd entities.PixUpdate) (entities.CheckoutLink, error) {
	u := newUpdate().
		set("payment_bestfy_id", stringValue(upd.PaymentBestfyID)).
		set("payment_status", stringValue(string(upd.PaymentStatus))).
		set("pix_qrcode", stringValue(upd.QRCode)).
		set("pix_generated_at", stringValue(formatTime(upd.GeneratedAt))).
		set("updated_at", stringValue(formatTime(upd.GeneratedAt)))
	if upd.ExpiresAt != nil {
		u.set("pix_expires_at", stringValue(formatTime(*upd.ExpiresAt)))
	} else {
		u.remove("pix_expires_at")
	}
	l, err := r.update(ctx, id, u, "")
	if errors.Is(err, interfaces.ErrConditionNotMet) {
		return entities.CheckoutLink{}, nil
	}
	return l, err
}

func (r *CheckoutLinkDynamoRepository) IncrementAccess(ctx context.Context, id string, at time.Time) error {
	u := newUpdate().
		increment("access_count").
		set("last_accessed_at", stringValue(formatTime(at)))
	_, err := r.update(ctx, id, u, "")
	if errors.Is(err, interfaces.ErrConditionNotMet) {
		return nil
	}
	return err
}

func (r *CheckoutLinkDynamoRepository) MarkThankYouAccessed(ctx context.Context, id string, at time.Time) error {
	u := newUpdate().
		set("thank_you_accessed_at", stringValue(formatTime(at))).
		set("updated_at", stringValue(formatTime(at)))
	_, err := r.update(ctx, id, u, "attribute_not_exists(#thank_you_accessed_at)")
	return err
}

func (r *CheckoutLinkDynamoRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": stringValue(id),
	}
}

func (r *CheckoutLinkDynamoRepository) getByIndex(ctx context.Context, index, attr, value string) (entities.CheckoutLink, error) {
	it, ok, err := queryFirst[checkoutLinkItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringValue(value),
		},
		Limit: aws.Int32(1),
	})
	if err != nil || !ok {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkItem(it), nil
}

func (r *CheckoutLinkDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.CheckoutLink, error) {
	items, err := queryAll[checkoutLinkItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringValue(value),
		},
	})
	if err != nil {
		return nil, err
	}
	return fromCheckoutLinkItems(items), nil
}

func (r *CheckoutLinkDynamoRepository) update(ctx context.Context, id string, u *updateBuilder, extraCondition string) (entities.CheckoutLink, error) {
	cond := "attribute_exists(" + u.name("id") + ")"
	if extraCondition != "" {
		cond += " AND " + extraCondition
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(u.expression()),
		ExpressionAttributeValues: u.values,
		ExpressionAttributeNames:  u.names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CheckoutLink{}, interfaces.ErrConditionNotMet
		}
		return entities.CheckoutLink{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CheckoutLink{}, nil
	}
	var it checkoutLinkItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkItem(it), nil
}

func toCheckoutLinkItem(l entities.CheckoutLink) checkoutLinkItem {
	return checkoutLinkItem{
		ID:                 l.ID,
		UserID:             l.UserID,
		PaymentID:          l.PaymentID,
		CheckoutSlug:       l.CheckoutSlug,
		CustomerName:       l.CustomerName,
		CustomerEmail:      l.CustomerEmail,
		CustomerDocument:   l.CustomerDocument,
		CustomerPhone:      l.CustomerPhone,
		ProductName:        l.ProductName,
		Amount:             l.Amount,
		OriginalAmount:     l.OriginalAmount,
		DiscountPercentage: l.DiscountPercentage,
		DiscountAmount:     l.DiscountAmount,
		FinalAmount:        l.FinalAmount,
		PaymentBestfyID:    l.PaymentBestfyID,
		PaymentStatus:      string(l.PaymentStatus),
		PixQRCode:          l.PixQRCode,
		PixExpiresAt:       formatTimePtr(l.PixExpiresAt),
		PixGeneratedAt:     formatTimePtr(l.PixGeneratedAt),
		LastStatusCheck:    formatTimePtr(l.LastStatusCheck),
		AccessCount:        l.AccessCount,
		LastAccessedAt:     formatTimePtr(l.LastAccessedAt),
		ExpiresAt:          formatTime(l.ExpiresAt),
		ThankYouSlug:       l.ThankYouSlug,
		ThankYouAccessedAt: formatTimePtr(l.ThankYouAccessedAt),
		CreatedAt:          formatTime(l.CreatedAt),
		UpdatedAt:          formatTime(l.UpdatedAt),
	}
}

func fromCheckoutLinkItem(it checkoutLinkItem) entities.CheckoutLink {
	return entities.CheckoutLink{
		ID:                 it.ID,
		UserID:             it.UserID,
		PaymentID:          it.PaymentID,
		CheckoutSlug:       it.CheckoutSlug,
		CustomerName:       it.CustomerName,
		CustomerEmail:      it.CustomerEmail,
		CustomerDocument:   it.CustomerDocument,
		CustomerPhone:      it.CustomerPhone,
		ProductName:        it.ProductName,
		Amount:             it.Amount,
		OriginalAmount:     it.OriginalAmount,
		DiscountPercentage: it.DiscountPercentage,
		DiscountAmount:     it.DiscountAmount,
		FinalAmount:        it.FinalAmount,
		PaymentBestfyID:    it.PaymentBestfyID,
		PaymentStatus:      entities.PaymentStatus(it.PaymentStatus),
		PixQRCode:          it.PixQRCode,
		PixExpiresAt:       parseTimePtr(it.PixExpiresAt),
		PixGeneratedAt:     parseTimePtr(it.PixGeneratedAt),
		LastStatusCheck:    parseTimePtr(it.LastStatusCheck),
		AccessCount:        it.AccessCount,
		LastAccessedAt:     parseTimePtr(it.LastAccessedAt),
		ExpiresAt:          parseTime(it.ExpiresAt),
		ThankYouSlug:       it.ThankYouSlug,
		ThankYouAccessedAt: parseTimePtr(it.ThankYouAccessedAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func fromCheckoutLinkItems(items []checkoutLinkItem) []entities.CheckoutLink {
	out := make([]entities.CheckoutLink, 0, len(items))
	for _, it := range items {
		out = append(out, fromCheckoutLinkItem(it))
	}
	return out
}
