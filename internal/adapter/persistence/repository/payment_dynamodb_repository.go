package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsIDIndex          = "id-index"
	paymentsUserIDIndex      = "user_id-index"
	paymentsCustomerEmailIdx = "customer_email-index"
	paymentsStatusIndex      = "status-index"
)

type paymentItem struct {
	BestfyID string `dynamodbav:"bestfy_id"`
	ID       string `dynamodbav:"id"`
	UserID   string `dynamodbav:"user_id,omitempty"`

	CustomerName     string `dynamodbav:"customer_name"`
	CustomerEmail    string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone    string `dynamodbav:"customer_phone,omitempty"`
	CustomerDocument string `dynamodbav:"customer_document,omitempty"`
	ProductName      string `dynamodbav:"product_name"`

	Amount        int64  `dynamodbav:"amount"`
	Currency      string `dynamodbav:"currency"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Status        string `dynamodbav:"status"`
	Source        string `dynamodbav:"source,omitempty"`
	OwnerSource   string `dynamodbav:"owner_source,omitempty"`

	RecoveryEmailSentAt    string `dynamodbav:"recovery_email_sent_at,omitempty"`
	RecoverySource         string `dynamodbav:"recovery_source,omitempty"`
	RecoveryCheckoutLinkID string `dynamodbav:"recovery_checkout_link_id,omitempty"`
	ConvertedFromRecovery  bool   `dynamodbav:"converted_from_recovery"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: bestfy_id (string)
//   - GSI: id-index (PK: id)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//   - GSI: customer_email-index (PK: customer_email, SK: created_at)
//   - GSI: status-index (PK: status, SK: created_at)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Insert(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#bestfy_id)"),
		ExpressionAttributeNames: map[string]string{
			"#bestfy_id": "bestfy_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByBestfyID(ctx context.Context, bestfyID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(bestfyID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	it, ok, err := queryFirst[paymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": stringValue(id),
		},
		Limit: aws.Int32(1),
	})
	if err != nil || !ok {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Patch(ctx context.Context, bestfyID string, patch entities.PaymentPatch) (entities.Payment, error) {
	at := patch.UpdatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	u := newUpdate().
		set("status", stringValue(string(patch.Status))).
		set("updated_at", stringValue(formatTime(at)))
	if patch.Amount > 0 {
		u.set("amount", &types.AttributeValueMemberN{Value: strconv.FormatInt(patch.Amount, 10)})
	}
	for attr, v := range map[string]string{
		"customer_name":     patch.CustomerName,
		"customer_email":    patch.CustomerEmail,
		"customer_phone":    patch.CustomerPhone,
		"customer_document": patch.CustomerDocument,
		"product_name":      patch.ProductName,
	} {
		if v != "" {
			u.set(attr, stringValue(v))
		}
	}
	if patch.MarkConverted {
		u.set("converted_from_recovery", &types.AttributeValueMemberBOOL{Value: true})
	}

	out, err := r.update(ctx, bestfyID, u, "")
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionNotMet) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return out, nil
}

func (r *PaymentDynamoRepository) SetRecoveryLinkage(ctx context.Context, bestfyID, checkoutLinkID string) error {
	u := newUpdate().
		set("recovery_source", stringValue(entities.RecoverySourceCheckout)).
		set("recovery_checkout_link_id", stringValue(checkoutLinkID)).
		set("updated_at", stringValue(formatTime(time.Now().UTC())))
	_, err := r.update(ctx, bestfyID, u, "")
	if errors.Is(err, interfaces.ErrConditionNotMet) {
		return nil
	}
	return err
}

func (r *PaymentDynamoRepository) MarkConvertedFromRecovery(ctx context.Context, bestfyID string) error {
	u := newUpdate().
		set("converted_from_recovery", &types.AttributeValueMemberBOOL{Value: true}).
		set("updated_at", stringValue(formatTime(time.Now().UTC())))
	_, err := r.update(ctx, bestfyID, u, "")
	if errors.Is(err, interfaces.ErrConditionNotMet) {
		return nil
	}
	return err
}

func (r *PaymentDynamoRepository) MarkRecoveryEmailSent(ctx context.Context, bestfyID string, at time.Time) error {
	u := newUpdate().
		set("recovery_email_sent_at", stringValue(formatTime(at))).
		set("updated_at", stringValue(formatTime(at)))
	_, err := r.update(ctx, bestfyID, u, "attribute_not_exists(#recovery_email_sent_at)")
	return err
}

func (r *PaymentDynamoRepository) FindLatestByCustomerEmail(ctx context.Context, email string) (entities.Payment, error) {
	it, ok, err := queryFirst[paymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCustomerEmailIdx),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "customer_email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": stringValue(email),
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil || !ok {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListBestfyIDsByUser(ctx context.Context, userID string) ([]string, error) {
	items, err := queryAll[paymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("#uid = :uid"),
		ProjectionExpression:   aws.String("#bid"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "user_id",
			"#bid": "bestfy_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringValue(userID),
		},
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.BestfyID)
	}
	return ids, nil
}

func (r *PaymentDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Payment, error) {
	items, err := queryAll[paymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("#uid = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringValue(userID),
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return fromPaymentItems(items), nil
}

// ListPendingRecovery returns PIX payments still waiting for payment that
// never received a recovery email.
func (r *PaymentDynamoRepository) ListPendingRecovery(ctx context.Context) ([]entities.Payment, error) {
	items, err := queryAll[paymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("attribute_not_exists(#sent) AND #method = :method"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#sent":   "recovery_email_sent_at",
			"#method": "payment_method",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": stringValue(string(entities.PaymentStatusWaitingPayment)),
			":method": stringValue(entities.PaymentMethodPix),
		},
	})
	if err != nil {
		return nil, err
	}
	return fromPaymentItems(items), nil
}

func (r *PaymentDynamoRepository) ListAll(ctx context.Context) ([]entities.Payment, error) {
	items, err := scanAll[paymentItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromPaymentItems(items), nil
}

func (r *PaymentDynamoRepository) key(bestfyID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"bestfy_id": stringValue(bestfyID),
	}
}

// update applies u to an existing item. extraCondition is AND-ed with the
// existence check; a failed condition yields ErrConditionNotMet.
func (r *PaymentDynamoRepository) update(ctx context.Context, bestfyID string, u *updateBuilder, extraCondition string) (entities.Payment, error) {
	cond := "attribute_exists(" + u.name("bestfy_id") + ")"
	if extraCondition != "" {
		cond += " AND " + extraCondition
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(bestfyID),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(u.expression()),
		ExpressionAttributeValues: u.values,
		ExpressionAttributeNames:  u.names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrConditionNotMet
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		BestfyID:               p.BestfyID,
		ID:                     p.ID,
		UserID:                 p.UserID,
		CustomerName:           p.CustomerName,
		CustomerEmail:          p.CustomerEmail,
		CustomerPhone:          p.CustomerPhone,
		CustomerDocument:       p.CustomerDocument,
		ProductName:            p.ProductName,
		Amount:                 p.Amount,
		Currency:               p.Currency,
		PaymentMethod:          p.PaymentMethod,
		Status:                 string(p.Status),
		Source:                 p.Source,
		OwnerSource:            string(p.OwnerSource),
		RecoveryEmailSentAt:    formatTimePtr(p.RecoveryEmailSentAt),
		RecoverySource:         p.RecoverySource,
		RecoveryCheckoutLinkID: p.RecoveryCheckoutLinkID,
		ConvertedFromRecovery:  p.ConvertedFromRecovery,
		CreatedAt:              formatTime(p.CreatedAt),
		UpdatedAt:              formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                     it.ID,
		BestfyID:               it.BestfyID,
		UserID:                 it.UserID,
		CustomerName:           it.CustomerName,
		CustomerEmail:          it.CustomerEmail,
		CustomerPhone:          it.CustomerPhone,
		CustomerDocument:       it.CustomerDocument,
		ProductName:            it.ProductName,
		Amount:                 it.Amount,
		Currency:               it.Currency,
		PaymentMethod:          it.PaymentMethod,
		Status:                 entities.PaymentStatus(it.Status),
		Source:                 it.Source,
		OwnerSource:            entities.OwnerSource(it.OwnerSource),
		RecoveryEmailSentAt:    parseTimePtr(it.RecoveryEmailSentAt),
		RecoverySource:         it.RecoverySource,
		RecoveryCheckoutLinkID: it.RecoveryCheckoutLinkID,
		ConvertedFromRecovery:  it.ConvertedFromRecovery,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}

func fromPaymentItems(items []paymentItem) []entities.Payment {
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	return out
}
