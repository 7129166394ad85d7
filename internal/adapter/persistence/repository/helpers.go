package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func tableNameOr(name, envKey, def string) string {
	if name != "" {
		return name
	}
	return getenvDefault(envKey, def)
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func stringValue(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

// queryAll follows LastEvaluatedKey until the query is exhausted and
// unmarshals every page into T.
func queryAll[T any](ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, in)
	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func scanAll[T any](ctx context.Context, ddb DynamoAPI, in *dynamodb.ScanInput) ([]T, error) {
	p := dynamodb.NewScanPaginator(ddb, in)
	var out []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// queryFirst returns the first item of a single query page, or ok=false.
func queryFirst[T any](ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) (T, bool, error) {
	var zero T
	out, err := ddb.Query(ctx, in)
	if err != nil {
		return zero, false, err
	}
	if len(out.Items) == 0 {
		return zero, false, nil
	}
	var it T
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return zero, false, err
	}
	return it, true, nil
}

// updateBuilder assembles SET/REMOVE update expressions with placeholder
// names (#attr) and values (:attr).
type updateBuilder struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdate() *updateBuilder {
	return &updateBuilder{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (b *updateBuilder) set(attr string, v types.AttributeValue) *updateBuilder {
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
	b.sets = append(b.sets, "#"+attr+" = :"+attr)
	return b
}

// setIfNotExists writes v only when the attribute is absent.
func (b *updateBuilder) setIfNotExists(attr string, v types.AttributeValue) *updateBuilder {
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
	b.sets = append(b.sets, "#"+attr+" = if_not_exists(#"+attr+", :"+attr+")")
	return b
}

func (b *updateBuilder) increment(attr string) *updateBuilder {
	b.names["#"+attr] = attr
	b.values[":zero"] = &types.AttributeValueMemberN{Value: "0"}
	b.values[":one"] = &types.AttributeValueMemberN{Value: "1"}
	b.sets = append(b.sets, "#"+attr+" = if_not_exists(#"+attr+", :zero) + :one")
	return b
}

func (b *updateBuilder) remove(attr string) *updateBuilder {
	b.names["#"+attr] = attr
	b.removes = append(b.removes, "#"+attr)
	return b
}

func (b *updateBuilder) name(attr string) string {
	b.names["#"+attr] = attr
	return "#" + attr
}

func (b *updateBuilder) expression() string {
	expr := ""
	if len(b.sets) > 0 {
		expr = "SET " + strings.Join(b.sets, ", ")
	}
	if len(b.removes) > 0 {
		if expr != "" {
			expr += " "
		}
		expr += "REMOVE " + strings.Join(b.removes, ", ")
	}
	return expr
}
