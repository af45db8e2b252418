package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookEventsTableName = "webhook_events"
	webhookEventsTransactionIndex = "transaction_id-index"
)

type webhookEventItem struct {
	ID              string `dynamodbav:"id"`
	TransactionKind string `dynamodbav:"transaction_kind"`
	TransactionID   string `dynamodbav:"transaction_id"`
	Payload         string `dynamodbav:"payload"`
	ProcessedAt     string `dynamodbav:"processed_at"`
}

// WebhookEventDynamoRepository keeps the append-only webhook audit trail.
// Records are written once and never updated; the conditional put only guards
// against uuid collisions, not against repeated deliveries, which are stored
// as separate records on purpose.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: transaction_id-index (PK: transaction_id)

type WebhookEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb *dynamodb.Client) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
	}
}

func (r *WebhookEventDynamoRepository) Append(ctx context.Context, ev entities.WebhookEvent) (entities.WebhookEvent, error) {
	it := webhookEventItem{
		ID:              ev.ID,
		TransactionKind: string(ev.TransactionKind),
		TransactionID:   ev.TransactionID,
		Payload:         string(ev.Payload),
		ProcessedAt:     ev.ProcessedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WebhookEvent{}, err
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
		return entities.WebhookEvent{}, err
	}
	return ev, nil
}

func (r *WebhookEventDynamoRepository) ListByTransactionID(ctx context.Context, transactionID string) ([]entities.WebhookEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(webhookEventsTransactionIndex),
		KeyConditionExpression: aws.String("transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeWebhookEvents(out.Items)
}

// decodeWebhookEvents unmarshals queried items and orders them oldest first.
// The transaction_id index has no range key, so query order is unspecified.
func decodeWebhookEvents(items []map[string]types.AttributeValue) ([]entities.WebhookEvent, error) {
	events := make([]entities.WebhookEvent, 0, len(items))
	for _, raw := range items {
		var it webhookEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromWebhookEventItem(it))
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].ProcessedAt.Before(events[j].ProcessedAt)
	})
	return events, nil
}

func fromWebhookEventItem(it webhookEventItem) entities.WebhookEvent {
	processed, _ := time.Parse(time.RFC3339Nano, it.ProcessedAt)
	return entities.WebhookEvent{
		ID:              it.ID,
		TransactionKind: entities.TransactionKind(it.TransactionKind),
		TransactionID:   it.TransactionID,
		Payload:         json.RawMessage(it.Payload),
		ProcessedAt:     processed,
	}
}
