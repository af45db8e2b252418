package queue

import (
	"context"
	"os"
	"strconv"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultConfirmationJobsTableName = "confirmation_jobs"

// queueTimeLayout is fixed width so the lexicographic not_before comparison in
// NextPending's filter expression matches chronological order.
const queueTimeLayout = "2006-01-02T15:04:05.000000000Z"

type confirmationJobItem struct {
	ID              string `dynamodbav:"id"`
	TransactionID   string `dynamodbav:"transaction_id"`
	TransactionKind string `dynamodbav:"transaction_kind"`
	GatewayType     string `dynamodbav:"gateway_type"`
	Status          string `dynamodbav:"status"`
	Attempts        int    `dynamodbav:"attempts"`
	NotBefore       string `dynamodbav:"not_before"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// ConfirmationQueueDynamo implements the deferred-confirmation port on a
// DynamoDB table. Enqueue is the only operation the transaction core sees;
// the dequeue side belongs to the worker and may redeliver, so consumers must
// be idempotent.
//
// Table requirements:
//   - PK: id (string)

type ConfirmationQueueDynamo struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConfirmationQueue = (*ConfirmationQueueDynamo)(nil)

func NewConfirmationQueueDynamo(ddb *dynamodb.Client) *ConfirmationQueueDynamo {
	return &ConfirmationQueueDynamo{
		ddb:       ddb,
		tableName: getenvDefault("CONFIRMATION_JOBS_TABLE", defaultConfirmationJobsTableName),
	}
}

func (q *ConfirmationQueueDynamo) Enqueue(ctx context.Context, transactionID string, kind entities.TransactionKind, gatewayType entities.GatewayType, notBefore time.Time) error {
	it := confirmationJobItem{
		ID:              uuid.NewString(),
		TransactionID:   transactionID,
		TransactionKind: string(kind),
		GatewayType:     string(gatewayType),
		Status:          string(entities.ConfirmationJobPending),
		NotBefore:       notBefore.UTC().Format(queueTimeLayout),
		CreatedAt:       time.Now().UTC().Format(queueTimeLayout),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = q.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(q.tableName),
		Item:      av,
	})
	return err
}

// NextPending claims one due PENDING job. The scan-then-claim is fine for the
// single-worker deployments this bridge targets; a busier setup would move to
// a status+not_before GSI.
func (q *ConfirmationQueueDynamo) NextPending(ctx context.Context) (entities.ConfirmationJob, bool, error) {
	now := time.Now().UTC().Format(queueTimeLayout)
	out, err := q.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(q.tableName),
		FilterExpression: aws.String("#status = :pending AND not_before <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ConfirmationJobPending)},
			":now":     &types.AttributeValueMemberS{Value: now},
		},
		Limit: aws.Int32(5),
	})
	if err != nil {
		return entities.ConfirmationJob{}, false, err
	}
	if len(out.Items) == 0 {
		return entities.ConfirmationJob{}, false, nil
	}

	var it confirmationJobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ConfirmationJob{}, false, err
	}
	return fromConfirmationJobItem(it), true, nil
}

func (q *ConfirmationQueueDynamo) MarkCompleted(ctx context.Context, jobID string) error {
	return q.setStatus(ctx, jobID, entities.ConfirmationJobCompleted)
}

func (q *ConfirmationQueueDynamo) MarkFailed(ctx context.Context, jobID string) error {
	return q.setStatus(ctx, jobID, entities.ConfirmationJobFailed)
}

// Reschedule bumps the attempt counter and pushes not_before out.
func (q *ConfirmationQueueDynamo) Reschedule(ctx context.Context, jobID string, attempts int, notBefore time.Time) error {
	nb := notBefore.UTC().Format(queueTimeLayout)
	_, err := q.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(q.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		UpdateExpression: aws.String("SET #status = :pending, attempts = :attempts, not_before = :nb"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":  &types.AttributeValueMemberS{Value: string(entities.ConfirmationJobPending)},
			":attempts": &types.AttributeValueMemberN{Value: strconv.Itoa(attempts)},
			":nb":       &types.AttributeValueMemberS{Value: nb},
		},
	})
	return err
}

func (q *ConfirmationQueueDynamo) setStatus(ctx context.Context, jobID string, status entities.ConfirmationJobStatus) error {
	_, err := q.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(q.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		UpdateExpression: aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	return err
}

func fromConfirmationJobItem(it confirmationJobItem) entities.ConfirmationJob {
	notBefore, _ := time.Parse(queueTimeLayout, it.NotBefore)
	created, _ := time.Parse(queueTimeLayout, it.CreatedAt)
	return entities.ConfirmationJob{
		ID:              it.ID,
		TransactionID:   it.TransactionID,
		TransactionKind: entities.TransactionKind(it.TransactionKind),
		GatewayType:     entities.GatewayType(it.GatewayType),
		Status:          entities.ConfirmationJobStatus(it.Status),
		Attempts:        it.Attempts,
		NotBefore:       notBefore,
		CreatedAt:       created,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
