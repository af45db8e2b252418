package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsExternalIDIndex  = "external_id-index"
)

type transactionItem struct {
	ID            string `dynamodbav:"id"`
	Kind          string `dynamodbav:"kind"`
	OwnerID       string `dynamodbav:"owner_id"`
	GatewayID     string `dynamodbav:"gateway_id"`
	ExternalID    string `dynamodbav:"external_id,omitempty"`
	Status        string `dynamodbav:"status"`
	Amount        string `dynamodbav:"amount"`
	QRCode        string `dynamodbav:"qr_code,omitempty"`
	PayerName     string `dynamodbav:"payer_name,omitempty"`
	PayerDocument string `dynamodbav:"payer_document,omitempty"`
	BankAccount   string `dynamodbav:"bank_account,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`
	ProcessedAt   string `dynamodbav:"processed_at,omitempty"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_id-index (PK: external_id)
//
// Amount is stored as its exact decimal string; the DynamoDB number type is
// never used for money here.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	it, err := toTransactionItem(tx)
	if err != nil {
		return entities.Transaction{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it)
}

func (r *TransactionDynamoRepository) GetByExternalID(ctx context.Context, kind entities.TransactionKind, externalID string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsExternalIDIndex),
		KeyConditionExpression: aws.String("external_id = :eid"),
		FilterExpression:       aws.String("kind = :kind"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid":  &types.AttributeValueMemberS{Value: externalID},
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it)
}

// Update applies only the fields present in upd. external_id and amount are
// never part of the expression; the last concurrent writer wins.
func (r *TransactionDynamoRepository) Update(ctx context.Context, id string, upd entities.TransactionUpdate) (entities.Transaction, error) {
	sets := []string{"#status = :status", "updated_at = :updated_at"}
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(upd.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}

	if upd.PayerName != nil {
		sets = append(sets, "payer_name = :payer_name")
		values[":payer_name"] = &types.AttributeValueMemberS{Value: *upd.PayerName}
	}
	if upd.PayerDocument != nil {
		sets = append(sets, "payer_document = :payer_document")
		values[":payer_document"] = &types.AttributeValueMemberS{Value: *upd.PayerDocument}
	}
	if upd.PaidAt != nil {
		sets = append(sets, "paid_at = :paid_at")
		values[":paid_at"] = &types.AttributeValueMemberS{Value: upd.PaidAt.UTC().Format(time.RFC3339Nano)}
	}
	if upd.ProcessedAt != nil {
		sets = append(sets, "processed_at = :processed_at")
		values[":processed_at"] = &types.AttributeValueMemberS{Value: upd.ProcessedAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Transaction{}, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it)
}

func toTransactionItem(tx entities.Transaction) (transactionItem, error) {
	it := transactionItem{
		ID:            tx.ID,
		Kind:          string(tx.Kind),
		OwnerID:       tx.OwnerID,
		GatewayID:     tx.GatewayID,
		ExternalID:    tx.ExternalID,
		Status:        string(tx.Status),
		Amount:        tx.Amount.String(),
		QRCode:        tx.QRCode,
		PayerName:     tx.PayerName,
		PayerDocument: tx.PayerDocument,
		CreatedAt:     tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if tx.BankAccount != nil {
		b, err := json.Marshal(tx.BankAccount)
		if err != nil {
			return transactionItem{}, err
		}
		it.BankAccount = string(b)
	}
	if tx.PaidAt != nil {
		it.PaidAt = tx.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	if tx.ProcessedAt != nil {
		it.ProcessedAt = tx.ProcessedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromTransactionItem(it transactionItem) (entities.Transaction, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Transaction{}, fmt.Errorf("invalid stored amount %q: %w", it.Amount, err)
	}

	tx := entities.Transaction{
		ID:            it.ID,
		Kind:          entities.TransactionKind(it.Kind),
		OwnerID:       it.OwnerID,
		GatewayID:     it.GatewayID,
		ExternalID:    it.ExternalID,
		Status:        entities.TransactionStatus(it.Status),
		Amount:        amount,
		QRCode:        it.QRCode,
		PayerName:     it.PayerName,
		PayerDocument: it.PayerDocument,
	}
	tx.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	tx.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)

	if it.BankAccount != "" {
		var acc entities.BankAccount
		if err := json.Unmarshal([]byte(it.BankAccount), &acc); err != nil {
			return entities.Transaction{}, err
		}
		tx.BankAccount = &acc
	}
	if it.PaidAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			tx.PaidAt = &ts
		}
	}
	if it.ProcessedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.ProcessedAt); err == nil {
			tx.ProcessedAt = &ts
		}
	}
	return tx, nil
}

func mergeNames(maps ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
