package repository

import (
	"context"
	"time"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGatewaysTableName = "gateways"
	gatewaysTypeIndex        = "type-index"
)

type gatewayItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Type      string `dynamodbav:"type"`
	BaseURL   string `dynamodbav:"base_url"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
}

// GatewayDynamoRepository reads the configured sub-acquirer records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: type-index (PK: type), at most one record per type

type GatewayDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayRepository = (*GatewayDynamoRepository)(nil)

func NewGatewayDynamoRepository(ddb *dynamodb.Client) *GatewayDynamoRepository {
	return &GatewayDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAYS_TABLE", defaultGatewaysTableName),
	}
}

func (r *GatewayDynamoRepository) Create(ctx context.Context, gw entities.Gateway) (entities.Gateway, error) {
	av, err := attributevalue.MarshalMap(toGatewayItem(gw))
	if err != nil {
		return entities.Gateway{}, err
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
		return entities.Gateway{}, err
	}
	return gw, nil
}

func (r *GatewayDynamoRepository) GetByID(ctx context.Context, id string) (entities.Gateway, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Gateway{}, err
	}
	if len(out.Item) == 0 {
		return entities.Gateway{}, nil
	}

	var it gatewayItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Gateway{}, err
	}
	return fromGatewayItem(it), nil
}

func (r *GatewayDynamoRepository) GetByType(ctx context.Context, t entities.GatewayType) (entities.Gateway, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(gatewaysTypeIndex),
		KeyConditionExpression: aws.String("#type = :type"),
		ExpressionAttributeNames: map[string]string{
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type": &types.AttributeValueMemberS{Value: string(t)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Gateway{}, err
	}
	if len(out.Items) == 0 {
		return entities.Gateway{}, nil
	}

	var it gatewayItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Gateway{}, err
	}
	return fromGatewayItem(it), nil
}

func toGatewayItem(gw entities.Gateway) gatewayItem {
	return gatewayItem{
		ID:        gw.ID,
		Name:      gw.Name,
		Type:      string(gw.Type),
		BaseURL:   gw.BaseURL,
		Active:    gw.Active,
		CreatedAt: gw.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromGatewayItem(it gatewayItem) entities.Gateway {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Gateway{
		ID:        it.ID,
		Name:      it.Name,
		Type:      entities.GatewayType(it.Type),
		BaseURL:   it.BaseURL,
		Active:    it.Active,
		CreatedAt: created,
	}
}
