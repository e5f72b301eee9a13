package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type budgetDetailsItem struct {
	Description string   `dynamodbav:"description"`
	Type        string   `dynamodbav:"type"`
	Date        string   `dynamodbav:"date"`
	NumBarmans  int      `dynamodbav:"num_barmans"`
	NumGuests   int      `dynamodbav:"num_guests"`
	Time        float64  `dynamodbav:"time"`
	Package     string   `dynamodbav:"package"`
	Extras      []string `dynamodbav:"extras,omitempty"`
}

type budgetItem struct {
	ID      string            `dynamodbav:"id"`
	Name    string            `dynamodbav:"name"`
	Email   string            `dynamodbav:"email"`
	Phone   string            `dynamodbav:"phone"`
	Details budgetDetailsItem `dynamodbav:"budget"`
	Status  string            `dynamodbav:"status"`
	Value   *float64          `dynamodbav:"value,omitempty"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing uses Scan; the budgets collection for a catering business stays
// small enough that a status GSI is not worth the index.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Insert(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it := toBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// UpdateStatusAndValue performs a single conditional UpdateItem; the value
// assignment is only added to the expression when a value was provided.
func (r *BudgetDynamoRepository) UpdateStatusAndValue(ctx context.Context, id string, status entities.BudgetStatus, value *float64) (entities.Budget, error) {
	expr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	if value != nil {
		expr += ", #value = :value"
		vals[":value"] = &types.AttributeValueMemberN{Value: floatToString(*value)}
		names["#value"] = "value"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListAll(ctx context.Context) ([]entities.Budget, error) {
	return r.scan(ctx, nil)
}

func (r *BudgetDynamoRepository) ListByStatus(ctx context.Context, status entities.BudgetStatus) ([]entities.Budget, error) {
	return r.scan(ctx, func(in *dynamodb.ScanInput) {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	})
}

func (r *BudgetDynamoRepository) scan(ctx context.Context, configure func(*dynamodb.ScanInput)) ([]entities.Budget, error) {
	budgets := make([]entities.Budget, 0)
	var startKey map[string]types.AttributeValue

	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		}
		if configure != nil {
			configure(in)
		}

		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it budgetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			budgets = append(budgets, fromBudgetItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return budgets, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
		Details: budgetDetailsItem{
			Description: b.Details.Description,
			Type:        b.Details.Type,
			Date:        b.Details.Date,
			NumBarmans:  b.Details.NumBarmans,
			NumGuests:   b.Details.NumGuests,
			Time:        b.Details.Time,
			Package:     b.Details.Package,
			Extras:      b.Details.Extras,
		},
		Status: string(b.Status),
		Value:  b.Value,
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:    it.ID,
		Name:  it.Name,
		Email: it.Email,
		Phone: it.Phone,
		Details: entities.BudgetDetails{
			Description: it.Details.Description,
			Type:        it.Details.Type,
			Date:        it.Details.Date,
			NumBarmans:  it.Details.NumBarmans,
			NumGuests:   it.Details.NumGuests,
			Time:        it.Details.Time,
			Package:     it.Details.Package,
			Extras:      it.Details.Extras,
		},
		Status: entities.BudgetStatus(it.Status),
		Value:  it.Value,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
