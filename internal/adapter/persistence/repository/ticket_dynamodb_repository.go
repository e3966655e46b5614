package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"susunara/internal/domain/entities"
	"susunara/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTicketsTableName = "repairs"

type ticketItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Phone         string `dynamodbav:"phone"`
	Category      string `dynamodbav:"category"`
	SubCategory   string `dynamodbav:"sub_category"`
	Item          string `dynamodbav:"item"`
	Price         int    `dynamodbav:"price"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Status        string `dynamodbav:"status"`
	IsUrgent      bool   `dynamodbav:"is_urgent"`
	PhotoURL      string `dynamodbav:"photo_url"`
	ReceivedDate  string `dynamodbav:"received_date"`
	DueDate       string `dynamodbav:"due_date"`
	DailyNumber   int    `dynamodbav:"daily_number"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The shop's volume (tens of tickets per day) keeps a full table scan for
// ListAll well inside a single page in practice; pagination is still handled.

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.Ticket{}, err
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
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) Update(ctx context.Context, id string, t entities.Ticket) (entities.Ticket, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #phone = :phone, #category = :category, " +
			"#sub_category = :sub_category, #item = :item, #price = :price, " +
			"#payment_method = :payment_method, #is_urgent = :is_urgent, " +
			"#received_date = :received_date, #due_date = :due_date"
		vals := map[string]types.AttributeValue{
			":name":           &types.AttributeValueMemberS{Value: t.Name},
			":phone":          &types.AttributeValueMemberS{Value: t.Phone},
			":category":       &types.AttributeValueMemberS{Value: t.Category},
			":sub_category":   &types.AttributeValueMemberS{Value: t.SubCategory},
			":item":           &types.AttributeValueMemberS{Value: t.Item},
			":price":          &types.AttributeValueMemberN{Value: intToString(t.Price)},
			":payment_method": &types.AttributeValueMemberS{Value: string(t.PaymentMethod)},
			":is_urgent":      &types.AttributeValueMemberBOOL{Value: t.IsUrgent},
			":received_date":  &types.AttributeValueMemberS{Value: t.ReceivedDate},
			":due_date":       &types.AttributeValueMemberS{Value: t.DueDate},
		}
		names := map[string]string{
			"#name":           "name",
			"#phone":          "phone",
			"#category":       "category",
			"#sub_category":   "sub_category",
			"#item":           "item",
			"#price":          "price",
			"#payment_method": "payment_method",
			"#is_urgent":      "is_urgent",
			"#received_date":  "received_date",
			"#due_date":       "due_date",
		}
		return expr, vals, names
	})
}

func (r *TicketDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *TicketDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

// ListAll scans the whole table and returns tickets ordered by creation
// timestamp descending, the order every caller expects.
func (r *TicketDynamoRepository) ListAll(ctx context.Context) ([]entities.Ticket, error) {
	tickets := make([]entities.Ticket, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []ticketItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			tickets = append(tickets, fromTicketItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets, nil
}

func (r *TicketDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Ticket, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ticket{}, nil
	}
	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	return ticketItem{
		ID:            t.ID,
		Name:          t.Name,
		Phone:         t.Phone,
		Category:      t.Category,
		SubCategory:   t.SubCategory,
		Item:          t.Item,
		Price:         t.Price,
		PaymentMethod: string(t.PaymentMethod),
		Status:        string(t.Status),
		IsUrgent:      t.IsUrgent,
		PhotoURL:      t.PhotoURL,
		ReceivedDate:  t.ReceivedDate,
		DueDate:       t.DueDate,
		DailyNumber:   t.DailyNumber,
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTicketItem(it ticketItem) entities.Ticket {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Ticket{
		ID:            it.ID,
		Name:          it.Name,
		Phone:         it.Phone,
		Category:      it.Category,
		SubCategory:   it.SubCategory,
		Item:          it.Item,
		Price:         it.Price,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		Status:        entities.TicketStatus(it.Status),
		IsUrgent:      it.IsUrgent,
		PhotoURL:      it.PhotoURL,
		ReceivedDate:  it.ReceivedDate,
		DueDate:       it.DueDate,
		DailyNumber:   it.DailyNumber,
		CreatedAt:     createdAt,
	}
}
