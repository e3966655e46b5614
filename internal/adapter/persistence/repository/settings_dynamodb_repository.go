package repository

import (
	"context"

	"susunara/internal/domain/entities"
	"susunara/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"

	categoriesItemID = "categories"
	priceTableItemID = "priceTable"
)

type categoryEntry struct {
	Name string   `dynamodbav:"name"`
	Subs []string `dynamodbav:"subs"`
}

type categoriesItem struct {
	ID   string          `dynamodbav:"id"`
	List []categoryEntry `dynamodbav:"list"`
}

type priceTableItem struct {
	ID     string              `dynamodbav:"id"`
	Prices entities.PriceTable `dynamodbav:"prices"`
}

// SettingsDynamoRepository stores the category registry and the reference
// price table as two singleton documents in one DynamoDB table.
//
// Table requirements:
//   - PK: id (string), values "categories" and "priceTable"
//
// The registry is stored as an ordered list so the first-key fallback for
// unknown categories stays deterministic.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// GetCategories returns the registry, seeding the defaults on first access
// so the intake form never sees an empty category list.
func (r *SettingsDynamoRepository) GetCategories(ctx context.Context) (entities.CategoryList, error) {
	out, err := r.getItem(ctx, categoriesItemID)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		defaults := entities.DefaultCategories()
		if err := r.SaveCategories(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	var it categoriesItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return nil, err
	}
	cats := make(entities.CategoryList, 0, len(it.List))
	for _, e := range it.List {
		subs := e.Subs
		if subs == nil {
			subs = []string{}
		}
		cats = append(cats, entities.Category{Name: e.Name, Subs: subs})
	}
	return cats, nil
}

func (r *SettingsDynamoRepository) SaveCategories(ctx context.Context, cats entities.CategoryList) error {
	it := categoriesItem{ID: categoriesItemID, List: make([]categoryEntry, 0, len(cats))}
	for _, c := range cats {
		it.List = append(it.List, categoryEntry{Name: c.Name, Subs: c.Subs})
	}
	return r.putItem(ctx, it)
}

func (r *SettingsDynamoRepository) GetPriceTable(ctx context.Context) (entities.PriceTable, error) {
	out, err := r.getItem(ctx, priceTableItemID)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return entities.PriceTable{}, nil
	}

	var it priceTableItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return nil, err
	}
	if it.Prices == nil {
		return entities.PriceTable{}, nil
	}
	return it.Prices, nil
}

func (r *SettingsDynamoRepository) SavePriceTable(ctx context.Context, table entities.PriceTable) error {
	if table == nil {
		table = entities.PriceTable{}
	}
	return r.putItem(ctx, priceTableItem{ID: priceTableItemID, Prices: table})
}

func (r *SettingsDynamoRepository) getItem(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (r *SettingsDynamoRepository) putItem(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
