package repository

import (
	"context"
	"errors"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName       = "quotations"
	defaultQuotationNumbersTableName = "quotation_numbers"
	quotationsCreatedByIndex         = "created_by-index"
)

type quotationLineItem struct {
	ServiceID string   `dynamodbav:"service_id"`
	AddonIDs  []string `dynamodbav:"addon_ids"`
	Quantity  int      `dynamodbav:"quantity"`
	Price     float64  `dynamodbav:"price"`
}

type quotationItem struct {
	ID          string              `dynamodbav:"id"`
	Number      string              `dynamodbav:"quotation_number"`
	ClientName  string              `dynamodbav:"client_name"`
	ClientEmail string              `dynamodbav:"client_email,omitempty"`
	ClientPhone string              `dynamodbav:"client_phone,omitempty"`
	Items       []quotationLineItem `dynamodbav:"items"`
	BundleIDs   []string            `dynamodbav:"bundle_ids"`
	Subtotal    float64             `dynamodbav:"subtotal"`
	Discount    float64             `dynamodbav:"discount"`
	Total       float64             `dynamodbav:"total"`
	Notes       string              `dynamodbav:"notes,omitempty"`
	CreatedBy   string              `dynamodbav:"created_by"`
	Status      string              `dynamodbav:"status"`
	ValidUntil  string              `dynamodbav:"valid_until"`
	CreatedAt   string              `dynamodbav:"created_at"`
	UpdatedAt   string              `dynamodbav:"updated_at"`
}

type quotationNumberItem struct {
	Number      string `dynamodbav:"quotation_number"`
	QuotationID string `dynamodbav:"quotation_id"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - quotations: PK id (string), GSI created_by-index (PK: created_by)
//   - quotation_numbers: PK quotation_number (string)
//
// A quotation and its number guard are written in one transaction, both
// conditional on non-existence, so a number can never be stored twice.
type QuotationDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	numbersTable string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI, tableName, numbersTable string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:          ddb,
		tableName:    tableOrDefault(tableName, defaultQuotationsTableName),
		numbersTable: tableOrDefault(numbersTable, defaultQuotationNumbersTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}
	guard, err := attributevalue.MarshalMap(quotationNumberItem{Number: q.Number, QuotationID: q.ID})
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.numbersTable),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#n)"),
				ExpressionAttributeNames: map[string]string{"#n": "quotation_number"},
			}},
		},
	})
	if err != nil {
		if numberTaken(err) {
			return entities.Quotation{}, interfaces.ErrDuplicateQuotationNumber
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

// numberTaken reports whether a cancelled transaction failed on the number
// guard (the second transact item).
func numberTaken(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	reasons := tce.CancellationReasons
	return len(reasons) > 1 && aws.ToString(reasons[1].Code) == "ConditionalCheckFailed"
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Quotation{}, err
	}
	return decodeQuotation(raw)
}

func (r *QuotationDynamoRepository) ListAll(ctx context.Context) ([]entities.Quotation, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeQuotation)
}

func (r *QuotationDynamoRepository) ListByCreator(ctx context.Context, userID string) ([]entities.Quotation, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsCreatedByIndex),
		KeyConditionExpression: aws.String("created_by = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeQuotation)
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	raw, err := update(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || raw == nil {
		return entities.Quotation{}, err
	}
	return decodeQuotation(raw)
}

func decodeQuotation(raw map[string]types.AttributeValue) (entities.Quotation, error) {
	var it quotationItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLineItem, 0, len(q.Items))
	for _, item := range q.Items {
		lines = append(lines, quotationLineItem{
			ServiceID: item.ServiceID,
			AddonIDs:  nonNil(item.AddonIDs),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return quotationItem{
		ID:          q.ID,
		Number:      q.Number,
		ClientName:  q.ClientName,
		ClientEmail: q.ClientEmail,
		ClientPhone: q.ClientPhone,
		Items:       lines,
		BundleIDs:   nonNil(q.BundleIDs),
		Subtotal:    q.Subtotal,
		Discount:    q.Discount,
		Total:       q.Total,
		Notes:       q.Notes,
		CreatedBy:   q.CreatedBy,
		Status:      string(q.Status),
		ValidUntil:  formatTime(q.ValidUntil),
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	items := make([]entities.QuotationItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.QuotationItem{
			ServiceID: line.ServiceID,
			AddonIDs:  nonNil(line.AddonIDs),
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return entities.Quotation{
		ID:          it.ID,
		Number:      it.Number,
		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		ClientPhone: it.ClientPhone,
		Items:       items,
		BundleIDs:   nonNil(it.BundleIDs),
		Subtotal:    it.Subtotal,
		Discount:    it.Discount,
		Total:       it.Total,
		Notes:       it.Notes,
		CreatedBy:   it.CreatedBy,
		Status:      entities.QuotationStatus(it.Status),
		ValidUntil:  parseTime(it.ValidUntil),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
