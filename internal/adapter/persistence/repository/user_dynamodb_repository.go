package repository

import (
	"context"
	"errors"
	"strings"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
	emailGuardPrefix      = "email#"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	CreatedAt    string `dynamodbav:"created_at"`
}

type emailGuardItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Email uniqueness is kept by a guard item (id "email#<email>") written in the
// same transaction as the user. Guard items carry no email attribute, so the
// index never sees them.
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultUsersTableName)}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}
	guard, err := attributevalue.MarshalMap(emailGuardItem{ID: emailGuardPrefix + u.Email, UserID: u.ID})
	if err != nil {
		return entities.User{}, err
	}

	notExists := func(item map[string]types.AttributeValue) *types.Put {
		return &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     item,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: notExists(av)},
			{Put: notExists(guard)},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 1 &&
			aws.ToString(tce.CancellationReasons[1].Code) == "ConditionalCheckFailed" {
			return entities.User{}, interfaces.ErrDuplicateUserEmail
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	if strings.HasPrefix(id, emailGuardPrefix) {
		return entities.User{}, nil
	}
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.User{}, err
	}
	return decodeUser(raw)
}

func (r *UserDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if !strings.HasPrefix(id, emailGuardPrefix) {
			filtered = append(filtered, id)
		}
	}
	raws, err := batchGet(ctx, r.ddb, r.tableName, filtered)
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeUser)
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil || len(raws) == 0 {
		return entities.User{}, err
	}
	return decodeUser(raws[0])
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_exists(#email)"),
		ExpressionAttributeNames: map[string]string{"#email": "email"},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll(raws, decodeUser)
}

func decodeUser(raw map[string]types.AttributeValue) (entities.User, error) {
	var it userItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
