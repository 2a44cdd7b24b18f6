package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/database"
	"github.com/burakmert236/gamehub-admin/internal/models"
)

type UserRepository interface {
	GetById(ctx context.Context, userId string) (*models.User, *apperrors.AppError)
	List(ctx context.Context) ([]models.User, *apperrors.AppError)
	UpdateRole(ctx context.Context, userId string, role models.UserRole) *apperrors.AppError
	SetActive(ctx context.Context, userId string, active bool) *apperrors.AppError
	AddPointsTransaction(userId string, amount int, updatedAt time.Time) types.Update
}

type userRepo struct {
	db *database.DynamoDBClient
}

func NewUserRepository(db *database.DynamoDBClient) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetById(ctx context.Context, userId string) (*models.User, *apperrors.AppError) {
	result, err := r.db.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.UserPK(userId)},
			"SK": &types.AttributeValueMemberS{Value: models.ProfileSK()},
		},
	})

	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get user")
	}

	if result.Item == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal user")
	}

	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]models.User, *apperrors.AppError) {
	users := make([]models.User, 0)

	var lastKey map[string]types.AttributeValue
	for {
		result, err := r.db.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.db.Table()),
			IndexName:              aws.String("GSI1"),
			KeyConditionExpression: aws.String("GSI1PK = :entity"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":entity": &types.AttributeValueMemberS{Value: models.UserGSI1PK()},
			},
			ExclusiveStartKey: lastKey,
		})

		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list users")
		}

		var page []models.User
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal users")
		}
		users = append(users, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return users, nil
}

// UpdateRole sets the role in place. Promotion and demotion are the same
// write with a different value.
func (r *userRepo) UpdateRole(ctx context.Context, userId string, role models.UserRole) *apperrors.AppError {
	_, err := r.db.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.UserPK(userId)},
			"SK": &types.AttributeValueMemberS{Value: models.ProfileSK()},
		},
		UpdateExpression: aws.String("SET #role = :role, updated_at = :updatedAt"),
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role":      &types.AttributeValueMemberS{Value: string(role)},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})

	if err != nil {
		if isConditionFailed(err) {
			return apperrors.New(apperrors.CodeNotFound, "user not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update user role")
	}

	return nil
}

func (r *userRepo) SetActive(ctx context.Context, userId string, active bool) *apperrors.AppError {
	_, err := r.db.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.UserPK(userId)},
			"SK": &types.AttributeValueMemberS{Value: models.ProfileSK()},
		},
		UpdateExpression: aws.String("SET is_active = :active, updated_at = :updatedAt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":    &types.AttributeValueMemberBOOL{Value: active},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})

	if err != nil {
		if isConditionFailed(err) {
			return apperrors.New(apperrors.CodeNotFound, "user not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update user status")
	}

	return nil
}

// AddPointsTransaction builds the balance increment for a points grant so the
// service can commit it together with the grant record in one transaction.
func (r *userRepo) AddPointsTransaction(userId string, amount int, updatedAt time.Time) types.Update {
	return types.Update{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.UserPK(userId)},
			"SK": &types.AttributeValueMemberS{Value: models.ProfileSK()},
		},
		UpdateExpression: aws.String("ADD points :amount SET updated_at = :updatedAt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
			":updatedAt": &types.AttributeValueMemberS{Value: updatedAt.UTC().Format(time.RFC3339)},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	}
}
