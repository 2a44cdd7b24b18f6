package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/database"
	"github.com/burakmert236/gamehub-admin/internal/models"
)

type GrantRepository interface {
	PutTransaction(grant *models.PointsGrant) (types.Put, *apperrors.AppError)
	ListByUser(ctx context.Context, userId string) ([]models.PointsGrant, *apperrors.AppError)
}

type grantRepo struct {
	db *database.DynamoDBClient
}

func NewGrantRepository(db *database.DynamoDBClient) GrantRepository {
	return &grantRepo{db: db}
}

// PutTransaction builds the ledger append for a grant. The record is keyed
// under the owning user's partition; the condition keeps the ledger
// append-only.
func (r *grantRepo) PutTransaction(grant *models.PointsGrant) (types.Put, *apperrors.AppError) {
	grant.PK = models.UserPK(grant.UserId)
	grant.SK = models.GrantSK(grant.CreatedAt, grant.GrantId)

	item, err := attributevalue.MarshalMap(grant)
	if err != nil {
		return types.Put{}, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal points grant")
	}

	return types.Put{
		TableName:           aws.String(r.db.Table()),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	}, nil
}

func (r *grantRepo) ListByUser(ctx context.Context, userId string) ([]models.PointsGrant, *apperrors.AppError) {
	grants := make([]models.PointsGrant, 0)

	var lastKey map[string]types.AttributeValue
	for {
		result, err := r.db.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.db.Table()),
			KeyConditionExpression: aws.String("PK = :user AND begins_with(SK, :prefix)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user":   &types.AttributeValueMemberS{Value: models.UserPK(userId)},
				":prefix": &types.AttributeValueMemberS{Value: models.GrantSKPrefix()},
			},
			ExclusiveStartKey: lastKey,
		})

		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list points grants")
		}

		var page []models.PointsGrant
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal points grants")
		}
		grants = append(grants, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return grants, nil
}
