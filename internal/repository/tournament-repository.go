package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/database"
	"github.com/burakmert236/gamehub-admin/internal/models"
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) *apperrors.AppError
	GetById(ctx context.Context, tournamentId string) (*models.Tournament, *apperrors.AppError)
	Update(ctx context.Context, tournament *models.Tournament) *apperrors.AppError
	Delete(ctx context.Context, tournamentId string) *apperrors.AppError
	List(ctx context.Context) ([]models.Tournament, *apperrors.AppError)
}

type tournamentRepo struct {
	db *database.DynamoDBClient
}

func NewTournamentRepository(db *database.DynamoDBClient) TournamentRepository {
	return &tournamentRepo{db: db}
}

func (r *tournamentRepo) Create(ctx context.Context, tournament *models.Tournament) *apperrors.AppError {
	tournament.PK = models.TournamentPK(tournament.TournamentId)
	tournament.SK = models.MetaSK()
	tournament.GSI1PK = models.TournamentGSI1PK()
	tournament.GSI1SK = models.CreatedGSI1SK(tournament.CreatedAt.UTC().Format(time.RFC3339))

	item, err := attributevalue.MarshalMap(tournament)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal tournament")
	}

	_, err = r.db.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.db.Table()),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})

	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create tournament")
	}

	return nil
}

func (r *tournamentRepo) GetById(ctx context.Context, tournamentId string) (*models.Tournament, *apperrors.AppError) {
	result, err := r.db.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.TournamentPK(tournamentId)},
			"SK": &types.AttributeValueMemberS{Value: models.MetaSK()},
		},
	})

	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get tournament")
	}

	if result.Item == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "tournament not found")
	}

	var tournament models.Tournament
	if err := attributevalue.UnmarshalMap(result.Item, &tournament); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal tournament")
	}

	return &tournament, nil
}

func (r *tournamentRepo) Update(ctx context.Context, tournament *models.Tournament) *apperrors.AppError {
	item, err := attributevalue.MarshalMap(tournament)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal tournament")
	}

	_, err = r.db.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.db.Table()),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})

	if err != nil {
		if isConditionFailed(err) {
			return apperrors.New(apperrors.CodeNotFound, "tournament not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update tournament")
	}

	return nil
}

func (r *tournamentRepo) Delete(ctx context.Context, tournamentId string) *apperrors.AppError {
	_, err := r.db.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.TournamentPK(tournamentId)},
			"SK": &types.AttributeValueMemberS{Value: models.MetaSK()},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})

	if err != nil {
		if isConditionFailed(err) {
			return apperrors.New(apperrors.CodeNotFound, "tournament not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete tournament")
	}

	return nil
}

func (r *tournamentRepo) List(ctx context.Context) ([]models.Tournament, *apperrors.AppError) {
	tournaments := make([]models.Tournament, 0)

	var lastKey map[string]types.AttributeValue
	for {
		result, err := r.db.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.db.Table()),
			IndexName:              aws.String("GSI1"),
			KeyConditionExpression: aws.String("GSI1PK = :entity"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":entity": &types.AttributeValueMemberS{Value: models.TournamentGSI1PK()},
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: lastKey,
		})

		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list tournaments")
		}

		var page []models.Tournament
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal tournaments")
		}
		tournaments = append(tournaments, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return tournaments, nil
}

// isConditionFailed reports whether a write was rejected by its condition
// expression, which on keyed writes means the item does not exist.
func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
