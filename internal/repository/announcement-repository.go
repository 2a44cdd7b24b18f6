package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/burakmert236/gamehub-admin/internal/apperrors"
	"github.com/burakmert236/gamehub-admin/internal/database"
	"github.com/burakmert236/gamehub-admin/internal/models"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) *apperrors.AppError
	GetById(ctx context.Context, announcementId string) (*models.Announcement, *apperrors.AppError)
	Update(ctx context.Context, announcement *models.Announcement) *apperrors.AppError
	Delete(ctx context.Context, announcementId string) *apperrors.AppError
	List(ctx context.Context) ([]models.Announcement, *apperrors.AppError)
}

type announcementRepo struct {
	db *database.DynamoDBClient
}

func NewAnnouncementRepository(db *database.DynamoDBClient) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, announcement *models.Announcement) *apperrors.AppError {
	announcement.PK = models.AnnouncementPK(announcement.AnnouncementId)
	announcement.SK = models.MetaSK()
	announcement.GSI1PK = models.AnnouncementGSI1PK()
	announcement.GSI1SK = models.CreatedGSI1SK(announcement.CreatedAt.UTC().Format(time.RFC3339))

	item, err := attributevalue.MarshalMap(announcement)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal announcement")
	}

	_, err = r.db.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.db.Table()),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})

	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create announcement")
	}

	return nil
}

func (r *announcementRepo) GetById(ctx context.Context, announcementId string) (*models.Announcement, *apperrors.AppError) {
	result, err := r.db.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.AnnouncementPK(announcementId)},
			"SK": &types.AttributeValueMemberS{Value: models.MetaSK()},
		},
	})

	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get announcement")
	}

	if result.Item == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "announcement not found")
	}

	var announcement models.Announcement
	if err := attributevalue.UnmarshalMap(result.Item, &announcement); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal announcement")
	}

	return &announcement, nil
}

func (r *announcementRepo) Update(ctx context.Context, announcement *models.Announcement) *apperrors.AppError {
	item, err := attributevalue.MarshalMap(announcement)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal announcement")
	}

	_, err = r.db.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.db.Table()),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})

	if err != nil {
		if isConditionFailed(err) {
			return apperrors.New(apperrors.CodeNotFound, "announcement not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update announcement")
	}

	return nil
}

func (r *announcementRepo) Delete(ctx context.Context, announcementId string) *apperrors.AppError {
	_, err := r.db.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.AnnouncementPK(announcementId)},
			"SK": &types.AttributeValueMemberS{Value: models.MetaSK()},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})

	if err != nil {
		if isConditionFailed(err) {
			return apperrors.New(apperrors.CodeNotFound, "announcement not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete announcement")
	}

	return nil
}

func (r *announcementRepo) List(ctx context.Context) ([]models.Announcement, *apperrors.AppError) {
	announcements := make([]models.Announcement, 0)

	var lastKey map[string]types.AttributeValue
	for {
		result, err := r.db.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.db.Table()),
			IndexName:              aws.String("GSI1"),
			KeyConditionExpression: aws.String("GSI1PK = :entity"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":entity": &types.AttributeValueMemberS{Value: models.AnnouncementGSI1PK()},
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: lastKey,
		})

		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list announcements")
		}

		var page []models.Announcement
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal announcements")
		}
		announcements = append(announcements, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return announcements, nil
}
