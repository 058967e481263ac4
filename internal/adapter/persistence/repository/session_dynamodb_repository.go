package repository

import (
	"context"
	"time"

	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	ID             string `dynamodbav:"id"`
	Token          string `dynamodbav:"token"`
	UserID         string `dynamodbav:"user_id"`
	Email          string `dynamodbav:"email,omitempty"`
	Name           string `dynamodbav:"name,omitempty"`
	Role           string `dynamodbav:"role"`
	ConstructoraID string `dynamodbav:"constructora_id,omitempty"`
	ResidenteID    string `dynamodbav:"residente_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	// ExpiresAt is epoch seconds so the table TTL can reap stale sessions.
	ExpiresAt int64 `dynamodbav:"expires_at,omitempty"`
}

// SessionDynamoRepository persists login sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at
type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

// NewSessionDynamoRepository uses the "sessions" table when tableName is empty.
func NewSessionDynamoRepository(ddb *dynamodb.Client, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	it := sessionItem{
		ID:             s.ID,
		Token:          s.Token,
		UserID:         s.User.ID,
		Email:          s.User.Email,
		Name:           s.User.Name,
		Role:           string(s.User.Role),
		ConstructoraID: s.User.ConstructoraID,
		ResidenteID:    s.User.ResidenteID,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.ExpiresAt.IsZero() {
		it.ExpiresAt = s.ExpiresAt.Unix()
	}
	return it
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.Session{
		ID:    it.ID,
		Token: it.Token,
		User: entities.User{
			ID:             it.UserID,
			Email:          it.Email,
			Name:           it.Name,
			Role:           entities.UserRole(it.Role),
			ConstructoraID: it.ConstructoraID,
			ResidenteID:    it.ResidenteID,
		},
		CreatedAt: createdAt,
	}
	if it.ExpiresAt > 0 {
		s.ExpiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	return s
}
