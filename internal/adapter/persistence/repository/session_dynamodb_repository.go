package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"disena_service/internal/domain/entities"
	"disena_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "design_sessions"

// sessionItem is the DynamoDB document for one configurator session.
// Snapshot, ledger and quote are stored as JSON blobs: they are only
// ever read back whole by session id, never queried into.
type sessionItem struct {
	ID               string `dynamodbav:"id"`
	State            string `dynamodbav:"state"`
	TotalAreaM2      string `dynamodbav:"total_area_m2"`
	ActiveCategoryID string `dynamodbav:"active_category_id"`
	Snapshot         string `dynamodbav:"snapshot"`
	Ledger           string `dynamodbav:"ledger"`
	Quote            string `dynamodbav:"quote,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists DesignSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.DesignSession) (entities.DesignSession, error) {
	it, err := toSessionItem(s)
	if err != nil {
		return entities.DesignSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DesignSession{}, err
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
		return entities.DesignSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.DesignSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DesignSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.DesignSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DesignSession{}, err
	}
	return fromSessionItem(it)
}

func (r *SessionDynamoRepository) Update(ctx context.Context, s entities.DesignSession) (entities.DesignSession, error) {
	it, err := toSessionItem(s)
	if err != nil {
		return entities.DesignSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DesignSession{}, err
	}

	// Whole-document replace; sessions are single-owner so there is no
	// concurrent writer to merge with.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DesignSession{}, err
	}
	return s, nil
}

func toSessionItem(s entities.DesignSession) (sessionItem, error) {
	snap, err := json.Marshal(s.Snapshot)
	if err != nil {
		return sessionItem{}, err
	}
	ledger, err := json.Marshal(s.Ledger)
	if err != nil {
		return sessionItem{}, err
	}

	it := sessionItem{
		ID:               s.ID,
		State:            string(s.State),
		TotalAreaM2:      strconv.FormatFloat(s.TotalAreaM2, 'f', -1, 64),
		ActiveCategoryID: s.ActiveCategoryID,
		Snapshot:         string(snap),
		Ledger:           string(ledger),
		CreatedAt:        s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.Quote != nil {
		q, err := json.Marshal(s.Quote)
		if err != nil {
			return sessionItem{}, err
		}
		it.Quote = string(q)
	}
	return it, nil
}

func fromSessionItem(it sessionItem) (entities.DesignSession, error) {
	s := entities.DesignSession{
		ID:               it.ID,
		State:            entities.SessionState(it.State),
		ActiveCategoryID: it.ActiveCategoryID,
	}

	if it.TotalAreaM2 != "" {
		v, err := strconv.ParseFloat(it.TotalAreaM2, 64)
		if err != nil {
			return entities.DesignSession{}, err
		}
		s.TotalAreaM2 = v
	}
	if it.Snapshot != "" {
		if err := json.Unmarshal([]byte(it.Snapshot), &s.Snapshot); err != nil {
			return entities.DesignSession{}, err
		}
	}
	if it.Ledger != "" {
		if err := json.Unmarshal([]byte(it.Ledger), &s.Ledger); err != nil {
			return entities.DesignSession{}, err
		}
	}
	if it.Quote != "" {
		var q entities.Quote
		if err := json.Unmarshal([]byte(it.Quote), &q); err != nil {
			return entities.DesignSession{}, err
		}
		s.Quote = &q
	}
	if it.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
		if err != nil {
			return entities.DesignSession{}, err
		}
		s.CreatedAt = t
	}
	if it.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
		if err != nil {
			return entities.DesignSession{}, err
		}
		s.UpdatedAt = t
	}
	return s, nil
}
