// Package repository persists chat sessions in a single DynamoDB table.
//
// Layout, one partition per session:
//
//	PK=SESSION#<id>  SK=META#                      language, epoch, turn count
//	PK=SESSION#<id>  SK=TURN#<epoch>#<turn ulid>   one transcript turn
//
// Clearing a session bumps the epoch. Turns of older epochs are never read
// again and expire through the table TTL.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"portfolio-assistant/internal/conversation"
	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/language"
)

const (
	skMeta       = "META#"
	skTurnPrefix = "TURN#"
	ttlDuration  = 30 * 24 * time.Hour
	// maxTransactItems is the DynamoDB limit for one TransactWriteItems call.
	maxTransactItems = 100
)

// dynamodbAPI is the part of *dynamodb.Client the store uses.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Client is a conversation.Store backed by DynamoDB.
type Client struct {
	api       dynamodbAPI
	tableName string
}

var _ conversation.Store = (*Client)(nil)

func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

func sessionPK(id string) string {
	return "SESSION#" + id
}

func turnPrefix(epoch int) string {
	return fmt.Sprintf("%s%06d#", skTurnPrefix, epoch)
}

func turnSK(epoch int, turnID string) string {
	return turnPrefix(epoch) + turnID
}

func ttlValue() int64 {
	return now().Add(ttlDuration).Unix()
}

var now = func() time.Time { return time.Now().UTC() }

// Load reads the session meta and the turns of its current epoch in
// insertion order.
func (c *Client) Load(ctx context.Context, id string) (*conversation.Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, conversation.ErrNotFound
	}
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: sessionPK(id)},
			"SK": &types.AttributeValueMemberS{Value: skMeta},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("repository: Load get meta: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, conversation.ErrNotFound
	}
	lang, err := strAttr(out.Item, "language")
	if err != nil {
		return nil, fmt.Errorf("repository: Load decode meta: %w", err)
	}
	epoch, err := intAttr(out.Item, "epoch")
	if err != nil {
		return nil, fmt.Errorf("repository: Load decode meta: %w", err)
	}

	turns, err := c.queryTurns(ctx, id, epoch)
	if err != nil {
		return nil, err
	}
	s := conversation.NewSession(id, language.Code(lang), turns...)
	s.Epoch = epoch
	return s, nil
}

func (c *Client) queryTurns(ctx context.Context, id string, epoch int) ([]domain.Turn, error) {
	p := dynamodb.NewQueryPaginator(c.api, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: sessionPK(id)},
			":prefix": &types.AttributeValueMemberS{Value: turnPrefix(epoch)},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})
	var turns []domain.Turn
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("repository: Load query turns: %w", err)
		}
		for _, item := range page.Items {
			t, err := itemToTurn(item)
			if err != nil {
				return nil, fmt.Errorf("repository: Load decode turn: %w", err)
			}
			turns = append(turns, t)
		}
	}
	return turns, nil
}

// Create writes a new session. It fails if the id is already taken.
func (c *Client) Create(ctx context.Context, s *conversation.Session) error {
	if err := validate(s); err != nil {
		return err
	}
	metaPut := c.metaPut(s)
	metaPut.ConditionExpression = aws.String("attribute_not_exists(PK)")
	if err := c.write(ctx, metaPut, s, s.History.Snapshot()); err != nil {
		return fmt.Errorf("repository: Create: %w", err)
	}
	return nil
}

// Append writes turns and the refreshed meta in one transaction.
func (c *Client) Append(ctx context.Context, s *conversation.Session, turns ...domain.Turn) error {
	if err := validate(s); err != nil {
		return err
	}
	metaPut := c.metaPut(s)
	metaPut.ConditionExpression = aws.String("attribute_exists(PK) AND epoch = :epoch")
	metaPut.ExpressionAttributeValues = map[string]types.AttributeValue{
		":epoch": &types.AttributeValueMemberN{Value: strconv.Itoa(s.Epoch)},
	}
	if err := c.write(ctx, metaPut, s, turns); err != nil {
		return fmt.Errorf("repository: Append: %w", err)
	}
	return nil
}

// Reset starts the session's current epoch over with its present history.
// The caller bumps the epoch first.
func (c *Client) Reset(ctx context.Context, s *conversation.Session) error {
	if err := validate(s); err != nil {
		return err
	}
	metaPut := c.metaPut(s)
	metaPut.ConditionExpression = aws.String("attribute_exists(PK)")
	if err := c.write(ctx, metaPut, s, s.History.Snapshot()); err != nil {
		return fmt.Errorf("repository: Reset: %w", err)
	}
	return nil
}

func (c *Client) write(ctx context.Context, meta *types.Put, s *conversation.Session, turns []domain.Turn) error {
	if len(turns)+1 > maxTransactItems {
		return fmt.Errorf("too many turns in one write: %d", len(turns))
	}
	items := make([]types.TransactWriteItem, 0, len(turns)+1)
	for _, t := range turns {
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:           aws.String(c.tableName),
			Item:                turnItem(s.ID, s.Epoch, t),
			ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
		}})
	}
	items = append(items, types.TransactWriteItem{Put: meta})
	_, err := c.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

func (c *Client) metaPut(s *conversation.Session) *types.Put {
	return &types.Put{
		TableName: aws.String(c.tableName),
		Item: map[string]types.AttributeValue{
			"PK":           &types.AttributeValueMemberS{Value: sessionPK(s.ID)},
			"SK":           &types.AttributeValueMemberS{Value: skMeta},
			"sessionId":    &types.AttributeValueMemberS{Value: s.ID},
			"language":     &types.AttributeValueMemberS{Value: string(s.Language)},
			"epoch":        &types.AttributeValueMemberN{Value: strconv.Itoa(s.Epoch)},
			"turns":        &types.AttributeValueMemberN{Value: strconv.Itoa(s.History.Len())},
			"lastActivity": &types.AttributeValueMemberS{Value: now().Format(time.RFC3339)},
			"ttl":          &types.AttributeValueMemberN{Value: strconv.FormatInt(ttlValue(), 10)},
		},
	}
}

func turnItem(sessionID string, epoch int, t domain.Turn) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: sessionPK(sessionID)},
		"SK":        &types.AttributeValueMemberS{Value: turnSK(epoch, t.ID)},
		"sessionId": &types.AttributeValueMemberS{Value: sessionID},
		"id":        &types.AttributeValueMemberS{Value: t.ID},
		"role":      &types.AttributeValueMemberS{Value: string(t.Role)},
		"content":   &types.AttributeValueMemberS{Value: t.Content},
		"language":  &types.AttributeValueMemberS{Value: string(t.Language)},
		"degraded":  &types.AttributeValueMemberBOOL{Value: t.Degraded},
		"timestamp": &types.AttributeValueMemberS{Value: t.Timestamp.UTC().Format(time.RFC3339Nano)},
		"ttl":       &types.AttributeValueMemberN{Value: strconv.FormatInt(ttlValue(), 10)},
	}
}

func itemToTurn(item map[string]types.AttributeValue) (domain.Turn, error) {
	id, err := strAttr(item, "id")
	if err != nil {
		return domain.Turn{}, err
	}
	role, err := strAttr(item, "role")
	if err != nil {
		return domain.Turn{}, err
	}
	content, err := strAttr(item, "content")
	if err != nil {
		return domain.Turn{}, err
	}
	lang, _ := strAttr(item, "language") // older items may lack it
	var ts time.Time
	if raw, err := strAttr(item, "timestamp"); err == nil {
		if ts, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return domain.Turn{}, fmt.Errorf("repository: parse timestamp: %w", err)
		}
	}
	var degraded bool
	if b, ok := item["degraded"].(*types.AttributeValueMemberBOOL); ok {
		degraded = b.Value
	}
	return domain.Turn{
		ID:        id,
		Role:      domain.Role(role),
		Content:   content,
		Timestamp: ts,
		Language:  language.Code(lang),
		Degraded:  degraded,
	}, nil
}

func validate(s *conversation.Session) error {
	if s == nil || s.History == nil {
		return errors.New("repository: session must not be nil")
	}
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("repository: session id must not be empty")
	}
	return nil
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

func intAttr(item map[string]types.AttributeValue, key string) (int, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
