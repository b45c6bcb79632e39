// model/model.go
package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator/v10"

	"github.com/Calrion/moonmail-models/dyndb"
)

// ErrNotFound is returned by Get when no item exists under the key.
var ErrNotFound = errors.New("model: item not found")

// ErrInvalidItem is returned by save-path operations when the entity schema
// rejects a candidate.
var ErrInvalidItem = errors.New("model: item failed schema validation")

// batchWriteLimit is the DynamoDB cap on write requests per BatchWriteItem
// call.
const batchWriteLimit = 25

// Model is the generic access layer for one entity. Concrete entities
// compose a Model with their Descriptor instead of extending it; several
// entities may share one dyndb.Client.
type Model[T any] struct {
	client *dyndb.Client
	desc   Descriptor
	valid  *validator.Validate
}

// New builds a Model for the entity described by desc.
func New[T any](client *dyndb.Client, desc Descriptor) *Model[T] {
	return &Model[T]{
		client: client,
		desc:   desc,
		valid:  validator.New(),
	}
}

// Descriptor returns the entity metadata the model was built with.
func (m *Model[T]) Descriptor() Descriptor {
	return m.desc
}

// Get retrieves one item by key. rng is ignored for hash-only entities.
// Returns ErrNotFound when nothing is stored under the key.
func (m *Model[T]) Get(ctx context.Context, hash, rng any, opts *Options) (*T, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(m.desc.TableName),
		Key:       m.desc.Key(hash, rng),
	}

	if proj := opts.projection(); proj != nil {
		expr, err := expression.NewBuilder().WithProjection(*proj).Build()
		if err != nil {
			return nil, fmt.Errorf("model: build projection: %w", err)
		}
		input.ProjectionExpression = expr.Projection()
		input.ExpressionAttributeNames = expr.Names()
	}

	out, err := m.client.Get(ctx, input)
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	refineItem(out.Item, opts)

	item := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, item); err != nil {
		return nil, fmt.Errorf("model: unmarshal item: %w", err)
	}
	return item, nil
}

// AllBy queries items whose name attribute equals value, with forward
// pagination. The cursor in opts.Page resumes a previous query; NextPage is
// set on the result exactly when more data exists.
func (m *Model[T]) AllBy(ctx context.Context, name string, value any, opts *Options) (*Page[T], error) {
	input, err := m.queryInput(name, value, opts)
	if err != nil {
		return nil, err
	}
	if limit := opts.limit(); limit > 0 {
		input.Limit = aws.Int32(limit)
	}
	if token := opts.page(); token != "" {
		startKey, err := decodePage(token)
		if err != nil {
			return nil, err
		}
		input.ExclusiveStartKey = startKey
	}

	out, err := m.client.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	page := &Page[T]{Items: make([]T, 0, len(out.Items))}

	// The boundary is the last item actually returned, captured before
	// refinement can strip its key attributes.
	if out.LastEvaluatedKey != nil && len(out.Items) > 0 {
		token, err := encodePage(m.desc.keyFromItem(out.Items[len(out.Items)-1]))
		if err != nil {
			return nil, err
		}
		page.NextPage = token
	}

	refineItems(out.Items, opts)

	for _, raw := range out.Items {
		var item T
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, fmt.Errorf("model: unmarshal item: %w", err)
		}
		page.Items = append(page.Items, item)
	}
	return page, nil
}

// CountBy runs the same equality query as AllBy but asks the store for a
// count only.
func (m *Model[T]) CountBy(ctx context.Context, name string, value any) (int32, error) {
	input, err := m.queryInput(name, value, nil)
	if err != nil {
		return 0, err
	}
	input.Select = types.SelectCount

	out, err := m.client.Query(ctx, input)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Save validates and persists one item, stamping the creation-time
// attribute if the item does not already carry one.
func (m *Model[T]) Save(ctx context.Context, item T) error {
	av, err := m.saveableItem(item)
	if err != nil {
		return err
	}
	_, err = m.client.Put(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(m.desc.TableName),
		Item:      av,
	})
	return err
}

// SaveAll persists items in batches of up to 25, retrying unprocessed
// records per the client's retry policy. Records still unprocessed after
// the retry budget are returned with a nil error; the caller decides
// whether to requeue them.
func (m *Model[T]) SaveAll(ctx context.Context, items []T) ([]types.WriteRequest, error) {
	if len(items) == 0 {
		return nil, nil
	}

	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		av, err := m.saveableItem(item)
		if err != nil {
			return nil, err
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	var unprocessed []types.WriteRequest
	for start := 0; start < len(requests); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(requests) {
			end = len(requests)
		}

		out, err := m.client.BatchWrite(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				m.desc.TableName: requests[start:end],
			},
		})
		if err != nil {
			return unprocessed, err
		}
		unprocessed = append(unprocessed, out.UnprocessedItems[m.desc.TableName]...)
	}
	return unprocessed, nil
}

// Update overwrites the given attributes on the item under the key and
// returns the stored item as it looks afterwards. Key attributes in attrs
// are silently dropped.
func (m *Model[T]) Update(ctx context.Context, attrs map[string]any, hash, rng any) (*T, error) {
	return m.update(ctx, m.desc.attributeUpdates(attrs), hash, rng)
}

// Increment adds delta (which may be negative) to one numeric attribute
// and returns the updated item.
func (m *Model[T]) Increment(ctx context.Context, name string, delta int, hash, rng any) (*T, error) {
	return m.IncrementAll(ctx, hash, rng, map[string]int{name: delta})
}

// IncrementAll applies several counter deltas in a single update.
func (m *Model[T]) IncrementAll(ctx context.Context, hash, rng any, deltas map[string]int) (*T, error) {
	return m.update(ctx, m.desc.incrementUpdates(deltas), hash, rng)
}

// Delete removes the item under the key. Deleting an absent item is not an
// error.
func (m *Model[T]) Delete(ctx context.Context, hash, rng any) error {
	_, err := m.client.Delete(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(m.desc.TableName),
		Key:       m.desc.Key(hash, rng),
	})
	return err
}

// IsValid reports whether item satisfies the entity schema. Entities
// without a schema accept every candidate.
func (m *Model[T]) IsValid(item T) bool {
	if m.desc.Schema == nil {
		return true
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false
	}
	var plain map[string]interface{}
	if err := attributevalue.UnmarshalMap(av, &plain); err != nil {
		return false
	}

	return len(m.valid.ValidateMap(plain, m.desc.Schema)) == 0
}

func (m *Model[T]) update(ctx context.Context, updates map[string]types.AttributeValueUpdate, hash, rng any) (*T, error) {
	out, err := m.client.Update(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(m.desc.TableName),
		Key:              m.desc.Key(hash, rng),
		AttributeUpdates: updates,
		ReturnValues:     types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, err
	}

	item := new(T)
	if err := attributevalue.UnmarshalMap(out.Attributes, item); err != nil {
		return nil, fmt.Errorf("model: unmarshal item: %w", err)
	}
	return item, nil
}

// queryInput assembles the equality query shared by AllBy and CountBy.
func (m *Model[T]) queryInput(name string, value any, opts *Options) (*dynamodb.QueryInput, error) {
	builder := expression.NewBuilder().
		WithKeyCondition(expression.Key(name).Equal(expression.Value(value)))
	if proj := opts.projection(); proj != nil {
		builder = builder.WithProjection(*proj)
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("model: build query expression: %w", err)
	}

	return &dynamodb.QueryInput{
		TableName:                 aws.String(m.desc.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}

// saveableItem validates the item and stamps the creation-time attribute.
// An attribute already present is never overwritten, so re-saving keeps
// the original timestamp.
func (m *Model[T]) saveableItem(item T) (map[string]types.AttributeValue, error) {
	if !m.IsValid(item) {
		return nil, ErrInvalidItem
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("model: marshal item: %w", err)
	}
	createdAt := m.desc.createdAtAttribute()
	if _, ok := av[createdAt]; !ok {
		av[createdAt] = attr(time.Now().Unix())
	}
	return av, nil
}
