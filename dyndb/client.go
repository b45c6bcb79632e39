// dyndb/client.go
package dyndb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/Calrion/moonmail-models/pkg/metrics"
)

// Client is the single choke point for every DynamoDB interaction. It
// validates that each request addresses a table, forwards single-shot verbs
// unchanged, and owns the batch-write retry loop.
//
// A Client holds no per-call state; concurrent use is safe.
type Client struct {
	api     DynamoDBClient
	policy  RetryPolicy
	log     zerolog.Logger
	metrics metrics.Provider
}

// Option configures a Client.
type Option func(*Client)

// WithRetryPolicy overrides the batch-write retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.policy = p }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithMetrics attaches a metrics provider; the default is a no-op.
func WithMetrics(p metrics.Provider) Option {
	return func(c *Client) { c.metrics = p }
}

// New wraps an SDK (or mock) client.
func New(api DynamoDBClient, opts ...Option) *Client {
	c := &Client{
		api:     api,
		policy:  DefaultRetryPolicy,
		log:     zerolog.Nop(),
		metrics: &metrics.NoopProvider{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient builds a Client on top of the default AWS configuration, for
// callers that do not bring their own SDK client.
func NewClient(ctx context.Context, region string, opts ...Option) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("dyndb: load aws config: %w", err)
	}
	return New(dynamodb.NewFromConfig(cfg), opts...), nil
}

// Get executes a single GetItem call.
func (c *Client) Get(ctx context.Context, params *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTable
	}
	c.observe(VerbGet)
	out, err := c.api.GetItem(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("dyndb: get failed: %w", err)
	}
	return out, nil
}

// Query executes a single Query call.
func (c *Client) Query(ctx context.Context, params *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTable
	}
	c.observe(VerbQuery)
	out, err := c.api.Query(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("dyndb: query failed: %w", err)
	}
	return out, nil
}

// Put executes a single PutItem call.
func (c *Client) Put(ctx context.Context, params *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTable
	}
	c.observe(VerbPut)
	out, err := c.api.PutItem(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("dyndb: put failed: %w", err)
	}
	return out, nil
}

// Update executes a single UpdateItem call.
func (c *Client) Update(ctx context.Context, params *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTable
	}
	c.observe(VerbUpdate)
	out, err := c.api.UpdateItem(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("dyndb: update failed: %w", err)
	}
	return out, nil
}

// Delete executes a single DeleteItem call.
func (c *Client) Delete(ctx context.Context, params *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTable
	}
	c.observe(VerbDelete)
	out, err := c.api.DeleteItem(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("dyndb: delete failed: %w", err)
	}
	return out, nil
}

// BatchWrite submits a batch and resubmits whatever DynamoDB reports as
// unprocessed, up to RetryPolicy.MaxRetries additional attempts. Once the
// budget is spent the last output is returned as-is, so callers must check
// UnprocessedItems themselves; leftover items are not an error.
func (c *Client) BatchWrite(ctx context.Context, params *dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error) {
	if params == nil || len(params.RequestItems) == 0 {
		return nil, ErrEmptyBatch
	}
	for table, reqs := range params.RequestItems {
		if table == "" {
			return nil, ErrMissingTable
		}
		if len(reqs) == 0 {
			return nil, ErrEmptyBatch
		}
	}

	c.observe(VerbBatchWrite)
	out, err := c.api.BatchWriteItem(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("dyndb: batch write failed: %w", err)
	}

	for attempt := 1; attempt <= c.policy.MaxRetries && len(out.UnprocessedItems) > 0; attempt++ {
		c.log.Warn().
			Int("attempt", attempt).
			Int("tables", len(out.UnprocessedItems)).
			Msg("dyndb: resubmitting unprocessed batch items")
		_ = c.metrics.Count("dyndb.batch_write.retry", 1, []string{"verb:batchWrite"})

		if err := c.wait(ctx); err != nil {
			return out, err
		}

		c.observe(VerbBatchWrite)
		out, err = c.api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: out.UnprocessedItems,
		})
		if err != nil {
			return nil, fmt.Errorf("dyndb: batch write retry failed: %w", err)
		}
	}

	if n := countRequests(out.UnprocessedItems); n > 0 {
		c.log.Warn().Int("unprocessed", n).Msg("dyndb: retry budget exhausted with unprocessed items")
		_ = c.metrics.Count("dyndb.batch_write.unprocessed", float64(n), []string{"verb:batchWrite"})
	}
	return out, nil
}

// wait sleeps for the policy delay without stalling other goroutines; a
// cancelled context ends the retry loop early.
func (c *Client) wait(ctx context.Context) error {
	if c.policy.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.policy.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) observe(v Verb) {
	c.log.Debug().Stringer("verb", v).Msg("dyndb: request")
	_ = c.metrics.Count("dyndb.request", 1, []string{"verb:" + v.String()})
}

func countRequests(items map[string][]types.WriteRequest) int {
	n := 0
	for _, reqs := range items {
		n += len(reqs)
	}
	return n
}
