// dyndb/types.go
package dyndb

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrMissingTable is returned before any network call when a request does
// not identify a target table.
var ErrMissingTable = errors.New("dyndb: missing table name")

// ErrEmptyBatch is returned when a batch write carries no write requests.
var ErrEmptyBatch = errors.New("dyndb: empty batch")

// DynamoDBClient abstracts the subset of the SDK client the package uses,
// so tests can swap in MockDynamoClient.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Verb identifies one of the closed set of store operations the client
// executes. It exists for log and metric tags; dispatch itself happens
// through typed methods, never by name.
type Verb int

const (
	VerbGet Verb = iota
	VerbQuery
	VerbPut
	VerbUpdate
	VerbDelete
	VerbBatchWrite
)

func (v Verb) String() string {
	switch v {
	case VerbGet:
		return "get"
	case VerbQuery:
		return "query"
	case VerbPut:
		return "put"
	case VerbUpdate:
		return "update"
	case VerbDelete:
		return "delete"
	case VerbBatchWrite:
		return "batchWrite"
	default:
		return "unknown"
	}
}

// RetryPolicy bounds the batch-write retry loop. Delay is a fixed wait
// between attempts; tests shrink it to near zero.
type RetryPolicy struct {
	MaxRetries int           `env:"DYNDB_MAX_RETRIES" envDefault:"3"`
	Delay      time.Duration `env:"DYNDB_RETRY_DELAY" envDefault:"100ms"`
}

// DefaultRetryPolicy resubmits unprocessed batch items a few times with a
// short fixed delay, without exponential backoff.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 3,
	Delay:      100 * time.Millisecond,
}
