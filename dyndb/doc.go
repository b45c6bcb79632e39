// Package dyndb is the execution layer beneath the model package: every
// DynamoDB interaction goes through a single Client.
//
// The Client exposes one typed method per verb (Get, Query, Put, Update,
// Delete, BatchWrite). Each method validates that the request addresses a
// table before touching the network, returning ErrMissingTable otherwise.
//
// Single-shot verbs forward one request and surface any store error to the
// caller unchanged (wrapped for context, never swallowed, never retried).
//
// BatchWrite is the only multi-step verb: items DynamoDB reports as
// unprocessed are resubmitted until they drain or the RetryPolicy budget is
// spent. A batch that still has unprocessed items after the last attempt is
// returned successfully; callers inspect UnprocessedItems and decide whether
// to requeue.
//
// The retry delay waits on the context, so a slow loop never blocks
// unrelated goroutines and cancellation ends it early.
//
//	client := dyndb.New(dynamodb.NewFromConfig(cfg),
//		dyndb.WithRetryPolicy(dyndb.RetryPolicy{MaxRetries: 3, Delay: 100 * time.Millisecond}),
//		dyndb.WithLogger(log))
//
// MockDynamoClient implements the same interface with function fields for
// tests.
package dyndb
