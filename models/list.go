// models/list.go
package models

import (
	"context"

	"github.com/google/uuid"

	"github.com/Calrion/moonmail-models/dyndb"
	"github.com/Calrion/moonmail-models/model"
)

// List is a named collection of recipients with denormalized per-status
// counters, partitioned by user and sorted by list id.
type List struct {
	UserID            string `dynamodbav:"userId"`
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name,omitempty"`
	SubscribedCount   int    `dynamodbav:"subscribedCount,omitempty"`
	UnsubscribedCount int    `dynamodbav:"unsubscribedCount,omitempty"`
	BouncedCount      int    `dynamodbav:"bouncedCount,omitempty"`
	ComplainedCount   int    `dynamodbav:"complainedCount,omitempty"`
	CreatedAt         int64  `dynamodbav:"createdAt,omitempty"`
}

// ListDescriptor describes the lists table. Lists carry no schema; any
// shape is accepted.
func ListDescriptor(table string) model.Descriptor {
	return model.Descriptor{
		TableName: table,
		HashKey:   "userId",
		RangeKey:  "id",
	}
}

// ListModel is the lists data access surface.
type ListModel struct {
	*model.Model[List]
}

// NewListModel builds the list model on a shared client.
func NewListModel(client *dyndb.Client, table string) ListModel {
	return ListModel{model.New[List](client, ListDescriptor(table))}
}

// NewList assembles an empty list with a fresh id.
func NewList(userID, name string) List {
	return List{
		UserID: userID,
		ID:     uuid.NewString(),
		Name:   name,
	}
}

// ByUser pages through one user's lists.
func (m ListModel) ByUser(ctx context.Context, userID string, opts *model.Options) (*model.Page[List], error) {
	return m.AllBy(ctx, "userId", userID, opts)
}

// AdjustCounters applies several counter deltas in one update, e.g. moving
// a recipient from subscribed to unsubscribed:
//
//	lists.AdjustCounters(ctx, userID, listID, map[string]int{
//		"subscribedCount":   -1,
//		"unsubscribedCount": 1,
//	})
func (m ListModel) AdjustCounters(ctx context.Context, userID, id string, deltas map[string]int) (*List, error) {
	return m.IncrementAll(ctx, userID, id, deltas)
}
