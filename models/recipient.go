// models/recipient.go
package models

import (
	"context"

	"github.com/google/uuid"

	"github.com/Calrion/moonmail-models/dyndb"
	"github.com/Calrion/moonmail-models/model"
)

// Recipient statuses. Transitions come from subscribe links and delivery
// feedback notifications.
const (
	RecipientStatusSubscribed   = "subscribed"
	RecipientStatusUnsubscribed = "unsubscribed"
	RecipientStatusBounced      = "bounced"
	RecipientStatusComplained   = "complained"
)

// Recipient is one address on a list, partitioned by list and sorted by
// recipient id.
type Recipient struct {
	ListID    string `dynamodbav:"listId"`
	ID        string `dynamodbav:"id"`
	Email     string `dynamodbav:"email,omitempty"`
	Status    string `dynamodbav:"status,omitempty"`
	CreatedAt int64  `dynamodbav:"createdAt,omitempty"`
}

// RecipientSchema requires an addressable, deliverable record.
func RecipientSchema() map[string]interface{} {
	return map[string]interface{}{
		"id":     "required",
		"listId": "required",
		"email":  "required,email",
	}
}

// RecipientDescriptor describes the recipients table.
func RecipientDescriptor(table string) model.Descriptor {
	return model.Descriptor{
		TableName: table,
		HashKey:   "listId",
		RangeKey:  "id",
		Schema:    RecipientSchema(),
	}
}

// RecipientModel is the recipients data access surface.
type RecipientModel struct {
	*model.Model[Recipient]
}

// NewRecipientModel builds the recipient model on a shared client.
func NewRecipientModel(client *dyndb.Client, table string) RecipientModel {
	return RecipientModel{model.New[Recipient](client, RecipientDescriptor(table))}
}

// NewRecipient assembles a subscribed recipient with a fresh id.
func NewRecipient(listID, email string) Recipient {
	return Recipient{
		ListID: listID,
		ID:     uuid.NewString(),
		Email:  email,
		Status: RecipientStatusSubscribed,
	}
}

// ByList pages through a list's recipients.
func (m RecipientModel) ByList(ctx context.Context, listID string, opts *model.Options) (*model.Page[Recipient], error) {
	return m.AllBy(ctx, "listId", listID, opts)
}

// CountByList reports the list size.
func (m RecipientModel) CountByList(ctx context.Context, listID string) (int32, error) {
	return m.CountBy(ctx, "listId", listID)
}

// UpdateStatus records a subscription or feedback transition.
func (m RecipientModel) UpdateStatus(ctx context.Context, listID, id, status string) (*Recipient, error) {
	return m.Update(ctx, map[string]any{"status": status}, listID, id)
}
