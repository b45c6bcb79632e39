// models/campaign.go
package models

import (
	"context"

	"github.com/google/uuid"

	"github.com/Calrion/moonmail-models/dyndb"
	"github.com/Calrion/moonmail-models/model"
)

// Campaign statuses as stored in the status attribute.
const (
	CampaignStatusDraft = "draft"
	CampaignStatusSent  = "sent"
)

// Campaign is one email campaign owned by a user. Items are partitioned by
// user and sorted by campaign id.
type Campaign struct {
	UserID    string   `dynamodbav:"userId"`
	ID        string   `dynamodbav:"id"`
	SenderID  string   `dynamodbav:"senderId,omitempty"`
	Subject   string   `dynamodbav:"subject,omitempty"`
	Body      string   `dynamodbav:"body,omitempty"`
	ListIDs   []string `dynamodbav:"listIds,omitempty"`
	Status    string   `dynamodbav:"status,omitempty"`
	SentCount int      `dynamodbav:"sentCount,omitempty"`
	CreatedAt int64    `dynamodbav:"createdAt,omitempty"`
	SentAt    int64    `dynamodbav:"sentAt,omitempty"`
}

// CampaignSchema lists the attributes a campaign must carry before it can
// be persisted. A campaign without at least one target list is unusable.
func CampaignSchema() map[string]interface{} {
	return map[string]interface{}{
		"id":       "required",
		"userId":   "required",
		"senderId": "required",
		"subject":  "required",
		"body":     "required",
		"listIds":  "required,min=1",
	}
}

// CampaignDescriptor describes the campaigns table.
func CampaignDescriptor(table string) model.Descriptor {
	return model.Descriptor{
		TableName: table,
		HashKey:   "userId",
		RangeKey:  "id",
		Schema:    CampaignSchema(),
	}
}

// CampaignModel is the campaigns data access surface.
type CampaignModel struct {
	*model.Model[Campaign]
}

// NewCampaignModel builds the campaign model on a shared client.
func NewCampaignModel(client *dyndb.Client, table string) CampaignModel {
	return CampaignModel{model.New[Campaign](client, CampaignDescriptor(table))}
}

// NewCampaign assembles a draft campaign with a fresh id.
func NewCampaign(userID, senderID, subject, body string, listIDs []string) Campaign {
	return Campaign{
		UserID:   userID,
		ID:       uuid.NewString(),
		SenderID: senderID,
		Subject:  subject,
		Body:     body,
		ListIDs:  listIDs,
		Status:   CampaignStatusDraft,
	}
}

// ByUser pages through one user's campaigns.
func (m CampaignModel) ByUser(ctx context.Context, userID string, opts *model.Options) (*model.Page[Campaign], error) {
	return m.AllBy(ctx, "userId", userID, opts)
}

// CountByUser reports how many campaigns the user owns.
func (m CampaignModel) CountByUser(ctx context.Context, userID string) (int32, error) {
	return m.CountBy(ctx, "userId", userID)
}

// IncrementSentCount bumps the delivery counter after a send batch.
func (m CampaignModel) IncrementSentCount(ctx context.Context, userID, id string, delta int) (*Campaign, error) {
	return m.Increment(ctx, "sentCount", delta, userID, id)
}
