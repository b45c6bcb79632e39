// models/campaign_test.go
package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Calrion/moonmail-models/dyndb"
	"github.com/Calrion/moonmail-models/model"
	"github.com/Calrion/moonmail-models/models"
)

func testClient(mock *dyndb.MockDynamoClient) *dyndb.Client {
	return dyndb.New(mock, dyndb.WithRetryPolicy(dyndb.RetryPolicy{
		MaxRetries: 1,
		Delay:      time.Microsecond,
	}))
}

func validCampaign() models.Campaign {
	return models.NewCampaign("u-1", "s-1", "Hello", "<p>Hi</p>", []string{"l-1"})
}

func TestNewCampaign_Defaults(t *testing.T) {
	t.Parallel()

	c := validCampaign()
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, models.CampaignStatusDraft, c.Status)
	assert.Zero(t, c.CreatedAt, "creation time is stamped at save, not construction")

	other := validCampaign()
	assert.NotEqual(t, c.ID, other.ID)
}

func TestCampaignDescriptor_Keys(t *testing.T) {
	t.Parallel()

	d := models.CampaignDescriptor("campaigns")
	assert.Equal(t, "campaigns", d.TableName)
	assert.Equal(t, "userId", d.HashKey)
	assert.Equal(t, "id", d.RangeKey)
	assert.NotNil(t, d.Schema)
}

func TestCampaignModel_Validation(t *testing.T) {
	t.Parallel()

	m := models.NewCampaignModel(testClient(&dyndb.MockDynamoClient{}), "campaigns")

	assert.True(t, m.IsValid(validCampaign()))

	noLists := validCampaign()
	noLists.ListIDs = nil
	assert.False(t, m.IsValid(noLists))

	noSubject := validCampaign()
	noSubject.Subject = ""
	assert.False(t, m.IsValid(noSubject))
}

func TestCampaignModel_SaveRejectsInvalid(t *testing.T) {
	t.Parallel()

	calls := 0
	mock := &dyndb.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			calls++
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	m := models.NewCampaignModel(testClient(mock), "campaigns")

	err := m.Save(context.Background(), models.Campaign{UserID: "u-1", ID: "c-1"})
	assert.ErrorIs(t, err, model.ErrInvalidItem)
	assert.Zero(t, calls)
}

func TestCampaignModel_ByUserQueriesHashKey(t *testing.T) {
	t.Parallel()

	var captured *dynamodb.QueryInput
	mock := &dyndb.MockDynamoClient{
		QueryFn: func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			captured = params
			return &dynamodb.QueryOutput{}, nil
		},
	}
	m := models.NewCampaignModel(testClient(mock), "campaigns")

	_, err := m.ByUser(context.Background(), "u-1", nil)
	require.NoError(t, err)

	assert.Equal(t, "campaigns", aws.ToString(captured.TableName))
	assert.Contains(t, captured.ExpressionAttributeValues, ":0")
}

func TestCampaignModel_IncrementSentCount(t *testing.T) {
	t.Parallel()

	var captured *dynamodb.UpdateItemInput
	mock := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			captured = params
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"userId":    &types.AttributeValueMemberS{Value: "u-1"},
				"id":        &types.AttributeValueMemberS{Value: "c-1"},
				"sentCount": &types.AttributeValueMemberN{Value: "120"},
			}}, nil
		},
	}
	m := models.NewCampaignModel(testClient(mock), "campaigns")

	c, err := m.IncrementSentCount(context.Background(), "u-1", "c-1", 20)
	require.NoError(t, err)
	assert.Equal(t, 120, c.SentCount)

	update := captured.AttributeUpdates["sentCount"]
	assert.Equal(t, types.AttributeActionAdd, update.Action)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "20"}, update.Value)
}
