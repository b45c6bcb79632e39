// model/update_test.go
package model

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeUpdates_EncodesPutActions(t *testing.T) {
	t.Parallel()

	d := Descriptor{TableName: "campaigns", HashKey: "userId", RangeKey: "id"}
	updates := d.attributeUpdates(map[string]any{
		"subject": "hello",
		"status":  "draft",
	})

	require.Len(t, updates, 2)
	assert.Equal(t, types.AttributeActionPut, updates["subject"].Action)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "hello"}, updates["subject"].Value)
	assert.Equal(t, types.AttributeActionPut, updates["status"].Action)
}

func TestAttributeUpdates_DropsKeyAttributes(t *testing.T) {
	t.Parallel()

	d := Descriptor{TableName: "campaigns", HashKey: "userId", RangeKey: "id"}
	updates := d.attributeUpdates(map[string]any{
		"userId":  "u-1",
		"id":      "c-1",
		"subject": "hello",
	})

	require.Len(t, updates, 1)
	assert.NotContains(t, updates, "userId")
	assert.NotContains(t, updates, "id")
	assert.Contains(t, updates, "subject")
}

func TestAttributeUpdates_HashOnlyEntityKeepsRangeName(t *testing.T) {
	t.Parallel()

	// With no range key declared, an "id" attribute is ordinary data.
	d := Descriptor{TableName: "links", HashKey: "linkId"}
	updates := d.attributeUpdates(map[string]any{"id": "x"})

	assert.Contains(t, updates, "id")
}

func TestIncrementUpdates_EncodesAddActions(t *testing.T) {
	t.Parallel()

	d := Descriptor{TableName: "campaigns", HashKey: "userId", RangeKey: "id"}
	updates := d.incrementUpdates(map[string]int{"sentCount": 5})

	require.Len(t, updates, 1)
	assert.Equal(t, types.AttributeActionAdd, updates["sentCount"].Action)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, updates["sentCount"].Value)
}

func TestIncrementUpdates_NegativeDelta(t *testing.T) {
	t.Parallel()

	d := Descriptor{TableName: "lists", HashKey: "userId", RangeKey: "id"}
	updates := d.incrementUpdates(map[string]int{"subscribedCount": -2})

	require.Contains(t, updates, "subscribedCount")
	assert.Equal(t, types.AttributeActionAdd, updates["subscribedCount"].Action)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "-2"}, updates["subscribedCount"].Value)
}

func TestIncrementUpdates_DropsKeyAttributes(t *testing.T) {
	t.Parallel()

	d := Descriptor{TableName: "campaigns", HashKey: "userId", RangeKey: "id"}
	updates := d.incrementUpdates(map[string]int{"id": 1, "sentCount": 1})

	require.Len(t, updates, 1)
	assert.Contains(t, updates, "sentCount")
}

func TestKey_HashAndRange(t *testing.T) {
	t.Parallel()

	d := Descriptor{TableName: "campaigns", HashKey: "userId", RangeKey: "id"}
	key := d.Key("u-1", "c-1")

	require.Len(t, key, 2)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "u-1"}, key["userId"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "c-1"}, key["id"])
}

func TestKey_HashOnlyEntityIgnoresRangeValue(t *testing.T) {
	t.Parallel()

	d := Descriptor{TableName: "links", HashKey: "linkId"}
	key := d.Key("l-1", "ignored")

	require.Len(t, key, 1)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "l-1"}, key["linkId"])
}

func TestKey_MissingRangeValueOmitsAttribute(t *testing.T) {
	t.Parallel()

	// Caller contract: a range-keyed entity addressed without a range value
	// yields a key missing that attribute, not an error.
	d := Descriptor{TableName: "campaigns", HashKey: "userId", RangeKey: "id"}
	key := d.Key("u-1", nil)

	require.Len(t, key, 1)
	assert.Contains(t, key, "userId")
}
