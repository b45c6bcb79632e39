// model/page_test.go
package model

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		key  map[string]types.AttributeValue
	}{
		{
			name: "hash only",
			key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: "c-123"},
			},
		},
		{
			name: "hash and range",
			key: map[string]types.AttributeValue{
				"userId": &types.AttributeValueMemberS{Value: "u-1"},
				"id":     &types.AttributeValueMemberS{Value: "c-2"},
			},
		},
		{
			name: "numeric range",
			key: map[string]types.AttributeValue{
				"listId":    &types.AttributeValueMemberS{Value: "l-9"},
				"createdAt": &types.AttributeValueMemberN{Value: "1700000000"},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			token, err := encodePage(tc.key)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			decoded, err := decodePage(token)
			require.NoError(t, err)
			assert.Equal(t, tc.key, decoded)
		})
	}
}

func TestPageCodec_TokenIsURLSafe(t *testing.T) {
	t.Parallel()

	token, err := encodePage(map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "a value with spaces & symbols?/+"},
	})
	require.NoError(t, err)

	assert.False(t, strings.ContainsAny(token, "+/="), "token %q must be URL-safe", token)
}

func TestPageCodec_MalformedTokens(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"not base64!!", "bm90IGpzb24", "e30#"} {
		_, err := decodePage(token)
		assert.ErrorIs(t, err, ErrBadPageToken, "token %q", token)
	}
}
