// model/page.go
package model

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrBadPageToken is returned when a page cursor cannot be decoded. The
// triggering query fails instead of silently restarting from the
// beginning, which would hand back duplicate data.
var ErrBadPageToken = errors.New("model: malformed page token")

// Page is one page of query results. NextPage is present exactly when the
// store reported more data beyond this page; treat it as a black box.
type Page[T any] struct {
	Items    []T
	NextPage string
}

// encodePage serializes a key map into an opaque, URL-safe cursor. The
// codec only round-trips scalar key values; it never interprets them.
func encodePage(key map[string]types.AttributeValue) (string, error) {
	var plain map[string]any
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("model: encode page token: %w", err)
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("model: encode page token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// decodePage reverses encodePage into the key map the store's continuation
// parameter expects.
func decodePage(token string) (map[string]types.AttributeValue, error) {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPageToken, err)
	}
	var plain map[string]any
	if err := json.Unmarshal(b, &plain); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPageToken, err)
	}
	key, err := attributevalue.MarshalMap(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPageToken, err)
	}
	return key, nil
}
