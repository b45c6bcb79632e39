// model/key.go
package model

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Key builds the store key for the given hash and range values. The range
// attribute is included only when the descriptor declares one and a value
// was supplied; callers addressing a range-keyed table must pass the range
// value themselves.
func (d Descriptor) Key(hash, rng any) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{
		d.HashKey: attr(hash),
	}
	if d.RangeKey != "" && rng != nil {
		key[d.RangeKey] = attr(rng)
	}
	return key
}

// keyFromItem extracts the key attributes of a fetched item, used as the
// pagination boundary. The last returned item is the boundary (rather than
// the store's own marker) so the cursor stays correct across sort-direction
// changes.
func (d Descriptor) keyFromItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	key := make(map[string]types.AttributeValue, 2)
	if v, ok := item[d.HashKey]; ok {
		key[d.HashKey] = v
	}
	if d.RangeKey != "" {
		if v, ok := item[d.RangeKey]; ok {
			key[d.RangeKey] = v
		}
	}
	return key
}

// attr converts any scalar to its AttributeValue representation.
func attr(v any) types.AttributeValue {
	if v == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return av
}
