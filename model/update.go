// model/update.go
package model

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// attributeUpdates encodes a partial update as a per-attribute PUT action
// table. Key attributes present in the input are dropped, not rejected, so
// callers may pass a full record without stripping its keys first.
func (d Descriptor) attributeUpdates(attrs map[string]any) map[string]types.AttributeValueUpdate {
	updates := make(map[string]types.AttributeValueUpdate, len(attrs))
	for name, value := range attrs {
		if d.isKeyAttribute(name) {
			continue
		}
		updates[name] = types.AttributeValueUpdate{
			Action: types.AttributeActionPut,
			Value:  attr(value),
		}
	}
	return updates
}

// incrementUpdates encodes counter deltas as ADD actions. Negative deltas
// decrement. Key attributes are dropped the same way as in
// attributeUpdates.
func (d Descriptor) incrementUpdates(deltas map[string]int) map[string]types.AttributeValueUpdate {
	updates := make(map[string]types.AttributeValueUpdate, len(deltas))
	for name, delta := range deltas {
		if d.isKeyAttribute(name) {
			continue
		}
		updates[name] = types.AttributeValueUpdate{
			Action: types.AttributeActionAdd,
			Value:  attr(delta),
		}
	}
	return updates
}
