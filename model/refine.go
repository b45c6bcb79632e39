// model/refine.go
package model

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// refineItem applies exclusion semantics to one fetched item: when the
// options list fields with IncludeFields false, every listed attribute is
// removed. Removing an absent attribute is a no-op; attributes not listed
// are untouched. Inclusion semantics need no work here because the fetch
// was already projected.
func refineItem(item map[string]types.AttributeValue, opts *Options) {
	if opts == nil || opts.IncludeFields {
		return
	}
	for _, f := range opts.fieldList() {
		delete(item, f)
	}
}

// refineItems applies refineItem to each item independently, preserving
// order.
func refineItems(items []map[string]types.AttributeValue, opts *Options) {
	if opts == nil || opts.IncludeFields {
		return
	}
	fields := opts.fieldList()
	for _, item := range items {
		for _, f := range fields {
			delete(item, f)
		}
	}
}
