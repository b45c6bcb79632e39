// model/options.go
package model

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// Options is the optional parameter surface for read operations.
type Options struct {
	// Fields is a comma-separated list of attribute names.
	Fields string

	// IncludeFields selects what Fields means: true restricts the fetch to
	// the listed attributes at the store level (a projection); false strips
	// the listed attributes from the result after the fetch, since the
	// store's native projection only supports inclusion.
	IncludeFields bool

	// Page is an opaque cursor from a previous page result. Malformed
	// cursors fail the query rather than silently restarting it.
	Page string

	// Limit caps the number of items per page; zero means no cap.
	Limit int32
}

// fieldList splits Fields, dropping whitespace and empty entries while
// preserving the order given.
func (o *Options) fieldList() []string {
	if o == nil || o.Fields == "" {
		return nil
	}
	parts := strings.Split(o.Fields, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// projection returns the store-level projection for these options, or nil
// when no projection applies (no fields requested, or exclusion semantics,
// which are handled after the fetch). The expression builder substitutes a
// placeholder per attribute so names may collide with reserved words.
func (o *Options) projection() *expression.ProjectionBuilder {
	if o == nil || !o.IncludeFields {
		return nil
	}
	fields := o.fieldList()
	if len(fields) == 0 {
		return nil
	}

	rest := make([]expression.NameBuilder, 0, len(fields)-1)
	for _, f := range fields[1:] {
		rest = append(rest, expression.Name(f))
	}
	proj := expression.NamesList(expression.Name(fields[0]), rest...)
	return &proj
}

// page returns the cursor, tolerating a nil receiver.
func (o *Options) page() string {
	if o == nil {
		return ""
	}
	return o.Page
}

// limit returns the page-size cap, tolerating a nil receiver.
func (o *Options) limit() int32 {
	if o == nil {
		return 0
	}
	return o.Limit
}
