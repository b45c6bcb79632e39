// model/descriptor.go
package model

// DefaultCreatedAtAttribute is stamped on items at save time when the
// descriptor does not name its own attribute.
const DefaultCreatedAtAttribute = "createdAt"

// Descriptor is the static metadata for one entity: where its items live
// and how they are addressed. It is plain configuration passed in at
// construction; nothing here is read from the process environment.
type Descriptor struct {
	// TableName identifies the target table. Operations against an empty
	// table name fail with dyndb.ErrMissingTable before any network call.
	TableName string

	// HashKey is the partition-key attribute name. Always required.
	HashKey string

	// RangeKey is the sort-key attribute name, empty for hash-only tables.
	RangeKey string

	// Schema holds validator rules keyed by attribute name, in the form
	// accepted by validator.ValidateMap (e.g. "required,min=1"). A nil
	// schema means every item is valid.
	Schema map[string]interface{}

	// CreatedAt overrides the creation-timestamp attribute name.
	CreatedAt string
}

func (d Descriptor) createdAtAttribute() string {
	if d.CreatedAt != "" {
		return d.CreatedAt
	}
	return DefaultCreatedAtAttribute
}

// isKeyAttribute reports whether name addresses the item rather than
// describing it. Key attributes are never part of an update.
func (d Descriptor) isKeyAttribute(name string) bool {
	if name == d.HashKey {
		return true
	}
	return d.RangeKey != "" && name == d.RangeKey
}
