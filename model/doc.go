// Package model is a generic data-access layer over DynamoDB for entities
// addressed by a hash key and an optional range key. A Model[T] gives each
// concrete entity uniform CRUD operations, batch persistence with
// partial-failure recovery, opaque forward pagination, attribute-level
// partial updates and optional schema validation, without the entity
// touching the store protocol.
//
// Entities are described by a Descriptor (table name, key attribute names,
// optional validator schema) and composed with a shared dyndb.Client:
//
//	campaigns := model.New[Campaign](client, model.Descriptor{
//		TableName: "campaigns",
//		HashKey:   "userId",
//		RangeKey:  "id",
//	})
//
//	page, err := campaigns.AllBy(ctx, "userId", "u-1", &model.Options{Limit: 25})
//	if page.NextPage != "" {
//		// pass back via Options.Page to resume
//	}
//
// Read operations accept Options to project fields at the store level
// (IncludeFields true) or strip them from results after the fetch
// (IncludeFields false), and to resume pagination from an opaque cursor.
//
// Save stamps a creation-time attribute once; Update and Increment encode
// attribute-level PUT/ADD actions and silently drop key attributes from
// their input, so full records can be passed without pre-stripping keys.
package model
