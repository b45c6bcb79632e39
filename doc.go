// Package moonmailmodels is the root of the MoonMail data-layer module.
//
// The module is organized in three layers:
//
//   - dyndb: the single DynamoDB choke point. Every request crosses one
//     retry-aware client that validates table names up front, logs and
//     counts each verb and resubmits unprocessed batch writes.
//   - model: a generic Model[T] giving any entity CRUD, equality queries
//     with opaque pagination, attribute-level updates, counters and
//     optional schema validation.
//   - models: the concrete MoonMail entities (Campaign, Recipient, List)
//     composed from the two layers plus file/env configuration.
//
// Supporting packages: envloader fills config structs from the process
// environment, pkg/logger and pkg/metrics wire zerolog and Datadog StatsD.
// See examples/campaigns for a complete walkthrough.
package moonmailmodels
