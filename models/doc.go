// Package models defines the concrete MoonMail entities (campaigns,
// recipients, lists) on top of the generic model layer. Each entity is a
// plain struct with dynamodbav tags plus a thin wrapper around
// model.Model[T] adding entity-specific queries, all sharing one
// dyndb.Client:
//
//	cfg, err := models.LoadConfig("config.yaml")
//	policy, err := cfg.Retry.Policy()
//	client, err := dyndb.NewClient(ctx, cfg.Region, dyndb.WithRetryPolicy(policy))
//	campaigns := models.NewCampaignModel(client, cfg.Tables.Campaigns)
//
//	draft := models.NewCampaign(userID, senderID, "Hello", "<p>Hi</p>", listIDs)
//	err = campaigns.Save(ctx, draft)
package models
