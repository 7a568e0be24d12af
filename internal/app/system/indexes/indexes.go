// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. CreateMany is idempotent for identical
definitions, so re-running on boot is safe. Errors are aggregated so
every problem is visible and startup can fail fast.

The unique registration indexes are the authoritative duplicate guard:
the application-level pre-check only exists for a clean error message,
and a concurrent insert that slips past it is rejected here. They are
deliberately status-blind, so a cancelled registration still blocks a
retry.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, models []mongo.IndexModel) {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("organizations", []mongo.IndexModel{
		{Keys: bson.D{{Key: "name_ci", Value: 1}}},
		{Keys: bson.D{{Key: "location_ci", Value: 1}}},
		{Keys: bson.D{{Key: "visible", Value: 1}, {Key: "name_ci", Value: 1}}},
	})

	ensure("companies", []mongo.IndexModel{
		{Keys: bson.D{{Key: "name_ci", Value: 1}}},
		{Keys: bson.D{{Key: "sector_ci", Value: 1}}},
		{Keys: bson.D{{Key: "visible", Value: 1}, {Key: "name_ci", Value: 1}}},
	})

	ensure("events", []mongo.IndexModel{
		{Keys: bson.D{{Key: "starts_at", Value: 1}}},
		{Keys: bson.D{{Key: "organization_id", Value: 1}}},
		{Keys: bson.D{{Key: "visible", Value: 1}, {Key: "starts_at", Value: 1}}},
	})

	ensure("initiatives", []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "cause_id", Value: 1}}},
		{Keys: bson.D{{Key: "support_type_id", Value: 1}}},
	})

	ensure("collaborators", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "company_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	ensure("registrations", []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.M{"event_id": bson.M{"$exists": true}},
			),
		},
		{
			Keys: bson.D{{Key: "initiative_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.M{"initiative_id": bson.M{"$exists": true}},
			),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	})

	ensure("impact_snapshots", []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "company_id", Value: 1},
				{Key: "year", Value: 1},
				{Key: "month", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})

	ensure("proposals", []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "status", Value: 1}}},
	})

	ensure("meetings", []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "starts_at", Value: 1}}},
	})

	for _, coll := range []string{"ods", "causes", "areas", "support_types", "collaboration_types"} {
		ensure(coll, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "name_ci", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		})
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
