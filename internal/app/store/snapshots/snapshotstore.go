// internal/app/store/snapshots/snapshotstore.go
package snapshotstore

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds per-company monthly impact snapshots. Snapshots are
// append-only: a (company, year, month) period is written exactly once.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("impact_snapshots")}
}

// Create appends one closed period. Writing the same period twice is a
// conflict, never an overwrite.
func (s *Store) Create(ctx context.Context, snap models.ImpactSnapshot) (models.ImpactSnapshot, error) {
	if snap.CompanyID.IsZero() {
		return models.ImpactSnapshot{}, apperr.Invalid("companyId", "owning company is required")
	}
	if snap.Year < 2000 || snap.Year > 2200 {
		return models.ImpactSnapshot{}, apperr.Invalid("year", "out of range")
	}
	if snap.Month < 1 || snap.Month > 12 {
		return models.ImpactSnapshot{}, apperr.Invalid("month", "must be 1 through 12")
	}
	if snap.VolunteerHours < 0 || snap.ProjectCount < 0 || snap.VolunteerCount < 0 || snap.DonationValue < 0 {
		return models.ImpactSnapshot{}, apperr.New(apperr.Validation, "snapshot values must not be negative")
	}

	snap.ID = primitive.NewObjectID()
	snap.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, snap); err != nil {
		if wafflemongo.IsDup(err) {
			return models.ImpactSnapshot{}, apperr.Newf(apperr.Conflict,
				"a snapshot for %04d-%02d already exists for this company", snap.Year, snap.Month)
		}
		return models.ImpactSnapshot{}, apperr.Wrap("create snapshot", err)
	}
	return snap, nil
}

// ListByCompany returns a company's snapshots in chronological order,
// optionally starting at fromYear.
func (s *Store) ListByCompany(ctx context.Context, companyID primitive.ObjectID, fromYear int) ([]models.ImpactSnapshot, error) {
	filter := bson.M{"company_id": companyID}
	if fromYear > 0 {
		filter["year"] = bson.M{"$gte": fromYear}
	}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "year", Value: 1},
		{Key: "month", Value: 1},
	}))
	if err != nil {
		return nil, apperr.Wrap("find snapshots", err)
	}
	defer cur.Close(ctx)

	var out []models.ImpactSnapshot
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Wrap("decode snapshots", err)
	}
	return out, nil
}

// Delete removes one snapshot. Kept for admin corrections; the normal
// path never deletes.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete snapshot", err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "snapshot %s not found", id.Hex())
	}
	return nil
}
