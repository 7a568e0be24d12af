// internal/app/store/facets/facetstore.go
package facetstore

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/normalize"
	"github.com/dalemusser/impacthub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Kind identifies one facet lookup collection.
type Kind string

const (
	ODS               Kind = "ods"
	Cause             Kind = "causes"
	Area              Kind = "areas"
	SupportType       Kind = "support_types"
	CollaborationType Kind = "collaboration_types"
)

// Kinds lists every facet kind, for routing and seeding.
var Kinds = []Kind{ODS, Cause, Area, SupportType, CollaborationType}

type ref struct {
	coll  string
	field string
	label string
}

// references maps each facet kind to the collections that may point at
// it. Facets are shared, never owned: a delete is blocked while any of
// these references exist (restrict, not cascade). The same {field: id}
// filter matches both id-array fields and scalar id fields.
var references = map[Kind][]ref{
	ODS: {
		{"organizations", "ods_ids", "organizations"},
		{"companies", "ods_ids", "companies"},
		{"events", "ods_ids", "events"},
	},
	Cause: {
		{"companies", "cause_ids", "companies"},
		{"initiatives", "cause_id", "initiatives"},
	},
	Area: {
		{"organizations", "area_ids", "organizations"},
		{"events", "area_ids", "events"},
	},
	SupportType: {
		{"companies", "support_type_ids", "companies"},
		{"initiatives", "support_type_id", "initiatives"},
	},
	CollaborationType: {
		{"organizations", "collaboration_type_ids", "organizations"},
	},
}

// Store is the repository for one facet kind.
type Store struct {
	db   *mongo.Database
	kind Kind
	c    *mongo.Collection
}

func New(db *mongo.Database, kind Kind) *Store {
	return &Store{db: db, kind: kind, c: db.Collection(string(kind))}
}

// Kind returns the facet kind this store serves.
func (s *Store) Kind() Kind { return s.kind }

// List returns all facets of this kind, ODS by number, the rest by
// folded name.
func (s *Store) List(ctx context.Context) ([]models.Facet, error) {
	sort := bson.D{{Key: "name_ci", Value: 1}}
	if s.kind == ODS {
		sort = bson.D{{Key: "number", Value: 1}}
	}
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, apperr.Wrap("list "+string(s.kind), err)
	}
	defer cur.Close(ctx)

	var out []models.Facet
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Wrap("decode "+string(s.kind), err)
	}
	return out, nil
}

// GetByID loads one facet.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Facet, error) {
	var f models.Facet
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return models.Facet{}, apperr.Newf(apperr.NotFound, "%s %s not found", s.kind, id.Hex())
	}
	if err != nil {
		return models.Facet{}, apperr.Wrap("get "+string(s.kind), err)
	}
	return f, nil
}

// Create inserts a facet. Names are unique per kind (folded).
func (s *Store) Create(ctx context.Context, f models.Facet) (models.Facet, error) {
	f.Name = normalize.Name(f.Name)
	if f.Name == "" {
		return models.Facet{}, apperr.Invalid("name", "must not be empty")
	}
	now := time.Now().UTC()
	f.ID = primitive.NewObjectID()
	f.NameCI = normalize.Text(f.Name)
	f.CreatedAt = now
	f.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Facet{}, apperr.Newf(apperr.Conflict, "a %s with this name already exists", s.kind)
		}
		return models.Facet{}, apperr.Wrap("create "+string(s.kind), err)
	}
	return f, nil
}

// Update renames a facet and/or changes its icon.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name, icon string) (models.Facet, error) {
	name = normalize.Name(name)
	if name == "" {
		return models.Facet{}, apperr.Invalid("name", "must not be empty")
	}
	set := bson.M{
		"name":       name,
		"name_ci":    normalize.Text(name),
		"icon":       icon,
		"updated_at": time.Now().UTC(),
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Facet{}, apperr.Newf(apperr.Conflict, "a %s with this name already exists", s.kind)
		}
		return models.Facet{}, apperr.Wrap("update "+string(s.kind), err)
	}
	if res.MatchedCount == 0 {
		return models.Facet{}, apperr.Newf(apperr.NotFound, "%s %s not found", s.kind, id.Hex())
	}
	return s.GetByID(ctx, id)
}

// Delete removes a facet, but only when nothing references it. The
// error names what still points at the facet so the admin can act.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	for _, ref := range references[s.kind] {
		n, err := s.db.Collection(ref.coll).CountDocuments(ctx, bson.M{ref.field: id})
		if err != nil {
			return apperr.Wrap("reference check for "+string(s.kind), err)
		}
		if n > 0 {
			return apperr.Newf(apperr.ReferentialIntegrity,
				"cannot delete: still referenced by %d %s", n, ref.label)
		}
	}

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete "+string(s.kind), err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "%s %s not found", s.kind, id.Hex())
	}
	return nil
}

// SeedODS upserts the 17 fixed sustainable development goals. Safe to
// run on every boot.
func SeedODS(ctx context.Context, db *mongo.Database) error {
	c := db.Collection(string(ODS))
	now := time.Now().UTC()
	for i, name := range models.ODSNames {
		number := i + 1
		_, err := c.UpdateOne(ctx,
			bson.M{"number": number},
			bson.M{
				"$set": bson.M{
					"name":       name,
					"name_ci":    normalize.Text(name),
					"updated_at": now,
				},
				"$setOnInsert": bson.M{
					"_id":        primitive.NewObjectID(),
					"created_at": now,
				},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return apperr.Wrap("seed ods", err)
		}
	}
	return nil
}
