// internal/app/store/companies/companystore.go
package companystore

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/filters"
	"github.com/dalemusser/impacthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/impacthub/internal/app/system/normalize"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFields for the company free-text query; sector is included so
// "tecnologia" finds tech companies.
var searchFields = []string{"name_ci", "description_ci", "mission_ci", "sector_ci", "location_ci"}

var sortKeys = paging.NewSort("name-asc", map[string]bson.D{
	"name-asc":  {{Key: "name_ci", Value: 1}},
	"name-desc": {{Key: "name_ci", Value: -1}},
	"recent":    {{Key: "created_at", Value: -1}},
})

// ownedCollections are cascade-deleted with their company.
var ownedCollections = []string{"collaborators", "initiatives", "proposals", "meetings", "impact_snapshots"}

// Filter is the company listing filter.
type Filter struct {
	Query        string
	ODS          []primitive.ObjectID
	Causes       []primitive.ObjectID
	SupportTypes []primitive.ObjectID
	Sector       string
	Location     string
	Visible      *bool
}

func (f Filter) compile() bson.M {
	return filters.New().
		Text(f.Query, searchFields...).
		AnyOf("ods_ids", f.ODS).
		AnyOf("cause_ids", f.Causes).
		AnyOf("support_type_ids", f.SupportTypes).
		Substring("sector_ci", f.Sector).
		Substring("location_ci", f.Location).
		EqBool("visible", f.Visible).
		Build()
}

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("companies")}
}

// List returns one page of companies matching the filter.
func (s *Store) List(ctx context.Context, f Filter, req paging.Request, sortKey string) (paging.Page[models.Company], error) {
	filter := f.compile()

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return paging.Page[models.Company]{}, apperr.Wrap("count companies", err)
	}

	find := options.Find()
	paging.ApplyToFind(find, req, sortKeys.Resolve(sortKey))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return paging.Page[models.Company]{}, apperr.Wrap("find companies", err)
	}
	defer cur.Close(ctx)

	var items []models.Company
	if err := cur.All(ctx, &items); err != nil {
		return paging.Page[models.Company]{}, apperr.Wrap("decode companies", err)
	}
	return paging.NewPage(items, req, total), nil
}

// GetByID loads one company.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Company, error) {
	var co models.Company
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&co)
	if err == mongo.ErrNoDocuments {
		return models.Company{}, apperr.Newf(apperr.NotFound, "company %s not found", id.Hex())
	}
	if err != nil {
		return models.Company{}, apperr.Wrap("get company", err)
	}
	return co, nil
}

// Create inserts a company, folding the searchable fields.
func (s *Store) Create(ctx context.Context, co models.Company) (models.Company, error) {
	co.Name = normalize.Name(co.Name)
	if co.Name == "" {
		return models.Company{}, apperr.Invalid("name", "must not be empty")
	}
	if co.Email = normalize.Email(co.Email); co.Email == "" {
		return models.Company{}, apperr.Invalid("email", "must not be empty")
	}

	now := time.Now().UTC()
	co.ID = primitive.NewObjectID()
	co.Description = htmlsanitize.Sanitize(co.Description)
	co.Mission = htmlsanitize.Sanitize(co.Mission)
	co.NameCI = normalize.Text(co.Name)
	co.DescriptionCI = normalize.Text(co.Description)
	co.MissionCI = normalize.Text(co.Mission)
	co.SectorCI = normalize.Text(co.Sector)
	co.LocationCI = normalize.Text(co.Location)
	co.CreatedAt = now
	co.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, co); err != nil {
		return models.Company{}, apperr.Wrap("create company", err)
	}
	return co, nil
}

// Update is a partial update with the shared facet-set policy: nil
// leaves associations untouched, empty replaces with none, and the
// replacement is a single $set.
type Update struct {
	Name        *string
	Mission     *string
	Description *string
	Sector      *string
	Size        *string
	Email       *string
	Phone       *string
	Website     *string
	Location    *string
	Visible     *bool

	ODSIDs         *[]primitive.ObjectID
	CauseIDs       *[]primitive.ObjectID
	SupportTypeIDs *[]primitive.ObjectID
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (models.Company, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.Name != nil {
		name := normalize.Name(*upd.Name)
		if name == "" {
			return models.Company{}, apperr.Invalid("name", "must not be empty")
		}
		set["name"] = name
		set["name_ci"] = normalize.Text(name)
	}
	if upd.Mission != nil {
		m := htmlsanitize.Sanitize(*upd.Mission)
		set["mission"] = m
		set["mission_ci"] = normalize.Text(m)
	}
	if upd.Description != nil {
		d := htmlsanitize.Sanitize(*upd.Description)
		set["description"] = d
		set["description_ci"] = normalize.Text(d)
	}
	if upd.Sector != nil {
		set["sector"] = *upd.Sector
		set["sector_ci"] = normalize.Text(*upd.Sector)
	}
	if upd.Size != nil {
		set["size"] = *upd.Size
	}
	if upd.Email != nil {
		set["email"] = normalize.Email(*upd.Email)
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Website != nil {
		set["website"] = *upd.Website
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
		set["location_ci"] = normalize.Text(*upd.Location)
	}
	if upd.Visible != nil {
		set["visible"] = *upd.Visible
	}
	if upd.ODSIDs != nil {
		set["ods_ids"] = *upd.ODSIDs
	}
	if upd.CauseIDs != nil {
		set["cause_ids"] = *upd.CauseIDs
	}
	if upd.SupportTypeIDs != nil {
		set["support_type_ids"] = *upd.SupportTypeIDs
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return models.Company{}, apperr.Wrap("update company", err)
	}
	if res.MatchedCount == 0 {
		return models.Company{}, apperr.Newf(apperr.NotFound, "company %s not found", id.Hex())
	}
	return s.GetByID(ctx, id)
}

// SetVisibility toggles visibility independently of content edits.
func (s *Store) SetVisibility(ctx context.Context, id primitive.ObjectID, visible bool) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"visible":    visible,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return apperr.Wrap("set company visibility", err)
	}
	if res.MatchedCount == 0 {
		return apperr.Newf(apperr.NotFound, "company %s not found", id.Hex())
	}
	return nil
}

// Delete removes a company and cascades to everything it owns:
// collaborators, initiatives, proposals, meetings, and snapshots.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete company", err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "company %s not found", id.Hex())
	}
	for _, coll := range ownedCollections {
		if _, err := s.db.Collection(coll).DeleteMany(ctx, bson.M{"company_id": id}); err != nil {
			return apperr.Wrap("cascade delete company "+coll, err)
		}
	}
	return nil
}
