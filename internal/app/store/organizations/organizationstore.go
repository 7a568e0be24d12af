// internal/app/store/organizations/organizationstore.go
package organizationstore

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

// searchFields is the fixed set of folded fields the free-text query
// matches against for organizations.
var searchFields = []string{"name_ci", "description_ci", "mission_ci", "location_ci"}

// sortKeys is the allow-list for organization listings; unknown keys
// fall back to name ascending.
var sortKeys = paging.NewSort("name-asc", map[string]bson.D{
	"name-asc":  {{Key: "name_ci", Value: 1}},
	"name-desc": {{Key: "name_ci", Value: -1}},
	"recent":    {{Key: "created_at", Value: -1}},
})

// Filter is the organization listing filter. Zero values mean "no
// constraint". Visible nil leaves visibility unconstrained (admin
// listings); public listings pass a pointer, true by default.
type Filter struct {
	Query              string
	ODS                []primitive.ObjectID
	Areas              []primitive.ObjectID
	CollaborationTypes []primitive.ObjectID
	Location           string
	Visible            *bool
}

func (f Filter) compile() bson.M {
	return filters.New().
		Text(f.Query, searchFields...).
		AnyOf("ods_ids", f.ODS).
		AnyOf("area_ids", f.Areas).
		AnyOf("collaboration_type_ids", f.CollaborationTypes).
		Substring("location_ci", f.Location).
		EqBool("visible", f.Visible).
		Build()
}

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("organizations")}
}

// List returns one page of organizations matching the filter.
func (s *Store) List(ctx context.Context, f Filter, req paging.Request, sortKey string) (paging.Page[models.Organization], error) {
	filter := f.compile()

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return paging.Page[models.Organization]{}, apperr.Wrap("count organizations", err)
	}

	find := options.Find()
	paging.ApplyToFind(find, req, sortKeys.Resolve(sortKey))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return paging.Page[models.Organization]{}, apperr.Wrap("find organizations", err)
	}
	defer cur.Close(ctx)

	var items []models.Organization
	if err := cur.All(ctx, &items); err != nil {
		return paging.Page[models.Organization]{}, apperr.Wrap("decode organizations", err)
	}
	return paging.NewPage(items, req, total), nil
}

// GetByID loads one organization.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return models.Organization{}, apperr.Newf(apperr.NotFound, "organization %s not found", id.Hex())
	}
	if err != nil {
		return models.Organization{}, apperr.Wrap("get organization", err)
	}
	return org, nil
}

// Create inserts an organization, folding the searchable fields.
func (s *Store) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	org.Name = normalize.Name(org.Name)
	if org.Name == "" {
		return models.Organization{}, apperr.Invalid("name", "must not be empty")
	}
	if org.Email = normalize.Email(org.Email); org.Email == "" {
		return models.Organization{}, apperr.Invalid("email", "must not be empty")
	}

	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	org.Description = htmlsanitize.Sanitize(org.Description)
	org.Mission = htmlsanitize.Sanitize(org.Mission)
	org.NameCI = normalize.Text(org.Name)
	org.DescriptionCI = normalize.Text(org.Description)
	org.MissionCI = normalize.Text(org.Mission)
	org.LocationCI = normalize.Text(org.Location)
	org.CreatedAt = now
	org.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, org); err != nil {
		return models.Organization{}, apperr.Wrap("create organization", err)
	}
	return org, nil
}

// Update is a partial update: nil fields are left untouched. Facet-id
// slices follow the association policy — nil leaves the set as is, an
// explicitly empty slice clears it; either way the whole set is
// replaced in one $set, so no zero-association intermediate state is
// readable.
type Update struct {
	Name        *string
	Description *string
	Mission     *string
	Email       *string
	Phone       *string
	Website     *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Impact      *[]string
	Visible     *bool

	ODSIDs               *[]primitive.ObjectID
	AreaIDs              *[]primitive.ObjectID
	CollaborationTypeIDs *[]primitive.ObjectID
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (models.Organization, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.Name != nil {
		name := normalize.Name(*upd.Name)
		if name == "" {
			return models.Organization{}, apperr.Invalid("name", "must not be empty")
		}
		set["name"] = name
		set["name_ci"] = normalize.Text(name)
	}
	if upd.Description != nil {
		d := htmlsanitize.Sanitize(*upd.Description)
		set["description"] = d
		set["description_ci"] = normalize.Text(d)
	}
	if upd.Mission != nil {
		m := htmlsanitize.Sanitize(*upd.Mission)
		set["mission"] = m
		set["mission_ci"] = normalize.Text(m)
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
	if upd.Latitude != nil {
		set["latitude"] = *upd.Latitude
	}
	if upd.Longitude != nil {
		set["longitude"] = *upd.Longitude
	}
	if upd.Impact != nil {
		set["impact"] = *upd.Impact
	}
	if upd.Visible != nil {
		set["visible"] = *upd.Visible
	}
	if upd.ODSIDs != nil {
		set["ods_ids"] = *upd.ODSIDs
	}
	if upd.AreaIDs != nil {
		set["area_ids"] = *upd.AreaIDs
	}
	if upd.CollaborationTypeIDs != nil {
		set["collaboration_type_ids"] = *upd.CollaborationTypeIDs
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return models.Organization{}, apperr.Wrap("update organization", err)
	}
	if res.MatchedCount == 0 {
		return models.Organization{}, apperr.Newf(apperr.NotFound, "organization %s not found", id.Hex())
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
		return apperr.Wrap("set organization visibility", err)
	}
	if res.MatchedCount == 0 {
		return apperr.Newf(apperr.NotFound, "organization %s not found", id.Hex())
	}
	return nil
}

// Delete removes an organization and cascades to its owned events.
// Facet references never cascade; they live on the organization
// document itself and vanish with it.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete organization", err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "organization %s not found", id.Hex())
	}
	if _, err := s.db.Collection("events").DeleteMany(ctx, bson.M{"organization_id": id}); err != nil {
		return apperr.Wrap("cascade delete organization events", err)
	}
	return nil
}
