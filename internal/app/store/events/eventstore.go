// internal/app/store/events/eventstore.go
package eventstore

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

var searchFields = []string{"name_ci", "description_ci", "location_ci"}

// Events are time-bound, so the default sort is start date ascending.
var sortKeys = paging.NewSort("start-asc", map[string]bson.D{
	"start-asc":  {{Key: "starts_at", Value: 1}},
	"start-desc": {{Key: "starts_at", Value: -1}},
	"name-asc":   {{Key: "name_ci", Value: 1}},
	"name-desc":  {{Key: "name_ci", Value: -1}},
	"recent":     {{Key: "created_at", Value: -1}},
})

// Filter is the event listing filter.
type Filter struct {
	Query            string
	ODS              []primitive.ObjectID
	Areas            []primitive.ObjectID
	Location         string
	Modality         string
	OrganizationID   *primitive.ObjectID
	RegistrationOpen *bool
	Visible          *bool

	// From keeps past events out of public listings when set.
	From *time.Time
}

func (f Filter) compile() bson.M {
	spec := filters.New().
		Text(f.Query, searchFields...).
		AnyOf("ods_ids", f.ODS).
		AnyOf("area_ids", f.Areas).
		Substring("location_ci", f.Location).
		Scope("organization_id", f.OrganizationID).
		EqBool("registration_open", f.RegistrationOpen).
		EqBool("visible", f.Visible)
	if m := normalize.Status(f.Modality); m != "" && models.ValidModality(m) {
		spec.Eq("modality", m)
	}
	if f.From != nil {
		spec.Gte("starts_at", *f.From)
	}
	return spec.Build()
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// List returns one page of events matching the filter.
func (s *Store) List(ctx context.Context, f Filter, req paging.Request, sortKey string) (paging.Page[models.Event], error) {
	filter := f.compile()

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return paging.Page[models.Event]{}, apperr.Wrap("count events", err)
	}

	find := options.Find()
	paging.ApplyToFind(find, req, sortKeys.Resolve(sortKey))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return paging.Page[models.Event]{}, apperr.Wrap("find events", err)
	}
	defer cur.Close(ctx)

	var items []models.Event
	if err := cur.All(ctx, &items); err != nil {
		return paging.Page[models.Event]{}, apperr.Wrap("decode events", err)
	}
	return paging.NewPage(items, req, total), nil
}

// GetByID loads one event.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var ev models.Event
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ev)
	if err == mongo.ErrNoDocuments {
		return models.Event{}, apperr.Newf(apperr.NotFound, "event %s not found", id.Hex())
	}
	if err != nil {
		return models.Event{}, apperr.Wrap("get event", err)
	}
	return ev, nil
}

// Create inserts an event after validating its organizer, modality,
// and time window.
func (s *Store) Create(ctx context.Context, ev models.Event) (models.Event, error) {
	ev.Name = normalize.Name(ev.Name)
	if ev.Name == "" {
		return models.Event{}, apperr.Invalid("name", "must not be empty")
	}
	if ev.OrganizationID.IsZero() {
		return models.Event{}, apperr.Invalid("organizationId", "organizer is required")
	}
	ev.Modality = normalize.Status(ev.Modality)
	if !models.ValidModality(ev.Modality) {
		return models.Event{}, apperr.Invalid("modality", `must be "presencial", "remoto", or "hibrido"`)
	}
	if !ev.EndsAt.IsZero() && ev.EndsAt.Before(ev.StartsAt) {
		return models.Event{}, apperr.Invalid("endsAt", "must not precede startsAt")
	}

	now := time.Now().UTC()
	ev.ID = primitive.NewObjectID()
	ev.Description = htmlsanitize.Sanitize(ev.Description)
	ev.NameCI = normalize.Text(ev.Name)
	ev.DescriptionCI = normalize.Text(ev.Description)
	ev.LocationCI = normalize.Text(ev.Location)
	ev.CreatedAt = now
	ev.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.Event{}, apperr.Wrap("create event", err)
	}
	return ev, nil
}

// Update is a partial update with the shared facet-set policy.
type Update struct {
	Name             *string
	Description      *string
	StartsAt         *time.Time
	EndsAt           *time.Time
	Address          *string
	Location         *string
	Modality         *string
	Capacity         *int
	RegistrationOpen *bool
	Visible          *bool

	ODSIDs  *[]primitive.ObjectID
	AreaIDs *[]primitive.ObjectID
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (models.Event, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.Name != nil {
		name := normalize.Name(*upd.Name)
		if name == "" {
			return models.Event{}, apperr.Invalid("name", "must not be empty")
		}
		set["name"] = name
		set["name_ci"] = normalize.Text(name)
	}
	if upd.Description != nil {
		d := htmlsanitize.Sanitize(*upd.Description)
		set["description"] = d
		set["description_ci"] = normalize.Text(d)
	}
	if upd.StartsAt != nil {
		set["starts_at"] = *upd.StartsAt
	}
	if upd.EndsAt != nil {
		set["ends_at"] = *upd.EndsAt
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
		set["location_ci"] = normalize.Text(*upd.Location)
	}
	if upd.Modality != nil {
		m := normalize.Status(*upd.Modality)
		if !models.ValidModality(m) {
			return models.Event{}, apperr.Invalid("modality", `must be "presencial", "remoto", or "hibrido"`)
		}
		set["modality"] = m
	}
	if upd.Capacity != nil {
		set["capacity"] = *upd.Capacity
	}
	if upd.RegistrationOpen != nil {
		set["registration_open"] = *upd.RegistrationOpen
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

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return models.Event{}, apperr.Wrap("update event", err)
	}
	if res.MatchedCount == 0 {
		return models.Event{}, apperr.Newf(apperr.NotFound, "event %s not found", id.Hex())
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
		return apperr.Wrap("set event visibility", err)
	}
	if res.MatchedCount == 0 {
		return apperr.Newf(apperr.NotFound, "event %s not found", id.Hex())
	}
	return nil
}

// Delete removes an event. Registrations pointing at it are kept as
// historical records.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete event", err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "event %s not found", id.Hex())
	}
	return nil
}
