// internal/app/store/initiatives/initiativestore.go
package initiativestore

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/filters"
	"github.com/dalemusser/impacthub/internal/app/system/normalize"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sortKeys = paging.NewSort("title-asc", map[string]bson.D{
	"title-asc":  {{Key: "title_ci", Value: 1}},
	"title-desc": {{Key: "title_ci", Value: -1}},
	"start-asc":  {{Key: "start_date", Value: 1}},
	"recent":     {{Key: "created_at", Value: -1}},
})

// Filter is the initiative listing filter. Causes and support types
// are scalar references on initiatives, but multiple selected ids are
// still any-of.
type Filter struct {
	Query        string
	Causes       []primitive.ObjectID
	SupportTypes []primitive.ObjectID
	Status       string
	CompanyID    *primitive.ObjectID
}

func (f Filter) compile() bson.M {
	spec := filters.New().
		Text(f.Query, "title_ci").
		AnyOf("cause_id", f.Causes).
		AnyOf("support_type_id", f.SupportTypes).
		Scope("company_id", f.CompanyID)
	if st := normalize.Status(f.Status); st != "" && models.ValidInitiativeStatus(st) {
		spec.Eq("status", st)
	}
	return spec.Build()
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("initiatives")}
}

// List returns one page of initiatives matching the filter.
func (s *Store) List(ctx context.Context, f Filter, req paging.Request, sortKey string) (paging.Page[models.Initiative], error) {
	filter := f.compile()

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return paging.Page[models.Initiative]{}, apperr.Wrap("count initiatives", err)
	}

	find := options.Find()
	paging.ApplyToFind(find, req, sortKeys.Resolve(sortKey))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return paging.Page[models.Initiative]{}, apperr.Wrap("find initiatives", err)
	}
	defer cur.Close(ctx)

	var items []models.Initiative
	if err := cur.All(ctx, &items); err != nil {
		return paging.Page[models.Initiative]{}, apperr.Wrap("decode initiatives", err)
	}
	return paging.NewPage(items, req, total), nil
}

// GetByID loads one initiative.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Initiative, error) {
	var in models.Initiative
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&in)
	if err == mongo.ErrNoDocuments {
		return models.Initiative{}, apperr.Newf(apperr.NotFound, "initiative %s not found", id.Hex())
	}
	if err != nil {
		return models.Initiative{}, apperr.Wrap("get initiative", err)
	}
	return in, nil
}

// Create inserts an initiative. Status defaults to active.
func (s *Store) Create(ctx context.Context, in models.Initiative) (models.Initiative, error) {
	in.Title = normalize.Name(in.Title)
	if in.Title == "" {
		return models.Initiative{}, apperr.Invalid("title", "must not be empty")
	}
	if in.CompanyID.IsZero() {
		return models.Initiative{}, apperr.Invalid("companyId", "owning company is required")
	}
	if in.CauseID.IsZero() {
		return models.Initiative{}, apperr.Invalid("causaId", "cause is required")
	}
	if in.SupportTypeID.IsZero() {
		return models.Initiative{}, apperr.Invalid("tipoApoioId", "support type is required")
	}
	in.Status = normalize.Status(in.Status)
	if in.Status == "" {
		in.Status = models.InitiativeActive
	}
	if !models.ValidInitiativeStatus(in.Status) {
		return models.Initiative{}, apperr.Invalid("status", "unknown initiative status")
	}

	now := time.Now().UTC()
	in.ID = primitive.NewObjectID()
	in.TitleCI = normalize.Text(in.Title)
	in.RegistrationCount = 0
	in.CreatedAt = now
	in.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, in); err != nil {
		return models.Initiative{}, apperr.Wrap("create initiative", err)
	}
	return in, nil
}

// Update is a partial update.
type Update struct {
	Title         *string
	CauseID       *primitive.ObjectID
	SupportTypeID *primitive.ObjectID
	Status        *string
	StartDate     *time.Time
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (models.Initiative, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.Title != nil {
		title := normalize.Name(*upd.Title)
		if title == "" {
			return models.Initiative{}, apperr.Invalid("title", "must not be empty")
		}
		set["title"] = title
		set["title_ci"] = normalize.Text(title)
	}
	if upd.CauseID != nil {
		set["cause_id"] = *upd.CauseID
	}
	if upd.SupportTypeID != nil {
		set["support_type_id"] = *upd.SupportTypeID
	}
	if upd.Status != nil {
		st := normalize.Status(*upd.Status)
		if !models.ValidInitiativeStatus(st) {
			return models.Initiative{}, apperr.Invalid("status", "unknown initiative status")
		}
		set["status"] = st
	}
	if upd.StartDate != nil {
		set["start_date"] = *upd.StartDate
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return models.Initiative{}, apperr.Wrap("update initiative", err)
	}
	if res.MatchedCount == 0 {
		return models.Initiative{}, apperr.Newf(apperr.NotFound, "initiative %s not found", id.Hex())
	}
	return s.GetByID(ctx, id)
}

// IncrementRegistrations bumps the denormalized registration counter.
func (s *Store) IncrementRegistrations(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"registration_count": 1}})
	if err != nil {
		return apperr.Wrap("increment initiative registrations", err)
	}
	return nil
}

// Delete removes an initiative.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete initiative", err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "initiative %s not found", id.Hex())
	}
	return nil
}
