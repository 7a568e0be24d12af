// internal/app/store/registrations/registrationstore.go
package registrationstore

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/filters"
	"github.com/dalemusser/impacthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/impacthub/internal/app/system/normalize"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var sortKeys = paging.NewSort("recent", map[string]bson.D{
	"recent":   {{Key: "created_at", Value: -1}},
	"oldest":   {{Key: "created_at", Value: 1}},
	"name-asc": {{Key: "name", Value: 1}},
})

// Filter is the admin registration listing filter.
type Filter struct {
	EventID      *primitive.ObjectID
	InitiativeID *primitive.ObjectID
	Status       string
	Email        string
}

func (f Filter) compile() bson.M {
	spec := filters.New().
		Scope("event_id", f.EventID).
		Scope("initiative_id", f.InitiativeID)
	if st := normalize.Status(f.Status); st != "" && models.ValidRegistrationStatus(st) {
		spec.Eq("status", st)
	}
	if email := normalize.Email(f.Email); email != "" {
		spec.Eq("email", email)
	}
	return spec.Build()
}

type Store struct {
	db  *mongo.Database
	c   *mongo.Collection
	log *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Store {
	return &Store{db: db, c: db.Collection("registrations"), log: log}
}

// List returns one page of registrations for the admin view.
func (s *Store) List(ctx context.Context, f Filter, req paging.Request, sortKey string) (paging.Page[models.Registration], error) {
	filter := f.compile()

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return paging.Page[models.Registration]{}, apperr.Wrap("count registrations", err)
	}

	find := options.Find()
	paging.ApplyToFind(find, req, sortKeys.Resolve(sortKey))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return paging.Page[models.Registration]{}, apperr.Wrap("find registrations", err)
	}
	defer cur.Close(ctx)

	var items []models.Registration
	if err := cur.All(ctx, &items); err != nil {
		return paging.Page[models.Registration]{}, apperr.Wrap("decode registrations", err)
	}
	return paging.NewPage(items, req, total), nil
}

// GetByID loads one registration.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Registration, error) {
	var reg models.Registration
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if err == mongo.ErrNoDocuments {
		return models.Registration{}, apperr.Newf(apperr.NotFound, "registration %s not found", id.Hex())
	}
	if err != nil {
		return models.Registration{}, apperr.Wrap("get registration", err)
	}
	return reg, nil
}

// HasExisting reports whether any registration, in any status, already
// exists for this (target, email) pair. Cancelled rows count too.
func (s *Store) HasExisting(ctx context.Context, target bson.M, email string) (bool, error) {
	filter := bson.M{"email": normalize.Email(email)}
	for k, v := range target {
		filter[k] = v
	}
	n, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return false, apperr.Wrap("check existing registration", err)
	}
	return n > 0, nil
}

// Create inserts a registration after validating that exactly one
// target is set and that this email has not registered for it before.
// The status-blind unique index is the backstop for concurrent
// submissions; both paths surface the same conflict.
func (s *Store) Create(ctx context.Context, reg models.Registration) (models.Registration, error) {
	if (reg.EventID == nil) == (reg.InitiativeID == nil) {
		return models.Registration{}, apperr.Invalid("target", "exactly one of eventId or initiativeId is required")
	}
	reg.Name = normalize.Name(reg.Name)
	if reg.Name == "" {
		return models.Registration{}, apperr.Invalid("name", "must not be empty")
	}
	if reg.Email = normalize.Email(reg.Email); reg.Email == "" {
		return models.Registration{}, apperr.Invalid("email", "must not be empty")
	}
	reg.Message = htmlsanitize.Strip(reg.Message)

	var target bson.M
	if reg.EventID != nil {
		ev, err := s.eventByID(ctx, *reg.EventID)
		if err != nil {
			return models.Registration{}, err
		}
		if !ev.RegistrationOpen {
			return models.Registration{}, apperr.New(apperr.Validation, "registrations for this event are closed")
		}
		target = bson.M{"event_id": *reg.EventID}
	} else {
		in, err := s.initiativeByID(ctx, *reg.InitiativeID)
		if err != nil {
			return models.Registration{}, err
		}
		if in.Status != models.InitiativeActive {
			return models.Registration{}, apperr.New(apperr.Validation, "this initiative is not accepting registrations")
		}
		target = bson.M{"initiative_id": *reg.InitiativeID}
	}

	exists, err := s.HasExisting(ctx, target, reg.Email)
	if err != nil {
		return models.Registration{}, err
	}
	if exists {
		return models.Registration{}, apperr.New(apperr.Conflict, "this email is already registered")
	}

	now := time.Now().UTC()
	reg.ID = primitive.NewObjectID()
	reg.Status = models.RegistrationPending
	reg.ConfirmationCode = uuid.NewString()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, reg); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Registration{}, apperr.New(apperr.Conflict, "this email is already registered")
		}
		return models.Registration{}, apperr.Wrap("create registration", err)
	}

	// The registration exists at this point; a failed counter bump must
	// not turn it into an error the caller would retry into a conflict.
	// The count is derivable from the registrations collection.
	if reg.InitiativeID != nil {
		if _, err := s.db.Collection("initiatives").UpdateByID(ctx, *reg.InitiativeID,
			bson.M{"$inc": bson.M{"registration_count": 1}}); err != nil {
			s.log.Warn("initiative registration count increment failed",
				zap.String("initiative", reg.InitiativeID.Hex()), zap.Error(err))
		}
	}
	return reg, nil
}

// UpdateStatus moves a registration through its review lifecycle.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Registration, error) {
	status = normalize.Status(status)
	if !models.ValidRegistrationStatus(status) {
		return models.Registration{}, apperr.Invalid("status", "unknown registration status")
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return models.Registration{}, apperr.Wrap("update registration status", err)
	}
	if res.MatchedCount == 0 {
		return models.Registration{}, apperr.Newf(apperr.NotFound, "registration %s not found", id.Hex())
	}
	return s.GetByID(ctx, id)
}

// Delete removes a registration outright. Admin-only; normal flows
// cancel instead.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete registration", err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "registration %s not found", id.Hex())
	}
	return nil
}

func (s *Store) eventByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var ev models.Event
	err := s.db.Collection("events").FindOne(ctx, bson.M{"_id": id}).Decode(&ev)
	if err == mongo.ErrNoDocuments {
		return models.Event{}, apperr.Newf(apperr.NotFound, "event %s not found", id.Hex())
	}
	if err != nil {
		return models.Event{}, apperr.Wrap("get event", err)
	}
	return ev, nil
}

func (s *Store) initiativeByID(ctx context.Context, id primitive.ObjectID) (models.Initiative, error) {
	var in models.Initiative
	err := s.db.Collection("initiatives").FindOne(ctx, bson.M{"_id": id}).Decode(&in)
	if err == mongo.ErrNoDocuments {
		return models.Initiative{}, apperr.Newf(apperr.NotFound, "initiative %s not found", id.Hex())
	}
	if err != nil {
		return models.Initiative{}, apperr.Wrap("get initiative", err)
	}
	return in, nil
}
