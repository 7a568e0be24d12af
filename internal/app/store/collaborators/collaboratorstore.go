// internal/app/store/collaborators/collaboratorstore.go
package collaboratorstore

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/normalize"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/impacthub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sortKeys = paging.NewSort("name-asc", map[string]bson.D{
	"name-asc":  {{Key: "name_ci", Value: 1}},
	"name-desc": {{Key: "name_ci", Value: -1}},
	"recent":    {{Key: "created_at", Value: -1}},
})

// Store manages company contact people. Every operation is scoped to
// one company; a collaborator's email is unique within its company.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("collaborators")}
}

// List returns one page of a company's collaborators.
func (s *Store) List(ctx context.Context, companyID primitive.ObjectID, req paging.Request, sortKey string) (paging.Page[models.Collaborator], error) {
	filter := bson.M{"company_id": companyID}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return paging.Page[models.Collaborator]{}, apperr.Wrap("count collaborators", err)
	}

	find := options.Find()
	paging.ApplyToFind(find, req, sortKeys.Resolve(sortKey))

	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return paging.Page[models.Collaborator]{}, apperr.Wrap("find collaborators", err)
	}
	defer cur.Close(ctx)

	var items []models.Collaborator
	if err := cur.All(ctx, &items); err != nil {
		return paging.Page[models.Collaborator]{}, apperr.Wrap("decode collaborators", err)
	}
	return paging.NewPage(items, req, total), nil
}

// GetByID loads one collaborator.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Collaborator, error) {
	var col models.Collaborator
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&col)
	if err == mongo.ErrNoDocuments {
		return models.Collaborator{}, apperr.Newf(apperr.NotFound, "collaborator %s not found", id.Hex())
	}
	if err != nil {
		return models.Collaborator{}, apperr.Wrap("get collaborator", err)
	}
	return col, nil
}

// Create inserts a collaborator. The (company, email) pair is
// pre-checked for a clean conflict message; the unique index is the
// backstop for races.
func (s *Store) Create(ctx context.Context, col models.Collaborator) (models.Collaborator, error) {
	col.Name = normalize.Name(col.Name)
	if col.Name == "" {
		return models.Collaborator{}, apperr.Invalid("name", "must not be empty")
	}
	if col.CompanyID.IsZero() {
		return models.Collaborator{}, apperr.Invalid("companyId", "owning company is required")
	}
	if col.Email = normalize.Email(col.Email); col.Email == "" {
		return models.Collaborator{}, apperr.Invalid("email", "must not be empty")
	}

	n, err := s.c.CountDocuments(ctx, bson.M{"company_id": col.CompanyID, "email": col.Email})
	if err != nil {
		return models.Collaborator{}, apperr.Wrap("check collaborator email", err)
	}
	if n > 0 {
		return models.Collaborator{}, apperr.New(apperr.Conflict, "a collaborator with this email already exists in this company")
	}

	now := time.Now().UTC()
	col.ID = primitive.NewObjectID()
	col.NameCI = normalize.Text(col.Name)
	col.CreatedAt = now
	col.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, col); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Collaborator{}, apperr.New(apperr.Conflict, "a collaborator with this email already exists in this company")
		}
		return models.Collaborator{}, apperr.Wrap("create collaborator", err)
	}
	return col, nil
}

// Update is a partial update. Changing the email re-runs the
// uniqueness check against the collaborator's company.
type Update struct {
	Name  *string
	Role  *string
	Email *string
	Phone *string
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (models.Collaborator, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.Name != nil {
		name := normalize.Name(*upd.Name)
		if name == "" {
			return models.Collaborator{}, apperr.Invalid("name", "must not be empty")
		}
		set["name"] = name
		set["name_ci"] = normalize.Text(name)
	}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}
	if upd.Email != nil {
		email := normalize.Email(*upd.Email)
		if email == "" {
			return models.Collaborator{}, apperr.Invalid("email", "must not be empty")
		}
		cur, err := s.GetByID(ctx, id)
		if err != nil {
			return models.Collaborator{}, err
		}
		if email != cur.Email {
			n, err := s.c.CountDocuments(ctx, bson.M{"company_id": cur.CompanyID, "email": email})
			if err != nil {
				return models.Collaborator{}, apperr.Wrap("check collaborator email", err)
			}
			if n > 0 {
				return models.Collaborator{}, apperr.New(apperr.Conflict, "a collaborator with this email already exists in this company")
			}
		}
		set["email"] = email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Collaborator{}, apperr.New(apperr.Conflict, "a collaborator with this email already exists in this company")
		}
		return models.Collaborator{}, apperr.Wrap("update collaborator", err)
	}
	if res.MatchedCount == 0 {
		return models.Collaborator{}, apperr.Newf(apperr.NotFound, "collaborator %s not found", id.Hex())
	}
	return s.GetByID(ctx, id)
}

// Delete removes a collaborator.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperr.Wrap("delete collaborator", err)
	}
	if res.DeletedCount == 0 {
		return apperr.Newf(apperr.NotFound, "collaborator %s not found", id.Hex())
	}
	return nil
}
