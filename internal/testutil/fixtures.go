package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/impacthub/internal/app/system/normalize"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization creates a visible test organization with the given name.
func (f *Fixtures) CreateOrganization(ctx context.Context, name string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     normalize.Text(name),
		Email:      normalize.Email(name + "@example.org"),
		Location:   "Lisboa",
		LocationCI: normalize.Text("Lisboa"),
		Visible:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("organizations").InsertOne(ctx, org); err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}
	return org
}

// CreateOrganizationWithAreas creates a visible organization associated
// with the given area facets.
func (f *Fixtures) CreateOrganizationWithAreas(ctx context.Context, name string, areaIDs ...primitive.ObjectID) models.Organization {
	f.t.Helper()

	org := f.CreateOrganization(ctx, name)
	org.AreaIDs = areaIDs
	if _, err := f.db.Collection("organizations").UpdateByID(ctx, org.ID,
		bson.M{"$set": bson.M{"area_ids": areaIDs}}); err != nil {
		f.t.Fatalf("failed to set organization areas: %v", err)
	}
	return org
}

// CreateCompany creates a visible test company with the given name.
func (f *Fixtures) CreateCompany(ctx context.Context, name string) models.Company {
	f.t.Helper()

	now := time.Now().UTC()
	co := models.Company{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    normalize.Text(name),
		Email:     normalize.Email(name + "@example.com"),
		Sector:    "Tecnologia",
		SectorCI:  normalize.Text("Tecnologia"),
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("companies").InsertOne(ctx, co); err != nil {
		f.t.Fatalf("failed to create test company: %v", err)
	}
	return co
}

// CreateFacet inserts a facet lookup row into the named collection.
func (f *Fixtures) CreateFacet(ctx context.Context, collection, name string) models.Facet {
	f.t.Helper()

	now := time.Now().UTC()
	facet := models.Facet{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    normalize.Text(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection(collection).InsertOne(ctx, facet); err != nil {
		f.t.Fatalf("failed to create test facet in %s: %v", collection, err)
	}
	return facet
}

// CreateCause creates a cause facet.
func (f *Fixtures) CreateCause(ctx context.Context, name string) models.Facet {
	f.t.Helper()
	return f.CreateFacet(ctx, "causes", name)
}

// CreateArea creates an area-of-action facet.
func (f *Fixtures) CreateArea(ctx context.Context, name string) models.Facet {
	f.t.Helper()
	return f.CreateFacet(ctx, "areas", name)
}

// CreateSupportType creates a support-type facet.
func (f *Fixtures) CreateSupportType(ctx context.Context, name string) models.Facet {
	f.t.Helper()
	return f.CreateFacet(ctx, "support_types", name)
}

// CreateEvent creates a visible, registration-open event for the given
// organizer, starting one week out.
func (f *Fixtures) CreateEvent(ctx context.Context, name string, orgID primitive.ObjectID) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	ev := models.Event{
		ID:               primitive.NewObjectID(),
		Name:             name,
		NameCI:           normalize.Text(name),
		OrganizationID:   orgID,
		StartsAt:         now.AddDate(0, 0, 7),
		EndsAt:           now.AddDate(0, 0, 7).Add(2 * time.Hour),
		Modality:         models.ModalityInPerson,
		Capacity:         50,
		RegistrationOpen: true,
		Visible:          true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// CreateInitiative creates an initiative for the given company, cause,
// and support type.
func (f *Fixtures) CreateInitiative(ctx context.Context, title string, companyID, causeID, supportTypeID primitive.ObjectID, status string) models.Initiative {
	f.t.Helper()

	now := time.Now().UTC()
	in := models.Initiative{
		ID:            primitive.NewObjectID(),
		Title:         title,
		TitleCI:       normalize.Text(title),
		CompanyID:     companyID,
		CauseID:       causeID,
		SupportTypeID: supportTypeID,
		Status:        status,
		StartDate:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := f.db.Collection("initiatives").InsertOne(ctx, in); err != nil {
		f.t.Fatalf("failed to create test initiative: %v", err)
	}
	return in
}

// CreateSnapshot creates one monthly impact snapshot for the company.
func (f *Fixtures) CreateSnapshot(ctx context.Context, companyID primitive.ObjectID, year, month int, hours int64) models.ImpactSnapshot {
	f.t.Helper()

	snap := models.ImpactSnapshot{
		ID:             primitive.NewObjectID(),
		CompanyID:      companyID,
		Year:           year,
		Month:          month,
		VolunteerHours: hours,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := f.db.Collection("impact_snapshots").InsertOne(ctx, snap); err != nil {
		f.t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}
