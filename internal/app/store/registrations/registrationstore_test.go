package registrationstore_test

import (
	"testing"

	registrationstore "github.com/dalemusser/impacthub/internal/app/store/registrations"
	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/dalemusser/impacthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestStore_Create_Event(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fixtures.CreateOrganization(ctx, "Org A")
	ev := fixtures.CreateEvent(ctx, "Mutirão de Limpeza", org.ID)

	created, err := store.Create(ctx, models.Registration{
		EventID: &ev.ID,
		Name:    "Ana Silva",
		Email:   "Ana.Silva@Example.COM",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != models.RegistrationPending {
		t.Errorf("Status: got %q, want %q", created.Status, models.RegistrationPending)
	}
	if created.Email != "ana.silva@example.com" {
		t.Errorf("Email: got %q, want normalized lowercase", created.Email)
	}
	if created.ConfirmationCode == "" {
		t.Error("expected ConfirmationCode to be set")
	}
}

func TestStore_Create_TargetXOR(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	evID := primitive.NewObjectID()
	inID := primitive.NewObjectID()

	// Neither target.
	_, err := store.Create(ctx, models.Registration{Name: "Ana", Email: "a@b.com"})
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("no target: expected Validation, got %v", err)
	}

	// Both targets.
	_, err = store.Create(ctx, models.Registration{
		EventID: &evID, InitiativeID: &inID, Name: "Ana", Email: "a@b.com",
	})
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("both targets: expected Validation, got %v", err)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fixtures.CreateOrganization(ctx, "Org A")
	ev := fixtures.CreateEvent(ctx, "Mutirão", org.ID)

	if _, err := store.Create(ctx, models.Registration{
		EventID: &ev.ID, Name: "Ana", Email: "a@b.com",
	}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same email for the same event, different casing: conflict.
	_, err := store.Create(ctx, models.Registration{
		EventID: &ev.ID, Name: "Ana Again", Email: "A@B.COM",
	})
	if apperr.KindOf(err) != apperr.Conflict {
		t.Errorf("expected Conflict, got %v", err)
	}

	// A different email succeeds.
	if _, err := store.Create(ctx, models.Registration{
		EventID: &ev.ID, Name: "Carlos", Email: "c@d.com",
	}); err != nil {
		t.Errorf("different email should succeed: %v", err)
	}
}

func TestStore_Create_CancelledStillBlocks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fixtures.CreateOrganization(ctx, "Org A")
	ev := fixtures.CreateEvent(ctx, "Mutirão", org.ID)

	first, err := store.Create(ctx, models.Registration{
		EventID: &ev.ID, Name: "Ana", Email: "a@b.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.UpdateStatus(ctx, first.ID, models.RegistrationCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	_, err = store.Create(ctx, models.Registration{
		EventID: &ev.ID, Name: "Ana", Email: "a@b.com",
	})
	if apperr.KindOf(err) != apperr.Conflict {
		t.Errorf("cancelled registration should still block: got %v", err)
	}
}

func TestStore_Create_ClosedEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fixtures.CreateOrganization(ctx, "Org A")
	ev := fixtures.CreateEvent(ctx, "Mutirão", org.ID)
	if _, err := db.Collection("events").UpdateByID(ctx, ev.ID,
		bson.M{"$set": bson.M{"registration_open": false}}); err != nil {
		t.Fatalf("close event: %v", err)
	}

	_, err := store.Create(ctx, models.Registration{
		EventID: &ev.ID, Name: "Ana", Email: "a@b.com",
	})
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("expected Validation for closed event, got %v", err)
	}
}

func TestStore_Create_InitiativeIncrementsCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	cause := fixtures.CreateCause(ctx, "Educação")
	support := fixtures.CreateSupportType(ctx, "Voluntariado")
	in := fixtures.CreateInitiative(ctx, "Aulas abertas", company.ID, cause.ID, support.ID, models.InitiativeActive)

	if _, err := store.Create(ctx, models.Registration{
		InitiativeID: &in.ID, Name: "Ana", Email: "a@b.com",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var got models.Initiative
	if err := db.Collection("initiatives").FindOne(ctx, bson.M{"_id": in.ID}).Decode(&got); err != nil {
		t.Fatalf("load initiative: %v", err)
	}
	if got.RegistrationCount != 1 {
		t.Errorf("RegistrationCount: got %d, want 1", got.RegistrationCount)
	}
}

func TestStore_Create_InactiveInitiative(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	cause := fixtures.CreateCause(ctx, "Educação")
	support := fixtures.CreateSupportType(ctx, "Voluntariado")
	in := fixtures.CreateInitiative(ctx, "Projeto encerrado", company.ID, cause.ID, support.ID, models.InitiativeCompleted)

	_, err := store.Create(ctx, models.Registration{
		InitiativeID: &in.ID, Name: "Ana", Email: "a@b.com",
	})
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("expected Validation for inactive initiative, got %v", err)
	}
}

func TestStore_UpdateStatus_Invalid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UpdateStatus(ctx, primitive.NewObjectID(), "whatever")
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("expected Validation, got %v", err)
	}
}

func TestStore_Create_SucceedsWhenCountIncrementFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := registrationstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	cause := fixtures.CreateCause(ctx, "Educação")
	support := fixtures.CreateSupportType(ctx, "Voluntariado")
	in := fixtures.CreateInitiative(ctx, "Aulas abertas", company.ID, cause.ID, support.ID, models.InitiativeActive)

	// Freeze the counter at zero so the $inc after insert fails
	// document validation.
	if err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: "initiatives"},
		{Key: "validator", Value: bson.M{"registration_count": bson.M{"$in": bson.A{0, nil}}}},
		{Key: "validationLevel", Value: "strict"},
	}).Err(); err != nil {
		t.Fatalf("collMod failed: %v", err)
	}

	created, err := store.Create(ctx, models.Registration{
		InitiativeID: &in.ID, Name: "Ana", Email: "a@b.com",
	})
	if err != nil {
		t.Fatalf("Create should succeed despite the failed counter bump: %v", err)
	}

	// The registration itself is persisted.
	n, err := db.Collection("registrations").CountDocuments(ctx, bson.M{"_id": created.ID})
	if err != nil {
		t.Fatalf("count registrations: %v", err)
	}
	if n != 1 {
		t.Errorf("expected the registration to exist, found %d", n)
	}
}
