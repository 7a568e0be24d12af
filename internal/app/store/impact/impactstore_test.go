package impactstore_test

import (
	"testing"

	impactstore "github.com/dalemusser/impacthub/internal/app/store/impact"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/dalemusser/impacthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestStore_KPIs_ZeroState(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := impactstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A company with no snapshots and no child rows gets all zeros,
	// never an error.
	company := fixtures.CreateCompany(ctx, "Acme")

	k := store.KPIs(ctx, company.ID)
	if k != (impactstore.KPIs{}) {
		t.Errorf("expected all-zero KPIs, got %+v", k)
	}
}

func TestStore_KPIs_SumsAndCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := impactstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	cause := fixtures.CreateCause(ctx, "Educação")
	support := fixtures.CreateSupportType(ctx, "Voluntariado")

	fixtures.CreateSnapshot(ctx, company.ID, 2024, 11, 20)
	fixtures.CreateSnapshot(ctx, company.ID, 2024, 12, 30)
	fixtures.CreateInitiative(ctx, "A", company.ID, cause.ID, support.ID, models.InitiativeActive)
	fixtures.CreateInitiative(ctx, "B", company.ID, cause.ID, support.ID, models.InitiativeCompleted)

	k := store.KPIs(ctx, company.ID)
	if k.VolunteerHours != 50 {
		t.Errorf("VolunteerHours: got %d, want 50", k.VolunteerHours)
	}
	if k.ActiveInitiatives != 1 {
		t.Errorf("ActiveInitiatives: got %d, want 1", k.ActiveInitiatives)
	}
	if k.TotalInitiatives != 2 {
		t.Errorf("TotalInitiatives: got %d, want 2", k.TotalInitiatives)
	}
}

func TestStore_EvolutionSeries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := impactstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	fixtures.CreateSnapshot(ctx, company.ID, 2024, 12, 30)
	fixtures.CreateSnapshot(ctx, company.ID, 2024, 11, 20)
	fixtures.CreateSnapshot(ctx, company.ID, 2023, 1, 99)

	got := store.EvolutionSeries(ctx, company.ID, 2024)
	want := []impactstore.EvolutionPoint{
		{Year: 2024, Month: 11, Hours: 20},
		{Year: 2024, Month: 12, Hours: 30},
	}
	if len(got) != len(want) {
		t.Fatalf("series length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStore_EvolutionSeries_NoGapFilling(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := impactstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	fixtures.CreateSnapshot(ctx, company.ID, 2024, 2, 10)
	fixtures.CreateSnapshot(ctx, company.ID, 2024, 9, 40)

	got := store.EvolutionSeries(ctx, company.ID, 2024)
	if len(got) != 2 {
		t.Fatalf("missing months must be absent, not zero-filled: got %d points", len(got))
	}
}

func TestStore_ProjectsByCause_IncludesZeroCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := impactstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	education := fixtures.CreateCause(ctx, "Educação")
	health := fixtures.CreateCause(ctx, "Saúde")
	support := fixtures.CreateSupportType(ctx, "Voluntariado")

	company := fixtures.CreateCompany(ctx, "Acme")
	if _, err := db.Collection("companies").UpdateByID(ctx, company.ID,
		bson.M{"$set": bson.M{"cause_ids": []any{education.ID, health.ID}}}); err != nil {
		t.Fatalf("set company causes: %v", err)
	}

	fixtures.CreateInitiative(ctx, "A", company.ID, education.ID, support.ID, models.InitiativeActive)
	fixtures.CreateInitiative(ctx, "B", company.ID, education.ID, support.ID, models.InitiativeCompleted)

	got := store.ProjectsByCause(ctx, company.ID)
	if len(got) != 2 {
		t.Fatalf("got %d slices, want 2", len(got))
	}

	totals := map[string]int64{}
	for _, c := range got {
		totals[c.Cause] = c.Total
	}
	if totals["Educação"] != 2 {
		t.Errorf("Educação: got %d, want 2", totals["Educação"])
	}
	// An associated cause with no initiatives still appears at zero.
	if total, ok := totals["Saúde"]; !ok || total != 0 {
		t.Errorf("Saúde: got (%d, %v), want (0, true)", total, ok)
	}
}

func TestStore_SupportTypeDistribution_CompletedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := impactstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	cause := fixtures.CreateCause(ctx, "Educação")
	volunteering := fixtures.CreateSupportType(ctx, "Voluntariado")
	donation := fixtures.CreateSupportType(ctx, "Doação")

	fixtures.CreateInitiative(ctx, "A", company.ID, cause.ID, volunteering.ID, models.InitiativeCompleted)
	fixtures.CreateInitiative(ctx, "B", company.ID, cause.ID, volunteering.ID, models.InitiativeCompleted)
	fixtures.CreateInitiative(ctx, "C", company.ID, cause.ID, donation.ID, models.InitiativeCompleted)
	fixtures.CreateInitiative(ctx, "D", company.ID, cause.ID, donation.ID, models.InitiativeActive)

	got := store.SupportTypeDistribution(ctx, company.ID)
	totals := map[string]int64{}
	for _, s := range got {
		totals[s.Type] = s.Total
	}
	if totals["Voluntariado"] != 2 {
		t.Errorf("Voluntariado: got %d, want 2", totals["Voluntariado"])
	}
	// Active initiatives are excluded from the mix.
	if totals["Doação"] != 1 {
		t.Errorf("Doação: got %d, want 1", totals["Doação"])
	}
}

func TestStore_Dashboard_Composes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := impactstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	company := fixtures.CreateCompany(ctx, "Acme")
	fixtures.CreateSnapshot(ctx, company.ID, 2024, 11, 20)

	d := store.Dashboard(ctx, company.ID)
	if d.KPIs.VolunteerHours != 20 {
		t.Errorf("KPIs.VolunteerHours: got %d, want 20", d.KPIs.VolunteerHours)
	}
	if len(d.Evolution) != 1 {
		t.Errorf("Evolution: got %d points, want 1", len(d.Evolution))
	}
	// Widgets always come back non-nil so the payload shape is stable.
	if d.ByCause == nil || d.Distribution == nil {
		t.Error("expected empty, non-nil widget slices")
	}
}
