package registrations_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dalemusser/impacthub/internal/app/features/registrations"
	"github.com/dalemusser/impacthub/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleCreate_BothTargetsRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	org := fx.CreateOrganization(ctx, "Org")
	ev := fx.CreateEvent(ctx, "Mutirão", org.ID)

	h := registrations.NewHandler(db, zap.NewNop())

	body := `{"eventId":"` + ev.ID.Hex() + `","initiativeId":"` + ev.ID.Hex() +
		`","name":"Ana","email":"ana@example.com"}`
	req := testutil.NewJSONRequest("POST", "/registrations", body)
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "exactly one")
}

func TestHandleCreate_MalformedEventID(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := registrations.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest("POST", "/registrations",
		`{"eventId":"not-an-id","name":"Ana","email":"ana@example.com"}`)
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "malformed id")
}

func TestHandleCreate_EventRegistration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	org := fx.CreateOrganization(ctx, "Org")
	ev := fx.CreateEvent(ctx, "Mutirão", org.ID)

	h := registrations.NewHandler(db, zap.NewNop())

	body := `{"eventId":"` + ev.ID.Hex() + `","name":"Ana Silva","email":"Ana@Example.com"}`
	req := testutil.NewJSONRequest("POST", "/registrations", body)
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"status":"pendente"`)
	rec.AssertContains(t, `"email":"ana@example.com"`)
	rec.AssertContains(t, "confirmationCode")
}

func TestHandleCreate_DuplicateConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	org := fx.CreateOrganization(ctx, "Org")
	ev := fx.CreateEvent(ctx, "Mutirão", org.ID)

	h := registrations.NewHandler(db, zap.NewNop())

	body := `{"eventId":"` + ev.ID.Hex() + `","name":"Ana","email":"ana@example.com"}`

	first := testutil.NewRecorder()
	h.HandleCreate(first, testutil.NewJSONRequest("POST", "/registrations", body))
	first.AssertStatus(t, http.StatusCreated)

	second := testutil.NewRecorder()
	h.HandleCreate(second, testutil.NewJSONRequest("POST", "/registrations", body))
	second.AssertStatus(t, http.StatusConflict)
	second.AssertContains(t, "already registered")
}

func TestHandleStatus_PathIDFromRoute(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	org := fx.CreateOrganization(ctx, "Org")
	ev := fx.CreateEvent(ctx, "Mutirão", org.ID)

	h := registrations.NewHandler(db, zap.NewNop())

	create := testutil.NewRecorder()
	h.HandleCreate(create, testutil.NewJSONRequest("POST", "/registrations",
		`{"eventId":"`+ev.ID.Hex()+`","name":"Ana","email":"ana@example.com"}`))
	create.AssertStatus(t, http.StatusCreated)

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(create.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to parse create response: %v", err)
	}

	req := testutil.NewJSONRequest("PATCH", "/admin/registrations/"+created.ID+"/status",
		`{"status":"aprovada"}`)
	req = testutil.WithChiURLParam(req, "id", created.ID)
	rec := testutil.NewRecorder()

	h.HandleStatus(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"status":"aprovada"`)
}
