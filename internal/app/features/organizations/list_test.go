package organizations_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/impacthub/internal/app/features/organizations"
	"github.com/dalemusser/impacthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestServeList_DefaultsToVisible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateOrganization(ctx, "Publica")
	hidden := fx.CreateOrganization(ctx, "Escondida")
	if _, err := db.Collection("organizations").UpdateByID(ctx, hidden.ID,
		bson.M{"$set": bson.M{"visible": false}}); err != nil {
		t.Fatalf("failed to hide organization: %v", err)
	}

	h := organizations.NewHandler(db, zap.NewNop())

	rec := testutil.NewRecorder()
	h.ServeList(rec, testutil.NewRequest("GET", "/organizations"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Publica")
	if bodyContains(rec, "Escondida") {
		t.Error("default public listing should not include hidden organizations")
	}
}

func TestServeList_ExplicitHiddenHonored(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateOrganization(ctx, "Publica")
	hidden := fx.CreateOrganization(ctx, "Escondida")
	if _, err := db.Collection("organizations").UpdateByID(ctx, hidden.ID,
		bson.M{"$set": bson.M{"visible": false}}); err != nil {
		t.Fatalf("failed to hide organization: %v", err)
	}

	h := organizations.NewHandler(db, zap.NewNop())

	rec := testutil.NewRecorder()
	h.ServeList(rec, testutil.NewRequest("GET", "/organizations?visivel=false"))

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Escondida")
	if bodyContains(rec, "Publica") {
		t.Error("visivel=false should constrain the listing to hidden organizations")
	}
}

func bodyContains(rec *testutil.ResponseRecorder, s string) bool {
	return strings.Contains(rec.Body.String(), s)
}
