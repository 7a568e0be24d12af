package listparams

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPageRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/events?page=3&limit=20", nil)
	req := PageRequest(r, paging.DefaultLimit)
	if req.Page != 3 || req.Limit != 20 {
		t.Errorf("got %+v", req)
	}

	r = httptest.NewRequest("GET", "/events?page=abc&limit=-5", nil)
	req = PageRequest(r, paging.DefaultLimit)
	if req.Page != 1 || req.Limit != paging.DefaultLimit {
		t.Errorf("malformed params must clamp to defaults, got %+v", req)
	}
}

func TestParseIDs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"single", a.Hex(), 1},
		{"two", a.Hex() + "," + b.Hex(), 2},
		{"blank entry dropped", a.Hex() + ",  ,", 1},
		{"malformed dropped", a.Hex() + ",not-an-id", 1},
		{"all malformed", "x,y,z", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIDs(tt.raw)
			if len(got) != tt.want {
				t.Errorf("ParseIDs(%q) = %v, want %d ids", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIDs_BlankEntryEquivalence(t *testing.T) {
	// {areas:[id, "  "]} behaves identically to {areas:[id]}.
	id := primitive.NewObjectID()
	withBlank := ParseIDs(id.Hex() + ",  ")
	without := ParseIDs(id.Hex())
	if len(withBlank) != len(without) || withBlank[0] != without[0] {
		t.Errorf("blank entries must be discarded: %v vs %v", withBlank, without)
	}
}

func TestBool_TriState(t *testing.T) {
	r := httptest.NewRequest("GET", "/events?visivel=false", nil)
	if v := Bool(r, "visivel"); v == nil || *v {
		t.Errorf("explicit false: got %v", v)
	}

	r = httptest.NewRequest("GET", "/events?visivel=true", nil)
	if v := Bool(r, "visivel"); v == nil || !*v {
		t.Errorf("explicit true: got %v", v)
	}

	r = httptest.NewRequest("GET", "/events", nil)
	if v := Bool(r, "visivel"); v != nil {
		t.Errorf("absent flag must be nil, got %v", *v)
	}

	r = httptest.NewRequest("GET", "/events?visivel=banana", nil)
	if v := Bool(r, "visivel"); v != nil {
		t.Errorf("unparseable flag must be nil, got %v", *v)
	}
}

func TestID(t *testing.T) {
	want := primitive.NewObjectID()
	r := httptest.NewRequest("GET", "/initiatives?empresaId="+want.Hex(), nil)
	got := ID(r, "empresaId")
	if got == nil || *got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	r = httptest.NewRequest("GET", "/initiatives?empresaId=nope", nil)
	if got := ID(r, "empresaId"); got != nil {
		t.Errorf("malformed id must be nil, got %v", got)
	}
}
