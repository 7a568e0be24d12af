package webjson

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"go.uber.org/zap"
)

func TestList_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	page := paging.NewPage([]string{"a", "b"}, paging.NewRequest(2, 2, paging.DefaultLimit), 5)
	List(w, page)

	var got struct {
		Items      []string `json:"items"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Pagination.Page != 2 || got.Pagination.Limit != 2 ||
		got.Pagination.Total != 5 || got.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v", got.Pagination)
	}
	if len(got.Items) != 2 {
		t.Errorf("items = %v", got.Items)
	}
}

func TestList_EmptyItemsIsArray(t *testing.T) {
	w := httptest.NewRecorder()
	List(w, paging.NewPage[string](nil, paging.NewRequest(1, 12, paging.DefaultLimit), 0))
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("empty page must render items as [], got %s", w.Body.String())
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperr.Invalid("email", "required"), 400, "validation"},
		{"conflict", apperr.New(apperr.Conflict, "duplicate"), 409, "conflict"},
		{"not found", apperr.New(apperr.NotFound, "no such event"), 404, "not_found"},
		{"referential", apperr.New(apperr.ReferentialIntegrity, "area still referenced"), 400, "referential_integrity"},
		{"data access", apperr.Wrap("find failed", errors.New("boom")), 500, "data_access"},
		{"untyped", errors.New("boom"), 500, "data_access"},
	}

	ew := NewErrorWriter(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", "/x", nil)
			ew.WriteError(w, r, tt.err)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Error.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.code)
			}
		})
	}
}

func TestWriteError_DataAccessHidesDetail(t *testing.T) {
	ew := NewErrorWriter(zap.NewNop())
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/companies", nil)
	ew.WriteError(w, r, apperr.Wrap("count companies", errors.New("topology closed")))
	if strings.Contains(w.Body.String(), "topology") {
		t.Error("store error details must not leak to the caller")
	}
}

func TestDecode_Validation(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader("{not json"))
	var dst map[string]any
	err := Decode(r, &dst)
	if !apperr.Is(err, apperr.Validation) {
		t.Errorf("malformed body must be a validation error, got %v", err)
	}

	r = httptest.NewRequest("POST", "/x", strings.NewReader(""))
	if err := Decode(r, &dst); !apperr.Is(err, apperr.Validation) {
		t.Errorf("empty body must be a validation error, got %v", err)
	}
}
