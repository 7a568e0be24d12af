package paging

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNewRequest_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
	}{
		{"defaults", 0, 0, 1, DefaultLimit},
		{"negative page", -3, 10, 1, 10},
		{"page one", 1, 12, 1, 12},
		{"normal", 4, 20, 4, 20},
		{"limit capped", 1, 5000, 1, MaxLimit},
		{"negative limit", 2, -1, 2, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRequest(tt.page, tt.limit, DefaultLimit)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("NewRequest(%d,%d) = %+v, want page %d limit %d",
					tt.page, tt.limit, got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestRequest_Skip(t *testing.T) {
	if got := NewRequest(1, 12, DefaultLimit).Skip(); got != 0 {
		t.Errorf("page 1 skip = %d", got)
	}
	if got := NewRequest(3, 20, DefaultLimit).Skip(); got != 40 {
		t.Errorf("page 3 limit 20 skip = %d, want 40", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{120, 12, 10},
		{121, 12, 11},
		{5, 0, 0},
		{-1, 12, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestNewPage(t *testing.T) {
	req := NewRequest(2, 10, DefaultLimit)
	p := NewPage([]string{"a", "b"}, req, 25)
	if p.Page != 2 || p.Limit != 10 || p.Total != 25 || p.TotalPages != 3 {
		t.Errorf("envelope = %+v", p)
	}
	if len(p.Items) > p.Limit {
		t.Errorf("items exceed limit: %d > %d", len(p.Items), p.Limit)
	}
}

func TestNewPage_NilItems(t *testing.T) {
	p := NewPage[string](nil, NewRequest(1, 12, DefaultLimit), 0)
	if p.Items == nil {
		t.Error("Items must never be nil")
	}
	if p.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", p.TotalPages)
	}
}

func TestSort_Resolve(t *testing.T) {
	s := NewSort("name-asc", map[string]bson.D{
		"name-asc":  {{Key: "name_ci", Value: 1}},
		"name-desc": {{Key: "name_ci", Value: -1}},
		"recent":    {{Key: "created_at", Value: -1}},
	})

	d := s.Resolve("recent")
	if len(d) != 2 || d[0].Key != "created_at" || d[1].Key != "_id" {
		t.Errorf("Resolve(recent) = %v", d)
	}

	// Unknown keys fall back to the default, never error.
	d = s.Resolve("bogus")
	if len(d) != 2 || d[0].Key != "name_ci" || d[0].Value != 1 {
		t.Errorf("Resolve(bogus) = %v, want default name asc", d)
	}

	// The tie-break is always appended.
	d = s.Resolve("")
	if d[len(d)-1].Key != "_id" {
		t.Errorf("missing _id tie-break: %v", d)
	}
}
