// internal/app/system/paging/paging.go
package paging

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit is the page size used by most public listings.
const DefaultLimit = 12

// WideLimit is the page size for dense listings (admin tables,
// collaborators, registrations).
const WideLimit = 20

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// Request is a normalized page request. Page is 1-indexed. Build one
// with NewRequest so clamping is applied uniformly.
type Request struct {
	Page  int
	Limit int
}

// NewRequest clamps page and limit into valid ranges. Pages below 1
// become 1; a non-positive limit falls back to defaultLimit; limits
// above MaxLimit are capped. Bad input never errors.
func NewRequest(page, limit, defaultLimit int) Request {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{Page: page, Limit: limit}
}

// Skip returns the document offset for this request.
func (r Request) Skip() int64 {
	return int64(r.Page-1) * int64(r.Limit)
}

// Page is a bounded slice of a result set plus pagination metadata.
// TotalPages is always ceil(Total/Limit), minimum 0.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles the page envelope. Items is never nil so the JSON
// rendering is always an array.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: TotalPages(total, req.Limit),
	}
}

// TotalPages computes ceil(total/limit), minimum 0.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// Sort maps an allow-listed sort key to a Mongo sort document. Every
// resolved sort carries an _id tie-break so repeated calls over
// unchanged data produce identical page boundaries.
type Sort struct {
	keys map[string]bson.D
	def  string
}

// NewSort builds a sort allow-list. def must be a registered key; it is
// used when a caller passes an unknown or empty sort key.
func NewSort(def string, keys map[string]bson.D) Sort {
	return Sort{keys: keys, def: def}
}

// Resolve returns the sort document for key, falling back to the
// default for unknown keys rather than erroring.
func (s Sort) Resolve(key string) bson.D {
	d, ok := s.keys[key]
	if !ok {
		d = s.keys[s.def]
	}
	out := make(bson.D, 0, len(d)+1)
	out = append(out, d...)
	return append(out, bson.E{Key: "_id", Value: 1})
}

// ApplyToFind sets skip, limit, and sort on a find.
func ApplyToFind(find *options.FindOptions, req Request, sort bson.D) {
	find.SetSkip(req.Skip()).SetLimit(int64(req.Limit)).SetSort(sort)
}
