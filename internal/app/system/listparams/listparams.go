// internal/app/system/listparams/listparams.go
//
// Query-parameter parsing for listing endpoints. Parsing is permissive
// on shape: blank or malformed values degrade to "no constraint", they
// never error. Strictness lives at execution time (unknown ids simply
// never match).
package listparams

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageRequest reads "page" and "limit" and returns a clamped request.
func PageRequest(r *http.Request, defaultLimit int) paging.Request {
	return paging.NewRequest(intParam(r, "page"), intParam(r, "limit"), defaultLimit)
}

func intParam(r *http.Request, name string) int {
	s := query.Get(r, name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Int reads an integer query parameter, zero when absent or malformed.
func Int(r *http.Request, name string) int {
	return intParam(r, name)
}

// String returns a trimmed query parameter.
func String(r *http.Request, name string) string {
	return strings.TrimSpace(query.Get(r, name))
}

// IDList parses a comma-separated list of object ids. Blank or
// whitespace entries are discarded; entries that are not valid object
// ids are dropped silently.
func IDList(r *http.Request, name string) []primitive.ObjectID {
	return ParseIDs(query.Get(r, name))
}

// ParseIDs splits a comma-separated id list, discarding blank entries
// and malformed ids.
func ParseIDs(raw string) []primitive.ObjectID {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]primitive.ObjectID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(p)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IDsFromStrings converts payload id strings to object ids with the
// same tolerance as ParseIDs: blanks and malformed entries are dropped.
// A non-nil input always yields a non-nil (possibly empty) slice, so
// "present but empty" survives the conversion.
func IDsFromStrings(raw []string) []primitive.ObjectID {
	if raw == nil {
		return nil
	}
	out := make([]primitive.ObjectID, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(p)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Bool reads a tri-state flag: absent or unparseable means nil (no
// constraint), otherwise a pointer to the parsed value.
func Bool(r *http.Request, name string) *bool {
	s := strings.TrimSpace(query.Get(r, name))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}

// PathID reads a chi URL parameter as an object id. Unlike the query
// helpers this one is strict: a malformed path id is a validation
// error, not a missing constraint.
func PathID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		return primitive.NilObjectID, apperr.Invalid(name, "malformed id")
	}
	return id, nil
}

// ID reads a single object id parameter, nil when absent or malformed.
func ID(r *http.Request, name string) *primitive.ObjectID {
	s := strings.TrimSpace(query.Get(r, name))
	if s == "" {
		return nil
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return nil
	}
	return &id
}
