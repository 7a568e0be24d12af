// internal/app/system/filters/filters.go
//
// Combinators shared by every listing's filter compiler. A Spec is an
// explicit conjunction of independent clauses; within one facet clause,
// multiple ids are a disjunction (any-of). Compilation is permissive:
// blank or absent input compiles to "no constraint", never to an error
// and never to "matches nothing".
package filters

import (
	"regexp"

	"github.com/dalemusser/impacthub/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Spec is the compiled, backend-agnostic form of one filter request.
// Clauses are kept in call order, so compiling the same request twice
// yields an identical predicate.
type Spec struct {
	clauses []bson.M
}

// New returns an empty Spec (matches everything).
func New() *Spec {
	return &Spec{}
}

// Text adds a free-text clause: the folded query must appear as a
// substring of at least one of the given folded fields. Fields must be
// the *_ci shadow columns so the fold applied here matches the fold
// applied at write time. A query that folds to "" adds no clause.
func (s *Spec) Text(q string, fields ...string) *Spec {
	fq := normalize.Text(q)
	if fq == "" || len(fields) == 0 {
		return s
	}
	pat := regexp.QuoteMeta(fq)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": pat}})
	}
	s.clauses = append(s.clauses, bson.M{"$or": or})
	return s
}

// Substring adds a folded-substring clause on a single *_ci field
// (location filters). Blank input adds no clause.
func (s *Spec) Substring(field, v string) *Spec {
	fv := normalize.Text(v)
	if fv == "" {
		return s
	}
	s.clauses = append(s.clauses, bson.M{field: bson.M{"$regex": regexp.QuoteMeta(fv)}})
	return s
}

// AnyOf adds an any-of facet clause: the document's id-array field must
// intersect ids. An empty list adds no clause (facet unconstrained).
func (s *Spec) AnyOf(field string, ids []primitive.ObjectID) *Spec {
	if len(ids) == 0 {
		return s
	}
	s.clauses = append(s.clauses, bson.M{field: bson.M{"$in": ids}})
	return s
}

// Eq adds an equality clause.
func (s *Spec) Eq(field string, v any) *Spec {
	s.clauses = append(s.clauses, bson.M{field: v})
	return s
}

// EqBool adds an equality clause only when the tri-state value is
// present. nil means the flag is entirely unconstrained.
func (s *Spec) EqBool(field string, v *bool) *Spec {
	if v == nil {
		return s
	}
	s.clauses = append(s.clauses, bson.M{field: *v})
	return s
}

// Scope adds an owner-scoping clause when id is present.
func (s *Spec) Scope(field string, id *primitive.ObjectID) *Spec {
	if id == nil {
		return s
	}
	s.clauses = append(s.clauses, bson.M{field: *id})
	return s
}

// Gte adds a lower-bound clause.
func (s *Spec) Gte(field string, v any) *Spec {
	s.clauses = append(s.clauses, bson.M{field: bson.M{"$gte": v}})
	return s
}

// Build returns the Mongo predicate. An empty Spec builds bson.M{},
// one clause collapses to itself, more are an explicit $and.
func (s *Spec) Build() bson.M {
	switch len(s.clauses) {
	case 0:
		return bson.M{}
	case 1:
		return s.clauses[0]
	default:
		and := make(bson.A, 0, len(s.clauses))
		for _, c := range s.clauses {
			and = append(and, c)
		}
		return bson.M{"$and": and}
	}
}
