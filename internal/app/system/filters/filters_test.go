package filters

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuild_Empty(t *testing.T) {
	got := New().Build()
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("empty spec = %v, want empty filter", got)
	}
}

func TestText_FoldsQuery(t *testing.T) {
	got := New().Text("Saúde", "name_ci", "description_ci").Build()
	want := bson.M{"$or": bson.A{
		bson.M{"name_ci": bson.M{"$regex": "saude"}},
		bson.M{"description_ci": bson.M{"$regex": "saude"}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestText_BlankAddsNoClause(t *testing.T) {
	got := New().Text("   ", "name_ci").Build()
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("blank query must add no clause, got %v", got)
	}
}

func TestText_EscapesRegexMeta(t *testing.T) {
	got := New().Text("c++ (dev)", "name_ci").Build()
	or := got["$or"].(bson.A)
	clause := or[0].(bson.M)["name_ci"].(bson.M)
	if clause["$regex"] != `c\+\+ \(dev\)` {
		t.Errorf("meta characters not escaped: %v", clause["$regex"])
	}
}

func TestAnyOf(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	got := New().AnyOf("ods_ids", []primitive.ObjectID{a, b}).Build()
	want := bson.M{"ods_ids": bson.M{"$in": []primitive.ObjectID{a, b}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAnyOf_EmptyIsNoConstraint(t *testing.T) {
	got := New().AnyOf("ods_ids", nil).Build()
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("empty facet list must not constrain, got %v", got)
	}
}

func TestEqBool_TriState(t *testing.T) {
	vis := true
	got := New().EqBool("visible", &vis).Build()
	if !reflect.DeepEqual(got, bson.M{"visible": true}) {
		t.Errorf("got %v", got)
	}

	got = New().EqBool("visible", nil).Build()
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("absent flag must not constrain, got %v", got)
	}
}

func TestScope(t *testing.T) {
	id := primitive.NewObjectID()
	got := New().Scope("company_id", &id).Build()
	if !reflect.DeepEqual(got, bson.M{"company_id": id}) {
		t.Errorf("got %v", got)
	}
	got = New().Scope("company_id", nil).Build()
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("nil scope must not constrain, got %v", got)
	}
}

func TestBuild_ConjunctionAcrossFacets(t *testing.T) {
	ods := []primitive.ObjectID{primitive.NewObjectID()}
	areas := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	vis := true

	got := New().
		Text("educacao", "name_ci", "description_ci").
		AnyOf("ods_ids", ods).
		AnyOf("area_ids", areas).
		EqBool("visible", &vis).
		Build()

	and, ok := got["$and"].(bson.A)
	if !ok {
		t.Fatalf("expected explicit $and, got %v", got)
	}
	if len(and) != 4 {
		t.Fatalf("expected 4 clauses, got %d: %v", len(and), and)
	}
	// Facets are conjoined across, any-of within.
	if !reflect.DeepEqual(and[1], bson.M{"ods_ids": bson.M{"$in": ods}}) {
		t.Errorf("ods clause = %v", and[1])
	}
	if !reflect.DeepEqual(and[2], bson.M{"area_ids": bson.M{"$in": areas}}) {
		t.Errorf("areas clause = %v", and[2])
	}
}

func TestBuild_Idempotent(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID()}
	build := func() bson.M {
		return New().
			Text("Saúde", "name_ci").
			AnyOf("cause_ids", ids).
			Substring("location_ci", "São Paulo").
			Build()
	}
	if !reflect.DeepEqual(build(), build()) {
		t.Error("compiling the same request twice must yield an identical predicate")
	}
}

func TestSubstring_Folds(t *testing.T) {
	got := New().Substring("location_ci", "São Paulo").Build()
	want := bson.M{"location_ci": bson.M{"$regex": "sao paulo"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
