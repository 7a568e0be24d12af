// internal/app/store/impact/impactstore.go
package impactstore

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// KPIs are the scalar headline numbers for one company's dashboard:
// lifetime sums over its impact snapshots plus live counts.
type KPIs struct {
	VolunteerHours int64   `json:"volunteerHours"`
	ProjectCount   int64   `json:"projectCount"`
	VolunteerCount int64   `json:"volunteerCount"`
	DonationValue  float64 `json:"donationValue"`

	ActiveInitiatives int64 `json:"activeInitiatives"`
	TotalInitiatives  int64 `json:"totalInitiatives"`
	PendingProposals  int64 `json:"pendingProposals"`
	TotalProposals    int64 `json:"totalProposals"`
	UpcomingMeetings  int64 `json:"upcomingMeetings"`
}

// EvolutionPoint is one month of volunteering hours. Months with no
// snapshot are absent, not zero-filled.
type EvolutionPoint struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Hours int64 `json:"hours"`
}

// CauseCount is one slice of the projects-per-cause breakdown. Causes
// the company is associated with appear even at zero.
type CauseCount struct {
	Cause string `json:"cause"`
	Total int64  `json:"total"`
}

// TypeCount is one slice of the support-type mix over completed
// initiatives. Percentages are left to the presentation layer.
type TypeCount struct {
	Type  string `json:"type"`
	Total int64  `json:"total"`
}

// Dashboard is the composed payload for the company dashboard endpoint.
type Dashboard struct {
	KPIs         KPIs             `json:"kpis"`
	Evolution    []EvolutionPoint `json:"evolucaoHoras"`
	ByCause      []CauseCount     `json:"projetosPorCausa"`
	Distribution []TypeCount      `json:"distribuicaoTipoApoio"`
}

// Store is the aggregation engine behind company dashboards. Every
// widget degrades independently: a data-access failure is logged and
// that widget comes back zeroed or empty, so the dashboard renders
// partially instead of failing wholesale.
type Store struct {
	db  *mongo.Database
	log *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// KPIs sums the company's snapshots and adds live counts. A company
// with no snapshots and no children gets all zeros, never an error.
func (s *Store) KPIs(ctx context.Context, companyID primitive.ObjectID) KPIs {
	var k KPIs

	cur, err := s.db.Collection("impact_snapshots").Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"company_id": companyID}}},
		{{Key: "$group", Value: bson.M{
			"_id":             nil,
			"volunteer_hours": bson.M{"$sum": "$volunteer_hours"},
			"project_count":   bson.M{"$sum": "$project_count"},
			"volunteer_count": bson.M{"$sum": "$volunteer_count"},
			"donation_value":  bson.M{"$sum": "$donation_value"},
		}}},
	})
	if err != nil {
		s.log.Warn("kpi snapshot sums failed", zap.String("company", companyID.Hex()), zap.Error(err))
	} else {
		var rows []struct {
			VolunteerHours int64   `bson:"volunteer_hours"`
			ProjectCount   int64   `bson:"project_count"`
			VolunteerCount int64   `bson:"volunteer_count"`
			DonationValue  float64 `bson:"donation_value"`
		}
		if err := cur.All(ctx, &rows); err != nil {
			s.log.Warn("kpi snapshot decode failed", zap.String("company", companyID.Hex()), zap.Error(err))
		} else if len(rows) > 0 {
			k.VolunteerHours = rows[0].VolunteerHours
			k.ProjectCount = rows[0].ProjectCount
			k.VolunteerCount = rows[0].VolunteerCount
			k.DonationValue = rows[0].DonationValue
		}
	}

	k.ActiveInitiatives = s.count(ctx, "initiatives", bson.M{"company_id": companyID, "status": models.InitiativeActive})
	k.TotalInitiatives = s.count(ctx, "initiatives", bson.M{"company_id": companyID})
	k.PendingProposals = s.count(ctx, "proposals", bson.M{"company_id": companyID, "status": models.ProposalPending})
	k.TotalProposals = s.count(ctx, "proposals", bson.M{"company_id": companyID})
	k.UpcomingMeetings = s.count(ctx, "meetings", bson.M{
		"company_id": companyID,
		"status":     models.MeetingConfirmed,
		"starts_at":  bson.M{"$gt": time.Now().UTC()},
	})
	return k
}

// EvolutionSeries returns the company's monthly volunteering hours from
// fromYear onward, year then month ascending. No gap-filling.
func (s *Store) EvolutionSeries(ctx context.Context, companyID primitive.ObjectID, fromYear int) []EvolutionPoint {
	filter := bson.M{"company_id": companyID}
	if fromYear > 0 {
		filter["year"] = bson.M{"$gte": fromYear}
	}
	cur, err := s.db.Collection("impact_snapshots").Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "year", Value: 1},
		{Key: "month", Value: 1},
	}))
	if err != nil {
		s.log.Warn("evolution series failed", zap.String("company", companyID.Hex()), zap.Error(err))
		return []EvolutionPoint{}
	}
	defer cur.Close(ctx)

	var snaps []models.ImpactSnapshot
	if err := cur.All(ctx, &snaps); err != nil {
		s.log.Warn("evolution series decode failed", zap.String("company", companyID.Hex()), zap.Error(err))
		return []EvolutionPoint{}
	}

	points := make([]EvolutionPoint, 0, len(snaps))
	for _, sn := range snaps {
		points = append(points, EvolutionPoint{Year: sn.Year, Month: sn.Month, Hours: sn.VolunteerHours})
	}
	return points
}

// ProjectsByCause counts the company's initiatives per associated
// cause. The breakdown reflects the association, not the activity: a
// cause with no initiatives still appears with total zero.
func (s *Store) ProjectsByCause(ctx context.Context, companyID primitive.ObjectID) []CauseCount {
	var co models.Company
	if err := s.db.Collection("companies").FindOne(ctx, bson.M{"_id": companyID}).Decode(&co); err != nil {
		s.log.Warn("projects by cause: load company failed", zap.String("company", companyID.Hex()), zap.Error(err))
		return []CauseCount{}
	}
	if len(co.CauseIDs) == 0 {
		return []CauseCount{}
	}

	names := s.facetNames(ctx, "causes", co.CauseIDs)

	counts := map[primitive.ObjectID]int64{}
	cur, err := s.db.Collection("initiatives").Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"company_id": companyID}}},
		{{Key: "$group", Value: bson.M{"_id": "$cause_id", "total": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		s.log.Warn("projects by cause: group failed", zap.String("company", companyID.Hex()), zap.Error(err))
	} else {
		var rows []struct {
			ID    primitive.ObjectID `bson:"_id"`
			Total int64              `bson:"total"`
		}
		if err := cur.All(ctx, &rows); err != nil {
			s.log.Warn("projects by cause: decode failed", zap.String("company", companyID.Hex()), zap.Error(err))
		} else {
			for _, row := range rows {
				counts[row.ID] = row.Total
			}
		}
	}

	out := make([]CauseCount, 0, len(co.CauseIDs))
	for _, id := range co.CauseIDs {
		name := names[id]
		if name == "" {
			name = id.Hex()
		}
		out = append(out, CauseCount{Cause: name, Total: counts[id]})
	}
	return out
}

// SupportTypeDistribution groups the company's completed initiatives by
// support type. Only completed initiatives count.
func (s *Store) SupportTypeDistribution(ctx context.Context, companyID primitive.ObjectID) []TypeCount {
	cur, err := s.db.Collection("initiatives").Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"company_id": companyID, "status": models.InitiativeCompleted}}},
		{{Key: "$group", Value: bson.M{"_id": "$support_type_id", "total": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	})
	if err != nil {
		s.log.Warn("support type distribution failed", zap.String("company", companyID.Hex()), zap.Error(err))
		return []TypeCount{}
	}

	var rows []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Total int64              `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		s.log.Warn("support type distribution decode failed", zap.String("company", companyID.Hex()), zap.Error(err))
		return []TypeCount{}
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	names := s.facetNames(ctx, "support_types", ids)

	out := make([]TypeCount, 0, len(rows))
	for _, row := range rows {
		name := names[row.ID]
		if name == "" {
			name = row.ID.Hex()
		}
		out = append(out, TypeCount{Type: name, Total: row.Total})
	}
	return out
}

// Dashboard composes all four widgets. It never returns an error; the
// widgets have already degraded individually if anything failed.
func (s *Store) Dashboard(ctx context.Context, companyID primitive.ObjectID) Dashboard {
	return Dashboard{
		KPIs:         s.KPIs(ctx, companyID),
		Evolution:    s.EvolutionSeries(ctx, companyID, 0),
		ByCause:      s.ProjectsByCause(ctx, companyID),
		Distribution: s.SupportTypeDistribution(ctx, companyID),
	}
}

// count is a tolerant CountDocuments: failures log and read as zero.
func (s *Store) count(ctx context.Context, coll string, filter bson.M) int64 {
	n, err := s.db.Collection(coll).CountDocuments(ctx, filter)
	if err != nil {
		s.log.Warn("dashboard count failed", zap.String("collection", coll), zap.Error(err))
		return 0
	}
	return n
}

// facetNames resolves facet ids to display names, tolerantly.
func (s *Store) facetNames(ctx context.Context, coll string, ids []primitive.ObjectID) map[primitive.ObjectID]string {
	names := map[primitive.ObjectID]string{}
	if len(ids) == 0 {
		return names
	}
	cur, err := s.db.Collection(coll).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		s.log.Warn("facet name lookup failed", zap.String("collection", coll), zap.Error(err))
		return names
	}
	defer cur.Close(ctx)

	var facets []models.Facet
	if err := cur.All(ctx, &facets); err != nil {
		s.log.Warn("facet name decode failed", zap.String("collection", coll), zap.Error(err))
		return names
	}
	for _, f := range facets {
		names[f.ID] = f.Name
	}
	return names
}
