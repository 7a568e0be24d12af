// internal/domain/models/snapshot.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImpactSnapshot is one company's aggregate impact for one (year, month)
// period. Rows are append-only: a period is written once when it closes
// and never mutated afterwards. Unique on (company_id, year, month).
type ImpactSnapshot struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	CompanyID primitive.ObjectID `bson:"company_id" json:"companyId"`
	Year      int                `bson:"year" json:"year"`
	Month     int                `bson:"month" json:"month"`

	VolunteerHours int64   `bson:"volunteer_hours" json:"volunteerHours"`
	ProjectCount   int64   `bson:"project_count" json:"projectCount"`
	VolunteerCount int64   `bson:"volunteer_count" json:"volunteerCount"`
	DonationValue  float64 `bson:"donation_value" json:"donationValue"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
