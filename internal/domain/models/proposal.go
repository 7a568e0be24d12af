// internal/domain/models/proposal.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Proposal status values.
const (
	ProposalPending  = "pendente"
	ProposalAccepted = "aceita"
	ProposalDeclined = "recusada"
)

// Proposal is a collaboration proposal from a company to an NGO. The
// dashboard KPIs count pending vs total proposals per company.
type Proposal struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	CompanyID      primitive.ObjectID `bson:"company_id" json:"companyId"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organizationId"`
	Title          string             `bson:"title" json:"title"`
	Status         string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Meeting status values.
const (
	MeetingConfirmed = "confirmada"
	MeetingCancelled = "cancelada"
)

// Meeting is a scheduled meeting between a company and an NGO. The
// dashboard KPIs count future confirmed meetings per company.
type Meeting struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	CompanyID      primitive.ObjectID `bson:"company_id" json:"companyId"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organizationId"`
	Subject        string             `bson:"subject" json:"subject"`
	StartsAt       time.Time          `bson:"starts_at" json:"startsAt"`
	Status         string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
