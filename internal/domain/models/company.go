// internal/domain/models/company.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is a sponsoring company. It owns collaborators, initiatives,
// proposals, meetings, and impact snapshots; deleting a company removes
// all of them.
type Company struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	NameCI        string             `bson:"name_ci" json:"-"`
	Mission       string             `bson:"mission" json:"mission"`
	MissionCI     string             `bson:"mission_ci" json:"-"`
	Description   string             `bson:"description" json:"description"`
	DescriptionCI string             `bson:"description_ci" json:"-"`
	Sector        string             `bson:"sector" json:"sector"`
	SectorCI      string             `bson:"sector_ci" json:"-"`

	// Size is a label such as "1-10", "11-50", "200+".
	Size string `bson:"size,omitempty" json:"size,omitempty"`

	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`

	Location   string `bson:"location" json:"location"`
	LocationCI string `bson:"location_ci" json:"-"`

	Visible bool `bson:"visible" json:"visible"`

	ODSIDs         []primitive.ObjectID `bson:"ods_ids,omitempty" json:"odsIds,omitempty"`
	CauseIDs       []primitive.ObjectID `bson:"cause_ids,omitempty" json:"causaIds,omitempty"`
	SupportTypeIDs []primitive.ObjectID `bson:"support_type_ids,omitempty" json:"tipoApoioIds,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Collaborator is a company contact person. Email is unique within a
// company (enforced by index and pre-checked for a clean error).
type Collaborator struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	CompanyID primitive.ObjectID `bson:"company_id" json:"companyId"`
	Name      string             `bson:"name" json:"name"`
	NameCI    string             `bson:"name_ci" json:"-"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
