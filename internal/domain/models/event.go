// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event modality values.
const (
	ModalityInPerson = "presencial"
	ModalityRemote   = "remoto"
	ModalityHybrid   = "hibrido"
)

// ValidModality reports whether m is a known event modality.
func ValidModality(m string) bool {
	switch m {
	case ModalityInPerson, ModalityRemote, ModalityHybrid:
		return true
	}
	return false
}

// Event is a volunteering event organized by an NGO.
type Event struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	NameCI        string             `bson:"name_ci" json:"-"`
	Description   string             `bson:"description" json:"description"`
	DescriptionCI string             `bson:"description_ci" json:"-"`

	// OrganizationID is the organizer; events are cascade-deleted with it.
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organizationId"`

	StartsAt time.Time `bson:"starts_at" json:"startsAt"`
	EndsAt   time.Time `bson:"ends_at" json:"endsAt"`

	Address    string `bson:"address,omitempty" json:"address,omitempty"`
	Location   string `bson:"location" json:"location"`
	LocationCI string `bson:"location_ci" json:"-"`

	Modality         string `bson:"modality" json:"modality"`
	Capacity         int    `bson:"capacity,omitempty" json:"capacity,omitempty"`
	RegistrationOpen bool   `bson:"registration_open" json:"registrationOpen"`
	Visible          bool   `bson:"visible" json:"visible"`

	ODSIDs  []primitive.ObjectID `bson:"ods_ids,omitempty" json:"odsIds,omitempty"`
	AreaIDs []primitive.ObjectID `bson:"area_ids,omitempty" json:"areaIds,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
