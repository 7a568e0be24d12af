// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a registered NGO. Text fields that are searched or
// sorted carry folded *_ci shadows (lowercase, diacritics-stripped),
// written on every create/update so query-time folding matches.
type Organization struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	NameCI        string             `bson:"name_ci" json:"-"`
	Description   string             `bson:"description" json:"description"`
	DescriptionCI string             `bson:"description_ci" json:"-"`
	Mission       string             `bson:"mission" json:"mission"`
	MissionCI     string             `bson:"mission_ci" json:"-"`

	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`

	Location   string   `bson:"location" json:"location"`
	LocationCI string   `bson:"location_ci" json:"-"`
	Latitude   *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude  *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	// Impact is an ordered list of free-form impact statements shown on
	// the organization's profile.
	Impact []string `bson:"impact,omitempty" json:"impact,omitempty"`

	Visible bool `bson:"visible" json:"visible"`

	ODSIDs               []primitive.ObjectID `bson:"ods_ids,omitempty" json:"odsIds,omitempty"`
	AreaIDs              []primitive.ObjectID `bson:"area_ids,omitempty" json:"areaIds,omitempty"`
	CollaborationTypeIDs []primitive.ObjectID `bson:"collaboration_type_ids,omitempty" json:"colaboracaoIds,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
