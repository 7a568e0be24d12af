// internal/domain/models/registration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration status values.
const (
	RegistrationPending   = "pendente"
	RegistrationApproved  = "aprovada"
	RegistrationRejected  = "rejeitada"
	RegistrationCancelled = "cancelada"
)

// ValidRegistrationStatus reports whether s is a known registration status.
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected, RegistrationCancelled:
		return true
	}
	return false
}

// Registration is an inscription for exactly one of an event or an
// initiative. Exactly one of EventID/InitiativeID is set; the store
// rejects anything else before the duplicate guard runs.
//
// Email is stored normalized (folded). The unique indexes on
// (event_id, email) and (initiative_id, email) are the authoritative
// duplicate guard; they cover cancelled rows too, so a cancelled
// registration still blocks a retry.
type Registration struct {
	ID           primitive.ObjectID  `bson:"_id" json:"id"`
	EventID      *primitive.ObjectID `bson:"event_id,omitempty" json:"eventId,omitempty"`
	InitiativeID *primitive.ObjectID `bson:"initiative_id,omitempty" json:"initiativeId,omitempty"`

	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Message string `bson:"message,omitempty" json:"message,omitempty"`

	Status string `bson:"status" json:"status"`

	// ConfirmationCode is an opaque reference the registrant can quote.
	ConfirmationCode string `bson:"confirmation_code" json:"confirmationCode"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
