// internal/domain/models/initiative.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Initiative status values.
const (
	InitiativeActive    = "ativa"
	InitiativeCompleted = "concluida"
	InitiativePaused    = "pausada"
	InitiativeCancelled = "cancelada"
)

// ValidInitiativeStatus reports whether s is a known initiative status.
func ValidInitiativeStatus(s string) bool {
	switch s {
	case InitiativeActive, InitiativeCompleted, InitiativePaused, InitiativeCancelled:
		return true
	}
	return false
}

// Initiative is a company-run social initiative tied to one cause and
// one support-type category.
type Initiative struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"-"`

	CompanyID     primitive.ObjectID `bson:"company_id" json:"companyId"`
	CauseID       primitive.ObjectID `bson:"cause_id" json:"causaId"`
	SupportTypeID primitive.ObjectID `bson:"support_type_id" json:"tipoApoioId"`

	Status    string    `bson:"status" json:"status"`
	StartDate time.Time `bson:"start_date" json:"startDate"`

	// RegistrationCount is maintained by the registration path.
	RegistrationCount int64 `bson:"registration_count" json:"registrationCount"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
