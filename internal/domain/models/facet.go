// internal/domain/models/facet.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Facet is a shared lookup entity (ODS, cause, area of action, support
// type, collaboration type) referenced from organizations, companies,
// events, and initiatives. Facets are never owned by the entities that
// reference them: deleting a facet that is still referenced fails.
type Facet struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"`
	Icon   string             `bson:"icon,omitempty" json:"icon,omitempty"`

	// Number is set only for ODS (the 17 sustainable development goals,
	// numbered 1-17); zero for every other facet kind.
	Number int `bson:"number,omitempty" json:"number,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ODSNames are the 17 sustainable development goals, seeded at startup.
// Index i holds goal number i+1.
var ODSNames = [17]string{
	"Erradicação da Pobreza",
	"Fome Zero e Agricultura Sustentável",
	"Saúde e Bem-Estar",
	"Educação de Qualidade",
	"Igualdade de Gênero",
	"Água Potável e Saneamento",
	"Energia Limpa e Acessível",
	"Trabalho Decente e Crescimento Econômico",
	"Indústria, Inovação e Infraestrutura",
	"Redução das Desigualdades",
	"Cidades e Comunidades Sustentáveis",
	"Consumo e Produção Responsáveis",
	"Ação Contra a Mudança Global do Clima",
	"Vida na Água",
	"Vida Terrestre",
	"Paz, Justiça e Instituições Eficazes",
	"Parcerias e Meios de Implementação",
}
