package models

import (
	"strings"
	"time"

	"clinicore-service/internal/pkg/constvars"
)

type Patient struct {
	ID        string     `bson:"_id,omitempty"`
	FirstName string     `bson:"firstName"`
	LastName  string     `bson:"lastName"`
	Dob       *time.Time `bson:"dob,omitempty"`
	Phone     string     `bson:"phone,omitempty"`
	Email     string     `bson:"email,omitempty"`
	CreatedBy string     `bson:"createdBy"`
	TimeModel `bson:",inline"`
}

// DisplayName joins first and last name. Both may legitimately be empty,
// in which case the record still renders as "Unnamed".
func (p *Patient) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return constvars.PatientUnnamedFallback
	}
	return name
}
