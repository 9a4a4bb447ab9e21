package models

import "time"

// RequirementUpdate is the user-submitted status record for a requirement.
// The unique index on RequirementID keeps exactly one logical current update
// per requirement; writes go through an upsert keyed on that column.
type RequirementUpdate struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RequirementID int64  `gorm:"not null;uniqueIndex" json:"requirementId"`
	Status        string `gorm:"size:16;default:pendente" json:"status"`
	LinkEvidencia string `gorm:"type:text" json:"linkEvidencia"`
	Observacoes   string `gorm:"type:text" json:"observacoes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Requirement Requirement `gorm:"foreignKey:RequirementID" json:"-"`
}
