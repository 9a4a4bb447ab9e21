package models

import "time"

// Requirement is a single trackable item of the strategic plan, loaded once
// by the seed and never edited afterward. Point weight is fixed reference
// data; user updates live in RequirementUpdate.
type Requirement struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Eixo                 string    `gorm:"size:100;not null;index" json:"eixo"`
	Item                 string    `gorm:"type:text;not null" json:"item"`
	Requisito            string    `gorm:"type:text;not null" json:"requisito"`
	Descricao            string    `gorm:"type:text" json:"descricao"`
	SetorExecutor        string    `gorm:"size:200;not null;index" json:"setorExecutor"`
	CoordenadorExecutivo *string   `gorm:"size:200;index" json:"coordenadorExecutivo"`
	Deadline             string    `gorm:"size:50" json:"deadline"`
	PontosAplicaveis2026 int       `gorm:"default:0" json:"pontosAplicaveis2026"`
	CreatedAt            time.Time `json:"createdAt"`
}
