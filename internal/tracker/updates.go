package tracker

import (
	"fmt"

	"github.com/ogomes/farol/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateOpts holds parameters for recording a status update.
type UpdateOpts struct {
	RequirementID int64
	Status        string
	LinkEvidencia string
	Observacoes   string
}

// RecordUpdate validates opts and upserts the current update for the
// requirement, keyed on requirement_id. The unique index serializes
// concurrent writes to the same requirement at the storage layer; the
// last committed write wins. Validation failures return *ValidationError
// before any write; storage failures return *WriteError.
func RecordUpdate(db *gorm.DB, opts UpdateOpts) error {
	if opts.RequirementID <= 0 {
		return &ValidationError{Msg: "requirementId é obrigatório"}
	}
	if !ValidStatuses[opts.Status] {
		return &ValidationError{Msg: fmt.Sprintf("status inválido: %q (esperado pendente, em_andamento ou concluido)", opts.Status)}
	}

	var count int64
	if err := db.Model(&models.Requirement{}).
		Where("id = ?", opts.RequirementID).
		Count(&count).Error; err != nil {
		return &WriteError{Err: fmt.Errorf("tracker: check requirement %d: %w", opts.RequirementID, err)}
	}
	if count == 0 {
		return &ValidationError{Msg: fmt.Sprintf("requisito %d não encontrado", opts.RequirementID)}
	}

	update := models.RequirementUpdate{
		RequirementID: opts.RequirementID,
		Status:        opts.Status,
		LinkEvidencia: opts.LinkEvidencia,
		Observacoes:   opts.Observacoes,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "requirement_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "link_evidencia", "observacoes", "updated_at"}),
	}).Create(&update)
	if result.Error != nil {
		return &WriteError{Err: fmt.Errorf("tracker: record update for %d: %w", opts.RequirementID, result.Error)}
	}
	return nil
}
