// Package tracker implements the progress core: resolving the current
// status update per requirement and aggregating point-weighted completion
// per sector or coordinator.
package tracker

// Requirement update statuses.
const (
	StatusPendente    = "pendente"
	StatusEmAndamento = "em_andamento"
	StatusConcluido   = "concluido"
)

// ValidStatuses enumerates the accepted status values for a write.
var ValidStatuses = map[string]bool{
	StatusPendente:    true,
	StatusEmAndamento: true,
	StatusConcluido:   true,
}
