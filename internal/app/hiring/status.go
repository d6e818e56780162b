package hiring

import (
	"time"

	"serviapp/internal/app/ds"
)

// estadosValidos es el conjunto cerrado de estados reconocidos
var estadosValidos = map[string]bool{
	ds.EstadoPendiente:  true,
	ds.EstadoConfirmada: true,
	ds.EstadoEnProgreso: true,
	ds.EstadoCompletada: true,
	ds.EstadoCancelada:  true,
}

// ChangeStatus aplica una transición de estado sobre la contratación.
//
// Reglas: completada y cancelada son terminales e inmutables; pedir el
// mismo estado terminal es un no-op exitoso (reintentos idempotentes).
// Entre estados no terminales no se impone ningún orden: un salto
// pendiente a completada es legal. Único efecto en caso de éxito:
// Estado y UpdatedAt.
func ChangeStatus(h *ds.Hiring, solicitado string, now time.Time) error {
	if !estadosValidos[solicitado] {
		return ErrInvalidTransition
	}

	if h.EsTerminal() {
		if solicitado == h.Estado {
			return nil
		}
		return ErrInvalidTransition
	}

	h.Estado = solicitado
	h.UpdatedAt = now
	return nil
}
