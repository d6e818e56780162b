package hiring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviapp/internal/app/ds"
)

func nuevaContratacion(estado string) *ds.Hiring {
	return &ds.Hiring{
		ID:          1,
		ServicioID:  10,
		ClienteID:   20,
		ProveedorID: 30,
		PrecioBase:  400,
		PrecioFinal: 440,
		Estado:      estado,
	}
}

func TestChangeStatusTransiciones(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	casos := []struct {
		nombre     string
		desde      string
		solicitado string
		err        error
	}{
		{"pendiente a confirmada", ds.EstadoPendiente, ds.EstadoConfirmada, nil},
		{"confirmada a en_progreso", ds.EstadoConfirmada, ds.EstadoEnProgreso, nil},
		{"en_progreso a completada", ds.EstadoEnProgreso, ds.EstadoCompletada, nil},
		{"pendiente a cancelada", ds.EstadoPendiente, ds.EstadoCancelada, nil},
		{"en_progreso a cancelada", ds.EstadoEnProgreso, ds.EstadoCancelada, nil},
		// Sin orden obligatorio entre estados no terminales
		{"salto directo pendiente a completada", ds.EstadoPendiente, ds.EstadoCompletada, nil},
		{"retroceso confirmada a pendiente", ds.EstadoConfirmada, ds.EstadoPendiente, nil},
		// Terminales inmutables
		{"completada a en_progreso", ds.EstadoCompletada, ds.EstadoEnProgreso, ErrInvalidTransition},
		{"completada a cancelada", ds.EstadoCompletada, ds.EstadoCancelada, ErrInvalidTransition},
		{"cancelada a confirmada", ds.EstadoCancelada, ds.EstadoConfirmada, ErrInvalidTransition},
		// Estado desconocido
		{"estado no reconocido", ds.EstadoPendiente, "archivada", ErrInvalidTransition},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			h := nuevaContratacion(c.desde)
			err := ChangeStatus(h, c.solicitado, now)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				assert.Equal(t, c.desde, h.Estado, "un fallo no debe mutar el estado")
			} else {
				require.NoError(t, err)
				assert.Equal(t, c.solicitado, h.Estado)
				assert.Equal(t, now, h.UpdatedAt)
			}
		})
	}
}

func TestChangeStatusTerminalIdempotente(t *testing.T) {
	now := time.Now()

	// Reafirmar el mismo estado terminal es un no-op exitoso
	h := nuevaContratacion(ds.EstadoCompletada)
	require.NoError(t, ChangeStatus(h, ds.EstadoCompletada, now))
	assert.Equal(t, ds.EstadoCompletada, h.Estado)

	h = nuevaContratacion(ds.EstadoCancelada)
	require.NoError(t, ChangeStatus(h, ds.EstadoCancelada, now))
	assert.Equal(t, ds.EstadoCancelada, h.Estado)
}
