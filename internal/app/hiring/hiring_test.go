package hiring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviapp/internal/app/ds"
)

func snapshotHora() ServiceSnapshot {
	return ServiceSnapshot{
		ID:             10,
		ProveedorID:    30,
		Precio:         100,
		UnidadTiempo:   "hora",
		DuracionMinima: 1,
		DuracionMaxima: 8,
		Comision:       10,
	}
}

func TestEstimatePrice(t *testing.T) {
	// La cotización pública usa la misma aritmética que la creación
	b, err := EstimatePrice(snapshotHora(), 4)
	require.NoError(t, err)
	assert.Equal(t, 400.0, b.PrecioBase)
	assert.Equal(t, 40.0, b.ComisionMonto)
	assert.Equal(t, 440.0, b.PrecioFinal)
	assert.Equal(t, 360.0, b.PrecioProveedor)
}

func TestEstimatePriceDuracionFueraDeLimites(t *testing.T) {
	_, err := EstimatePrice(snapshotHora(), 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = EstimatePrice(snapshotHora(), 9) // máximo 8
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestNewContratacion(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	in := CreateInput{
		FechaInicio: now.Add(24 * time.Hour),
		FechaFin:    now.Add(28 * time.Hour),
		Duracion:    4,
		MetodoPago:  ds.PagoTransferencia,
		Notas:       "llevar herramientas propias",
	}

	h, err := New(snapshotHora(), 20, in, now)
	require.NoError(t, err)

	assert.Equal(t, uint(10), h.ServicioID)
	assert.Equal(t, uint(20), h.ClienteID)
	assert.Equal(t, uint(30), h.ProveedorID)
	assert.Equal(t, ds.EstadoPendiente, h.Estado)
	assert.Equal(t, 400.0, h.PrecioBase)
	assert.Equal(t, 10.0, h.ComisionPlataforma)
	assert.Equal(t, 400.0, h.PrecioTotal)
	assert.Equal(t, 440.0, h.PrecioFinal)
	assert.False(t, h.PagoRealizado)
	assert.Empty(t, h.Pagos)

	b := PriceBreakdown(h)
	assert.Equal(t, 40.0, b.ComisionMonto)
	assert.Equal(t, 360.0, b.PrecioProveedor)
}

func TestNewDuracionFueraDeLimites(t *testing.T) {
	now := time.Now()
	base := CreateInput{
		FechaInicio: now,
		FechaFin:    now.Add(time.Hour),
		MetodoPago:  ds.PagoEfectivo,
	}

	in := base
	in.Duracion = 0
	_, err := New(snapshotHora(), 20, in, now)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	in = base
	in.Duracion = 9 // máximo 8
	_, err = New(snapshotHora(), 20, in, now)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestNewFechasInvalidas(t *testing.T) {
	now := time.Now()

	in := CreateInput{
		FechaInicio: now,
		FechaFin:    now, // debe ser estrictamente posterior
		Duracion:    2,
		MetodoPago:  ds.PagoTarjeta,
	}
	_, err := New(snapshotHora(), 20, in, now)
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestCicloCompletoDeContratacion(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	in := CreateInput{
		FechaInicio: now.Add(24 * time.Hour),
		FechaFin:    now.Add(28 * time.Hour),
		Duracion:    4,
		MetodoPago:  ds.PagoStripe,
	}

	h, err := New(snapshotHora(), 20, in, now)
	require.NoError(t, err)
	h.ID = 1

	require.NoError(t, ChangeStatus(h, ds.EstadoConfirmada, now))
	require.NoError(t, AddPayment(h, PaymentInput{Monto: 440, Concepto: "pago completo", TransactionID: "tx-9"}, now))
	require.True(t, h.PagoRealizado)

	require.NoError(t, ChangeStatus(h, ds.EstadoEnProgreso, now))
	require.NoError(t, ChangeStatus(h, ds.EstadoCompletada, now))
	require.NoError(t, Rate(h, 20, RatingInput{Puntuacion: 5, Comentario: "excelente"}, now))

	promedio, cantidad := ServiceRating([]ds.Hiring{*h})
	assert.Equal(t, 5.0, promedio)
	assert.Equal(t, 1, cantidad)

	// Terminal: ni el estado ni la calificación admiten más cambios
	assert.ErrorIs(t, ChangeStatus(h, ds.EstadoCancelada, now), ErrInvalidTransition)
	assert.ErrorIs(t, Rate(h, 20, RatingInput{Puntuacion: 1}, now), ErrAlreadyRated)
}
