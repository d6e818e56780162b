package hiring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviapp/internal/app/ds"
)

func TestAddPaymentAcumulacion(t *testing.T) {
	h := &ds.Hiring{ID: 1, ClienteID: 20, PrecioFinal: 1000, Estado: ds.EstadoConfirmada}
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	require.NoError(t, AddPayment(h, PaymentInput{Monto: 600, Concepto: "anticipo"}, t1))
	assert.False(t, h.PagoRealizado, "600 < 1000 todavía no cubre el precio final")
	assert.Nil(t, h.FechaPago)
	assert.Equal(t, 600.0, TotalPagado(h))

	require.NoError(t, AddPayment(h, PaymentInput{Monto: 500, Concepto: "saldo"}, t2))
	assert.True(t, h.PagoRealizado, "1100 >= 1000 marca la contratación como pagada")
	require.NotNil(t, h.FechaPago)
	assert.Equal(t, t2, *h.FechaPago)
	assert.Equal(t, 1100.0, TotalPagado(h))
}

func TestAddPaymentOrdenYDuplicados(t *testing.T) {
	h := &ds.Hiring{ID: 1, PrecioFinal: 500}
	now := time.Now()

	pago := PaymentInput{Monto: 100, Concepto: "cuota", TransactionID: "tx-1"}
	require.NoError(t, AddPayment(h, pago, now))
	require.NoError(t, AddPayment(h, pago, now)) // mismo TransactionID: no se deduplica

	require.Len(t, h.Pagos, 2)
	assert.Equal(t, "tx-1", h.Pagos[0].TransactionID)
	assert.Equal(t, "tx-1", h.Pagos[1].TransactionID)
	assert.Equal(t, 200.0, TotalPagado(h))
}

func TestAddPaymentFechaPagoNoSeLimpia(t *testing.T) {
	h := &ds.Hiring{ID: 1, PrecioFinal: 100}
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	require.NoError(t, AddPayment(h, PaymentInput{Monto: 150, Concepto: "pago único"}, t1))
	require.True(t, h.PagoRealizado)
	require.NotNil(t, h.FechaPago)

	// Un sobrepago posterior no reinicia la marca ni la fecha
	require.NoError(t, AddPayment(h, PaymentInput{Monto: 50, Concepto: "propina"}, t2))
	assert.True(t, h.PagoRealizado)
	assert.Equal(t, t1, *h.FechaPago)
}

func TestAddPaymentCuotasConAcarreoFloat(t *testing.T) {
	// 146.66 + 146.67 + 146.67 = 440.00 exacto en centavos, aunque la
	// suma en float64 pueda quedar apenas por debajo de 440
	h := &ds.Hiring{ID: 1, PrecioFinal: 440.00}
	now := time.Now()

	require.NoError(t, AddPayment(h, PaymentInput{Monto: 146.66, Concepto: "cuota 1"}, now))
	require.NoError(t, AddPayment(h, PaymentInput{Monto: 146.67, Concepto: "cuota 2"}, now))
	assert.False(t, h.PagoRealizado)

	require.NoError(t, AddPayment(h, PaymentInput{Monto: 146.67, Concepto: "cuota 3"}, now))
	assert.True(t, h.PagoRealizado, "las tres cuotas cubren el precio final")
	assert.NotNil(t, h.FechaPago)
}

func TestAddPaymentInvalido(t *testing.T) {
	h := &ds.Hiring{ID: 1, PrecioFinal: 100}
	now := time.Now()

	assert.ErrorIs(t, AddPayment(h, PaymentInput{Monto: 0, Concepto: "x"}, now), ErrInvalidPayment)
	assert.ErrorIs(t, AddPayment(h, PaymentInput{Monto: -5, Concepto: "x"}, now), ErrInvalidPayment)
	assert.ErrorIs(t, AddPayment(h, PaymentInput{Monto: 10, Concepto: "   "}, now), ErrInvalidPayment)

	// Un fallo no deja mutación parcial visible
	assert.Empty(t, h.Pagos)
	assert.False(t, h.PagoRealizado)
}
