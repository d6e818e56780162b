package hiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePriceBasico(t *testing.T) {
	// Servicio de 100/hora, 4 horas, 10% de comisión
	b, err := CalculatePrice(100, 4, 10)
	require.NoError(t, err)

	assert.Equal(t, 400.0, b.PrecioBase)
	assert.Equal(t, 40.0, b.ComisionMonto)
	assert.Equal(t, 400.0, b.PrecioTotal)
	assert.Equal(t, 440.0, b.PrecioFinal)
	assert.Equal(t, 360.0, b.PrecioProveedor)
}

func TestCalculatePriceConservacionComision(t *testing.T) {
	casos := []struct {
		tarifa   float64
		duracion int
		comision float64
	}{
		{100, 4, 10},
		{99.99, 3, 15},
		{1, 1, 0},
		{250.50, 7, 50},
		{33.33, 12, 12.5},
	}

	for _, c := range casos {
		b, err := CalculatePrice(c.tarifa, c.duracion, c.comision)
		require.NoError(t, err)

		// Lo que se suma al cliente es lo mismo que se resta al proveedor
		assert.InDelta(t, b.ComisionMonto, b.PrecioFinal-b.PrecioBase, 1e-9)
		assert.InDelta(t, b.ComisionMonto, b.PrecioBase-b.PrecioProveedor, 1e-9)
		assert.Equal(t, b.PrecioBase, b.PrecioTotal)
	}
}

func TestCalculatePriceDeterminista(t *testing.T) {
	a, err := CalculatePrice(123.45, 6, 17.5)
	require.NoError(t, err)
	b, err := CalculatePrice(123.45, 6, 17.5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculatePriceRedondeoACentavos(t *testing.T) {
	// 33.33 × 3 = 99.99, comisión 12.5% = 12.49875, redondea a 12.50
	b, err := CalculatePrice(33.33, 3, 12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.50, b.ComisionMonto)
	assert.Equal(t, 112.49, b.PrecioFinal)
	assert.Equal(t, 87.49, b.PrecioProveedor)
}

func TestCalculatePriceEntradasInvalidas(t *testing.T) {
	casos := []struct {
		nombre   string
		tarifa   float64
		duracion int
		comision float64
	}{
		{"duracion cero", 100, 0, 10},
		{"duracion negativa", 100, -3, 10},
		{"tarifa negativa", -1, 4, 10},
		{"comision negativa", 100, 4, -0.1},
		{"comision mayor a 50", 100, 4, 50.01},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := CalculatePrice(c.tarifa, c.duracion, c.comision)
			assert.ErrorIs(t, err, ErrInvalidPricingInput)
		})
	}
}

func TestCalculatePriceComisionCero(t *testing.T) {
	b, err := CalculatePrice(80, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.ComisionMonto)
	assert.Equal(t, b.PrecioBase, b.PrecioFinal)
	assert.Equal(t, b.PrecioBase, b.PrecioProveedor)
}
