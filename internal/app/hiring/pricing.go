package hiring

import "math"

// Breakdown es el desglose de precios de una contratación.
// Todos los montos quedan fijados al momento del cálculo.
type Breakdown struct {
	PrecioBase         float64 // tarifa × duración
	ComisionPlataforma float64 // porcentaje copiado del servicio
	ComisionMonto      float64 // base × comisión / 100, redondeado
	PrecioTotal        float64 // igual al precio base
	PrecioFinal        float64 // lo que paga el cliente
	PrecioProveedor    float64 // lo que recibe el proveedor
}

// roundMoney redondea a centavos (half-up). Es la única política de
// redondeo del paquete: se aplica en todos los montos derivados.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// centavos convierte un monto a centavos enteros para comparaciones:
// el acarreo de float64 en sumas de cuotas no debe correr un umbral.
func centavos(v float64) int64 {
	return int64(math.Round(v * 100))
}

// CalculatePrice calcula el desglose completo a partir de la tarifa del
// servicio, la duración contratada y la comisión de la plataforma.
// Es una función pura: mismos argumentos, mismo resultado, sin efectos.
func CalculatePrice(tarifa float64, duracion int, comision float64) (Breakdown, error) {
	if duracion <= 0 || tarifa < 0 || comision < 0 || comision > 50 {
		return Breakdown{}, ErrInvalidPricingInput
	}

	base := roundMoney(tarifa * float64(duracion))
	monto := roundMoney(base * comision / 100)

	return Breakdown{
		PrecioBase:         base,
		ComisionPlataforma: comision,
		ComisionMonto:      monto,
		PrecioTotal:        base,
		PrecioFinal:        roundMoney(base + monto),
		PrecioProveedor:    roundMoney(base - monto),
	}, nil
}
