package hiring

import (
	"strings"
	"time"

	"serviapp/internal/app/ds"
)

// PaymentInput son los datos de un pago asentado por el caller.
// No se verifica contra ninguna pasarela: es una entrada contable.
type PaymentInput struct {
	Monto         float64
	Concepto      string
	Comprobante   string
	TransactionID string
}

// AddPayment agrega una entrada al historial de pagos y recalcula el
// total pagado. El historial conserva el orden de inserción y admite
// duplicados; si el caller quiere idempotencia debe compararla él mismo
// por TransactionID.
//
// Cuando el total pagado alcanza el precio final se marca PagoRealizado
// y se fija FechaPago. La marca solo pasa de false a true: un sobrepago
// no la revierte ni genera reembolsos aquí.
func AddPayment(h *ds.Hiring, pago PaymentInput, now time.Time) error {
	if pago.Monto <= 0 || strings.TrimSpace(pago.Concepto) == "" {
		return ErrInvalidPayment
	}

	h.Pagos = append(h.Pagos, ds.HiringPayment{
		HiringID:      h.ID,
		Fecha:         now,
		Monto:         pago.Monto,
		Concepto:      pago.Concepto,
		Comprobante:   pago.Comprobante,
		TransactionID: pago.TransactionID,
	})

	// La comparación va en centavos enteros: tres cuotas de 146.66,
	// 146.67 y 146.67 deben cubrir un precio final de 440.00 aunque la
	// suma en float64 quede una fracción por debajo.
	if !h.PagoRealizado && centavos(TotalPagado(h)) >= centavos(h.PrecioFinal) {
		h.PagoRealizado = true
		h.FechaPago = &now
	}
	h.UpdatedAt = now
	return nil
}

// TotalPagado suma todas las entradas del historial
func TotalPagado(h *ds.Hiring) float64 {
	var total float64
	for _, p := range h.Pagos {
		total += p.Monto
	}
	return total
}
