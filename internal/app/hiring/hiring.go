// Package hiring implementa el ciclo de vida de una contratación:
// cálculo de precios con comisión, máquina de estados, historial de
// pagos y calificaciones con agregado por servicio.
//
// Todas las operaciones son transformaciones síncronas sobre un valor
// de contratación en memoria; la persistencia transaccional y la
// serialización por identificador son responsabilidad del repositorio.
package hiring

import (
	"time"

	"serviapp/internal/app/ds"
)

// ServiceSnapshot es la vista de solo lectura del servicio que necesita
// la creación de una contratación. Se toma en el momento de crear y no
// se vuelve a consultar: cambios posteriores del servicio no afectan a
// contrataciones existentes.
type ServiceSnapshot struct {
	ID             uint
	ProveedorID    uint
	Precio         float64
	UnidadTiempo   string
	DuracionMinima int
	DuracionMaxima int
	Comision       float64
}

// CreateInput son los datos que aporta el cliente al contratar
type CreateInput struct {
	FechaInicio time.Time
	FechaFin    time.Time
	Duracion    int
	MetodoPago  string
	Notas       string
}

// EstimatePrice calcula el desglose para una duración dada sin crear
// nada: es la cotización pública que ve el cliente antes de contratar.
// Valida la duración contra los límites del servicio.
func EstimatePrice(svc ServiceSnapshot, duracion int) (Breakdown, error) {
	if duracion < svc.DuracionMinima || duracion > svc.DuracionMaxima {
		return Breakdown{}, ErrInvalidDuration
	}
	return CalculatePrice(svc.Precio, duracion, svc.Comision)
}

// New construye una contratación en estado pendiente con su desglose de
// precios calculado una sola vez. Valida la duración contra los límites
// del servicio (los límites no se vuelven a revisar después, aunque el
// servicio cambie) y que la fecha de fin sea posterior a la de inicio.
func New(svc ServiceSnapshot, clienteID uint, in CreateInput, now time.Time) (*ds.Hiring, error) {
	precios, err := EstimatePrice(svc, in.Duracion)
	if err != nil {
		return nil, err
	}
	if !in.FechaFin.After(in.FechaInicio) {
		return nil, ErrInvalidDates
	}

	return &ds.Hiring{
		ServicioID:  svc.ID,
		ClienteID:   clienteID,
		ProveedorID: svc.ProveedorID,
		FechaInicio: in.FechaInicio,
		FechaFin:    in.FechaFin,
		Duracion:    in.Duracion,

		PrecioBase:         precios.PrecioBase,
		ComisionPlataforma: precios.ComisionPlataforma,
		PrecioTotal:        precios.PrecioTotal,
		PrecioFinal:        precios.PrecioFinal,

		Estado:     ds.EstadoPendiente,
		MetodoPago: in.MetodoPago,
		Notas:      in.Notas,

		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// PriceBreakdown reconstruye el desglose a partir de los campos
// congelados de la contratación (el monto de comisión y el precio del
// proveedor son derivables del resto).
func PriceBreakdown(h *ds.Hiring) Breakdown {
	monto := roundMoney(h.PrecioFinal - h.PrecioBase)
	return Breakdown{
		PrecioBase:         h.PrecioBase,
		ComisionPlataforma: h.ComisionPlataforma,
		ComisionMonto:      monto,
		PrecioTotal:        h.PrecioTotal,
		PrecioFinal:        h.PrecioFinal,
		PrecioProveedor:    roundMoney(h.PrecioBase - monto),
	}
}
