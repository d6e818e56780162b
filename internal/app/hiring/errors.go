package hiring

import "errors"

// Errores de validación de entrada (siempre corregibles por el caller)
var (
	ErrInvalidPricingInput = errors.New("parámetros de precio inválidos")
	ErrInvalidDuration     = errors.New("la duración está fuera de los límites del servicio")
	ErrInvalidDates        = errors.New("la fecha de fin debe ser posterior a la fecha de inicio")
	ErrInvalidPayment      = errors.New("pago inválido: el monto debe ser positivo y el concepto no puede estar vacío")
	ErrInvalidScore        = errors.New("la calificación debe estar entre 1 y 5")
)

// Errores de consistencia de estado (indican un error de orden en el caller)
var (
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrHiringNotCompleted = errors.New("solo se pueden calificar contrataciones completadas")
	ErrAlreadyRated       = errors.New("la contratación ya fue calificada")
)

// Errores de autorización
var (
	ErrNotClient    = errors.New("solo el cliente puede calificar esta contratación")
	ErrNoAutorizado = errors.New("no autorizado para operar sobre esta contratación")
)
