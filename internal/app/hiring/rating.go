package hiring

import (
	"time"

	"serviapp/internal/app/ds"
)

// RatingInput es la calificación que envía el cliente
type RatingInput struct {
	Puntuacion int
	Comentario string
}

// Rate registra la calificación del cliente sobre una contratación.
//
// Solo el cliente de la contratación puede calificar, solo cuando el
// estado es completada, y como máximo una vez: un segundo intento falla
// con ErrAlreadyRated, nunca sobrescribe en silencio.
func Rate(h *ds.Hiring, clienteID uint, in RatingInput, now time.Time) error {
	if clienteID != h.ClienteID {
		return ErrNotClient
	}
	if h.Estado != ds.EstadoCompletada {
		return ErrHiringNotCompleted
	}
	if in.Puntuacion < 1 || in.Puntuacion > 5 {
		return ErrInvalidScore
	}
	if h.Calificada() {
		return ErrAlreadyRated
	}

	p := in.Puntuacion
	h.CalifPuntuacion = &p
	h.CalifComentario = in.Comentario
	h.CalifFecha = &now
	h.UpdatedAt = now
	return nil
}

// ServiceRating recalcula el agregado de calificaciones de un servicio
// a partir de todas sus contrataciones hermanas.
//
// Cuenta toda contratación que tenga calificación, sin volver a filtrar
// por estado: calificar exige completada en ese momento, pero el estado
// podría cambiar después. Es un recorrido O(n) por evento de
// calificación; no se mantiene una suma incremental.
func ServiceRating(hermanas []ds.Hiring) (promedio float64, cantidad int) {
	var suma int
	for _, h := range hermanas {
		if h.CalifPuntuacion != nil {
			suma += *h.CalifPuntuacion
			cantidad++
		}
	}
	if cantidad == 0 {
		return 0, 0
	}
	return float64(suma) / float64(cantidad), cantidad
}
