package hiring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviapp/internal/app/ds"
)

func contratacionCompletada(clienteID uint) *ds.Hiring {
	return &ds.Hiring{ID: 1, ServicioID: 10, ClienteID: clienteID, ProveedorID: 30, Estado: ds.EstadoCompletada}
}

func TestRateAutorizacion(t *testing.T) {
	now := time.Now()

	// Otro usuario no puede calificar aunque la puntuación sea válida
	h := contratacionCompletada(20)
	err := Rate(h, 99, RatingInput{Puntuacion: 5}, now)
	assert.ErrorIs(t, err, ErrNotClient)
	assert.False(t, h.Calificada())
}

func TestRateEstadoInvalido(t *testing.T) {
	now := time.Now()

	h := contratacionCompletada(20)
	h.Estado = ds.EstadoEnProgreso
	err := Rate(h, 20, RatingInput{Puntuacion: 4}, now)
	assert.ErrorIs(t, err, ErrHiringNotCompleted)
}

func TestRatePuntuacionFueraDeRango(t *testing.T) {
	now := time.Now()

	for _, p := range []int{0, -1, 6, 100} {
		h := contratacionCompletada(20)
		err := Rate(h, 20, RatingInput{Puntuacion: p}, now)
		assert.ErrorIs(t, err, ErrInvalidScore)
	}
}

func TestRateUnaSolaVez(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	h := contratacionCompletada(20)
	require.NoError(t, Rate(h, 20, RatingInput{Puntuacion: 4, Comentario: "muy bien"}, now))
	require.True(t, h.Calificada())
	assert.Equal(t, 4, *h.CalifPuntuacion)
	assert.Equal(t, "muy bien", h.CalifComentario)
	assert.Equal(t, now, *h.CalifFecha)

	// El segundo intento no sobrescribe
	err := Rate(h, 20, RatingInput{Puntuacion: 1}, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyRated)
	assert.Equal(t, 4, *h.CalifPuntuacion)
}

func puntuada(p int) ds.Hiring {
	return ds.Hiring{CalifPuntuacion: &p}
}

func TestServiceRatingPromedio(t *testing.T) {
	hermanas := []ds.Hiring{puntuada(5), puntuada(4), puntuada(3)}

	promedio, cantidad := ServiceRating(hermanas)
	assert.Equal(t, 4.0, promedio)
	assert.Equal(t, 3, cantidad)

	// Una cuarta calificación de 2 baja el promedio a 3.5
	hermanas = append(hermanas, puntuada(2))
	promedio, cantidad = ServiceRating(hermanas)
	assert.Equal(t, 3.5, promedio)
	assert.Equal(t, 4, cantidad)
}

func TestServiceRatingIgnoraSinCalificar(t *testing.T) {
	hermanas := []ds.Hiring{
		puntuada(5),
		{Estado: ds.EstadoCompletada}, // completada pero sin calificación
		{Estado: ds.EstadoPendiente},
	}

	promedio, cantidad := ServiceRating(hermanas)
	assert.Equal(t, 5.0, promedio)
	assert.Equal(t, 1, cantidad)
}

func TestServiceRatingCuentaCanceladasCalificadas(t *testing.T) {
	// Una contratación calificada cuenta aunque después hubiera cambiado
	// de estado: el filtro es tener calificación, no el estado actual.
	cancelada := puntuada(2)
	cancelada.Estado = ds.EstadoCancelada

	promedio, cantidad := ServiceRating([]ds.Hiring{puntuada(4), cancelada})
	assert.Equal(t, 3.0, promedio)
	assert.Equal(t, 2, cantidad)
}

func TestServiceRatingVacio(t *testing.T) {
	promedio, cantidad := ServiceRating(nil)
	assert.Equal(t, 0.0, promedio)
	assert.Equal(t, 0, cantidad)
}
