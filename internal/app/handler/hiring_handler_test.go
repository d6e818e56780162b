package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"serviapp/internal/app/ds"
	"serviapp/internal/app/hiring"
	"serviapp/internal/app/role"
)

func TestCoreErrorStatus(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		status int
	}{
		{"no autorizado", hiring.ErrNoAutorizado, http.StatusForbidden},
		{"no es el cliente", hiring.ErrNotClient, http.StatusForbidden},
		{"transición inválida", hiring.ErrInvalidTransition, http.StatusConflict},
		{"ya calificada", hiring.ErrAlreadyRated, http.StatusConflict},
		{"no encontrada", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"pago inválido", hiring.ErrInvalidPayment, http.StatusBadRequest},
		{"puntuación inválida", hiring.ErrInvalidScore, http.StatusBadRequest},
		{"no completada", hiring.ErrHiringNotCompleted, http.StatusBadRequest},
		{"otro error", errors.New("boom"), http.StatusBadRequest},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.status, coreErrorStatus(c.err))
		})
	}
}

func TestPuedeVer(t *testing.T) {
	h := &ds.Hiring{ClienteID: 20, ProveedorID: 30}

	assert.True(t, puedeVer(h, 20, role.Cliente))
	assert.True(t, puedeVer(h, 30, role.Proveedor))
	assert.True(t, puedeVer(h, 99, role.Admin))
	assert.False(t, puedeVer(h, 99, role.Cliente))
	assert.False(t, puedeVer(h, 99, role.Proveedor))
}
