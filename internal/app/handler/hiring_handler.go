package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"serviapp/internal/app/ds"
	"serviapp/internal/app/dto"
	"serviapp/internal/app/hiring"
	"serviapp/internal/app/repository"
	"serviapp/internal/app/role"
)

func hiringResponse(h *ds.Hiring) dto.HiringResponse {
	b := hiring.PriceBreakdown(h)

	resp := dto.HiringResponse{
		ID:          h.ID,
		ServicioID:  h.ServicioID,
		ClienteID:   h.ClienteID,
		ProveedorID: h.ProveedorID,
		FechaInicio: h.FechaInicio,
		FechaFin:    h.FechaFin,
		Duracion:    h.Duracion,

		PrecioBase:         b.PrecioBase,
		ComisionPlataforma: b.ComisionPlataforma,
		ComisionMonto:      b.ComisionMonto,
		PrecioTotal:        b.PrecioTotal,
		PrecioFinal:        b.PrecioFinal,
		PrecioProveedor:    b.PrecioProveedor,

		Estado:        h.Estado,
		MetodoPago:    h.MetodoPago,
		Notas:         h.Notas,
		PagoRealizado: h.PagoRealizado,
		FechaPago:     h.FechaPago,
		TotalPagado:   hiring.TotalPagado(h),

		CreatedAt: h.CreatedAt,
	}

	for _, p := range h.Pagos {
		resp.Pagos = append(resp.Pagos, dto.PaymentResponse{
			Fecha:         p.Fecha,
			Monto:         p.Monto,
			Concepto:      p.Concepto,
			Comprobante:   p.Comprobante,
			TransactionID: p.TransactionID,
		})
	}

	if h.CalifPuntuacion != nil {
		resp.Calificacion = &dto.RatingResponse{
			Puntuacion: *h.CalifPuntuacion,
			Comentario: h.CalifComentario,
			Fecha:      h.CalifFecha,
		}
	}

	return resp
}

// coreErrorStatus mapea los errores del ciclo de vida a códigos HTTP
func coreErrorStatus(err error) int {
	switch {
	case errors.Is(err, hiring.ErrNotClient),
		errors.Is(err, hiring.ErrNoAutorizado):
		return http.StatusForbidden
	case errors.Is(err, hiring.ErrInvalidTransition),
		errors.Is(err, hiring.ErrAlreadyRated):
		return http.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// puedeVer indica si el usuario tiene relación con la contratación
func puedeVer(h *ds.Hiring, userID uint, userRole role.Role) bool {
	return userRole == role.Admin || h.ClienteID == userID || h.ProveedorID == userID
}

// CreateHiring crea una contratación
// @Summary Creación de contratación
// @Description Contrata un servicio: valida la duración contra los límites del servicio y congela el desglose de precios con la comisión vigente
// @Tags Hirings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHiringRequest true "Datos de la contratación"
// @Success 201 {object} dto.HiringResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/hirings [post]
func (h *APIHandler) CreateHiring(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	var request dto.CreateHiringRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	service, err := h.Repository.GetServiceByID(request.ServicioID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	if service.ProveedorID == userID {
		h.errorResponse(c, http.StatusBadRequest, "No podés contratar tu propio servicio")
		return
	}

	// Snapshot de solo lectura del servicio: la comisión queda congelada acá
	snapshot := hiring.ServiceSnapshot{
		ID:             service.ID,
		ProveedorID:    service.ProveedorID,
		Precio:         service.Precio,
		UnidadTiempo:   service.UnidadTiempo,
		DuracionMinima: service.DuracionMinima,
		DuracionMaxima: service.DuracionMaxima,
		Comision:       service.ComisionPlataforma,
	}

	nueva, err := hiring.New(snapshot, userID, hiring.CreateInput{
		FechaInicio: request.FechaInicio,
		FechaFin:    request.FechaFin,
		Duracion:    request.Duracion,
		MetodoPago:  request.MetodoPago,
		Notas:       request.Notas,
	}, time.Now())
	if err != nil {
		h.errorResponse(c, coreErrorStatus(err), err.Error())
		return
	}

	if err := h.Repository.CreateHiring(nueva); err != nil {
		logrus.Error("Error creating hiring: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al crear la contratación")
		return
	}

	if err := h.Repository.IncrementServiceHirings(service.ID); err != nil {
		logrus.Warn("Error incrementing service hirings: ", err)
	}

	c.JSON(http.StatusCreated, hiringResponse(nueva))
}

// GetHirings lista contrataciones
// @Summary Listado de contrataciones
// @Description Un admin ve todas las contrataciones; los demás solo las propias. Filtros por estado y fechas.
// @Tags Hirings
// @Produce json
// @Security BearerAuth
// @Param estado query string false "Estado de la contratación"
// @Param fecha_inicio query string false "Desde (RFC3339)"
// @Param fecha_fin query string false "Hasta (RFC3339)"
// @Success 200 {object} dto.HiringListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/hirings [get]
func (h *APIHandler) GetHirings(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	filters := repository.HiringFilters{Estado: c.Query("estado")}
	if v := c.Query("fecha_inicio"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.FechaInicio = &t
		}
	}
	if v := c.Query("fecha_fin"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.FechaFin = &t
		}
	}

	hirings, err := h.Repository.GetHirings(userID, userRole == role.Admin, filters)
	if err != nil {
		logrus.Error("Error getting hirings: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al obtener las contrataciones")
		return
	}

	resp := dto.HiringListResponse{Total: len(hirings)}
	for i := range hirings {
		resp.Hirings = append(resp.Hirings, hiringResponse(&hirings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetMyHirings lista las contrataciones del usuario autenticado
// @Summary Mis contrataciones
// @Description Devuelve las contrataciones donde el usuario es cliente o proveedor
// @Tags Hirings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.HiringListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/hirings/my [get]
func (h *APIHandler) GetMyHirings(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	hirings, err := h.Repository.GetHirings(userID, false, repository.HiringFilters{})
	if err != nil {
		logrus.Error("Error getting user hirings: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al obtener las contrataciones")
		return
	}

	resp := dto.HiringListResponse{Total: len(hirings)}
	for i := range hirings {
		resp.Hirings = append(resp.Hirings, hiringResponse(&hirings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetHiring devuelve una contratación
// @Summary Detalle de contratación
// @Description Devuelve una contratación con su historial de pagos. Solo accesible para cliente, proveedor o admin.
// @Tags Hirings
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la contratación"
// @Success 200 {object} dto.HiringResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/hirings/{id} [get]
func (h *APIHandler) GetHiring(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de contratación inválido")
		return
	}

	hir, err := h.Repository.GetHiringByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Contratación no encontrada")
		return
	}

	if !puedeVer(hir, userID, userRole) {
		h.errorResponse(c, http.StatusForbidden, "No autorizado para ver esta contratación")
		return
	}

	c.JSON(http.StatusOK, hiringResponse(hir))
}

// UpdateHiringStatus cambia el estado de una contratación
// @Summary Cambio de estado
// @Description Aplica una transición de la máquina de estados. Los estados completada y cancelada son terminales.
// @Tags Hirings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la contratación"
// @Param request body dto.ChangeStatusRequest true "Estado solicitado"
// @Success 200 {object} dto.HiringResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/hirings/{id}/status [put]
func (h *APIHandler) UpdateHiringStatus(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de contratación inválido")
		return
	}

	var request dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	// La transición y la escritura van juntas, con el registro bloqueado
	result, err := h.Repository.WithHiringTx(uint(id), func(tx *gorm.DB, hir *ds.Hiring) error {
		if !puedeVer(hir, userID, userRole) {
			return hiring.ErrNoAutorizado
		}
		if err := hiring.ChangeStatus(hir, request.Estado, time.Now()); err != nil {
			return err
		}
		return h.Repository.SaveHiring(tx, hir)
	})
	if err != nil {
		if errors.Is(err, hiring.ErrNoAutorizado) {
			h.errorResponse(c, http.StatusForbidden, "No autorizado para actualizar esta contratación")
			return
		}
		logrus.Error("Error updating hiring status: ", err)
		h.errorResponse(c, coreErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, hiringResponse(result))
}

// AddPayment asienta un pago en el historial
// @Summary Registro de pago
// @Description Agrega una entrada al historial de pagos; si el total alcanza el precio final la contratación queda marcada como pagada
// @Tags Hirings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la contratación"
// @Param request body dto.AddPaymentRequest true "Datos del pago"
// @Success 200 {object} dto.HiringResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/hirings/{id}/payment [post]
func (h *APIHandler) AddPayment(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de contratación inválido")
		return
	}

	var request dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	result, err := h.Repository.WithHiringTx(uint(id), func(tx *gorm.DB, hir *ds.Hiring) error {
		// Solo el cliente (o un admin) asienta pagos
		if userRole != role.Admin && hir.ClienteID != userID {
			return hiring.ErrNoAutorizado
		}
		if err := hiring.AddPayment(hir, hiring.PaymentInput{
			Monto:         request.Monto,
			Concepto:      request.Concepto,
			Comprobante:   request.Comprobante,
			TransactionID: request.TransactionID,
		}, time.Now()); err != nil {
			return err
		}
		return h.Repository.SaveHiring(tx, hir)
	})
	if err != nil {
		if errors.Is(err, hiring.ErrNoAutorizado) {
			h.errorResponse(c, http.StatusForbidden, "No autorizado para agregar pagos a esta contratación")
			return
		}
		logrus.Error("Error adding payment: ", err)
		h.errorResponse(c, coreErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, hiringResponse(result))
}

// RateHiring califica una contratación completada
// @Summary Calificación de contratación
// @Description El cliente califica una contratación completada (una sola vez) y se recalcula el promedio del servicio
// @Tags Hirings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de la contratación"
// @Param request body dto.RateHiringRequest true "Puntuación y comentario"
// @Success 200 {object} dto.HiringResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/hirings/{id}/rate [post]
func (h *APIHandler) RateHiring(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de contratación inválido")
		return
	}

	var request dto.RateHiringRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	result, err := h.Repository.WithHiringTx(uint(id), func(tx *gorm.DB, hir *ds.Hiring) error {
		if err := hiring.Rate(hir, userID, hiring.RatingInput{
			Puntuacion: request.Puntuacion,
			Comentario: request.Comentario,
		}, time.Now()); err != nil {
			return err
		}
		return h.Repository.SaveHiring(tx, hir)
	})
	if err != nil {
		logrus.Error("Error rating hiring: ", err)
		h.errorResponse(c, coreErrorStatus(err), err.Error())
		return
	}

	// Recalculamos el agregado del servicio con todas las hermanas
	// calificadas. No es atómico con la escritura de arriba: se tolera
	// un promedio levemente viejo ante calificaciones concurrentes.
	hermanas, err := h.Repository.GetRatedHiringsByService(result.ServicioID)
	if err != nil {
		logrus.Error("Error loading rated hirings: ", err)
	} else {
		promedio, cantidad := hiring.ServiceRating(hermanas)
		if err := h.Repository.UpdateServiceRating(result.ServicioID, promedio, cantidad); err != nil {
			logrus.Error("Error updating service rating: ", err)
		}
	}

	c.JSON(http.StatusOK, hiringResponse(result))
}
