package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"serviapp/internal/app/ds"
	"serviapp/internal/app/dto"
	"serviapp/internal/app/hiring"
	"serviapp/internal/app/repository"
	"serviapp/internal/app/role"
)

func (h *APIHandler) serviceResponse(s *ds.Service) dto.ServiceResponse {
	resp := dto.ServiceResponse{
		ID:                   s.ID,
		ProveedorID:          s.ProveedorID,
		Titulo:               s.Titulo,
		Descripcion:          s.Descripcion,
		Categoria:            s.Categoria,
		Precio:               s.Precio,
		UnidadTiempo:         s.UnidadTiempo,
		DuracionMinima:       s.DuracionMinima,
		DuracionMaxima:       s.DuracionMaxima,
		Modalidad:            s.Modalidad,
		Ciudad:               s.Ciudad,
		CalificacionPromedio: s.CalificacionPromedio,
		NumeroCalificaciones: s.NumeroCalificaciones,
		NumeroContrataciones: s.NumeroContrataciones,
		ComisionPlataforma:   s.ComisionPlataforma,
	}

	// URL temporal de la imagen en MinIO
	if s.ImageURL != nil && *s.ImageURL != "" && h.MinIOClient != nil {
		if url, err := h.MinIOClient.GetFileURL(*s.ImageURL); err == nil {
			resp.ImageURL = url
		}
	}

	return resp
}

// GetServices lista los servicios publicados
// @Summary Listado de servicios
// @Description Devuelve los servicios disponibles con filtros por texto, categoría, ciudad y rango de precio
// @Tags Services
// @Produce json
// @Param query query string false "Búsqueda por título o descripción"
// @Param categoria query string false "Categoría del servicio"
// @Param ciudad query string false "Ciudad"
// @Param precio_min query number false "Precio mínimo"
// @Param precio_max query number false "Precio máximo"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	filters := repository.ServiceFilters{
		Query:     c.Query("query"),
		Categoria: c.Query("categoria"),
		Ciudad:    c.Query("ciudad"),
	}
	if v := c.Query("precio_min"); v != "" {
		filters.PrecioMin, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("precio_max"); v != "" {
		filters.PrecioMax, _ = strconv.ParseFloat(v, 64)
	}

	services, err := h.Repository.GetServices(filters)
	if err != nil {
		logrus.Error("Error getting services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al obtener los servicios")
		return
	}

	dtoServices := make([]dto.ServiceResponse, len(services))
	for i := range services {
		dtoServices[i] = h.serviceResponse(&services[i])
	}

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	})
}

// GetService devuelve un servicio
// @Summary Detalle de servicio
// @Description Devuelve la información completa de un servicio
// @Tags Services
// @Produce json
// @Param id path int true "ID del servicio"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *APIHandler) GetService(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de servicio inválido")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	c.JSON(http.StatusOK, h.serviceResponse(service))
}

// CalculateServicePrice cotiza un servicio sin contratarlo
// @Summary Cotización de servicio
// @Description Calcula el desglose de precios de un servicio para una duración dada, sin crear ninguna contratación
// @Tags Services
// @Accept json
// @Produce json
// @Param id path int true "ID del servicio"
// @Param request body dto.CalculatePriceRequest true "Duración a cotizar"
// @Success 200 {object} dto.PriceBreakdownResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/calculate-price [post]
func (h *APIHandler) CalculateServicePrice(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de servicio inválido")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	var request dto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	snapshot := hiring.ServiceSnapshot{
		ID:             service.ID,
		ProveedorID:    service.ProveedorID,
		Precio:         service.Precio,
		UnidadTiempo:   service.UnidadTiempo,
		DuracionMinima: service.DuracionMinima,
		DuracionMaxima: service.DuracionMaxima,
		Comision:       service.ComisionPlataforma,
	}

	b, err := hiring.EstimatePrice(snapshot, request.Duracion)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, fmt.Sprintf(
			"La duración debe estar entre %d y %d %s",
			service.DuracionMinima, service.DuracionMaxima, service.UnidadTiempo))
		return
	}

	c.JSON(http.StatusOK, dto.PriceBreakdownResponse{
		PrecioBase:         b.PrecioBase,
		ComisionPlataforma: b.ComisionPlataforma,
		ComisionMonto:      b.ComisionMonto,
		PrecioTotal:        b.PrecioTotal,
		PrecioFinal:        b.PrecioFinal,
		PrecioProveedor:    b.PrecioProveedor,
	})
}

// GetServicesByProvider lista los servicios de un proveedor
// @Summary Servicios por proveedor
// @Description Devuelve los servicios activos publicados por un proveedor
// @Tags Services
// @Produce json
// @Param providerId path int true "ID del proveedor"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/services/provider/{providerId} [get]
func (h *APIHandler) GetServicesByProvider(c *gin.Context) {
	idStr := c.Param("providerId")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de proveedor inválido")
		return
	}

	services, err := h.Repository.GetServicesByProvider(uint(id))
	if err != nil {
		logrus.Error("Error getting provider services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al obtener los servicios")
		return
	}

	dtoServices := make([]dto.ServiceResponse, len(services))
	for i := range services {
		dtoServices[i] = h.serviceResponse(&services[i])
	}

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	})
}

// CreateService crea un servicio nuevo
// @Summary Creación de servicio
// @Description Publica un servicio nuevo del proveedor autenticado
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Datos del servicio"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *APIHandler) CreateService(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	comision := request.Comision
	if comision == 0 {
		comision = 10 // comisión por defecto de la plataforma
	}
	modalidad := request.Modalidad
	if modalidad == "" {
		modalidad = "presencial"
	}

	service := ds.Service{
		ProveedorID:        userID,
		Titulo:             request.Titulo,
		Descripcion:        request.Descripcion,
		Categoria:          request.Categoria,
		Precio:             request.Precio,
		UnidadTiempo:       request.UnidadTiempo,
		DuracionMinima:     request.DuracionMinima,
		DuracionMaxima:     request.DuracionMaxima,
		Modalidad:          modalidad,
		Direccion:          request.Direccion,
		Ciudad:             request.Ciudad,
		Provincia:          request.Provincia,
		CodigoPostal:       request.CodigoPostal,
		Disponible:         true,
		IsActive:           true,
		ComisionPlataforma: comision,
	}

	if err := h.Repository.CreateService(&service); err != nil {
		logrus.Error("Error creating service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al crear el servicio")
		return
	}

	c.JSON(http.StatusCreated, h.serviceResponse(&service))
}

// UpdateService modifica un servicio
// @Summary Actualización de servicio
// @Description Modifica un servicio propio (o cualquiera si es admin). Cambiar la comisión no afecta contrataciones existentes.
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del servicio"
// @Param request body dto.UpdateServiceRequest true "Campos a actualizar"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [put]
func (h *APIHandler) UpdateService(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de servicio inválido")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	if userRole != role.Admin && service.ProveedorID != userID {
		h.errorResponse(c, http.StatusForbidden, "Solo el proveedor puede modificar su servicio")
		return
	}

	var request dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	if request.Titulo != "" {
		service.Titulo = request.Titulo
	}
	if request.Descripcion != "" {
		service.Descripcion = request.Descripcion
	}
	if request.Precio != nil {
		service.Precio = *request.Precio
	}
	if request.DuracionMinima != nil {
		service.DuracionMinima = *request.DuracionMinima
	}
	if request.DuracionMaxima != nil {
		service.DuracionMaxima = *request.DuracionMaxima
	}
	if service.DuracionMaxima < service.DuracionMinima {
		h.errorResponse(c, http.StatusBadRequest, "La duración máxima debe ser mayor o igual a la mínima")
		return
	}
	if request.Disponible != nil {
		service.Disponible = *request.Disponible
	}
	if request.Comision != nil {
		service.ComisionPlataforma = *request.Comision
	}

	if err := h.Repository.UpdateService(service); err != nil {
		logrus.Error("Error updating service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al actualizar el servicio")
		return
	}

	c.JSON(http.StatusOK, h.serviceResponse(service))
}

// DeleteService elimina (lógicamente) un servicio
// @Summary Eliminación de servicio
// @Description Borrado lógico de un servicio propio (o cualquiera si es admin)
// @Tags Services
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del servicio"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *APIHandler) DeleteService(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de servicio inválido")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	if userRole != role.Admin && service.ProveedorID != userID {
		h.errorResponse(c, http.StatusForbidden, "Solo el proveedor puede eliminar su servicio")
		return
	}

	if err := h.Repository.DeleteService(uint(id)); err != nil {
		logrus.Error("Error deleting service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al eliminar el servicio")
		return
	}

	h.successResponse(c, http.StatusOK, "Servicio eliminado correctamente", nil)
}

// UploadServiceImage sube la imagen de un servicio
// @Summary Imagen de servicio
// @Description Sube una imagen a MinIO y la asocia al servicio
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID del servicio"
// @Param image formData file true "Imagen del servicio"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/services/{id}/image [post]
func (h *APIHandler) UploadServiceImage(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Error de autorización")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "ID de servicio inválido")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	if userRole != role.Admin && service.ProveedorID != userID {
		h.errorResponse(c, http.StatusForbidden, "Solo el proveedor puede subir imágenes de su servicio")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Falta el archivo de imagen")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Error al leer el archivo")
		return
	}

	// Si había imagen anterior la borramos del bucket
	if service.ImageURL != nil && *service.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*service.ImageURL); err != nil {
			logrus.Warn("Error deleting old image: ", err)
		}
	}

	filename, err := h.MinIOClient.UploadFile(fileData, header.Filename)
	if err != nil {
		logrus.Error("Error uploading image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al subir la imagen")
		return
	}

	if err := h.Repository.UpdateServiceImage(uint(id), filename); err != nil {
		logrus.Error("Error saving image name: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al guardar la imagen")
		return
	}

	h.successResponse(c, http.StatusOK, "Imagen subida correctamente", gin.H{"image": filename})
}
