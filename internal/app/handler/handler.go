package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"serviapp/internal/app/dto"
	"serviapp/internal/app/middleware"
	"serviapp/internal/app/repository"
	"serviapp/internal/app/role"
	"serviapp/internal/app/storage"
)

// APIHandler contiene los handlers del REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// RegisterAPIRoutes registra todas las rutas REST con su autorización
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Servicios: públicos y de proveedores ============
	services := api.Group("/services")
	{
		// Endpoints públicos (sin autorización)
		services.GET("", h.GetServices)
		services.GET("/provider/:providerId", h.GetServicesByProvider)
		services.GET("/:id", h.GetService)
		services.POST("/:id/calculate-price", h.CalculateServicePrice)

		// Gestión de servicios (proveedores y admin)
		services.POST("", authMiddleware.WithAuthCheck(role.Proveedor, role.Admin), h.CreateService)
		services.PUT("/:id", authMiddleware.WithAuthCheck(role.Proveedor, role.Admin), h.UpdateService)
		services.DELETE("/:id", authMiddleware.WithAuthCheck(role.Proveedor, role.Admin), h.DeleteService)
		services.POST("/:id/image", authMiddleware.WithAuthCheck(role.Proveedor, role.Admin), h.UploadServiceImage)
	}

	// ============ Contrataciones: usuarios autenticados ============
	hirings := api.Group("/hirings")
	hirings.Use(authMiddleware.WithAuthCheck(role.Cliente, role.Proveedor, role.Admin))
	{
		hirings.GET("", h.GetHirings)
		hirings.GET("/my", h.GetMyHirings)
		hirings.GET("/:id", h.GetHiring)
		hirings.POST("", h.CreateHiring)
		hirings.PUT("/:id/status", h.UpdateHiringStatus)
		hirings.POST("/:id/payment", h.AddPayment)
		hirings.POST("/:id/rate", h.RateHiring)
	}

	// ============ Autenticación ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Cliente, role.Proveedor, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Cliente, role.Proveedor, role.Admin), h.AuthHandler.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Cliente, role.Proveedor, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Endpoint de ping para monitoreo
	router.GET("/ping", h.Ping)
}

// Ping verifica que el API responde
// @Summary Verificación de servicio
// @Description Devuelve una respuesta simple para comprobar que el servidor está vivo
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}

// ============ Funciones auxiliares ============

// getUserFromContext obtiene el usuario autenticado del contexto
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Cliente, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}
