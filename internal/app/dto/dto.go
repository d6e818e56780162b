package dto

import "time"

// ============ Estructuras comunes ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Servicios ============

type ServiceResponse struct {
	ID                   uint    `json:"id"`
	ProveedorID          uint    `json:"proveedor_id"`
	Titulo               string  `json:"titulo"`
	Descripcion          string  `json:"descripcion"`
	Categoria            string  `json:"categoria"`
	Precio               float64 `json:"precio"`
	UnidadTiempo         string  `json:"unidad_tiempo"`
	DuracionMinima       int     `json:"duracion_minima"`
	DuracionMaxima       int     `json:"duracion_maxima"`
	Modalidad            string  `json:"modalidad"`
	Ciudad               string  `json:"ciudad"`
	ImageURL             string  `json:"image_url,omitempty"`
	CalificacionPromedio float64 `json:"calificacion_promedio"`
	NumeroCalificaciones int     `json:"numero_calificaciones"`
	NumeroContrataciones int     `json:"numero_contrataciones"`
	ComisionPlataforma   float64 `json:"comision_plataforma"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type CreateServiceRequest struct {
	Titulo         string  `json:"titulo" binding:"required,max=100"`
	Descripcion    string  `json:"descripcion" binding:"max=1000"`
	Categoria      string  `json:"categoria" binding:"required,oneof=limpieza reparaciones jardineria cocina transporte cuidado_personal tecnologia educacion otros"`
	Precio         float64 `json:"precio" binding:"required,gt=0"`
	UnidadTiempo   string  `json:"unidad_tiempo" binding:"required,oneof=hora dia semana mes proyecto"`
	DuracionMinima int     `json:"duracion_minima" binding:"required,gte=1"`
	DuracionMaxima int     `json:"duracion_maxima" binding:"required,gtefield=DuracionMinima"`
	Modalidad      string  `json:"modalidad" binding:"omitempty,oneof=presencial remoto hibrido"`
	Direccion      string  `json:"direccion"`
	Ciudad         string  `json:"ciudad"`
	Provincia      string  `json:"provincia"`
	CodigoPostal   string  `json:"codigo_postal"`
	Comision       float64 `json:"comision_plataforma" binding:"omitempty,gte=0,lte=50"`
}

type UpdateServiceRequest struct {
	Titulo         string   `json:"titulo" binding:"omitempty,max=100"`
	Descripcion    string   `json:"descripcion" binding:"omitempty,max=1000"`
	Precio         *float64 `json:"precio" binding:"omitempty,gt=0"`
	DuracionMinima *int     `json:"duracion_minima" binding:"omitempty,gte=1"`
	DuracionMaxima *int     `json:"duracion_maxima" binding:"omitempty,gte=1"`
	Disponible     *bool    `json:"disponible"`
	Comision       *float64 `json:"comision_plataforma" binding:"omitempty,gte=0,lte=50"`
}

type CalculatePriceRequest struct {
	Duracion int `json:"duracion" binding:"required,gte=1"`
}

type PriceBreakdownResponse struct {
	PrecioBase         float64 `json:"precio_base"`
	ComisionPlataforma float64 `json:"comision_plataforma"`
	ComisionMonto      float64 `json:"comision_monto"`
	PrecioTotal        float64 `json:"precio_total"`
	PrecioFinal        float64 `json:"precio_final"`
	PrecioProveedor    float64 `json:"precio_proveedor"`
}

// ============ Contrataciones ============

type CreateHiringRequest struct {
	ServicioID  uint      `json:"servicio_id" binding:"required"`
	FechaInicio time.Time `json:"fecha_inicio" binding:"required"`
	FechaFin    time.Time `json:"fecha_fin" binding:"required"`
	Duracion    int       `json:"duracion" binding:"required,gte=1"`
	MetodoPago  string    `json:"metodo_pago" binding:"required,oneof=efectivo transferencia tarjeta paypal stripe"`
	Notas       string    `json:"notas" binding:"max=500"`
}

type ChangeStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type AddPaymentRequest struct {
	Monto         float64 `json:"monto" binding:"required"`
	Concepto      string  `json:"concepto" binding:"required,max=200"`
	Comprobante   string  `json:"comprobante"`
	TransactionID string  `json:"transaction_id"`
}

type RateHiringRequest struct {
	Puntuacion int    `json:"puntuacion" binding:"required"`
	Comentario string `json:"comentario" binding:"max=500"`
}

type PaymentResponse struct {
	Fecha         time.Time `json:"fecha"`
	Monto         float64   `json:"monto"`
	Concepto      string    `json:"concepto"`
	Comprobante   string    `json:"comprobante,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
}

type RatingResponse struct {
	Puntuacion int        `json:"puntuacion"`
	Comentario string     `json:"comentario,omitempty"`
	Fecha      *time.Time `json:"fecha,omitempty"`
}

type HiringResponse struct {
	ID          uint      `json:"id"`
	ServicioID  uint      `json:"servicio_id"`
	ClienteID   uint      `json:"cliente_id"`
	ProveedorID uint      `json:"proveedor_id"`
	FechaInicio time.Time `json:"fecha_inicio"`
	FechaFin    time.Time `json:"fecha_fin"`
	Duracion    int       `json:"duracion"`

	PrecioBase         float64 `json:"precio_base"`
	ComisionPlataforma float64 `json:"comision_plataforma"`
	ComisionMonto      float64 `json:"comision_monto"`
	PrecioTotal        float64 `json:"precio_total"`
	PrecioFinal        float64 `json:"precio_final"`
	PrecioProveedor    float64 `json:"precio_proveedor"`

	Estado        string     `json:"estado"`
	MetodoPago    string     `json:"metodo_pago"`
	Notas         string     `json:"notas,omitempty"`
	PagoRealizado bool       `json:"pago_realizado"`
	FechaPago     *time.Time `json:"fecha_pago,omitempty"`
	TotalPagado   float64    `json:"total_pagado"`

	Pagos        []PaymentResponse `json:"pagos,omitempty"`
	Calificacion *RatingResponse   `json:"calificacion,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type HiringListResponse struct {
	Hirings []HiringResponse `json:"hirings"`
	Total   int              `json:"total"`
}

// ============ Usuarios ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Role     int    `json:"role"` // 0 cliente, 1 proveedor, 2 admin
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Telefono string `json:"telefono"`
	Role     int    `json:"role"` // 0 cliente, 1 proveedor
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Telefono string `json:"telefono"`
	Password string `json:"password" binding:"omitempty,min=6"`
}
