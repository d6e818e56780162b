package ds

import "time"

// Estados de una contratación
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmada = "confirmada"
	EstadoEnProgreso = "en_progreso"
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
)

// Métodos de pago aceptados
const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
	PagoTarjeta       = "tarjeta"
	PagoPaypal        = "paypal"
	PagoStripe        = "stripe"
)

// 3. Tabla de contrataciones
//
// Los cuatro campos de precio se congelan al crear la contratación:
// ComisionPlataforma se copia del servicio y nunca se vuelve a leer
// del servicio vivo, aunque el proveedor la cambie después.
type Hiring struct {
	ID          uint `gorm:"primaryKey"`
	ServicioID  uint `gorm:"not null;index"`
	ClienteID   uint `gorm:"not null;index"`
	ProveedorID uint `gorm:"not null;index"`

	FechaInicio time.Time `gorm:"not null"`
	FechaFin    time.Time `gorm:"not null"`
	Duracion    int       `gorm:"type:int;not null"`

	PrecioBase         float64 `gorm:"type:decimal(12,2);not null"`
	ComisionPlataforma float64 `gorm:"type:decimal(5,2);not null"`
	PrecioTotal        float64 `gorm:"type:decimal(12,2);not null"`
	PrecioFinal        float64 `gorm:"type:decimal(12,2);not null"`

	Estado     string `gorm:"type:varchar(20);default:'pendiente';not null;index"`
	MetodoPago string `gorm:"type:varchar(20);not null"`
	Notas      string `gorm:"type:varchar(500)"`

	PagoRealizado bool       `gorm:"type:boolean;default:false;not null"`
	FechaPago     *time.Time `gorm:"default:null"` // se fija una sola vez, nunca se limpia

	// Calificación del cliente (como máximo una por contratación)
	CalifPuntuacion *int       `gorm:"type:int;default:null"`
	CalifComentario string     `gorm:"type:varchar(500)"`
	CalifFecha      *time.Time `gorm:"default:null"`

	Pagos []HiringPayment `gorm:"foreignKey:HiringID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Servicio  Service `gorm:"foreignKey:ServicioID"`
	Cliente   User    `gorm:"foreignKey:ClienteID"`
	Proveedor User    `gorm:"foreignKey:ProveedorID"`
}

// Calificada indica si la contratación ya tiene calificación registrada
func (h *Hiring) Calificada() bool {
	return h.CalifPuntuacion != nil
}

// EsTerminal indica si el estado actual es inmutable
func (h *Hiring) EsTerminal() bool {
	return h.Estado == EstadoCompletada || h.Estado == EstadoCancelada
}

// 4. Historial de pagos de una contratación (solo inserciones, nunca se
// modifica ni se elimina una entrada; los duplicados se conservan tal cual)
type HiringPayment struct {
	ID            uint      `gorm:"primaryKey"`
	HiringID      uint      `gorm:"not null;index"`
	Fecha         time.Time `gorm:"not null"`
	Monto         float64   `gorm:"type:decimal(12,2);not null"`
	Concepto      string    `gorm:"type:varchar(200);not null"`
	Comprobante   string    `gorm:"type:varchar(255)"`
	TransactionID string    `gorm:"type:varchar(100)"`
}
