package ds

import "time"

// 2. Tabla de servicios publicados por proveedores
type Service struct {
	ID             uint    `gorm:"primaryKey"`
	ProveedorID    uint    `gorm:"not null;index"`
	Titulo         string  `gorm:"type:varchar(100);not null"`
	Descripcion    string  `gorm:"type:varchar(1000)"`
	Categoria      string  `gorm:"type:varchar(50);not null"` // limpieza, reparaciones, jardineria, cocina, transporte, cuidado_personal, tecnologia, educacion, otros
	Precio         float64 `gorm:"type:decimal(12,2);not null"`
	UnidadTiempo   string  `gorm:"type:varchar(20);not null"` // hora, dia, semana, mes, proyecto
	DuracionMinima int     `gorm:"type:int;not null"`
	DuracionMaxima int     `gorm:"type:int;not null"`
	Modalidad      string  `gorm:"type:varchar(20);default:'presencial'"` // presencial, remoto, hibrido

	// Ubicación del servicio
	Direccion    string `gorm:"type:varchar(200)"`
	Ciudad       string `gorm:"type:varchar(100);index"`
	Provincia    string `gorm:"type:varchar(100)"`
	CodigoPostal string `gorm:"type:varchar(20)"`

	ImageURL   *string `gorm:"type:varchar(255)"` // objeto en MinIO, nullable
	Disponible bool    `gorm:"type:boolean;default:true;not null"`
	IsActive   bool    `gorm:"type:boolean;default:true;not null"`

	// Agregados de calificación y comisión de la plataforma
	CalificacionPromedio float64 `gorm:"type:decimal(3,2);default:0"`
	NumeroCalificaciones int     `gorm:"type:int;default:0"`
	NumeroContrataciones int     `gorm:"type:int;default:0"`
	ComisionPlataforma   float64 `gorm:"type:decimal(5,2);default:10"` // porcentaje 0-50

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Proveedor User `gorm:"foreignKey:ProveedorID"`
}
