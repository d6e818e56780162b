package repository

import (
	"gorm.io/gorm"

	"serviapp/internal/app/ds"
)

// Métodos para servicios

// ServiceFilters son los filtros opcionales del listado público
type ServiceFilters struct {
	Query     string
	Categoria string
	Ciudad    string
	PrecioMin float64
	PrecioMax float64
}

// GetServices lista los servicios disponibles y activos, con filtros
func (r *Repository) GetServices(f ServiceFilters) ([]ds.Service, error) {
	tx := r.db.Where("disponible = ? AND is_active = ?", true, true)

	if f.Query != "" {
		tx = tx.Where("titulo ILIKE ? OR descripcion ILIKE ?", "%"+f.Query+"%", "%"+f.Query+"%")
	}
	if f.Categoria != "" {
		tx = tx.Where("categoria = ?", f.Categoria)
	}
	if f.Ciudad != "" {
		tx = tx.Where("ciudad ILIKE ?", "%"+f.Ciudad+"%")
	}
	if f.PrecioMin > 0 {
		tx = tx.Where("precio >= ?", f.PrecioMin)
	}
	if f.PrecioMax > 0 {
		tx = tx.Where("precio <= ?", f.PrecioMax)
	}

	var services []ds.Service
	err := tx.Order("calificacion_promedio DESC").Find(&services).Error
	return services, err
}

// GetServicesByProvider lista los servicios activos de un proveedor
func (r *Repository) GetServicesByProvider(proveedorID uint) ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.Where("proveedor_id = ? AND is_active = ?", proveedorID, true).
		Order("created_at DESC").Find(&services).Error
	return services, err
}

// GetServiceByID devuelve un servicio activo por su ID
func (r *Repository) GetServiceByID(id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repository) CreateService(service *ds.Service) error {
	return r.db.Create(service).Error
}

func (r *Repository) UpdateService(service *ds.Service) error {
	return r.db.Save(service).Error
}

// DeleteService hace borrado lógico (is_active = false)
func (r *Repository) DeleteService(id uint) error {
	return r.db.Model(&ds.Service{}).Where("id = ?", id).Update("is_active", false).Error
}

// UpdateServiceImage guarda el nombre del objeto subido a MinIO
func (r *Repository) UpdateServiceImage(id uint, imageName string) error {
	return r.db.Model(&ds.Service{}).Where("id = ?", id).Update("image_url", imageName).Error
}

// UpdateServiceRating escribe el agregado de calificaciones recalculado
func (r *Repository) UpdateServiceRating(id uint, promedio float64, cantidad int) error {
	return r.db.Model(&ds.Service{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"calificacion_promedio": promedio,
			"numero_calificaciones": cantidad,
		}).Error
}

// IncrementServiceHirings suma una contratación al contador del servicio
func (r *Repository) IncrementServiceHirings(id uint) error {
	return r.db.Model(&ds.Service{}).
		Where("id = ?", id).
		UpdateColumn("numero_contrataciones", gorm.Expr("numero_contrataciones + 1")).Error
}
