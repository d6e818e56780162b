package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"serviapp/internal/app/ds"
)

// Métodos para contrataciones

// HiringFilters son los filtros opcionales del listado
type HiringFilters struct {
	Estado      string
	FechaInicio *time.Time
	FechaFin    *time.Time
}

// CreateHiring persiste una contratación recién construida
func (r *Repository) CreateHiring(h *ds.Hiring) error {
	return r.db.Create(h).Error
}

// GetHiringByID devuelve una contratación con su historial de pagos
func (r *Repository) GetHiringByID(id uint) (*ds.Hiring, error) {
	var h ds.Hiring
	err := r.db.Preload("Pagos", func(db *gorm.DB) *gorm.DB {
		return db.Order("hiring_payments.id ASC")
	}).First(&h, id).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetHirings lista contrataciones. Un admin ve todas; cualquier otro
// usuario solo las suyas como cliente o proveedor.
func (r *Repository) GetHirings(userID uint, isAdmin bool, f HiringFilters) ([]ds.Hiring, error) {
	tx := r.db.Model(&ds.Hiring{})

	if !isAdmin {
		tx = tx.Where("cliente_id = ? OR proveedor_id = ?", userID, userID)
	}
	if f.Estado != "" {
		tx = tx.Where("estado = ?", f.Estado)
	}
	if f.FechaInicio != nil {
		tx = tx.Where("fecha_inicio >= ?", *f.FechaInicio)
	}
	if f.FechaFin != nil {
		tx = tx.Where("fecha_fin <= ?", *f.FechaFin)
	}

	var hirings []ds.Hiring
	err := tx.Preload("Pagos", func(db *gorm.DB) *gorm.DB {
		return db.Order("hiring_payments.id ASC")
	}).Order("created_at DESC").Find(&hirings).Error
	return hirings, err
}

// GetRatedHiringsByService devuelve las contrataciones hermanas de un
// servicio que ya tienen calificación (para recalcular el agregado)
func (r *Repository) GetRatedHiringsByService(servicioID uint) ([]ds.Hiring, error) {
	var hirings []ds.Hiring
	err := r.db.Where("servicio_id = ? AND calif_puntuacion IS NOT NULL", servicioID).
		Find(&hirings).Error
	return hirings, err
}

// WithHiringTx ejecuta una mutación sobre una contratación dentro de una
// transacción, tomando el registro con SELECT ... FOR UPDATE. Dos
// mutaciones concurrentes sobre el mismo ID se serializan acá: ninguna
// puede ver un total pagado, un estado o un agregado viejo.
func (r *Repository) WithHiringTx(id uint, fn func(tx *gorm.DB, h *ds.Hiring) error) (*ds.Hiring, error) {
	var result *ds.Hiring

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var h ds.Hiring
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Pagos", func(db *gorm.DB) *gorm.DB {
				return db.Order("hiring_payments.id ASC")
			}).
			First(&h, id).Error; err != nil {
			return err
		}

		if err := fn(tx, &h); err != nil {
			return err
		}

		result = &h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SaveHiring actualiza los campos mutables de la contratación dentro de
// la transacción abierta por WithHiringTx. Los pagos nuevos (ID cero) se
// insertan aparte: el historial es de solo inserciones.
func (r *Repository) SaveHiring(tx *gorm.DB, h *ds.Hiring) error {
	err := tx.Model(&ds.Hiring{}).
		Where("id = ?", h.ID).
		Updates(map[string]interface{}{
			"estado":           h.Estado,
			"pago_realizado":   h.PagoRealizado,
			"fecha_pago":       h.FechaPago,
			"calif_puntuacion": h.CalifPuntuacion,
			"calif_comentario": h.CalifComentario,
			"calif_fecha":      h.CalifFecha,
			"updated_at":       h.UpdatedAt,
		}).Error
	if err != nil {
		return err
	}

	for i := range h.Pagos {
		if h.Pagos[i].ID == 0 {
			h.Pagos[i].HiringID = h.ID
			if err := tx.Create(&h.Pagos[i]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
