// internal/agendamento/repository.go
package agendamento

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) FindByID(id uint) (*Agendamento, error) {
	var a Agendamento
	if err := r.DB.Preload("Servicos", func(db *gorm.DB) *gorm.DB {
		return db.Order("servicos_agendados.id ASC")
	}).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListAll() ([]Agendamento, error) {
	var agendamentos []Agendamento
	err := r.DB.Preload("Servicos").Order("data DESC").Find(&agendamentos).Error
	return agendamentos, err
}

func (r *Repository) Update(a *Agendamento) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Delete(a *Agendamento) error {
	return r.DB.Delete(a).Error
}
