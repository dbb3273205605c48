// internal/servico/repository.go
package servico

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(s *Servico) error {
	return r.DB.Create(s).Error
}

func (r *Repository) FindByID(id uint) (*Servico, error) {
	var s Servico
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListAll() ([]Servico, error) {
	var servicos []Servico
	err := r.DB.Order("nome ASC").Find(&servicos).Error
	return servicos, err
}

func (r *Repository) Update(s *Servico) error {
	return r.DB.Save(s).Error
}

func (r *Repository) Delete(s *Servico) error {
	return r.DB.Delete(s).Error
}
