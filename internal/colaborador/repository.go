// internal/colaborador/repository.go
package colaborador

import (
	"github.com/StudioBelle/api-salao/internal/status"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Colaborador) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Colaborador, error) {
	var c Colaborador
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListAll() ([]Colaborador, error) {
	var colaboradores []Colaborador
	err := r.DB.Order("nome ASC").Find(&colaboradores).Error
	return colaboradores, err
}

func (r *Repository) Update(c *Colaborador) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(c *Colaborador) error {
	return r.DB.Delete(c).Error
}

// Resumo monta o DTO financeiro do colaborador somando direto nas tabelas
// do ledger, sem passar pelos repositórios de comissão.
func (r *Repository) Resumo(c *Colaborador) (*ResumoColaboradorDTO, error) {
	dto := &ResumoColaboradorDTO{
		ID:                 c.ID,
		Nome:               c.Nome,
		Telefone:           c.Telefone,
		Area:               c.Area,
		PercentualComissao: c.PercentualComissao,
	}

	if err := r.DB.Table("servicos_agendados").
		Where("colaborador_id = ? AND status = ?", c.ID, string(status.Concluido)).
		Count(&dto.ServicosConcluidos).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Table("comissoes").
		Where("colaborador_id = ? AND paga = ?", c.ID, true).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&dto.ComissaoRecebida).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Table("comissoes").
		Where("colaborador_id = ? AND paga = ?", c.ID, false).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&dto.ComissaoAReceber).Error; err != nil {
		return nil, err
	}

	return dto, nil
}
