// internal/servicoagendado/repository.go
package servicoagendado

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

// CreateInBatch cria os serviços do agendamento de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(servicos []*ServicoAgendado) error {
	if len(servicos) == 0 {
		return nil
	}
	return r.DB.Create(servicos).Error
}

func (r *Repository) FindByID(id uint) (*ServicoAgendado, error) {
	var s ServicoAgendado
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByAgendamento devolve os serviços na ordem de inserção.
func (r *Repository) ListByAgendamento(agendamentoID uint) ([]ServicoAgendado, error) {
	var servicos []ServicoAgendado
	err := r.DB.
		Where("agendamento_id = ?", agendamentoID).
		Order("id ASC").
		Find(&servicos).Error
	return servicos, err
}

func (r *Repository) ListByColaborador(colaboradorID uint) ([]ServicoAgendado, error) {
	var servicos []ServicoAgendado
	err := r.DB.
		Where("colaborador_id = ?", colaboradorID).
		Order("id ASC").
		Find(&servicos).Error
	return servicos, err
}

func (r *Repository) Update(s *ServicoAgendado) error {
	return r.DB.Save(s).Error
}

// CountNaoTerminais conta os serviços de um agendamento que ainda estão
// "Agendado". Usado pelo pai antes de concluir ou cancelar.
func (r *Repository) CountNaoTerminais(agendamentoID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&ServicoAgendado{}).
		Where("agendamento_id = ? AND status = ?", agendamentoID, status.Agendado).
		Count(&n).Error
	return n, err
}

// TemComissao informa se já existe comissão calculada para o serviço.
// Consulta direto a tabela do ledger para não acoplar os pacotes.
func (r *Repository) TemComissao(servicoID uint) (bool, error) {
	var n int64
	err := r.DB.Table("comissoes").
		Where("servico_agendado_id = ?", servicoID).
		Count(&n).Error
	return n > 0, err
}
