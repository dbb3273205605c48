// internal/servicoagendado/model.go
package servicoagendado

import (
	"time"

	"github.com/StudioBelle/api-salao/internal/status"
	"gorm.io/gorm"
)

// ServicoAgendado é um serviço individual dentro de um agendamento,
// executado por um colaborador a um preço efetivo (pode divergir do preço
// padrão do catálogo). O status é independente do status do agendamento pai.
type ServicoAgendado struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	AgendamentoID uint          `gorm:"not null;index" json:"agendamentoId"`
	ServicoID     uint          `gorm:"not null;index" json:"servicoId"`
	ColaboradorID uint          `gorm:"not null;index" json:"colaboradorId"`
	Preco         float64       `gorm:"not null" json:"preco"`
	Status        status.Status `gorm:"size:50;not null;default:'Agendado';index" json:"status"`
	ConcluidoEm   *time.Time    `json:"concluidoEm"`
	CanceladoEm   *time.Time    `json:"canceladoEm"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (ServicoAgendado) TableName() string { return "servicos_agendados" }

// Transicionar aplica a máquina de estados ao serviço e registra o
// timestamp da transição. Estados terminais são imutáveis.
func (s *ServicoAgendado) Transicionar(destino status.Status) error {
	quando, err := status.Transicionar(s.ID, s.Status, destino)
	if err != nil {
		return err
	}
	s.Status = destino
	switch destino {
	case status.Concluido:
		s.ConcluidoEm = &quando
	case status.Cancelado:
		s.CanceladoEm = &quando
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ServicoAgendado{})
}
