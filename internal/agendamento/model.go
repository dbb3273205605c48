// internal/agendamento/model.go
package agendamento

import (
	"time"

	"github.com/StudioBelle/api-salao/internal/servicoagendado"
	"github.com/StudioBelle/api-salao/internal/status"
	"gorm.io/gorm"
)

// Agendamento é a visita de um cliente: um conjunto ordenado e não vazio de
// serviços agendados, criados junto com o pai. O status do pai não cascateia
// para os filhos; concluir o agendamento exige que todos os serviços já
// estejam em estado terminal.
type Agendamento struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Data        time.Time     `gorm:"not null;index" json:"data"`
	Cliente     string        `gorm:"size:255" json:"cliente"`
	Status      status.Status `gorm:"size:50;not null;default:'Agendado';index" json:"status"`
	ConcluidoEm *time.Time    `json:"concluidoEm"`
	CanceladoEm *time.Time    `json:"canceladoEm"`

	Servicos []servicoagendado.ServicoAgendado `gorm:"foreignKey:AgendamentoID;constraint:OnDelete:CASCADE" json:"servicos"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (Agendamento) TableName() string { return "agendamentos" }

// Transicionar aplica a máquina de estados ao agendamento.
func (a *Agendamento) Transicionar(destino status.Status) error {
	quando, err := status.Transicionar(a.ID, a.Status, destino)
	if err != nil {
		return err
	}
	a.Status = destino
	switch destino {
	case status.Concluido:
		a.ConcluidoEm = &quando
	case status.Cancelado:
		a.CanceladoEm = &quando
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Agendamento{})
}
