// internal/comissao/model.go
package comissao

import (
	"time"

	"gorm.io/gorm"
)

// Comissao é o valor devido a um colaborador por um serviço concluído.
// Uma comissão por serviço, no máximo (índice único). O valor é imutável
// depois de criado; só o campo Paga muda ao longo da vida do registro.
type Comissao struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	ServicoAgendadoID uint       `gorm:"not null;uniqueIndex" json:"servicoAgendadoId"`
	ColaboradorID     uint       `gorm:"not null;index" json:"colaboradorId"`
	Valor             float64    `gorm:"not null" json:"valor"`
	Paga              bool       `gorm:"not null;default:false;index" json:"paga"`
	CalculadaEm       time.Time  `gorm:"not null;index" json:"calculadaEm"`
	PagaEm            *time.Time `json:"pagaEm"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func (Comissao) TableName() string { return "comissoes" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comissao{})
}
