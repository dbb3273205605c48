// internal/colaborador/model.go
package colaborador

import (
	"time"

	"gorm.io/gorm"
)

// Colaborador é um profissional do salão com percentual de comissão
// individual (0–100) aplicado sobre cada serviço concluído.
type Colaborador struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Nome               string         `gorm:"size:255;not null" json:"nome"`
	Telefone           string         `gorm:"size:50" json:"telefone"`
	Area               string         `gorm:"size:100" json:"area"`
	PercentualComissao float64        `gorm:"not null;default:0" json:"percentualComissao"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (Colaborador) TableName() string { return "colaboradores" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Colaborador{})
}
