// internal/servico/model.go
package servico

import (
	"time"

	"gorm.io/gorm"
)

// Servico é um item do catálogo do salão. O preço padrão pode ser
// sobrescrito em cada serviço agendado.
type Servico struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Nome        string         `gorm:"size:255;not null" json:"nome"`
	PrecoPadrao float64        `gorm:"not null" json:"precoPadrao"`
	Descricao   string         `gorm:"size:500" json:"descricao"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (Servico) TableName() string { return "servicos" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Servico{})
}
