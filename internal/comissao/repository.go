// internal/comissao/repository.go
package comissao

import (
	"time"

	"github.com/StudioBelle/api-salao/internal/erros"
	"gorm.io/gorm"
)

// Repository é o ledger de comissões: criação, consultas e o ciclo
// paga/não-paga em lote.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Comissao) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Comissao, error) {
	var c Comissao
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByServicoAgendado(servicoID uint) (*Comissao, error) {
	var c Comissao
	if err := r.DB.Where("servico_agendado_id = ?", servicoID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindPendentes devolve as comissões não pagas, da mais antiga para a mais
// recente.
func (r *Repository) FindPendentes() ([]Comissao, error) {
	var comissoes []Comissao
	err := r.DB.
		Where("paga = ?", false).
		Order("calculada_em ASC").
		Find(&comissoes).Error
	return comissoes, err
}

func (r *Repository) FindByColaborador(colaboradorID uint) ([]Comissao, error) {
	var comissoes []Comissao
	err := r.DB.
		Where("colaborador_id = ?", colaboradorID).
		Order("calculada_em ASC").
		Find(&comissoes).Error
	return comissoes, err
}

// Filtro do GET /comissoes. Datas filtram calculada_em.
type Filtro struct {
	Paga          *bool
	ColaboradorID uint
	Inicio        *time.Time
	Fim           *time.Time
}

func (r *Repository) Listar(f Filtro) ([]Comissao, error) {
	q := r.DB.Model(&Comissao{})
	if f.Paga != nil {
		q = q.Where("paga = ?", *f.Paga)
	}
	if f.ColaboradorID != 0 {
		q = q.Where("colaborador_id = ?", f.ColaboradorID)
	}
	if f.Inicio != nil {
		q = q.Where("calculada_em >= ?", *f.Inicio)
	}
	if f.Fim != nil {
		q = q.Where("calculada_em < ?", *f.Fim)
	}

	var comissoes []Comissao
	err := q.Order("calculada_em ASC").Find(&comissoes).Error
	return comissoes, err
}

// MarcarComoPagas marca o lote inteiro como pago numa única transação.
// Id inexistente aborta o lote todo apontando o id ofensor; comissão já
// paga é no-op. Devolve o lote completo atualizado, na ordem pedida.
func (r *Repository) MarcarComoPagas(ids []uint) ([]Comissao, error) {
	return r.marcar(ids, true)
}

// MarcarComoNaoPagas é o simétrico de MarcarComoPagas, com as mesmas
// garantias de atomicidade e idempotência. O valor nunca muda.
func (r *Repository) MarcarComoNaoPagas(ids []uint) ([]Comissao, error) {
	return r.marcar(ids, false)
}

func (r *Repository) marcar(ids []uint, paga bool) ([]Comissao, error) {
	if len(ids) == 0 {
		return []Comissao{}, nil
	}

	var resultado []Comissao
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existentes []Comissao
		if err := tx.Where("id IN ?", ids).Find(&existentes).Error; err != nil {
			return err
		}

		porID := make(map[uint]*Comissao, len(existentes))
		for i := range existentes {
			porID[existentes[i].ID] = &existentes[i]
		}
		for _, id := range ids {
			if _, ok := porID[id]; !ok {
				return erros.NaoEncontrado(id, "comissão não encontrada; lote não aplicado")
			}
		}

		updates := map[string]interface{}{"paga": paga}
		if paga {
			updates["paga_em"] = time.Now()
		} else {
			updates["paga_em"] = nil
		}
		if err := tx.Model(&Comissao{}).
			Where("id IN ? AND paga = ?", ids, !paga).
			Updates(updates).Error; err != nil {
			return err
		}

		var atualizadas []Comissao
		if err := tx.Where("id IN ?", ids).Find(&atualizadas).Error; err != nil {
			return err
		}
		atualPorID := make(map[uint]Comissao, len(atualizadas))
		for _, c := range atualizadas {
			atualPorID[c.ID] = c
		}
		resultado = make([]Comissao, 0, len(ids))
		vistos := make(map[uint]bool, len(ids))
		for _, id := range ids {
			if vistos[id] {
				continue
			}
			vistos[id] = true
			resultado = append(resultado, atualPorID[id])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}
