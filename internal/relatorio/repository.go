// internal/relatorio/repository.go
package relatorio

import (
	"time"

	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/StudioBelle/api-salao/internal/status"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// servicosDoMes filtra serviços concluídos cujo agendamento pai cai em
// [início do mês, início do mês seguinte).
func (r *Repository) servicosDoMes(inicio, fim time.Time) *gorm.DB {
	return r.DB.Table("servicos_agendados").
		Joins("JOIN agendamentos ON agendamentos.id = servicos_agendados.agendamento_id").
		Where("servicos_agendados.status = ?", string(status.Concluido)).
		Where("agendamentos.data >= ? AND agendamentos.data < ?", inicio, fim)
}

func (r *Repository) comissoesDoMes(inicio, fim time.Time, paga bool) *gorm.DB {
	return r.DB.Table("comissoes").
		Joins("JOIN servicos_agendados ON servicos_agendados.id = comissoes.servico_agendado_id").
		Joins("JOIN agendamentos ON agendamentos.id = servicos_agendados.agendamento_id").
		Where("servicos_agendados.status = ?", string(status.Concluido)).
		Where("agendamentos.data >= ? AND agendamentos.data < ?", inicio, fim).
		Where("comissoes.paga = ?", paga)
}

// Mensal monta o relatório do período. Tudo ou nada: período inválido não
// devolve relatório parcial.
func (r *Repository) Mensal(ano, mes int) (*RelatorioFinanceiro, error) {
	if mes < 1 || mes > 12 {
		return nil, erros.PeriodoInvalido("mes", "mês deve estar entre 1 e 12")
	}
	if ano < 1 {
		return nil, erros.PeriodoInvalido("ano", "ano inválido")
	}

	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0)

	var receita float64
	if err := r.servicosDoMes(inicio, fim).
		Select("COALESCE(SUM(servicos_agendados.preco), 0)").
		Scan(&receita).Error; err != nil {
		return nil, err
	}

	var pagas float64
	if err := r.comissoesDoMes(inicio, fim, true).
		Select("COALESCE(SUM(comissoes.valor), 0)").
		Scan(&pagas).Error; err != nil {
		return nil, err
	}

	var pendentes float64
	if err := r.comissoesDoMes(inicio, fim, false).
		Select("COALESCE(SUM(comissoes.valor), 0)").
		Scan(&pendentes).Error; err != nil {
		return nil, err
	}

	liquida, _ := decimal.NewFromFloat(receita).
		Sub(decimal.NewFromFloat(pagas)).
		Sub(decimal.NewFromFloat(pendentes)).
		Round(2).
		Float64()

	return &RelatorioFinanceiro{
		Ano:                ano,
		Mes:                mes,
		ReceitaTotal:       receita,
		ComissoesPagas:     pagas,
		ComissoesPendentes: pendentes,
		ReceitaLiquida:     liquida,
	}, nil
}
