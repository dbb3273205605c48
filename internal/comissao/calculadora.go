// internal/comissao/calculadora.go
package comissao

import (
	"time"

	"github.com/StudioBelle/api-salao/internal/colaborador"
	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/StudioBelle/api-salao/internal/servicoagendado"
	"github.com/StudioBelle/api-salao/internal/status"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalcularValor devolve preco × percentual / 100 arredondado para 2 casas
// (meio para cima). Toda a aritmética monetária passa por decimal; float64
// só aparece na borda de persistência.
func CalcularValor(preco, percentual float64) float64 {
	valor := decimal.NewFromFloat(preco).
		Mul(decimal.NewFromFloat(percentual)).
		Div(decimal.NewFromInt(100)).
		Round(2)
	f, _ := valor.Float64()
	return f
}

// Calculadora deriva comissões de serviços concluídos. Criação é
// idempotente: recalcular um serviço já comissionado devolve o registro
// existente sem tocar no valor.
type Calculadora struct {
	Comissoes     *Repository
	Servicos      *servicoagendado.Repository
	Colaboradores *colaborador.Repository
}

func NovaCalculadora(db *gorm.DB) *Calculadora {
	return &Calculadora{
		Comissoes:     NewRepository(db),
		Servicos:      servicoagendado.NewRepository(db),
		Colaboradores: colaborador.NewRepository(db),
	}
}

// ParaServico calcula (ou devolve) a comissão do serviço agendado dado.
// Exige status Concluído; nunca devolve comissão parcial ou zerada.
func (c *Calculadora) ParaServico(servicoID uint) (*Comissao, error) {
	s, err := c.Servicos.FindByID(servicoID)
	if err != nil {
		return nil, erros.NaoEncontrado(servicoID, "serviço agendado não encontrado")
	}
	return c.paraServico(s)
}

func (c *Calculadora) paraServico(s *servicoagendado.ServicoAgendado) (*Comissao, error) {
	if s.Status != status.Concluido {
		return nil, erros.ServicoNaoConcluido(s.ID, "comissão só pode ser calculada para serviço concluído")
	}

	// idempotência: no máximo uma comissão por serviço
	if existente, err := c.Comissoes.FindByServicoAgendado(s.ID); err == nil {
		return existente, nil
	}

	col, err := c.Colaboradores.FindByID(s.ColaboradorID)
	if err != nil {
		return nil, erros.NaoEncontrado(s.ColaboradorID, "colaborador do serviço não encontrado")
	}
	if col.PercentualComissao <= 0 || col.PercentualComissao > 100 {
		return nil, erros.Validacao("percentualComissao", "percentual de comissão deve estar entre 0 e 100")
	}
	if s.Preco <= 0 {
		return nil, erros.Validacao("preco", "preço do serviço deve ser maior que zero")
	}

	nova := &Comissao{
		ServicoAgendadoID: s.ID,
		ColaboradorID:     col.ID,
		Valor:             CalcularValor(s.Preco, col.PercentualComissao),
		Paga:              false,
		CalculadaEm:       time.Now(),
	}
	if err := c.Comissoes.Create(nova); err != nil {
		// corrida entre chamadas repetidas: o índice único barrou a segunda
		// inserção, então a comissão vencedora é a resposta certa.
		if existente, err2 := c.Comissoes.FindByServicoAgendado(s.ID); err2 == nil {
			return existente, nil
		}
		return nil, err
	}
	return nova, nil
}

// ParaAgendamento aplica o cálculo a cada serviço concluído do
// agendamento, na ordem de inserção. Serviços ainda agendados ou
// cancelados são pulados, não são erro.
func (c *Calculadora) ParaAgendamento(agendamentoID uint) ([]Comissao, error) {
	servicos, err := c.Servicos.ListByAgendamento(agendamentoID)
	if err != nil {
		return nil, err
	}
	if len(servicos) == 0 {
		return nil, erros.NaoEncontrado(agendamentoID, "agendamento sem serviços ou inexistente")
	}

	comissoes := make([]Comissao, 0, len(servicos))
	for i := range servicos {
		if servicos[i].Status != status.Concluido {
			continue
		}
		com, err := c.paraServico(&servicos[i])
		if err != nil {
			return nil, err
		}
		comissoes = append(comissoes, *com)
	}
	return comissoes, nil
}
