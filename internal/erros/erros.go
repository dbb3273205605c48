// internal/erros/erros.go
package erros

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Tipo identifica a categoria da falha reportada ao chamador.
type Tipo string

const (
	TipoTransicaoInvalida   Tipo = "TRANSICAO_INVALIDA"
	TipoServicoNaoConcluido Tipo = "SERVICO_NAO_CONCLUIDO"
	TipoNaoEncontrado       Tipo = "NAO_ENCONTRADO"
	TipoPeriodoInvalido     Tipo = "PERIODO_INVALIDO"
	TipoValidacao           Tipo = "VALIDACAO"
)

// Erro é a falha estruturada do motor: tipo + id/campo ofensor.
// Nenhuma operação engole erros nem tenta retry interno.
type Erro struct {
	Tipo     Tipo   `json:"erro"`
	Mensagem string `json:"mensagem"`
	Campo    string `json:"campo,omitempty"`
	ID       uint   `json:"id,omitempty"`
}

func (e *Erro) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s (id=%d): %s", e.Tipo, e.ID, e.Mensagem)
	}
	if e.Campo != "" {
		return fmt.Sprintf("%s (campo=%s): %s", e.Tipo, e.Campo, e.Mensagem)
	}
	return fmt.Sprintf("%s: %s", e.Tipo, e.Mensagem)
}

// TransicaoInvalida indica uma mudança de status não permitida.
func TransicaoInvalida(id uint, mensagem string) *Erro {
	return &Erro{Tipo: TipoTransicaoInvalida, ID: id, Mensagem: mensagem}
}

// ServicoNaoConcluido indica comissão solicitada para serviço não concluído.
func ServicoNaoConcluido(id uint, mensagem string) *Erro {
	return &Erro{Tipo: TipoServicoNaoConcluido, ID: id, Mensagem: mensagem}
}

// NaoEncontrado indica referência a uma entidade inexistente.
func NaoEncontrado(id uint, mensagem string) *Erro {
	return &Erro{Tipo: TipoNaoEncontrado, ID: id, Mensagem: mensagem}
}

// PeriodoInvalido indica ano/mês fora do intervalo aceito pelos relatórios.
func PeriodoInvalido(campo, mensagem string) *Erro {
	return &Erro{Tipo: TipoPeriodoInvalido, Campo: campo, Mensagem: mensagem}
}

// Validacao indica entrada monetária ou percentual mal formada.
func Validacao(campo, mensagem string) *Erro {
	return &Erro{Tipo: TipoValidacao, Campo: campo, Mensagem: mensagem}
}

// EhTipo informa se err é um *Erro do tipo dado.
func EhTipo(err error, tipo Tipo) bool {
	e, ok := err.(*Erro)
	return ok && e.Tipo == tipo
}

func statusHTTP(tipo Tipo) int {
	switch tipo {
	case TipoNaoEncontrado:
		return http.StatusNotFound
	case TipoTransicaoInvalida, TipoServicoNaoConcluido:
		return http.StatusConflict
	case TipoPeriodoInvalido, TipoValidacao:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Responder escreve a falha como JSON estruturado na resposta HTTP.
// Erros que não são *Erro viram 500 genérico, sem vazar detalhes internos.
func Responder(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	if e, ok := err.(*Erro); ok {
		w.WriteHeader(statusHTTP(e.Tipo))
		_ = json.NewEncoder(w).Encode(e)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"erro": "INTERNO", "mensagem": "falha interna"})
}
