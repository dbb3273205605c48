// internal/status/status.go
package status

import (
	"time"

	"github.com/StudioBelle/api-salao/internal/erros"
)

// Status de agendamentos e serviços agendados.
// "Concluído" e "Cancelado" são terminais: nenhuma transição sai deles.
type Status string

const (
	Agendado  Status = "Agendado"
	Concluido Status = "Concluído"
	Cancelado Status = "Cancelado"
)

// Valido informa se s é um dos três status conhecidos.
func Valido(s Status) bool {
	return s == Agendado || s == Concluido || s == Cancelado
}

// Terminal informa se s não admite mais transições.
func Terminal(s Status) bool {
	return s == Concluido || s == Cancelado
}

// Transicionar valida a mudança atual→destino e devolve o instante da
// transição. Únicas transições legais: Agendado→Concluído e
// Agendado→Cancelado.
func Transicionar(id uint, atual, destino Status) (time.Time, error) {
	if !Valido(destino) {
		return time.Time{}, erros.TransicaoInvalida(id, "status de destino desconhecido: "+string(destino))
	}
	if Terminal(atual) {
		return time.Time{}, erros.TransicaoInvalida(id, "registro já está em status terminal: "+string(atual))
	}
	if atual != Agendado || destino == Agendado {
		return time.Time{}, erros.TransicaoInvalida(id, "transição não permitida: "+string(atual)+" → "+string(destino))
	}
	return time.Now(), nil
}
