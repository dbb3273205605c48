// internal/comissao/dto.go
package comissao

// CalcularDTO identifica o alvo do cálculo com variante explícita:
// {"tipo":"servicoAgendado","id":N} ou {"tipo":"agendamento","id":N}.
type CalcularDTO struct {
	Tipo string `json:"tipo"`
	ID   uint   `json:"id"`
}

const (
	TipoServicoAgendado = "servicoAgendado"
	TipoAgendamento     = "agendamento"
)

// LoteDTO é o corpo de marcar-pagas / marcar-nao-pagas.
type LoteDTO struct {
	IDs []uint `json:"ids"`
}
