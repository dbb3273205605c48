// internal/agendamento/dto.go
package agendamento

// CreateAgendamentoDTO cria o agendamento junto com seus serviços, numa
// única transação. A lista de serviços não pode ser vazia.
type CreateAgendamentoDTO struct {
	Data     string             `json:"data"` // ISO-8601
	Cliente  string             `json:"cliente"`
	Servicos []CreateServicoDTO `json:"servicos"`
}

type CreateServicoDTO struct {
	ServicoID     uint    `json:"servicoId"`
	ColaboradorID uint    `json:"colaboradorId"`
	Preco         float64 `json:"preco"` // se 0, assume o preço padrão do catálogo
}
