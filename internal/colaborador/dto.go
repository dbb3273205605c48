package colaborador

// ResumoColaboradorDTO agrega a situação financeira de um colaborador a
// partir do ledger de comissões.
type ResumoColaboradorDTO struct {
	ID                 uint    `json:"id"`
	Nome               string  `json:"nome"`
	Telefone           string  `json:"telefone"`
	Area               string  `json:"area"`
	PercentualComissao float64 `json:"percentualComissao"`
	ServicosConcluidos int64   `json:"servicosConcluidos"`
	ComissaoRecebida   float64 `json:"comissaoRecebida"`
	ComissaoAReceber   float64 `json:"comissaoAReceber"`
}
