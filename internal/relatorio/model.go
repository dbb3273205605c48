// internal/relatorio/model.go
package relatorio

// RelatorioFinanceiro é um read-model derivado: recalculado por completo a
// cada chamada, nunca persistido nem cacheado.
type RelatorioFinanceiro struct {
	Ano                int     `json:"ano"`
	Mes                int     `json:"mes"`
	ReceitaTotal       float64 `json:"receitaTotal"`
	ComissoesPagas     float64 `json:"comissoesPagas"`
	ComissoesPendentes float64 `json:"comissoesPendentes"`
	ReceitaLiquida     float64 `json:"receitaLiquida"`
}
