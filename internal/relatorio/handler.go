// internal/relatorio/handler.go
package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/StudioBelle/api-salao/internal/erros"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /relatorios/mensal?ano=2025&mes=9
func (h *Handler) Mensal(w http.ResponseWriter, r *http.Request) {
	ano, err := strconv.Atoi(r.URL.Query().Get("ano"))
	if err != nil {
		erros.Responder(w, erros.PeriodoInvalido("ano", "parâmetro 'ano' é obrigatório e numérico"))
		return
	}
	mes, err := strconv.Atoi(r.URL.Query().Get("mes"))
	if err != nil {
		erros.Responder(w, erros.PeriodoInvalido("mes", "parâmetro 'mes' é obrigatório e numérico"))
		return
	}

	rel, err := h.Repo.Mensal(ano, mes)
	if err != nil {
		erros.Responder(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rel)
}
