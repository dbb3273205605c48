// internal/servicoagendado/handler.go
package servicoagendado

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/StudioBelle/api-salao/internal/status"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /agendamentos/{id}/servicos
func (h *Handler) ListarPorAgendamento(w http.ResponseWriter, r *http.Request) {
	agID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de agendamento inválido", http.StatusBadRequest)
		return
	}

	servicos, err := h.Repo.ListByAgendamento(uint(agID))
	if err != nil {
		http.Error(w, "Erro ao buscar serviços agendados", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(servicos)
}

// GET /colaboradores/{id}/servicos-agendados
func (h *Handler) ListarPorColaborador(w http.ResponseWriter, r *http.Request) {
	colID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de colaborador inválido", http.StatusBadRequest)
		return
	}

	servicos, err := h.Repo.ListByColaborador(uint(colID))
	if err != nil {
		http.Error(w, "Erro ao buscar serviços do colaborador", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(servicos)
}

// PATCH /servicos-agendados/{id}/concluir
// Só muda o status; a comissão é calculada em chamada separada.
func (h *Handler) Concluir(w http.ResponseWriter, r *http.Request) {
	h.transicionar(w, r, status.Concluido)
}

// PATCH /servicos-agendados/{id}/cancelar
// Serviço que já gerou comissão não pode ser cancelado: o valor devido ao
// colaborador já foi derivado dele.
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	h.transicionar(w, r, status.Cancelado)
}

func (h *Handler) transicionar(w http.ResponseWriter, r *http.Request, destino status.Status) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de serviço agendado inválido", http.StatusBadRequest)
		return
	}

	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "serviço agendado não encontrado"))
		return
	}

	if destino == status.Cancelado {
		temComissao, err := h.Repo.TemComissao(s.ID)
		if err != nil {
			http.Error(w, "Erro ao verificar comissão do serviço", http.StatusInternalServerError)
			return
		}
		if temComissao {
			erros.Responder(w, erros.TransicaoInvalida(s.ID, "serviço com comissão calculada não pode ser cancelado"))
			return
		}
	}

	if err := s.Transicionar(destino); err != nil {
		erros.Responder(w, err)
		return
	}

	if err := h.Repo.Update(s); err != nil {
		http.Error(w, "Erro ao atualizar serviço agendado", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}
