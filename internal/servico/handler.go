// internal/servico/handler.go
package servico

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/StudioBelle/api-salao/internal/utils"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func validar(s *Servico) error {
	if s.Nome == "" {
		return erros.Validacao("nome", "nome do serviço é obrigatório")
	}
	if s.PrecoPadrao <= 0 {
		return erros.Validacao("precoPadrao", "preço padrão deve ser maior que zero")
	}
	return nil
}

// POST /servicos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var s Servico
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	s.Nome = utils.NormalizarString(s.Nome)
	s.Descricao = utils.NormalizarString(s.Descricao)
	if err := validar(&s); err != nil {
		erros.Responder(w, err)
		return
	}

	if err := h.Repo.Create(&s); err != nil {
		http.Error(w, "Erro ao criar serviço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// GET /servicos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	servicos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao listar serviços", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(servicos)
}

// GET /servicos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "serviço não encontrado"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// PUT /servicos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "serviço não encontrado"))
		return
	}

	var body Servico
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = utils.NormalizarString(body.Nome)
	existente.PrecoPadrao = body.PrecoPadrao
	existente.Descricao = utils.NormalizarString(body.Descricao)
	if err := validar(existente); err != nil {
		erros.Responder(w, err)
		return
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar serviço", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /servicos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "serviço não encontrado"))
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "Erro ao deletar serviço", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
