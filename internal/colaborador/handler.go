// internal/colaborador/handler.go
package colaborador

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

func validar(c *Colaborador) error {
	if c.Nome == "" {
		return erros.Validacao("nome", "nome do colaborador é obrigatório")
	}
	if c.PercentualComissao <= 0 || c.PercentualComissao > 100 {
		return erros.Validacao("percentualComissao", "percentual de comissão deve estar entre 0 e 100")
	}
	return nil
}

// POST /colaboradores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Colaborador
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c.Nome = utils.NormalizarString(c.Nome)
	c.Area = utils.NormalizarString(c.Area)
	if err := validar(&c); err != nil {
		erros.Responder(w, err)
		return
	}

	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "Erro ao criar colaborador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /colaboradores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	colaboradores, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao listar colaboradores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(colaboradores)
}

// GET /colaboradores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "colaborador não encontrado"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// GET /colaboradores/{id}/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "colaborador não encontrado"))
		return
	}

	dto, err := h.Repo.Resumo(c)
	if err != nil {
		http.Error(w, "Erro ao montar resumo do colaborador", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}

// PUT /colaboradores/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "colaborador não encontrado"))
		return
	}

	var body Colaborador
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = utils.NormalizarString(body.Nome)
	existente.Telefone = utils.NormalizarString(body.Telefone)
	existente.Area = utils.NormalizarString(body.Area)
	existente.PercentualComissao = body.PercentualComissao
	if err := validar(existente); err != nil {
		erros.Responder(w, err)
		return
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar colaborador", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /colaboradores/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "colaborador não encontrado"))
		return
	}

	if err := h.Repo.Delete(existente); err != nil {
		http.Error(w, "Erro ao deletar colaborador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
