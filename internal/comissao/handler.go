// internal/comissao/handler.go
package comissao

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo        *Repository
	Calculadora *Calculadora
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:        NewRepository(db),
		Calculadora: NovaCalculadora(db),
	}
}

// POST /comissoes/calcular
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CalcularDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch dto.Tipo {
	case TipoServicoAgendado:
		com, err := h.Calculadora.ParaServico(dto.ID)
		if err != nil {
			erros.Responder(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(com)

	case TipoAgendamento:
		comissoes, err := h.Calculadora.ParaAgendamento(dto.ID)
		if err != nil {
			erros.Responder(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(comissoes)

	default:
		erros.Responder(w, erros.Validacao("tipo", "tipo deve ser 'servicoAgendado' ou 'agendamento'"))
	}
}

// GET /comissoes?paga=&colaboradorId=&inicio=&fim=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var f Filtro
	q := r.URL.Query()

	if v := q.Get("paga"); v != "" {
		paga, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "Parâmetro 'paga' inválido", http.StatusBadRequest)
			return
		}
		f.Paga = &paga
	}
	if v := q.Get("colaboradorId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Parâmetro 'colaboradorId' inválido", http.StatusBadRequest)
			return
		}
		f.ColaboradorID = uint(id)
	}
	if v := q.Get("inicio"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "Parâmetro 'inicio' deve ser ISO-8601", http.StatusBadRequest)
			return
		}
		f.Inicio = &t
	}
	if v := q.Get("fim"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "Parâmetro 'fim' deve ser ISO-8601", http.StatusBadRequest)
			return
		}
		f.Fim = &t
	}

	comissoes, err := h.Repo.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao listar comissões", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(comissoes)
}

// GET /comissoes/pendentes
func (h *Handler) ListarPendentes(w http.ResponseWriter, r *http.Request) {
	comissoes, err := h.Repo.FindPendentes()
	if err != nil {
		http.Error(w, "Erro ao listar comissões pendentes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(comissoes)
}

// GET /colaboradores/{id}/comissoes
func (h *Handler) ListarPorColaborador(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de colaborador inválido", http.StatusBadRequest)
		return
	}

	comissoes, err := h.Repo.FindByColaborador(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar comissões do colaborador", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(comissoes)
}

// POST /comissoes/marcar-pagas
func (h *Handler) MarcarPagas(w http.ResponseWriter, r *http.Request) {
	h.marcar(w, r, true)
}

// POST /comissoes/marcar-nao-pagas
func (h *Handler) MarcarNaoPagas(w http.ResponseWriter, r *http.Request) {
	h.marcar(w, r, false)
}

func (h *Handler) marcar(w http.ResponseWriter, r *http.Request, paga bool) {
	defer r.Body.Close()

	var dto LoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if len(dto.IDs) == 0 {
		erros.Responder(w, erros.Validacao("ids", "lote de comissões não pode ser vazio"))
		return
	}

	var (
		comissoes []Comissao
		err       error
	)
	if paga {
		comissoes, err = h.Repo.MarcarComoPagas(dto.IDs)
	} else {
		comissoes, err = h.Repo.MarcarComoNaoPagas(dto.IDs)
	}
	if err != nil {
		erros.Responder(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(comissoes)
}
