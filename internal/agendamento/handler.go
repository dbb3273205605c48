// internal/agendamento/handler.go
package agendamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/StudioBelle/api-salao/internal/servico"
	"github.com/StudioBelle/api-salao/internal/servicoagendado"
	"github.com/StudioBelle/api-salao/internal/status"
	"github.com/StudioBelle/api-salao/internal/utils"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// POST /agendamentos
// Cria o agendamento e seus serviços numa transação só.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CreateAgendamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	data, err := parseData(dto.Data)
	if err != nil {
		erros.Responder(w, erros.Validacao("data", "data deve ser ISO-8601"))
		return
	}
	if len(dto.Servicos) == 0 {
		erros.Responder(w, erros.Validacao("servicos", "agendamento precisa de ao menos um serviço"))
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			http.Error(w, "Falha interna", http.StatusInternalServerError)
		}
	}()

	ag := Agendamento{
		Data:    data,
		Cliente: utils.NormalizarString(dto.Cliente),
		Status:  status.Agendado,
	}
	if err := tx.Create(&ag).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar agendamento", http.StatusInternalServerError)
		return
	}

	catalogo := servico.NewRepository(tx)
	servicos := make([]*servicoagendado.ServicoAgendado, 0, len(dto.Servicos))
	for _, item := range dto.Servicos {
		s, err := catalogo.FindByID(item.ServicoID)
		if err != nil {
			_ = tx.Rollback()
			erros.Responder(w, erros.NaoEncontrado(item.ServicoID, "serviço do catálogo não encontrado"))
			return
		}
		preco := item.Preco
		if preco == 0 {
			preco = s.PrecoPadrao
		}
		if preco <= 0 {
			_ = tx.Rollback()
			erros.Responder(w, erros.Validacao("preco", "preço do serviço deve ser maior que zero"))
			return
		}
		servicos = append(servicos, &servicoagendado.ServicoAgendado{
			AgendamentoID: ag.ID,
			ServicoID:     item.ServicoID,
			ColaboradorID: item.ColaboradorID,
			Preco:         preco,
			Status:        status.Agendado,
		})
	}

	if err := servicoagendado.NewRepository(tx).CreateInBatch(servicos); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar serviços do agendamento", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	criado, err := h.Repo.FindByID(ag.ID)
	if err != nil {
		http.Error(w, "Erro ao carregar agendamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(criado)
}

// GET /agendamentos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	agendamentos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(agendamentos)
}

// GET /agendamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	ag, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "agendamento não encontrado"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ag)
}

// PATCH /agendamentos/{id}/concluir
func (h *Handler) Concluir(w http.ResponseWriter, r *http.Request) {
	h.transicionar(w, r, status.Concluido)
}

// PATCH /agendamentos/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	h.transicionar(w, r, status.Cancelado)
}

// transicionar fecha o agendamento. Não há cascata: todos os serviços
// filhos precisam já estar em estado terminal, senão a transição é
// rejeitada apontando o agendamento ofensor.
func (h *Handler) transicionar(w http.ResponseWriter, r *http.Request, destino status.Status) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	ag, err := h.Repo.FindByID(uint(id))
	if err != nil {
		erros.Responder(w, erros.NaoEncontrado(uint(id), "agendamento não encontrado"))
		return
	}

	pendentes, err := servicoagendado.NewRepository(h.Repo.DB).CountNaoTerminais(ag.ID)
	if err != nil {
		http.Error(w, "Erro ao verificar serviços do agendamento", http.StatusInternalServerError)
		return
	}
	if pendentes > 0 {
		erros.Responder(w, erros.TransicaoInvalida(ag.ID, "conclua ou cancele todos os serviços do agendamento primeiro"))
		return
	}

	if err := ag.Transicionar(destino); err != nil {
		erros.Responder(w, err)
		return
	}

	if err := h.Repo.Update(ag); err != nil {
		http.Error(w, "Erro ao atualizar agendamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ag)
}
