package agendamento

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StudioBelle/api-salao/internal/servico"
	"github.com/StudioBelle/api-salao/internal/servicoagendado"
	"github.com/StudioBelle/api-salao/internal/status"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&servico.Servico{},
		&Agendamento{},
		&servicoagendado.ServicoAgendado{},
	))
	return db
}

func novoRouter(db *gorm.DB) *mux.Router {
	h := NewHandler(NewRepository(db))
	r := mux.NewRouter()
	r.HandleFunc("/agendamentos", h.Criar).Methods("POST")
	r.HandleFunc("/agendamentos/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/agendamentos/{id}/concluir", h.Concluir).Methods("PATCH")
	r.HandleFunc("/agendamentos/{id}/cancelar", h.Cancelar).Methods("PATCH")
	return r
}

func criarCatalogo(t *testing.T, db *gorm.DB, preco float64) *servico.Servico {
	t.Helper()
	s := &servico.Servico{Nome: "Corte", PrecoPadrao: preco}
	require.NoError(t, db.Create(s).Error)
	return s
}

func postJSON(t *testing.T, r *mux.Router, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCriarAgendamentoComServicos(t *testing.T) {
	db := abrirBancoTeste(t)
	r := novoRouter(db)
	cat := criarCatalogo(t, db, 45.00)

	rec := postJSON(t, r, "/agendamentos", CreateAgendamentoDTO{
		Data:    "2025-09-10",
		Cliente: "  Maria   Souza ",
		Servicos: []CreateServicoDTO{
			{ServicoID: cat.ID, ColaboradorID: 1, Preco: 60.00},
			{ServicoID: cat.ID, ColaboradorID: 2}, // assume preço padrão
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado Agendamento
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))
	assert.Equal(t, "Maria Souza", criado.Cliente)
	assert.Equal(t, status.Agendado, criado.Status)
	require.Len(t, criado.Servicos, 2)
	assert.Equal(t, 60.00, criado.Servicos[0].Preco)
	assert.Equal(t, 45.00, criado.Servicos[1].Preco)
}

func TestCriarAgendamentoSemServicosFalha(t *testing.T) {
	db := abrirBancoTeste(t)
	r := novoRouter(db)

	rec := postJSON(t, r, "/agendamentos", CreateAgendamentoDTO{Data: "2025-09-10"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var total int64
	require.NoError(t, db.Model(&Agendamento{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestCriarAgendamentoServicoInexistenteFalha(t *testing.T) {
	db := abrirBancoTeste(t)
	r := novoRouter(db)

	rec := postJSON(t, r, "/agendamentos", CreateAgendamentoDTO{
		Data:     "2025-09-10",
		Servicos: []CreateServicoDTO{{ServicoID: 999, ColaboradorID: 1}},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// transação desfeita: nada ficou para trás
	var total int64
	require.NoError(t, db.Model(&Agendamento{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestConcluirAgendamentoExigeFilhosTerminais(t *testing.T) {
	db := abrirBancoTeste(t)
	r := novoRouter(db)
	cat := criarCatalogo(t, db, 45.00)

	rec := postJSON(t, r, "/agendamentos", CreateAgendamentoDTO{
		Data:     "2025-09-10",
		Servicos: []CreateServicoDTO{{ServicoID: cat.ID, ColaboradorID: 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var criado Agendamento
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

	// filho ainda agendado: sem cascata, a conclusão do pai é rejeitada
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/agendamentos/%d/concluir", criado.ID), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusConflict, rr.Code)

	filho := criado.Servicos[0]
	agora := time.Now()
	require.NoError(t, db.Model(&servicoagendado.ServicoAgendado{}).
		Where("id = ?", filho.ID).
		Updates(map[string]interface{}{"status": status.Concluido, "concluido_em": agora}).Error)

	req = httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/agendamentos/%d/concluir", criado.ID), nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var atual Agendamento
	require.NoError(t, db.First(&atual, criado.ID).Error)
	assert.Equal(t, status.Concluido, atual.Status)
	assert.NotNil(t, atual.ConcluidoEm)
}
