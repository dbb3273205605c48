package comissao

import (
	"fmt"
	"testing"
	"time"

	"github.com/StudioBelle/api-salao/internal/colaborador"
	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/StudioBelle/api-salao/internal/servicoagendado"
	"github.com/StudioBelle/api-salao/internal/status"
	"github.com/glebarez/sqlite"
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
		&colaborador.Colaborador{},
		&servicoagendado.ServicoAgendado{},
		&Comissao{},
	))
	return db
}

func criarColaborador(t *testing.T, db *gorm.DB, percentual float64) *colaborador.Colaborador {
	t.Helper()
	c := &colaborador.Colaborador{Nome: "Ana", Area: "Cabelo", PercentualComissao: percentual}
	require.NoError(t, db.Create(c).Error)
	return c
}

func criarServico(t *testing.T, db *gorm.DB, colaboradorID uint, preco float64, st status.Status) *servicoagendado.ServicoAgendado {
	t.Helper()
	s := &servicoagendado.ServicoAgendado{
		AgendamentoID: 1,
		ServicoID:     1,
		ColaboradorID: colaboradorID,
		Preco:         preco,
		Status:        st,
	}
	if st == status.Concluido {
		agora := time.Now()
		s.ConcluidoEm = &agora
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestCalcularValor(t *testing.T) {
	assert.Equal(t, 40.00, CalcularValor(100.00, 40))
	assert.Equal(t, 10.00, CalcularValor(50.00, 20))
	assert.Equal(t, 6.00, CalcularValor(30.00, 20))
	// meio para cima: 33.33 × 15% = 4.9995 → 5.00
	assert.Equal(t, 5.00, CalcularValor(33.33, 15))
	// 10.05 × 10% = 1.005 → 1.01
	assert.Equal(t, 1.01, CalcularValor(10.05, 10))
}

func TestParaServicoConcluido(t *testing.T) {
	db := abrirBancoTeste(t)
	calc := NovaCalculadora(db)

	col := criarColaborador(t, db, 40)
	s := criarServico(t, db, col.ID, 100.00, status.Concluido)

	com, err := calc.ParaServico(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 40.00, com.Valor)
	assert.False(t, com.Paga)
	assert.Equal(t, s.ID, com.ServicoAgendadoID)
	assert.Equal(t, col.ID, com.ColaboradorID)
	assert.False(t, com.CalculadaEm.IsZero())
}

func TestParaServicoIdempotente(t *testing.T) {
	db := abrirBancoTeste(t)
	calc := NovaCalculadora(db)

	col := criarColaborador(t, db, 40)
	s := criarServico(t, db, col.ID, 100.00, status.Concluido)

	primeira, err := calc.ParaServico(s.ID)
	require.NoError(t, err)

	// percentual muda depois do cálculo; a comissão existente não é recalculada
	col.PercentualComissao = 50
	require.NoError(t, db.Save(col).Error)

	segunda, err := calc.ParaServico(s.ID)
	require.NoError(t, err)
	assert.Equal(t, primeira.ID, segunda.ID)
	assert.Equal(t, primeira.Valor, segunda.Valor)

	var total int64
	require.NoError(t, db.Model(&Comissao{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestParaServicoNaoConcluidoFalha(t *testing.T) {
	db := abrirBancoTeste(t)
	calc := NovaCalculadora(db)
	col := criarColaborador(t, db, 40)

	for _, st := range []status.Status{status.Agendado, status.Cancelado} {
		s := criarServico(t, db, col.ID, 100.00, st)
		com, err := calc.ParaServico(s.ID)
		require.Error(t, err)
		assert.Nil(t, com)
		assert.True(t, erros.EhTipo(err, erros.TipoServicoNaoConcluido))
	}

	var total int64
	require.NoError(t, db.Model(&Comissao{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestParaServicoInexistenteFalha(t *testing.T) {
	db := abrirBancoTeste(t)
	calc := NovaCalculadora(db)

	_, err := calc.ParaServico(999)
	require.Error(t, err)
	assert.True(t, erros.EhTipo(err, erros.TipoNaoEncontrado))
}

func TestParaAgendamento(t *testing.T) {
	db := abrirBancoTeste(t)
	calc := NovaCalculadora(db)

	col := criarColaborador(t, db, 20)
	s1 := criarServico(t, db, col.ID, 50.00, status.Concluido)
	s2 := criarServico(t, db, col.ID, 30.00, status.Concluido)
	criarServico(t, db, col.ID, 70.00, status.Agendado)
	criarServico(t, db, col.ID, 90.00, status.Cancelado)

	comissoes, err := calc.ParaAgendamento(1)
	require.NoError(t, err)
	require.Len(t, comissoes, 2)

	// ordem de inserção dos serviços
	assert.Equal(t, s1.ID, comissoes[0].ServicoAgendadoID)
	assert.Equal(t, 10.00, comissoes[0].Valor)
	assert.Equal(t, s2.ID, comissoes[1].ServicoAgendadoID)
	assert.Equal(t, 6.00, comissoes[1].Valor)
}

func TestParaAgendamentoMisturaExistentesENovas(t *testing.T) {
	db := abrirBancoTeste(t)
	calc := NovaCalculadora(db)

	col := criarColaborador(t, db, 20)
	s1 := criarServico(t, db, col.ID, 50.00, status.Concluido)
	criarServico(t, db, col.ID, 30.00, status.Concluido)

	existente, err := calc.ParaServico(s1.ID)
	require.NoError(t, err)

	comissoes, err := calc.ParaAgendamento(1)
	require.NoError(t, err)
	require.Len(t, comissoes, 2)
	assert.Equal(t, existente.ID, comissoes[0].ID)

	var total int64
	require.NoError(t, db.Model(&Comissao{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}

func TestParaAgendamentoInexistenteFalha(t *testing.T) {
	db := abrirBancoTeste(t)
	calc := NovaCalculadora(db)

	_, err := calc.ParaAgendamento(42)
	require.Error(t, err)
	assert.True(t, erros.EhTipo(err, erros.TipoNaoEncontrado))
}
