package status

import (
	"testing"

	"github.com/StudioBelle/api-salao/internal/erros"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransicionarAgendadoParaConcluido(t *testing.T) {
	quando, err := Transicionar(1, Agendado, Concluido)
	require.NoError(t, err)
	assert.False(t, quando.IsZero())
}

func TestTransicionarAgendadoParaCancelado(t *testing.T) {
	_, err := Transicionar(1, Agendado, Cancelado)
	require.NoError(t, err)
}

func TestTransicionarDeTerminalFalha(t *testing.T) {
	for _, atual := range []Status{Concluido, Cancelado} {
		_, err := Transicionar(7, atual, Concluido)
		require.Error(t, err)
		assert.True(t, erros.EhTipo(err, erros.TipoTransicaoInvalida))
	}
}

func TestTransicionarParaAgendadoFalha(t *testing.T) {
	_, err := Transicionar(3, Agendado, Agendado)
	require.Error(t, err)
	assert.True(t, erros.EhTipo(err, erros.TipoTransicaoInvalida))
}

func TestTransicionarDestinoDesconhecidoFalha(t *testing.T) {
	_, err := Transicionar(3, Agendado, Status("Pendente"))
	require.Error(t, err)
	assert.True(t, erros.EhTipo(err, erros.TipoTransicaoInvalida))
}

func TestTerminal(t *testing.T) {
	assert.False(t, Terminal(Agendado))
	assert.True(t, Terminal(Concluido))
	assert.True(t, Terminal(Cancelado))
}
