package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/StudioBelle/api-salao/internal/agendamento"
	"github.com/StudioBelle/api-salao/internal/colaborador"
	"github.com/StudioBelle/api-salao/internal/comissao"
	"github.com/StudioBelle/api-salao/internal/relatorio"
	"github.com/StudioBelle/api-salao/internal/servico"
	"github.com/StudioBelle/api-salao/internal/servicoagendado"
	"github.com/StudioBelle/api-salao/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	conn, err := db.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&colaborador.Colaborador{},
		&servico.Servico{},
		&agendamento.Agendamento{},
		&servicoagendado.ServicoAgendado{},
		&comissao.Comissao{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	colaboradorHandler := colaborador.NewHandler(colaborador.NewRepository(conn))
	servicoHandler := servico.NewHandler(servico.NewRepository(conn))
	agendamentoHandler := agendamento.NewHandler(agendamento.NewRepository(conn))
	servicoAgendadoHandler := servicoagendado.NewHandler(servicoagendado.NewRepository(conn))
	comissaoHandler := comissao.NewHandler(conn)
	relatorioHandler := relatorio.NewHandler(relatorio.NewRepository(conn))

	// Router
	r := mux.NewRouter()

	// Rotas de colaboradores
	r.HandleFunc("/colaboradores", colaboradorHandler.Criar).Methods("POST")
	r.HandleFunc("/colaboradores", colaboradorHandler.Listar).Methods("GET")
	r.HandleFunc("/colaboradores/{id}", colaboradorHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/colaboradores/{id}", colaboradorHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/colaboradores/{id}", colaboradorHandler.Deletar).Methods("DELETE")
	r.HandleFunc("/colaboradores/{id}/resumo", colaboradorHandler.Resumo).Methods("GET")
	r.HandleFunc("/colaboradores/{id}/comissoes", comissaoHandler.ListarPorColaborador).Methods("GET")
	r.HandleFunc("/colaboradores/{id}/servicos-agendados", servicoAgendadoHandler.ListarPorColaborador).Methods("GET")

	// Rotas de serviços do catálogo
	r.HandleFunc("/servicos", servicoHandler.Criar).Methods("POST")
	r.HandleFunc("/servicos", servicoHandler.Listar).Methods("GET")
	r.HandleFunc("/servicos/{id}", servicoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/servicos/{id}", servicoHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/servicos/{id}", servicoHandler.Deletar).Methods("DELETE")

	// Rotas de agendamentos
	r.HandleFunc("/agendamentos", agendamentoHandler.Criar).Methods("POST")
	r.HandleFunc("/agendamentos", agendamentoHandler.Listar).Methods("GET")
	r.HandleFunc("/agendamentos/{id}", agendamentoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/agendamentos/{id}/concluir", agendamentoHandler.Concluir).Methods("PATCH")
	r.HandleFunc("/agendamentos/{id}/cancelar", agendamentoHandler.Cancelar).Methods("PATCH")
	r.HandleFunc("/agendamentos/{id}/servicos", servicoAgendadoHandler.ListarPorAgendamento).Methods("GET")

	// Rotas de serviços agendados
	r.HandleFunc("/servicos-agendados/{id}/concluir", servicoAgendadoHandler.Concluir).Methods("PATCH")
	r.HandleFunc("/servicos-agendados/{id}/cancelar", servicoAgendadoHandler.Cancelar).Methods("PATCH")

	// Rotas de comissões
	r.HandleFunc("/comissoes/calcular", comissaoHandler.Calcular).Methods("POST")
	r.HandleFunc("/comissoes", comissaoHandler.Listar).Methods("GET")
	r.HandleFunc("/comissoes/pendentes", comissaoHandler.ListarPendentes).Methods("GET")
	r.HandleFunc("/comissoes/marcar-pagas", comissaoHandler.MarcarPagas).Methods("POST")
	r.HandleFunc("/comissoes/marcar-nao-pagas", comissaoHandler.MarcarNaoPagas).Methods("POST")

	// Rota de relatórios
	r.HandleFunc("/relatorios/mensal", relatorioHandler.Mensal).Methods("GET")

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	})

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
