// internal/utils/db/conectar.go
package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão Postgres a partir das variáveis de ambiente
// (DB_HOST, DB_PORT, DB_NAME, DB_SECRET_ID). Credenciais vêm de
// DB_USERNAME/DB_PASSWORD ou, na ausência delas, do Secrets Manager.
func Conectar() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}
	nome := os.Getenv("DB_NAME")
	if nome == "" {
		nome = "salao"
	}

	usuario, senha := retrieveCredentials(os.Getenv("DB_SECRET_ID"))

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d", host, usuario, senha, nome, porta)
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		dsn += " sslmode=disable"
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
