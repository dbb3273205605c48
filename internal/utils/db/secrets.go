// internal/utils/db/secrets.go
package db

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciais struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func novoClienteSecrets() *secretsmanager.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatal(err)
	}
	return secretsmanager.NewFromConfig(cfg)
}

// retrieveCredentials prioriza DB_USERNAME/DB_PASSWORD do ambiente; só fala
// com o Secrets Manager quando elas não estão definidas.
func retrieveCredentials(secretID string) (string, string) {
	usuario := os.Getenv("DB_USERNAME")
	senha := os.Getenv("DB_PASSWORD")
	if usuario != "" && senha != "" {
		return usuario, senha
	}

	secrets := novoClienteSecrets()
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := secrets.GetSecretValue(context.TODO(), input)
	if err != nil {
		panic(err)
	}

	var c credenciais
	if err := json.Unmarshal([]byte(*result.SecretString), &c); err != nil {
		panic(err)
	}
	return c.Username, c.Password
}
