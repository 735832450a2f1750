package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/stockpeak/stock-analytics-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Script de migração: cria as tabelas do painel e semeia o usuário
// administrador inicial. Idempotente; pode rodar mais de uma vez.

const adminSeedEmail = "admin@stockpeak.app"

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func createTables(db *sql.DB) {
	statements := []struct {
		name string
		ddl  string
	}{
		{
			name: "users",
			ddl: `CREATE TABLE IF NOT EXISTS users (
				id SERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL,
				lastname VARCHAR(100) NOT NULL,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				active BOOLEAN NOT NULL DEFAULT false,
				role_id INTEGER NOT NULL DEFAULT 2,
				deleted BOOLEAN NOT NULL DEFAULT false,
				deleted_at TIMESTAMP,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			name: "sellers",
			ddl: `CREATE TABLE IF NOT EXISTS sellers (
				id SERIAL PRIMARY KEY,
				external_id VARCHAR(20) NOT NULL UNIQUE,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255),
				tariff VARCHAR(10) NOT NULL DEFAULT 'free',
				portfolio_size INTEGER NOT NULL DEFAULT 0,
				upload_limit INTEGER NOT NULL DEFAULT 0,
				monthly_uploads INTEGER NOT NULL DEFAULT 0,
				acceptance_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
				active BOOLEAN NOT NULL DEFAULT true,
				deleted BOOLEAN NOT NULL DEFAULT false,
				deleted_at TIMESTAMP,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		{
			name: "analysis_reports",
			ddl: `CREATE TABLE IF NOT EXISTS analysis_reports (
				id BIGSERIAL PRIMARY KEY,
				external_id VARCHAR(20) NOT NULL UNIQUE,
				seller_id INTEGER NOT NULL REFERENCES sellers(id),
				period VARCHAR(10) NOT NULL,
				result JSONB,
				report_text TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				CONSTRAINT analysis_reports_seller_period_unique UNIQUE (seller_id, period)
			)`,
		},
	}

	for _, stmt := range statements {
		log.Printf("Criando tabela %s (se não existir)...", stmt.name)
		if _, err := db.Exec(stmt.ddl); err != nil {
			log.Fatalf("ERRO ao criar tabela %s: %v", stmt.name, err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_analysis_reports_seller ON analysis_reports (seller_id)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_reports_period ON analysis_reports (period)`,
	}
	for _, ddl := range indexes {
		if _, err := db.Exec(ddl); err != nil {
			log.Fatalf("ERRO ao criar índice: %v", err)
		}
	}

	log.Println("Tabelas criadas com sucesso")
}

func seedAdminUser(db *sql.DB) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, adminSeedEmail).Scan(&exists)
	if err != nil {
		log.Fatalf("ERRO ao verificar usuário administrador: %v", err)
	}

	if exists {
		log.Println("Usuário administrador já existe, pulando seed")
		return
	}

	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if password == "" {
		log.Println("AVISO: ADMIN_SEED_PASSWORD não definido, usando senha padrão de desenvolvimento")
		password = "ChangeMe!123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("ERRO ao gerar hash da senha do administrador: %v", err)
	}

	_, err = db.Exec(
		`INSERT INTO users (name, lastname, email, password_hash, active, role_id) VALUES ($1, $2, $3, $4, true, 1)`,
		"Admin", "StockPeak", adminSeedEmail, string(hash),
	)
	if err != nil {
		log.Fatalf("ERRO ao inserir usuário administrador: %v", err)
	}

	log.Printf("Usuário administrador %s criado com sucesso", adminSeedEmail)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	createTables(db)
	seedAdminUser(db)

	log.Printf("Migração concluída em %v!", time.Since(startTime))
}
