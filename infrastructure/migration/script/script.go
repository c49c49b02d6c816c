package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/pkg/utils"
)

var statements = []struct {
	name  string
	query string
}{
	{
		name: "tabela businesses",
		query: `
			CREATE TABLE IF NOT EXISTS businesses (
				id                 VARCHAR(32) PRIMARY KEY,
				name               TEXT NOT NULL,
				owner_id           VARCHAR(64) NOT NULL,
				source_connections JSONB NOT NULL DEFAULT '[]'::jsonb,
				version            INTEGER NOT NULL DEFAULT 1,
				created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		name:  "índice businesses.owner_id",
		query: `CREATE INDEX IF NOT EXISTS businesses_owner_id_idx ON businesses (owner_id)`,
	},
	{
		name:  "índice GIN businesses.source_connections",
		query: `CREATE INDEX IF NOT EXISTS businesses_source_connections_idx ON businesses USING GIN (source_connections jsonb_path_ops)`,
	},
	{
		name: "tabela invoices",
		query: `
			CREATE TABLE IF NOT EXISTS invoices (
				id          VARCHAR(32) PRIMARY KEY,
				business_id VARCHAR(32) NOT NULL REFERENCES businesses (id),
				source      VARCHAR(16) NOT NULL,
				external_id TEXT NOT NULL,
				number      TEXT NOT NULL DEFAULT '',
				date        TIMESTAMPTZ NOT NULL,
				due_date    TIMESTAMPTZ,
				client      JSONB NOT NULL DEFAULT '{}'::jsonb,
				items       JSONB NOT NULL DEFAULT '[]'::jsonb,
				subtotal    NUMERIC(18, 2) NOT NULL DEFAULT 0,
				taxes       NUMERIC(18, 2) NOT NULL DEFAULT 0,
				discounts   NUMERIC(18, 2) NOT NULL DEFAULT 0,
				total       NUMERIC(18, 2) NOT NULL DEFAULT 0,
				currency    VARCHAR(8) NOT NULL DEFAULT 'COP',
				status      VARCHAR(16) NOT NULL DEFAULT 'pending',
				raw_data    JSONB,
				is_deleted  BOOLEAN NOT NULL DEFAULT FALSE,
				created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT invoices_business_source_external_unique UNIQUE (business_id, source, external_id)
			)`,
	},
	{
		name:  "índice invoices.business_id/date",
		query: `CREATE INDEX IF NOT EXISTS invoices_business_date_idx ON invoices (business_id, date DESC)`,
	},
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func createSchema(db *sql.DB) {
	startTime := time.Now()

	for i, stmt := range statements {
		if _, err := db.Exec(stmt.query); err != nil {
			log.Fatalf("ERRO ao criar %s [%d/%d]: %v", stmt.name, i+1, len(statements), err)
		}
		log.Printf("Criado: %s", stmt.name)
	}

	log.Printf("Schema criado em %v", time.Since(startTime))
}

// seedBusiness cria um negócio de desenvolvimento quando SEED_BUSINESS_OWNER está definido
func seedBusiness(db *sql.DB) {
	owner := os.Getenv("SEED_BUSINESS_OWNER")
	if owner == "" {
		return
	}

	name := os.Getenv("SEED_BUSINESS_NAME")
	if name == "" {
		name = "Negócio de desenvolvimento"
	}

	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM businesses WHERE owner_id = $1 AND name = $2)`, owner, name).Scan(&exists)
	if err != nil {
		log.Printf("ERRO ao verificar negócio existente: %v", err)
		return
	}
	if exists {
		log.Printf("Negócio %q já existe para o dono %s", name, owner)
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.Printf("ERRO ao gerar id do negócio: %v", err)
		return
	}

	if _, err := db.Exec(`INSERT INTO businesses (id, name, owner_id) VALUES ($1, $2, $3)`, id, name, owner); err != nil {
		log.Printf("ERRO ao inserir negócio: %v", err)
		return
	}

	log.Printf("Negócio %q criado com id %s", name, id)
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

	createSchema(db)
	seedBusiness(db)

	log.Println("Migração concluída")
}
