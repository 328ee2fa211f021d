package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		picture TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS reset_password_tokens (
		token_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		expires_in TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS credit_cards (
		credit_card_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS debtors (
		debtor_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		color VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS bills (
		bill_id UUID PRIMARY KEY,
		credit_card_id UUID NOT NULL REFERENCES credit_cards(credit_card_id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		month INT NOT NULL,
		year INT NOT NULL,
		date TIMESTAMP NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		installment INT NOT NULL DEFAULT 1,
		total_installment INT NOT NULL DEFAULT 1,
		description TEXT NOT NULL DEFAULT '',
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		category VARCHAR(30) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS bill_debtors (
		bill_debtor_id UUID PRIMARY KEY,
		bill_id UUID NOT NULL REFERENCES bills(bill_id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		debtor_id UUID REFERENCES debtors(debtor_id) ON DELETE CASCADE,
		amount DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		paid BOOLEAN NOT NULL DEFAULT FALSE
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}
