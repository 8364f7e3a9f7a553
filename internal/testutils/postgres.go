package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cscportal/portal-go/internal/config/db"
)

// SetupPostgres returns a migrated gorm handle against either an external
// database (TEST_DB_DSN) or a throwaway container. Skips the test when
// neither is available.
func SetupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		ctx := context.Background()

		req := testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "cscportal",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
		}

		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			t.Skipf("postgres unavailable: %v", err)
		}
		t.Cleanup(func() { _ = pg.Terminate(ctx) })

		host, err := pg.Host(ctx)
		if err != nil {
			t.Fatal(err)
		}
		port, err := pg.MappedPort(ctx, "5432")
		if err != nil {
			t.Fatal(err)
		}
		dsn = fmt.Sprintf("postgres://test:test@%s:%s/cscportal?sslmode=disable", host, port.Port())
	}

	waitForPostgres(t, dsn)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatal(err)
	}
	return gormDB
}

func waitForPostgres(t *testing.T, dsn string) {
	t.Helper()

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()

	deadline := time.Now().Add(30 * time.Second)
	for {
		if err = sqlDB.Ping(); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("postgres did not become ready: %v", err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
