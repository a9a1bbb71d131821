package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	postgres "github.com/heartmarshall/quickforms/internal/adapter/postgres"
)

const (
	// envDSN points tests at an existing database instead of a container.
	envDSN = "QUICKFORMS_TEST_DSN"
	// envImage overrides the PostgreSQL image used for the container.
	envImage = "QUICKFORMS_TEST_PG_IMAGE"

	defaultImage = "postgres:17-alpine"
)

var (
	dbOnce  sync.Once
	testDSN string
	dbErr   error
)

// SetupTestDB returns a pool connected to a migrated test database. The
// database is prepared once per test binary: either the one named by
// QUICKFORMS_TEST_DSN or a throwaway PostgreSQL container. The pool is closed
// via t.Cleanup. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping database test in short mode")
	}

	dbOnce.Do(func() {
		testDSN, dbErr = prepareDatabase()
	})
	if dbErr != nil {
		t.Fatalf("testhelper: prepare test database: %v", dbErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(envDSN)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	if _, err := postgres.Migrate(ctx, dsn); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

// startContainer runs PostgreSQL in Docker. The container lives until the
// test process exits.
func startContainer(ctx context.Context) (string, error) {
	image := os.Getenv(envImage)
	if image == "" {
		image = defaultImage
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "forms",
				"POSTGRES_PASSWORD": "forms",
				"POSTGRES_DB":       "forms_test",
			},
			// postgres logs readiness twice: once for the init server, once for the real one.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}
	return fmt.Sprintf("postgres://forms:forms@%s/forms_test?sslmode=disable", endpoint), nil
}
