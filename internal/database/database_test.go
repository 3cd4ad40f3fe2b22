package database

import (
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-blog/internal/config"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: env},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5434,
			User:            "postgres",
			Password:        "Password123#",
			Name:            "nestjs-blog",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
	}
}

func TestPoolConfig_Tuning(t *testing.T) {
	logger := zerolog.Nop()

	pc, err := poolConfig(testConfig("production"), &logger, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 25, pc.MaxConns)
	assert.EqualValues(t, 5, pc.MinConns)
	assert.Equal(t, "nestjs-blog", pc.ConnConfig.Database)
	assert.Equal(t, "Password123#", pc.ConnConfig.Password)
	assert.Nil(t, pc.ConnConfig.Tracer)
}

func TestPoolConfig_LocalTracing(t *testing.T) {
	logger := zerolog.Nop()

	pc, err := poolConfig(testConfig("local"), &logger, nil)
	require.NoError(t, err)

	_, ok := pc.ConnConfig.Tracer.(*tracelog.TraceLog)
	assert.True(t, ok, "expected tracelog tracer, got %T", pc.ConnConfig.Tracer)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "migrations/001_create_users.sql")
}
