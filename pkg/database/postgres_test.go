package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/tutor-finder/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "tutor",
		Password: "secret",
		Name:     "tutor_finder",
		SSLMode:  "require",
	})

	assert.Equal(t, "host=db port=5433 user=tutor password=secret dbname=tutor_finder sslmode=require", dsn)
}
