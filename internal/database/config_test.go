package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "postgres builds key value dsn",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "pos",
				Password: "pw", Name: "restaurant", SSLMode: "disable",
			},
			expected: "host=db user=pos password=pw dbname=restaurant port=5432 sslmode=disable",
		},
		{
			name: "postgres url wins over discrete fields",
			config: DatabaseConfig{
				Driver: "postgresql", Host: "ignored", URL: "postgres://pos:pw@db:5432/restaurant",
			},
			expected: "postgres://pos:pw@db:5432/restaurant",
		},
		{
			name: "mysql builds tcp dsn",
			config: DatabaseConfig{
				Driver: "mysql", Host: "127.0.0.1", Port: "3306", User: "root", Password: "pw", Name: "pos",
			},
			expected: "root:pw@tcp(127.0.0.1:3306)/pos?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "sqlite uses path",
			config:   DatabaseConfig{Driver: "sqlite", Path: "pos.sqlite"},
			expected: "pos.sqlite",
		},
		{
			name:     "empty driver defaults to sqlite",
			config:   DatabaseConfig{Path: ":memory:"},
			expected: ":memory:",
		},
		{
			name:     "unknown driver yields empty dsn",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", User: "pos", Password: "super-secret"}

	out := cfg.String()

	assert.NotContains(t, out, "super-secret")
	assert.True(t, strings.Contains(out, "[REDACTED]"))
}
