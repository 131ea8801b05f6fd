package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Optional Key Vault indirection for the database password. When
	// KeyVaultName is empty the env password is used as-is.
	KeyVaultName         string
	DBPasswordSecretName string

	LogLevel   string
	CORSOrigin string
}

// Load reads configuration from the environment. Every value has a default;
// a missing database password simply means the connection attempt fails and
// the store selector falls back to the in-memory store.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "quanban")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "quanban")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KEY_VAULT_NAME", "")
	v.SetDefault("DB_PASSWORD_SECRET_NAME", "db-password")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGIN", "*")

	return &Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSSLMode:            v.GetString("DB_SSLMODE"),
		KeyVaultName:         v.GetString("KEY_VAULT_NAME"),
		DBPasswordSecretName: v.GetString("DB_PASSWORD_SECRET_NAME"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		CORSOrigin:           v.GetString("CORS_ORIGIN"),
	}
}

// DSN builds the postgres connection string with the resolved password.
func (c *Config) DSN(password string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, password, c.DBName, c.DBSSLMode,
	)
}
