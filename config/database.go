package config

import (
	"fmt"
	"os"
)

const defaultMysqlPort = "3306"
const maxOpenConns = 10

type DatabaseConfig struct {
	Host         string
	User         string
	Password     string
	Name         string
	Port         string
	MaxOpenConns int
}

// GetDatabaseConfig reads Railway-style MYSQL* variables with DB_* fallbacks.
func GetDatabaseConfig() (*DatabaseConfig, error) {
	host := envOr("MYSQLHOST", "DB_HOST")
	if host == "" {
		return nil, fmt.Errorf("MYSQLHOST or DB_HOST must be set")
	}
	user := envOr("MYSQLUSER", "DB_USER")
	if user == "" {
		return nil, fmt.Errorf("MYSQLUSER or DB_USER must be set")
	}
	name := envOr("MYSQLDATABASE", "DB_NAME")
	if name == "" {
		return nil, fmt.Errorf("MYSQLDATABASE or DB_NAME must be set")
	}
	port := os.Getenv("MYSQLPORT")
	if port == "" {
		port = defaultMysqlPort
	}

	return &DatabaseConfig{
		Host:         host,
		User:         user,
		Password:     envOr("MYSQLPASSWORD", "DB_PASSWORD"),
		Name:         name,
		Port:         port,
		MaxOpenConns: maxOpenConns,
	}, nil
}

// DSN builds the go-sql-driver connection string. Hosted MySQL requires TLS;
// skip-verify mirrors the original deployment's rejectUnauthorized=false.
func (c *DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
	if c.Host != "localhost" && c.Host != "127.0.0.1" {
		dsn += "&tls=skip-verify"
	}
	return dsn
}

func envOr(name string, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return os.Getenv(fallback)
}
