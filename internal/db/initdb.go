// internal/db/initdb.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
)

// CreateDatabaseIfNotExists connects to the maintenance database and
// creates the target database when it is missing. Useful for local
// development so a fresh Postgres container just works.
func CreateDatabaseIfNotExists(connString string) error {
	dbName, err := databaseName(connString)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	rootConnStr, err := withDatabaseName(connString, "postgres")
	if err != nil {
		return fmt.Errorf("failed to build root connection string: %w", err)
	}

	conn, err := sql.Open("postgres", rootConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer conn.Close()

	var exists bool
	err = conn.QueryRow("SELECT 1 FROM pg_database WHERE datname = $1", dbName).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	log.Printf("Creating database: %s", dbName)
	// CREATE DATABASE cannot run in a prepared statement or transaction.
	if _, err := conn.Exec("CREATE DATABASE " + dbName); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Printf("Database %s created successfully", dbName)
	return nil
}

// databaseName extracts the database name from either a URL-style or a
// key-value Postgres connection string.
func databaseName(connString string) (string, error) {
	if isURLConnString(connString) {
		u, err := url.Parse(connString)
		if err != nil {
			return "", fmt.Errorf("failed to parse connection URL: %w", err)
		}
		return strings.TrimPrefix(u.Path, "/"), nil
	}

	for _, pair := range strings.Fields(connString) {
		if name, ok := strings.CutPrefix(pair, "dbname="); ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("could not find database name in connection string")
}

// withDatabaseName returns the connection string pointed at a different
// database.
func withDatabaseName(connString, newName string) (string, error) {
	if isURLConnString(connString) {
		u, err := url.Parse(connString)
		if err != nil {
			return "", err
		}
		u.Path = "/" + newName
		return u.String(), nil
	}

	pairs := strings.Fields(connString)
	for i, pair := range pairs {
		if strings.HasPrefix(pair, "dbname=") {
			pairs[i] = "dbname=" + newName
		}
	}
	return strings.Join(pairs, " "), nil
}

func isURLConnString(connString string) bool {
	return strings.HasPrefix(connString, "postgres://") || strings.HasPrefix(connString, "postgresql://")
}
