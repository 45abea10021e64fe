package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenMySQL connects to MySQL with the given DSN, ensures the schema exists
// and seeds the default catalog into an empty cars table. The returned
// handle is shared by the car and enquiry repositories and must be closed
// by the caller.
func OpenMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	if err := createMySQLTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	if err := seedCars(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Println("[MySQL] Initialized")
	return db, nil
}

func createMySQLTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS cars (
			id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DOUBLE NOT NULL,
			description TEXT NOT NULL,
			year INT NOT NULL,
			mileage VARCHAR(255) NOT NULL DEFAULT '',
			fuel_type VARCHAR(64) NOT NULL DEFAULT '',
			transmission VARCHAR(64) NOT NULL DEFAULT '',
			image MEDIUMTEXT NOT NULL,
			badge VARCHAR(64) NOT NULL DEFAULT '',
			featured TINYINT(1) NOT NULL DEFAULT 0,
			created_at VARCHAR(40) NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS enquiries (
			id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(64) NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			car_name VARCHAR(255) NOT NULL DEFAULT '',
			car_id VARCHAR(64) NOT NULL DEFAULT '',
			submitted_at VARCHAR(40) NOT NULL DEFAULT ''
		)`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
