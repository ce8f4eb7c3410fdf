package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the sqlite file. A single connection serialises writers.
func Open(fileName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}
