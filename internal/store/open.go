package store

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open picks the storage backend for the lifetime of the process. It tries a
// pooled MySQL connection once; when the ping fails the process permanently
// falls back to the seeded in-memory store. There is no reconnection attempt
// after startup.
func Open(dsn string) Store {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("[STORE] mysql open failed, falling back to in-memory storage: %v", err)
		return NewMemory()
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		log.Printf("[STORE] mysql unreachable, falling back to in-memory storage: %v", err)
		return NewMemory()
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()

	if err := InitSchema(initCtx, db); err != nil {
		// Schema failures are logged but do not abort startup; the tables may
		// already exist with the expected shape.
		log.Printf("[STORE] schema initialization failed: %v", err)
	}

	log.Println("[STORE] connected to mysql, running in backed mode")
	return NewSQL(db)
}
