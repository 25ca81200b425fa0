package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
//
// The canonical store is one row per external post keyed by tweet_id.
// Collections group tweets per owner, and collection_tweets holds the
// membership join rows. Structured fields (media, link cards, tags, quoted
// snapshot, metrics, raw payload) are stored as JSON text.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS tweets (
			tweet_id TEXT PRIMARY KEY,
			tweet_text TEXT,
			author_handle TEXT,
			author_display_name TEXT,
			author_avatar_url TEXT,
			timestamp TEXT,
			source_url TEXT NOT NULL,
			media TEXT NOT NULL DEFAULT '[]',
			link_cards TEXT NOT NULL DEFAULT '[]',
			tags TEXT NOT NULL DEFAULT '[]',
			notes TEXT,
			quoted_tweet_id TEXT,
			quoted_tweet TEXT,
			in_reply_to_tweet_id TEXT,
			conversation_id TEXT,
			raw_json TEXT,
			public_metrics TEXT,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS collections (
			id TEXT PRIMARY KEY,
			owner_user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			visibility TEXT NOT NULL DEFAULT 'private',
			is_system INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (owner_user_id, slug)
		);`,
		`CREATE TABLE IF NOT EXISTS collection_tweets (
			collection_id TEXT NOT NULL,
			tweet_id TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			notes TEXT,
			added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (collection_id, tweet_id),
			FOREIGN KEY (collection_id) REFERENCES collections(id)
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
