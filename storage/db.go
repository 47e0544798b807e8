package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"backend/models"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key      TEXT PRIMARY KEY,
	payload  TEXT NOT NULL,
	saved_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS session (
	session_id TEXT PRIMARY KEY,
	email      TEXT NOT NULL,
	host_name  TEXT,
	ip_address TEXT,
	created_at TEXT NOT NULL,
	expires_at TEXT NOT NULL
);`

// InitDB opens the local sqlite database that backs snapshot persistence and
// login sessions. The path comes from DB_PATH (default ci_platform.db next to
// the binary).
func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "ci_platform.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// sqlite allows one writer; a single connection avoids SQLITE_BUSY races
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		log.Fatal("Failed to create tables:", err)
	}
	return db
}

// OpenDB opens a database at an explicit path, skipping the env lookup.
// Used by tests.
func OpenDB(path string) (*sql.DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	d.SetMaxOpenConns(1)
	if _, err := d.Exec(schema); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// SaveSnapshot upserts the serialized snapshot under its versioned key.
// Last writer wins; there is no retry tier.
func SaveSnapshot(db *sql.DB, key string, payload []byte) error {
	_, err := db.Exec(`
		INSERT INTO snapshots (key, payload, saved_at) VALUES ($1, $2, $3)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		key, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %v", err)
	}
	return nil
}

// LoadSnapshot reads the payload stored under key. A missing key is reported
// as found=false, not an error.
func LoadSnapshot(db *sql.DB, key string) ([]byte, bool, error) {
	var payload string
	err := db.QueryRow(`SELECT payload FROM snapshots WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot: %v", err)
	}
	return []byte(payload), true, nil
}

// SaveSession stores a new login session. Existing sessions for the same
// account are kept, multiple devices may stay logged in.
func SaveSession(db *sql.DB, session *models.Session) error {
	_, err := db.Exec(`
		INSERT INTO session (session_id, email, host_name, ip_address, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		session.SessionID, session.Email, session.HostName, session.IPAddress,
		session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert new session: %v", err)
	}
	return nil
}

// GetSessionByID returns the session row for a session id, or nil when the
// session is unknown or expired.
func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	var s models.Session
	err := db.QueryRow(`
		SELECT session_id, email, host_name, ip_address, created_at, expires_at
		FROM session WHERE session_id = $1`, sessionID).
		Scan(&s.SessionID, &s.Email, &s.HostName, &s.IPAddress, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	exp, err := time.Parse(time.RFC3339, s.ExpiresAt)
	if err != nil || time.Now().After(exp) {
		return nil, nil
	}
	return &s, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`DELETE FROM session WHERE session_id = $1`, sessionID)
	return err
}
