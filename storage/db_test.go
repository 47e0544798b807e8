package storage

import (
	"path/filepath"
	"testing"
	"time"

	"backend/models"
)

func TestSnapshotSaveLoadRoundTrip(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	payload := []byte(`{"version":"2026.3","PROJECTS":[]}`)
	if err := SaveSnapshot(db, models.SnapshotKey, payload); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, found, err := LoadSnapshot(db, models.SnapshotKey)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !found {
		t.Fatal("expected snapshot to be found")
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %s", got)
	}

	// Saving again overwrites, it never duplicates the key.
	updated := []byte(`{"version":"2026.3","PROJECTS":[{"id":"PRJ-001"}]}`)
	if err := SaveSnapshot(db, models.SnapshotKey, updated); err != nil {
		t.Fatalf("SaveSnapshot (upsert): %v", err)
	}
	got, _, _ = LoadSnapshot(db, models.SnapshotKey)
	if string(got) != string(updated) {
		t.Errorf("upsert did not replace payload: %s", got)
	}
}

func TestLoadSnapshotMissingKey(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	_, found, err := LoadSnapshot(db, "no_such_key")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if found {
		t.Error("expected found=false for a missing key")
	}
}

func TestSessionLifecycle(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	s := &models.Session{
		SessionID: "sess-001",
		Email:     "admin@constructioninnovation.local",
		HostName:  "localhost",
		IPAddress: "127.0.0.1",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		ExpiresAt: time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	}
	if err := SaveSession(db, s); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := GetSessionByID(db, "sess-001")
	if err != nil {
		t.Fatalf("GetSessionByID: %v", err)
	}
	if got == nil || got.Email != s.Email {
		t.Fatalf("session = %+v", got)
	}

	if got, _ := GetSessionByID(db, "sess-404"); got != nil {
		t.Error("unknown session should return nil")
	}

	if err := DeleteSession(db, "sess-001"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if got, _ := GetSessionByID(db, "sess-001"); got != nil {
		t.Error("deleted session should return nil")
	}
}

func TestExpiredSessionIsNil(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	s := &models.Session{
		SessionID: "sess-expired",
		Email:     "admin@constructioninnovation.local",
		CreatedAt: time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339),
		ExpiresAt: time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339),
	}
	if err := SaveSession(db, s); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if got, err := GetSessionByID(db, "sess-expired"); err != nil || got != nil {
		t.Errorf("expired session should be nil, got %+v (err %v)", got, err)
	}
}
