package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"backend/models"
	"backend/repository"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// PersistStore serializes the full store and upserts it under the versioned
// key. Failures are logged and reported through the boolean only; callers
// never fail a register mutation because the disk write did not land.
func PersistStore(db *sql.DB, store *repository.ProjectStore) bool {
	return persist(db, store)
}

func persist(db *sql.DB, store *repository.ProjectStore) bool {
	if db == nil {
		return false
	}
	raw, err := json.Marshal(store.Snapshot())
	if err != nil {
		log.Printf("persist: marshal snapshot: %v", err)
		return false
	}
	if err := storage.SaveSnapshot(db, models.SnapshotKey, raw); err != nil {
		log.Printf("persist: %v", err)
		return false
	}
	return true
}

// LoadStoreFromStorage reads the persisted snapshot and reports whether it
// was usable. Any parse or shape problem returns ok=false so the caller
// falls back to seed data.
func LoadStoreFromStorage(db *sql.DB) (models.Snapshot, bool) {
	var snap models.Snapshot
	raw, found, err := storage.LoadSnapshot(db, models.SnapshotKey)
	if err != nil {
		log.Printf("load snapshot: %v", err)
		return snap, false
	}
	if !found {
		return snap, false
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Printf("load snapshot: corrupt payload: %v", err)
		return snap, false
	}
	if len(snap.Projects) == 0 {
		log.Printf("load snapshot: payload has no projects, ignoring")
		return snap, false
	}
	return snap, true
}

// SaveSnapshot godoc
// @Summary      Persist the in-memory store
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  models.SaveResultResponse
// @Router       /api/snapshot/save [post]
func SaveSnapshot(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved := persist(db, store)
		msg := "Data saved"
		if !saved {
			msg = "Save failed, data kept in memory"
		}
		c.JSON(http.StatusOK, gin.H{"saved": saved, "message": msg})
	}
}

// ExportSnapshot godoc
// @Summary      Download the full snapshot as a JSON file
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Router       /api/snapshot/export [get]
func ExportSnapshot(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := store.Snapshot()
		raw, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize snapshot", "details": err.Error()})
			return
		}
		filename := "project-data-" + time.Now().Format("2006-01-02") + ".json"
		setAttachment(c, filename, "application/json")
		c.Data(http.StatusOK, "application/json", raw)
	}
}

// ImportSnapshot godoc
// @Summary      Replace the whole store from an uploaded snapshot file
// @Description  The payload must carry a PROJECTS list. The imported active project id is adopted, falling back to the first project.
// @Tags         snapshot
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Snapshot JSON file"
// @Success      200   {object}  models.MessageResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/snapshot/import [post]
func ImportSnapshot(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded", "details": err.Error()})
			return
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
			return
		}

		var snap models.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format", "details": err.Error()})
			return
		}
		if len(snap.Projects) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format: no projects found"})
			return
		}

		store.ReplaceAll(snap)
		persist(db, store)
		c.JSON(http.StatusOK, gin.H{
			"message":         "Data imported successfully",
			"projects":        len(snap.Projects),
			"activeProjectId": store.ActiveProjectID(),
		})
	}
}
