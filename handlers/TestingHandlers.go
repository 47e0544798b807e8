package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func testingSel(b *models.ProjectBundle) *[]models.TestRecord { return &b.Testing }

// GetTests godoc
// @Summary      List testing and commissioning records
// @Tags         testing
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (pending, passed, failed)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.TestRecord
// @Router       /api/testing [get]
func GetTests(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), testingSel)
		out := make([]models.TestRecord, 0, len(all))
		for _, t := range all {
			if matchesStatus(t.Status, status) && matchesQuery(t, q) {
				out = append(out, t)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetTest godoc
// @Summary      Get one test record by id
// @Tags         testing
// @Param        id   path      string  true  "Test Record ID"
// @Success      200  {object}  models.TestRecord
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/testing/{id} [get]
func GetTest(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		t, ok := repository.Find(store, projectID(c, store), testingSel, func(t models.TestRecord) bool { return t.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test record not found"})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type TestRequest struct {
	ID      string `json:"id"`
	System  string `json:"system"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Rev     *int   `json:"rev"`
	Status  string `json:"status"`
	Cert    string `json:"cert"`
	File    string `json:"file"`
	Remarks string `json:"remarks"`
}

// CreateTest godoc
// @Summary      Add a test record
// @Tags         testing
// @Accept       json
// @Produce      json
// @Param        body  body      TestRequest  true  "Test record data"
// @Success      201   {object}  models.TestRecord
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/testing [post]
func CreateTest(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("TC", repository.Count(store, pid, testingSel))
		}
		t := models.TestRecord{
			ID:      id,
			System:  strOr(req.System, "Unnamed System"),
			Type:    req.Type,
			Date:    strOr(req.Date, repository.Today()),
			Rev:     intOr(req.Rev, 1),
			Status:  strOr(req.Status, "pending"),
			Cert:    req.Cert,
			File:    req.File,
			Remarks: req.Remarks,
		}
		repository.Add(store, pid, testingSel, t)
		persist(db, store)
		c.JSON(http.StatusCreated, t)
	}
}

// UpdateTest godoc
// @Summary      Update a test record
// @Tags         testing
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Test Record ID"
// @Param        body  body      TestRequest  true  "Test record fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/testing/{id} [put]
func UpdateTest(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), testingSel,
			func(t models.TestRecord) bool { return t.ID == id },
			func(t *models.TestRecord) {
				t.System = strOr(req.System, t.System)
				t.Type = strOr(req.Type, t.Type)
				t.Date = strOr(req.Date, t.Date)
				t.Rev = intOr(req.Rev, t.Rev)
				t.Status = strOr(req.Status, t.Status)
				t.Cert = strOr(req.Cert, t.Cert)
				t.File = strOr(req.File, t.File)
				t.Remarks = strOr(req.Remarks, t.Remarks)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Test record updated", "updated": updated})
	}
}
