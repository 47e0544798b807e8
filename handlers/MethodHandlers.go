package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func methodsSel(b *models.ProjectBundle) *[]models.MethodStatement { return &b.Methods }

// GetMethods godoc
// @Summary      List method statements with optional filters
// @Tags         methods
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.MethodStatement
// @Router       /api/methods [get]
func GetMethods(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), methodsSel)
		out := make([]models.MethodStatement, 0, len(all))
		for _, m := range all {
			if matchesStatus(m.Status, status) && matchesQuery(m, q) {
				out = append(out, m)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetMethod godoc
// @Summary      Get one method statement by id
// @Tags         methods
// @Param        id   path      string  true  "Method Statement ID"
// @Success      200  {object}  models.MethodStatement
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/methods/{id} [get]
func GetMethod(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		m, ok := repository.Find(store, projectID(c, store), methodsSel, func(m models.MethodStatement) bool { return m.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Method statement not found"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

type MethodRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Risk        string `json:"risk"`
	Rev         *int   `json:"rev"`
	Status      string `json:"status"`
	SubmittedBy string `json:"submittedBy"`
	Date        string `json:"date"`
	HSEReview   string `json:"hseReview"`
	File        string `json:"file"`
}

// CreateMethod godoc
// @Summary      Add a method statement
// @Tags         methods
// @Accept       json
// @Produce      json
// @Param        body  body      MethodRequest  true  "Method statement data"
// @Success      201   {object}  models.MethodStatement
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/methods [post]
func CreateMethod(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("MS", repository.Count(store, pid, methodsSel))
		}
		m := models.MethodStatement{
			ID:          id,
			Title:       strOr(req.Title, "Untitled Method Statement"),
			Category:    req.Category,
			Risk:        strOr(req.Risk, "Medium"),
			Rev:         intOr(req.Rev, 1),
			Status:      strOr(req.Status, "submitted"),
			SubmittedBy: strOr(req.SubmittedBy, "U001"),
			Date:        strOr(req.Date, repository.Today()),
			HSEReview:   strOr(req.HSEReview, "Pending"),
			File:        strOr(req.File, id+"-Rev1.pdf"),
		}
		repository.Add(store, pid, methodsSel, m)
		persist(db, store)
		c.JSON(http.StatusCreated, m)
	}
}

// UpdateMethod godoc
// @Summary      Update a method statement
// @Tags         methods
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Method Statement ID"
// @Param        body  body      MethodRequest  true  "Method statement fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/methods/{id} [put]
func UpdateMethod(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), methodsSel,
			func(m models.MethodStatement) bool { return m.ID == id },
			func(m *models.MethodStatement) {
				m.Title = strOr(req.Title, m.Title)
				m.Category = strOr(req.Category, m.Category)
				m.Risk = strOr(req.Risk, m.Risk)
				m.Rev = intOr(req.Rev, m.Rev)
				m.Status = strOr(req.Status, m.Status)
				m.SubmittedBy = strOr(req.SubmittedBy, m.SubmittedBy)
				m.Date = strOr(req.Date, m.Date)
				m.HSEReview = strOr(req.HSEReview, m.HSEReview)
				m.File = strOr(req.File, m.File)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Method statement updated", "updated": updated})
	}
}
