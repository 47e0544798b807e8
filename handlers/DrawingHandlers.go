package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func drawingsSel(b *models.ProjectBundle) *[]models.Drawing { return &b.Drawings }

// GetDrawings godoc
// @Summary      List drawings with optional filters
// @Tags         drawings
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        tab      query     string  false  "Discipline tab (all, mep, mechanical, electrical, plumbing, hvac, firefighting, architect, civil, structure)"
// @Param        status   query     string  false  "Status filter"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.Drawing
// @Router       /api/drawings [get]
func GetDrawings(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tab := c.Query("tab")
		status := c.Query("status")
		q := c.Query("q")

		all := repository.List(store, projectID(c, store), drawingsSel)
		out := make([]models.Drawing, 0, len(all))
		for _, d := range all {
			if !drawingTabMatch(tab, d.Discipline) {
				continue
			}
			if !matchesStatus(d.Status, status) {
				continue
			}
			if !matchesQuery(d, q) {
				continue
			}
			out = append(out, d)
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetDrawing godoc
// @Summary      Get one drawing by id
// @Tags         drawings
// @Param        id   path      string  true  "Drawing ID"
// @Success      200  {object}  models.Drawing
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/drawings/{id} [get]
func GetDrawing(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		d, ok := repository.Find(store, projectID(c, store), drawingsSel, func(d models.Drawing) bool { return d.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Drawing not found"})
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

type DrawingRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Discipline  string `json:"discipline"`
	Rev         *int   `json:"rev"`
	Status      string `json:"status"`
	SubmittedBy string `json:"submittedBy"`
	Date        string `json:"date"`
	Consultant  string `json:"consultant"`
	File        string `json:"file"`
	Comments    string `json:"comments"`
}

// CreateDrawing godoc
// @Summary      Add a drawing to the register
// @Description  Blank fields get form defaults; the entry is prepended so the newest renders first.
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Param        body  body      DrawingRequest  true  "Drawing data"
// @Success      201   {object}  models.Drawing
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/drawings [post]
func CreateDrawing(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DrawingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("DWG", repository.Count(store, pid, drawingsSel))
		}
		d := models.Drawing{
			ID:          id,
			Title:       strOr(req.Title, "Untitled Drawing"),
			Discipline:  strOr(req.Discipline, "Civil"),
			Rev:         intOr(req.Rev, 1),
			Status:      strOr(req.Status, "submitted"),
			SubmittedBy: strOr(req.SubmittedBy, "U001"),
			Date:        strOr(req.Date, repository.Today()),
			Consultant:  req.Consultant,
			File:        strOr(req.File, id+"-Rev1.pdf"),
			Comments:    req.Comments,
		}
		repository.Add(store, pid, drawingsSel, d)
		persist(db, store)
		c.JSON(http.StatusCreated, d)
	}
}

// UpdateDrawing godoc
// @Summary      Update a drawing
// @Description  Patch semantics. Unknown ids report updated=false.
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Drawing ID"
// @Param        body  body      DrawingRequest  true  "Drawing fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/drawings/{id} [put]
func UpdateDrawing(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DrawingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), drawingsSel,
			func(d models.Drawing) bool { return d.ID == id },
			func(d *models.Drawing) {
				d.Title = strOr(req.Title, d.Title)
				d.Discipline = strOr(req.Discipline, d.Discipline)
				d.Rev = intOr(req.Rev, d.Rev)
				d.Status = strOr(req.Status, d.Status)
				d.SubmittedBy = strOr(req.SubmittedBy, d.SubmittedBy)
				d.Date = strOr(req.Date, d.Date)
				d.Consultant = strOr(req.Consultant, d.Consultant)
				d.File = strOr(req.File, d.File)
				d.Comments = strOr(req.Comments, d.Comments)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Drawing updated", "updated": updated})
	}
}
