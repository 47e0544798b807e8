package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// GetProjects godoc
// @Summary      List all projects with the active project id
// @Tags         projects
// @Produce      json
// @Success      200  {object}  object
// @Router       /api/projects [get]
func GetProjects(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"projects":        store.Projects(),
			"activeProjectId": store.ActiveProjectID(),
		})
	}
}

// GetProject godoc
// @Summary      Get one project by id
// @Tags         projects
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  models.Project
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/projects/{id} [get]
func GetProject(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := store.FindProject(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// SwitchProject godoc
// @Summary      Switch the active project
// @Description  Unknown ids fall back to the first known project.
// @Tags         projects
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  models.Project
// @Router       /api/projects/{id}/activate [post]
func SwitchProject(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := store.SwitchActiveProject(c.Param("id"))
		persist(db, store)
		c.JSON(http.StatusOK, gin.H{
			"activeProjectId": p.ID,
			"project":         p,
		})
	}
}

// ProjectRequest carries the editable project fields. Numeric fields are
// pointers so an omitted value keeps the stored one.
type ProjectRequest struct {
	ID              string   `json:"id"`
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Client          string   `json:"client"`
	Contractor      string   `json:"contractor"`
	Consultant      string   `json:"consultant"`
	Location        string   `json:"location"`
	StartDate       string   `json:"startDate"`
	PlannedEnd      string   `json:"plannedEnd"`
	ContractValue   *float64 `json:"contractValue"`
	Currency        string   `json:"currency"`
	CurrentProgress *int     `json:"currentProgress"`
	Status          string   `json:"status"`
	Description     string   `json:"description"`
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Blank identity fields get defaults; an empty bundle is created alongside.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      ProjectRequest  true  "Project data"
// @Success      201   {object}  models.Project
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/projects [post]
func CreateProject(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Status != "" {
			if err := models.ValidateProjectStatus(req.Status); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		p := store.AddProject(models.Project{
			ID:              req.ID,
			Code:            req.Code,
			Name:            req.Name,
			Client:          req.Client,
			Contractor:      req.Contractor,
			Consultant:      req.Consultant,
			Location:        req.Location,
			StartDate:       req.StartDate,
			PlannedEnd:      req.PlannedEnd,
			ContractValue:   floatOr(req.ContractValue, 0),
			Currency:        req.Currency,
			CurrentProgress: intOr(req.CurrentProgress, 0),
			Status:          req.Status,
			Description:     req.Description,
		})
		persist(db, store)
		c.JSON(http.StatusCreated, p)
	}
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Patch semantics, blank fields keep their stored values. Unknown ids are a quiet no-op.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Project ID"
// @Param        body  body      ProjectRequest  true  "Project fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/projects/{id} [put]
func UpdateProject(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Status != "" {
			if err := models.ValidateProjectStatus(req.Status); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		updated := store.UpdateProject(c.Param("id"), func(p *models.Project) {
			p.Code = strOr(req.Code, p.Code)
			p.Name = strOr(req.Name, p.Name)
			p.Client = strOr(req.Client, p.Client)
			p.Contractor = strOr(req.Contractor, p.Contractor)
			p.Consultant = strOr(req.Consultant, p.Consultant)
			p.Location = strOr(req.Location, p.Location)
			p.StartDate = strOr(req.StartDate, p.StartDate)
			p.PlannedEnd = strOr(req.PlannedEnd, p.PlannedEnd)
			p.ContractValue = floatOr(req.ContractValue, p.ContractValue)
			p.Currency = strOr(req.Currency, p.Currency)
			p.CurrentProgress = intOr(req.CurrentProgress, p.CurrentProgress)
			p.Status = strOr(req.Status, p.Status)
			p.Description = strOr(req.Description, p.Description)
		})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Project updated", "updated": updated})
	}
}

// DeleteProject godoc
// @Summary      Delete a project and its data bundle
// @Description  Requires confirm=final as a second confirmation step. The last remaining project cannot be deleted.
// @Tags         projects
// @Param        id       path      string  true  "Project ID"
// @Param        confirm  query     string  true  "Must be 'final'"
// @Success      200      {object}  models.MessageResponse
// @Failure      400      {object}  models.ErrorResponse
// @Failure      409      {object}  models.ErrorResponse
// @Router       /api/projects/{id} [delete]
func DeleteProject(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("confirm") != "final" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Deletion requires confirm=final; this removes the project and all its data",
			})
			return
		}
		deleted, ok, err := store.DeleteProject(c.Param("id"))
		if errors.Is(err, repository.ErrLastProject) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusOK, gin.H{"message": "Project not found", "deleted": false})
			return
		}
		persist(db, store)
		c.JSON(http.StatusOK, gin.H{
			"message":         "Project deleted: " + deleted.Name,
			"deleted":         true,
			"activeProjectId": store.ActiveProjectID(),
		})
	}
}
