package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func incidentsSel(b *models.ProjectBundle) *[]models.HSEIncident { return &b.HSE.Incidents }

// GetIncidents godoc
// @Summary      List HSE incidents and near-misses
// @Tags         hse
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (open, closed)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.HSEIncident
// @Router       /api/hse/incidents [get]
func GetIncidents(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), incidentsSel)
		out := make([]models.HSEIncident, 0, len(all))
		for _, i := range all {
			if matchesStatus(i.Status, status) && matchesQuery(i, q) {
				out = append(out, i)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetIncident godoc
// @Summary      Get one HSE incident by id
// @Tags         hse
// @Param        id   path      string  true  "Incident ID"
// @Success      200  {object}  models.HSEIncident
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/hse/incidents/{id} [get]
func GetIncident(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		i, ok := repository.Find(store, projectID(c, store), incidentsSel, func(i models.HSEIncident) bool { return i.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
			return
		}
		c.JSON(http.StatusOK, i)
	}
}

type IncidentRequest struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Desc             string `json:"desc"`
	Date             string `json:"date"`
	Severity         string `json:"severity"`
	Status           string `json:"status"`
	Casualties       *int   `json:"casualties"`
	Location         string `json:"location"`
	RootCause        string `json:"rootCause"`
	CorrectiveAction string `json:"correctiveAction"`
	Investigator     string `json:"investigator"`
}

// CreateIncident godoc
// @Summary      Report an HSE incident or near-miss
// @Tags         hse
// @Accept       json
// @Produce      json
// @Param        body  body      IncidentRequest  true  "Incident data"
// @Success      201   {object}  models.HSEIncident
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/hse/incidents [post]
func CreateIncident(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IncidentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("HSE", repository.Count(store, pid, incidentsSel))
		}
		i := models.HSEIncident{
			ID:               id,
			Type:             strOr(req.Type, "near-miss"),
			Desc:             req.Desc,
			Date:             strOr(req.Date, repository.Today()),
			Severity:         strOr(req.Severity, "low"),
			Status:           strOr(req.Status, "open"),
			Casualties:       intOr(req.Casualties, 0),
			Location:         req.Location,
			RootCause:        req.RootCause,
			CorrectiveAction: req.CorrectiveAction,
			Investigator:     req.Investigator,
		}
		repository.Add(store, pid, incidentsSel, i)
		persist(db, store)
		c.JSON(http.StatusCreated, i)
	}
}

// UpdateIncident godoc
// @Summary      Update an HSE incident
// @Tags         hse
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Incident ID"
// @Param        body  body      IncidentRequest  true  "Incident fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/hse/incidents/{id} [put]
func UpdateIncident(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IncidentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), incidentsSel,
			func(i models.HSEIncident) bool { return i.ID == id },
			func(i *models.HSEIncident) {
				i.Type = strOr(req.Type, i.Type)
				i.Desc = strOr(req.Desc, i.Desc)
				i.Date = strOr(req.Date, i.Date)
				i.Severity = strOr(req.Severity, i.Severity)
				i.Status = strOr(req.Status, i.Status)
				i.Casualties = intOr(req.Casualties, i.Casualties)
				i.Location = strOr(req.Location, i.Location)
				i.RootCause = strOr(req.RootCause, i.RootCause)
				i.CorrectiveAction = strOr(req.CorrectiveAction, i.CorrectiveAction)
				i.Investigator = strOr(req.Investigator, i.Investigator)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Incident updated", "updated": updated})
	}
}

// CloseIncident godoc
// @Summary      Close an HSE incident
// @Description  Sets status closed and stamps the closed date if it was never set.
// @Tags         hse
// @Param        id   path      string  true  "Incident ID"
// @Success      200  {object}  models.UpdateResultResponse
// @Router       /api/hse/incidents/{id}/close [post]
func CloseIncident(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), incidentsSel,
			func(i models.HSEIncident) bool { return i.ID == id },
			func(i *models.HSEIncident) {
				i.Status = "closed"
				if i.ClosedDate == "" {
					i.ClosedDate = repository.Today()
				}
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Incident closed", "updated": updated})
	}
}

// GetHSEStats godoc
// @Summary      Get safety statistics for a project
// @Tags         hse
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      {object}  models.HSEStats
// @Router       /api/hse/stats [get]
func GetHSEStats(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats models.HSEStats
		store.View(projectID(c, store), func(b *models.ProjectBundle) {
			stats = b.HSE.Stats
		})
		c.JSON(http.StatusOK, stats)
	}
}

type HSEStatsRequest struct {
	LTI          *int     `json:"lti"`
	NearMiss     *int     `json:"nearMiss"`
	ToolboxTalks *int     `json:"toolboxTalks"`
	SafeManHours *int     `json:"safeManHours"`
	LTIR         *float64 `json:"ltir"`
}

// UpdateHSEStats godoc
// @Summary      Update safety statistics
// @Tags         hse
// @Accept       json
// @Produce      json
// @Param        body  body      HSEStatsRequest  true  "Stats fields"
// @Success      200   {object}  models.HSEStats
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/hse/stats [put]
func UpdateHSEStats(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HSEStatsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var stats models.HSEStats
		store.Mutate(projectID(c, store), func(b *models.ProjectBundle) {
			b.HSE.Stats.LTI = intOr(req.LTI, b.HSE.Stats.LTI)
			b.HSE.Stats.NearMiss = intOr(req.NearMiss, b.HSE.Stats.NearMiss)
			b.HSE.Stats.ToolboxTalks = intOr(req.ToolboxTalks, b.HSE.Stats.ToolboxTalks)
			b.HSE.Stats.SafeManHours = intOr(req.SafeManHours, b.HSE.Stats.SafeManHours)
			b.HSE.Stats.LTIR = floatOr(req.LTIR, b.HSE.Stats.LTIR)
			stats = b.HSE.Stats
		})
		persist(db, store)
		c.JSON(http.StatusOK, stats)
	}
}
