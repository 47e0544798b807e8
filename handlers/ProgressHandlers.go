package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func milestonesSel(b *models.ProjectBundle) *[]models.Milestone { return &b.Progress.Milestones }

// GetProgress godoc
// @Summary      Get progress data (milestones, S-curve, discipline breakdown)
// @Tags         progress
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      {object}  models.ProgressData
// @Router       /api/progress [get]
func GetProgress(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pd models.ProgressData
		store.View(projectID(c, store), func(b *models.ProjectBundle) {
			pd.Milestones = append([]models.Milestone{}, b.Progress.Milestones...)
			pd.SCurveData = append([]models.SCurvePoint{}, b.Progress.SCurveData...)
			pd.DisciplineProgress = append([]models.DisciplineProgress{}, b.Progress.DisciplineProgress...)
		})
		c.JSON(http.StatusOK, pd)
	}
}

type MilestoneRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Planned string `json:"planned"`
	Actual  string `json:"actual"`
	Status  string `json:"status"`
	Delay   *int   `json:"delay"`
}

// CreateMilestone godoc
// @Summary      Add a milestone
// @Tags         progress
// @Accept       json
// @Produce      json
// @Param        body  body      MilestoneRequest  true  "Milestone data"
// @Success      201   {object}  models.Milestone
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/progress/milestones [post]
func CreateMilestone(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MilestoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("MST", repository.Count(store, pid, milestonesSel))
		}
		m := models.Milestone{
			ID:      id,
			Name:    strOr(req.Name, "Unnamed Milestone"),
			Planned: req.Planned,
			Actual:  req.Actual,
			Status:  strOr(req.Status, "on-track"),
			Delay:   intOr(req.Delay, 0),
		}
		repository.Add(store, pid, milestonesSel, m)
		persist(db, store)
		c.JSON(http.StatusCreated, m)
	}
}

// UpdateMilestone godoc
// @Summary      Update a milestone
// @Tags         progress
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Milestone ID"
// @Param        body  body      MilestoneRequest  true  "Milestone fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/progress/milestones/{id} [put]
func UpdateMilestone(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MilestoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), milestonesSel,
			func(m models.Milestone) bool { return m.ID == id },
			func(m *models.Milestone) {
				m.Name = strOr(req.Name, m.Name)
				m.Planned = strOr(req.Planned, m.Planned)
				m.Actual = strOr(req.Actual, m.Actual)
				m.Status = strOr(req.Status, m.Status)
				m.Delay = intOr(req.Delay, m.Delay)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Milestone updated", "updated": updated})
	}
}

type SCurvePointRequest struct {
	Month   string   `json:"month"`
	Planned *float64 `json:"planned"`
	Actual  *float64 `json:"actual"`
}

// UpsertSCurvePoint godoc
// @Summary      Add or patch one S-curve month
// @Description  Actual stays null until the month is reported; a reported value is never cleared by a patch.
// @Tags         progress
// @Accept       json
// @Produce      json
// @Param        body  body      SCurvePointRequest  true  "S-curve point"
// @Success      200   {object}  models.SCurvePoint
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/progress/scurve [put]
func UpsertSCurvePoint(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SCurvePointRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Month == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month label is required"})
			return
		}
		var out models.SCurvePoint
		store.Mutate(projectID(c, store), func(b *models.ProjectBundle) {
			for i := range b.Progress.SCurveData {
				if b.Progress.SCurveData[i].Month == req.Month {
					p := &b.Progress.SCurveData[i]
					p.Planned = floatOr(req.Planned, p.Planned)
					if req.Actual != nil {
						p.Actual = req.Actual
					}
					out = *p
					return
				}
			}
			out = models.SCurvePoint{
				Month:   req.Month,
				Planned: floatOr(req.Planned, 0),
				Actual:  req.Actual,
			}
			b.Progress.SCurveData = append(b.Progress.SCurveData, out)
		})
		persist(db, store)
		c.JSON(http.StatusOK, out)
	}
}

type DisciplineProgressRequest struct {
	Name     string `json:"name"`
	Progress *int   `json:"progress"`
	Planned  *int   `json:"planned"`
}

// UpsertDisciplineProgress godoc
// @Summary      Add or patch one discipline progress row by name
// @Tags         progress
// @Accept       json
// @Produce      json
// @Param        body  body      DisciplineProgressRequest  true  "Discipline row"
// @Success      200   {object}  models.DisciplineProgress
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/progress/disciplines [put]
func UpsertDisciplineProgress(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DisciplineProgressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discipline name is required"})
			return
		}
		var out models.DisciplineProgress
		store.Mutate(projectID(c, store), func(b *models.ProjectBundle) {
			for i := range b.Progress.DisciplineProgress {
				if b.Progress.DisciplineProgress[i].Name == req.Name {
					d := &b.Progress.DisciplineProgress[i]
					d.Progress = intOr(req.Progress, d.Progress)
					d.Planned = intOr(req.Planned, d.Planned)
					out = *d
					return
				}
			}
			out = models.DisciplineProgress{
				Name:     req.Name,
				Progress: intOr(req.Progress, 0),
				Planned:  intOr(req.Planned, 0),
			}
			b.Progress.DisciplineProgress = append(b.Progress.DisciplineProgress, out)
		})
		persist(db, store)
		c.JSON(http.StatusOK, out)
	}
}
