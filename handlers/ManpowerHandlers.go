package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func equipmentSel(b *models.ProjectBundle) *[]models.Equipment { return &b.Manpower.Equipment }

// GetManpower godoc
// @Summary      Get manpower and equipment data for a project
// @Tags         manpower
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      {object}  models.ManpowerData
// @Router       /api/manpower [get]
func GetManpower(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var mp models.ManpowerData
		store.View(projectID(c, store), func(b *models.ProjectBundle) {
			mp = b.Manpower
			mp.Weekly = append([]models.WeeklyManpower{}, b.Manpower.Weekly...)
			mp.Equipment = append([]models.Equipment{}, b.Manpower.Equipment...)
		})
		c.JSON(http.StatusOK, mp)
	}
}

type DailyManpowerRequest struct {
	Date         string `json:"date"`
	TotalWorkers *int   `json:"totalWorkers"`
	Skilled      *int   `json:"skilled"`
	Unskilled    *int   `json:"unskilled"`
	Staff        *int   `json:"staff"`
}

// UpdateTodayManpower godoc
// @Summary      Update today's headcount
// @Tags         manpower
// @Accept       json
// @Produce      json
// @Param        body  body      DailyManpowerRequest  true  "Headcount fields"
// @Success      200   {object}  models.DailyManpower
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/manpower/today [put]
func UpdateTodayManpower(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DailyManpowerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var today models.DailyManpower
		store.Mutate(projectID(c, store), func(b *models.ProjectBundle) {
			t := &b.Manpower.Today
			t.Date = strOr(req.Date, t.Date)
			t.TotalWorkers = intOr(req.TotalWorkers, t.TotalWorkers)
			t.Skilled = intOr(req.Skilled, t.Skilled)
			t.Unskilled = intOr(req.Unskilled, t.Unskilled)
			t.Staff = intOr(req.Staff, t.Staff)
			today = *t
		})
		persist(db, store)
		c.JSON(http.StatusOK, today)
	}
}

type WeeklyManpowerRequest struct {
	Week      string `json:"week"`
	Target    *int   `json:"target"`
	Actual    *int   `json:"actual"`
	Skilled   *int   `json:"skilled"`
	Unskilled *int   `json:"unskilled"`
	Staff     *int   `json:"staff"`
}

// UpsertWeeklyManpower godoc
// @Summary      Add or patch one weekly manpower row by week label
// @Description  Actual counts stay null until reported; patching never clears a reported value.
// @Tags         manpower
// @Accept       json
// @Produce      json
// @Param        body  body      WeeklyManpowerRequest  true  "Weekly row"
// @Success      200   {object}  models.WeeklyManpower
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/manpower/weekly [put]
func UpsertWeeklyManpower(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WeeklyManpowerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Week == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Week label is required"})
			return
		}
		var out models.WeeklyManpower
		store.Mutate(projectID(c, store), func(b *models.ProjectBundle) {
			for i := range b.Manpower.Weekly {
				if b.Manpower.Weekly[i].Week == req.Week {
					w := &b.Manpower.Weekly[i]
					w.Target = intOr(req.Target, w.Target)
					if req.Actual != nil {
						w.Actual = req.Actual
					}
					if req.Skilled != nil {
						w.Skilled = req.Skilled
					}
					if req.Unskilled != nil {
						w.Unskilled = req.Unskilled
					}
					if req.Staff != nil {
						w.Staff = req.Staff
					}
					out = *w
					return
				}
			}
			out = models.WeeklyManpower{
				Week:      req.Week,
				Target:    intOr(req.Target, 0),
				Actual:    req.Actual,
				Skilled:   req.Skilled,
				Unskilled: req.Unskilled,
				Staff:     req.Staff,
			}
			b.Manpower.Weekly = append(b.Manpower.Weekly, out)
		})
		persist(db, store)
		c.JSON(http.StatusOK, out)
	}
}

type EquipmentRequest struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Utilization *int   `json:"utilization"`
	Operator    string `json:"operator"`
	Location    string `json:"location"`
}

// CreateEquipment godoc
// @Summary      Add an equipment record
// @Tags         manpower
// @Accept       json
// @Produce      json
// @Param        body  body      EquipmentRequest  true  "Equipment data"
// @Success      201   {object}  models.Equipment
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/manpower/equipment [post]
func CreateEquipment(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EquipmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("EQ", repository.Count(store, pid, equipmentSel))
		}
		e := models.Equipment{
			ID:          id,
			Type:        strOr(req.Type, "Unspecified"),
			Status:      strOr(req.Status, "standby"),
			Utilization: intOr(req.Utilization, 0),
			Operator:    req.Operator,
			Location:    req.Location,
		}
		repository.Add(store, pid, equipmentSel, e)
		persist(db, store)
		c.JSON(http.StatusCreated, e)
	}
}

// UpdateEquipment godoc
// @Summary      Update an equipment record
// @Tags         manpower
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Equipment ID"
// @Param        body  body      EquipmentRequest  true  "Equipment fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/manpower/equipment/{id} [put]
func UpdateEquipment(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EquipmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), equipmentSel,
			func(e models.Equipment) bool { return e.ID == id },
			func(e *models.Equipment) {
				e.Type = strOr(req.Type, e.Type)
				e.Status = strOr(req.Status, e.Status)
				e.Utilization = intOr(req.Utilization, e.Utilization)
				e.Operator = strOr(req.Operator, e.Operator)
				e.Location = strOr(req.Location, e.Location)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Equipment updated", "updated": updated})
	}
}
