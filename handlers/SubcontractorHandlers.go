package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func subcontractorsSel(b *models.ProjectBundle) *[]models.Subcontractor { return &b.Subcontractors }

// GetSubcontractors godoc
// @Summary      List subcontractors
// @Tags         subcontractors
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (not-started, mobilizing, active, completed)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.Subcontractor
// @Router       /api/subcontractors [get]
func GetSubcontractors(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), subcontractorsSel)
		out := make([]models.Subcontractor, 0, len(all))
		for _, s := range all {
			if matchesStatus(s.Status, status) && matchesQuery(s, q) {
				out = append(out, s)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetSubcontractor godoc
// @Summary      Get one subcontractor by id
// @Tags         subcontractors
// @Param        id   path      string  true  "Subcontractor ID"
// @Success      200  {object}  models.Subcontractor
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/subcontractors/{id} [get]
func GetSubcontractor(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s, ok := repository.Find(store, projectID(c, store), subcontractorsSel, func(s models.Subcontractor) bool { return s.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subcontractor not found"})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

type SubcontractorRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Scope         string   `json:"scope"`
	Status        string   `json:"status"`
	Workers       *int     `json:"workers"`
	ContractValue *float64 `json:"contractValue"`
	PaidToDate    *float64 `json:"paidToDate"`
	Performance   *int     `json:"performance"`
	Safety        *int     `json:"safety"`
	PORef         string   `json:"poRef"`
	ContactPerson string   `json:"contactPerson"`
	Phone         string   `json:"phone"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
}

// CreateSubcontractor godoc
// @Summary      Add a subcontractor
// @Tags         subcontractors
// @Accept       json
// @Produce      json
// @Param        body  body      SubcontractorRequest  true  "Subcontractor data"
// @Success      201   {object}  models.Subcontractor
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/subcontractors [post]
func CreateSubcontractor(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubcontractorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("SC", repository.Count(store, pid, subcontractorsSel))
		}
		s := models.Subcontractor{
			ID:            id,
			Name:          strOr(req.Name, "Unnamed Subcontractor"),
			Scope:         req.Scope,
			Status:        strOr(req.Status, "not-started"),
			Workers:       intOr(req.Workers, 0),
			ContractValue: floatOr(req.ContractValue, 0),
			PaidToDate:    floatOr(req.PaidToDate, 0),
			Performance:   intOr(req.Performance, 0),
			Safety:        intOr(req.Safety, 0),
			PORef:         req.PORef,
			ContactPerson: req.ContactPerson,
			Phone:         req.Phone,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
		}
		repository.Add(store, pid, subcontractorsSel, s)
		persist(db, store)
		c.JSON(http.StatusCreated, s)
	}
}

// UpdateSubcontractor godoc
// @Summary      Update a subcontractor
// @Tags         subcontractors
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Subcontractor ID"
// @Param        body  body      SubcontractorRequest  true  "Subcontractor fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/subcontractors/{id} [put]
func UpdateSubcontractor(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubcontractorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), subcontractorsSel,
			func(s models.Subcontractor) bool { return s.ID == id },
			func(s *models.Subcontractor) {
				s.Name = strOr(req.Name, s.Name)
				s.Scope = strOr(req.Scope, s.Scope)
				s.Status = strOr(req.Status, s.Status)
				s.Workers = intOr(req.Workers, s.Workers)
				s.ContractValue = floatOr(req.ContractValue, s.ContractValue)
				s.PaidToDate = floatOr(req.PaidToDate, s.PaidToDate)
				s.Performance = intOr(req.Performance, s.Performance)
				s.Safety = intOr(req.Safety, s.Safety)
				s.PORef = strOr(req.PORef, s.PORef)
				s.ContactPerson = strOr(req.ContactPerson, s.ContactPerson)
				s.Phone = strOr(req.Phone, s.Phone)
				s.StartDate = strOr(req.StartDate, s.StartDate)
				s.EndDate = strOr(req.EndDate, s.EndDate)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subcontractor updated", "updated": updated})
	}
}
