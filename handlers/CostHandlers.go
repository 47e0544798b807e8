package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// GetCost godoc
// @Summary      Get cost control data for a project
// @Tags         cost
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      {object}  models.CostData
// @Router       /api/cost [get]
func GetCost(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cost models.CostData
		store.View(projectID(c, store), func(b *models.ProjectBundle) {
			cost = b.Cost
			cost.Categories = append([]models.CostCategory{}, b.Cost.Categories...)
		})
		c.JSON(http.StatusOK, cost)
	}
}

type CostSummaryRequest struct {
	Budget            *float64 `json:"budget"`
	RevisedBudget     *float64 `json:"revisedBudget"`
	CommittedCost     *float64 `json:"committedCost"`
	ActualCost        *float64 `json:"actualCost"`
	ForecastFinalCost *float64 `json:"forecastFinalCost"`
	CostVariance      *float64 `json:"costVariance"`
}

// UpdateCostSummary godoc
// @Summary      Update the bundle-level cost totals
// @Tags         cost
// @Accept       json
// @Produce      json
// @Param        body  body      CostSummaryRequest  true  "Cost totals"
// @Success      200   {object}  models.CostData
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/cost [put]
func UpdateCostSummary(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CostSummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var cost models.CostData
		store.Mutate(projectID(c, store), func(b *models.ProjectBundle) {
			b.Cost.Budget = floatOr(req.Budget, b.Cost.Budget)
			b.Cost.RevisedBudget = floatOr(req.RevisedBudget, b.Cost.RevisedBudget)
			b.Cost.CommittedCost = floatOr(req.CommittedCost, b.Cost.CommittedCost)
			b.Cost.ActualCost = floatOr(req.ActualCost, b.Cost.ActualCost)
			b.Cost.ForecastFinalCost = floatOr(req.ForecastFinalCost, b.Cost.ForecastFinalCost)
			b.Cost.CostVariance = floatOr(req.CostVariance, b.Cost.CostVariance)
			cost = b.Cost
		})
		persist(db, store)
		c.JSON(http.StatusOK, cost)
	}
}

type CostCategoryRequest struct {
	Name      string   `json:"name"`
	Budget    *float64 `json:"budget"`
	Committed *float64 `json:"committed"`
	Actual    *float64 `json:"actual"`
	Forecast  *float64 `json:"forecast"`
}

// UpsertCostCategory godoc
// @Summary      Add or patch one cost category by name
// @Tags         cost
// @Accept       json
// @Produce      json
// @Param        body  body      CostCategoryRequest  true  "Category fields"
// @Success      200   {object}  models.CostCategory
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/cost/categories [put]
func UpsertCostCategory(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CostCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
			return
		}
		var out models.CostCategory
		store.Mutate(projectID(c, store), func(b *models.ProjectBundle) {
			for i := range b.Cost.Categories {
				if b.Cost.Categories[i].Name == req.Name {
					cat := &b.Cost.Categories[i]
					cat.Budget = floatOr(req.Budget, cat.Budget)
					cat.Committed = floatOr(req.Committed, cat.Committed)
					cat.Actual = floatOr(req.Actual, cat.Actual)
					cat.Forecast = floatOr(req.Forecast, cat.Forecast)
					out = *cat
					return
				}
			}
			out = models.CostCategory{
				Name:      req.Name,
				Budget:    floatOr(req.Budget, 0),
				Committed: floatOr(req.Committed, 0),
				Actual:    floatOr(req.Actual, 0),
				Forecast:  floatOr(req.Forecast, 0),
			}
			b.Cost.Categories = append(b.Cost.Categories, out)
		})
		persist(db, store)
		c.JSON(http.StatusOK, out)
	}
}
