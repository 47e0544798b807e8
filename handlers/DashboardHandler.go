package handlers

import (
	"net/http"

	"backend/models"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard godoc
// @Summary      Get KPI snapshot for a project
// @Description  KPIs are derived from the bundle on every call and never stored.
// @Tags         dashboard
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      {object}  object
// @Router       /api/dashboard [get]
func GetDashboard(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		pid := projectID(c, store)
		project, ok := store.FindProject(pid)
		if !ok {
			project = store.ActiveProject()
			pid = project.ID
		}
		bundle := store.BundleCopy(pid)
		kpis := services.ComputeKPIs(&bundle, project)
		c.JSON(http.StatusOK, gin.H{
			"project": project,
			"kpis":    kpis,
		})
	}
}

// GetUsers godoc
// @Summary      List the user directory
// @Tags         reference
// @Success      200  {array}  models.User
// @Router       /api/users [get]
func GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SeedUsers)
	}
}

// GetDisciplines godoc
// @Summary      List the discipline options offered on drawing forms
// @Tags         reference
// @Success      200  {array}  string
// @Router       /api/disciplines [get]
func GetDisciplines() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Disciplines)
	}
}
