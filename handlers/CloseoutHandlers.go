package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func closeoutSel(b *models.ProjectBundle) *[]models.CloseoutItem { return &b.Closeout }

// GetCloseoutItems godoc
// @Summary      List closeout and handover items
// @Tags         closeout
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (not-started, in-progress, complete)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.CloseoutItem
// @Router       /api/closeout [get]
func GetCloseoutItems(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), closeoutSel)
		out := make([]models.CloseoutItem, 0, len(all))
		for _, item := range all {
			if matchesStatus(item.Status, status) && matchesQuery(item, q) {
				out = append(out, item)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetCloseoutItem godoc
// @Summary      Get one closeout item by id
// @Tags         closeout
// @Param        id   path      string  true  "Closeout Item ID"
// @Success      200  {object}  models.CloseoutItem
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/closeout/{id} [get]
func GetCloseoutItem(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		item, ok := repository.Find(store, projectID(c, store), closeoutSel, func(i models.CloseoutItem) bool { return i.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Closeout item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

type CloseoutRequest struct {
	ID         string `json:"id"`
	Item       string `json:"item"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	Due        string `json:"due"`
	AssignedTo string `json:"assignedTo"`
	Remarks    string `json:"remarks"`
}

// CreateCloseoutItem godoc
// @Summary      Add a closeout item
// @Tags         closeout
// @Accept       json
// @Produce      json
// @Param        body  body      CloseoutRequest  true  "Closeout item data"
// @Success      201   {object}  models.CloseoutItem
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/closeout [post]
func CreateCloseoutItem(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CloseoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("CL", repository.Count(store, pid, closeoutSel))
		}
		item := models.CloseoutItem{
			ID:         id,
			Item:       strOr(req.Item, "Unnamed Item"),
			Category:   req.Category,
			Status:     strOr(req.Status, "not-started"),
			Due:        req.Due,
			AssignedTo: req.AssignedTo,
			Remarks:    req.Remarks,
		}
		repository.Add(store, pid, closeoutSel, item)
		persist(db, store)
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateCloseoutItem godoc
// @Summary      Update a closeout item
// @Tags         closeout
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Closeout Item ID"
// @Param        body  body      CloseoutRequest  true  "Closeout item fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/closeout/{id} [put]
func UpdateCloseoutItem(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CloseoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), closeoutSel,
			func(i models.CloseoutItem) bool { return i.ID == id },
			func(i *models.CloseoutItem) {
				i.Item = strOr(req.Item, i.Item)
				i.Category = strOr(req.Category, i.Category)
				i.Status = strOr(req.Status, i.Status)
				i.Due = strOr(req.Due, i.Due)
				i.AssignedTo = strOr(req.AssignedTo, i.AssignedTo)
				i.Remarks = strOr(req.Remarks, i.Remarks)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Closeout item updated", "updated": updated})
	}
}

// CompleteCloseoutItem godoc
// @Summary      Mark a closeout item complete
// @Description  Sets status complete and stamps the completed date if it was never set.
// @Tags         closeout
// @Param        id   path      string  true  "Closeout Item ID"
// @Success      200  {object}  models.UpdateResultResponse
// @Router       /api/closeout/{id}/complete [post]
func CompleteCloseoutItem(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), closeoutSel,
			func(i models.CloseoutItem) bool { return i.ID == id },
			func(i *models.CloseoutItem) {
				i.Status = "complete"
				if i.CompletedDate == "" {
					i.CompletedDate = repository.Today()
				}
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Closeout item completed", "updated": updated})
	}
}
