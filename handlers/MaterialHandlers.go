package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func materialsSel(b *models.ProjectBundle) *[]models.Material { return &b.Materials }

// GetMaterials godoc
// @Summary      List material submittals with optional filters
// @Tags         materials
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.Material
// @Router       /api/materials [get]
func GetMaterials(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), materialsSel)
		out := make([]models.Material, 0, len(all))
		for _, m := range all {
			if matchesStatus(m.Status, status) && matchesQuery(m, q) {
				out = append(out, m)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetMaterial godoc
// @Summary      Get one material submittal by id
// @Tags         materials
// @Param        id   path      string  true  "Material ID"
// @Success      200  {object}  models.Material
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/materials/{id} [get]
func GetMaterial(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		m, ok := repository.Find(store, projectID(c, store), materialsSel, func(m models.Material) bool { return m.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

type MaterialRequest struct {
	ID           string   `json:"id"`
	Item         string   `json:"item"`
	BOQRef       string   `json:"boqRef"`
	PONo         string   `json:"poNo"`
	Supplier     string   `json:"supplier"`
	Rev          *int     `json:"rev"`
	Status       string   `json:"status"`
	SubmitDate   string   `json:"submitDate"`
	ApproveDate  string   `json:"approveDate"`
	DeliveryDate string   `json:"deliveryDate"`
	Qty          *float64 `json:"qty"`
	Unit         string   `json:"unit"`
	Remarks      string   `json:"remarks"`
}

// CreateMaterial godoc
// @Summary      Add a material submittal
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        body  body      MaterialRequest  true  "Material data"
// @Success      201   {object}  models.Material
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/materials [post]
func CreateMaterial(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MaterialRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("MAT", repository.Count(store, pid, materialsSel))
		}
		m := models.Material{
			ID:           id,
			Item:         strOr(req.Item, "Unnamed Item"),
			BOQRef:       req.BOQRef,
			PONo:         req.PONo,
			Supplier:     req.Supplier,
			Rev:          intOr(req.Rev, 1),
			Status:       strOr(req.Status, "submitted"),
			SubmitDate:   strOr(req.SubmitDate, repository.Today()),
			ApproveDate:  req.ApproveDate,
			DeliveryDate: req.DeliveryDate,
			Qty:          floatOr(req.Qty, 0),
			Unit:         req.Unit,
			Remarks:      req.Remarks,
		}
		repository.Add(store, pid, materialsSel, m)
		persist(db, store)
		c.JSON(http.StatusCreated, m)
	}
}

// UpdateMaterial godoc
// @Summary      Update a material submittal
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Material ID"
// @Param        body  body      MaterialRequest  true  "Material fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/materials/{id} [put]
func UpdateMaterial(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MaterialRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), materialsSel,
			func(m models.Material) bool { return m.ID == id },
			func(m *models.Material) {
				m.Item = strOr(req.Item, m.Item)
				m.BOQRef = strOr(req.BOQRef, m.BOQRef)
				m.PONo = strOr(req.PONo, m.PONo)
				m.Supplier = strOr(req.Supplier, m.Supplier)
				m.Rev = intOr(req.Rev, m.Rev)
				m.Status = strOr(req.Status, m.Status)
				m.SubmitDate = strOr(req.SubmitDate, m.SubmitDate)
				m.ApproveDate = strOr(req.ApproveDate, m.ApproveDate)
				m.DeliveryDate = strOr(req.DeliveryDate, m.DeliveryDate)
				m.Qty = floatOr(req.Qty, m.Qty)
				m.Unit = strOr(req.Unit, m.Unit)
				m.Remarks = strOr(req.Remarks, m.Remarks)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Material updated", "updated": updated})
	}
}
