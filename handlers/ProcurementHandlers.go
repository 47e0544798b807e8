package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

func procurementSel(b *models.ProjectBundle) *[]models.PurchaseOrder { return &b.Procurement }

// GetPurchaseOrders godoc
// @Summary      List purchase orders
// @Tags         procurement
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (pending, active, partially-delivered, delivered)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.PurchaseOrder
// @Router       /api/procurement [get]
func GetPurchaseOrders(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), procurementSel)
		out := make([]models.PurchaseOrder, 0, len(all))
		for _, po := range all {
			if matchesStatus(po.Status, status) && matchesQuery(po, q) {
				out = append(out, po)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetPurchaseOrder godoc
// @Summary      Get one purchase order by id
// @Tags         procurement
// @Param        id   path      string  true  "Purchase Order ID"
// @Success      200  {object}  models.PurchaseOrder
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/procurement/{id} [get]
func GetPurchaseOrder(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		po, ok := repository.Find(store, projectID(c, store), procurementSel, func(p models.PurchaseOrder) bool { return p.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
			return
		}
		c.JSON(http.StatusOK, po)
	}
}

type PurchaseOrderRequest struct {
	ID           string   `json:"id"`
	Item         string   `json:"item"`
	Vendor       string   `json:"vendor"`
	POValue      *float64 `json:"poValue"`
	Status       string   `json:"status"`
	PODate       string   `json:"poDate"`
	DeliveryDate string   `json:"deliveryDate"`
	PayStatus    string   `json:"payStatus"`
	Performance  *int     `json:"performance"`
	Remarks      string   `json:"remarks"`
}

// CreatePurchaseOrder godoc
// @Summary      Add a purchase order
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        body  body      PurchaseOrderRequest  true  "Purchase order data"
// @Success      201   {object}  models.PurchaseOrder
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/procurement [post]
func CreatePurchaseOrder(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PurchaseOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("PO", repository.Count(store, pid, procurementSel))
		}
		po := models.PurchaseOrder{
			ID:           id,
			Item:         strOr(req.Item, "Unnamed Item"),
			Vendor:       req.Vendor,
			POValue:      floatOr(req.POValue, 0),
			Status:       strOr(req.Status, "pending"),
			PODate:       strOr(req.PODate, repository.Today()),
			DeliveryDate: req.DeliveryDate,
			PayStatus:    strOr(req.PayStatus, "0% paid"),
			Performance:  intOr(req.Performance, 0),
			Remarks:      req.Remarks,
		}
		repository.Add(store, pid, procurementSel, po)
		persist(db, store)
		c.JSON(http.StatusCreated, po)
	}
}

// UpdatePurchaseOrder godoc
// @Summary      Update a purchase order
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Purchase Order ID"
// @Param        body  body      PurchaseOrderRequest  true  "Purchase order fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/procurement/{id} [put]
func UpdatePurchaseOrder(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PurchaseOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), procurementSel,
			func(p models.PurchaseOrder) bool { return p.ID == id },
			func(p *models.PurchaseOrder) {
				p.Item = strOr(req.Item, p.Item)
				p.Vendor = strOr(req.Vendor, p.Vendor)
				p.POValue = floatOr(req.POValue, p.POValue)
				p.Status = strOr(req.Status, p.Status)
				p.PODate = strOr(req.PODate, p.PODate)
				p.DeliveryDate = strOr(req.DeliveryDate, p.DeliveryDate)
				p.PayStatus = strOr(req.PayStatus, p.PayStatus)
				p.Performance = intOr(req.Performance, p.Performance)
				p.Remarks = strOr(req.Remarks, p.Remarks)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Purchase order updated", "updated": updated})
	}
}
