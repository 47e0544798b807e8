package handlers

import (
	"database/sql"
	"net/http"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// NCRs, RFIs and site instructions share the open/closed lifecycle: closing
// is one-way and stamps the closure date only when it was never set.

func ncrSel(b *models.ProjectBundle) *[]models.NCR            { return &b.NCR }
func rfiSel(b *models.ProjectBundle) *[]models.RFI            { return &b.RFI }
func siSel(b *models.ProjectBundle) *[]models.SiteInstruction { return &b.SI }

// GetNCRs godoc
// @Summary      List non-conformance reports
// @Tags         ncr
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (open, closed)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.NCR
// @Router       /api/ncr [get]
func GetNCRs(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), ncrSel)
		out := make([]models.NCR, 0, len(all))
		for _, n := range all {
			if matchesStatus(n.Status, status) && matchesQuery(n, q) {
				out = append(out, n)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetNCR godoc
// @Summary      Get one NCR by id
// @Tags         ncr
// @Param        id   path      string  true  "NCR ID"
// @Success      200  {object}  models.NCR
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/ncr/{id} [get]
func GetNCR(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		n, ok := repository.Find(store, projectID(c, store), ncrSel, func(n models.NCR) bool { return n.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "NCR not found"})
			return
		}
		c.JSON(http.StatusOK, n)
	}
}

type NCRRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Raised      string `json:"raised"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	ClosureDate string `json:"closureDate"`
	File        string `json:"file"`
	Remarks     string `json:"remarks"`
	Location    string `json:"location"`
}

// CreateNCR godoc
// @Summary      Raise an NCR
// @Tags         ncr
// @Accept       json
// @Produce      json
// @Param        body  body      NCRRequest  true  "NCR data"
// @Success      201   {object}  models.NCR
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/ncr [post]
func CreateNCR(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NCRRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("NCR", repository.Count(store, pid, ncrSel))
		}
		n := models.NCR{
			ID:          id,
			Title:       strOr(req.Title, "Untitled NCR"),
			Raised:      strOr(req.Raised, "U001"),
			Date:        strOr(req.Date, repository.Today()),
			Status:      strOr(req.Status, "open"),
			Priority:    strOr(req.Priority, "medium"),
			AssignedTo:  req.AssignedTo,
			ClosureDate: req.ClosureDate,
			File:        req.File,
			Remarks:     req.Remarks,
			Location:    req.Location,
		}
		repository.Add(store, pid, ncrSel, n)
		persist(db, store)
		c.JSON(http.StatusCreated, n)
	}
}

// UpdateNCR godoc
// @Summary      Update an NCR
// @Tags         ncr
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "NCR ID"
// @Param        body  body      NCRRequest  true  "NCR fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/ncr/{id} [put]
func UpdateNCR(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NCRRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), ncrSel,
			func(n models.NCR) bool { return n.ID == id },
			func(n *models.NCR) {
				n.Title = strOr(req.Title, n.Title)
				n.Raised = strOr(req.Raised, n.Raised)
				n.Date = strOr(req.Date, n.Date)
				n.Status = strOr(req.Status, n.Status)
				n.Priority = strOr(req.Priority, n.Priority)
				n.AssignedTo = strOr(req.AssignedTo, n.AssignedTo)
				n.ClosureDate = strOr(req.ClosureDate, n.ClosureDate)
				n.File = strOr(req.File, n.File)
				n.Remarks = strOr(req.Remarks, n.Remarks)
				n.Location = strOr(req.Location, n.Location)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "NCR updated", "updated": updated})
	}
}

// CloseNCR godoc
// @Summary      Close an NCR
// @Description  Sets status closed and stamps the closure date if it was never set.
// @Tags         ncr
// @Param        id   path      string  true  "NCR ID"
// @Success      200  {object}  models.UpdateResultResponse
// @Router       /api/ncr/{id}/close [post]
func CloseNCR(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), ncrSel,
			func(n models.NCR) bool { return n.ID == id },
			func(n *models.NCR) {
				n.Status = "closed"
				if n.ClosureDate == "" {
					n.ClosureDate = repository.Today()
				}
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "NCR closed", "updated": updated})
	}
}

// GetRFIs godoc
// @Summary      List requests for information
// @Tags         rfi
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (open, closed)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.RFI
// @Router       /api/rfi [get]
func GetRFIs(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), rfiSel)
		out := make([]models.RFI, 0, len(all))
		for _, r := range all {
			if matchesStatus(r.Status, status) && matchesQuery(r, q) {
				out = append(out, r)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetRFI godoc
// @Summary      Get one RFI by id
// @Tags         rfi
// @Param        id   path      string  true  "RFI ID"
// @Success      200  {object}  models.RFI
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/rfi/{id} [get]
func GetRFI(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		r, ok := repository.Find(store, projectID(c, store), rfiSel, func(r models.RFI) bool { return r.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "RFI not found"})
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

type RFIRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Raised      string `json:"raised"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	ClosureDate string `json:"closureDate"`
	File        string `json:"file"`
	Remarks     string `json:"remarks"`
	Discipline  string `json:"discipline"`
}

// CreateRFI godoc
// @Summary      Raise an RFI
// @Tags         rfi
// @Accept       json
// @Produce      json
// @Param        body  body      RFIRequest  true  "RFI data"
// @Success      201   {object}  models.RFI
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/rfi [post]
func CreateRFI(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RFIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("RFI", repository.Count(store, pid, rfiSel))
		}
		r := models.RFI{
			ID:          id,
			Title:       strOr(req.Title, "Untitled RFI"),
			Raised:      strOr(req.Raised, "U001"),
			Date:        strOr(req.Date, repository.Today()),
			Status:      strOr(req.Status, "open"),
			Priority:    strOr(req.Priority, "medium"),
			AssignedTo:  req.AssignedTo,
			ClosureDate: req.ClosureDate,
			File:        req.File,
			Remarks:     req.Remarks,
			Discipline:  strOr(req.Discipline, "Civil"),
		}
		repository.Add(store, pid, rfiSel, r)
		persist(db, store)
		c.JSON(http.StatusCreated, r)
	}
}

// UpdateRFI godoc
// @Summary      Update an RFI
// @Tags         rfi
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "RFI ID"
// @Param        body  body      RFIRequest  true  "RFI fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/rfi/{id} [put]
func UpdateRFI(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RFIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), rfiSel,
			func(r models.RFI) bool { return r.ID == id },
			func(r *models.RFI) {
				r.Title = strOr(req.Title, r.Title)
				r.Raised = strOr(req.Raised, r.Raised)
				r.Date = strOr(req.Date, r.Date)
				r.Status = strOr(req.Status, r.Status)
				r.Priority = strOr(req.Priority, r.Priority)
				r.AssignedTo = strOr(req.AssignedTo, r.AssignedTo)
				r.ClosureDate = strOr(req.ClosureDate, r.ClosureDate)
				r.File = strOr(req.File, r.File)
				r.Remarks = strOr(req.Remarks, r.Remarks)
				r.Discipline = strOr(req.Discipline, r.Discipline)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "RFI updated", "updated": updated})
	}
}

// CloseRFI godoc
// @Summary      Close an RFI
// @Tags         rfi
// @Param        id   path      string  true  "RFI ID"
// @Success      200  {object}  models.UpdateResultResponse
// @Router       /api/rfi/{id}/close [post]
func CloseRFI(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), rfiSel,
			func(r models.RFI) bool { return r.ID == id },
			func(r *models.RFI) {
				r.Status = "closed"
				if r.ClosureDate == "" {
					r.ClosureDate = repository.Today()
				}
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "RFI closed", "updated": updated})
	}
}

// GetSIs godoc
// @Summary      List site instructions
// @Tags         si
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        status   query     string  false  "Status filter (open, closed)"
// @Param        q        query     string  false  "Free-text search"
// @Success      200      {array}   models.SiteInstruction
// @Router       /api/si [get]
func GetSIs(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		q := c.Query("q")
		all := repository.List(store, projectID(c, store), siSel)
		out := make([]models.SiteInstruction, 0, len(all))
		for _, s := range all {
			if matchesStatus(s.Status, status) && matchesQuery(s, q) {
				out = append(out, s)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetSI godoc
// @Summary      Get one site instruction by id
// @Tags         si
// @Param        id   path      string  true  "Site Instruction ID"
// @Success      200  {object}  models.SiteInstruction
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/si/{id} [get]
func GetSI(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s, ok := repository.Find(store, projectID(c, store), siSel, func(s models.SiteInstruction) bool { return s.ID == id })
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site instruction not found"})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

type SIRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IssuedBy    string `json:"issuedBy"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	ClosureDate string `json:"closureDate"`
	File        string `json:"file"`
	CostImpact  string `json:"costImpact"`
	Remarks     string `json:"remarks"`
	Ref         string `json:"ref"`
}

// CreateSI godoc
// @Summary      Issue a site instruction
// @Tags         si
// @Accept       json
// @Produce      json
// @Param        body  body      SIRequest  true  "Site instruction data"
// @Success      201   {object}  models.SiteInstruction
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/si [post]
func CreateSI(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pid := projectID(c, store)
		id := req.ID
		if id == "" {
			id = repository.NextID("SI", repository.Count(store, pid, siSel))
		}
		s := models.SiteInstruction{
			ID:          id,
			Title:       strOr(req.Title, "Untitled Instruction"),
			IssuedBy:    req.IssuedBy,
			Date:        strOr(req.Date, repository.Today()),
			Status:      strOr(req.Status, "open"),
			Priority:    strOr(req.Priority, "medium"),
			ClosureDate: req.ClosureDate,
			File:        req.File,
			CostImpact:  req.CostImpact,
			Remarks:     req.Remarks,
			Ref:         req.Ref,
		}
		repository.Add(store, pid, siSel, s)
		persist(db, store)
		c.JSON(http.StatusCreated, s)
	}
}

// UpdateSI godoc
// @Summary      Update a site instruction
// @Tags         si
// @Accept       json
// @Produce      json
// @Param        id    path      string     true  "Site Instruction ID"
// @Param        body  body      SIRequest  true  "Site instruction fields"
// @Success      200   {object}  models.UpdateResultResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/si/{id} [put]
func UpdateSI(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), siSel,
			func(s models.SiteInstruction) bool { return s.ID == id },
			func(s *models.SiteInstruction) {
				s.Title = strOr(req.Title, s.Title)
				s.IssuedBy = strOr(req.IssuedBy, s.IssuedBy)
				s.Date = strOr(req.Date, s.Date)
				s.Status = strOr(req.Status, s.Status)
				s.Priority = strOr(req.Priority, s.Priority)
				s.ClosureDate = strOr(req.ClosureDate, s.ClosureDate)
				s.File = strOr(req.File, s.File)
				s.CostImpact = strOr(req.CostImpact, s.CostImpact)
				s.Remarks = strOr(req.Remarks, s.Remarks)
				s.Ref = strOr(req.Ref, s.Ref)
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Site instruction updated", "updated": updated})
	}
}

// CloseSI godoc
// @Summary      Close a site instruction
// @Tags         si
// @Param        id   path      string  true  "Site Instruction ID"
// @Success      200  {object}  models.UpdateResultResponse
// @Router       /api/si/{id}/close [post]
func CloseSI(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		updated := repository.Update(store, projectID(c, store), siSel,
			func(s models.SiteInstruction) bool { return s.ID == id },
			func(s *models.SiteInstruction) {
				s.Status = "closed"
				if s.ClosureDate == "" {
					s.ClosureDate = repository.Today()
				}
			})
		if updated {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Site instruction closed", "updated": updated})
	}
}
