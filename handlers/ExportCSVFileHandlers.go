package handlers

import (
	"net/http"
	"strconv"
	"time"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func fmtInt(v int) string { return strconv.Itoa(v) }

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func fmtIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func fmtFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// moduleTable renders one register as a header row plus data rows. Every
// export surface (CSV, XLSX, PDF) reads from here so the column sets stay
// identical across formats.
func moduleTable(module string, store *repository.ProjectStore, pid string) ([]string, [][]string, bool) {
	switch module {
	case "projects":
		headers := []string{"id", "code", "name", "client", "contractor", "consultant", "location",
			"startDate", "plannedEnd", "contractValue", "currency", "currentProgress", "status", "description"}
		var rows [][]string
		for _, p := range store.Projects() {
			rows = append(rows, []string{p.ID, p.Code, p.Name, p.Client, p.Contractor, p.Consultant,
				p.Location, p.StartDate, p.PlannedEnd, fmtFloat(p.ContractValue), p.Currency,
				fmtInt(p.CurrentProgress), p.Status, p.Description})
		}
		return headers, rows, true

	case "drawings":
		headers := []string{"id", "title", "discipline", "rev", "status", "submittedBy", "date", "consultant", "file", "comments"}
		var rows [][]string
		for _, d := range repository.List(store, pid, drawingsSel) {
			rows = append(rows, []string{d.ID, d.Title, d.Discipline, fmtInt(d.Rev), d.Status,
				d.SubmittedBy, d.Date, d.Consultant, d.File, d.Comments})
		}
		return headers, rows, true

	case "materials":
		headers := []string{"id", "item", "boqRef", "poNo", "supplier", "rev", "status", "submitDate",
			"approveDate", "deliveryDate", "qty", "unit", "remarks"}
		var rows [][]string
		for _, m := range repository.List(store, pid, materialsSel) {
			rows = append(rows, []string{m.ID, m.Item, m.BOQRef, m.PONo, m.Supplier, fmtInt(m.Rev),
				m.Status, m.SubmitDate, m.ApproveDate, m.DeliveryDate, fmtFloat(m.Qty), m.Unit, m.Remarks})
		}
		return headers, rows, true

	case "methods":
		headers := []string{"id", "title", "category", "risk", "rev", "status", "submittedBy", "date", "hseReview", "file"}
		var rows [][]string
		for _, m := range repository.List(store, pid, methodsSel) {
			rows = append(rows, []string{m.ID, m.Title, m.Category, m.Risk, fmtInt(m.Rev), m.Status,
				m.SubmittedBy, m.Date, m.HSEReview, m.File})
		}
		return headers, rows, true

	case "ncr":
		headers := []string{"id", "title", "raised", "date", "status", "priority", "assignedTo",
			"closureDate", "file", "remarks", "location"}
		var rows [][]string
		for _, n := range repository.List(store, pid, ncrSel) {
			rows = append(rows, []string{n.ID, n.Title, n.Raised, n.Date, n.Status, n.Priority,
				n.AssignedTo, n.ClosureDate, n.File, n.Remarks, n.Location})
		}
		return headers, rows, true

	case "rfi":
		headers := []string{"id", "title", "raised", "date", "status", "priority", "assignedTo",
			"closureDate", "file", "remarks", "discipline"}
		var rows [][]string
		for _, r := range repository.List(store, pid, rfiSel) {
			rows = append(rows, []string{r.ID, r.Title, r.Raised, r.Date, r.Status, r.Priority,
				r.AssignedTo, r.ClosureDate, r.File, r.Remarks, r.Discipline})
		}
		return headers, rows, true

	case "si":
		headers := []string{"id", "title", "issuedBy", "date", "status", "priority", "closureDate",
			"file", "costImpact", "remarks", "ref"}
		var rows [][]string
		for _, s := range repository.List(store, pid, siSel) {
			rows = append(rows, []string{s.ID, s.Title, s.IssuedBy, s.Date, s.Status, s.Priority,
				s.ClosureDate, s.File, s.CostImpact, s.Remarks, s.Ref})
		}
		return headers, rows, true

	case "testing":
		headers := []string{"id", "system", "type", "date", "rev", "status", "cert", "file", "remarks"}
		var rows [][]string
		for _, t := range repository.List(store, pid, testingSel) {
			rows = append(rows, []string{t.ID, t.System, t.Type, t.Date, fmtInt(t.Rev), t.Status,
				t.Cert, t.File, t.Remarks})
		}
		return headers, rows, true

	case "procurement":
		headers := []string{"id", "item", "vendor", "poValue", "status", "poDate", "deliveryDate",
			"payStatus", "performance", "remarks"}
		var rows [][]string
		for _, po := range repository.List(store, pid, procurementSel) {
			rows = append(rows, []string{po.ID, po.Item, po.Vendor, fmtFloat(po.POValue), po.Status,
				po.PODate, po.DeliveryDate, po.PayStatus, fmtInt(po.Performance), po.Remarks})
		}
		return headers, rows, true

	case "subcontractors":
		headers := []string{"id", "name", "scope", "status", "workers", "contractValue", "paidToDate",
			"performance", "safety", "poRef", "contactPerson", "phone", "startDate", "endDate"}
		var rows [][]string
		for _, s := range repository.List(store, pid, subcontractorsSel) {
			rows = append(rows, []string{s.ID, s.Name, s.Scope, s.Status, fmtInt(s.Workers),
				fmtFloat(s.ContractValue), fmtFloat(s.PaidToDate), fmtInt(s.Performance),
				fmtInt(s.Safety), s.PORef, s.ContactPerson, s.Phone, s.StartDate, s.EndDate})
		}
		return headers, rows, true

	case "hse":
		headers := []string{"id", "type", "desc", "date", "severity", "status", "casualties",
			"location", "rootCause", "correctiveAction", "investigator", "closedDate"}
		var rows [][]string
		for _, i := range repository.List(store, pid, incidentsSel) {
			rows = append(rows, []string{i.ID, i.Type, i.Desc, i.Date, i.Severity, i.Status,
				fmtInt(i.Casualties), i.Location, i.RootCause, i.CorrectiveAction, i.Investigator, i.ClosedDate})
		}
		return headers, rows, true

	case "closeout":
		headers := []string{"id", "item", "category", "status", "due", "assignedTo", "remarks", "completedDate"}
		var rows [][]string
		for _, item := range repository.List(store, pid, closeoutSel) {
			rows = append(rows, []string{item.ID, item.Item, item.Category, item.Status, item.Due,
				item.AssignedTo, item.Remarks, item.CompletedDate})
		}
		return headers, rows, true

	case "equipment":
		headers := []string{"id", "type", "status", "utilization", "operator", "location"}
		var rows [][]string
		for _, e := range repository.List(store, pid, equipmentSel) {
			rows = append(rows, []string{e.ID, e.Type, e.Status, fmtInt(e.Utilization), e.Operator, e.Location})
		}
		return headers, rows, true

	case "milestones":
		headers := []string{"id", "name", "planned", "actual", "status", "delay"}
		var rows [][]string
		for _, m := range repository.List(store, pid, milestonesSel) {
			rows = append(rows, []string{m.ID, m.Name, m.Planned, m.Actual, m.Status, fmtInt(m.Delay)})
		}
		return headers, rows, true

	case "manpower":
		headers := []string{"week", "target", "actual", "skilled", "unskilled", "staff"}
		var rows [][]string
		var weekly []models.WeeklyManpower
		store.View(pid, func(b *models.ProjectBundle) {
			weekly = append(weekly, b.Manpower.Weekly...)
		})
		for _, w := range weekly {
			rows = append(rows, []string{w.Week, fmtInt(w.Target), fmtIntPtr(w.Actual),
				fmtIntPtr(w.Skilled), fmtIntPtr(w.Unskilled), fmtIntPtr(w.Staff)})
		}
		return headers, rows, true

	case "cost":
		headers := []string{"name", "budget", "committed", "actual", "forecast"}
		var rows [][]string
		var cats []models.CostCategory
		store.View(pid, func(b *models.ProjectBundle) {
			cats = append(cats, b.Cost.Categories...)
		})
		for _, cat := range cats {
			rows = append(rows, []string{cat.Name, fmtFloat(cat.Budget), fmtFloat(cat.Committed),
				fmtFloat(cat.Actual), fmtFloat(cat.Forecast)})
		}
		return headers, rows, true

	case "scurve":
		headers := []string{"month", "planned", "actual"}
		var rows [][]string
		var points []models.SCurvePoint
		store.View(pid, func(b *models.ProjectBundle) {
			points = append(points, b.Progress.SCurveData...)
		})
		for _, p := range points {
			rows = append(rows, []string{p.Month, fmtFloat(p.Planned), fmtFloatPtr(p.Actual)})
		}
		return headers, rows, true
	}
	return nil, nil, false
}

// ExportCSV godoc
// @Summary      Download one register as a CSV file
// @Tags         export
// @Param        module   path      string  true   "Register name (projects, drawings, materials, methods, ncr, rfi, si, testing, procurement, subcontractors, hse, closeout, equipment, milestones, manpower, cost, scurve)"
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      {string}  string  "CSV content"
// @Failure      400      {object}  models.ErrorResponse
// @Router       /api/export/{module}/csv [get]
func ExportCSV(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		module := c.Param("module")
		headers, rows, ok := moduleTable(module, store, projectID(c, store))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown module: " + module})
			return
		}
		body := utils.WriteCSV(headers, rows)
		filename := module + "-" + time.Now().Format("2006-01-02") + ".csv"
		setAttachment(c, filename, "text/csv")
		c.Data(http.StatusOK, "text/csv", []byte(body))
	}
}

// ExportXLSX godoc
// @Summary      Download one register as an Excel workbook
// @Tags         export
// @Param        module   path      string  true   "Register name"
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      {string}  string  "XLSX content"
// @Failure      400      {object}  models.ErrorResponse
// @Failure      500      {object}  models.ErrorResponse
// @Router       /api/export/{module}/xlsx [get]
func ExportXLSX(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		module := c.Param("module")
		headers, rows, ok := moduleTable(module, store, projectID(c, store))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown module: " + module})
			return
		}

		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)

		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for r, row := range rows {
			for col, v := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook", "details": err.Error()})
			return
		}
		filename := module + "-" + time.Now().Format("2006-01-02") + ".xlsx"
		setAttachment(c, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
