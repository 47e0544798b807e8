package handlers

import (
	"database/sql"
	"io"
	"net/http"
	"strconv"

	"backend/models"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func rowStr(rec map[string]string, key, fallback string) string {
	if v, ok := rec[key]; ok && v != "" {
		return v
	}
	return fallback
}

func rowInt(rec map[string]string, key string, fallback int) int {
	if v, ok := rec[key]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func rowFloat(rec map[string]string, key string, fallback float64) float64 {
	if v, ok := rec[key]; ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// ImportCSV godoc
// @Summary      Import CSV rows into one register
// @Description  Rows missing the register's identifying fields are silently skipped. Accepted rows get the same defaults as form adds and are appended in file order.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        module   path      string  true   "Register name"
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Param        file     formData  file    true   "CSV file"
// @Success      200      {object}  models.ImportResultResponse
// @Failure      400      {object}  models.ErrorResponse
// @Router       /api/import/{module}/csv [post]
func ImportCSV(store *repository.ProjectStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		module := c.Param("module")
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded", "details": err.Error()})
			return
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
			return
		}

		_, records, err := utils.ParseCSV(string(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pid := projectID(c, store)
		imported, skipped, ok := importRecords(store, pid, module, records)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown module: " + module})
			return
		}
		if imported > 0 {
			persist(db, store)
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "CSV imported",
			"imported": imported,
			"skipped":  skipped,
		})
	}
}

// importRecords maps parsed CSV rows onto register entries. The ok result is
// false only for an unknown module name.
func importRecords(store *repository.ProjectStore, pid, module string, records []map[string]string) (imported, skipped int, ok bool) {
	today := repository.Today()
	switch module {
	case "drawings":
		var rows []models.Drawing
		for _, rec := range records {
			if rec["id"] == "" || rec["title"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.Drawing{
				ID:          rec["id"],
				Title:       rec["title"],
				Discipline:  rowStr(rec, "discipline", "Civil"),
				Rev:         rowInt(rec, "rev", 1),
				Status:      rowStr(rec, "status", "submitted"),
				SubmittedBy: rowStr(rec, "submittedBy", "U001"),
				Date:        rowStr(rec, "date", today),
				Consultant:  rec["consultant"],
				File:        rowStr(rec, "file", rec["id"]+"-Rev1.pdf"),
				Comments:    rec["comments"],
			})
		}
		return repository.AppendAll(store, pid, drawingsSel, rows), skipped, true

	case "materials":
		var rows []models.Material
		for _, rec := range records {
			if rec["id"] == "" || rec["item"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.Material{
				ID:           rec["id"],
				Item:         rec["item"],
				BOQRef:       rec["boqRef"],
				PONo:         rec["poNo"],
				Supplier:     rec["supplier"],
				Rev:          rowInt(rec, "rev", 1),
				Status:       rowStr(rec, "status", "submitted"),
				SubmitDate:   rowStr(rec, "submitDate", today),
				ApproveDate:  rec["approveDate"],
				DeliveryDate: rec["deliveryDate"],
				Qty:          rowFloat(rec, "qty", 0),
				Unit:         rec["unit"],
				Remarks:      rec["remarks"],
			})
		}
		return repository.AppendAll(store, pid, materialsSel, rows), skipped, true

	case "methods":
		var rows []models.MethodStatement
		for _, rec := range records {
			if rec["id"] == "" || rec["title"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.MethodStatement{
				ID:          rec["id"],
				Title:       rec["title"],
				Category:    rec["category"],
				Risk:        rowStr(rec, "risk", "Medium"),
				Rev:         rowInt(rec, "rev", 1),
				Status:      rowStr(rec, "status", "submitted"),
				SubmittedBy: rowStr(rec, "submittedBy", "U001"),
				Date:        rowStr(rec, "date", today),
				HSEReview:   rowStr(rec, "hseReview", "Pending"),
				File:        rec["file"],
			})
		}
		return repository.AppendAll(store, pid, methodsSel, rows), skipped, true

	case "ncr":
		var rows []models.NCR
		for _, rec := range records {
			if rec["id"] == "" || rec["title"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.NCR{
				ID:          rec["id"],
				Title:       rec["title"],
				Raised:      rowStr(rec, "raised", "U001"),
				Date:        rowStr(rec, "date", today),
				Status:      rowStr(rec, "status", "open"),
				Priority:    rowStr(rec, "priority", "medium"),
				AssignedTo:  rec["assignedTo"],
				ClosureDate: rec["closureDate"],
				File:        rec["file"],
				Remarks:     rec["remarks"],
				Location:    rec["location"],
			})
		}
		return repository.AppendAll(store, pid, ncrSel, rows), skipped, true

	case "rfi":
		var rows []models.RFI
		for _, rec := range records {
			if rec["id"] == "" || rec["title"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.RFI{
				ID:          rec["id"],
				Title:       rec["title"],
				Raised:      rowStr(rec, "raised", "U001"),
				Date:        rowStr(rec, "date", today),
				Status:      rowStr(rec, "status", "open"),
				Priority:    rowStr(rec, "priority", "medium"),
				AssignedTo:  rec["assignedTo"],
				ClosureDate: rec["closureDate"],
				File:        rec["file"],
				Remarks:     rec["remarks"],
				Discipline:  rowStr(rec, "discipline", "Civil"),
			})
		}
		return repository.AppendAll(store, pid, rfiSel, rows), skipped, true

	case "si":
		var rows []models.SiteInstruction
		for _, rec := range records {
			if rec["id"] == "" || rec["title"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.SiteInstruction{
				ID:          rec["id"],
				Title:       rec["title"],
				IssuedBy:    rec["issuedBy"],
				Date:        rowStr(rec, "date", today),
				Status:      rowStr(rec, "status", "open"),
				Priority:    rowStr(rec, "priority", "medium"),
				ClosureDate: rec["closureDate"],
				File:        rec["file"],
				CostImpact:  rec["costImpact"],
				Remarks:     rec["remarks"],
				Ref:         rec["ref"],
			})
		}
		return repository.AppendAll(store, pid, siSel, rows), skipped, true

	case "testing":
		var rows []models.TestRecord
		for _, rec := range records {
			if rec["id"] == "" || rec["system"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.TestRecord{
				ID:      rec["id"],
				System:  rec["system"],
				Type:    rec["type"],
				Date:    rowStr(rec, "date", today),
				Rev:     rowInt(rec, "rev", 1),
				Status:  rowStr(rec, "status", "pending"),
				Cert:    rec["cert"],
				File:    rec["file"],
				Remarks: rec["remarks"],
			})
		}
		return repository.AppendAll(store, pid, testingSel, rows), skipped, true

	case "procurement":
		var rows []models.PurchaseOrder
		for _, rec := range records {
			if rec["id"] == "" || rec["item"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.PurchaseOrder{
				ID:           rec["id"],
				Item:         rec["item"],
				Vendor:       rec["vendor"],
				POValue:      rowFloat(rec, "poValue", 0),
				Status:       rowStr(rec, "status", "pending"),
				PODate:       rowStr(rec, "poDate", today),
				DeliveryDate: rec["deliveryDate"],
				PayStatus:    rowStr(rec, "payStatus", "0% paid"),
				Performance:  rowInt(rec, "performance", 0),
				Remarks:      rec["remarks"],
			})
		}
		return repository.AppendAll(store, pid, procurementSel, rows), skipped, true

	case "subcontractors":
		var rows []models.Subcontractor
		for _, rec := range records {
			if rec["id"] == "" || rec["name"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.Subcontractor{
				ID:            rec["id"],
				Name:          rec["name"],
				Scope:         rec["scope"],
				Status:        rowStr(rec, "status", "not-started"),
				Workers:       rowInt(rec, "workers", 0),
				ContractValue: rowFloat(rec, "contractValue", 0),
				PaidToDate:    rowFloat(rec, "paidToDate", 0),
				Performance:   rowInt(rec, "performance", 0),
				Safety:        rowInt(rec, "safety", 0),
				PORef:         rec["poRef"],
				ContactPerson: rec["contactPerson"],
				Phone:         rec["phone"],
				StartDate:     rec["startDate"],
				EndDate:       rec["endDate"],
			})
		}
		return repository.AppendAll(store, pid, subcontractorsSel, rows), skipped, true

	case "hse":
		var rows []models.HSEIncident
		for _, rec := range records {
			if rec["id"] == "" || rec["desc"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.HSEIncident{
				ID:               rec["id"],
				Type:             rowStr(rec, "type", "near-miss"),
				Desc:             rec["desc"],
				Date:             rowStr(rec, "date", today),
				Severity:         rowStr(rec, "severity", "low"),
				Status:           rowStr(rec, "status", "open"),
				Casualties:       rowInt(rec, "casualties", 0),
				Location:         rec["location"],
				RootCause:        rec["rootCause"],
				CorrectiveAction: rec["correctiveAction"],
				Investigator:     rec["investigator"],
				ClosedDate:       rec["closedDate"],
			})
		}
		return repository.AppendAll(store, pid, incidentsSel, rows), skipped, true

	case "closeout":
		var rows []models.CloseoutItem
		for _, rec := range records {
			if rec["id"] == "" || rec["item"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.CloseoutItem{
				ID:            rec["id"],
				Item:          rec["item"],
				Category:      rec["category"],
				Status:        rowStr(rec, "status", "not-started"),
				Due:           rec["due"],
				AssignedTo:    rec["assignedTo"],
				Remarks:       rec["remarks"],
				CompletedDate: rec["completedDate"],
			})
		}
		return repository.AppendAll(store, pid, closeoutSel, rows), skipped, true

	case "equipment":
		var rows []models.Equipment
		for _, rec := range records {
			if rec["id"] == "" || rec["type"] == "" {
				skipped++
				continue
			}
			rows = append(rows, models.Equipment{
				ID:          rec["id"],
				Type:        rec["type"],
				Status:      rowStr(rec, "status", "standby"),
				Utilization: rowInt(rec, "utilization", 0),
				Operator:    rec["operator"],
				Location:    rec["location"],
			})
		}
		return repository.AppendAll(store, pid, equipmentSel, rows), skipped, true
	}
	return 0, 0, false
}
