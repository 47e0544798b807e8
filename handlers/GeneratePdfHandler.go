package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenerateModulePDF godoc
// @Summary      Generate a register report PDF
// @Description  Title block with project name and a QR code of the project id, a KPI band, then the register table.
// @Tags         export
// @Param        module   path      string  true   "Register name"
// @Param        project  query     string  false  "Project ID (defaults to active)"
// @Success      200      "PDF file"
// @Failure      400      {object}  models.ErrorResponse
// @Failure      500      {object}  models.ErrorResponse
// @Router       /api/export/{module}/pdf [get]
func GenerateModulePDF(store *repository.ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		module := c.Param("module")
		pid := projectID(c, store)
		headers, rows, ok := moduleTable(module, store, pid)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown module: " + module})
			return
		}

		project, found := store.FindProject(pid)
		if !found {
			project = store.ActiveProject()
		}
		bundle := store.BundleCopy(project.ID)
		kpis := services.ComputeKPIs(&bundle, project)
		titleCaser := cases.Title(language.Und)

		// Landscape fits the wider registers.
		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		// --- Title block ---
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(220, 10, fmt.Sprintf("%s Register - %s", titleCaser.String(module), project.Name))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(220, 6, fmt.Sprintf("%s | %s | Generated %s", project.Code, project.Location, time.Now().Format("2006-01-02 15:04")))

		// QR code of the project id in the top-right corner
		png, err := qrcode.Encode(project.ID, qrcode.Medium, 128)
		if err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("project-qr", opts, bytes.NewReader(png))
			pdf.ImageOptions("project-qr", 262, 8, 22, 22, false, opts, 0, "")
		}
		pdf.Ln(12)

		// --- KPI band ---
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(240, 240, 240)
		kpiCells := []struct {
			label string
			value string
		}{
			{"Progress", fmt.Sprintf("%d%%", kpis.OverallProgress)},
			{"Drawings Pending", fmtInt(kpis.DrawingsPending)},
			{"Open NCRs", fmtInt(kpis.OpenNCRs)},
			{"Open RFIs", fmtInt(kpis.OpenRFIs)},
			{"Schedule Var", fmt.Sprintf("%.1f%%", kpis.ScheduleVariance)},
			{"Cost Var", fmt.Sprintf("%.1f%%", kpis.CostVariance)},
			{"Workers", fmtInt(kpis.ActiveWorkers)},
			{"Safe Hours", fmtInt(kpis.SafeManHours)},
		}
		for _, cell := range kpiCells {
			pdf.CellFormat(34.5, 7, fmt.Sprintf("%s: %s", cell.label, cell.value), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(12)

		// --- Table ---
		colWidth := 277.0 / float64(len(headers))
		pdf.SetFont("Arial", "B", 8)
		for _, h := range headers {
			pdf.CellFormat(colWidth, 7, titleCaser.String(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range rows {
			for _, v := range row {
				if len(v) > 32 {
					v = v[:29] + "..."
				}
				pdf.CellFormat(colWidth, 6, v, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		if len(rows) == 0 {
			pdf.CellFormat(277, 6, "No records", "1", 1, "C", false, 0, "")
		}

		// --- Footer ---
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 7)
		pdf.Cell(277, 5, fmt.Sprintf("%d records | %s", len(rows), project.ID))

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.pdf"`, module, project.Code))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}
