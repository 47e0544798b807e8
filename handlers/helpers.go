package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"backend/repository"

	"github.com/gin-gonic/gin"
)

// projectID resolves the project a register request targets: explicit
// ?project= wins, otherwise the active project.
func projectID(c *gin.Context, store *repository.ProjectStore) string {
	if id := c.Query("project"); id != "" {
		return id
	}
	return store.ActiveProjectID()
}

// Patch fallbacks. Blank or missing inputs keep the stored value, so a form
// that posts only the fields it shows never wipes the rest.

func strOr(v, cur string) string {
	if strings.TrimSpace(v) == "" {
		return cur
	}
	return v
}

func intOr(v *int, cur int) int {
	if v == nil {
		return cur
	}
	return *v
}

func floatOr(v *float64, cur float64) float64 {
	if v == nil {
		return cur
	}
	return *v
}

// matchesQuery reports whether any stringified field of entry contains q,
// case-insensitive. An empty q matches everything.
func matchesQuery(entry any, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return false
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	for _, v := range fields {
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprintf("%v", v)), q) {
			return true
		}
	}
	return false
}

func matchesStatus(status, filter string) bool {
	return filter == "" || filter == "all" || status == filter
}

// drawingTabMatch implements the discipline tabs on the drawings register.
// The mep tab spans every building-services discipline.
func drawingTabMatch(tab, discipline string) bool {
	d := strings.ToLower(discipline)
	switch strings.ToLower(tab) {
	case "", "all":
		return true
	case "mep":
		for _, k := range []string{"mechanical", "electrical", "plumbing", "hvac", "fire"} {
			if strings.Contains(d, k) {
				return true
			}
		}
		return false
	case "mechanical":
		return strings.Contains(d, "mechanical")
	case "electrical":
		return strings.Contains(d, "electrical")
	case "plumbing":
		return strings.Contains(d, "plumbing")
	case "hvac":
		return strings.Contains(d, "hvac")
	case "firefighting":
		return strings.Contains(d, "fire")
	case "architect":
		return strings.Contains(d, "architect")
	case "civil":
		return strings.Contains(d, "civil")
	case "structure":
		return strings.Contains(d, "structur")
	default:
		return true
	}
}

// setAttachment sets the download headers the export endpoints share.
func setAttachment(c *gin.Context, filename, contentType string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", contentType)
}
