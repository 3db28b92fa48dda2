package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abecedary/abecedary/internal/database"
	"github.com/abecedary/abecedary/internal/entities"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthController reports the state of the database connection and
// whether the alphabet catalog has been seeded.
type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db == nil {
		checks["database"] = "not configured"
	} else {
		sqlDB, err := h.db.DB.DB()
		if err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else if err := sqlDB.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}

		// An empty catalog is still healthy, the server just has
		// nothing to practice against until it is seeded.
		if status == "healthy" {
			var alphabets int64
			if err := h.db.DB.Model(&entities.Alphabet{}).Count(&alphabets).Error; err != nil {
				checks["catalog"] = "error: " + err.Error()
				status = "unhealthy"
			} else if alphabets == 0 {
				checks["catalog"] = "empty (run seed)"
			} else {
				checks["catalog"] = fmt.Sprintf("%d alphabets", alphabets)
			}
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
