package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ogomes/farol/internal/tracker"
	"gorm.io/gorm"
)

// registerRoutes sets up all API routes on the gin router.
//
// Read handlers always answer 200 with a valid body: storage failures are
// absorbed by the tracker into empty/zero results so the client renders
// unconditionally. Writes are the exception — validation failures map to
// 400 and storage failures to 502.
func registerRoutes(router *gin.Engine, db *gorm.DB) {
	api := router.Group("/api")

	api.GET("/health", handleHealth())
	api.GET("/sectors", handleSectors(db))
	api.GET("/coordinators", handleCoordinators(db))
	api.GET("/requirements", handleRequirements(db))
	api.GET("/progress", handleProgress(db))
	api.POST("/requirements/:id/status", handleUpdateStatus(db))
}

func handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	}
}

func handleSectors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sectors": tracker.Sectors(db)})
	}
}

func handleCoordinators(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"coordinators": tracker.Coordinators(db)})
	}
}

func handleRequirements(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sector := c.Query("sector")
		coordinator := c.Query("coordinator")
		switch {
		case sector != "" && coordinator != "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "informe sector ou coordinator, não ambos"})
		case sector != "":
			c.JSON(http.StatusOK, gin.H{"requirements": tracker.BySector(db, sector)})
		case coordinator != "":
			c.JSON(http.StatusOK, gin.H{"requirements": tracker.ByCoordinator(db, coordinator)})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "o parâmetro sector ou coordinator é obrigatório"})
		}
	}
}

func handleProgress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sector := c.Query("sector")
		coordinator := c.Query("coordinator")
		switch {
		case sector != "" && coordinator != "":
			c.JSON(http.StatusBadRequest, gin.H{"error": "informe sector ou coordinator, não ambos"})
		case sector != "":
			c.JSON(http.StatusOK, tracker.SectorProgress(db, sector))
		case coordinator != "":
			c.JSON(http.StatusOK, tracker.CoordinatorProgress(db, coordinator))
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "o parâmetro sector ou coordinator é obrigatório"})
		}
	}
}

// statusRequest is the body of POST /api/requirements/:id/status.
type statusRequest struct {
	Status        string `json:"status"`
	LinkEvidencia string `json:"linkEvidencia"`
	Observacoes   string `json:"observacoes"`
}

func handleUpdateStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}

		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
			return
		}

		err = tracker.RecordUpdate(db, tracker.UpdateOpts{
			RequirementID: id,
			Status:        req.Status,
			LinkEvidencia: req.LinkEvidencia,
			Observacoes:   req.Observacoes,
		})
		if err != nil {
			var verr *tracker.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "falha ao gravar atualização"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
