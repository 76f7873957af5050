package controllers

import (
	"net/http"

	"leximax/content"
	"leximax/db"
	"leximax/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetModules returns the module catalogue, preferring the modules collection
// when the database is connected and seeded.
func GetModules(ctx *gin.Context) {
	if db.Connected() {
		modules, err := db.ListModules(ctx.Request.Context())
		if err != nil {
			log.WithError(err).Warn("Falling back to built-in modules")
		} else if len(modules) > 0 {
			ctx.JSON(http.StatusOK, modules)
			return
		}
	}
	ctx.JSON(http.StatusOK, content.Default().Modules())
}

func GetMaxims(ctx *gin.Context) {
	maxims := content.Default().Maxims()
	if category := ctx.Query("category"); category != "" {
		filtered := make([]models.LegalMaxim, 0, len(maxims))
		for _, m := range maxims {
			if string(m.Category) == category {
				filtered = append(filtered, m)
			}
		}
		maxims = filtered
	}
	ctx.JSON(http.StatusOK, maxims)
}

func GetMaxim(ctx *gin.Context) {
	maxim, ok := content.Default().Maxim(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrMaximNotFound.Error()})
		return
	}
	ctx.JSON(http.StatusOK, maxim)
}

func GetLevels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, content.Default().Levels())
}

func GetBadges(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, content.Default().Badges())
}
