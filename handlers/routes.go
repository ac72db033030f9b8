package handlers

import (
	"github.com/Baz333/ds-rest-api-exam/service/crew"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, crewService *crew.Service) {
	handler := NewHandler(crewService)
	router.GET("/healthz", handler.Health)
	router.GET("/crew/:role/movies/:movieId", handler.GetCrewRole)
	router.GET("/crew/:role/movies/:movieId/raw", handler.GetCrewNames)
}
