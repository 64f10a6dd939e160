package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/netmon/api/docs" // nolint: revive
	"github.com/sergeii/netmon/internal/rest/api"
)

func NewRouter(a *api.API) *gin.Engine {
	router := gin.Default()
	router.GET("/status", a.Status)
	router.GET("/api/status", a.GetStatus)
	router.GET("/api/history", a.ListHistory)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
