package handlers

import (
	"github.com/alimgiray/elus/internal/middleware"
	"github.com/alimgiray/elus/internal/services"
	"github.com/alimgiray/elus/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// NewRouter wires HTTP routes to the person services
func NewRouter(personService *services.PersonService, exportService *services.ExportService, store Pinger) *gin.Engine {
	router := gin.New()

	// Match on the escaped path so an email containing %2F still reaches /elus/:email
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	homeHandler := NewHomeHandler()
	personHandler := NewPersonHandler(personService, exportService)
	healthHandler := NewHealthHandler(store)
	notFoundHandler := NewNotFoundHandler()

	router.GET("/", homeHandler.Index)

	elus := router.Group("/elus")
	{
		elus.GET("", personHandler.ListPersons)
		elus.GET("/:email", personHandler.GetPerson)
		elus.POST("/new", personHandler.CreatePerson)
		elus.POST("/create", personHandler.CreatePerson)
	}

	router.GET("/export/elus.xlsx", personHandler.ExportPersons)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.NoRoute(notFoundHandler.NotFound)

	return router
}
