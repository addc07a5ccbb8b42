package router

import (
	"gradePredictor/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetGradingRoutes(api *echo.Group, handler *rest.GradingHandler) {
	grades := api.Group("/grades")

	grades.POST("/predict", handler.Predict)
	grades.POST("/simulate", handler.Simulate)
	grades.POST("/scenarios", handler.Scenarios)
	grades.POST("/evaluate", handler.Evaluate)

	grades.GET("/profiles", handler.ListProfiles)
	grades.GET("/profiles/:name", handler.GetProfile)
}

func SetMetricsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
