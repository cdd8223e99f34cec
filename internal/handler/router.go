package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/studytime-api/internal/middleware"
	"github.com/noah-isme/studytime-api/internal/service"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Calendar   *CalendarHandler
	Tasks      *TaskHandler
	Preference *PreferenceHandler
	Schedule   *ScheduleHandler
	Stats      *StatsHandler
	Export     *ExportHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes mounts the API under /api/v1 plus the observability
// endpoints at the root.
func RegisterRoutes(r *gin.Engine, h Handlers, metrics *service.MetricsService) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group("/api/v1")
	api.Use(middleware.Metrics(metrics))

	api.GET("/courses", h.Calendar.ListCourses)
	api.POST("/courses", h.Calendar.CreateCourse)
	api.PUT("/courses/:id", h.Calendar.UpdateCourse)
	api.DELETE("/courses/:id", h.Calendar.DeleteCourse)

	api.GET("/jobs", h.Calendar.ListJobs)
	api.POST("/jobs", h.Calendar.CreateJob)
	api.PUT("/jobs/:id", h.Calendar.UpdateJob)
	api.DELETE("/jobs/:id", h.Calendar.DeleteJob)

	api.GET("/commutes", h.Calendar.ListCommutes)
	api.POST("/commutes", h.Calendar.CreateCommute)
	api.PUT("/commutes/:id", h.Calendar.UpdateCommute)
	api.DELETE("/commutes/:id", h.Calendar.DeleteCommute)

	api.GET("/breaks", h.Calendar.ListBreaks)
	api.POST("/breaks", h.Calendar.CreateBreak)
	api.PUT("/breaks/:id", h.Calendar.UpdateBreak)
	api.DELETE("/breaks/:id", h.Calendar.DeleteBreak)

	api.GET("/tasks", h.Tasks.List)
	api.POST("/tasks", h.Tasks.Create)
	api.GET("/tasks/:id", h.Tasks.Get)
	api.PUT("/tasks/:id", h.Tasks.Update)
	api.POST("/tasks/:id/complete", h.Tasks.Complete)
	api.DELETE("/tasks/:id", h.Tasks.Delete)

	api.GET("/preferences", h.Preference.Get)
	api.PUT("/preferences", h.Preference.Update)

	api.POST("/schedule/generate", h.Schedule.Generate)
	api.POST("/schedule/generate/from-database", h.Schedule.GenerateFromStore)
	api.GET("/schedule", h.Schedule.ListSaved)
	api.POST("/schedule", h.Schedule.Save)
	api.DELETE("/schedule", h.Schedule.Clear)
	api.PATCH("/schedule/events/:id/status", h.Schedule.SetEventStatus)

	api.GET("/stats", h.Stats.Overview)

	api.POST("/export/:format", h.Export.Download)
	api.POST("/export/:format/async", h.Export.Enqueue)
	api.GET("/export/jobs/:id", h.Export.JobStatus)
	api.GET("/export/files/:name", h.Export.DownloadFile)
}
