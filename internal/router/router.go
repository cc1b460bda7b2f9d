package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/pta-api/internal/handler"
	"github.com/noah-isme/pta-api/internal/middleware"
	"github.com/noah-isme/pta-api/internal/models"
)

// Handlers bundles every HTTP handler served by the API.
type Handlers struct {
	Auth          *handler.AuthHandler
	Subjects      *handler.SubjectHandler
	Announcements *handler.AnnouncementHandler
	Messages      *handler.MessageHandler
	Details       *handler.StudentDetailHandler
	Reports       *handler.ReportHandler
	Metrics       *handler.MetricsHandler
}

// Options controls authentication and documentation routes.
type Options struct {
	// AuthRequired rejects anonymous calls on domain routes and restricts writes to teachers.
	AuthRequired bool
	Tokens       middleware.TokenValidator
	EnableDocs   bool
}

// Register mounts every route on r.
func Register(r *gin.Engine, h Handlers, opts Options) {
	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.GET("/me", middleware.JWT(opts.Tokens), h.Auth.Me)

	api := r.Group("")
	teacherOnly := []gin.HandlerFunc{}
	if opts.AuthRequired {
		api.Use(middleware.JWT(opts.Tokens))
		teacherOnly = append(teacherOnly, middleware.RequireRoles(models.RoleTeacher))
	} else if opts.Tokens != nil {
		api.Use(middleware.OptionalJWT(opts.Tokens))
	}
	teacher := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, teacherOnly...), h)
	}

	api.POST("/subjects", teacher(h.Subjects.Create)...)
	api.POST("/subjects/addStudent", teacher(h.Subjects.AddStudent)...)
	api.DELETE("/subjects/removeStudent", teacher(h.Subjects.RemoveStudent)...)
	api.GET("/teacher/subjects/:teacher_id", h.Subjects.ListForTeacher)
	api.GET("/student/subjects/:student_id", h.Subjects.ListForStudent)
	api.GET("/teacher/students/:teacher_id", h.Subjects.StudentsForTeacher)
	api.GET("/student/teachers/:student_id", h.Subjects.TeachersForStudent)

	api.POST("/announcements", teacher(h.Announcements.Post)...)
	api.GET("/announcements/:student_id", h.Announcements.ListForStudent)
	api.GET("/teacher/announcements/:teacher_id", h.Announcements.ListForTeacher)

	api.POST("/student/details", teacher(h.Details.Record)...)
	api.GET("/student/details/:student_id", h.Details.Latest)

	api.POST("/messages", h.Messages.Send)
	api.GET("/messages/:user1/:user2", h.Messages.Conversation)

	api.GET("/summarize/student/:student_id", h.Reports.Summarize)
	api.GET("/summarize/student/:student_id/export", h.Reports.Export)
}
