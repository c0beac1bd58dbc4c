package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	health *handlers.HealthHandler,
	resumes *handlers.ResumesHandler,
	interviews *handlers.InterviewsHandler,
	candidates *handlers.CandidatesHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	rs := v1.Group("/resumes")
	rs.Post("/", resumes.Upload)
	rs.Post("/extract", resumes.Extract)
	rs.Get("/:id/file", resumes.Download)

	// Candidate flow
	iv := v1.Group("/interviews")
	iv.Post("/", interviews.Start)
	iv.Get("/:id", interviews.Get)
	iv.Put("/:id/draft", interviews.SaveDraft)
	iv.Post("/:id/answers", interviews.Answer)
	iv.Delete("/:id", interviews.Reset)

	// Recruiter flow
	cd := v1.Group("/candidates")
	cd.Get("/", candidates.List)
	cd.Get("/:id", candidates.Get)
}
