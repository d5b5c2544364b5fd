package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-artbot/internal/bot"
	"github.com/feral-file/ff-artbot/internal/classifier"
	"github.com/feral-file/ff-artbot/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck reports whether a directory snapshot has been published
	// GET /healthz
	HealthCheck(c *gin.Context)

	// Classify returns the intent of a command against the live snapshot
	// GET /v1/classify?q=<command>
	Classify(c *gin.Context)
}

// ProjectSummary describes the project a command resolved to
type ProjectSummary struct {
	ID             string `json:"id"`
	ProjectNumber  int64  `json:"project_number"`
	Name           string `json:"name"`
	ArtistName     string `json:"artist_name"`
	Active         bool   `json:"active"`
	EditionSize    int64  `json:"edition_size"`
	MaxEditionSize int64  `json:"max_edition_size"`
}

// ClassifyResponse is the body of GET /v1/classify
type ClassifyResponse struct {
	Command string          `json:"command"`
	Intent  string          `json:"intent"`
	Key     string          `json:"key"`
	Project *ProjectSummary `json:"project,omitempty"`
}

// handler implements the Handler interface
type handler struct {
	directory bot.Directory
	verticals classifier.Verticals
}

// NewHandler creates a new REST API handler
func NewHandler(directory bot.Directory, verticals classifier.Verticals) Handler {
	return &handler{
		directory: directory,
		verticals: verticals,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	snapshot := h.directory.Snapshot()
	if snapshot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "starting",
			"service": "artbot",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "artbot",
		"projects": snapshot.Len(),
		"built_at": snapshot.BuiltAt().UTC().Format(time.RFC3339),
	})
}

// Classify parses the q parameter the same way chat commands are parsed
func (h *handler) Classify(c *gin.Context) {
	command := strings.TrimSpace(c.Query("q"))
	if command == "" {
		respondError(c, invalidQuery("query parameter q is required"), "")
		return
	}
	if !strings.HasPrefix(command, "#") {
		respondError(c, invalidQuery("command must start with #"), command)
		return
	}

	snapshot := h.directory.Snapshot()
	if snapshot == nil {
		respondError(c, domain.ErrDirectoryNotReady, "")
		return
	}

	intent, key := bot.Parse(snapshot, h.directory.Normalizer(), h.verticals, command)
	response := ClassifyResponse{
		Command: command,
		Intent:  intent.String(),
		Key:     key,
	}

	if intent == domain.IntentProject {
		if project, ok := snapshot.Project(key); ok {
			response.Project = &ProjectSummary{
				ID:             project.ID,
				ProjectNumber:  project.ProjectNumber,
				Name:           project.Name,
				ArtistName:     project.ArtistName,
				Active:         project.Active,
				EditionSize:    project.EditionSize(),
				MaxEditionSize: project.MaxEditionSize,
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
