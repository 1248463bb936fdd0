package api

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Callmewookie65/planboard/internal/ingest"
	"github.com/Callmewookie65/planboard/internal/models"
	"github.com/Callmewookie65/planboard/internal/reader"
	"github.com/Callmewookie65/planboard/internal/roster"
)

// maxUploadBytes caps document uploads; imports are spreadsheets-worth of
// rows, not bulk data.
const maxUploadBytes = 10 << 20

type Server struct {
	Echo   *echo.Echo
	Engine *ingest.Engine
	Roster *roster.Store
}

func NewServer(engine *ingest.Engine, store *roster.Store) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:4200"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Echo:   e,
		Engine: engine,
		Roster: store,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.POST("/documents/analyze", s.handleAnalyzeDocument)
	api.POST("/documents/match", s.handleMatchDocument)
	api.GET("/projects", s.handleListProjects)
	api.POST("/projects", s.handleAddProject)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// handleAnalyzeDocument accepts a multipart upload, parses it, runs the
// classification engine and matches the result against the current roster.
func (s *Server) handleAnalyzeDocument(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file upload required"})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "file too large"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable upload"})
	}
	defer f.Close()

	records, err := reader.Parse(fileHeader.Filename, f)
	if err != nil {
		if errors.Is(err, reader.ErrUnsupportedFormat) {
			return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result := s.Engine.Process(fileHeader.Filename, records)
	matches := s.Engine.Match(result, s.Roster.List())

	docID := uuid.New().String()[:8]
	log.Printf("[analyze %s] %q classified as %s (confidence %.2f, %d records, %d matches)",
		docID, fileHeader.Filename, result.DocumentType, result.Confidence, len(records), len(matches))

	return c.JSON(http.StatusOK, map[string]any{
		"documentId": docID,
		"fileName":   fileHeader.Filename,
		"result":     result,
		"matches":    matches,
	})
}

// handleMatchDocument re-matches a previously extracted result against the
// current roster, e.g. after the user added the missing project.
func (s *Server) handleMatchDocument(c echo.Context) error {
	var req ingest.ProcessingResult
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	matches := s.Engine.Match(req, s.Roster.List())
	if matches == nil {
		matches = []ingest.MatchCandidate{}
	}
	return c.JSON(http.StatusOK, map[string]any{"matches": matches})
}

func (s *Server) handleListProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Roster.List())
}

func (s *Server) handleAddProject(c echo.Context) error {
	var p models.Project
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if strings.TrimSpace(p.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "project name required"})
	}

	stored := s.Roster.Add(p)
	return c.JSON(http.StatusCreated, stored)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
