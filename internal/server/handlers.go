package server

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-navigator/internal/pipeline"
	"github.com/jonathan/career-navigator/internal/types"
)

// maxResumeBytes caps the uploaded document size.
const maxResumeBytes = 10 << 20

// AnalyzeRequest represents the multipart form fields for /analyze
type AnalyzeRequest struct {
	Identifier  string `validate:"omitempty,max=100"`
	Role        string `validate:"omitempty,max=60"`
	HoursPerDay int    `validate:"min=1,max=4"`
	Level       string `validate:"oneof=Beginner Intermediate"`
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	AnalysisID      string                 `json:"analysis_id"`
	Role            string                 `json:"role"`
	Profile         *types.ProfileSummary  `json:"profile,omitempty"`
	ProfileNotFound bool                   `json:"profile_not_found,omitempty"`
	Document        *types.DocumentSummary `json:"document,omitempty"`
	Gap             types.GapReport        `json:"gap"`
	Roadmap         types.RoadmapPlan      `json:"roadmap"`
}

// RolesResponse represents the response for /roles
type RolesResponse struct {
	Roles []string `json:"roles"`
}

// handleAnalyze runs one full analysis from a multipart form. All inputs are
// optional; defaults are two hours per day at Beginner level against the
// default role.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	req := AnalyzeRequest{
		Identifier:  r.FormValue("identifier"),
		Role:        r.FormValue("role"),
		HoursPerDay: 2,
		Level:       types.LevelBeginner,
	}
	if raw := r.FormValue("hours_per_day"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "hours_per_day must be an integer")
			return
		}
		req.HoursPerDay = hours
	}
	if raw := r.FormValue("level"); raw != "" {
		req.Level = raw
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	document, err := s.readResume(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume upload: "+err.Error())
		return
	}

	analysisID := uuid.New().String()
	log.Printf("Starting analysis %s (role=%q identifier=%q)", analysisID, req.Role, req.Identifier)

	result, err := s.pipeline.Run(r.Context(), pipeline.Options{
		Identifier:  req.Identifier,
		Document:    document,
		Role:        req.Role,
		HoursPerDay: req.HoursPerDay,
		Level:       req.Level,
	})
	if err != nil {
		log.Printf("Analysis %s failed: %v", analysisID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		AnalysisID:      analysisID,
		Role:            result.Requirement.RoleName,
		Profile:         result.Profile,
		ProfileNotFound: result.ProfileNotFound,
		Document:        result.Document,
		Gap:             result.Gap,
		Roadmap:         result.Roadmap,
	})
}

// readResume returns the uploaded resume bytes, or nil when no file was sent.
func (s *Server) readResume(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("resume")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, maxResumeBytes))
}

// handleRoles lists the selectable target roles
func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, RolesResponse{Roles: s.catalog.Roles()})
}
