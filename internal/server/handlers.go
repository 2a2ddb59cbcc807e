package server

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/job-scout/internal/db"
	"github.com/jonathan/job-scout/internal/ingestion"
	"github.com/jonathan/job-scout/internal/matching"
	"github.com/jonathan/job-scout/internal/server/middleware"
	"github.com/jonathan/job-scout/internal/types"
)

// maxResumeBytes caps resume uploads at 10 MB.
const maxResumeBytes = 10 << 20

// ProfileParser turns resume text into a structured candidate profile.
type ProfileParser interface {
	Extract(ctx context.Context, resumeText string) (*types.CandidateProfile, error)
}

// SyncRunner executes one job sync for a user.
type SyncRunner interface {
	Run(ctx context.Context, userID uuid.UUID) (*matching.SyncSummary, error)
}

// MatchStore is the subset of db operations the profile and job handlers need.
type MatchStore interface {
	UpsertCandidateProfile(ctx context.Context, input *db.CandidateProfileUpsertInput) (*db.CandidateProfileRecord, error)
	GetCandidateProfileRecord(ctx context.Context, userID uuid.UUID) (*db.CandidateProfileRecord, error)
	ListMatchedJobs(ctx context.Context, userID uuid.UUID, opts db.ListMatchedJobsOptions) ([]db.MatchedJob, int, error)
}

// JobListResponse is the response for GET /jobs
type JobListResponse struct {
	Jobs   []db.MatchedJob `json:"jobs"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// handleUploadResume accepts a PDF resume, extracts its text, parses it into
// a candidate profile, and stores the profile for the authenticated user.
// Re-uploading replaces the previous profile.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' form field")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxResumeBytes {
		s.errorResponse(w, http.StatusBadRequest, "Resume exceeds maximum size")
		return
	}

	var resumeText string
	if isPlainTextUpload(header) {
		data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read resume: "+err.Error())
			return
		}
		resumeText = ingestion.CleanText(string(data))
		if resumeText == "" {
			s.errorResponse(w, http.StatusBadRequest, "Resume contains no text")
			return
		}
	} else {
		resumeText, err = s.extractor.ExtractText(file, header.Size)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to extract resume text: "+err.Error())
			return
		}
	}

	profile, err := s.parser.Extract(r.Context(), resumeText)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to parse resume: "+err.Error())
		return
	}

	record, err := s.store.UpsertCandidateProfile(r.Context(), &db.CandidateProfileUpsertInput{
		UserID:             userID,
		Roles:              profile.Roles,
		Skills:             profile.Skills,
		Seniority:          profile.Seniority,
		LocationPreference: profile.LocationPreference,
		VisaOrWorkAuth:     profile.VisaOrWorkAuth,
		RemoteIntent:       profile.RemoteIntent,
		ResumeText:         resumeText,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, record)
}

// isPlainTextUpload reports whether the uploaded resume is plain text and
// can skip document extraction.
func isPlainTextUpload(header *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(header.Filename), ".txt") {
		return true
	}
	return strings.HasPrefix(header.Header.Get("Content-Type"), "text/plain")
}

// handleGetProfile returns the stored candidate profile for the
// authenticated user.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	record, err := s.store.GetCandidateProfileRecord(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "No profile found; upload a resume first")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleSync runs one job sync for the authenticated user and returns the
// run summary.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := s.syncer.Run(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// handleListJobs lists the authenticated user's matched jobs, newest first.
// Supports remote_type, limit, and offset query parameters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := db.ListMatchedJobsOptions{}

	if remoteType := r.URL.Query().Get("remote_type"); remoteType != "" {
		switch matching.RemoteType(remoteType) {
		case matching.RemoteTypeRemote, matching.RemoteTypeHybrid, matching.RemoteTypeOnsite, matching.RemoteTypeUnknown:
			opts.RemoteType = remoteType
		default:
			s.errorResponse(w, http.StatusBadRequest, "Invalid remote_type: "+remoteType)
			return
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit: "+limitStr)
			return
		}
		opts.Limit = limit
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid offset: "+offsetStr)
			return
		}
		opts.Offset = offset
	}

	jobs, total, err := s.store.ListMatchedJobs(r.Context(), userID, opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []db.MatchedJob{}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	s.jsonResponse(w, http.StatusOK, JobListResponse{
		Jobs:   jobs,
		Total:  total,
		Limit:  limit,
		Offset: opts.Offset,
	})
}
