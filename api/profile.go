package api

import (
	"net/http"
	"strings"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

type ProfileHandler struct {
	profile repository.ProfileRepo
	stats   repository.StatsRepo
}

func NewProfileHandler(pr repository.ProfileRepo, sr repository.StatsRepo) *ProfileHandler {
	return &ProfileHandler{profile: pr, stats: sr}
}

type profileRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	School         string `json:"school"`
	Major          string `json:"major"`
	GraduationYear int    `json:"graduation_year" validate:"omitempty,gte=1900,lte=2100"`
}

func (req *profileRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.School = strings.TrimSpace(req.School)
	req.Major = strings.TrimSpace(req.Major)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.profile.Profile(), http.StatusOK)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	out := h.profile.UpdateProfile(models.UserProfile{
		Name:           req.Name,
		Email:          req.Email,
		School:         req.School,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
	})
	writeJSON(w, out, http.StatusOK)
}

// GetStats recomputes the dashboard counters against the current time, so
// deadline and reminder windows move forward without any write.
func (h *ProfileHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.stats.RecalculateStats(), http.StatusOK)
}
