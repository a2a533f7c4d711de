package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

type InteractionsHandler struct {
	interactions repository.InteractionRepo
	clock        func() time.Time
}

func NewInteractionsHandler(ir repository.InteractionRepo, clock func() time.Time) *InteractionsHandler {
	if clock == nil {
		clock = time.Now
	}
	return &InteractionsHandler{interactions: ir, clock: clock}
}

type interactionRequest struct {
	ID              string                 `json:"id"`
	ConnectionID    string                 `json:"connection_id" validate:"required"`
	TargetCompanyID string                 `json:"target_company_id"`
	Type            models.InteractionType `json:"type"`
	Title           string                 `json:"title" validate:"required"`
	Description     string                 `json:"description"`
	Date            *time.Time             `json:"date"`
	FollowUpNeeded  bool                   `json:"follow_up_needed"`
	FollowUpDate    *time.Time             `json:"follow_up_date"`
}

func (req *interactionRequest) normalize() {
	req.ConnectionID = strings.TrimSpace(req.ConnectionID)
	req.Title = strings.TrimSpace(req.Title)
}

// ListInteractions lists by connection_id or, failing that, by company_id.
func (h *InteractionsHandler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		list []models.Interaction
		err  error
	)
	switch {
	case q.Get("connection_id") != "":
		list, err = h.interactions.Interactions(q.Get("connection_id"))
	case q.Get("company_id") != "":
		list, err = h.interactions.CompanyInteractions(q.Get("company_id"))
	default:
		err = &ValidationError{Field: "connection_id", Message: "connection_id or company_id is required"}
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, list, http.StatusOK)
}

func (h *InteractionsHandler) CreateInteraction(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	date := h.clock()
	if req.Date != nil {
		date = *req.Date
	}
	in := models.Interaction{
		ID:              req.ID,
		ConnectionID:    req.ConnectionID,
		TargetCompanyID: req.TargetCompanyID,
		Type:            req.Type,
		Title:           req.Title,
		Description:     req.Description,
		Date:            date,
		FollowUpNeeded:  req.FollowUpNeeded,
	}
	if req.FollowUpNeeded {
		in.FollowUpDate = req.FollowUpDate
	}

	out, err := h.interactions.AddInteraction(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *InteractionsHandler) DeleteInteraction(w http.ResponseWriter, r *http.Request) {
	if err := h.interactions.DeleteInteraction(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
