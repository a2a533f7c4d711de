package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

type ConnectionsHandler struct {
	connections  repository.ConnectionRepo
	interactions repository.InteractionRepo
}

func NewConnectionsHandler(cr repository.ConnectionRepo, ir repository.InteractionRepo) *ConnectionsHandler {
	return &ConnectionsHandler{connections: cr, interactions: ir}
}

type connectionRequest struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name" validate:"required"`
	Company              string   `json:"company"`
	Role                 string   `json:"role"`
	Email                string   `json:"email" validate:"omitempty,email"`
	Phone                string   `json:"phone"`
	LinkedInURL          string   `json:"linkedin_url" validate:"omitempty,http_url"`
	SameSchool           bool     `json:"same_school"`
	SameMajor            bool     `json:"same_major"`
	MutualConnections    int      `json:"mutual_connections" validate:"gte=0"`
	Notes                string   `json:"notes"`
	LinkedApplicationIDs []string `json:"linked_application_ids"`
}

func (req *connectionRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Company = strings.TrimSpace(req.Company)
	req.Role = strings.TrimSpace(req.Role)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.LinkedInURL = strings.TrimSpace(req.LinkedInURL)
}

func (req *connectionRequest) connection() models.Connection {
	return models.Connection{
		ID:                   req.ID,
		Name:                 req.Name,
		Company:              req.Company,
		Role:                 req.Role,
		Email:                req.Email,
		Phone:                req.Phone,
		LinkedInURL:          req.LinkedInURL,
		SameSchool:           req.SameSchool,
		SameMajor:            req.SameMajor,
		MutualConnections:    req.MutualConnections,
		Notes:                req.Notes,
		LinkedApplicationIDs: req.LinkedApplicationIDs,
	}
}

func (h *ConnectionsHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list := h.connections.Connections(repository.ConnectionQuery{
		Filter: q.Get("filter"),
		Search: q.Get("search"),
	})
	writeJSON(w, list, http.StatusOK)
}

func (h *ConnectionsHandler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.connections.AddConnection(req.connection())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, c, http.StatusCreated)
}

func (h *ConnectionsHandler) GetConnection(w http.ResponseWriter, r *http.Request) {
	c, ok := h.connections.Connection(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, c, http.StatusOK)
}

func (h *ConnectionsHandler) UpdateConnection(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := req.connection()
	in.ID = mux.Vars(r)["id"]
	c, err := h.connections.UpdateConnection(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, c, http.StatusOK)
}

func (h *ConnectionsHandler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	if err := h.connections.DeleteConnection(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConnectionsHandler) Interactions(w http.ResponseWriter, r *http.Request) {
	list, err := h.interactions.Interactions(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, list, http.StatusOK)
}

func (h *ConnectionsHandler) Companies(w http.ResponseWriter, r *http.Request) {
	list, err := h.connections.ConnectionCompanies(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, list, http.StatusOK)
}
