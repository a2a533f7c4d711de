package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/garnizeh/pathfinder/internal/export"
	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

type CompaniesHandler struct {
	companies    repository.CompanyRepo
	notes        repository.NoteRepo
	interactions repository.InteractionRepo
	clock        func() time.Time
}

func NewCompaniesHandler(cr repository.CompanyRepo, nr repository.NoteRepo, ir repository.InteractionRepo, clock func() time.Time) *CompaniesHandler {
	if clock == nil {
		clock = time.Now
	}
	return &CompaniesHandler{companies: cr, notes: nr, interactions: ir, clock: clock}
}

type companyRequest struct {
	ID               string        `json:"id"`
	Name             string        `json:"name" validate:"required"`
	Role             string        `json:"role" validate:"required"`
	URL              string        `json:"url" validate:"omitempty,http_url"`
	Location         string        `json:"location"`
	Description      string        `json:"description"`
	RequiredSkills   []string      `json:"required_skills"`
	Status           models.Status `json:"status"`
	Deadline         *time.Time    `json:"deadline"`
	LinkedContactIDs []string      `json:"linked_contact_ids"`
}

func (req *companyRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(req.Role)
	req.URL = strings.TrimSpace(req.URL)
	req.Location = strings.TrimSpace(req.Location)

	skills := make([]string, 0, len(req.RequiredSkills))
	for _, s := range req.RequiredSkills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	req.RequiredSkills = skills
}

func (req *companyRequest) company() models.Company {
	return models.Company{
		ID:               req.ID,
		Name:             req.Name,
		Role:             req.Role,
		URL:              req.URL,
		Location:         req.Location,
		Description:      req.Description,
		RequiredSkills:   req.RequiredSkills,
		Status:           req.Status,
		Deadline:         req.Deadline,
		LinkedContactIDs: req.LinkedContactIDs,
	}
}

func companyQuery(r *http.Request) repository.CompanyQuery {
	q := r.URL.Query()
	return repository.CompanyQuery{
		Status: q.Get("status"),
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
	}
}

func (h *CompaniesHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.companies.Companies(companyQuery(r)), http.StatusOK)
}

func (h *CompaniesHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.companies.AddCompany(req.company())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, c, http.StatusCreated)
}

func (h *CompaniesHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	c, ok := h.companies.Company(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, c, http.StatusOK)
}

func (h *CompaniesHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := req.company()
	in.ID = mux.Vars(r)["id"]
	c, err := h.companies.UpdateCompany(in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, c, http.StatusOK)
}

func (h *CompaniesHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.companies.DeleteCompany(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusRequest struct {
	Status models.Status `json:"status"`
}

func (h *CompaniesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.companies.UpdateCompanyStatus(id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	c, _ := h.companies.Company(id)
	writeJSON(w, c, http.StatusOK)
}

func (h *CompaniesHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	events, err := h.companies.Timeline(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, events, http.StatusOK)
}

func (h *CompaniesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.Notes(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, notes, http.StatusOK)
}

type noteRequest struct {
	Content string `json:"content" validate:"required"`
}

func (req *noteRequest) normalize() {
	req.Content = strings.TrimSpace(req.Content)
}

func (h *CompaniesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	n, err := h.notes.AddNote(mux.Vars(r)["id"], req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, n, http.StatusCreated)
}

func (h *CompaniesHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	n, err := h.notes.UpdateNote(mux.Vars(r)["id"], req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, n, http.StatusOK)
}

func (h *CompaniesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.DeleteNote(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompaniesHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.companies.CompanyContacts(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, contacts, http.StatusOK)
}

func (h *CompaniesHandler) LinkContact(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.companies.LinkContactToCompany(vars["id"], vars["contactID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompaniesHandler) UnlinkContact(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.companies.UnlinkContactFromCompany(vars["id"], vars["contactID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompaniesHandler) Interactions(w http.ResponseWriter, r *http.Request) {
	list, err := h.interactions.CompanyInteractions(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, list, http.StatusOK)
}

// ExportCSV serves the filtered company list as a CSV attachment.
func (h *CompaniesHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.Companies(&buf, h.companies.Companies(companyQuery(r))); err != nil {
		writeError(w, err)
		return
	}

	name := export.FileName(h.clock().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
