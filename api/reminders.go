package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

type RemindersHandler struct {
	reminders repository.ReminderRepo
}

func NewRemindersHandler(rr repository.ReminderRepo) *RemindersHandler {
	return &RemindersHandler{reminders: rr}
}

type reminderRequest struct {
	ID           string              `json:"id"`
	CompanyID    string              `json:"company_id"`
	Type         models.ReminderType `json:"type"`
	ReminderDate *time.Time          `json:"reminder_date" validate:"required"`
	Message      string              `json:"message" validate:"required"`
}

func (req *reminderRequest) normalize() {
	req.Message = strings.TrimSpace(req.Message)
}

func (req *reminderRequest) reminder() models.Reminder {
	return models.Reminder{
		ID:           req.ID,
		CompanyID:    req.CompanyID,
		Type:         req.Type,
		ReminderDate: *req.ReminderDate,
		Message:      req.Message,
	}
}

// ListReminders returns every reminder, or the dashboard buckets with ?view=buckets.
func (h *RemindersHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("view") == "buckets" {
		writeJSON(w, h.reminders.ReminderBuckets(), http.StatusOK)
		return
	}
	writeJSON(w, h.reminders.Reminders(), http.StatusOK)
}

func (h *RemindersHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	out, err := h.reminders.AddReminder(req.reminder())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusCreated)
}

func (h *RemindersHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := req.reminder()
	in.ID = mux.Vars(r)["id"]
	out, err := h.reminders.UpdateReminder(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *RemindersHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.reminders.DeleteReminder(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RemindersHandler) CompleteReminder(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, h.reminders.CompleteReminder)
}

func (h *RemindersHandler) ReopenReminder(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, h.reminders.ReopenReminder)
}

func (h *RemindersHandler) setCompleted(w http.ResponseWriter, r *http.Request, fn func(id string) error) {
	id := mux.Vars(r)["id"]
	if err := fn(id); err != nil {
		writeError(w, err)
		return
	}
	out, _ := h.reminders.Reminder(id)
	writeJSON(w, out, http.StatusOK)
}
