package api

import (
	"net/http"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// SystemInfo describes the running server for the /version and /health endpoints.
type SystemInfo struct {
	Version     string
	BuildTime   string
	Persistence bool
}

// StoreStatus is the part of the store the health check reads.
type StoreStatus interface {
	Empty() bool
	Stats() models.UserStats
}

type SystemHandler struct {
	store StoreStatus
	info  SystemInfo
}

func NewSystemHandler(st StoreStatus, info SystemInfo) *SystemHandler {
	return &SystemHandler{store: st, info: info}
}

type healthResponse struct {
	Status      string      `json:"status"`
	Service     string      `json:"service"`
	Persistence string      `json:"persistence"`
	Store       storeHealth `json:"store"`
}

type storeHealth struct {
	Loaded       bool `json:"loaded"`
	Applications int  `json:"applications"`
	TasksDue     int  `json:"tasks_due"`
}

// HealthHandler reports whether the store holds data and where snapshots go.
func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	persistence := "memory"
	if h.info.Persistence {
		persistence = "sqlite"
	}
	stats := h.store.Stats()

	writeJSON(w, healthResponse{
		Status:      "ok",
		Service:     "pathfinder",
		Persistence: persistence,
		Store: storeHealth{
			Loaded:       !h.store.Empty(),
			Applications: stats.TotalApplications,
			TasksDue:     stats.TasksDue,
		},
	}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":   h.info.Version,
		"buildTime": h.info.BuildTime,
	}, http.StatusOK)
}
