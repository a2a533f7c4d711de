package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/pathfinder/internal/store"
)

func SetupRoutes(st *store.Store, info SystemInfo) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := NewSystemHandler(st, info)
	companiesHandler := NewCompaniesHandler(st, st, st, st.Now)
	connectionsHandler := NewConnectionsHandler(st, st)
	interactionsHandler := NewInteractionsHandler(st, st.Now)
	remindersHandler := NewRemindersHandler(st)
	profileHandler := NewProfileHandler(st, st)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	apiV1 := r.PathPrefix("/v1").Subrouter()

	// Companies endpoints; export is registered before {id} so it is not taken as an ID
	apiV1.HandleFunc("/companies/export.csv", companiesHandler.ExportCSV).Methods("GET")
	apiV1.HandleFunc("/companies", companiesHandler.ListCompanies).Methods("GET")
	apiV1.HandleFunc("/companies", companiesHandler.CreateCompany).Methods("POST")
	apiV1.HandleFunc("/companies/{id}", companiesHandler.GetCompany).Methods("GET")
	apiV1.HandleFunc("/companies/{id}", companiesHandler.UpdateCompany).Methods("PUT")
	apiV1.HandleFunc("/companies/{id}", companiesHandler.DeleteCompany).Methods("DELETE")
	apiV1.HandleFunc("/companies/{id}/status", companiesHandler.UpdateStatus).Methods("PUT")
	apiV1.HandleFunc("/companies/{id}/timeline", companiesHandler.Timeline).Methods("GET")
	apiV1.HandleFunc("/companies/{id}/notes", companiesHandler.ListNotes).Methods("GET")
	apiV1.HandleFunc("/companies/{id}/notes", companiesHandler.CreateNote).Methods("POST")
	apiV1.HandleFunc("/companies/{id}/contacts", companiesHandler.Contacts).Methods("GET")
	apiV1.HandleFunc("/companies/{id}/contacts/{contactID}", companiesHandler.LinkContact).Methods("POST")
	apiV1.HandleFunc("/companies/{id}/contacts/{contactID}", companiesHandler.UnlinkContact).Methods("DELETE")
	apiV1.HandleFunc("/companies/{id}/interactions", companiesHandler.Interactions).Methods("GET")

	// Notes endpoints
	apiV1.HandleFunc("/notes/{id}", companiesHandler.UpdateNote).Methods("PUT")
	apiV1.HandleFunc("/notes/{id}", companiesHandler.DeleteNote).Methods("DELETE")

	// Connections endpoints
	apiV1.HandleFunc("/connections", connectionsHandler.ListConnections).Methods("GET")
	apiV1.HandleFunc("/connections", connectionsHandler.CreateConnection).Methods("POST")
	apiV1.HandleFunc("/connections/{id}", connectionsHandler.GetConnection).Methods("GET")
	apiV1.HandleFunc("/connections/{id}", connectionsHandler.UpdateConnection).Methods("PUT")
	apiV1.HandleFunc("/connections/{id}", connectionsHandler.DeleteConnection).Methods("DELETE")
	apiV1.HandleFunc("/connections/{id}/interactions", connectionsHandler.Interactions).Methods("GET")
	apiV1.HandleFunc("/connections/{id}/companies", connectionsHandler.Companies).Methods("GET")

	// Interactions endpoints
	apiV1.HandleFunc("/interactions", interactionsHandler.ListInteractions).Methods("GET")
	apiV1.HandleFunc("/interactions", interactionsHandler.CreateInteraction).Methods("POST")
	apiV1.HandleFunc("/interactions/{id}", interactionsHandler.DeleteInteraction).Methods("DELETE")

	// Reminders endpoints
	apiV1.HandleFunc("/reminders", remindersHandler.ListReminders).Methods("GET")
	apiV1.HandleFunc("/reminders", remindersHandler.CreateReminder).Methods("POST")
	apiV1.HandleFunc("/reminders/{id}", remindersHandler.UpdateReminder).Methods("PUT")
	apiV1.HandleFunc("/reminders/{id}", remindersHandler.DeleteReminder).Methods("DELETE")
	apiV1.HandleFunc("/reminders/{id}/complete", remindersHandler.CompleteReminder).Methods("POST")
	apiV1.HandleFunc("/reminders/{id}/reopen", remindersHandler.ReopenReminder).Methods("POST")

	// Dashboard endpoints
	apiV1.HandleFunc("/stats", profileHandler.GetStats).Methods("GET")
	apiV1.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	apiV1.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")

	// Preflight requests are answered by CORSMiddleware once a route matches
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
