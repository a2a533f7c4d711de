package repository

import (
	"context"
	"time"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
// The in-memory store operations never block, so only SnapshotRepo takes a context.

type CompanyQuery struct {
	Status string
	Search string
	Sort   string
}

type ConnectionQuery struct {
	Filter string
	Search string
}

type CompanyRepo interface {
	AddCompany(c models.Company) (models.Company, error)
	UpdateCompany(c models.Company) (models.Company, error)
	UpdateCompanyStatus(id string, status models.Status) error
	DeleteCompany(id string) error
	Company(id string) (models.Company, bool)
	Companies(q CompanyQuery) []models.Company
	Timeline(companyID string) ([]models.TimelineEvent, error)
	CompanyContacts(companyID string) ([]models.Connection, error)
	LinkContactToCompany(companyID, connectionID string) error
	UnlinkContactFromCompany(companyID, connectionID string) error
}

type ConnectionRepo interface {
	AddConnection(c models.Connection) (models.Connection, error)
	UpdateConnection(c models.Connection) (models.Connection, error)
	DeleteConnection(id string) error
	Connection(id string) (models.Connection, bool)
	Connections(q ConnectionQuery) []models.Connection
	ConnectionCompanies(connectionID string) ([]models.Company, error)
}

type InteractionRepo interface {
	AddInteraction(i models.Interaction) (models.Interaction, error)
	DeleteInteraction(id string) error
	Interactions(connectionID string) ([]models.Interaction, error)
	CompanyInteractions(companyID string) ([]models.Interaction, error)
}

type ReminderBuckets struct {
	Overdue   []models.Reminder `json:"overdue"`
	Today     []models.Reminder `json:"today"`
	ThisWeek  []models.Reminder `json:"this_week"`
	Later     []models.Reminder `json:"later"`
	Completed []models.Reminder `json:"completed"`
}

type ReminderRepo interface {
	AddReminder(r models.Reminder) (models.Reminder, error)
	UpdateReminder(r models.Reminder) (models.Reminder, error)
	DeleteReminder(id string) error
	CompleteReminder(id string) error
	ReopenReminder(id string) error
	Reminder(id string) (models.Reminder, bool)
	Reminders() []models.Reminder
	ReminderBuckets() ReminderBuckets
	DueReminders(until time.Time) []models.Reminder
}

type NoteRepo interface {
	AddNote(companyID, content string) (models.Note, error)
	UpdateNote(id, content string) (models.Note, error)
	DeleteNote(id string) error
	Notes(companyID string) ([]models.Note, error)
}

type StatsRepo interface {
	Stats() models.UserStats
	RecalculateStats() models.UserStats
}

type ProfileRepo interface {
	Profile() models.UserProfile
	UpdateProfile(p models.UserProfile) models.UserProfile
}

// SnapshotRepo persists whole-store snapshots. LoadSnapshot returns nil, nil when
// nothing has been saved yet.
type SnapshotRepo interface {
	SaveSnapshot(ctx context.Context, s *models.Snapshot) error
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)
}
