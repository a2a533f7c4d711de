package models

import "time"

// Domain models shared by the store, the HTTP layer and the snapshot tables in
// db/migrations/0001_init.sql.

// Status is the pipeline stage of a tracked application.
type Status string

const (
	StatusThinking     Status = "thinking"
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusOffer        Status = "offer"
	StatusRejected     Status = "rejected"
)

// Statuses lists every pipeline stage in display order.
var Statuses = []Status{StatusThinking, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusThinking, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Label is the human readable form used in timeline entries and exports.
func (s Status) Label() string {
	switch s {
	case StatusThinking:
		return "Thinking"
	case StatusApplied:
		return "Applied"
	case StatusInterviewing:
		return "Interviewing"
	case StatusOffer:
		return "Offer"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

type InteractionType string

const (
	InteractionEmailSent       InteractionType = "email_sent"
	InteractionEmailReceived   InteractionType = "email_received"
	InteractionLinkedInMessage InteractionType = "linkedin_message"
	InteractionCall            InteractionType = "call"
	InteractionCoffeeChat      InteractionType = "coffee_chat"
	InteractionMeeting         InteractionType = "meeting"
	InteractionReferralRequest InteractionType = "referral_request"
	InteractionOther           InteractionType = "other"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionEmailSent, InteractionEmailReceived, InteractionLinkedInMessage, InteractionCall,
		InteractionCoffeeChat, InteractionMeeting, InteractionReferralRequest, InteractionOther:
		return true
	}
	return false
}

type ReminderType string

const (
	ReminderFollowUp      ReminderType = "follow_up"
	ReminderApply         ReminderType = "apply"
	ReminderCallPrep      ReminderType = "call_prep"
	ReminderCheckResponse ReminderType = "check_response"
	ReminderSendThankYou  ReminderType = "send_thank_you"
	ReminderOther         ReminderType = "other"
)

func (t ReminderType) Valid() bool {
	switch t {
	case ReminderFollowUp, ReminderApply, ReminderCallPrep, ReminderCheckResponse, ReminderSendThankYou, ReminderOther:
		return true
	}
	return false
}

type EventType string

const (
	EventCreated      EventType = "created"
	EventStatusChange EventType = "status_change"
	EventInteraction  EventType = "interaction"
)

// Company is a tracked job or internship application.
type Company struct {
	ID               string     `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Role             string     `json:"role" db:"role"`
	URL              string     `json:"url,omitempty" db:"url"`
	Location         string     `json:"location,omitempty" db:"location"`
	Description      string     `json:"description,omitempty" db:"description"`
	RequiredSkills   []string   `json:"required_skills" db:"required_skills"`
	Status           Status     `json:"status" db:"status"`
	Deadline         *time.Time `json:"deadline,omitempty" db:"deadline"`
	LinkedContactIDs []string   `json:"linked_contact_ids" db:"-"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// Connection is a contact in the user's network.
type Connection struct {
	ID                   string     `json:"id" db:"id"`
	Name                 string     `json:"name" db:"name"`
	Company              string     `json:"company,omitempty" db:"company"`
	Role                 string     `json:"role,omitempty" db:"role"`
	Email                string     `json:"email,omitempty" db:"email"`
	Phone                string     `json:"phone,omitempty" db:"phone"`
	LinkedInURL          string     `json:"linkedin_url,omitempty" db:"linkedin_url"`
	SameSchool           bool       `json:"same_school" db:"same_school"`
	SameMajor            bool       `json:"same_major" db:"same_major"`
	MutualConnections    int        `json:"mutual_connections" db:"mutual_connections"`
	Notes                string     `json:"notes,omitempty" db:"notes"`
	LastContacted        *time.Time `json:"last_contacted,omitempty" db:"last_contacted"`
	LinkedApplicationIDs []string   `json:"linked_application_ids" db:"-"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`
}

// Interaction is a logged exchange with a connection.
type Interaction struct {
	ID              string          `json:"id" db:"id"`
	ConnectionID    string          `json:"connection_id" db:"connection_id"`
	TargetCompanyID string          `json:"target_company_id,omitempty" db:"target_company_id"`
	Type            InteractionType `json:"type" db:"type"`
	Title           string          `json:"title" db:"title"`
	Description     string          `json:"description,omitempty" db:"description"`
	Date            time.Time       `json:"date" db:"date"`
	FollowUpNeeded  bool            `json:"follow_up_needed" db:"follow_up_needed"`
	FollowUpDate    *time.Time      `json:"follow_up_date,omitempty" db:"follow_up_date"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

type Reminder struct {
	ID           string       `json:"id" db:"id"`
	CompanyID    string       `json:"company_id,omitempty" db:"company_id"`
	Type         ReminderType `json:"type" db:"type"`
	ReminderDate time.Time    `json:"reminder_date" db:"reminder_date"`
	Message      string       `json:"message" db:"message"`
	Completed    bool         `json:"completed" db:"completed"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

type Note struct {
	ID        string    `json:"id" db:"id"`
	CompanyID string    `json:"company_id" db:"company_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TimelineEvent is an entry of a company's append-only history.
type TimelineEvent struct {
	ID          string    `json:"id" db:"id"`
	CompanyID   string    `json:"company_id" db:"company_id"`
	Type        EventType `json:"type" db:"type"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Date        time.Time `json:"date" db:"date"`
}

type UserProfile struct {
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email,omitempty" db:"email"`
	School         string    `json:"school,omitempty" db:"school"`
	Major          string    `json:"major,omitempty" db:"major"`
	GraduationYear int       `json:"graduation_year,omitempty" db:"graduation_year"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// UserStats is derived from companies and reminders; it is never stored.
type UserStats struct {
	TotalApplications int `json:"total_applications"`
	Thinking          int `json:"thinking"`
	Applied           int `json:"applied"`
	Interviewing      int `json:"interviewing"`
	Offers            int `json:"offers"`
	Rejected          int `json:"rejected"`
	UpcomingDeadlines int `json:"upcoming_deadlines"`
	TasksDue          int `json:"tasks_due"`
}

// Link pairs a company with a connection.
type Link struct {
	CompanyID    string `json:"company_id" db:"company_id"`
	ConnectionID string `json:"connection_id" db:"connection_id"`
}

// Snapshot is a full copy of the store contents.
type Snapshot struct {
	Profile      UserProfile     `json:"profile"`
	Companies    []Company       `json:"companies"`
	Connections  []Connection    `json:"connections"`
	Links        []Link          `json:"links"`
	Interactions []Interaction   `json:"interactions"`
	Reminders    []Reminder      `json:"reminders"`
	Notes        []Note          `json:"notes"`
	Timeline     []TimelineEvent `json:"timeline"`
}
