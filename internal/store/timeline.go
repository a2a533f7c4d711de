package store

import (
	"fmt"
	"time"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// CreatedEvent is the first entry of every company timeline.
func CreatedEvent(c models.Company, at time.Time) models.TimelineEvent {
	return models.TimelineEvent{
		CompanyID:   c.ID,
		Type:        models.EventCreated,
		Title:       "Added to tracker",
		Description: fmt.Sprintf("Started tracking %s at %s", c.Role, c.Name),
		Date:        at,
	}
}

// StatusEvent records a status transition.
func StatusEvent(companyID string, from, to models.Status, at time.Time) models.TimelineEvent {
	return models.TimelineEvent{
		CompanyID:   companyID,
		Type:        models.EventStatusChange,
		Title:       "Status updated to " + to.Label(),
		Description: fmt.Sprintf("Status changed from %s to %s", from.Label(), to.Label()),
		Date:        at,
	}
}

// InteractionEvent records an interaction tagged with a company.
func InteractionEvent(i models.Interaction) models.TimelineEvent {
	return models.TimelineEvent{
		CompanyID:   i.TargetCompanyID,
		Type:        models.EventInteraction,
		Title:       i.Title,
		Description: i.Description,
		Date:        i.Date,
	}
}
