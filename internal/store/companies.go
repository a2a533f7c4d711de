package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// AddCompany stores c and returns the stored copy. An empty ID is generated; an
// ID that is already taken is rejected and nothing is overwritten. Linked
// contact IDs naming existing connections are linked, others are dropped.
func (s *Store) AddCompany(c models.Company) (models.Company, error) {
	var out models.Company
	err := s.update(func() error {
		id, err := s.ensureID(c.ID, func(id string) bool { return s.companyIndex(id) >= 0 })
		if err != nil {
			return err
		}
		if c.Status == "" {
			c.Status = models.StatusThinking
		}
		if !c.Status.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
		}

		now := s.clock()
		c.ID = id
		c.CreatedAt = now
		c.UpdatedAt = now
		c.RequiredSkills = cloneStrings(c.RequiredSkills)
		c.Deadline = cloneTime(c.Deadline)
		contacts := c.LinkedContactIDs
		c.LinkedContactIDs = nil
		s.companies = append(s.companies, c)

		for _, cid := range contacts {
			if s.connectionIndex(cid) >= 0 {
				s.addLink(c.ID, cid)
			}
		}

		s.appendEvent(CreatedEvent(c, now))
		s.recalculate()

		out = s.companyOut(c)
		return nil
	}, SliceCompanies, SliceConnections, SliceTimeline, SliceStats)

	return out, err
}

// UpdateCompany replaces the editable fields of the company with c.ID. Status,
// links and the creation time are kept; status changes go through
// UpdateCompanyStatus so they are recorded on the timeline.
func (s *Store) UpdateCompany(c models.Company) (models.Company, error) {
	var out models.Company
	err := s.update(func() error {
		idx := s.companyIndex(c.ID)
		if idx < 0 {
			return ErrNotFound
		}

		cur := &s.companies[idx]
		cur.Name = c.Name
		cur.Role = c.Role
		cur.URL = c.URL
		cur.Location = c.Location
		cur.Description = c.Description
		cur.RequiredSkills = cloneStrings(c.RequiredSkills)
		cur.Deadline = cloneTime(c.Deadline)
		cur.UpdatedAt = s.stamp(cur.UpdatedAt)
		s.recalculate()

		out = s.companyOut(*cur)
		return nil
	}, SliceCompanies, SliceStats)

	return out, err
}

// UpdateCompanyStatus moves a company to status and appends exactly one
// timeline event describing the transition, even when the status is unchanged.
func (s *Store) UpdateCompanyStatus(id string, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.update(func() error {
		idx := s.companyIndex(id)
		if idx < 0 {
			return ErrNotFound
		}

		cur := &s.companies[idx]
		old := cur.Status
		cur.Status = status
		cur.UpdatedAt = s.stamp(cur.UpdatedAt)

		s.appendEvent(StatusEvent(id, old, status, cur.UpdatedAt))
		s.recalculate()

		s.logger.Debug("company status updated",
			zap.String("company_id", id),
			zap.String("from", string(old)),
			zap.String("to", string(status)),
		)
		return nil
	}, SliceCompanies, SliceTimeline, SliceStats)
}

// DeleteCompany removes the company together with its links, notes and
// timeline. Reminders tied to it are kept but detached, and interactions tagged
// with it lose the tag.
func (s *Store) DeleteCompany(id string) error {
	return s.update(func() error {
		idx := s.companyIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		s.companies = append(s.companies[:idx], s.companies[idx+1:]...)

		s.removeLinks(func(l models.Link) bool { return l.CompanyID == id })

		notes := s.notes[:0]
		for _, n := range s.notes {
			if n.CompanyID != id {
				notes = append(notes, n)
			}
		}
		s.notes = notes

		events := s.timeline[:0]
		for _, e := range s.timeline {
			if e.CompanyID != id {
				events = append(events, e)
			}
		}
		s.timeline = events

		for i := range s.reminders {
			if s.reminders[i].CompanyID == id {
				s.reminders[i].CompanyID = ""
			}
		}
		for i := range s.interactions {
			if s.interactions[i].TargetCompanyID == id {
				s.interactions[i].TargetCompanyID = ""
			}
		}

		s.recalculate()
		return nil
	}, SliceCompanies, SliceConnections, SliceNotes, SliceTimeline, SliceReminders, SliceInteractions, SliceStats)
}

// Company returns a copy of the company with id.
func (s *Store) Company(id string) (models.Company, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.companyIndex(id)
	if idx < 0 {
		return models.Company{}, false
	}
	return s.companyOut(s.companies[idx]), true
}

// Timeline returns the company's events in the order they were appended.
func (s *Store) Timeline(companyID string) ([]models.TimelineEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.companyIndex(companyID) < 0 {
		return nil, ErrNotFound
	}
	out := []models.TimelineEvent{}
	for _, e := range s.timeline {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) appendEvent(e models.TimelineEvent) {
	if e.ID == "" {
		e.ID = s.newID()
	}
	s.timeline = append(s.timeline, e)
}

func (s *Store) companyIndex(id string) int {
	for i := range s.companies {
		if s.companies[i].ID == id {
			return i
		}
	}
	return -1
}

// companyOut copies c for callers and projects its linked contacts from the link table.
func (s *Store) companyOut(c models.Company) models.Company {
	c.RequiredSkills = cloneStrings(c.RequiredSkills)
	c.Deadline = cloneTime(c.Deadline)
	c.LinkedContactIDs = []string{}
	for _, l := range s.links {
		if l.CompanyID == c.ID {
			c.LinkedContactIDs = append(c.LinkedContactIDs, l.ConnectionID)
		}
	}
	return c
}
