package store

import (
	"github.com/garnizeh/pathfinder/pkg/models"
)

// AddConnection stores c. LastContacted is ignored: it only advances when an
// interaction is logged.
func (s *Store) AddConnection(c models.Connection) (models.Connection, error) {
	var out models.Connection
	err := s.update(func() error {
		id, err := s.ensureID(c.ID, func(id string) bool { return s.connectionIndex(id) >= 0 })
		if err != nil {
			return err
		}

		now := s.clock()
		c.ID = id
		c.CreatedAt = now
		c.UpdatedAt = now
		c.LastContacted = nil
		apps := c.LinkedApplicationIDs
		c.LinkedApplicationIDs = nil
		s.connections = append(s.connections, c)

		for _, aid := range apps {
			if s.companyIndex(aid) >= 0 {
				s.addLink(aid, c.ID)
			}
		}

		out = s.connectionOut(c)
		return nil
	}, SliceConnections, SliceCompanies)

	return out, err
}

// UpdateConnection replaces the editable fields of the connection with c.ID.
// LastContacted, links and the creation time are kept.
func (s *Store) UpdateConnection(c models.Connection) (models.Connection, error) {
	var out models.Connection
	err := s.update(func() error {
		idx := s.connectionIndex(c.ID)
		if idx < 0 {
			return ErrNotFound
		}

		cur := &s.connections[idx]
		cur.Name = c.Name
		cur.Company = c.Company
		cur.Role = c.Role
		cur.Email = c.Email
		cur.Phone = c.Phone
		cur.LinkedInURL = c.LinkedInURL
		cur.SameSchool = c.SameSchool
		cur.SameMajor = c.SameMajor
		cur.MutualConnections = c.MutualConnections
		cur.Notes = c.Notes
		cur.UpdatedAt = s.stamp(cur.UpdatedAt)

		out = s.connectionOut(*cur)
		return nil
	}, SliceConnections)

	return out, err
}

// DeleteConnection removes the connection, its links and every interaction logged with it.
func (s *Store) DeleteConnection(id string) error {
	return s.update(func() error {
		idx := s.connectionIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		s.connections = append(s.connections[:idx], s.connections[idx+1:]...)

		s.removeLinks(func(l models.Link) bool { return l.ConnectionID == id })

		kept := s.interactions[:0]
		for _, in := range s.interactions {
			if in.ConnectionID != id {
				kept = append(kept, in)
			}
		}
		s.interactions = kept
		return nil
	}, SliceConnections, SliceCompanies, SliceInteractions)
}

func (s *Store) Connection(id string) (models.Connection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.connectionIndex(id)
	if idx < 0 {
		return models.Connection{}, false
	}
	return s.connectionOut(s.connections[idx]), true
}

// LinkContactToCompany records that the connection is relevant to the
// company's application. Linking an already linked pair changes nothing.
func (s *Store) LinkContactToCompany(companyID, connectionID string) error {
	return s.update(func() error {
		ci, ki := s.companyIndex(companyID), s.connectionIndex(connectionID)
		if ci < 0 || ki < 0 {
			return ErrNotFound
		}
		if s.addLink(companyID, connectionID) {
			s.companies[ci].UpdatedAt = s.stamp(s.companies[ci].UpdatedAt)
			s.connections[ki].UpdatedAt = s.stamp(s.connections[ki].UpdatedAt)
		}
		return nil
	}, SliceCompanies, SliceConnections)
}

// UnlinkContactFromCompany removes the pair. Unlinking a pair that is not
// linked changes nothing.
func (s *Store) UnlinkContactFromCompany(companyID, connectionID string) error {
	return s.update(func() error {
		ci, ki := s.companyIndex(companyID), s.connectionIndex(connectionID)
		if ci < 0 || ki < 0 {
			return ErrNotFound
		}
		removed := s.removeLinks(func(l models.Link) bool {
			return l.CompanyID == companyID && l.ConnectionID == connectionID
		})
		if removed > 0 {
			s.companies[ci].UpdatedAt = s.stamp(s.companies[ci].UpdatedAt)
			s.connections[ki].UpdatedAt = s.stamp(s.connections[ki].UpdatedAt)
		}
		return nil
	}, SliceCompanies, SliceConnections)
}

// CompanyContacts returns the connections linked to a company, in link order.
func (s *Store) CompanyContacts(companyID string) ([]models.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.companyIndex(companyID) < 0 {
		return nil, ErrNotFound
	}
	out := []models.Connection{}
	for _, l := range s.links {
		if l.CompanyID != companyID {
			continue
		}
		if idx := s.connectionIndex(l.ConnectionID); idx >= 0 {
			out = append(out, s.connectionOut(s.connections[idx]))
		}
	}
	return out, nil
}

// ConnectionCompanies returns the companies a connection is linked to, in link order.
func (s *Store) ConnectionCompanies(connectionID string) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.connectionIndex(connectionID) < 0 {
		return nil, ErrNotFound
	}
	out := []models.Company{}
	for _, l := range s.links {
		if l.ConnectionID != connectionID {
			continue
		}
		if idx := s.companyIndex(l.CompanyID); idx >= 0 {
			out = append(out, s.companyOut(s.companies[idx]))
		}
	}
	return out, nil
}

// addLink inserts the pair unless present and reports whether it was added.
func (s *Store) addLink(companyID, connectionID string) bool {
	for _, l := range s.links {
		if l.CompanyID == companyID && l.ConnectionID == connectionID {
			return false
		}
	}
	s.links = append(s.links, models.Link{CompanyID: companyID, ConnectionID: connectionID})
	return true
}

func (s *Store) removeLinks(match func(models.Link) bool) int {
	kept := s.links[:0]
	removed := 0
	for _, l := range s.links {
		if match(l) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	s.links = kept
	return removed
}

func (s *Store) connectionIndex(id string) int {
	for i := range s.connections {
		if s.connections[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) connectionOut(c models.Connection) models.Connection {
	c.LastContacted = cloneTime(c.LastContacted)
	c.LinkedApplicationIDs = []string{}
	for _, l := range s.links {
		if l.ConnectionID == c.ID {
			c.LinkedApplicationIDs = append(c.LinkedApplicationIDs, l.CompanyID)
		}
	}
	return c
}
