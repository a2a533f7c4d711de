package store

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// AddInteraction logs an exchange with a connection. The connection's
// LastContacted becomes i.Date, whatever that date is. When i names an existing
// target company, an event built from the interaction is appended to that
// company's timeline; a target that does not exist is cleared.
func (s *Store) AddInteraction(i models.Interaction) (models.Interaction, error) {
	if i.Type == "" {
		i.Type = models.InteractionOther
	}
	if !i.Type.Valid() {
		return models.Interaction{}, fmt.Errorf("%w: interaction %q", ErrInvalidType, i.Type)
	}

	err := s.update(func() error {
		ki := s.connectionIndex(i.ConnectionID)
		if ki < 0 {
			return ErrNotFound
		}
		id, err := s.ensureID(i.ID, func(id string) bool { return s.interactionIndex(id) >= 0 })
		if err != nil {
			return err
		}

		i.ID = id
		i.CreatedAt = s.clock()
		i.FollowUpDate = cloneTime(i.FollowUpDate)

		if i.TargetCompanyID != "" && s.companyIndex(i.TargetCompanyID) < 0 {
			s.logger.Warn("interaction target company not found, dropping tag",
				zap.String("interaction_id", i.ID),
				zap.String("company_id", i.TargetCompanyID),
			)
			i.TargetCompanyID = ""
		}

		s.interactions = append(s.interactions, i)

		date := i.Date
		s.connections[ki].LastContacted = &date

		if i.TargetCompanyID != "" {
			s.appendEvent(InteractionEvent(i))
		}
		return nil
	}, SliceInteractions, SliceConnections, SliceTimeline)
	if err != nil {
		return models.Interaction{}, err
	}

	return i, nil
}

// DeleteInteraction removes the interaction. The connection's LastContacted and
// any timeline event it produced are left as they are.
func (s *Store) DeleteInteraction(id string) error {
	return s.update(func() error {
		idx := s.interactionIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		s.interactions = append(s.interactions[:idx], s.interactions[idx+1:]...)
		return nil
	}, SliceInteractions)
}

// Interactions returns the connection's interactions, newest first.
func (s *Store) Interactions(connectionID string) ([]models.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.connectionIndex(connectionID) < 0 {
		return nil, ErrNotFound
	}
	return s.collectInteractions(func(i models.Interaction) bool { return i.ConnectionID == connectionID }), nil
}

// CompanyInteractions returns interactions tagged with the company, newest first.
func (s *Store) CompanyInteractions(companyID string) ([]models.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.companyIndex(companyID) < 0 {
		return nil, ErrNotFound
	}
	return s.collectInteractions(func(i models.Interaction) bool { return i.TargetCompanyID == companyID }), nil
}

func (s *Store) collectInteractions(match func(models.Interaction) bool) []models.Interaction {
	out := []models.Interaction{}
	for _, in := range s.interactions {
		if match(in) {
			in.FollowUpDate = cloneTime(in.FollowUpDate)
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Date.After(out[b].Date) })
	return out
}

func (s *Store) interactionIndex(id string) int {
	for i := range s.interactions {
		if s.interactions[i].ID == id {
			return i
		}
	}
	return -1
}
