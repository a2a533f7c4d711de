package store

import (
	"sort"

	"github.com/garnizeh/pathfinder/pkg/models"
)

func (s *Store) AddNote(companyID, content string) (models.Note, error) {
	var out models.Note
	err := s.update(func() error {
		if s.companyIndex(companyID) < 0 {
			return ErrNotFound
		}
		now := s.clock()
		out = models.Note{ID: s.newID(), CompanyID: companyID, Content: content, CreatedAt: now, UpdatedAt: now}
		s.notes = append(s.notes, out)
		return nil
	}, SliceNotes)

	return out, err
}

func (s *Store) UpdateNote(id, content string) (models.Note, error) {
	var out models.Note
	err := s.update(func() error {
		idx := s.noteIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		s.notes[idx].Content = content
		s.notes[idx].UpdatedAt = s.stamp(s.notes[idx].UpdatedAt)
		out = s.notes[idx]
		return nil
	}, SliceNotes)

	return out, err
}

func (s *Store) DeleteNote(id string) error {
	return s.update(func() error {
		idx := s.noteIndex(id)
		if idx < 0 {
			return ErrNotFound
		}
		s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
		return nil
	}, SliceNotes)
}

// Notes returns the company's notes, newest first.
func (s *Store) Notes(companyID string) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.companyIndex(companyID) < 0 {
		return nil, ErrNotFound
	}
	out := []models.Note{}
	for _, n := range s.notes {
		if n.CompanyID == companyID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (s *Store) noteIndex(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}
