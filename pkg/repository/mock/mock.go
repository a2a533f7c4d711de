package mock

import (
	"context"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	SnapshotRepo *mockSnapshotRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		SnapshotRepo: &mockSnapshotRepo{},
	}
}

type mockSnapshotRepo struct {
	Stored  *models.Snapshot
	Saves   int
	SaveErr error
	LoadErr error
}

func (m *mockSnapshotRepo) SaveSnapshot(ctx context.Context, s *models.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saves++
	m.Stored = s
	return nil
}

func (m *mockSnapshotRepo) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Stored, nil
}
