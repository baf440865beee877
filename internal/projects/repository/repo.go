package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sourcecodehub/hub-backend/internal/projects/domain"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

// ProjectsKey is the storage key of the persisted catalog.
const ProjectsKey = "s_hub_projects"

// ErrCorrupt means a stored value exists but is not a well-formed project array.
var ErrCorrupt = errors.New("stored projects are corrupt")

// ProjectStore reads and writes the whole catalog as one JSON array.
type ProjectStore struct {
	kv  storage.KV
	log *zap.Logger
}

// NewProjectStore creates a new project store on top of kv
func NewProjectStore(kv storage.KV, log *zap.Logger) *ProjectStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectStore{kv: kv, log: log}
}

// Load returns the stored projects. found is false when nothing was ever saved.
func (s *ProjectStore) Load(ctx context.Context) (projects []domain.Project, found bool, err error) {
	raw, err := s.kv.Get(ctx, ProjectsKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load projects: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		return nil, true, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, true, nil
}

// Save replaces the stored catalog with projects.
func (s *ProjectStore) Save(ctx context.Context, projects []domain.Project) error {
	if projects == nil {
		projects = []domain.Project{}
	}
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	if err := s.kv.Set(ctx, ProjectsKey, string(raw)); err != nil {
		return fmt.Errorf("save projects: %w", err)
	}
	return nil
}

// LoadOrSeed applies the first-run contract: an absent entry is replaced by
// seed and written back at once; a corrupt entry falls back to seed without
// writing anything.
func (s *ProjectStore) LoadOrSeed(ctx context.Context, seed []domain.Project) ([]domain.Project, error) {
	projects, found, err := s.Load(ctx)
	switch {
	case errors.Is(err, ErrCorrupt):
		s.log.Warn("discarding corrupt stored projects, using defaults", zap.Error(err))
		return seed, nil
	case err != nil:
		return nil, err
	case !found:
		if err := s.Save(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return projects, nil
}
