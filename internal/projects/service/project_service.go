package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sourcecodehub/hub-backend/internal/projects/domain"
	"github.com/sourcecodehub/hub-backend/internal/projects/repository"
	"github.com/sourcecodehub/hub-backend/internal/projects/utils"
)

// ProjectService owns the in-memory catalog. Every read goes through it and
// every mutation ends with an explicit save of the whole collection.
type ProjectService struct {
	mu       sync.RWMutex
	store    *repository.ProjectStore
	projects []domain.Project
	now      func() time.Time
	log      *zap.Logger
}

// Option customises a ProjectService.
type Option func(*ProjectService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ProjectService) { s.now = now }
}

// NewProjectService creates a new project service
func NewProjectService(store *repository.ProjectStore, log *zap.Logger, opts ...Option) *ProjectService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ProjectService{
		store: store,
		now:   time.Now,
		log:   log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the catalog, seeding it on first run.
func (s *ProjectService) Init(ctx context.Context) error {
	projects, err := s.store.LoadOrSeed(ctx, domain.SeedProjects(s.now()))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()

	s.log.Info("catalog loaded", zap.Int("projects", len(projects)))
	return nil
}

// List returns the projects matching search, most recent first.
func (s *ProjectService) List(search string) []domain.Project {
	s.mu.RLock()
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Matches(search) {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// Get returns one project by id.
func (s *ProjectService) Get(id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Project{}, domain.ErrNotFound
	}
	return s.projects[i], nil
}

// Raw returns the verbatim content of a CODE project for copying.
func (s *ProjectService) Raw(id string) (string, error) {
	p, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if p.Type != domain.TypeCode {
		return "", domain.ErrNotCode
	}
	return p.Content, nil
}

// Like adds exactly one like. Repeated likes from the same visitor all count.
func (s *ProjectService) Like(ctx context.Context, id string) (domain.Project, error) {
	return s.bump(ctx, id, func(p *domain.Project) { p.Likes++ })
}

// Download adds exactly one download and returns what the client should receive.
func (s *ProjectService) Download(ctx context.Context, id string) (domain.Project, domain.Artifact, error) {
	p, err := s.bump(ctx, id, func(p *domain.Project) { p.Downloads++ })
	if err != nil {
		return domain.Project{}, domain.Artifact{}, err
	}
	return p, domain.ArtifactFor(p), nil
}

// Create prepends a new project authored by authorID and saves the catalog.
func (s *ProjectService) Create(ctx context.Context, authorID string, in domain.NewProjectInput) (domain.Project, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return domain.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := domain.Project{
		ID:         utils.NewTimeID(now, func(id string) bool { return s.indexOf(id) >= 0 }),
		Name:       in.Name,
		Language:   in.Language,
		Type:       in.Type,
		Content:    in.Content,
		Notes:      in.Notes,
		PreviewURL: in.PreviewURL,
		AuthorID:   authorID,
		CreatedAt:  now.UnixMilli(),
	}

	next := make([]domain.Project, 0, len(s.projects)+1)
	next = append(next, p)
	next = append(next, s.projects...)

	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Project{}, err
	}

	s.log.Info("project created",
		zap.String("id", p.ID),
		zap.String("author", authorID),
		zap.String("type", string(p.Type)))
	return p, nil
}

// ListByAuthor returns the projects of one admin in collection order.
func (s *ProjectService) ListByAuthor(authorID string) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0)
	for _, p := range s.projects {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out
}

// Delete removes a project owned by authorID. Projects of other authors are
// reported as not found.
func (s *ProjectService) Delete(ctx context.Context, authorID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.projects[i].AuthorID != authorID {
		return domain.ErrNotFound
	}

	next := make([]domain.Project, 0, len(s.projects)-1)
	next = append(next, s.projects[:i]...)
	next = append(next, s.projects[i+1:]...)

	if err := s.commitLocked(ctx, next); err != nil {
		return err
	}

	s.log.Info("project deleted", zap.String("id", id), zap.String("author", authorID))
	return nil
}

func (s *ProjectService) bump(ctx context.Context, id string, apply func(*domain.Project)) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Project{}, domain.ErrNotFound
	}

	next := make([]domain.Project, len(s.projects))
	copy(next, s.projects)
	apply(&next[i])

	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Project{}, err
	}
	return next[i], nil
}

// commitLocked saves next and only then makes it the live collection, so a
// failed write leaves memory and storage in agreement.
func (s *ProjectService) commitLocked(ctx context.Context, next []domain.Project) error {
	if err := s.store.Save(ctx, next); err != nil {
		s.log.Error("failed to save catalog", zap.Error(err))
		return err
	}
	s.projects = next
	return nil
}

func (s *ProjectService) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
