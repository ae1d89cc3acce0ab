package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore backs all fake repositories with shared in-memory state
type fakeStore struct {
	mu        sync.Mutex
	projects  map[string]*models.Project
	sections  map[string]*models.Section
	revisions []*models.Revision
	feedback  map[string]*models.Feedback
	comments  []*models.Comment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects: map[string]*models.Project{},
		sections: map[string]*models.Section{},
		feedback: map[string]*models.Feedback{},
	}
}

func (s *fakeStore) addProject(p *models.Project) {
	s.projects[p.ID] = p
}

func (s *fakeStore) addSection(sec *models.Section) {
	s.sections[sec.ID] = sec
}

type fakeProjectRepo struct{ store *fakeStore }

func (r *fakeProjectRepo) Create(_ context.Context, p *models.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.projects[p.ID]; ok {
		return &domain.ConflictError{Message: "project exists", ResourceType: "project", ResourceID: p.ID}
	}
	cp := *p
	r.store.projects[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id, userID string) (*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.projects[id]
	if !ok || p.UserID != userID {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) List(_ context.Context, userID string) ([]models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []models.Project{}
	for _, p := range r.store.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.projects[id]
	if !ok || p.UserID != userID {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.projects, id)
	for sid, sec := range r.store.sections {
		if sec.ProjectID == id {
			delete(r.store.sections, sid)
		}
	}
	return nil
}

func (r *fakeProjectRepo) Touch(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.projects[id]; ok {
		p.UpdatedAt = time.Now()
	}
	return nil
}

type fakeSectionRepo struct{ store *fakeStore }

func (r *fakeSectionRepo) CreateBatch(_ context.Context, sections []*models.Section) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, sec := range sections {
		cp := *sec
		r.store.sections[sec.ID] = &cp
	}
	return nil
}

func (r *fakeSectionRepo) ListByProject(_ context.Context, projectID string) ([]models.Section, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []models.Section{}
	for _, sec := range r.store.sections {
		if sec.ProjectID == projectID {
			out = append(out, *sec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *fakeSectionRepo) GetForOwner(_ context.Context, sectionID, userID string) (*models.Section, *models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	sec, ok := r.store.sections[sectionID]
	if !ok {
		return nil, nil, fmt.Errorf("section %s: %w", sectionID, domain.ErrNotFound)
	}
	p, ok := r.store.projects[sec.ProjectID]
	if !ok || p.UserID != userID {
		return nil, nil, fmt.Errorf("section %s: %w", sectionID, domain.ErrNotFound)
	}
	cs, cp := *sec, *p
	return &cs, &cp, nil
}

func (r *fakeSectionRepo) UpdateContent(_ context.Context, sectionID, content string, updatedAt time.Time, onlyIfNull bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	sec, ok := r.store.sections[sectionID]
	if !ok {
		return fmt.Errorf("section %s: %w", sectionID, domain.ErrNotFound)
	}
	if onlyIfNull && sec.Content != nil {
		return nil
	}
	sec.Content = &content
	sec.UpdatedAt = updatedAt
	return nil
}

type fakeRevisionRepo struct{ store *fakeStore }

func (r *fakeRevisionRepo) Create(_ context.Context, rev *models.Revision) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *rev
	r.store.revisions = append(r.store.revisions, &cp)
	return nil
}

func (r *fakeRevisionRepo) ListBySection(_ context.Context, sectionID, _ string) ([]models.Revision, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []models.Revision{}
	for i := len(r.store.revisions) - 1; i >= 0; i-- {
		if r.store.revisions[i].SectionID == sectionID {
			out = append(out, *r.store.revisions[i])
		}
	}
	return out, nil
}

type fakeFeedbackRepo struct{ store *fakeStore }

func (r *fakeFeedbackRepo) Upsert(_ context.Context, f *models.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *f
	r.store.feedback[f.SectionID] = &cp
	return nil
}

func (r *fakeFeedbackRepo) GetBySection(_ context.Context, sectionID, _ string) (*models.Feedback, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	f, ok := r.store.feedback[sectionID]
	if !ok {
		return nil, fmt.Errorf("feedback for section %s: %w", sectionID, domain.ErrNotFound)
	}
	cp := *f
	return &cp, nil
}

type fakeCommentRepo struct{ store *fakeStore }

func (r *fakeCommentRepo) Create(_ context.Context, c *models.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *c
	r.store.comments = append(r.store.comments, &cp)
	return nil
}

func (r *fakeCommentRepo) ListBySection(_ context.Context, sectionID, _ string) ([]models.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []models.Comment{}
	for i := len(r.store.comments) - 1; i >= 0; i-- {
		if r.store.comments[i].SectionID == sectionID {
			out = append(out, *r.store.comments[i])
		}
	}
	return out, nil
}

// fakeTxManager runs the function without a real transaction
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeLocker hands out the lock unless held is set
type fakeLocker struct {
	mu       sync.Mutex
	held     bool
	acquires int
}

func (l *fakeLocker) TryLock(_ context.Context, _ string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return nil, false, nil
	}
	l.held = true
	l.acquires++
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held = false
	}, true, nil
}

// fakeGenerator returns scripted responses and counts calls
type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	respond func(call int, systemPrompt, userPrompt string) (string, error)
	prompts []string
}

func (g *fakeGenerator) Name() string { return "fake" }

func (g *fakeGenerator) GenerateText(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.prompts = append(g.prompts, userPrompt)
	if g.respond != nil {
		return g.respond(g.calls, systemPrompt, userPrompt)
	}
	return fmt.Sprintf("generated content %d", g.calls), nil
}

func strPtr(s string) *string { return &s }
