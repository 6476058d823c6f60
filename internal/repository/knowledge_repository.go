package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/idms/employee-portal/internal/domain"
)

// ErrKnowledgeNotFound is returned when a knowledge item id matches nothing.
var ErrKnowledgeNotFound = errors.New("knowledge item not found")

// KnowledgeRepository stores the knowledge base articles behind the FAQ list
// and the assistant.
type KnowledgeRepository interface {
	List(ctx context.Context) ([]domain.KnowledgeItem, error)
	GetByID(ctx context.Context, id int) (*domain.KnowledgeItem, error)
	Create(ctx context.Context, item *domain.KnowledgeItem) error
	Update(ctx context.Context, item *domain.KnowledgeItem) error
	Delete(ctx context.Context, id int) error
}

// fileKnowledgeRepository keeps items in memory and mirrors them to a JSON
// file when a path is configured, so edits survive restarts of the demo.
type fileKnowledgeRepository struct {
	mu     sync.RWMutex
	path   string
	nextID int
	items  map[int]*domain.KnowledgeItem
}

// NewKnowledgeRepository loads the knowledge base from path when it exists;
// an empty path keeps the base purely in memory.
func NewKnowledgeRepository(path string) (KnowledgeRepository, error) {
	repo := &fileKnowledgeRepository{
		path:   path,
		nextID: 1,
		items:  make(map[int]*domain.KnowledgeItem),
	}
	if path != "" {
		if err := repo.load(); err != nil {
			return nil, fmt.Errorf("load knowledge base: %w", err)
		}
	}
	return repo, nil
}

func (r *fileKnowledgeRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var items []domain.KnowledgeItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	for i := range items {
		item := items[i]
		r.items[item.ID] = &item
		if item.ID >= r.nextID {
			r.nextID = item.ID + 1
		}
	}
	return nil
}

// save writes the base back to disk. Caller holds the lock.
func (r *fileKnowledgeRepository) save() error {
	if r.path == "" {
		return nil
	}
	items := r.sortedLocked()
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *fileKnowledgeRepository) sortedLocked() []domain.KnowledgeItem {
	items := make([]domain.KnowledgeItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *fileKnowledgeRepository) List(ctx context.Context) ([]domain.KnowledgeItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(), nil
}

func (r *fileKnowledgeRepository) GetByID(ctx context.Context, id int) (*domain.KnowledgeItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrKnowledgeNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fileKnowledgeRepository) Create(ctx context.Context, item *domain.KnowledgeItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	item.ID = r.nextID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.nextID++

	stored := *item
	r.items[stored.ID] = &stored
	if err := r.save(); err != nil {
		// Memory must not drift ahead of the mirror.
		delete(r.items, stored.ID)
		r.nextID--
		return err
	}
	return nil
}

func (r *fileKnowledgeRepository) Update(ctx context.Context, item *domain.KnowledgeItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return ErrKnowledgeNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()

	stored := *item
	r.items[stored.ID] = &stored
	if err := r.save(); err != nil {
		r.items[item.ID] = existing
		return err
	}
	return nil
}

func (r *fileKnowledgeRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, ok := r.items[id]
	if !ok {
		return ErrKnowledgeNotFound
	}
	delete(r.items, id)
	if err := r.save(); err != nil {
		r.items[id] = removed
		return err
	}
	return nil
}
