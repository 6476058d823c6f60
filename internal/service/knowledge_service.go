package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/idms/employee-portal/internal/domain"
	"github.com/idms/employee-portal/internal/repository"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

// KnowledgeService manages knowledge base articles and the FAQ projection.
type KnowledgeService struct {
	knowledge repository.KnowledgeRepository
}

// NewKnowledgeService builds the service.
func NewKnowledgeService(knowledge repository.KnowledgeRepository) *KnowledgeService {
	return &KnowledgeService{knowledge: knowledge}
}

// FAQEntry is a knowledge item projected as a question/answer pair.
type FAQEntry struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// List returns all knowledge items.
func (s *KnowledgeService) List(ctx context.Context) ([]domain.KnowledgeItem, error) {
	items, err := s.knowledge.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}
	return items, nil
}

// Get returns one knowledge item.
func (s *KnowledgeService) Get(ctx context.Context, id int) (*domain.KnowledgeItem, error) {
	item, err := s.knowledge.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrKnowledgeNotFound) {
			return nil, apperrors.NewNotFound("knowledge item", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return item, nil
}

// Create validates and stores a new article.
func (s *KnowledgeService) Create(ctx context.Context, item *domain.KnowledgeItem) (*domain.KnowledgeItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.knowledge.Create(ctx, item); err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}
	return item, nil
}

// Update replaces an existing article.
func (s *KnowledgeService) Update(ctx context.Context, item *domain.KnowledgeItem) (*domain.KnowledgeItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.knowledge.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrKnowledgeNotFound) {
			return nil, apperrors.NewNotFound("knowledge item", map[string]any{"id": item.ID})
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return item, nil
}

// Delete removes an article.
func (s *KnowledgeService) Delete(ctx context.Context, id int) error {
	if err := s.knowledge.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrKnowledgeNotFound) {
			return apperrors.NewNotFound("knowledge item", map[string]any{"id": id})
		}
		return apperrors.NewStoreFailure(err)
	}
	return nil
}

// FAQ projects the knowledge base as question/answer pairs for the portal's
// FAQ accordion.
func (s *KnowledgeService) FAQ(ctx context.Context) ([]FAQEntry, error) {
	items, err := s.knowledge.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	entries := make([]FAQEntry, 0, len(items))
	for _, item := range items {
		question := item.Title
		if !strings.HasSuffix(question, "?") {
			question = "How do I " + lowerFirst(question) + "?"
		}
		entries = append(entries, FAQEntry{
			ID:       item.ID,
			Question: question,
			Answer:   item.Content,
			Category: item.Category,
		})
	}
	return entries, nil
}

// SuggestCategories proposes categories for new content: existing categories
// whose articles share keywords with the text, falling back to General.
func (s *KnowledgeService) SuggestCategories(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text required", nil)
	}

	items, err := s.knowledge.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	textSet := keywordSet(extractKeywords(text))
	scores := make(map[string]int)
	for _, item := range items {
		overlap := 0
		for _, k := range extractKeywords(item.Title + " " + item.Content) {
			if _, ok := textSet[k]; ok {
				overlap++
			}
		}
		if overlap > scores[item.Category] {
			scores[item.Category] = overlap
		}
	}

	categories := make([]string, 0, len(scores))
	for category, score := range scores {
		if score > 0 {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		if scores[categories[i]] != scores[categories[j]] {
			return scores[categories[i]] > scores[categories[j]]
		}
		return categories[i] < categories[j]
	})

	if len(categories) == 0 {
		return []string{"General"}, nil
	}
	if len(categories) > 3 {
		categories = categories[:3]
	}
	return categories, nil
}

// SuggestTags proposes tags for new content from its most significant
// keywords.
func (s *KnowledgeService) SuggestTags(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text required", nil)
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, k := range extractKeywords(text) {
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 5 {
		order = order[:5]
	}
	return order, nil
}

func validateItem(item *domain.KnowledgeItem) error {
	details := map[string]any{}
	if strings.TrimSpace(item.Title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(item.Content) == "" {
		details["content"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("title and content required", details)
	}
	if item.Category == "" {
		item.Category = "General"
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
