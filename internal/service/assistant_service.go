package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/idms/employee-portal/internal/domain"
	"github.com/idms/employee-portal/internal/repository"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

const fallbackAnswer = "I'm sorry, I don't have information on that yet. " +
	"Please contact the support desk and we will escalate your question."

// AssistantService answers portal queries by keyword-matching against the
// knowledge base. Replies are scripted; there is no model behind it.
type AssistantService struct {
	knowledge repository.KnowledgeRepository
	logger    *zap.Logger
}

// NewAssistantService builds the service.
func NewAssistantService(knowledge repository.KnowledgeRepository, logger *zap.Logger) *AssistantService {
	return &AssistantService{knowledge: knowledge, logger: logger}
}

type scoredItem struct {
	item  domain.KnowledgeItem
	score float64
}

// Query matches the question against knowledge items and assembles a reply.
// Role and department only personalize the answer prefix.
func (s *AssistantService) Query(ctx context.Context, query, role, department string) (*domain.AssistantReply, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query required", nil)
	}

	items, err := s.knowledge.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	queryKeywords := extractKeywords(query)
	matches := rankItems(items, queryKeywords)

	if len(matches) == 0 || matches[0].score == 0 {
		s.logger.Debug("assistant fallback", zap.String("query", query))
		return &domain.AssistantReply{
			Answer:             fallbackAnswer,
			ShouldEscalate:     true,
			RelatedQuestions:   []string{},
			Category:           "General",
			Confidence:         0,
			SourceKnowledgeIDs: []int{},
		}, nil
	}

	best := matches[0]
	answer := best.item.Content
	if role != "" || department != "" {
		answer = personalize(answer, role, department)
	}

	related := make([]string, 0, 2)
	sourceIDs := []int{best.item.ID}
	for _, m := range matches[1:] {
		if m.score == 0 || len(related) == 2 {
			break
		}
		related = append(related, m.item.Title+"?")
		sourceIDs = append(sourceIDs, m.item.ID)
	}

	return &domain.AssistantReply{
		Answer:             answer,
		ShouldEscalate:     best.score < 0.2,
		RelatedQuestions:   related,
		Category:           best.item.Category,
		Confidence:         best.score,
		SourceKnowledgeIDs: sourceIDs,
	}, nil
}

// KnowledgeGaps suggests article topics for recurring query keywords that
// the knowledge base does not cover.
func (s *AssistantService) KnowledgeGaps(ctx context.Context, queries []string) ([]string, error) {
	if len(queries) == 0 {
		return nil, apperrors.NewValidationError("at least one query required", nil)
	}

	items, err := s.knowledge.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	covered := make(map[string]struct{})
	for _, item := range items {
		for _, k := range extractKeywords(item.Title + " " + item.Content) {
			covered[k] = struct{}{}
		}
		for _, tag := range item.Tags {
			covered[strings.ToLower(tag)] = struct{}{}
		}
	}

	uncoveredQueries := make([]string, 0, len(queries))
	seen := make(map[string]struct{})
	for _, query := range queries {
		keywords := extractKeywords(query)
		if len(keywords) == 0 {
			continue
		}
		missing := 0
		for _, k := range keywords {
			if _, ok := covered[k]; !ok {
				missing++
			}
		}
		// A query mostly built from unknown keywords marks a gap.
		if missing*2 >= len(keywords) {
			normalized := strings.Join(keywords, " ")
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			uncoveredQueries = append(uncoveredQueries, fmt.Sprintf("Guide: %s", strings.TrimSpace(query)))
		}
	}

	if len(uncoveredQueries) == 0 {
		return []string{
			"How to reset an ERP password",
			"Common ERP system error codes and their meanings",
			"Guide to generating custom reports in the reporting module",
		}, nil
	}
	if len(uncoveredQueries) > 10 {
		uncoveredQueries = uncoveredQueries[:10]
	}
	return uncoveredQueries, nil
}

// rankItems scores each item by keyword overlap with the query, normalized
// by the query keyword count.
func rankItems(items []domain.KnowledgeItem, queryKeywords []string) []scoredItem {
	if len(queryKeywords) == 0 {
		return nil
	}
	querySet := keywordSet(queryKeywords)

	scored := make([]scoredItem, 0, len(items))
	for _, item := range items {
		itemKeywords := keywordSet(extractKeywords(item.Title + " " + item.Content))
		for _, tag := range item.Tags {
			for _, k := range extractKeywords(tag) {
				itemKeywords[k] = struct{}{}
			}
		}

		overlap := 0
		for k := range querySet {
			if _, ok := itemKeywords[k]; ok {
				overlap++
			}
		}
		scored = append(scored, scoredItem{
			item:  item,
			score: float64(overlap) / float64(len(querySet)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}

func personalize(answer, role, department string) string {
	context := role
	if department != "" {
		if context != "" {
			context += ", "
		}
		context += department
	}
	return fmt.Sprintf("[%s] %s", context, answer)
}
