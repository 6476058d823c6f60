package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idms/employee-portal/internal/domain"
	"github.com/idms/employee-portal/internal/repository"
	apperrors "github.com/idms/employee-portal/pkg/util"
)

func newTestKnowledge(t *testing.T) *KnowledgeService {
	t.Helper()

	repo, err := repository.NewKnowledgeRepository("")
	require.NoError(t, err)
	require.NoError(t, repository.SeedKnowledge(context.Background(), repo, zap.NewNop()))
	return NewKnowledgeService(repo)
}

func TestKnowledgeService_CRUDRoundTrip(t *testing.T) {
	svc := newTestKnowledge(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.KnowledgeItem{
		Title:   "Approving Purchase Orders",
		Content: "Open the Procurement module and select Pending Approvals.",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "General", created.Category)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	got.Content = "Updated content."
	updated, err := svc.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Updated content.", updated.Content)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestKnowledgeService_CreateValidation(t *testing.T) {
	svc := newTestKnowledge(t)

	_, err := svc.Create(context.Background(), &domain.KnowledgeItem{Title: " ", Content: ""})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "title")
	assert.Contains(t, domainErr.Details, "content")
}

func TestKnowledgeService_UpdateMissing(t *testing.T) {
	svc := newTestKnowledge(t)

	_, err := svc.Update(context.Background(), &domain.KnowledgeItem{ID: 99, Title: "X", Content: "Y"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestKnowledgeService_FAQProjection(t *testing.T) {
	svc := newTestKnowledge(t)

	entries, err := svc.FAQ(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, entry := range entries {
		assert.True(t, len(entry.Question) > 0)
		assert.Contains(t, entry.Question, "?")
		assert.NotEmpty(t, entry.Answer)
	}
}

func TestKnowledgeService_SuggestCategories(t *testing.T) {
	svc := newTestKnowledge(t)
	ctx := context.Background()

	categories, err := svc.SuggestCategories(ctx, "I forgot my password and need to reset my login")
	require.NoError(t, err)
	require.NotEmpty(t, categories)
	assert.Equal(t, "Authentication", categories[0])

	categories, err = svc.SuggestCategories(ctx, "zxqv flurble")
	require.NoError(t, err)
	assert.Equal(t, []string{"General"}, categories)

	_, err = svc.SuggestCategories(ctx, "  ")
	require.Error(t, err)
}

func TestKnowledgeService_SuggestTags(t *testing.T) {
	svc := newTestKnowledge(t)

	tags, err := svc.SuggestTags(context.Background(), "export the sales report, then export again as PDF")
	require.NoError(t, err)
	require.NotEmpty(t, tags)
	assert.Equal(t, "export", tags[0])
	assert.LessOrEqual(t, len(tags), 5)
}
