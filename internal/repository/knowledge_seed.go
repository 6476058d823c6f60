package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/idms/employee-portal/internal/domain"
)

// sampleArticles is the starter knowledge base, inserted only when the base
// is empty.
var sampleArticles = []domain.KnowledgeItem{
	{
		Title:    "Resetting ERP Password",
		Content:  "To reset your ERP password, navigate to the login page and click on 'Forgot Password'. Follow the instructions sent to your company email address. Passwords must be at least 8 characters long with a mix of uppercase, lowercase, numbers, and special characters.",
		Category: "Authentication",
		Tags:     []string{"password", "login", "reset", "security"},
	},
	{
		Title:    "Generating Sales Reports",
		Content:  "To generate a sales report, go to the Reports module in the Sales dashboard. Select the report type, date range, and any filters you wish to apply. Click 'Generate' and the report will be prepared for viewing or download in your preferred format (PDF, Excel, CSV).",
		Category: "Sales",
		Tags:     []string{"reports", "sales", "export", "analytics"},
	},
	{
		Title:    "Submitting Time Off Requests",
		Content:  "To submit a time off request, navigate to the HR module and select 'Time Off'. Click 'New Request', select the type of leave, enter the date range, and provide any necessary details. Submit for approval. Your manager will be notified and will approve or reject your request.",
		Category: "HR",
		Tags:     []string{"time off", "leave", "vacation", "HR", "request"},
	},
}

// SeedKnowledge inserts the sample articles when the base is empty.
func SeedKnowledge(ctx context.Context, repo KnowledgeRepository, logger *zap.Logger) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list knowledge items: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range sampleArticles {
		item := sampleArticles[i]
		if err := repo.Create(ctx, &item); err != nil {
			return fmt.Errorf("seed knowledge item %q: %w", item.Title, err)
		}
	}

	logger.Info("seeded sample knowledge base", zap.Int("count", len(sampleArticles)))
	return nil
}
