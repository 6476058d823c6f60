package dto

// KnowledgeItemRequest payload for creating or updating an article.
type KnowledgeItemRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// SuggestRequest carries free text for category/tag suggestions.
type SuggestRequest struct {
	Text string `json:"text"`
}
