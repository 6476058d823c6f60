package dto

// AssistantQueryRequest payload for assistant queries.
type AssistantQueryRequest struct {
	Query      string `json:"query"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
}

// KnowledgeGapsRequest payload for gap analysis.
type KnowledgeGapsRequest struct {
	Queries []string `json:"queries"`
}

// KnowledgeGapsResponse lists suggested article topics.
type KnowledgeGapsResponse struct {
	Suggestions []string `json:"suggestions"`
}
