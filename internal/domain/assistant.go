package domain

// AssistantReply is the scripted assistant's answer to a portal query.
type AssistantReply struct {
	Answer             string   `json:"answer"`
	ShouldEscalate     bool     `json:"shouldEscalate"`
	RelatedQuestions   []string `json:"relatedQuestions"`
	Category           string   `json:"category"`
	Confidence         float64  `json:"confidence"`
	SourceKnowledgeIDs []int    `json:"sourceKnowledgeIds"`
}
