// internal/models/knowledge.go
package models

// DocumentType classifies a knowledge-base document.
type DocumentType string

const (
	DocProcedure  DocumentType = "procedure"
	DocCaseStudy  DocumentType = "case_study"
	DocTemplate   DocumentType = "template"
	DocRegulation DocumentType = "regulation"
	DocGuide      DocumentType = "guide"
	DocCorrection DocumentType = "correction"
)

// KnowledgeDocument is one entry of the knowledge-base browser.
type KnowledgeDocument struct {
	ID               int          `json:"id"`
	Title            string       `json:"title"`
	Category         string       `json:"category"`
	Type             DocumentType `json:"type"`
	LastReferenced   string       `json:"lastReferenced,omitempty"`
	ReferenceCount   int          `json:"referenceCount"`
	AddedAt          string       `json:"addedAt"`
	Summary          string       `json:"summary"`
	Tags             []string     `json:"tags"`
	FileName         string       `json:"fileName,omitempty"`
	FileSize         string       `json:"fileSize,omitempty"`
	ConversationRefs []int        `json:"conversationRefs,omitempty"`
}

// KnowledgeCategory is a browsable document grouping.
type KnowledgeCategory struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ConversationDocRef links a conversation to the documents it cited.
type ConversationDocRef struct {
	ConversationID int    `json:"conversationId"`
	DocumentIDs    []int  `json:"documentIds"`
	Question       string `json:"question"`
	UserName       string `json:"userName"`
	Timestamp      string `json:"timestamp"`
}
