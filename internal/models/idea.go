// internal/models/idea.go
package models

type SopStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Idea struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Tags           []string   `json:"tags"`
	Difficulty     Difficulty `json:"difficulty"`
	Investment     Investment `json:"investment"`
	Likes          int        `json:"likes"`
	Content        string     `json:"content"`
	Timestamp      string     `json:"timestamp"`
	Sop            []SopStep  `json:"sop,omitempty"`
	Tools          []string   `json:"tools,omitempty"`
	MonthlyRevenue string     `json:"monthly_revenue,omitempty"`
	ValidationTime string     `json:"validation_time,omitempty"`
}

// IdeaSuggestion is the structured payload the generator is asked to
// return. Generated suggestions are displayed only, never added to the
// idea catalogue.
type IdeaSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	FirstStep   string `json:"firstStep"`
}
