package entities

import "time"

// ContentPlan is one generated social-media plan. Text is Markdown and is
// shown and downloaded as-is.
type ContentPlan struct {
	Text      string    `json:"text"`
	Model     string    `json:"model,omitempty"`
	Mock      bool      `json:"mock"`
	CreatedAt time.Time `json:"created_at"`
}

// Submission is what the form posts on "Generate Content Plan".
type Submission struct {
	Credential string `json:"api_key" form:"api_key"`
	Summary    string `json:"summary" form:"summary"`
}

// Session holds the last generated plan. It is overwritten, never appended.
type Session struct {
	Last *ContentPlan
}

func (s Session) HasPlan() bool { return s.Last != nil }

// WithPlan returns a copy of s holding p as the last result.
func (s Session) WithPlan(p ContentPlan) Session {
	s.Last = &p
	return s
}
