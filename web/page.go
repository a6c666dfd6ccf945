package web

import (
	"html/template"

	"contentplanner/entities"
	"contentplanner/pkg/download"
	"contentplanner/pkg/render"
)

const DefaultSummary = "Skiing day with friends. We found some amazing deep powder, had lunch on the mountain, and I had one hilarious wipeout."

// Page is the view model of index.html.
type Page struct {
	APIKey      string
	Summary     string
	Notices     []entities.Notice
	Plan        *PlanView
	Diagnostics *Diagnostics
}

type PlanView struct {
	HTML     template.HTML
	Href     template.URL
	Filename string
	Model    string
	Mock     bool
}

// Diagnostics is the result of "Check Model Access".
type Diagnostics struct {
	Models []string
	Error  string
}

// NewPage renders the session's last plan, if any, into a fresh page.
func NewPage(sess entities.Session, md *render.Markdown) (Page, error) {
	page := Page{Summary: DefaultSummary}
	if !sess.HasPlan() {
		return page, nil
	}
	html, err := md.HTML(sess.Last.Text)
	if err != nil {
		return page, err
	}
	art := download.New(sess.Last.Text)
	page.Plan = &PlanView{
		HTML: html,
		// data: URIs are rejected by html/template unless marked safe.
		Href:     template.URL(art.Href()),
		Filename: art.Filename,
		Model:    sess.Last.Model,
		Mock:     sess.Last.Mock,
	}
	return page, nil
}
