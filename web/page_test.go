package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentplanner/entities"
	"contentplanner/pkg/download"
	"contentplanner/pkg/render"
)

func renderPage(t *testing.T, page Page) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "index.html", page, nil))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestNewPageWithoutPlan(t *testing.T) {
	page, err := NewPage(entities.Session{}, render.NewMarkdown())
	require.NoError(t, err)

	assert.Nil(t, page.Plan)
	assert.Equal(t, DefaultSummary, page.Summary)
}

func TestRenderedDownloadLinkMatchesPlan(t *testing.T) {
	text := "### Plan for: \"Surf\" 🌊\n\n1. Idea <b>bold</b>\n"
	sess := entities.Session{}.WithPlan(entities.ContentPlan{Text: text})

	page, err := NewPage(sess, render.NewMarkdown())
	require.NoError(t, err)
	doc := renderPage(t, page)

	href := doc.Find("a#download").AttrOr("href", "")
	require.True(t, strings.HasPrefix(href, "data:file/txt;base64,"), href)
	art := download.Artifact{Base64: strings.TrimPrefix(href, "data:file/txt;base64,")}
	raw, err := art.Decode()
	require.NoError(t, err)
	assert.Equal(t, text, string(raw))
	assert.Equal(t, "content_plan.txt", doc.Find("a#download").AttrOr("download", ""))
}

func TestRenderNotices(t *testing.T) {
	doc := renderPage(t, Page{Notices: []entities.Notice{
		entities.Warning("careful"),
		entities.Error("API Error: <boom>"),
	}})

	assert.Equal(t, "careful", doc.Find(".notice-warning").Text())
	assert.Equal(t, "API Error: <boom>", doc.Find(".notice-error").Text())
}

func TestRenderDiagnostics(t *testing.T) {
	doc := renderPage(t, Page{APIKey: "k", Diagnostics: &Diagnostics{Error: "no API key entered"}})
	assert.Equal(t, "Key Error: no API key entered", doc.Find("#diagnostics").Text())
	assert.Equal(t, "k", doc.Find("input#api_key").AttrOr("value", ""))
}
