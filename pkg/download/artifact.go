// Package download derives the downloadable copy of a plan.
package download

import (
	"encoding/base64"
	"fmt"
)

const (
	Filename = "content_plan.txt"
	// MIME is the label used in the data URI, kept as the page always had it.
	MIME = "file/txt"
	// ContentType is served by the direct download endpoint.
	ContentType = "text/plain; charset=utf-8"
)

// Artifact is the plan text re-encoded for a same-page download link.
type Artifact struct {
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Base64   string `json:"base64"`
}

func New(text string) Artifact {
	return Artifact{
		Filename: Filename,
		MIME:     MIME,
		Base64:   base64.StdEncoding.EncodeToString([]byte(text)),
	}
}

// Href is the data URI for an <a download> link.
func (a Artifact) Href() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MIME, a.Base64)
}

// Decode returns the original plan bytes.
func (a Artifact) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(a.Base64)
}
