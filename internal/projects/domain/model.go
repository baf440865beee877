package domain

import (
	"fmt"
	"strings"
)

// Type tells how Content is interpreted.
type Type string

const (
	TypeCode Type = "CODE" // Content is raw source text
	TypeFile Type = "FILE" // Content is a URL to an externally hosted artifact
)

func (t Type) Valid() bool {
	return t == TypeCode || t == TypeFile
}

// Project is one catalog entry. The JSON shape is also the persisted shape
// of the s_hub_projects blob, so field names must not change.
type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Language   string `json:"language"`
	Type       Type   `json:"type"`
	Content    string `json:"content"`
	Notes      string `json:"notes,omitempty"`
	PreviewURL string `json:"previewUrl"`
	Likes      int64  `json:"likes"`
	Downloads  int64  `json:"downloads"`
	AuthorID   string `json:"authorId"`
	CreatedAt  int64  `json:"createdAt"` // epoch milliseconds
}

// NewProjectInput carries the upload form of the admin console.
type NewProjectInput struct {
	Name       string
	Language   string
	Type       Type
	Content    string
	PreviewURL string
	Notes      string
}

// Normalize trims the required fields and defaults the type to CODE.
func (in *NewProjectInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Language = strings.TrimSpace(in.Language)
	in.Type = Type(strings.ToUpper(strings.TrimSpace(string(in.Type))))
	if in.Type == "" {
		in.Type = TypeCode
	}
}

// Validate reports the first missing required field. Content is checked for
// presence only; URLs and code are stored as given.
func (in NewProjectInput) Validate() error {
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProject)
	case in.Language == "":
		return fmt.Errorf("%w: language is required", ErrInvalidProject)
	case !in.Type.Valid():
		return fmt.Errorf("%w: type must be CODE or FILE", ErrInvalidProject)
	case strings.TrimSpace(in.Content) == "":
		return fmt.Errorf("%w: content is required", ErrInvalidProject)
	}
	return nil
}

// Matches is the catalog search predicate: case-insensitive substring of
// name or language. An empty term matches everything.
func (p Project) Matches(term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), t) ||
		strings.Contains(strings.ToLower(p.Language), t)
}
