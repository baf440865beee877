package domain

import (
	"fmt"
	"strings"
)

// ArtifactKind says which half of the download action happened.
type ArtifactKind int

const (
	// ArtifactText is a synthesized plain-text file (CODE projects).
	ArtifactText ArtifactKind = iota
	// ArtifactLink is an external URL to open (FILE projects).
	ArtifactLink
)

// Artifact is the result of a download: either a text file or a link.
type Artifact struct {
	Kind     ArtifactKind
	FileName string
	Body     string
	URL      string
}

// ArtifactFor builds the download artifact for p.
func ArtifactFor(p Project) Artifact {
	if p.Type == TypeFile {
		return Artifact{Kind: ArtifactLink, URL: p.Content}
	}
	return Artifact{
		Kind:     ArtifactText,
		FileName: DownloadFileName(p),
		Body:     p.Content,
	}
}

// DownloadFileName is <project-name>-<lower-cased language>.txt.
func DownloadFileName(p Project) string {
	return fmt.Sprintf("%s-%s.txt", p.Name, strings.ToLower(p.Language))
}
