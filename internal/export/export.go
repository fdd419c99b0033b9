// Package export renders a board snapshot into shareable report files.
// Exports are one-way: boardwalk never reads them back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pkoester/boardwalk/internal/errors"
	"github.com/pkoester/boardwalk/internal/project"
)

// Format identifies an export format.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatJSON: {
		Name:        FormatJSON,
		Extension:   ".json",
		Description: "JSON document, one object per project",
	},
	FormatYAML: {
		Name:        FormatYAML,
		Extension:   ".yaml",
		Description: "YAML document, one mapping per project",
	},
	FormatMarkdown: {
		Name:        FormatMarkdown,
		Extension:   ".md",
		Description: "Markdown report with Active and Finished sections",
	},
}

// Formats returns the supported formats in stable display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMarkdown}
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Parse resolves a user-supplied format name, accepting the usual
// aliases (yml, md).
func Parse(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", errors.NewNotFoundError("export format", s)
}

// document is the serialized report shape shared by JSON and YAML.
type document struct {
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Active     []project.Project `json:"active" yaml:"active"`
	Finished   []project.Project `json:"finished" yaml:"finished"`
}

func newDocument(projects []project.Project) document {
	return document{
		ExportedAt: time.Now().UTC(),
		Active:     project.FilterByStatus(projects, project.StatusActive),
		Finished:   project.FilterByStatus(projects, project.StatusFinished),
	}
}

// Write renders projects to w in the requested format. An empty board
// is refused with ErrEmptyBoard.
func Write(w io.Writer, f Format, projects []project.Project) error {
	if len(projects) == 0 {
		return errors.ErrEmptyBoard
	}

	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(newDocument(projects), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		data, err := yaml.Marshal(newDocument(projects))
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, renderMarkdown(newDocument(projects)))
		return err
	}
	return errors.NewNotFoundError("export format", string(f))
}

// WriteFile renders projects into dir as board-<timestamp>.<ext> and
// returns the written path.
func WriteFile(dir string, f Format, projects []project.Project) (string, error) {
	info, ok := GetFormatInfo(f)
	if !ok {
		return "", errors.NewNotFoundError("export format", string(f))
	}

	var buf bytes.Buffer
	if err := Write(&buf, f, projects); err != nil {
		return "", err
	}

	name := fmt.Sprintf("board-%s%s", time.Now().Format("20060102-150405"), info.Extension)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func renderMarkdown(doc document) string {
	var b strings.Builder

	b.WriteString("# Project Board\n\n")
	fmt.Fprintf(&b, "Exported %s.\n", doc.ExportedAt.Format("2006-01-02 15:04 MST"))

	writeSection(&b, "Active", doc.Active)
	writeSection(&b, "Finished", doc.Finished)

	return b.String()
}

func writeSection(b *strings.Builder, heading string, projects []project.Project) {
	fmt.Fprintf(b, "\n## %s (%d)\n\n", heading, len(projects))

	if len(projects) == 0 {
		b.WriteString("No projects.\n")
		return
	}
	for _, p := range projects {
		fmt.Fprintf(b, "- **%s** (%s assigned)\n", p.Title, p.PeopleLabel())
		if p.Description != "" {
			fmt.Fprintf(b, "  %s\n", p.Description)
		}
	}
}
