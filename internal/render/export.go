// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meeting-notes/pkg/types"
)

// FileBase returns the output file stem for a summary, for example
// "meeting_summary_neutral_10bullets".
func FileBase(tone types.Tone, length int) string {
	return fmt.Sprintf("meeting_summary_%s_%dbullets", tone, length)
}

// WriteOptions selects what WriteFiles produces.
type WriteOptions struct {
	Dir    string
	Format types.OutputFormat
	// Export also writes the summary itself as YAML.
	Export bool
}

// WriteFiles renders s in the requested formats into opts.Dir, reporting
// each written file to w. It returns the written paths in the order
// Markdown, PDF, YAML.
func WriteFiles(s *types.Summary, opts WriteOptions, w io.Writer) ([]string, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	base := filepath.Join(opts.Dir, FileBase(s.Tone, s.Length))
	var written []string

	if opts.Format.Includes(types.FormatMarkdown) {
		path := base + ".md"
		md := Markdown(s.KeyPoints, s.ActionItems)
		if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
			return written, fmt.Errorf("writing markdown: %w", err)
		}
		fmt.Fprintf(w, "written: %s\n", path)
		written = append(written, path)
	}

	if opts.Format.Includes(types.FormatPDF) {
		path := base + ".pdf"
		data, err := Document(s.KeyPoints, s.ActionItems)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing pdf: %w", err)
		}
		fmt.Fprintf(w, "written: %s\n", path)
		written = append(written, path)
	}

	if opts.Export {
		path := base + ".yaml"
		if err := ExportYAML(s, path); err != nil {
			return written, err
		}
		fmt.Fprintf(w, "written: %s\n", path)
		written = append(written, path)
	}

	return written, nil
}

// ExportYAML writes the summary, including its stats, to path.
func ExportYAML(s *types.Summary, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
