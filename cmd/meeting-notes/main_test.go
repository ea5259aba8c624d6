// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meeting-notes/internal/summarize"
	"github.com/pdiddy/meeting-notes/pkg/types"
)

// execute runs the CLI with args and stdin, starting from default flags and
// an empty viper registry each time.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := run(context.Background())
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "meeting-notes dev\n", out)
}

func TestSample(t *testing.T) {
	out, err := execute(t, "", "sample")
	require.NoError(t, err)
	assert.Equal(t, summarize.SampleTranscript+"\n", out)
}

func TestSummarizeStdout(t *testing.T) {
	out, err := execute(t, "", "summarize", "--sample", "--stdout")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "## 📝 Meeting Summary\n\n"))
	assert.Contains(t, out, "- Carol: I propose \"Track expenses effortlessly\n")
	assert.Contains(t, out, "\n## ✅ Action Items\n\n- Deadline Friday\n")
}

func TestSummarizeFromStdin(t *testing.T) {
	out, err := execute(t, summarize.SampleTranscript, "summarize", "-", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "- Deadline Friday\n")
}

func TestSummarizeWritesFiles(t *testing.T) {
	dir := t.TempDir()
	transcript := filepath.Join(dir, "meeting.txt")
	require.NoError(t, os.WriteFile(transcript, []byte(summarize.SampleTranscript), 0o644))
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "", "summarize", transcript,
		"--output-dir", outDir, "--tone", "Executive", "--length", "8", "--export")
	require.NoError(t, err)

	for _, ext := range []string{".md", ".pdf", ".yaml"} {
		path := filepath.Join(outDir, "meeting_summary_executive_8bullets"+ext)
		assert.FileExists(t, path)
		assert.Contains(t, out, "written: "+path)
	}
	assert.Contains(t, out, "4 key points, 3 action items")
}

func TestSummarizeFormatMarkdownOnly(t *testing.T) {
	outDir := t.TempDir()

	_, err := execute(t, "", "summarize", "--sample", "--format", "markdown", "--output-dir", outDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "meeting_summary_neutral_10bullets.md"))
	assert.NoFileExists(t, filepath.Join(outDir, "meeting_summary_neutral_10bullets.pdf"))
}

func TestSummarizeJSON(t *testing.T) {
	out, err := execute(t, "", "summarize", "--sample", "--json", "--workers", "4")
	require.NoError(t, err)

	var s types.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, types.ToneNeutral, s.Tone)
	assert.Equal(t, 4, s.Stats.KeyPoints)
	assert.Equal(t, 3, s.Stats.ActionItems)
	assert.Equal(t, "Deadline Friday", s.ActionItems[0])
}

func TestSummarizeEnvironment(t *testing.T) {
	t.Setenv("MEETING_NOTES_SUMMARIZE_TONE", "friendly")
	outDir := t.TempDir()

	_, err := execute(t, "", "summarize", "--sample", "--format", "markdown", "--output-dir", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "meeting_summary_friendly_10bullets.md"))
}

func TestSummarizeConfigFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "notes")
	cfgPath := filepath.Join(dir, "meeting-notes.yaml")
	cfg := "summarize:\n  length: 6\noutput:\n  format: markdown\n  dir: " + outDir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := execute(t, "", "--config", cfgPath, "summarize", "--sample")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "meeting_summary_neutral_6bullets.md"))
}

func TestSummarizeKeywordsFile(t *testing.T) {
	kwPath := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(kwPath, []byte("action:\n  - owns\n"), 0o644))

	out, err := execute(t, "", "summarize", "--sample", "--stdout", "--keywords", kwPath)
	require.NoError(t, err)
	assert.Contains(t, out, "## ✅ Action Items\n\n- Bob owns the A/B test\n")
}

func TestSummarizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "length zero", args: []string{"summarize", "--sample", "--length", "0"}, want: "summarize.length must be between 5 and 20, got 0"},
		{name: "length too small", args: []string{"summarize", "--sample", "--length", "3"}, want: "summarize.length"},
		{name: "length too large", args: []string{"summarize", "--sample", "--length", "21"}, want: "summarize.length"},
		{name: "unknown tone", args: []string{"summarize", "--sample", "--tone", "sarcastic"}, want: "summarize.tone"},
		{name: "unknown format", args: []string{"summarize", "--sample", "--format", "docx"}, want: "output.format"},
		{name: "empty stdin", args: []string{"summarize", "--stdout"}, want: "transcript is empty"},
		{name: "missing file", args: []string{"summarize", "no-such-transcript.txt"}, want: "reading transcript"},
		{name: "missing keywords file", args: []string{"summarize", "--sample", "--keywords", "no-such.yaml"}, want: "reading keywords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSummarizeLengthZeroFromEnvironment(t *testing.T) {
	t.Setenv("MEETING_NOTES_SUMMARIZE_LENGTH", "0")

	_, err := execute(t, "", "summarize", "--sample", "--stdout")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summarize.length")
}

func TestLogFileClosedAfterFailedRun(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "meeting-notes.log")

	_, err := execute(t, "", "--log-file", logPath, "summarize", "--sample", "--tone", "sarcastic")
	require.Error(t, err)
	assert.Nil(t, appLog)

	// A later run opens the same file afresh.
	_, err = execute(t, "", "--log-file", logPath, "summarize", "--sample", "--stdout")
	require.NoError(t, err)
	assert.Nil(t, appLog)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "summarizing transcript")
}

func TestChunk(t *testing.T) {
	out, err := execute(t, "", "chunk", "--sample", "--chunk-size", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "Index")
	assert.Contains(t, out, "\n4 chunks\n")
}

func TestChunkJSON(t *testing.T) {
	out, err := execute(t, "", "chunk", "--sample", "--chunk-size", "200", "--json")
	require.NoError(t, err)

	var spans []types.TranscriptChunk
	require.NoError(t, json.Unmarshal([]byte(out), &spans))
	require.Len(t, spans, 2)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 200, spans[0].End)
	assert.Equal(t, summarize.SampleTranscript, spans[0].Text+spans[1].Text)
}

func TestChunkTrimsLikeSummarize(t *testing.T) {
	out, err := execute(t, "\n\n   "+summarize.SampleTranscript+"\n  ", "chunk", "-", "--chunk-size", "200", "--json")
	require.NoError(t, err)

	var spans []types.TranscriptChunk
	require.NoError(t, json.Unmarshal([]byte(out), &spans))
	require.Len(t, spans, 2)
	assert.Equal(t, 0, spans[0].Start)
	assert.True(t, strings.HasPrefix(spans[0].Text, "Alice:"))
	assert.Equal(t, summarize.SampleTranscript, spans[0].Text+spans[1].Text)
}

func TestKeywords(t *testing.T) {
	out, err := execute(t, "", "keywords")
	require.NoError(t, err)

	var sets map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &sets))
	assert.Contains(t, sets["action"], "deadline")
	assert.Contains(t, sets["decision"], "approved")
	assert.Contains(t, sets["meeting"], "propose")
}

func TestKeywordsFromFile(t *testing.T) {
	kwPath := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(kwPath, []byte("meeting:\n  - standup\n"), 0o644))

	out, err := execute(t, "", "keywords", "--keywords", kwPath)
	require.NoError(t, err)

	var sets map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &sets))
	assert.Equal(t, []string{"standup"}, sets["meeting"])
	assert.Contains(t, sets["action"], "deadline")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview("a\n b", 10))
	assert.Equal(t, "abcd...", preview("abcdefghij", 7))
}
