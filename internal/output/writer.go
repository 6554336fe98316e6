package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/onitama-go/internal/config"
)

// MatchWriter is the interface for writing finished matches.
// Different implementations handle different formats (text, JSON).
type MatchWriter interface {
	// WriteMatch writes a single match record.
	WriteMatch(m *Match) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewMatchWriter returns the writer selected by cfg.JSON.
func NewMatchWriter(w io.Writer, cfg *config.Config) MatchWriter {
	if cfg.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes matches as a numbered play list followed by the final
// position.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteMatch writes a match as text.
func (tw *TextWriter) WriteMatch(m *Match) error {
	if _, err := fmt.Fprintf(tw.w, "Match %s\n%s\n", m.ID, m.Deal); err != nil {
		return err
	}
	if m.Seed != 0 {
		fmt.Fprintf(tw.w, "Seed %d\n", m.Seed)
	}
	for i, p := range m.Plays {
		fmt.Fprintf(tw.w, "%3d. %-4s %s\n", i+1, m.Mover(i), p)
	}
	fmt.Fprintf(tw.w, "Result: %s\n", m.Result())
	if m.Final != nil {
		NewRenderer(tw.w, tw.cfg.ASCII).Board(m.Final)
	}
	_, err := fmt.Fprintln(tw.w)
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes matches in JSON format.
// It buffers matches and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	matches []*Match
	single  bool // If true, write each match immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches matches and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		matches: make([]*Match, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each match immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteMatch buffers a match for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteMatch(m *Match) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(MatchToJSON(m))
	}

	jw.matches = append(jw.matches, m)
	return nil
}

// Flush writes all buffered matches as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.matches) == 0 {
		return nil
	}

	out := &JSONOutput{
		Matches: make([]*JSONMatch, 0, len(jw.matches)),
	}
	for _, m := range jw.matches {
		out.Matches = append(out.Matches, MatchToJSON(m))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	jw.matches = jw.matches[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
