package chunks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ExportFormat defines the available export formats
type ExportFormat int

const (
	// ExportFormatJSONL exports as JSON Lines (one JSON object per line)
	ExportFormatJSONL ExportFormat = iota
	// ExportFormatJSON exports as a JSON array
	ExportFormatJSON
)

// String returns a human-readable representation of the export format
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSON:
		return "json"
	default:
		return "jsonl"
	}
}

// FileExtension returns the typical file extension for this format
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSON:
		return ".json"
	default:
		return ".jsonl"
	}
}

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format ExportFormat

	// IncludeWords includes the positioned word lists
	IncludeWords bool

	// PrettyPrint enables indented output for JSON format
	PrettyPrint bool
}

// DefaultExportConfig returns sensible defaults for export configuration
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:       ExportFormatJSONL,
		IncludeWords: true,
		PrettyPrint:  false,
	}
}

// Exporter handles exporting page chunks
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{config: DefaultExportConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{config: config}
}

// Export exports chunks to the specified writer
func (e *Exporter) Export(chunks []PageChunk, w io.Writer) error {
	prepared := e.prepare(chunks)

	encoder := json.NewEncoder(w)
	if e.config.Format == ExportFormatJSON {
		if e.config.PrettyPrint {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(prepared)
	}

	for i, chunk := range prepared {
		if err := encoder.Encode(chunk); err != nil {
			return fmt.Errorf("encoding chunk %d: %w", i, err)
		}
	}
	return nil
}

// ExportToFile exports chunks to a file
func (e *Exporter) ExportToFile(chunks []PageChunk, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	return e.Export(chunks, f)
}

// ExportToString exports chunks to a string
func (e *Exporter) ExportToString(chunks []PageChunk) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(chunks, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// prepare applies export configuration to the chunks
func (e *Exporter) prepare(chunks []PageChunk) []PageChunk {
	if e.config.IncludeWords {
		return chunks
	}
	prepared := make([]PageChunk, len(chunks))
	for i, chunk := range chunks {
		chunk.Words = nil
		prepared[i] = chunk
	}
	return prepared
}
