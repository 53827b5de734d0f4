package output

import (
	"encoding/json"
	"io"

	"github.com/agentstation/llamafi/internal/cmd/table"
	"github.com/agentstation/llamafi/pkg/endpoints"
)

// FormatEndpoints writes the descriptor listing in format.
// Table formats get the condensed table, the others the full descriptors.
func FormatEndpoints(w io.Writer, descs []endpoints.Descriptor, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, "":
		outputData = table.EndpointsToTableData(descs, format == FormatWide)
	default:
		outputData = descs
	}

	return formatter.Format(w, outputData)
}

// FormatParams writes the parameter list of one descriptor in format.
func FormatParams(w io.Writer, d endpoints.Descriptor, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide, "":
		outputData = table.ParamsToTableData(d)
	default:
		outputData = d
	}

	return formatter.Format(w, outputData)
}

// FormatPayload writes a response body in format. Table formats print
// indented JSON since payloads have no fixed columns.
func FormatPayload(w io.Writer, payload json.RawMessage, format Format) error {
	return NewFormatter(format).Format(w, payload)
}
