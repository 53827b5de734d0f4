// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/llamafi/pkg/endpoints"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// GroupTitle returns the display title of a group, e.g. "Stablecoins".
// TVL is an acronym and stays upper case.
func GroupTitle(g endpoints.Group) string {
	if g == endpoints.GroupTVL {
		return "TVL"
	}
	return cases.Title(language.English).String(string(g))
}

// EndpointsToTableData converts descriptors to table format.
// Wide output adds the parameter list and the summary.
func EndpointsToTableData(descs []endpoints.Descriptor, wide bool) Data {
	headers := []string{"Group", "Operation", "URL"}
	if wide {
		headers = append(headers, "Params", "Summary")
	}

	rows := make([][]string, 0, len(descs))
	for _, d := range descs {
		row := []string{
			GroupTitle(d.Group),
			string(d.Operation),
			d.Template(),
		}
		if wide {
			row = append(row, FormatParams(d.Params), d.Summary)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// ParamsToTableData lists the parameters of one descriptor.
func ParamsToTableData(d endpoints.Descriptor) Data {
	rows := make([][]string, 0, len(d.Params))
	for _, p := range d.Params {
		required := "no"
		if p.Required {
			required = "yes"
		}
		rows = append(rows, []string{p.Name, string(p.In), string(p.Kind), required, p.Description})
	}
	return Data{
		Headers:         []string{"Name", "In", "Kind", "Required", "Description"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignCenter, AlignLeft},
	}
}

// FormatParams renders params as "name, [optional]" for a table cell.
func FormatParams(params []endpoints.Param) string {
	if len(params) == 0 {
		return "-"
	}
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p.Required {
			names = append(names, p.Name)
		} else {
			names = append(names, "["+p.Name+"]")
		}
	}
	return strings.Join(names, ", ")
}
