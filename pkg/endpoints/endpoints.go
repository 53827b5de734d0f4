// Package endpoints defines the static catalog of DefiLlama REST operations.
//
// Every operation is described once by a Descriptor: the host it lives on, a
// path template with {name} placeholders, and the parameters it accepts. The
// table is built at package initialisation and is read-only afterwards, so it
// can be shared freely between goroutines.
//
//	d, _ := endpoints.Lookup(endpoints.OpBridgeVolume)
//	u, err := d.Resolve(endpoints.Params{"chain_slug": "ethereum", "bridge_id": 5})
//	// u == "https://bridges.llama.fi/bridgevolume/ethereum?id=5"
package endpoints

import "strings"

// Operation is the logical name of one API call, e.g. "historical-prices".
type Operation string

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}

// Group is the API family an operation belongs to.
type Group string

// Groups of operations.
const (
	GroupTVL         Group = "tvl"
	GroupCoins       Group = "coins"
	GroupStablecoins Group = "stablecoins"
	GroupYields      Group = "yields"
	GroupBridges     Group = "bridges"
	GroupVolumes     Group = "volumes"
	GroupFees        Group = "fees"
)

// String returns the group name.
func (g Group) String() string {
	return string(g)
}

// ParamIn says where a parameter goes in the request URL.
type ParamIn string

// Parameter locations.
const (
	PathParam  ParamIn = "path"
	QueryParam ParamIn = "query"
)

// ParamKind is the value type a parameter accepts.
type ParamKind string

// Parameter kinds.
const (
	KindString  ParamKind = "string"
	KindInteger ParamKind = "integer"
	KindBool    ParamKind = "bool"
)

// Param describes one named parameter of an operation.
type Param struct {
	Name        string    `json:"name" yaml:"name"`                                   // Logical name callers use
	Key         string    `json:"key" yaml:"key"`                                     // Wire name in the URL
	In          ParamIn   `json:"in" yaml:"in"`                                       // Path segment or query string
	Kind        ParamKind `json:"kind" yaml:"kind"`                                   // Accepted value type
	Required    bool      `json:"required" yaml:"required"`                           // Path params are always required
	Description string    `json:"description,omitempty" yaml:"description,omitempty"` // Help text
}

// Descriptor is the static definition of one operation.
type Descriptor struct {
	Operation Operation `json:"operation" yaml:"operation"`
	Group     Group     `json:"group" yaml:"group"`
	Summary   string    `json:"summary" yaml:"summary"`
	Host      string    `json:"host" yaml:"host"`
	Path      string    `json:"path" yaml:"path"`
	Params    []Param   `json:"params,omitempty" yaml:"params,omitempty"`
}

// Param returns the named parameter.
func (d *Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// RequiredParams returns the names of the parameters that must be supplied.
func (d *Descriptor) RequiredParams() []string {
	var names []string
	for _, p := range d.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// Template returns the URL template with query parameters shown,
// e.g. "https://bridges.llama.fi/bridgevolume/{chain_slug}?id={bridge_id}".
// Optional query parameters are wrapped in brackets.
func (d *Descriptor) Template() string {
	var b strings.Builder
	b.WriteString(d.Host)
	b.WriteString(d.Path)

	sep := "?"
	for _, p := range d.Params {
		if p.In != QueryParam {
			continue
		}
		item := p.Key + "={" + p.Name + "}"
		if !p.Required {
			item = "[" + item + "]"
		}
		b.WriteString(sep)
		b.WriteString(item)
		sep = "&"
	}
	return b.String()
}

// Params holds the caller-supplied parameter values for one call, keyed by
// Param.Name. Values may be strings, integers, bools, or fmt.Stringers.
// Strings are used as given, surrounding spaces included; a value that is
// empty or all whitespace counts as not supplied.
type Params map[string]any
