package endpoints

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/llamafi/pkg/errors"
)

// Resolve validates params against the descriptor and returns the concrete
// request URL. It never performs I/O.
//
// Path values keep ':' and ',' literal so coin lists such as
// "ethereum:0xabc,bsc:0xdef" reach the API unchanged; other reserved
// characters are escaped. Optional query parameters that are absent or empty
// are left out of the URL. Query parameters appear in descriptor order.
func (d *Descriptor) Resolve(params Params) (string, error) {
	values, err := d.Validate(params)
	if err != nil {
		return "", err
	}

	path := d.Path
	var query []string
	for _, p := range d.Params {
		v, ok := values[p.Name]
		if !ok {
			continue
		}
		switch p.In {
		case PathParam:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", escapeSegment(v))
		case QueryParam:
			query = append(query, url.QueryEscape(p.Key)+"="+url.QueryEscape(v))
		}
	}

	u := d.Host + path
	if len(query) > 0 {
		u += "?" + strings.Join(query, "&")
	}
	return u, nil
}

// Validate checks params against the descriptor and returns each supplied
// value in its wire form. Unknown names, missing or empty required values,
// and values of the wrong type are reported as *errors.ValidationError.
func (d *Descriptor) Validate(params Params) (map[string]string, error) {
	// Report unknown names in a stable order.
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := d.Param(name); !ok {
			return nil, errors.NewValidationError(name, params[name],
				fmt.Sprintf("unknown parameter for operation %s", d.Operation))
		}
	}

	values := make(map[string]string, len(d.Params))
	for _, p := range d.Params {
		raw, present := params[p.Name]
		if !present || raw == nil {
			if p.Required {
				return nil, errors.NewValidationError(p.Name, nil,
					fmt.Sprintf("required parameter is missing for operation %s", d.Operation))
			}
			continue
		}

		v, err := formatValue(p, raw)
		if err != nil {
			return nil, err
		}
		if v == "" {
			if p.Required {
				return nil, errors.NewValidationError(p.Name, raw,
					fmt.Sprintf("required parameter is empty for operation %s", d.Operation))
			}
			continue
		}
		values[p.Name] = v
	}
	return values, nil
}

// formatValue converts a caller value to its wire form for p.
func formatValue(p Param, raw any) (string, error) {
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case int:
		s = strconv.FormatInt(int64(v), 10)
	case int8:
		s = strconv.FormatInt(int64(v), 10)
	case int16:
		s = strconv.FormatInt(int64(v), 10)
	case int32:
		s = strconv.FormatInt(int64(v), 10)
	case int64:
		s = strconv.FormatInt(v, 10)
	case uint:
		s = strconv.FormatUint(uint64(v), 10)
	case uint8:
		s = strconv.FormatUint(uint64(v), 10)
	case uint16:
		s = strconv.FormatUint(uint64(v), 10)
	case uint32:
		s = strconv.FormatUint(uint64(v), 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case bool:
		s = strconv.FormatBool(v)
	case fmt.Stringer:
		s = v.String()
	default:
		return "", errors.NewValidationError(p.Name, raw, fmt.Sprintf("unsupported value type %T", raw))
	}

	// Values are substituted exactly; only a blank value counts as absent.
	if strings.TrimSpace(s) == "" {
		return "", nil
	}

	switch p.Kind {
	case KindInteger:
		if !isInteger(s) {
			return "", errors.NewValidationError(p.Name, raw, "expected an integer, got "+strconv.Quote(s))
		}
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return "", errors.NewValidationError(p.Name, raw, "expected a boolean, got "+strconv.Quote(s))
		}
		s = strconv.FormatBool(b)
	}
	return s, nil
}

// isInteger reports whether s is a decimal integer that fits in an int64 or,
// for unsigned values, a uint64.
func isInteger(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func escapeSegment(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), "%2C", ",")
}

// Resolve looks up op and resolves it with params.
func Resolve(op Operation, params Params) (string, error) {
	d, err := Lookup(op)
	if err != nil {
		return "", err
	}
	return d.Resolve(params)
}
