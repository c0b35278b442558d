package unitview

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Candidate keys per field, in priority order. systemctl's JSON listing has
// carried lower-case short names, lower_snake, and PascalCase variants
// across versions; the first candidate present with a usable value wins.
var (
	nameKeys        = []string{"unit", "Unit", "name", "Name", "id", "Id"}
	descriptionKeys = []string{"description", "Description", "desc"}
	loadStateKeys   = []string{"load", "Load", "load_state", "LoadState", "loadState"}
	activeStateKeys = []string{"active", "Active", "active_state", "ActiveState", "activeState"}
	subStateKeys    = []string{"sub", "Sub", "sub_state", "SubState", "subState"}
	unitFileKeys    = []string{"unit_file_state", "UnitFileState", "unitFileState", "file_state", "state"}
	followedByKeys  = []string{"followed_by", "FollowedBy", "followedBy", "followed"}

	// collectionKeys are the object keys that may wrap the row sequence
	// when the top-level value is not itself an array.
	collectionKeys = []string{"units", "Units"}
)

// DecodeUnitList converts the raw output of the machine-readable listing
// into normalized service records.
//
// The decode never aborts the whole batch because of one malformed row:
// rows whose name cannot be resolved under any candidate key are dropped
// silently, and every other field defaults to empty rather than failing.
// Only an unparseable byte stream (ErrDecode) or an unrecognized top-level
// shape (ErrSchema) fails the call.
func DecodeUnitList(data []byte) ([]ServiceInfo, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	rows, err := unitRows(root)
	if err != nil {
		return nil, err
	}

	units := make([]ServiceInfo, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			// Not a keyed mapping, so no name can resolve.
			continue
		}
		info := ServiceInfo{
			Name:          probeString(m, nameKeys),
			Description:   probeString(m, descriptionKeys),
			LoadState:     probeString(m, loadStateKeys),
			ActiveState:   probeString(m, activeStateKeys),
			SubState:      probeString(m, subStateKeys),
			UnitFileState: probeString(m, unitFileKeys),
			FollowedBy:    probeStrings(m, followedByKeys),
		}
		if info.Name == "" {
			continue
		}
		units = append(units, info)
	}
	return units, nil
}

// unitRows locates the row sequence: either the top-level value itself or a
// recognized collection key holding one.
func unitRows(root any) ([]any, error) {
	switch v := root.(type) {
	case []any:
		return v, nil
	case map[string]any:
		for _, key := range collectionKeys {
			if rows, ok := v[key].([]any); ok {
				return rows, nil
			}
		}
	}
	return nil, ErrSchema
}

// probeString returns the first candidate key whose value coerces to a
// non-empty string.
func probeString(m map[string]any, keys []string) string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		if s := coerceString(v); s != "" {
			return s
		}
	}
	return ""
}

// coerceString stringifies scalar values. Arrays, objects, and null in a
// scalar slot are treated as absent.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// probeStrings resolves the followed-by relation, which systemd reports as
// either an array of unit names or a single name. String elements of an
// array are kept; every other shape yields an empty sequence.
func probeStrings(m map[string]any, keys []string) []string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case []any:
			out := make([]string, 0, len(t))
			for _, elem := range t {
				if s, ok := elem.(string); ok {
					out = append(out, s)
				}
			}
			return out
		case string:
			if t == "" {
				return nil
			}
			return []string{t}
		default:
			return nil
		}
	}
	return nil
}

// DecodeShowOutput parses the newline-separated Key=Value output of the
// single-unit property query. Unrecognized keys and malformed lines are
// ignored.
func DecodeShowOutput(name string, data []byte) ServiceStatus {
	st := ServiceStatus{Name: name}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "ActiveState":
			st.Active = value == "active"
		case "SubState":
			st.Running = value == "running"
		case "MainPID":
			if pid, err := strconv.Atoi(value); err == nil && pid > 0 {
				st.PID = pid
			}
		}
	}
	return st
}
