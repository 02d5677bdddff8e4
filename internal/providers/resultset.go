package providers

import "strconv"

// The stats host returns tables as named result sets with parallel
// header and row arrays rather than keyed objects.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

func (r statsResponse) set(name string) (resultSet, bool) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, true
		}
	}
	return resultSet{}, false
}

// columnIndex resolves header names to row positions. Absent headers
// resolve to -1 so the cell readers treat them as missing data rather
// than silently reading column 0.
type columnIndex map[string]int

func (c columnIndex) idx(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return -1
}

func (rs resultSet) columns() columnIndex {
	idx := make(columnIndex, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[h] = i
	}
	return idx
}

// colString reads a cell as a string. Numeric IDs arrive as JSON
// numbers and are rendered without a fraction.
func colString(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// colFloat reads a cell as a float, reporting whether it was present.
func colFloat(row []interface{}, idx int) (float64, bool) {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return 0, false
	}
	switch v := row[idx].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
