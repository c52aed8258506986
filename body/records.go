package body

import "fmt"

// Record is one row returned by a list endpoint.
type Record map[string]any

// ID returns the record identifier as a string, or "" when absent.
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// RecordsFrom converts a decoded JSON array into records. It fails when data
// is not an array of objects.
func RecordsFrom(data any) ([]Record, error) {
	items, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", data)
	}
	records := make([]Record, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("item %d: expected a JSON object, got %T", i, item)
		}
		records = append(records, Record(m))
	}
	return records, nil
}
