package types

// Record is one row of an allowlisted table as an open column -> value
// mapping. The data-access layer enforces no schema on it; callers persist
// whatever pairs they supply and the store's own constraints arbitrate.
type Record map[string]any

// Clone returns a shallow copy of the record. Mutating the copy's keys does
// not affect the original.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
