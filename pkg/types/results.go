package types

// RenameResult reports the outcome of a name-keyed update with
// denormalization sync.
type RenameResult struct {
	OK      bool   `json:"ok"`
	Renamed int64  `json:"renamed"` // denormalized rows rewritten
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// ToggleResult reports the outcome of a cascade status toggle.
type ToggleResult struct {
	OK        bool   `json:"ok"`
	NewStatus string `json:"new_status"`
}
