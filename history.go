package diffshot

// History limits. A diff larger than MaxSavedTextLen characters is
// never persisted; the list never grows past MaxHistory entries.
const (
	MaxHistory      = 10
	MaxSavedTextLen = 1_000_000
)

// SavedDiff is one entry of the recent-diffs history.
type SavedDiff struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	SavedAt int64  `json:"savedAt"` // unix epoch milliseconds
	RawText string `json:"rawText"`
}

// Store persists the history list as a whole: read once at startup,
// written whole on every change. Implementations may fail freely; the
// caller logs and continues with the in-memory document as the source
// of truth.
type Store interface {
	Load() ([]SavedDiff, error)
	Save(list []SavedDiff) error
}

// AddToHistory returns the history with rec inserted at the front,
// most recently touched first. An entry with the same ID is moved to
// the front instead of duplicated. Records over the size ceiling are
// rejected and the list is returned unchanged. Entries beyond the cap
// fall off the end, oldest first.
func AddToHistory(list []SavedDiff, rec SavedDiff) []SavedDiff {
	if len(rec.RawText) > MaxSavedTextLen {
		return list
	}
	out := make([]SavedDiff, 0, len(list)+1)
	out = append(out, rec)
	for _, r := range list {
		if r.ID == rec.ID {
			continue
		}
		out = append(out, r)
	}
	if len(out) > MaxHistory {
		out = out[:MaxHistory]
	}
	return out
}
