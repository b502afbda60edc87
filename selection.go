package diffshot

// Selection semantics: a file's Selected flag is true only when every
// one of its hunks is selected. A partially selected file reads as
// false; there is deliberately no tri-state. Partial selection is only
// visible through the hunk flags and the Summary counts.

// ToggleFile flips the file's Selected flag and cascades the new value
// onto every hunk under it, so selecting a file selects all its hunks
// atomically. Unknown ids are ignored.
func (d *Document) ToggleFile(fileID string) {
	for _, f := range d.Files {
		if f.ID != fileID {
			continue
		}
		f.Selected = !f.Selected
		for _, h := range f.Hunks {
			h.Selected = f.Selected
		}
		return
	}
}

// ToggleHunk flips a single hunk's Selected flag and recomputes the
// parent file's flag: true iff every hunk of the file is now selected.
// Unknown ids are ignored.
func (d *Document) ToggleHunk(fileID, hunkID string) {
	for _, f := range d.Files {
		if f.ID != fileID {
			continue
		}
		for _, h := range f.Hunks {
			if h.ID == hunkID {
				h.Selected = !h.Selected
			}
		}
		f.Selected = allSelected(f.Hunks)
		return
	}
}

// SelectAll sets every file and hunk flag to v uniformly.
func (d *Document) SelectAll(v bool) {
	for _, f := range d.Files {
		f.Selected = v
		for _, h := range f.Hunks {
			h.Selected = v
		}
	}
}

func allSelected(hunks []*Hunk) bool {
	for _, h := range hunks {
		if !h.Selected {
			return false
		}
	}
	return true
}

// Summary holds the selection counts shown to the user.
type Summary struct {
	SelectedFiles int
	TotalFiles    int
	SelectedHunks int
	TotalHunks    int
}

// Summarize recounts the selection in a single pass over the tree. It
// is recomputed after every mutation rather than patched incrementally,
// so the counts cannot drift from the flags. A file counts as selected
// when the file itself or any of its hunks is selected.
func (d *Document) Summarize() Summary {
	var s Summary
	for _, f := range d.Files {
		s.TotalFiles++
		fileIn := f.Selected
		for _, h := range f.Hunks {
			s.TotalHunks++
			if h.Selected {
				s.SelectedHunks++
				fileIn = true
			}
		}
		if fileIn {
			s.SelectedFiles++
		}
	}
	return s
}

// FilterSelected returns the filtered tree consumed by renderers: files
// where the file or at least one hunk is selected, keeping only the
// selected hunks, and dropping files left with no hunks. The returned
// document shares Hunk values with the receiver; renderers treat it as
// read-only.
func (d *Document) FilterSelected() *Document {
	out := &Document{}
	for _, f := range d.Files {
		if !f.Selected && !anySelected(f.Hunks) {
			continue
		}
		kept := &File{
			ID:       f.ID,
			Header:   f.Header,
			Path:     f.Path,
			Selected: f.Selected,
		}
		for _, h := range f.Hunks {
			if h.Selected {
				kept.Hunks = append(kept.Hunks, h)
			}
		}
		if len(kept.Hunks) == 0 {
			continue
		}
		out.Files = append(out.Files, kept)
	}
	return out
}

func anySelected(hunks []*Hunk) bool {
	for _, h := range hunks {
		if h.Selected {
			return true
		}
	}
	return false
}
