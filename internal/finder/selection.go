package finder

// Selection is an ordered set of bucket labels.
type Selection []string

// Contains reports whether label is selected.
func (s Selection) Contains(label string) bool {
	for _, v := range s {
		if v == label {
			return true
		}
	}
	return false
}

// Toggle returns a new selection with label removed if present, appended
// otherwise. The receiver is never modified.
func (s Selection) Toggle(label string) Selection {
	out := make(Selection, 0, len(s)+1)
	removed := false
	for _, v := range s {
		if v == label {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, label)
	}
	return out
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s) == 0
}
