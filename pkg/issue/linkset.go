package issue

// LinkSet is an ordered collection of references without identity duplicates.
// The zero value is ready to use.
type LinkSet struct {
	refs  []Reference
	index map[string]int
}

// NewLinkSet returns a set holding refs in first-seen order.
func NewLinkSet(refs ...Reference) LinkSet {
	var s LinkSet
	for _, r := range refs {
		s.Add(r)
	}
	return s
}

// Add inserts ref unless a reference with the same identity is present.
// It reports whether the set changed.
func (s *LinkSet) Add(ref Reference) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	key := ref.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.refs)
	s.refs = append(s.refs, ref)
	return true
}

// Contains reports whether a reference with the same identity is present.
func (s LinkSet) Contains(ref Reference) bool {
	_, ok := s.index[ref.Key()]
	return ok
}

// Len returns the number of references.
func (s LinkSet) Len() int {
	return len(s.refs)
}

// References returns a copy of the references in insertion order.
func (s LinkSet) References() []Reference {
	out := make([]Reference, len(s.refs))
	copy(out, s.refs)
	return out
}

// Keys returns the identity keys in insertion order.
func (s LinkSet) Keys() []string {
	keys := make([]string, len(s.refs))
	for i, r := range s.refs {
		keys[i] = r.Key()
	}
	return keys
}

// Difference returns the references of s missing from other.
func (s LinkSet) Difference(other LinkSet) LinkSet {
	var out LinkSet
	for _, r := range s.refs {
		if !other.Contains(r) {
			out.Add(r)
		}
	}
	return out
}

// Intersection returns the references of s also present in other.
func (s LinkSet) Intersection(other LinkSet) LinkSet {
	var out LinkSet
	for _, r := range s.refs {
		if other.Contains(r) {
			out.Add(r)
		}
	}
	return out
}

// Union returns s followed by the references of other not already in s.
func (s LinkSet) Union(other LinkSet) LinkSet {
	out := NewLinkSet(s.refs...)
	for _, r := range other.refs {
		out.Add(r)
	}
	return out
}

// Equal reports whether both sets hold the same identities, ignoring order.
func (s LinkSet) Equal(other LinkSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, r := range s.refs {
		if !other.Contains(r) {
			return false
		}
	}
	return true
}
