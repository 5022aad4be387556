package extension

import "sort"

// Set tracks which extensions are requested or supported in some context.
// Known extensions live in a fixed table; anything the binding has no typed
// knowledge of is carried in an open set of registration names. A name that
// matches a known extension is always redirected to its typed slot, so the
// typed accessor remains the single source of truth for that name.
type Set struct {
	known [extensionCount]bool
	named map[string]struct{}
}

func NewSet() *Set {
	return &Set{}
}

// Add enables a known extension.
func (s *Set) Add(e Extension) *Set {
	if e < extensionCount {
		s.known[e] = true
	}
	return s
}

// AddNamed enables an extension by registration name.
func (s *Set) AddNamed(name string) *Set {
	if e, ok := ByName(name); ok {
		return s.Add(e)
	}
	if s.named == nil {
		s.named = make(map[string]struct{})
	}
	s.named[name] = struct{}{}
	return s
}

// Has reports whether a known extension is enabled.
func (s *Set) Has(e Extension) bool {
	return e < extensionCount && s.known[e]
}

// HasNamed reports whether an extension is enabled by registration name.
func (s *Set) HasNamed(name string) bool {
	if e, ok := ByName(name); ok {
		return s.Has(e)
	}
	_, ok := s.named[name]
	return ok
}

func (s *Set) Len() int {
	n := len(s.named)
	for _, enabled := range s.known {
		if enabled {
			n++
		}
	}
	return n
}

func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Difference returns the extensions enabled in s but not in other. A nil
// other is treated as empty, as in the other binary operations.
func (s *Set) Difference(other *Set) *Set {
	if other == nil {
		other = NewSet()
	}
	res := NewSet()
	for e := Extension(0); e < extensionCount; e++ {
		res.known[e] = s.known[e] && !other.known[e]
	}
	for name := range s.named {
		if _, ok := other.named[name]; !ok {
			res.AddNamed(name)
		}
	}
	return res
}

// Intersection returns the extensions enabled in both sets.
func (s *Set) Intersection(other *Set) *Set {
	if other == nil {
		other = NewSet()
	}
	res := NewSet()
	for e := Extension(0); e < extensionCount; e++ {
		res.known[e] = s.known[e] && other.known[e]
	}
	for name := range s.named {
		if _, ok := other.named[name]; ok {
			res.AddNamed(name)
		}
	}
	return res
}

// Union returns the extensions enabled in either set.
func (s *Set) Union(other *Set) *Set {
	if other == nil {
		other = NewSet()
	}
	res := NewSet()
	for e := Extension(0); e < extensionCount; e++ {
		res.known[e] = s.known[e] || other.known[e]
	}
	for name := range s.named {
		res.AddNamed(name)
	}
	for name := range other.named {
		res.AddNamed(name)
	}
	return res
}

// Names returns all enabled registration names, sorted for stable output.
func (s *Set) Names() []string {
	res := make([]string, 0, s.Len())
	for e := Extension(0); e < extensionCount; e++ {
		if s.known[e] {
			res = append(res, registry[e].name)
		}
	}
	for name := range s.named {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
