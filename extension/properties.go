package extension

import (
	"sort"

	"github.com/spaghettifunk/vulkanite/core"
)

// Property is one extension together with its reported spec version.
type Property struct {
	Name        string
	SpecVersion uint32
}

// Properties is a Set whose members additionally carry the spec version the
// implementation reports for them. It follows the same known/named split and
// reconciliation rules as Set.
type Properties struct {
	known   [extensionCount]bool
	version [extensionCount]uint32
	named   map[string]uint32
}

func NewProperties() *Properties {
	return &Properties{}
}

// Add records a known extension at the given spec version. Adding the same
// extension twice keeps the higher version.
func (p *Properties) Add(e Extension, specVersion uint32) *Properties {
	if e >= extensionCount {
		return p
	}
	if !p.known[e] || p.version[e] < specVersion {
		p.version[e] = specVersion
	}
	p.known[e] = true
	return p
}

// AddNamed records an extension by registration name.
func (p *Properties) AddNamed(name string, specVersion uint32) *Properties {
	if e, ok := ByName(name); ok {
		return p.Add(e, specVersion)
	}
	if p.named == nil {
		p.named = make(map[string]uint32)
	}
	if v, ok := p.named[name]; !ok || v < specVersion {
		p.named[name] = specVersion
	}
	return p
}

// Has reports whether a known extension is present.
func (p *Properties) Has(e Extension) bool {
	return e < extensionCount && p.known[e]
}

// Get returns the spec version of a known extension, if present.
func (p *Properties) Get(e Extension) (uint32, bool) {
	if !p.Has(e) {
		return 0, false
	}
	return p.version[e], true
}

// GetNamed returns the spec version of an extension by registration name.
func (p *Properties) GetNamed(name string) (uint32, bool) {
	if e, ok := ByName(name); ok {
		return p.Get(e)
	}
	v, ok := p.named[name]
	return v, ok
}

func (p *Properties) HasNamed(name string) bool {
	_, ok := p.GetNamed(name)
	return ok
}

func (p *Properties) Len() int {
	n := len(p.named)
	for _, present := range p.known {
		if present {
			n++
		}
	}
	return n
}

func (p *Properties) IsEmpty() bool {
	return p.Len() == 0
}

// Difference keeps members of p that are missing from other or whose version
// in p strictly exceeds the one in other. It answers "which of my required
// extensions does the other side not satisfy". A nil other is treated as
// empty, as in the other binary operations.
func (p *Properties) Difference(other *Properties) *Properties {
	if other == nil {
		other = NewProperties()
	}
	res := NewProperties()
	for e := Extension(0); e < extensionCount; e++ {
		if !p.known[e] {
			continue
		}
		if !other.known[e] || p.version[e] > other.version[e] {
			res.Add(e, p.version[e])
		}
	}
	for name, v := range p.named {
		if ov, ok := other.named[name]; !ok || v > ov {
			res.AddNamed(name, v)
		}
	}
	return res
}

// Intersection keeps members present on both sides at the lower of the two
// versions.
func (p *Properties) Intersection(other *Properties) *Properties {
	if other == nil {
		other = NewProperties()
	}
	res := NewProperties()
	for e := Extension(0); e < extensionCount; e++ {
		if p.known[e] && other.known[e] {
			res.Add(e, core.Min(p.version[e], other.version[e]))
		}
	}
	for name, v := range p.named {
		if ov, ok := other.named[name]; ok {
			res.AddNamed(name, core.Min(v, ov))
		}
	}
	return res
}

// Union keeps members present on either side at the higher of the two
// versions.
func (p *Properties) Union(other *Properties) *Properties {
	if other == nil {
		other = NewProperties()
	}
	res := NewProperties()
	for e := Extension(0); e < extensionCount; e++ {
		if p.known[e] {
			res.Add(e, p.version[e])
		}
		if other.known[e] {
			res.Add(e, other.version[e])
		}
	}
	for name, v := range p.named {
		res.AddNamed(name, v)
	}
	for name, v := range other.named {
		res.AddNamed(name, v)
	}
	return res
}

// ToSet drops the versions and returns the plain extension set.
func (p *Properties) ToSet() *Set {
	res := NewSet()
	for e := Extension(0); e < extensionCount; e++ {
		if p.known[e] {
			res.Add(e)
		}
	}
	for name := range p.named {
		res.AddNamed(name)
	}
	return res
}

// Members returns all members sorted by name.
func (p *Properties) Members() []Property {
	res := make([]Property, 0, p.Len())
	for e := Extension(0); e < extensionCount; e++ {
		if p.known[e] {
			res = append(res, Property{Name: registry[e].name, SpecVersion: p.version[e]})
		}
	}
	for name, v := range p.named {
		res = append(res, Property{Name: name, SpecVersion: v})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
