package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// VersionTag selects one slot of a NameTriple.
type VersionTag string

const (
	// VersionUnversioned selects the unversioned package name.
	VersionUnversioned VersionTag = "py"
	// VersionPy2 selects the Python 2 package name.
	VersionPy2 VersionTag = "py2"
	// VersionPy3 selects the Python 3 package name.
	VersionPy3 VersionTag = "py3"
)

// VersionTags returns the accepted version tags in canonical order.
func VersionTags() []VersionTag {
	return []VersionTag{VersionUnversioned, VersionPy2, VersionPy3}
}

// ParseVersionTag converts s into a VersionTag.
func ParseVersionTag(s string) (VersionTag, error) {
	v := VersionTag(s)
	if !v.Valid() {
		return "", zerr.With(zerr.Wrap(ErrInvalidVersionTag, "failed to parse version tag"), "version", s)
	}
	return v, nil
}

// Valid reports whether v is one of the accepted version tags.
func (v VersionTag) Valid() bool {
	return slices.Contains(VersionTags(), v)
}

// NameTriple holds the distribution package names of a module, one per
// version slot. An empty slot means no package exists for that version.
type NameTriple struct {
	Unversioned string
	Py2         string
	Py3         string
}

// Triple builds a NameTriple from its three slots.
func Triple(unversioned, py2, py3 string) NameTriple {
	return NameTriple{Unversioned: unversioned, Py2: py2, Py3: py3}
}

// Name returns the name stored in the slot selected by v.
func (t NameTriple) Name(v VersionTag) (string, error) {
	switch v {
	case VersionUnversioned:
		return t.Unversioned, nil
	case VersionPy2:
		return t.Py2, nil
	case VersionPy3:
		return t.Py3, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidVersionTag, "failed to select package name"), "version", string(v))
	}
}

// Names returns the names for each requested version, in request order.
func (t NameTriple) Names(versions ...VersionTag) ([]string, error) {
	names := make([]string, 0, len(versions))
	for _, v := range versions {
		name, err := t.Name(v)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
