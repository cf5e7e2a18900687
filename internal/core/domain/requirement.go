package domain

import "strconv"

// Requirement is a single dependency declared in a requirements manifest.
type Requirement struct {
	// Name is the bare project name without extras, markers or version specifiers.
	Name string
	// Line is the trimmed source line the requirement was read from.
	Line string
	// LineNo is the 1-based line number in the manifest.
	LineNo int
}

// Manifest is a parsed requirements file.
type Manifest struct {
	Path         string
	Requirements []Requirement
}

// ManifestReport holds the package names a manifest translated to.
type ManifestReport struct {
	Path     string
	Family   Family
	Packages []string
}

// Location points at a file and, when Line is positive, a line in it.
type Location struct {
	Path string
	Line int
}

// String returns "path:line", "path" without a line, or an empty string.
func (l Location) String() string {
	if l.Line <= 0 {
		return l.Path
	}
	return l.Path + ":" + strconv.Itoa(l.Line)
}
