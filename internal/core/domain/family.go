package domain

import "go.trai.ch/zerr"

// Family identifies a group of distributions sharing one rule table and one
// fallback transform.
type Family string

const (
	// FamilyRDO covers Fedora, RHEL, CentOS and RDO. It is the default family.
	FamilyRDO Family = "rdo"
	// FamilySUSE covers openSUSE and SLES.
	FamilySUSE Family = "suse"
	// FamilySUSEPy39 covers SUSE distributions built against Python 3.9.
	FamilySUSEPy39 Family = "suse-py39"
	// FamilySUSEPy311 covers SUSE distributions built against Python 3.11.
	FamilySUSEPy311 Family = "suse-py311"
	// FamilyUbuntu covers Ubuntu and Debian style naming.
	FamilyUbuntu Family = "ubuntu"
)

// Families returns every known family.
func Families() []Family {
	return []Family{FamilyRDO, FamilySUSE, FamilySUSEPy39, FamilySUSEPy311, FamilyUbuntu}
}

// ParseFamily converts s into a Family.
func ParseFamily(s string) (Family, error) {
	for _, f := range Families() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownFamily, "failed to parse family"), "family", s)
}

// DependencyLabel returns the spec file keyword used to declare runtime
// dependencies for the family.
func (f Family) DependencyLabel() string {
	if f == FamilyUbuntu {
		return "Depends"
	}
	return "Requires"
}

// JoinsDependencies reports whether the family lists all dependencies on a
// single comma separated line.
func (f Family) JoinsDependencies() bool {
	return f == FamilyUbuntu
}
