// Package rulesets holds the built-in translation tables of every
// distribution family.
package rulesets

import "go.trai.ch/pymod2pkg/internal/core/domain"

// For returns the rule table and fallback transform of family f.
// Unknown families get the RDO table.
func For(f domain.Family) (domain.RuleList, domain.TransformFunc) {
	switch f {
	case domain.FamilySUSE:
		return SUSE(), DefaultSUSE
	case domain.FamilySUSEPy39:
		return SUSEPy39(), SUSEFallback("python39")
	case domain.FamilySUSEPy311:
		return SUSEPy311(), SUSEFallback("python311")
	case domain.FamilyUbuntu:
		return Ubuntu(), DefaultUbuntu
	default:
		return RDO(), DefaultRDO
	}
}
