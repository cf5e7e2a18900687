package translator

import (
	"strings"

	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/rulesets"
)

// familySelector picks a family when the lowercased distribution identifier
// contains any of its keywords and, if set, its flavor.
type familySelector struct {
	family   domain.Family
	keywords []string
	flavor   string
}

func (s familySelector) matches(dist string) bool {
	if s.flavor != "" && !strings.Contains(dist, s.flavor) {
		return false
	}
	for _, kw := range s.keywords {
		if strings.Contains(dist, kw) {
			return true
		}
	}
	return false
}

// selectors is checked in order. Interpreter specific SUSE flavors come before
// plain SUSE.
var selectors = []familySelector{
	{family: domain.FamilySUSEPy311, keywords: []string{"suse", "sles"}, flavor: "py311"},
	{family: domain.FamilySUSEPy39, keywords: []string{"suse", "sles"}, flavor: "py39"},
	{family: domain.FamilySUSE, keywords: []string{"suse", "sles"}},
	{family: domain.FamilyUbuntu, keywords: []string{"ubuntu"}},
}

// ResolveFamily returns the family of the distribution identifier dist.
// Unrecognized and empty identifiers resolve to the RDO family.
func ResolveFamily(dist string) domain.Family {
	d := strings.ToLower(dist)
	for _, s := range selectors {
		if s.matches(d) {
			return s.family
		}
	}
	return domain.FamilyRDO
}

// ResolveRuleList returns a copy of the built-in rule table for dist.
func ResolveRuleList(dist string) domain.RuleList {
	rules, _ := rulesets.For(ResolveFamily(dist))
	return rules
}

// ResolveFallback returns the fallback transform for dist.
func ResolveFallback(dist string) domain.TransformFunc {
	_, fallback := rulesets.For(ResolveFamily(dist))
	return fallback
}
