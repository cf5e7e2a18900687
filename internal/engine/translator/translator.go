// Package translator maps Python module names to distribution package names
// and back to upstream project names.
package translator

import (
	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/rulesets"
)

// Translate returns every package name of module on dist.
// A non-empty rules list replaces the built-in table of the family; the
// family fallback applies when no rule matches.
func Translate(module, dist string, rules domain.RuleList) domain.NameTriple {
	builtin, fallback := rulesets.For(ResolveFamily(dist))
	if len(rules) == 0 {
		rules = builtin
	}
	if names, ok := rules.Evaluate(module, dist); ok {
		return names
	}
	return fallback(module)
}

// ModuleToPackage returns the unversioned package name of module on dist.
func ModuleToPackage(module, dist string) string {
	return Translate(module, dist, nil).Unversioned
}

// ModuleToPackages returns the package names of module for each requested
// version, in request order. No versions means the unversioned name only.
func ModuleToPackages(
	module, dist string,
	rules domain.RuleList,
	versions ...domain.VersionTag,
) ([]string, error) {
	if len(versions) == 0 {
		versions = []domain.VersionTag{domain.VersionUnversioned}
	}
	return Translate(module, dist, rules).Names(versions...)
}

// ModuleToUpstream returns the OpenStack upstream project name of module.
// extra rules are tried before the built-in ones. Unknown modules map to
// themselves.
func ModuleToUpstream(module string, extra ...domain.Rule) string {
	builtin := rulesets.Upstream()
	rules := make(domain.RuleList, 0, len(extra)+len(builtin))
	rules = append(rules, extra...)
	rules = append(rules, builtin...)

	if names, ok := rules.Evaluate(module, ""); ok {
		return names.Unversioned
	}
	return module
}
