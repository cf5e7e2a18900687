package domain

import (
	"regexp"
	"slices"

	"go.trai.ch/zerr"
)

// TransformFunc derives a NameTriple from a module name.
type TransformFunc func(module string) NameTriple

// Rule maps a module name to a NameTriple.
type Rule interface {
	// Match returns the names for module and true, or false if the rule does
	// not apply. dist may be empty.
	Match(module, dist string) (NameTriple, bool)
}

// RuleList is an ordered sequence of rules. The first matching rule wins.
type RuleList []Rule

// Evaluate returns the result of the first rule in l that matches module.
func (l RuleList) Evaluate(module, dist string) (NameTriple, bool) {
	for _, r := range l {
		if names, ok := r.Match(module, dist); ok {
			return names, true
		}
	}
	return NameTriple{}, false
}

// Clone returns a copy of l that shares no backing array with it.
func (l RuleList) Clone() RuleList {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// DistOverride replaces the names of an ExactRule for distributions whose
// identifier matches Pattern at its start.
type DistOverride struct {
	Pattern *regexp.Regexp
	Names   NameTriple
}

// NewDistOverride compiles pattern into a start-anchored DistOverride.
func NewDistOverride(pattern string, names NameTriple) (DistOverride, error) {
	re, err := compileAnchored(pattern)
	if err != nil {
		return DistOverride{}, err
	}
	return DistOverride{Pattern: re, Names: names}, nil
}

// ExactRule matches a single module name.
type ExactRule struct {
	module    string
	names     NameTriple
	overrides []DistOverride
}

// ExactRuleOption configures an ExactRule.
type ExactRuleOption func(*ExactRule)

// WithPy2 sets the Python 2 package name. It defaults to the unversioned name.
func WithPy2(name string) ExactRuleOption {
	return func(r *ExactRule) {
		if name != "" {
			r.names.Py2 = name
		}
	}
}

// WithPy3 sets the Python 3 package name. It defaults to the unversioned name.
func WithPy3(name string) ExactRuleOption {
	return func(r *ExactRule) {
		if name != "" {
			r.names.Py3 = name
		}
	}
}

// WithDistOverride appends an override for distributions matching pattern.
// It panics if pattern does not compile and is meant for static tables.
func WithDistOverride(pattern string, names NameTriple) ExactRuleOption {
	o, err := NewDistOverride(pattern, names)
	if err != nil {
		panic(err)
	}
	return WithDistOverrides(o)
}

// WithDistOverrides appends already compiled overrides, keeping their order.
func WithDistOverrides(overrides ...DistOverride) ExactRuleOption {
	return func(r *ExactRule) {
		r.overrides = append(r.overrides, overrides...)
	}
}

// NewExactRule creates a rule mapping module to pkg.
func NewExactRule(module, pkg string, opts ...ExactRuleOption) *ExactRule {
	r := &ExactRule{
		module: module,
		names:  Triple(pkg, pkg, pkg),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Match implements Rule.
func (r *ExactRule) Match(module, dist string) (NameTriple, bool) {
	if module != r.module {
		return NameTriple{}, false
	}
	if dist != "" {
		for _, o := range r.overrides {
			if o.Pattern.MatchString(dist) {
				return o.Names, true
			}
		}
	}
	return r.names, true
}

// SetRule matches any module from a fixed set and derives the names with a
// transform.
type SetRule struct {
	modules   map[string]struct{}
	transform TransformFunc
}

// NewSetRule creates a SetRule over modules.
func NewSetRule(modules []string, transform TransformFunc) *SetRule {
	set := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		set[m] = struct{}{}
	}
	return &SetRule{modules: set, transform: transform}
}

// Match implements Rule.
func (r *SetRule) Match(module, _ string) (NameTriple, bool) {
	if _, ok := r.modules[module]; !ok {
		return NameTriple{}, false
	}
	return r.transform(module), true
}

// PatternRule matches modules whose name matches a regular expression at its
// start and derives the names with a transform.
type PatternRule struct {
	pattern   *regexp.Regexp
	transform TransformFunc
}

// NewPatternRule compiles pattern into a start-anchored PatternRule.
func NewPatternRule(pattern string, transform TransformFunc) (*PatternRule, error) {
	re, err := compileAnchored(pattern)
	if err != nil {
		return nil, err
	}
	return &PatternRule{pattern: re, transform: transform}, nil
}

// MustPatternRule is like NewPatternRule but panics on an invalid pattern.
func MustPatternRule(pattern string, transform TransformFunc) *PatternRule {
	r, err := NewPatternRule(pattern, transform)
	if err != nil {
		panic(err)
	}
	return r
}

// Match implements Rule.
func (r *PatternRule) Match(module, _ string) (NameTriple, bool) {
	if !r.pattern.MatchString(module) {
		return NameTriple{}, false
	}
	return r.transform(module), true
}

func compileAnchored(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidRulePattern, err.Error()), "pattern", pattern)
	}
	return re, nil
}
