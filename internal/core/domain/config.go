package domain

// Config holds user settings read from the configuration file.
type Config struct {
	// Path is the file the configuration was read from. It is empty when no
	// file was found.
	Path string
	// Dist is the default distribution identifier.
	Dist string
	// PyVersions are the default version tags.
	PyVersions []VersionTag
	// Rules are evaluated before the built-in rules of the families they apply to.
	Rules []ScopedRule
	// Upstream rules are evaluated before the built-in upstream rules.
	Upstream RuleList
}

// ScopedRule is a rule restricted to a set of families.
// An empty Families slice applies the rule to every family.
type ScopedRule struct {
	Rule     Rule
	Families []Family
}

// RulesFor returns the configured rules that apply to f, in file order.
func (c *Config) RulesFor(f Family) RuleList {
	if c == nil {
		return nil
	}
	var rules RuleList
	for _, sr := range c.Rules {
		if len(sr.Families) == 0 {
			rules = append(rules, sr.Rule)
			continue
		}
		for _, sf := range sr.Families {
			if sf == f {
				rules = append(rules, sr.Rule)
				break
			}
		}
	}
	return rules
}
