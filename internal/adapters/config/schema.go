package config

// File represents the structure of the .pymod2pkg.yaml configuration file.
type File struct {
	Dist     string        `yaml:"dist"`
	PyVer    []string      `yaml:"pyver"`
	Rules    []RuleDTO     `yaml:"rules"`
	Upstream []UpstreamDTO `yaml:"upstream"`
}

// RuleDTO represents an exact translation rule.
type RuleDTO struct {
	Module   string            `yaml:"module"`
	Package  string            `yaml:"package"`
	Py2      string            `yaml:"py2"`
	Py3      string            `yaml:"py3"`
	Families []string          `yaml:"families"`
	Dists    []DistOverrideDTO `yaml:"dists"`
}

// DistOverrideDTO replaces the names of a rule on distributions matching Match.
type DistOverrideDTO struct {
	Match   string `yaml:"match"`
	Package string `yaml:"package"`
	Py2     string `yaml:"py2"`
	Py3     string `yaml:"py3"`
}

// UpstreamDTO maps a package name back to its upstream project name.
type UpstreamDTO struct {
	Module   string `yaml:"module"`
	Upstream string `yaml:"upstream"`
}
