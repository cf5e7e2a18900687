package rulesets

import "go.trai.ch/pymod2pkg/internal/core/domain"

var upstreamRules = domain.RuleList{
	exact("openstack-placement", "placement", ""),
	exact("gnocchiclient", "python-gnocchiclient", ""),
	exact("aodhclient", "python-aodhclient", ""),
	exact("keystoneauth1", "keystoneauth", ""),
	exact("microversion_parse", "microversion-parse", ""),
	exact("XStatic-smart-table", "xstatic-angular-smart-table", ""),
	exact("openstacksdk", "python-openstacksdk", ""),
}

// Upstream returns the table mapping package names back to OpenStack
// upstream project names.
func Upstream() domain.RuleList {
	return upstreamRules.Clone()
}
