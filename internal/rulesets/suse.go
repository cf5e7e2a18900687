package rulesets

import "go.trai.ch/pymod2pkg/internal/core/domain"

var (
	suseRules      = buildSUSE("python3")
	susePy39Rules  = buildSUSE("python39")
	susePy311Rules = buildSUSE("python311")
)

// suseClients lists the projects whose "python-<name>client" package keeps
// its name on SUSE.
var suseClients = []string{
	"barbican", "ceilometer", "cinder", "cloudkitty",
	"congress", "cue", "cyborg", "designate", "distil", "drac", "fuel",
	"freezer", "heat", "glance", "glare", "ironic",
	"ironic-inspector-", "karbor", "k8s", "keystone",
	"magnum", "manila", "masakari", "mistral", "monasca",
	"murano", "nimble", "neutron", "nova", "octavia", "oneview",
	"openstack", "qinling", "sahara", "scci", "searchlight", "senlin",
	"smaug", "solum", "swift", "tacker", "tripleo", "trove",
	"vitrage", "watcher", "zaqar", "zun",
}

// buildSUSE builds a fresh SUSE table whose Python 3 names use py3Prefix.
func buildSUSE(py3Prefix string) domain.RuleList {
	return domain.RuleList{
		// not following the SUSE naming policy
		exact("ansible", "ansible", ""),
		exact("python-ldap", "python-ldap", ""),
		domain.NewSetRule(services, openstackPrefix),
		domain.NewSetRule(clientModules(suseClients...), substPython(py3Prefix)),
		exact("devel", "python-devel", py3Prefix+"-devel"),
		exact("openstack-placement", "openstack-placement", ""),
		// ui components
		exact("designate-dashboard", "openstack-horizon-plugin-designate-ui", ""),
		exact("freezer-web-ui", "openstack-horizon-plugin-freezer-ui", ""),
		exact("group-based-policy-ui", "openstack-horizon-plugin-gbp-ui", ""),
		exact("heat-agents", "openstack-heat-agents", "openstack-heat-agents"),
		exact("horizon", "openstack-dashboard", ""),
		exact("ironic-ui", "openstack-horizon-plugin-ironic-ui", ""),
		exact("magnum-ui", "openstack-horizon-plugin-magnum-ui", ""),
		exact("manila-ui", "openstack-horizon-plugin-manila-ui", ""),
		exact("monasca-ui", "openstack-horizon-plugin-monasca-ui", ""),
		exact("murano-dashboard", "openstack-horizon-plugin-murano-ui", ""),
		exact("networking-vsphere", "openstack-neutron-vsphere", ""),
		exact("networking-l2gw", "openstack-neutron-l2gw", ""),
		exact("neutron-dynamic-routing", "openstack-neutron-dynamic-routing", ""),
		domain.MustPatternRule(horizonPluginPattern, suseHorizonPlugin),
	}
}

// SUSE returns the rule table for openSUSE and SLES.
func SUSE() domain.RuleList {
	return suseRules.Clone()
}

// SUSEPy39 returns the SUSE rule table for Python 3.9 builds.
func SUSEPy39() domain.RuleList {
	return susePy39Rules.Clone()
}

// SUSEPy311 returns the SUSE rule table for Python 3.11 builds.
func SUSEPy311() domain.RuleList {
	return susePy311Rules.Clone()
}
