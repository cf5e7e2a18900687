package rulesets

import "go.trai.ch/pymod2pkg/internal/core/domain"

var ubuntuRules = domain.RuleList{
	exact("django_openstack_auth", "python-openstack-auth", ""),
	exact("glance_store", "python-glance-store", ""),
	exact("GitPython", "python-git", ""),
	exact("libvirt-python", "python-libvirt", ""),
	exact("PyMySQL", "python-mysql", ""),
	exact("pyOpenSSL", "python-openssl", ""),
	exact("PyYAML", "python-yaml", ""),
	exact("sqlalchemy-migrate", "python-migrate", ""),
	exact("suds-jurko", "python-suds", ""),
	// OpenStack clients
	domain.NewSetRule(clientModules(
		"barbican", "ceilometer", "cinder", "cloudkitty", "congress",
		"designate", "fuel", "heat", "glance", "ironic",
		"karbor", "keystone",
		"magnum", "manila", "masakari", "mistral", "monasca",
		"murano", "neutron", "nova", "octavia",
		"openstack", "qinling", "sahara",
		"senlin", "swift",
		"trove", "zaqar", "zun",
	), sameNamePython3),
}

// Ubuntu returns the rule table for Ubuntu.
func Ubuntu() domain.RuleList {
	return ubuntuRules.Clone()
}
