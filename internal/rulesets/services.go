package rulesets

// services lists OpenStack service projects packaged as "openstack-<name>".
// Keep alphabetic order.
var services = []string{
	"Tempest", "aodh", "barbican", "ceilometer", "cinder",
	"cloudkitty", "cyborg", "designate", "ec2-api", "freezer", "freezer-api",
	"freezer-dr", "glance", "heat", "heat-templates", "ironic",
	"ironic-discoverd", "ironic-inspector", "ironic-python-agent", "karbor",
	"keystone", "magnum", "manila", "masakari", "masakari-monitors",
	"mistral", "monasca-agent", "monasca-api", "monasca-ceilometer",
	"monasca-log-api", "monasca-notification", "monasca-persister",
	"monasca-transform", "murano", "neutron", "neutron-fwaas",
	"neutron-lbaas", "neutron-vpnaas", "nova", "octavia", "placement",
	"rally", "sahara", "swift", "tempest", "tripleo-common", "trove", "tuskar",
	"vitrage", "watcher", "zaqar", "zun",
}

// horizonPluginPattern matches Horizon dashboard plugins.
// \w is ASCII only here, so names with non-ASCII letters use the fallback.
const horizonPluginPattern = `(neutron-)?\w+-(dashboard|ui)`
