package rulesets

import "go.trai.ch/pymod2pkg/internal/core/domain"

// exact is a shorthand for exact rules carrying only a Python 3 override.
func exact(module, pkg, py3 string) domain.Rule {
	return domain.NewExactRule(module, pkg, domain.WithPy3(py3))
}

var rdoRules = buildRDO()

func buildRDO() domain.RuleList {
	return domain.RuleList{
		exact("ansible", "ansible", ""),
		exact("APScheduler", "python-APScheduler", "python3-APScheduler"),
		exact("Babel", "python-babel", "python3-babel"),
		exact("bandit", "bandit", ""),
		exact("distribute", "python-setuptools", "python3-setuptools"),
		exact("dnspython", "python-dns", "python3-dns"),
		exact("google-api-python-client", "python-google-api-client", "python3-google-api-client"),
		exact("GitPython", "GitPython", "python3-GitPython"),
		exact("heat-agents", "openstack-heat-agents", "openstack-heat-agents"),
		exact("IPy", "python-IPy", "python-IPy-python3"),
		exact("pycrypto", "python-crypto", "python3-crypto"),
		exact("pyzmq", "python-zmq", "python3-zmq"),
		exact("mysql-python", "MySQL-python", "python3-mysql"),
		exact("PyMySQL", "python-PyMySQL", "python3-PyMySQL"),
		exact("PyJWT", "python-jwt", "python3-jwt"),
		exact("MySQL-python", "MySQL-python", "python3-mysql"),
		exact("PasteDeploy", "python-paste-deploy", "python3-paste-deploy"),
		exact("sqlalchemy-migrate", "python-migrate", "python3-migrate"),
		exact("qpid-python", "python-qpid", ""),
		exact("nosexcover", "python-nose-xcover", "python3-nose-xcover"),
		exact("posix_ipc", "python-posix_ipc", "python3-posix_ipc"),
		exact("sysv_ipc", "python-sysv_ipc", "python3-sysv_ipc"),
		exact("oslosphinx", "python-oslo-sphinx", "python3-oslo-sphinx"),
		exact("ovs", "python-openvswitch", "python3-openvswitch"),
		exact("pyinotify", "python-inotify", "python3-inotify"),
		exact("pyScss", "python-scss", "python3-scss"),
		exact("tripleo-incubator", "openstack-tripleo", ""),
		exact("pika-pool", "python-pika_pool", "python3-pika_pool"),
		exact("suds-jurko", "python-suds", "python3-suds"),
		exact("supervisor", "supervisor", "python3-supervisor"),
		exact("wsgi_intercept", "python-wsgi_intercept", "python3-wsgi_intercept"),
		exact("Sphinx", "python-sphinx", "python3-sphinx"),
		exact("sphinx_rtd_theme", "python-sphinx_rtd_theme", "python3-sphinx_rtd_theme"),
		exact("xattr", "pyxattr", "python3-pyxattr"),
		exact("XStatic-term.js", "python-XStatic-termjs", "python3-XStatic-termjs"),
		exact("heat-cfntools", "heat-cfntools", ""),
		exact("horizon", "openstack-dashboard", ""),
		exact("openstack-placement", "openstack-placement", ""),
		exact("networking-vsphere", "openstack-neutron-vsphere", ""),
		exact("networking-l2gw", "openstack-neutron-l2gw", ""),
		exact("neutron-dynamic-routing", "openstack-neutron-dynamic-routing", ""),
		exact("m2crypto", "m2crypto", ""),
		exact("libvirt-python", "libvirt-python", "libvirt-python3"),
		exact("tempest-horizon", "python-horizon-tests-tempest", ""),
		exact("rtslib-fb", "python-rtslib", "python3-rtslib"),
		exact("PyYAML", "python-yaml", "python3-yaml"),
		exact("pyOpenSSL", "python-pyOpenSSL", "python3-pyOpenSSL"),
		exact("semantic_version", "python-semantic_version", "python3-semantic_version"),
		exact("sphinxcontrib-svg2pdfconverter", "python-sphinxcontrib-rsvgconverter", "python3-sphinxcontrib-rsvgconverter"),
		// packaged under their own name
		domain.NewSetRule([]string{
			"numpy", "pyflakes", "pylint",
			"dib-utils",
			"diskimage-builder",
			"graphviz",
			"instack-undercloud",
			"os-apply-config",
			"os-collect-config",
			"os-net-config",
			"os-refresh-config",
			"pexpect",
			"protobuf",
			"sympy",
			"systemd-python",
			"watchdog",
			"pystache", "pysendfile",
		}, python3Suffixed),
		domain.NewSetRule(services, openstackPrefix),
		// XStatic keeps the upstream case
		domain.MustPatternRule(`XStatic.*`, rdoXStatic),
		domain.MustPatternRule(horizonPluginPattern, rdoHorizonPlugin),
		domain.MustPatternRule(`\w+-tempest-plugin`, rdoTempestPlugin),
	}
}

// RDO returns the rule table for Fedora, RHEL, CentOS and RDO.
func RDO() domain.RuleList {
	return rdoRules.Clone()
}
