package rulesets

import (
	"strings"

	"go.trai.ch/pymod2pkg/internal/core/domain"
)

var separatorReplacer = strings.NewReplacer("_", "-", ".", "-")

// DefaultRDO is the fallback transform for Fedora and RDO based distributions.
// Everything from the first "-python" on is dropped, separators become dashes,
// the name is lowercased and prefixed with "python-".
func DefaultRDO(module string) domain.NameTriple {
	pkg, _, _ := strings.Cut(module, "-python")
	pkg = strings.ToLower(separatorReplacer.Replace(pkg))
	if !strings.HasPrefix(pkg, "python-") {
		pkg = "python-" + pkg
	}
	return domain.Triple(pkg, pkg, strings.ReplaceAll(pkg, "python", "python3"))
}

// DefaultUbuntu is the fallback transform for Ubuntu.
func DefaultUbuntu(module string) domain.NameTriple {
	lower := strings.ToLower(module)
	return domain.Triple("python-"+lower, "python-"+lower, "python3-"+lower)
}

// DefaultSUSE is the fallback transform for openSUSE and SLES. The module
// name keeps its case.
func DefaultSUSE(module string) domain.NameTriple {
	return SUSEFallback("python3")(module)
}

// SUSEFallback returns the SUSE fallback transform using py3Prefix for the
// Python 3 slot, e.g. "python311".
func SUSEFallback(py3Prefix string) domain.TransformFunc {
	return func(module string) domain.NameTriple {
		return domain.Triple("python-"+module, "python2-"+module, py3Prefix+"-"+module)
	}
}

func openstackPrefix(module string) domain.NameTriple {
	return domain.Triple("openstack-"+strings.ToLower(module), "", "")
}

func rdoHorizonPlugin(module string) domain.NameTriple {
	return domain.Triple("openstack-"+strings.ReplaceAll(module, "dashboard", "ui"), "", "")
}

func suseHorizonPlugin(module string) domain.NameTriple {
	return domain.Triple("openstack-horizon-plugin-"+strings.ReplaceAll(module, "dashboard", "ui"), "", "")
}

func rdoXStatic(module string) domain.NameTriple {
	name := separatorReplacer.Replace(module)
	return domain.Triple("python-"+name, "python-"+name, "python3-"+name)
}

func rdoTempestPlugin(module string) domain.NameTriple {
	name := strings.ReplaceAll(module, "tempest-plugin", "tests-tempest")
	return domain.Triple("python-"+name, "python-"+name, "python3-"+name)
}

func sameNamePython3(module string) domain.NameTriple {
	return domain.Triple(module, module, strings.ReplaceAll(module, "python", "python3"))
}

func python3Suffixed(module string) domain.NameTriple {
	return domain.Triple(module, module, "python3-"+module)
}

// substPython replaces "python" with "python2" and py3Prefix in the versioned slots.
func substPython(py3Prefix string) domain.TransformFunc {
	return func(module string) domain.NameTriple {
		return domain.Triple(
			module,
			strings.ReplaceAll(module, "python", "python2"),
			strings.ReplaceAll(module, "python", py3Prefix),
		)
	}
}

func clientModules(projects ...string) []string {
	mods := make([]string, 0, len(projects))
	for _, p := range projects {
		mods = append(mods, "python-"+p+"client")
	}
	return mods
}
