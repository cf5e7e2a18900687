package domain

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = ".pymod2pkg.yaml"

	// DistEnvVar names the environment variable holding the distribution identifier.
	DistEnvVar = "PYMOD2PKG_DIST"

	// LogFormatEnvVar switches diagnostics to JSON records when set to "json".
	LogFormatEnvVar = "PYMOD2PKG_LOG_FORMAT"

	// OSReleasePath is the os-release file consulted for the host distribution.
	OSReleasePath = "/etc/os-release"

	// FallbackOSReleasePath is read when OSReleasePath does not exist.
	FallbackOSReleasePath = "/usr/lib/os-release"
)
