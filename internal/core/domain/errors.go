package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersionTag is returned when a version tag is not one of py, py2 or py3.
	ErrInvalidVersionTag = zerr.New("invalid version tag")

	// ErrMultipleVersionsUnsupported is returned when a manifest translation is
	// asked for more than one version tag.
	ErrMultipleVersionsUnsupported = zerr.New("please select only one version of python")

	// ErrNoModulesSpecified is returned when no module names are given.
	ErrNoModulesSpecified = zerr.New("no modules specified")

	// ErrNoManifestsSpecified is returned when no requirements files are given.
	ErrNoManifestsSpecified = zerr.New("no requirements files specified")

	// ErrManifestNotFound is returned when a requirements file does not exist.
	ErrManifestNotFound = zerr.New("requirements file not found")

	// ErrManifestReadFailed is returned when a requirements file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read requirements file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidRule is returned when a configured rule is missing required fields.
	ErrInvalidRule = zerr.New("invalid rule")

	// ErrInvalidRulePattern is returned when a rule pattern is not a valid regular expression.
	ErrInvalidRulePattern = zerr.New("invalid rule pattern")

	// ErrUnknownFamily is returned when a family name is not recognized.
	ErrUnknownFamily = zerr.New("unknown distribution family")

	// ErrDistributionDetectFailed is returned when the host distribution cannot be read.
	ErrDistributionDetectFailed = zerr.New("failed to detect distribution")

	// ErrRenderFailed is returned when output cannot be written.
	ErrRenderFailed = zerr.New("failed to write output")
)
