// Package config provides the configuration loader for pymod2pkg.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load walks up from cwd looking for the configuration file and reads the
// first one found. Without a file it returns an empty configuration.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, ok := l.findConfigFile(cwd)
	if !ok {
		return &domain.Config{}, nil
	}
	return l.LoadFile(path)
}

// LoadFile reads and validates the configuration file at path.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	var file File
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg, err := l.toDomain(path, &file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	cfg.Path = path
	return cfg, nil
}

func (l *Loader) findConfigFile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(path string, target *File) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func (l *Loader) toDomain(path string, file *File) (*domain.Config, error) {
	cfg := &domain.Config{Dist: file.Dist}

	for _, v := range file.PyVer {
		tag, err := domain.ParseVersionTag(v)
		if err != nil {
			return nil, err
		}
		cfg.PyVersions = append(cfg.PyVersions, tag)
	}

	seen := make(map[string]bool)
	for i := range file.Rules {
		rule, err := buildRule(&file.Rules[i])
		if err != nil {
			return nil, zerr.With(err, "rule", i+1)
		}
		if markSeen(seen, file.Rules[i].Module, rule.Families) {
			l.Logger.Warn(domain.Location{Path: path}, fmt.Sprintf(
				"rule %d for %q is shadowed by an earlier rule for the same module", i+1, file.Rules[i].Module))
		}
		cfg.Rules = append(cfg.Rules, rule)
	}

	for i, dto := range file.Upstream {
		if dto.Module == "" || dto.Upstream == "" {
			err := zerr.With(domain.ErrInvalidRule, "reason", "module and upstream are required")
			return nil, zerr.With(err, "upstream", i+1)
		}
		cfg.Upstream = append(cfg.Upstream, domain.NewExactRule(dto.Module, dto.Upstream))
	}

	return cfg, nil
}

func buildRule(dto *RuleDTO) (domain.ScopedRule, error) {
	if dto.Module == "" || dto.Package == "" {
		return domain.ScopedRule{}, zerr.With(domain.ErrInvalidRule, "reason", "module and package are required")
	}

	families := make([]domain.Family, 0, len(dto.Families))
	for _, name := range dto.Families {
		f, err := domain.ParseFamily(name)
		if err != nil {
			return domain.ScopedRule{}, zerr.With(err, "module", dto.Module)
		}
		families = append(families, f)
	}

	overrides := make([]domain.DistOverride, 0, len(dto.Dists))
	for _, d := range dto.Dists {
		if d.Match == "" || d.Package == "" {
			err := zerr.With(domain.ErrInvalidRule, "reason", "dist overrides need match and package")
			return domain.ScopedRule{}, zerr.With(err, "module", dto.Module)
		}
		o, err := domain.NewDistOverride(d.Match, domain.Triple(
			d.Package,
			defaultString(d.Py2, d.Package),
			defaultString(d.Py3, d.Package),
		))
		if err != nil {
			return domain.ScopedRule{}, zerr.With(err, "module", dto.Module)
		}
		overrides = append(overrides, o)
	}

	rule := domain.NewExactRule(dto.Module, dto.Package,
		domain.WithPy2(dto.Py2),
		domain.WithPy3(dto.Py3),
		domain.WithDistOverrides(overrides...),
	)
	return domain.ScopedRule{Rule: rule, Families: families}, nil
}

// markSeen records module for each family in scope and reports whether an
// earlier rule already covered one of them.
func markSeen(seen map[string]bool, module string, families []domain.Family) bool {
	if len(families) == 0 {
		families = domain.Families()
	}
	shadowed := false
	for _, f := range families {
		key := string(f) + "\x00" + module
		if seen[key] {
			shadowed = true
		}
		seen[key] = true
	}
	return shadowed
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
