// Package app implements the application layer for pymod2pkg.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/pymod2pkg/internal/adapters/linear"
	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/core/ports"
	"go.trai.ch/pymod2pkg/internal/engine/translator"
	"go.trai.ch/zerr"
)

// RendererFactory creates the renderer used for one requirements run.
type RendererFactory func(w io.Writer, opts linear.Options) ports.Renderer

func defaultRendererFactory(w io.Writer, opts linear.Options) ports.Renderer {
	return linear.NewRenderer(w, opts)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.ManifestReader
	distro       ports.DistributionProvider
	logger       ports.Logger
	newRenderer  RendererFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.ManifestReader,
	distro ports.DistributionProvider,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		distro:       distro,
		logger:       log,
		newRenderer:  defaultRendererFactory,
	}
}

// WithRendererFactory replaces the renderer used by Requirements.
// This is primarily used for testing.
func (a *App) WithRendererFactory(factory RendererFactory) *App {
	a.newRenderer = factory
	return a
}

// Selection holds the settings shared by every command.
type Selection struct {
	// Dist is the distribution identifier. Empty means detect it.
	Dist string
	// PyVersions are the version tags to print. Empty means use the configuration.
	PyVersions []string
	// ConfigPath is an explicit configuration file. Empty means discover it.
	ConfigPath string
}

// session is the resolved state of one command invocation.
type session struct {
	config   *domain.Config
	dist     string
	family   domain.Family
	versions []domain.VersionTag
	rules    domain.RuleList
}

func (a *App) newSession(ctx context.Context, sel Selection) (*session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := a.loadConfig(sel.ConfigPath)
	if err != nil {
		return nil, err
	}

	dist, err := a.resolveDist(sel.Dist, cfg)
	if err != nil {
		return nil, err
	}

	versions, err := resolveVersions(sel.PyVersions, cfg)
	if err != nil {
		return nil, err
	}

	s := &session{
		config:   cfg,
		dist:     dist,
		family:   translator.ResolveFamily(dist),
		versions: versions,
	}

	// Configured rules take precedence over the built-in table of the family.
	if custom := cfg.RulesFor(s.family); len(custom) > 0 {
		builtin := translator.ResolveRuleList(dist)
		s.rules = make(domain.RuleList, 0, len(custom)+len(builtin))
		s.rules = append(s.rules, custom...)
		s.rules = append(s.rules, builtin...)
	}
	return s, nil
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	if path != "" {
		cfg, err := a.configLoader.LoadFile(path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) resolveDist(flag string, cfg *domain.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg != nil && cfg.Dist != "" {
		return cfg.Dist, nil
	}

	dist, err := a.distro.Distribution()
	if err != nil {
		return "", zerr.Wrap(err, "failed to detect distribution")
	}
	return dist, nil
}

func resolveVersions(flags []string, cfg *domain.Config) ([]domain.VersionTag, error) {
	if len(flags) == 0 {
		if cfg != nil && len(cfg.PyVersions) > 0 {
			return cfg.PyVersions, nil
		}
		return []domain.VersionTag{domain.VersionUnversioned}, nil
	}

	versions := make([]domain.VersionTag, 0, len(flags))
	for _, f := range flags {
		v, err := domain.ParseVersionTag(f)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}
