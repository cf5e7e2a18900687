package app

import (
	"context"

	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/engine/translator"
	"go.trai.ch/zerr"
)

// Translate returns the package names of every module, one entry per module
// holding one name per requested version.
func (a *App) Translate(ctx context.Context, modules []string, sel Selection) ([][]string, error) {
	if len(modules) == 0 {
		return nil, domain.ErrNoModulesSpecified
	}

	s, err := a.newSession(ctx, sel)
	if err != nil {
		return nil, err
	}

	results := make([][]string, 0, len(modules))
	for _, module := range modules {
		names, err := translator.ModuleToPackages(module, s.dist, s.rules, s.versions...)
		if err != nil {
			return nil, zerr.With(err, "module", module)
		}
		results = append(results, names)
	}
	return results, nil
}

// Upstream returns the upstream project name of every module.
func (a *App) Upstream(ctx context.Context, modules []string, configPath string) ([]string, error) {
	if len(modules) == 0 {
		return nil, domain.ErrNoModulesSpecified
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(modules))
	for _, module := range modules {
		names = append(names, translator.ModuleToUpstream(module, cfg.Upstream...))
	}
	return names, nil
}
