package app

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"

	"go.trai.ch/pymod2pkg/internal/adapters/detector"
	"go.trai.ch/pymod2pkg/internal/adapters/linear"
	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/engine/translator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RequirementsOptions configures the Requirements method.
type RequirementsOptions struct {
	Selection
	// Paths are the requirements files, rendered in this order.
	Paths []string
	// Brief prints bare package names.
	Brief bool
	// Prefix replaces the dependency label of the family.
	Prefix string
	// Output receives the rendered manifests. Nil means os.Stdout.
	Output io.Writer
	// OutputMode is one of auto, styled or plain. Empty means auto.
	OutputMode string
}

// Requirements translates every requirements file and renders the resulting
// package lists. Missing files are reported and skipped.
func (a *App) Requirements(ctx context.Context, opts RequirementsOptions) error {
	if len(opts.Paths) == 0 {
		return domain.ErrNoManifestsSpecified
	}
	if len(opts.PyVersions) > 1 {
		return zerr.With(zerr.Wrap(domain.ErrMultipleVersionsUnsupported, "invalid version selection"),
			"versions", opts.PyVersions)
	}

	s, err := a.newSession(ctx, opts.Selection)
	if err != nil {
		return err
	}
	if len(s.versions) > 1 {
		return zerr.With(zerr.Wrap(domain.ErrMultipleVersionsUnsupported, "invalid configured versions"),
			"versions", s.versions)
	}

	reports, err := a.translateManifests(ctx, s, opts.Paths)
	if err != nil {
		return err
	}

	w := opts.Output
	if w == nil {
		w = os.Stdout
	}
	renderer := a.newRenderer(w, linear.Options{
		Brief: opts.Brief,
		Label: opts.Prefix,
		Mode:  detector.ResolveMode(detector.ModeAuto, opts.OutputMode),
	})
	for _, report := range reports {
		if report == nil {
			continue
		}
		if err := renderer.RenderManifest(*report); err != nil {
			return err
		}
	}
	return nil
}

// translateManifests reads and translates the manifests concurrently. The
// result keeps the order of paths; skipped manifests are nil.
func (a *App) translateManifests(
	ctx context.Context,
	s *session,
	paths []string,
) ([]*domain.ManifestReport, error) {
	reports := make([]*domain.ManifestReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			manifest, err := a.reader.Read(ctx, path)
			if err != nil {
				if errors.Is(err, domain.ErrManifestNotFound) {
					a.logger.Warn(domain.Location{Path: path}, domain.ErrManifestNotFound.Error()+", skipping")
					reports[i] = &domain.ManifestReport{Path: path, Family: s.family}
					return nil
				}
				return err
			}

			report, err := translateManifest(path, manifest, s)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func translateManifest(path string, manifest *domain.Manifest, s *session) (*domain.ManifestReport, error) {
	report := &domain.ManifestReport{
		Path:     path,
		Family:   s.family,
		Packages: make([]string, 0, len(manifest.Requirements)),
	}

	for _, req := range manifest.Requirements {
		names, err := translator.ModuleToPackages(req.Name, s.dist, s.rules, s.versions...)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "requirement", req.Name), "line", req.LineNo)
		}
		report.Packages = append(report.Packages, names...)
	}
	return report, nil
}
