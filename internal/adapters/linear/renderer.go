// Package linear provides a line oriented renderer for translated manifests.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/pymod2pkg/internal/adapters/detector"
	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/ui/output"
	"go.trai.ch/pymod2pkg/internal/ui/style"
	"go.trai.ch/zerr"
)

// Options controls what the renderer prints.
type Options struct {
	// Brief prints bare package names without headers or labels.
	Brief bool
	// Label replaces the family dependency label when not empty.
	Label string
	// Mode overrides output mode detection. ModeAuto detects from the writer.
	Mode detector.OutputMode
}

// Renderer implements ports.Renderer. It writes one block per manifest in the
// format spec files expect, e.g. "Requires: python-foo".
type Renderer struct {
	w      io.Writer
	output *termenv.Output
	opts   Options

	mu sync.Mutex
}

// NewRenderer creates a new Renderer writing to w.
// If w is nil, os.Stdout is used.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	mode := opts.Mode
	if mode == detector.ModeAuto {
		mode = detector.DetectEnvironment(w)
	}

	profile := output.PlainProfile
	if mode == detector.ModeStyled {
		profile = output.ColorProfile
	}

	return &Renderer{
		w:      w,
		output: output.NewWithProfile(w, profile),
		opts:   opts,
	}
}

// RenderManifest writes the packages of a single manifest.
func (r *Renderer) RenderManifest(report domain.ManifestReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	if r.opts.Brief {
		for _, pkg := range report.Packages {
			b.WriteString(pkg)
			b.WriteByte('\n')
		}
	} else {
		r.writeVerbose(&b, report)
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", report.Path)
	}
	return nil
}

func (r *Renderer) writeVerbose(b *strings.Builder, report domain.ManifestReport) {
	header := r.output.String("Processing:").Foreground(r.output.Color(string(style.Slate))).String()
	fmt.Fprintf(b, "%s %s\n", header, report.Path)

	if len(report.Packages) == 0 {
		return
	}

	label := r.opts.Label
	if label == "" {
		label = report.Family.DependencyLabel()
	}
	prefix := r.output.String(label+":").Foreground(r.output.Color(string(style.Iris))).Bold().String() + " "

	if report.Family.JoinsDependencies() {
		b.WriteString(prefix)
		b.WriteString(strings.Join(report.Packages, ", "))
		b.WriteByte('\n')
		return
	}

	for _, pkg := range report.Packages {
		b.WriteString(prefix)
		b.WriteString(pkg)
		b.WriteByte('\n')
	}
}
