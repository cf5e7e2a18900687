// Package requirements reads pip style requirements manifests.
package requirements

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/core/ports"
	"go.trai.ch/zerr"
)

// projectName matches a PEP 508 project name at the start of a requirement.
var projectName = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?`)

// urlScheme matches the start of a direct URL or VCS reference such as
// "https://" or "git+ssh://".
var urlScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.+-]*:`)

// Reader implements ports.ManifestReader for requirements.txt files.
type Reader struct {
	logger ports.Logger
}

// NewReader creates a new Reader. Skipped lines are reported to logger.
func NewReader(logger ports.Logger) *Reader {
	return &Reader{logger: logger}
}

// Read parses the requirements file at path.
func (r *Reader) Read(ctx context.Context, path string) (*domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 -- path comes from the command line
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "failed to open requirements file"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	reqs, err := r.parse(f, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	return &domain.Manifest{Path: path, Requirements: reqs}, nil
}

func (r *Reader) parse(src io.Reader, path string) ([]domain.Requirement, error) {
	var reqs []domain.Requirement

	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "-") {
			r.logger.Warn(domain.Location{Path: path, Line: lineNo}, fmt.Sprintf("skipping option line %q", line))
			continue
		}

		name := ParseName(line)
		if name == "" {
			r.logger.Warn(domain.Location{Path: path, Line: lineNo},
				fmt.Sprintf("skipping line without a project name %q", line))
			continue
		}

		reqs = append(reqs, domain.Requirement{Name: name, Line: line, LineNo: lineNo})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return reqs, nil
}

// ParseName returns the project name of a requirement specifier, dropping
// extras, version specifiers, markers and "name @ url" references. It returns
// an empty string if the line does not start with a project name, including
// bare URLs and VCS references whose scheme would otherwise read as a name.
func ParseName(requirement string) string {
	requirement = strings.TrimSpace(requirement)
	if urlScheme.MatchString(requirement) {
		return ""
	}
	return projectName.FindString(requirement)
}
