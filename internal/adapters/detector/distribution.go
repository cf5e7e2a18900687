package detector

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/zerr"
)

// Distribution implements ports.DistributionProvider from the environment and
// the os-release file.
type Distribution struct {
	// Paths are the os-release files tried in order.
	Paths []string
	// Getenv looks up environment variables.
	Getenv func(string) string
	// ReadFile reads a file.
	ReadFile func(string) ([]byte, error)
}

// NewDistribution creates a Distribution reading the standard os-release locations.
func NewDistribution() *Distribution {
	return &Distribution{
		Paths:    []string{domain.OSReleasePath, domain.FallbackOSReleasePath},
		Getenv:   os.Getenv,
		ReadFile: os.ReadFile,
	}
}

// Distribution returns the distribution identifier. The environment variable
// wins over os-release. Missing os-release files yield an empty identifier.
func (d *Distribution) Distribution() (string, error) {
	if id := strings.TrimSpace(d.Getenv(domain.DistEnvVar)); id != "" {
		return id, nil
	}

	for _, path := range d.Paths {
		data, err := d.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", zerr.With(zerr.Wrap(err, domain.ErrDistributionDetectFailed.Error()), "path", path)
		}
		return ParseOSReleaseID(data), nil
	}
	return "", nil
}

// ParseOSReleaseID returns the first word of the ID field of an os-release
// file, unquoted.
func ParseOSReleaseID(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || key != "ID" {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		id, _, _ := strings.Cut(value, " ")
		return id
	}
	return ""
}
