package requirements_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pymod2pkg/internal/adapters/requirements"
	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "oslo.config>=5.2.0", want: "oslo.config"},
		{line: "pbr!=2.1.0,>=2.0.0", want: "pbr"},
		{line: "requests[security] >= 2.14", want: "requests"},
		{line: "Babel", want: "Babel"},
		{line: "  six  ", want: "six"},
		{line: "futures;python_version=='2.7'", want: "futures"},
		{line: "sphinx_rtd_theme~=1.0", want: "sphinx_rtd_theme"},
		{line: "pip @ https://github.com/pypa/pip/archive/1.3.1.zip", want: "pip"},
		{line: "XStatic-term.js==0.0.7.0", want: "XStatic-term.js"},
		{line: "x", want: "x"},
		{line: "./local/path", want: ""},
		{line: "git+https://opendev.org/openstack/nova#egg=nova", want: ""},
		{line: "https://example.com/foo-1.0.tar.gz", want: ""},
		{line: "file:///srv/wheels/six-1.16.0-py2.py3-none-any.whl", want: ""},
		{line: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, requirements.ParseName(tt.line))
		})
	}
}

func TestReader_Read(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeManifest(t, `# The order of packages is significant
pbr!=2.1.0,>=2.0.0 # Apache-2.0

oslo.config>=5.2.0  # Apache-2.0
-r other-requirements.txt
Babel!=2.4.0,>=2.3.4
    # indented comment
./vendored
PyYAML>=3.12;python_version>='3.6'
`)
	mockLogger.EXPECT().Warn(domain.Location{Path: path, Line: 5}, gomock.Any())
	mockLogger.EXPECT().Warn(domain.Location{Path: path, Line: 8}, gomock.Any())

	reader := requirements.NewReader(mockLogger)
	manifest, err := reader.Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, manifest.Path)
	require.Len(t, manifest.Requirements, 4)

	names := make([]string, 0, len(manifest.Requirements))
	for _, req := range manifest.Requirements {
		names = append(names, req.Name)
	}
	assert.Equal(t, []string{"pbr", "oslo.config", "Babel", "PyYAML"}, names)

	assert.Equal(t, domain.Requirement{
		Name:   "pbr",
		Line:   "pbr!=2.1.0,>=2.0.0",
		LineNo: 2,
	}, manifest.Requirements[0])
	assert.Equal(t, 4, manifest.Requirements[1].LineNo)
}

func TestReader_Read_URLLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := writeManifest(t, `pbr>=2.0.0
git+https://opendev.org/openstack/nova#egg=nova
https://example.com/foo-1.0.tar.gz
pip @ https://github.com/pypa/pip/archive/1.3.1.zip
`)
	mockLogger.EXPECT().Warn(domain.Location{Path: path, Line: 2}, gomock.Any())
	mockLogger.EXPECT().Warn(domain.Location{Path: path, Line: 3}, gomock.Any())

	manifest, err := requirements.NewReader(mockLogger).Read(context.Background(), path)
	require.NoError(t, err)

	names := make([]string, 0, len(manifest.Requirements))
	for _, req := range manifest.Requirements {
		names = append(names, req.Name)
	}
	assert.Equal(t, []string{"pbr", "pip"}, names)
}

func TestReader_Read_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := requirements.NewReader(mocks.NewMockLogger(ctrl))

	manifest, err := reader.Read(context.Background(), writeManifest(t, "\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, manifest.Requirements)
}

func TestReader_Read_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := requirements.NewReader(mocks.NewMockLogger(ctrl))

	_, err := reader.Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestReader_Read_Directory(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := requirements.NewReader(mocks.NewMockLogger(ctrl))

	_, err := reader.Read(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestReadFailed.Error())
	assert.NotErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestReader_Read_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := requirements.NewReader(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reader.Read(ctx, writeManifest(t, "six\n"))
	require.ErrorIs(t, err, context.Canceled)
}
