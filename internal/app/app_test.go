package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pymod2pkg/internal/adapters/detector"
	"go.trai.ch/pymod2pkg/internal/adapters/linear"
	"go.trai.ch/pymod2pkg/internal/app"
	"go.trai.ch/pymod2pkg/internal/core/domain"
	"go.trai.ch/pymod2pkg/internal/core/ports"
	"go.trai.ch/pymod2pkg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader *mocks.MockConfigLoader
	reader *mocks.MockManifestReader
	distro *mocks.MockDistributionProvider
	logger *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		loader: mocks.NewMockConfigLoader(ctrl),
		reader: mocks.NewMockManifestReader(ctrl),
		distro: mocks.NewMockDistributionProvider(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	return app.New(m.loader, m.reader, m.distro, m.logger), m
}

func manifest(path string, names ...string) *domain.Manifest {
	reqs := make([]domain.Requirement, 0, len(names))
	for i, name := range names {
		reqs = append(reqs, domain.Requirement{Name: name, Line: name, LineNo: i + 1})
	}
	return &domain.Manifest{Path: path, Requirements: reqs}
}

func TestApp_Translate(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)

	got, err := a.Translate(context.Background(), []string{"oslo.db", "nova"}, app.Selection{Dist: "fedora"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"python-oslo-db"}, {"openstack-nova"}}, got)
}

func TestApp_Translate_Versions(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)

	got, err := a.Translate(context.Background(), []string{"Babel"}, app.Selection{
		Dist:       "opensuse-leap",
		PyVersions: []string{"py3", "py2"},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"python3-Babel", "python2-Babel"}}, got)
}

func TestApp_Translate_InvalidVersion(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)

	_, err := a.Translate(context.Background(), []string{"Babel"}, app.Selection{
		Dist:       "fedora",
		PyVersions: []string{"py4"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidVersionTag)
}

func TestApp_Translate_NoModules(t *testing.T) {
	a, _ := newTestApp(t)

	_, err := a.Translate(context.Background(), nil, app.Selection{})
	require.ErrorIs(t, err, domain.ErrNoModulesSpecified)
}

func TestApp_Translate_DistSources(t *testing.T) {
	t.Run("config dist beats detection", func(t *testing.T) {
		a, m := newTestApp(t)
		m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{Dist: "ubuntu"}, nil)

		got, err := a.Translate(context.Background(), []string{"PyYAML"}, app.Selection{})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"python-yaml"}}, got)
	})

	t.Run("detected dist", func(t *testing.T) {
		a, m := newTestApp(t)
		m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)
		m.distro.EXPECT().Distribution().Return("sles", nil)

		got, err := a.Translate(context.Background(), []string{"Babel"}, app.Selection{})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"python-Babel"}}, got)
	})

	t.Run("flag beats config", func(t *testing.T) {
		a, m := newTestApp(t)
		m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{Dist: "ubuntu"}, nil)

		got, err := a.Translate(context.Background(), []string{"Babel"}, app.Selection{Dist: "suse"})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"python-Babel"}}, got)
	})

	t.Run("detection failure", func(t *testing.T) {
		a, m := newTestApp(t)
		m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)
		m.distro.EXPECT().Distribution().Return("", errors.New("permission denied"))

		_, err := a.Translate(context.Background(), []string{"Babel"}, app.Selection{})
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to detect distribution")
	})
}

func TestApp_Translate_ConfiguredRules(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().LoadFile("custom.yaml").Return(&domain.Config{
		PyVersions: []domain.VersionTag{domain.VersionPy3},
		Rules: []domain.ScopedRule{
			{Rule: domain.NewExactRule("nova", "nova-custom", domain.WithPy3("python3-nova-custom"))},
			{
				Rule:     domain.NewExactRule("pbr", "pbr-ubuntu"),
				Families: []domain.Family{domain.FamilyUbuntu},
			},
		},
	}, nil)

	got, err := a.Translate(context.Background(), []string{"nova", "pbr", "oslo.db"}, app.Selection{
		Dist:       "fedora",
		ConfigPath: "custom.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"python3-nova-custom"}, {"python3-pbr"}, {"python3-oslo-db"}}, got)
}

func TestApp_Translate_ConfigError(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().LoadFile("broken.yaml").Return(nil, domain.ErrConfigParseFailed)

	_, err := a.Translate(context.Background(), []string{"nova"}, app.Selection{ConfigPath: "broken.yaml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Upstream(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{
		Upstream: domain.RuleList{domain.NewExactRule("openstack-foo", "foo")},
	}, nil)

	got, err := a.Upstream(context.Background(), []string{"openstack-foo", "openstack-placement", "six"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "placement", "six"}, got)
}

func TestApp_Upstream_NoModules(t *testing.T) {
	a, _ := newTestApp(t)

	_, err := a.Upstream(context.Background(), nil, "")
	require.ErrorIs(t, err, domain.ErrNoModulesSpecified)
}

func TestApp_Requirements(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)
	m.reader.EXPECT().Read(gomock.Any(), "requirements.txt").
		Return(manifest("requirements.txt", "pbr", "oslo.db"), nil)
	m.reader.EXPECT().Read(gomock.Any(), "test-requirements.txt").
		Return(manifest("test-requirements.txt", "mock"), nil)

	var out bytes.Buffer
	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection: app.Selection{Dist: "fedora"},
		Paths:     []string{"requirements.txt", "test-requirements.txt"},
		Output:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Processing: requirements.txt\n"+
			"Requires: python-pbr\n"+
			"Requires: python-oslo-db\n"+
			"Processing: test-requirements.txt\n"+
			"Requires: python-mock\n",
		out.String())
}

func TestApp_Requirements_UbuntuBrief(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)
	m.reader.EXPECT().Read(gomock.Any(), "requirements.txt").
		Return(manifest("requirements.txt", "pbr", "PyYAML"), nil)

	var out bytes.Buffer
	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection: app.Selection{Dist: "ubuntu"},
		Paths:     []string{"requirements.txt"},
		Brief:     true,
		Output:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "python-pbr\npython-yaml\n", out.String())
}

func TestApp_Requirements_MultipleVersions(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection: app.Selection{PyVersions: []string{"py2", "py3"}},
		Paths:     []string{"requirements.txt"},
		Output:    io.Discard,
	})
	require.ErrorIs(t, err, domain.ErrMultipleVersionsUnsupported)
}

func TestApp_Requirements_ConfiguredMultipleVersions(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{
		PyVersions: []domain.VersionTag{domain.VersionPy2, domain.VersionPy3},
	}, nil)

	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection: app.Selection{Dist: "fedora"},
		Paths:     []string{"requirements.txt"},
		Output:    io.Discard,
	})
	require.ErrorIs(t, err, domain.ErrMultipleVersionsUnsupported)
}

func TestApp_Requirements_NoPaths(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Requirements(context.Background(), app.RequirementsOptions{})
	require.ErrorIs(t, err, domain.ErrNoManifestsSpecified)
}

func TestApp_Requirements_MissingFileSkipped(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)
	m.reader.EXPECT().Read(gomock.Any(), "missing.txt").
		Return(nil, domain.ErrManifestNotFound)
	m.reader.EXPECT().Read(gomock.Any(), "requirements.txt").
		Return(manifest("requirements.txt", "pbr"), nil)
	m.logger.EXPECT().Warn(domain.Location{Path: "missing.txt"}, gomock.Any())

	var out bytes.Buffer
	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection: app.Selection{Dist: "fedora"},
		Paths:     []string{"missing.txt", "requirements.txt"},
		Output:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "Processing: missing.txt\nProcessing: requirements.txt\nRequires: python-pbr\n", out.String())
}

func TestApp_Requirements_ReadError(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)
	m.reader.EXPECT().Read(gomock.Any(), "requirements.txt").
		Return(nil, domain.ErrManifestReadFailed)

	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection: app.Selection{Dist: "fedora"},
		Paths:     []string{"requirements.txt"},
		Output:    io.Discard,
	})
	require.ErrorIs(t, err, domain.ErrManifestReadFailed)
}

func TestApp_Requirements_RendererOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, m := newTestApp(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var gotOpts linear.Options
	a.WithRendererFactory(func(_ io.Writer, opts linear.Options) ports.Renderer {
		gotOpts = opts
		return renderer
	})

	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)
	m.reader.EXPECT().Read(gomock.Any(), "requirements.txt").
		Return(manifest("requirements.txt", "pbr"), nil)
	renderer.EXPECT().RenderManifest(domain.ManifestReport{
		Path:     "requirements.txt",
		Family:   domain.FamilyUbuntu,
		Packages: []string{"python3-pbr"},
	}).Return(nil)

	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection:  app.Selection{Dist: "ubuntu", PyVersions: []string{"py3"}},
		Paths:      []string{"requirements.txt"},
		Prefix:     "Build-Depends",
		OutputMode: "plain",
	})
	require.NoError(t, err)
	assert.Equal(t, linear.Options{Label: "Build-Depends", Mode: detector.ModePlain}, gotOpts)
}

func TestApp_Requirements_PreservesOrder(t *testing.T) {
	a, m := newTestApp(t)
	m.loader.EXPECT().Load(gomock.Any()).Return(&domain.Config{}, nil)

	paths := []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt", "f.txt"}
	var calls atomic.Int32
	for _, p := range paths {
		m.reader.EXPECT().Read(gomock.Any(), p).DoAndReturn(
			func(_ context.Context, path string) (*domain.Manifest, error) {
				calls.Add(1)
				return manifest(path, "pbr"), nil
			})
	}

	var out bytes.Buffer
	err := a.Requirements(context.Background(), app.RequirementsOptions{
		Selection: app.Selection{Dist: "fedora"},
		Paths:     paths,
		Brief:     false,
		Output:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(len(paths)), calls.Load())

	var want string
	for _, p := range paths {
		want += "Processing: " + p + "\nRequires: python-pbr\n"
	}
	assert.Equal(t, want, out.String())
}

func TestApp_CanceledContext(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Translate(ctx, []string{"nova"}, app.Selection{Dist: "fedora"})
	require.ErrorIs(t, err, context.Canceled)
}
