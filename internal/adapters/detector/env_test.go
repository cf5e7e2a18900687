package detector_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pymod2pkg/internal/adapters/detector"
)

func TestDetectEnvironment_NonTerminal(t *testing.T) {
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(f))
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		auto     detector.OutputMode
		flag     string
		expected detector.OutputMode
	}{
		{name: "styled override", auto: detector.ModePlain, flag: "styled", expected: detector.ModeStyled},
		{name: "plain override", auto: detector.ModeStyled, flag: "plain", expected: detector.ModePlain},
		{name: "auto keeps detection", auto: detector.ModeStyled, flag: "auto", expected: detector.ModeStyled},
		{name: "empty keeps detection", auto: detector.ModePlain, flag: "", expected: detector.ModePlain},
		{name: "unknown keeps detection", auto: detector.ModePlain, flag: "fancy", expected: detector.ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.auto, tt.flag))
		})
	}
}
