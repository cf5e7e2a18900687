package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pymod2pkg/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNewWithProfile_Plain(t *testing.T) {
	buf := &bytes.Buffer{}
	out := output.NewWithProfile(buf, output.PlainProfile)

	_, err := out.WriteString(out.String("plain").Bold().String())
	assert.NoError(t, err)
	assert.Equal(t, "plain", buf.String())
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}
