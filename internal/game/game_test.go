package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadShaderSourcePrefersDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "basic.vert"), []byte("// override"), 0o644))

	src, err := readShaderSource(dir, "basic.vert")
	require.NoError(t, err)
	assert.Equal(t, "// override\x00", src)
}

func TestReadShaderSourceFallsBackToBuiltin(t *testing.T) {
	for _, name := range []string{shaderFlat3D, shaderTextured3D, shaderFlat2D, shaderTextured2D} {
		for _, ext := range []string{".vert", ".frag"} {
			src, err := readShaderSource(t.TempDir(), name+ext)
			require.NoError(t, err, name+ext)
			assert.True(t, strings.HasPrefix(src, "#version 410 core"), name+ext)
			assert.True(t, strings.HasSuffix(src, "\x00"))
		}
	}
}

func TestReadShaderSourceMissing(t *testing.T) {
	_, err := readShaderSource(t.TempDir(), "nope.vert")
	assert.Error(t, err)
}

func TestDecodeImageFlipsRows(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255}) // top
	src.Set(0, 1, color.NRGBA{B: 255, A: 255}) // bottom
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := decodeImage(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, []uint8{0, 0, 255, 255}, img.Pix[0:4], "first row is the bottom of the picture")
	assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[4:8])
}

func TestDecodeImageRejectsNonImage(t *testing.T) {
	_, err := decodeImage([]byte("precision mediump float;"))
	assert.ErrorIs(t, err, errNotImage)
}

func TestCuesAreWholeStereoFrames(t *testing.T) {
	for c := CueDoorsOpen; c <= CueFine; c++ {
		b := generateCue(c)
		require.NotEmpty(t, b)
		assert.Zero(t, len(b)%8)
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestNilAudioIsSilent(t *testing.T) {
	var a *Audio
	assert.NotPanics(t, func() { a.Play(CueFine) })
}

func TestFrameDeltaClamps(t *testing.T) {
	tests := []struct {
		name      string
		now, last float64
		want      float64
	}{
		{"normal frame", 1.016, 1.0, 0.016},
		{"stall", 5.0, 1.0, 0.1},
		{"clock went back", 1.0, 2.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, frameDelta(tt.now, tt.last), 1e-9)
		})
	}
}

func TestDrawableSkipsMinimized(t *testing.T) {
	assert.True(t, drawable(1200, 800))
	assert.False(t, drawable(0, 0))
	assert.False(t, drawable(1200, 0))
	assert.Greater(t, idleWait, 0.0)
	assert.LessOrEqual(t, idleWait, 0.1)
}
