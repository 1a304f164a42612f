package dialog

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestNewPromptDefaults(t *testing.T) {
	p := NewPrompt("Proceed?", "/tmp/icon.png")
	assert.Equal(t, "Confirmation Required", p.Title)
	assert.Equal(t, "Proceed?", p.Message)
	assert.Equal(t, "Accept", p.AcceptLabel)
	assert.Equal(t, "Decline", p.DeclineLabel)
	assert.Equal(t, "/tmp/icon.png", p.IconPath)
}

func TestResolveIcon(t *testing.T) {
	dir := t.TempDir()
	pngPath := writePNG(t, dir, "icon.png")
	// Content decides, not the extension.
	disguised := writePNG(t, dir, "icon.dat")

	textPath := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(textPath, []byte("just some text, not an image\n"), 0644))

	// Sniffs as image/x-xcf, which the dialog cannot draw.
	xcfPath := filepath.Join(dir, "layers.png")
	require.NoError(t, os.WriteFile(xcfPath, append([]byte("gimp xcf v011\x00"), make([]byte, 64)...), 0644))

	emptyPath := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0644))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"png file", pngPath, pngPath},
		{"png without image extension", disguised, disguised},
		{"text with png extension", textPath, ""},
		{"image type the dialog cannot draw", xcfPath, ""},
		{"empty file", emptyPath, ""},
		{"directory", dir, ""},
		{"missing file", "/nonexistent/path.png", ""},
		{"empty path", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIcon(tt.path))
		})
	}
}

func TestResolveIconRelativePath(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "rocket.png")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got := ResolveIcon("rocket.png")
	require.NotEmpty(t, got)
	assert.True(t, filepath.IsAbs(got), "icon path %q must be absolute", got)
	assert.Equal(t, "rocket.png", filepath.Base(got))

	// Same file, whatever symlinks the temp dir goes through.
	want, err := os.Stat(filepath.Join(dir, "rocket.png"))
	require.NoError(t, err)
	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, os.SameFile(want, info))

	assert.Empty(t, ResolveIcon("missing.png"))
}

func TestScriptArgs(t *testing.T) {
	p := NewPrompt(`Say "hi" \ bye`, "")
	assert.Equal(t, []string{`Say "hi" \ bye`, "Confirmation Required", "Accept", "Decline"}, scriptArgs(p))

	p.IconPath = "/tmp/icon.png"
	args := scriptArgs(p)
	require.Len(t, args, 5)
	assert.Equal(t, "/tmp/icon.png", args[4])
}

func TestDialogScriptShape(t *testing.T) {
	require.NotEmpty(t, dialogScript)
	assert.Equal(t, "on run argv", dialogScript[0])
	assert.Equal(t, "end run", dialogScript[len(dialogScript)-1])

	script := strings.Join(dialogScript, "\n")
	assert.Contains(t, script, "activate", "dialog must be brought to the foreground")
	assert.Contains(t, script, "default button acceptLabel")
	assert.Contains(t, script, "cancel button declineLabel")
	assert.Contains(t, script, "buttons {declineLabel, acceptLabel}")
}

func TestZenityArgs(t *testing.T) {
	p := NewPrompt("Delete <b>everything</b>?", "")
	assert.Equal(t, []string{
		"--question",
		"--no-markup",
		"--title=Confirmation Required",
		"--text=Delete <b>everything</b>?",
		"--ok-label=Accept",
		"--cancel-label=Decline",
	}, zenityArgs(p))

	p.IconPath = "/tmp/icon.png"
	args := zenityArgs(p)
	assert.Equal(t, "--window-icon=/tmp/icon.png", args[len(args)-1])
}

func TestZenityAccepted(t *testing.T) {
	tests := []struct {
		code    int
		want    bool
		wantErr bool
	}{
		{0, true, false},
		{1, false, false},
		{5, false, false},
		{255, false, true},
		{-1, false, true},
	}
	for _, tt := range tests {
		got, err := zenityAccepted(tt.code)
		assert.Equal(t, tt.want, got, "code %d", tt.code)
		if tt.wantErr {
			assert.Error(t, err, "code %d", tt.code)
		} else {
			assert.NoError(t, err, "code %d", tt.code)
		}
	}
}
