package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, model tea.Model, keys ...tea.KeyMsg) (FilePicker, tea.Cmd) {
	var cmd tea.Cmd
	for _, key := range keys {
		model, cmd = model.Update(key)
	}
	picker, ok := model.(FilePicker)
	require.True(t, ok)
	return picker, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestReadDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"HELLO.TXT", "B.COM", "NOEXTENSION", "TOOLONGNAME.BIN"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{1}, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "SUB.DIR"), 0755))

	files, err := ReadDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"B.COM", "HELLO.TXT"}, files)

	_, err = ReadDirectory(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFilePicker_SelectAndPack(t *testing.T) {
	var packedROM string
	var packedFiles []string
	pack := func(romFile string, files []string) error {
		packedROM = romFile
		packedFiles = files
		return nil
	}
	picker := NewFilePicker("/tmp", "out.rom", []string{"A.COM", "B.COM", "C.COM"}, pack)

	picker, _ = press(t, picker, keySpace, keyDown, keyDown, keySpace, keyDown)
	assert.Equal(t, []string{"A.COM", "C.COM"}, picker.Selected())
	assert.Contains(t, picker.View(), "  [x] A.COM")
	assert.Contains(t, picker.View(), "> [x] C.COM")

	picker, cmd := press(t, picker, keyEnter)
	require.NotNil(t, cmd)
	model, cmd := picker.Update(cmd())
	picker = model.(FilePicker)
	require.NotNil(t, cmd)

	assert.Equal(t, "out.rom", packedROM)
	assert.Equal(t, []string{"A.COM", "C.COM"}, packedFiles)
	assert.True(t, picker.Done())
	assert.NoError(t, picker.Err())
}

func TestFilePicker_NothingSelected(t *testing.T) {
	called := false
	pack := func(string, []string) error {
		called = true
		return nil
	}
	picker := NewFilePicker("/tmp", "out.rom", []string{"A.COM"}, pack)

	picker, cmd := press(t, picker, keyEnter)
	assert.Nil(t, cmd)
	assert.False(t, called)
	assert.Contains(t, picker.View(), ErrNothingSelected.Error())
}

func TestFilePicker_PackError(t *testing.T) {
	failure := errors.New("out of directory space")
	pack := func(string, []string) error {
		return failure
	}
	picker := NewFilePicker("/tmp", "out.rom", []string{"A.COM"}, pack)

	picker, cmd := press(t, picker, keySpace, keyEnter)
	model, _ := picker.Update(cmd())
	picker = model.(FilePicker)

	assert.False(t, picker.Done())
	assert.Equal(t, failure, picker.Err())
}

func TestFilePicker_Quit(t *testing.T) {
	picker := NewFilePicker("/tmp", "out.rom", []string{}, nil)

	picker, _ = press(t, picker, keySpace, keyDown)
	assert.Empty(t, picker.Selected())
	assert.Contains(t, picker.View(), "No 8.3 files here.")

	picker, cmd := press(t, picker, keyQuit)
	require.NotNil(t, cmd)
	assert.False(t, picker.Done())
	assert.Contains(t, picker.View(), "aborted")
}

func TestFilePicker_CursorBounds(t *testing.T) {
	picker := NewFilePicker("/tmp", "out.rom", []string{"A.COM", "B.COM"}, nil)

	picker, _ = press(t, picker, tea.KeyMsg{Type: tea.KeyUp}, keySpace)
	assert.Equal(t, []string{"A.COM"}, picker.Selected())

	picker, _ = press(t, picker, keyDown, keyDown, keyDown, keySpace)
	assert.Equal(t, []string{"A.COM", "B.COM"}, picker.Selected())

	picker, _ = press(t, picker, keySpace)
	assert.Equal(t, []string{"A.COM"}, picker.Selected())
}
