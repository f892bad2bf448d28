package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"pxrom/rom/rdir"
)

type (
	// PackFunc builds romFile from files, in order.
	PackFunc func(romFile string, files []string) error

	FilePicker struct {
		cwd      string
		romFile  string
		files    []string
		selected map[int]bool
		cursor   int
		pack     PackFunc
		status   string
		err      error
		done     bool
	}

	packedMsg struct {
		err error
	}
)

var ErrNothingSelected = errors.New("no file selected")

// ReadDirectory lists the regular files in path that can be stored under
// their own name.
func ReadDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadDirectory error")
	}
	regular := lo.Filter(
		entries,
		func(entry os.DirEntry, _ int) bool {
			if !entry.Type().IsRegular() {
				return false
			}
			_, _, err := rdir.Split83(entry.Name())
			return err == nil
		},
	)
	return lo.Map(
		regular,
		func(entry os.DirEntry, _ int) string {
			return entry.Name()
		},
	), nil
}

func NewFilePicker(cwd string, romFile string, files []string, pack PackFunc) FilePicker {
	return FilePicker{
		cwd:      cwd,
		romFile:  romFile,
		files:    files,
		selected: map[int]bool{},
		pack:     pack,
	}
}

// Selected returns the picked files in the order they are listed.
func (s FilePicker) Selected() []string {
	return lo.Filter(
		s.files,
		func(_ string, i int) bool {
			return s.selected[i]
		},
	)
}

func (s FilePicker) Err() error {
	return s.err
}

func (s FilePicker) Done() bool {
	return s.done
}

func (s FilePicker) packCmd() tea.Cmd {
	romFile := s.romFile
	files := s.Selected()
	pack := s.pack
	return func() tea.Msg {
		return packedMsg{err: pack(romFile, files)}
	}
}

func (s FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case packedMsg:
		s.err = msg.err
		s.done = msg.err == nil
		return s, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			s.status = "aborted"
			return s, tea.Quit
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.files)-1 {
				s.cursor++
			}
		case " ", "x":
			if len(s.files) > 0 {
				s.selected[s.cursor] = !s.selected[s.cursor]
			}
		case "enter":
			if len(s.Selected()) == 0 {
				s.status = ErrNothingSelected.Error()
				return s, nil
			}
			s.status = "packing..."
			return s, s.packCmd()
		}
	}
	return s, nil
}

func (s FilePicker) Init() tea.Cmd {
	return nil
}

func (s FilePicker) View() string {
	builder := strings.Builder{}
	builder.WriteString("PXROM\n\n")
	builder.WriteString("Current directory: " + s.cwd + "\n")
	builder.WriteString("ROM image: " + s.romFile + "\n\n")

	if len(s.files) == 0 {
		builder.WriteString("No 8.3 files here.\n")
	}
	for i, file := range s.files {
		cursor := " "
		if i == s.cursor {
			cursor = ">"
		}
		checked := " "
		if s.selected[i] {
			checked = "x"
		}
		builder.WriteString(fmt.Sprintf("%s [%s] %s\n", cursor, checked, file))
	}

	builder.WriteString("\nspace: select  enter: pack  q: quit\n")
	if s.status != "" {
		builder.WriteString(s.status + "\n")
	}
	return builder.String()
}
