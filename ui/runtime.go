package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"pxrom/rom"
)

// Start lets the user pick files from the working directory and packs
// them into romFile.
func Start(romFile string, logger hclog.Logger) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "ui.Start get current working directory error")
	}
	files, err := ReadDirectory(cwd)
	if err != nil {
		return err
	}

	packer := rom.NewPacker(rom.DefaultConfig(), logger)
	picker := NewFilePicker(cwd, romFile, files, packer.PackFile)
	final, err := tea.NewProgram(picker).StartReturningModel()
	if err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	if result, ok := final.(FilePicker); ok {
		return result.Err()
	}
	return nil
}
