package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"pxrom/logging"
	"pxrom/rom"
	"pxrom/ui"
)

type (
	Args struct {
		Pack        *PackCmd        `arg:"subcommand:pack" help:"build a ROM image from files in the current directory"`
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"extract every file of a ROM image"`
		List        *ListCmd        `arg:"subcommand:list" help:"print the header and directory of a ROM image as JSON"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"pick the files to pack from a list"`
		LogLevel    string          `arg:"--log-level" default:"warn" help:"trace, debug, info, warn or error"`
	}
	PackCmd struct {
		ROMFile string   `arg:"positional,required" placeholder:"ROMFILE"`
		Files   []string `arg:"positional,required" placeholder:"FILE"`
	}
	DumpCmd struct {
		ROMFile string `arg:"positional,required" placeholder:"ROMFILE"`
		OutDir  string `arg:"--out-dir" default:"." help:"where extracted files are written"`
		Force   bool   `help:"overwrite files that already exist"`
	}
	ListCmd struct {
		ROMFile string `arg:"positional,required" placeholder:"ROMFILE"`
	}
	InteractiveCmd struct {
		ROMFile string `arg:"positional,required" placeholder:"ROMFILE"`
	}

	MakeROMArgs struct {
		PackCmd
		LogLevel string `arg:"--log-level" default:"warn" help:"trace, debug, info, warn or error"`
	}
	DumpROMArgs struct {
		ROMFile  string `arg:"positional,required" placeholder:"ROMFILE"`
		Force    bool   `help:"overwrite files that already exist"`
		LogLevel string `arg:"--log-level" default:"warn" help:"trace, debug, info, warn or error"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Build and take apart ROM capsule images for the Epson PX-8, PX-4 and EHT-10.\n",
			"Images are M format (copied into the TPA before running) for 27C256 PROMs.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (MakeROMArgs) Description() string {
	return "Build a 256 kbit M format ROM image. The image must not exist yet.\n"
}

func (DumpROMArgs) Description() string {
	return "Extract every file of a ROM image into the current directory.\n"
}

// parseArgs fills dest from args. Bad arguments come back as rom.ErrUsage
// after the usage line has been printed.
func parseArgs(program string, dest any, args []string, stdout io.Writer, stderr io.Writer) error {
	p, err := arg.NewParser(arg.Config{Program: program}, dest)
	if err != nil {
		return errors.Wrap(err, "parseArgs error")
	}
	err = p.Parse(args)
	if errors.Is(err, arg.ErrHelp) {
		p.WriteHelp(stdout)
		return err
	}
	if err != nil {
		p.WriteUsage(stderr)
		return errors.Wrapf(rom.ErrUsage, "%v", err)
	}
	return nil
}

func StartPacking(romFile string, files []string, logLevel string, stdout io.Writer) error {
	logger := logging.NewLogger("makerom", logLevel, nil)
	if err := rom.NewPacker(rom.DefaultConfig(), logger).PackFile(romFile, files); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Done packing %d file(s) into %s\n", len(files), romFile)
	return nil
}

func StartDumping(romFile string, outDir string, force bool, logLevel string, stdout io.Writer) error {
	logger := logging.NewLogger("dumprom", logLevel, nil)
	paths, err := rom.NewUnpacker(logger).DumpFile(romFile, outDir, force)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(stdout, "Extracted %s\n", path)
	}
	return nil
}

func StartListing(romFile string, stdout io.Writer) error {
	image, err := os.ReadFile(romFile)
	if err != nil {
		return errors.Wrapf(rom.ErrInputOpenFailed, "%q: %v", romFile, err)
	}
	img, err := rom.Parse(image)
	if err != nil {
		return errors.Wrapf(err, "%q", romFile)
	}
	bs, err := json.MarshalIndent(rom.Describe(img), "", "  ")
	if err != nil {
		return errors.Wrap(err, "StartListing error")
	}
	_, err = fmt.Fprintln(stdout, string(bs))
	return err
}

// Run is the pxrom entry point.
func Run(args []string, stdout io.Writer, stderr io.Writer) error {
	parsed := Args{}
	if err := parseArgs("pxrom", &parsed, args, stdout, stderr); err != nil {
		return err
	}

	switch {
	case parsed.Pack != nil:
		return StartPacking(parsed.Pack.ROMFile, parsed.Pack.Files, parsed.LogLevel, stdout)
	case parsed.Dump != nil:
		return StartDumping(parsed.Dump.ROMFile, parsed.Dump.OutDir, parsed.Dump.Force, parsed.LogLevel, stdout)
	case parsed.List != nil:
		return StartListing(parsed.List.ROMFile, stdout)
	case parsed.Interactive != nil:
		logger := logging.NewLogger("pxrom", parsed.LogLevel, nil)
		return ui.Start(parsed.Interactive.ROMFile, logger)
	}
	return errors.Wrap(rom.ErrUsage, "a command is required")
}

// MakeROM is `makerom <romfile> <file1> [file2 ...]`.
func MakeROM(args []string, stdout io.Writer, stderr io.Writer) error {
	parsed := MakeROMArgs{}
	if err := parseArgs("makerom", &parsed, args, stdout, stderr); err != nil {
		return err
	}
	return StartPacking(parsed.ROMFile, parsed.Files, parsed.LogLevel, stdout)
}

// DumpROM is `dumprom <romfile>`.
func DumpROM(args []string, stdout io.Writer, stderr io.Writer) error {
	parsed := DumpROMArgs{}
	if err := parseArgs("dumprom", &parsed, args, stdout, stderr); err != nil {
		return err
	}
	return StartDumping(parsed.ROMFile, ".", parsed.Force, parsed.LogLevel, stdout)
}

// Main runs a command against the process arguments and returns the exit
// code.
func Main(program string, run func(args []string, stdout io.Writer, stderr io.Writer) error) int {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, arg.ErrHelp) {
		return 0
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
	return 1
}
