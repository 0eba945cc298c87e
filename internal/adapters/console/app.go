package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"localstrings/internal/application"
	"localstrings/internal/config"
	"localstrings/internal/domain"
	"localstrings/internal/infrastructure/filesystem"
	"localstrings/internal/infrastructure/i18n"
	"localstrings/internal/infrastructure/logging"
	"localstrings/internal/infrastructure/sourcetree"
	"localstrings/internal/infrastructure/stringsfile"
	"localstrings/internal/infrastructure/swiftgen"
)

const (
	flagConfig       = "config"
	flagTargetDir    = "target-dir"
	flagEnumName     = "enum-name"
	flagSearchDir    = "search-dir"
	flagExtension    = "extension"
	flagLocale       = "locale"
	flagExportDir    = "export-dir"
	flagListAllFiles = "list-all-files"
	flagLogLevel     = "log-level"
)

// app carries the writers shared by every run.
type app struct {
	stdout io.Writer
	stderr io.Writer
}

// NewApp builds the command-line application. stdout receives the usage text
// and the validation report, stderr the logs.
func NewApp(stdout, stderr io.Writer) *cli.App {
	a := &app{stdout: stdout, stderr: stderr}
	return &cli.App{
		Name:            "localstrings",
		Usage:           "generate Swift accessors for Localizable.strings keys, or check that raw keys are gone",
		UsageText:       "localstrings <input_file> <generate|validate|export> [options]",
		Description:     "example: localstrings Support/en.lproj/Localizable.strings generate",
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		// Exit codes are decided by Run, never inside the library.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagConfig, Usage: "TOML configuration file", DefaultText: config.DefaultConfigFile + " if present"},
			&cli.StringFlag{Name: flagTargetDir, Usage: "directory the generated Swift file is written to", DefaultText: config.DefaultTargetDir},
			&cli.StringFlag{Name: flagEnumName, Usage: "name of the generated enum and of its file", DefaultText: config.DefaultEnumName},
			&cli.StringFlag{Name: flagSearchDir, Usage: "root of the source tree checked by validate", DefaultText: "current directory"},
			&cli.StringFlag{Name: flagExtension, Usage: "suffix of the source files", DefaultText: config.DefaultExtension},
			&cli.StringFlag{Name: flagLocale, Usage: "locale of the exported catalog", DefaultText: "from <lang>.lproj, else " + config.DefaultLocale},
			&cli.StringFlag{Name: flagExportDir, Usage: "directory the exported catalog is written to", DefaultText: "target dir"},
			&cli.BoolFlag{Name: flagListAllFiles, Usage: "validate: also list the first file a key is found in"},
			&cli.StringFlag{Name: flagLogLevel, Usage: "DEBUG, INFO, WARN or ERROR", DefaultText: config.DefaultLogLevel},
		},
		Action: a.run,
	}
}

// Run executes the application and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := NewApp(stdout, stderr)
	err := a.RunContext(ctx, hoistFlags(args, a.Flags))
	if err != nil {
		fmt.Fprintln(stderr, ErrorMessage(err))
	}
	return ExitCode(err)
}

func (a *app) run(c *cli.Context) error {
	if c.NArg() != 2 {
		_ = cli.ShowAppHelp(c)
		return fmt.Errorf("%w: expected <input_file> <command>, got %d argument(s)", errUsage, c.NArg())
	}
	inputFile, word := c.Args().Get(0), c.Args().Get(1)

	cfg, err := config.Load(config.Overrides{
		ConfigFile:   c.String(flagConfig),
		InputFile:    inputFile,
		EnumName:     c.String(flagEnumName),
		TargetDir:    c.String(flagTargetDir),
		SearchDir:    c.String(flagSearchDir),
		Extension:    c.String(flagExtension),
		Locale:       c.String(flagLocale),
		ExportDir:    c.String(flagExportDir),
		ListAllFiles: c.Bool(flagListAllFiles),
		LogLevel:     c.String(flagLogLevel),
	})
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, a.stderr)
	defer func() { _ = logger.Sync() }()

	reader, err := stringsfile.Open(cfg.InputFile)
	if err != nil {
		return err
	}
	defer reader.Close()

	cmd, err := domain.ParseCommand(word)
	if errors.Is(err, domain.ErrUnknownCommand) {
		return cli.ShowAppHelp(c)
	}

	writer := filesystem.FileWriter{}
	handler := NewHandler(
		application.NewGenerator(cfg, swiftgen.Renderer{}, writer, logger),
		application.NewValidator(cfg, sourcetree.Scanner{}, logger),
		application.NewExporter(cfg, i18n.Catalog{}, writer, logger),
		a.stdout,
	)
	return handler.Dispatch(c.Context, cmd, reader)
}

// hoistFlags moves the options found anywhere after the program name ahead of
// the positionals, since the flag parser stops at the first positional. A "--"
// is inserted before the positionals; an explicit "--" in args ends option
// scanning and everything after it stays positional.
func hoistFlags(args []string, flags []cli.Flag) []string {
	if len(args) < 2 {
		return args
	}
	takesValue := make(map[string]bool)
	for _, f := range flags {
		_, isBool := f.(*cli.BoolFlag)
		for _, name := range f.Names() {
			takesValue[name] = !isBool
		}
	}

	var options, positionals []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			positionals = append(positionals, rest[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positionals = append(positionals, arg)
			continue
		}
		options = append(options, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if takesValue[name] && i+1 < len(rest) {
			i++
			options = append(options, rest[i])
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[0])
	out = append(out, options...)
	if len(positionals) > 0 {
		out = append(out, "--")
		out = append(out, positionals...)
	}
	return out
}
