package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/toon/internal/config"
	"github.com/mcncl/toon/internal/errors"
	"github.com/mcncl/toon/internal/facade"
	"github.com/mcncl/toon/internal/jsonconv"
)

// CLI defines the command-line interface (spec 6's CLI surface, sketched
// there for completeness only — it holds no codec logic of its own).
var CLI struct {
	Encode         bool   `help:"Encode input to TOON. Default mode." short:"e"`
	Decode         bool   `help:"Decode TOON input back to a value (or JSON with --json)." short:"d"`
	Indent         int    `help:"Spaces per nesting level (default 2)." short:"n"`
	Delimiter      string `help:"Field delimiter for tabular rows and inline arrays (default \",\")." short:"s"`
	NoLengthMarker bool   `help:"Omit the [N] row-count marker on tabular headers."`
	JSON           bool   `help:"Decode mode only: render the result as pretty-printed JSON." short:"j"`
	Input          string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output         string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config         string `help:"Path to a .toonrc.yml config file." short:"c" type:"path"`
	Version        bool   `help:"Show version information." short:"v"`
	Interactive    bool   `help:"Run in interactive mode, reading stdin until Ctrl+D." short:"I"`
}

// Version is the CLI's reported version.
const Version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("toon"),
		kong.Description("Encode JSON to TOON, or decode TOON back to a value."),
		kong.UsageOnError(),
	)

	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("toon version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: toon --help\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	delimiter, err := cfg.DelimiterByte()
	if err != nil {
		return errors.NewConfigError("invalid delimiter", err)
	}

	input, err := readInput()
	if err != nil {
		return err
	}

	var output string
	if CLI.Decode {
		result, err := facade.Decode(input, facade.DecodeOptions{
			Indent:    cfg.Indent,
			Delimiter: delimiter,
			JSON:      cfg.JSON,
		})
		if err != nil {
			return err
		}
		output, err = renderDecoded(result)
		if err != nil {
			return err
		}
	} else {
		output, err = facade.Encode(input, facade.EncodeOptions{
			Indent:       cfg.Indent,
			Delimiter:    delimiter,
			LengthMarker: cfg.LengthMarker,
		})
		if err != nil {
			return err
		}
	}

	return writeOutput(output)
}

// renderDecoded turns facade.Decode's result into printable text: the
// pretty-printed JSON string directly when --json was set, or a JSON
// rendering of the Value tree otherwise, since a Value tree has no natural
// textual form of its own outside the codec.
func renderDecoded(result any) (string, error) {
	if s, ok := result.(string); ok {
		return s, nil
	}
	b, err := jsonconv.ToJSON(result, "  ")
	if err != nil {
		return "", errors.NewOutputError("failed to render decoded value", err)
	}
	return string(b), nil
}

// resolveConfig layers CLI flags over an optional config file over the
// codec defaults (internal/config).
func resolveConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	overrides := config.CLIOverrides{
		Indent:          CLI.Indent,
		Delimiter:       CLI.Delimiter,
		LengthMarkerSet: CLI.NoLengthMarker,
		LengthMarker:    !CLI.NoLengthMarker,
		JSON:            CLI.JSON,
	}

	cfg, err := config.LoadConfigWithCLI(configPath, overrides)
	if err != nil {
		return nil, errors.NewConfigError("failed to load config", err)
	}
	return cfg, nil
}

// readInput reads the raw text the facade will operate on, from a file,
// piped stdin, or interactive stdin.
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", CLI.Input), errors.ErrFileNotFound)
			}
			return "", errors.NewInputError(fmt.Sprintf("failed to open file '%s'", CLI.Input), err)
		}
		if len(data) == 0 {
			return "", errors.NewInputError(fmt.Sprintf("input file '%s' is empty", CLI.Input), errors.ErrFileEmpty)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}

// writeOutput writes the result to a file or stdout.
func writeOutput(text string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(text), 0o644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Wrote output to %s\n", CLI.Output)
		return nil
	}

	if _, err := fmt.Println(strings.TrimSpace(text)); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput lets a user paste input and signal completion with
// Ctrl+D (EOF).
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "TOON Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your input below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			builder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		builder.WriteString(line)
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing...")
	return text, nil
}
