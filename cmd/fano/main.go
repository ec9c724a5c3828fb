package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/axiomhq/fano"
	"github.com/urfave/cli/v2"
)

var (
	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "read the text or bitstream from `FILE` instead of the arguments",
	}
	codesFlag = &cli.StringFlag{
		Name:  "codes",
		Usage: "codeword table `FILE` in symbol<TAB>code form",
	}
	saveCodesFlag = &cli.StringFlag{
		Name:  "save-codes",
		Usage: "write the built codeword table to `FILE`",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "code table output format: table, tsv or json",
	}
	statsFlag = &cli.BoolFlag{
		Name:  "stats",
		Usage: "print entropy and code length statistics",
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration `FILE`",
	}
)

var (
	tableCommand = &cli.Command{
		Name:      "table",
		Usage:     "build and print the code table for a text",
		ArgsUsage: "[text]",
		Flags:     []cli.Flag{inputFlag, saveCodesFlag, formatFlag, statsFlag, configFlag},
		Action:    runTable,
	}
	encodeCommand = &cli.Command{
		Name:      "encode",
		Usage:     "encode a text into a symbolic bitstream",
		ArgsUsage: "[text]",
		Flags:     []cli.Flag{inputFlag, codesFlag, saveCodesFlag, configFlag},
		Action:    runEncode,
	}
	decodeCommand = &cli.Command{
		Name:      "decode",
		Usage:     "decode a symbolic bitstream with a saved code table",
		ArgsUsage: "[bits]",
		Flags:     []cli.Flag{inputFlag, codesFlag, configFlag},
		Action:    runDecode,
	}
	roundtripCommand = &cli.Command{
		Name:      "roundtrip",
		Usage:     "build, encode and decode in one go, verifying the result",
		ArgsUsage: "[text]",
		Flags:     []cli.Flag{inputFlag, formatFlag, statsFlag, configFlag},
		Action:    runRoundtrip,
	}
	dumpConfigCommand = &cli.Command{
		Name:   "dumpconfig",
		Usage:  "print the active configuration in TOML form",
		Flags:  []cli.Flag{formatFlag, statsFlag, codesFlag, configFlag},
		Action: runDumpConfig,
	}
)

// demoText is the classic worked example most textbooks derive the
// algorithm with; roundtrip falls back to it when no input is given.
const demoText = "ABRAACADABRA"

var app = cli.NewApp()

func init() {
	app.Name = "fano"
	app.Usage = "Shannon-Fano prefix code workbench"
	app.Version = "0.1.0"
	app.Commands = []*cli.Command{
		tableCommand,
		encodeCommand,
		decodeCommand,
		roundtripCommand,
		dumpConfigCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fano:", err)
		os.Exit(1)
	}
}

// readInput resolves the text argument of a command: the --input file if
// given, the joined positional arguments otherwise.
func readInput(ctx *cli.Context) (string, error) {
	if path := ctx.String(inputFlag.Name); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return strings.Join(ctx.Args().Slice(), " "), nil
}

func runTable(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	text, err := readInput(ctx)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("empty input builds no code table")
	}
	tbl := fano.BuildString(text)
	if path := ctx.String(saveCodesFlag.Name); path != "" {
		if err := saveCodes(path, tbl); err != nil {
			return err
		}
	}
	return writeTable(os.Stdout, tbl, cfg)
}

func runEncode(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	text, err := readInput(ctx)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("empty input encodes to nothing")
	}

	// With a saved table the text is encoded against it; without one the
	// table is built from the text itself.
	var tbl *fano.Table[rune]
	if cfg.CodesFile != "" {
		if tbl, err = loadCodes(cfg.CodesFile); err != nil {
			return err
		}
	} else {
		tbl = fano.BuildString(text)
		if path := ctx.String(saveCodesFlag.Name); path != "" {
			if err := saveCodes(path, tbl); err != nil {
				return err
			}
		}
	}
	bits, err := fano.EncodeString(tbl, text)
	if err != nil {
		return err
	}
	fmt.Println(bits)
	return nil
}

func runDecode(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.CodesFile == "" {
		return fmt.Errorf("decode needs a code table, pass --%s", codesFlag.Name)
	}
	tbl, err := loadCodes(cfg.CodesFile)
	if err != nil {
		return err
	}
	bits, err := readInput(ctx)
	if err != nil {
		return err
	}
	text, err := fano.DecodeString(tbl, strings.TrimSpace(bits))
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func runRoundtrip(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	text, err := readInput(ctx)
	if err != nil {
		return err
	}
	if text == "" {
		text = demoText
	}

	tbl := fano.BuildString(text)
	bits, err := fano.EncodeString(tbl, text)
	if err != nil {
		return err
	}
	decoded, err := fano.DecodeString(tbl, bits)
	if err != nil {
		return err
	}
	if decoded != text {
		return fmt.Errorf("round trip mismatch: got %q back from %q", decoded, text)
	}

	if err := writeTable(os.Stdout, tbl, cfg); err != nil {
		return err
	}
	fmt.Printf("text:    %s\n", text)
	fmt.Printf("bits:    %s\n", bits)
	fmt.Printf("decoded: %s\n", decoded)
	return nil
}

func runDumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
