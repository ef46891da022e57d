package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/MRehanMehdi/automata-regex-engine/internal/config"
	"github.com/MRehanMehdi/automata-regex-engine/internal/definition"
	"github.com/MRehanMehdi/automata-regex-engine/internal/render"
	"github.com/MRehanMehdi/automata-regex-engine/regexlib"
)

const usage = "usage: regexviz -re <expr> | -def <file> [-stage nfa|dfa|min] [-format table|dot|yaml] [-in s]... [-check] [-o file] [-png] [-config file] [-color]"

var errUsage = errors.New(usage)

// inputs collects repeated -in flags.
type inputs []string

func (i *inputs) String() string { return strings.Join(*i, ",") }

func (i *inputs) Set(s string) error {
	*i = append(*i, s)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("regexviz: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("regexviz", flag.ContinueOnError)
	pattern := fs.String("re", "", "regular expression over letters and digits with + * ( )")
	defFile := fs.String("def", "", "DFA definition file (.dfa, .yaml, .yml or .json)")
	stage := fs.String("stage", config.StageMin, "stage to print: nfa, dfa or min")
	format := fs.String("format", config.FormatTable, "output format: table, dot or yaml")
	outFile := fs.String("o", "-", "output file, - for stdout")
	pngFlag := fs.Bool("png", false, "render PNG via dot -Tpng")
	checkFlag := fs.Bool("check", false, "check that minimization kept the language")
	colorFlag := fs.Bool("color", false, "colour verdicts")
	configFile := fs.String("config", "", "YAML configuration file")
	var in inputs
	fs.Var(&in, "in", "string to simulate on the minimized DFA (repeatable)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	// flags given explicitly win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "stage":
			cfg.Stage = *stage
		case "format":
			cfg.Format = *format
		case "o":
			cfg.Output = *outFile
		case "png":
			cfg.PNG = *pngFlag
		case "check":
			cfg.Check = *checkFlag
		case "color":
			cfg.Color = *colorFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	render.SetColor(cfg.Color)

	if (*pattern == "") == (*defFile == "") {
		return errUsage
	}

	var (
		shown   regexlib.Automaton
		title   string
		raw     *regexlib.DFA
		minimal *regexlib.DFA
	)
	if *pattern != "" {
		re, err := regexlib.Compile(*pattern)
		if err != nil {
			return fmt.Errorf("compile %q: %w", *pattern, err)
		}
		raw, minimal = re.RawDFA(), re.DFA()
		if cfg.Stage == config.StageNFA {
			shown, title = re.NFA(), "Thompson NFA"
		}
	} else {
		if cfg.Stage == config.StageNFA {
			return errors.New("-def has no NFA stage")
		}
		d, err := definition.Load(*defFile)
		if err != nil {
			return err
		}
		raw, minimal = d, regexlib.Minimize(d)
	}
	switch cfg.Stage {
	case config.StageDFA:
		shown, title = raw, "DFA (subset construction)"
	case config.StageMin:
		shown, title = minimal, "Minimized DFA"
	}

	var buf bytes.Buffer
	switch cfg.Format {
	case config.FormatTable:
		render.Table(&buf, title, shown)
	case config.FormatDOT:
		render.DOT(&buf, shown)
	case config.FormatYAML:
		if err := definition.Encode(&buf, shown.(*regexlib.DFA)); err != nil {
			return err
		}
	}
	if err := write(cfg, buf.Bytes(), stdout); err != nil {
		return err
	}

	for _, s := range in {
		steps, ok := regexlib.Simulate(minimal, s)
		render.Trace(stdout, s, steps, ok)
	}

	if cfg.Check {
		if ok, word := regexlib.Equivalent(raw, minimal); ok {
			fmt.Fprintln(stdout, "Minimized DFA is equivalent to the DFA")
		} else {
			fmt.Fprintf(stdout, "Minimized DFA differs from the DFA on %q\n", word)
		}
	}
	return nil
}

func write(cfg config.Config, data []byte, stdout io.Writer) error {
	if cfg.PNG {
		cmd := exec.Command("dot", "-Tpng", "-o", cfg.Output)
		cmd.Stdin = bytes.NewReader(data)
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		fmt.Fprintf(stdout, "PNG written to %s\n", cfg.Output)
		return nil
	}
	if cfg.Output == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("cannot create %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(stdout, "%s written to %s\n", strings.ToUpper(cfg.Format), cfg.Output)
	return nil
}
