package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/aefron/calc"
)

var cli struct {
	Define  map[string]float64 `short:"d" help:"Variable definition as name=value (repeatable)."`
	Defs    string             `help:"YAML file of variable definitions." type:"existingfile" placeholder:"FILE"`
	Places  int                `short:"p" default:"-1" help:"Round results to this many decimal places."`
	NoFuncs bool               `help:"Disable the builtin function table."`
	Exprs   []string           `arg:"" optional:"" name:"expr" help:"Expressions to evaluate (stdin if none given)."`
}

func main() {
	log.SetFlags(0)
	kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description("Evaluate infix arithmetic expressions."),
	)

	defs := calc.Definitions{}
	if cli.Defs != "" {
		if err := loadDefs(cli.Defs, defs); err != nil {
			log.Fatal(err)
		}
	}
	for k, v := range cli.Define {
		defs[k] = calc.NewNumber(v)
	}
	funcs := calc.Builtins()
	if cli.NoFuncs {
		funcs = nil
	}

	if len(cli.Exprs) > 0 {
		code := 0
		for _, e := range cli.Exprs {
			if !eval(e, defs, funcs) {
				code = 1
			}
		}
		os.Exit(code)
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		eval(line, defs, funcs)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// loadDefs merges a YAML mapping of name to numeric value into defs.
func loadDefs(path string, defs calc.Definitions) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw map[string]float64
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for k, v := range raw {
		defs[k] = calc.NewNumber(v)
	}
	return nil
}

func eval(src string, defs calc.Definitions, funcs calc.Functions) bool {
	n, err := calc.EvaluateWithDefined(src, defs, funcs)
	if err != nil {
		fmt.Fprintln(os.Stderr, calc.FormatError(err))
		return false
	}
	if cli.Places >= 0 {
		fmt.Println(strconv.FormatFloat(calc.Round(n.Float64(), cli.Places), 'f', -1, 64))
		return true
	}
	fmt.Println(n)
	return true
}
