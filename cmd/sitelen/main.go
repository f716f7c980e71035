package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"github.com/npillmayer/sitelen"
	"github.com/npillmayer/sitelen/render"
	"github.com/npillmayer/sitelen/vocab"
)

// appTag is used to locate configuration files.
const appTag = "sitelen"

// tracerKeys are the tracer keys of all sitelen packages.
var tracerKeys = []string{
	"sitelen", "sitelen.vocab", "sitelen.lasina", "sitelen.render", "sitelen.reverse", "sitelen.cli",
}

// Configuration keys are separated by '/', as tracer names contain dots.
// Trace levels live at "tracelevel/<tracer name>".
const (
	keyDelim         = "/"
	traceLevelPrefix = "tracelevel"
)

func traceLevelKey(name string) string {
	return traceLevelPrefix + keyDelim + name
}

// defaults are configuration values in effect if neither a configuration
// file nor a flag sets them.
var defaults = map[string]interface{}{
	sitelen.ConfigDirection:              "from",
	sitelen.ConfigLexer:                  "scan",
	render.ConfigCloseScopes:             false,
	traceLevelPrefix + keyDelim + "root": "Error",
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [from | to]\n\n", os.Args[0])
	fmt.Fprintf(out, "Converts lines of stdin between romanized toki pona (from) and sitelen pona glyphs (to).\n\n")
	flag.PrintDefaults()
}

func main() {
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "Interactive mode")
	lexer := flag.String("lexer", "", "Scanner for romanized text [scan|dfa]")
	closeScopes := flag.Bool("close-scopes", false, "Close long pi left open at end of line")
	version := flag.Bool("version", false, "Print vocabulary fingerprint and exit")
	flag.Usage = usage
	flag.Parse()
	if *version {
		fmt.Printf("sitelen vocabulary %s\n", vocab.Fingerprint())
		return
	}
	overrides, err := overridesFromFlags(flag.Args(), *tlevel, *lexer, *closeScopes)
	if err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "%v\n", err)
		usage()
		os.Exit(1)
	}
	conf := setupConfiguration(overrides)
	if err := setupTracing(conf); err != nil {
		fmt.Fprintf(os.Stderr, "cannot set up tracing: %v\n", err)
		os.Exit(2)
	}
	dir, err := sitelen.ConfiguredDirection()
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
	tracer().Infof("direction is %v, lexer is %q", dir, gconf.GetString(sitelen.ConfigLexer))
	if *interactive {
		if err := runREPL(dir); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		return
	}
	if err := convertLines(os.Stdin, os.Stdout, dir); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
}

// overridesFromFlags collects configuration values set on the command line.
// args are the positional arguments; at most one is allowed, naming the
// direction.
func overridesFromFlags(args []string, tlevel, lexer string, closeScopes bool) (map[string]interface{}, error) {
	overrides := make(map[string]interface{})
	switch len(args) {
	case 0:
	case 1:
		if _, err := sitelen.ParseDirection(args[0]); err != nil {
			return nil, err
		}
		overrides[sitelen.ConfigDirection] = args[0]
	default:
		return nil, fmt.Errorf("too many arguments: %s", strings.Join(args, " "))
	}
	switch lexer {
	case "":
	case "scan", "dfa":
		overrides[sitelen.ConfigLexer] = lexer
	default:
		return nil, fmt.Errorf("unknown lexer %q, expected \"scan\" or \"dfa\"", lexer)
	}
	if closeScopes {
		overrides[render.ConfigCloseScopes] = true
	}
	if tlevel != "" {
		overrides[traceLevelKey("root")] = tlevel
		for _, key := range tracerKeys {
			overrides[traceLevelKey(key)] = tlevel
		}
	}
	return overrides, nil
}

// setupConfiguration layers defaults, configuration files and overrides, and
// installs the result as the global configuration.
func setupConfiguration(overrides map[string]interface{}) schuko.Configuration {
	k := koanf.New(keyDelim)
	if err := k.Load(confmap.Provider(defaults, keyDelim), nil); err != nil {
		tracing.Errorf("cannot load configuration defaults: %v", err)
	}
	conf := koanfadapter.New(k, appTag, []string{"nt"})
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf) // loads configuration files
	for key, value := range overrides {
		conf.Set(key, value)
	}
	return conf
}

// setupTracing installs trace2go as the tracer selector, with trace levels
// taken from configuration keys "tracelevel/*".
func setupTracing(conf schuko.Configuration) error {
	if err := trace2go.ConfigureRoot(conf, traceLevelPrefix, trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// convertLines converts in line by line and writes the result to out. Every
// line is flushed to out as soon as it is converted.
func convertLines(in io.Reader, out io.Writer, dir sitelen.Direction) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	for lineno := 1; ; lineno++ {
		line, err := r.ReadString('\n')
		if line != "" {
			if cerr := sitelen.Convert(w, line, dir); cerr != nil {
				return fmt.Errorf("line %d: %w", lineno, cerr)
			}
			if ferr := w.Flush(); ferr != nil {
				return fmt.Errorf("line %d: %w", lineno, ferr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}
