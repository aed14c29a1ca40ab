package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/psfont/internal/fontload"
	"github.com/npillmayer/psfont/psf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'font.psf'
func tracer() tracing.Trace {
	return tracing.Select("font.psf")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.font.psf":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "PSF2 font file to load (plain or gzipped)")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the PSF2 screen font CLI")
	//
	// set up REPL
	repl, err := readline.New("psf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font     *psf.Font
	fontname string
	repl     *readline.Instance
}

func (intp *Intp) loadFont(fontfile string) error {
	if fontfile == "" {
		return fmt.Errorf("no font file given; use flag -font")
	}
	sf, err := fontload.LoadScreenFont(fontfile)
	if err != nil {
		return err
	}
	intp.font = sf.PSF
	intp.fontname = sf.Fontname
	w, h := sf.PSF.BoundingBox()
	pterm.Info.Printf("loaded font %s: %d glyphs of %d×%d px\n",
		sf.Fontname, sf.PSF.NumGlyphs(), w, h)
	for _, warning := range sf.PSF.Warnings() {
		pterm.Warning.Println(warning.String())
	}
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (error, bool) {
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]
	switch cmd {
	case "quit":
		return nil, true
	case "help":
		help()
	case "header":
		printHeader(intp.font.Header())
	case "info":
		printInfo(intp.fontname, intp.font)
	case "glyph":
		if len(args) == 0 {
			return fmt.Errorf("usage: glyph <char>"), false
		}
		return printGlyph(intp.font, args[0]), false
	case "unicode":
		printUnicodeTable(intp.font)
	case "export":
		if len(args) == 0 {
			return fmt.Errorf("usage: export <file.png> [scale]"), false
		}
		scale := 1
		if len(args) > 1 {
			s, err := strconv.Atoi(args[1])
			if err != nil || s < 1 || s > 16 {
				return fmt.Errorf("scale must be a number between 1 and 16"), false
			}
			scale = s
		}
		return exportGlyphSheet(intp.font, args[0], scale), false
	default:
		return fmt.Errorf("unknown command '%s'; try help", cmd), false
	}
	return nil, false
}
