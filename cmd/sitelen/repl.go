package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"

	"github.com/npillmayer/sitelen"
	"github.com/npillmayer/sitelen/lasina"
)

// runREPL starts interactive mode, where every line typed is converted in the
// current direction.
func runREPL(dir sitelen.Direction) error {
	initDisplay()
	repl, err := readline.New(prompt(dir))
	if err != nil {
		return fmt.Errorf("cannot start interactive mode: %w", err)
	}
	defer repl.Close()
	intp := &Intp{dir: dir, repl: repl}
	pterm.Info.Println("Welcome to sitelen") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func prompt(dir sitelen.Direction) string {
	return dir.String() + "> "
}

// Intp is our interpreter object
type Intp struct {
	dir  sitelen.Direction
	repl *readline.Instance
}

// REPL reads and evaluates lines until EOF or :quit.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("mi tawa!")
}

var errUnknownCommand = errors.New("unknown command")

// Eval evaluates a line of input. Lines starting with ':' are commands, all
// other lines are converted and printed.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		var sb strings.Builder
		if err := sitelen.Convert(&sb, line, intp.dir); err != nil {
			return false, err
		}
		pterm.Info.Println(sb.String())
		return false, nil
	}
	cmd, arg := line[1:], ""
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd, arg = cmd[:i], cmd[i+1:]
	}
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch cmd {
	case "quit", "q":
		return true, nil
	case "from", "to":
		dir, err := sitelen.ParseDirection(cmd)
		if err != nil {
			return false, err
		}
		intp.setDirection(dir)
	case "tokens", "t":
		root := pterm.NewTreeFromLeveledList(tokenTree(arg))
		pterm.DefaultTree.WithRoot(root).Render()
	default:
		return false, fmt.Errorf("%w :%s", errUnknownCommand, cmd)
	}
	return false, nil
}

func (intp *Intp) setDirection(dir sitelen.Direction) {
	intp.dir = dir
	if intp.repl != nil {
		intp.repl.SetPrompt(prompt(dir))
	}
	tracer().Infof("direction is now %v", dir)
}

// spanner is implemented by token sequences which know the input position of
// the last token.
type spanner interface {
	Span() lasina.Span
}

// tokenTree lists the tokens of romanized text for display as a tree. Word
// tokens list their glyph, Other tokens list the names of their runes.
func tokenTree(text string) pterm.LeveledList {
	ll := pterm.LeveledList{{Level: 0, Text: fmt.Sprintf("%q", text)}}
	seq := sitelen.Tokens(text)
	for t, ok := seq.Next(); ok; t, ok = seq.Next() {
		label := t.String()
		if sp, ok := seq.(spanner); ok {
			label = fmt.Sprintf("%s @%v", label, sp.Span())
		}
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: label})
		switch {
		case t.Kind == lasina.WordToken:
			ll = append(ll, pterm.LeveledListItem{
				Level: 2,
				Text:  fmt.Sprintf("%U %s", t.Word.Sitelen(), string(t.Word.Sitelen())),
			})
		case t.IsPunct():
			if m, ok := t.Modifier(); ok {
				ll = append(ll, pterm.LeveledListItem{
					Level: 2,
					Text:  fmt.Sprintf("%U %v", m.Sitelen(), m),
				})
			}
		case t.IsOther():
			ll = appendRuneNames(ll, t.Text, 2)
		}
	}
	return ll
}

func appendRuneNames(ll pterm.LeveledList, text string, level int) pterm.LeveledList {
	for _, r := range text {
		name := runenames.Name(r)
		if name == "" {
			name = "?"
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%U %s", r, name),
		})
	}
	return ll
}
