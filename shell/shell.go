package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/longeffect/config"
	"github.com/domino14/longeffect/effect24"
	"github.com/domino14/longeffect/effect8"
	"github.com/domino14/longeffect/longeffect"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errExit              = errors.New("exit requested")
)

// ShellController owns a count board and a long-effect board and lets a
// user poke at them from a prompt.
type ShellController struct {
	l      *readline.Instance
	config *config.Config

	effects *longeffect.EffectNumBoard
	long    *longeffect.LongEffectBoard
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController sets up the prompt and builds the tables and boards
// for the configured geometry.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc, err := newController(cfg)
	if err != nil {
		return nil, err
	}
	sc.l, err = readline.NewEx(&readline.Config{
		Prompt:          "\033[31mlongeffect>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func newController(cfg *config.Config) (*ShellController, error) {
	sc := &ShellController{config: cfg}
	if err := sc.resetBoards(); err != nil {
		return nil, err
	}
	return sc, nil
}

// resetBoards rebuilds the direction tables for the configured geometry
// and replaces both boards with empty ones.
func (sc *ShellController) resetBoards() error {
	g := sc.config.Geometry()
	ext, err := sc.config.Extractor()
	if err != nil {
		return err
	}
	if err := effect8.Init(g); err != nil {
		return err
	}
	if err := effect24.Init(g); err != nil {
		return err
	}
	sc.effects = longeffect.NewEffectNumBoard()
	sc.effects.SetExtractor(ext)
	sc.long = longeffect.NewLongEffectBoard()
	sc.long.SetExtractor(ext)
	log.Debug().Str("geometry", g.String()).Str("extractor", ext.String()).Msg("boards reset")
	return nil
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		// options are dash-prefixed and always take one value; negative
		// numbers are arguments.
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 && !isNumber(fields[i][1:]) {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Execute runs one line and returns its output.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	handler, ok := commands[cmd.cmd]
	if !ok {
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
	return handler.fn(sc, cmd)
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.Execute(line)
		if errors.Is(err, errExit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
