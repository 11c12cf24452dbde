package shell

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/longeffect/config"
	"github.com/domino14/longeffect/effect24"
	"github.com/domino14/longeffect/effect8"
	"github.com/domino14/longeffect/geometry"
)

type command struct {
	usage string
	fn    func(sc *ShellController, cmd *shellcmd) (*Response, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":       {"help - this list", (*ShellController).help},
		"geometry":   {"geometry - board size and extractor", (*ShellController).geometry},
		"mask":       {"mask <sq> - on-board neighbours of sq", (*ShellController).mask},
		"mask24":     {"mask24 <sq> - on-board cells of the 5x5 block around sq", (*ShellController).mask24},
		"delta":      {"delta <dir> - square offset of a direction (NE, E+E, ...)", (*ShellController).delta},
		"set":        {"set <sq> <n> - set the effect count of sq", (*ShellController).set},
		"inc":        {"inc <sq> - add one effect to sq", (*ShellController).inc},
		"dec":        {"dec <sq> - remove one effect from sq", (*ShellController).dec},
		"count":      {"count <sq> - effect count of sq", (*ShellController).count},
		"around8":    {"around8 <sq> - neighbours with at least one effect", (*ShellController).around8},
		"around8gt1": {"around8gt1 <sq> - neighbours with two or more effects", (*ShellController).around8gt1},
		"long":       {"long <sq> <dir>... - add long effects arriving at sq", (*ShellController).addLong},
		"dirs":       {"dirs <sq> - long effect directions at sq", (*ShellController).dirs},
		"random":     {"random [-max n] - fill the count board with random values", (*ShellController).random},
		"clear":      {"clear - zero both boards", (*ShellController).clear},
		"show":       {"show - print the count board", (*ShellController).show},
		"hash":       {"hash - fingerprints of both boards", (*ShellController).hash},
		"setconfig":  {"setconfig <key> <value> - change files, ranks, extractor or debug", (*ShellController).setConfig},
		"exit":       {"exit - leave the shell", (*ShellController).exit},
	}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	names := lo.Keys(commands)
	sort.Strings(names)
	lines := lo.Map(names, func(n string, _ int) string {
		return "  " + commands[n].usage
	})
	return msg("commands:\n" + strings.Join(lines, "\n")), nil
}

func (sc *ShellController) geometry(cmd *shellcmd) (*Response, error) {
	g := sc.effects.Geometry()
	return msg(fmt.Sprintf("%v board, %d squares, stride %d, extractor %v",
		g, g.SquareCount(), g.Stride(), sc.effects.Extractor())), nil
}

func (sc *ShellController) squareArg(cmd *shellcmd, i int) (geometry.Square, error) {
	if len(cmd.args) <= i {
		return geometry.NoSquare, errors.New("need a square, e.g. 55")
	}
	return sc.effects.Geometry().ParseSquare(cmd.args[i])
}

func directList(ds effect8.Directions) string {
	names := lo.Map(ds.Directs(), func(d effect8.Direct, _ int) string {
		return d.String()
	})
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, " ")
}

func (sc *ShellController) mask(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	m := sc.effects.BoardMask(sq)
	return msg(m.String() + directList(m)), nil
}

func (sc *ShellController) mask24(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	m := effect24.BoardMask(sq)
	return msg(fmt.Sprintf("%v%d cells", m, m.Count())), nil
}

func parseDirect24(s string) (effect24.Direct, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for d := effect24.DirectZero; d < effect24.DirectNB; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return effect24.DirectNB, false
}

func (sc *ShellController) delta(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need a direction")
	}
	if d, ok := effect8.ParseDirect(cmd.args[0]); ok {
		return msg(fmt.Sprintf("%v: %d", d, effect8.DirectToDelta(d))), nil
	}
	if d, ok := parseDirect24(cmd.args[0]); ok {
		return msg(fmt.Sprintf("%v: %d (bit %d)", d, effect24.DirectToDelta(d), d)), nil
	}
	return nil, fmt.Errorf("unknown direction %q", cmd.args[0])
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: set <sq> <n>")
	}
	n, err := strconv.ParseUint(cmd.args[1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("count must be 0-255: %w", err)
	}
	sc.effects.Set(sq, uint8(n))
	return msg(fmt.Sprintf("%v: %d", sc.effects.Geometry().SquareString(sq), n)), nil
}

func (sc *ShellController) inc(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	if sc.effects.Count(sq) == 0xff {
		return nil, errors.New("count is already 255")
	}
	sc.effects.Inc(sq)
	return sc.count(cmd)
}

func (sc *ShellController) dec(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	if sc.effects.Count(sq) == 0 {
		return nil, errors.New("count is already 0")
	}
	sc.effects.Dec(sq)
	return sc.count(cmd)
}

func (sc *ShellController) count(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%v: %d", sc.effects.Geometry().SquareString(sq), sc.effects.Count(sq))), nil
}

func (sc *ShellController) around8(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	raw := sc.effects.Around8(sq)
	masked := raw & sc.effects.BoardMask(sq)
	return msg(fmt.Sprintf("%vraw %08b masked %08b: %s", masked, raw, masked, directList(masked))), nil
}

func (sc *ShellController) around8gt1(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	raw := sc.effects.Around8GreaterThanOne(sq)
	masked := raw & sc.effects.BoardMask(sq)
	return msg(fmt.Sprintf("%vraw %08b masked %08b: %s", masked, raw, masked, directList(masked))), nil
}

func (sc *ShellController) addLong(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: long <sq> <dir>...")
	}
	var ds effect8.Directions
	for _, a := range cmd.args[1:] {
		d, ok := effect8.ParseDirect(a)
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", a)
		}
		ds.Set(d)
	}
	sc.long.Add(sq, ds)
	return sc.dirs(cmd)
}

func (sc *ShellController) dirs(cmd *shellcmd) (*Response, error) {
	sq, err := sc.squareArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	ds := sc.long.Directions(sq)
	return msg(ds.String() + directList(ds)), nil
}

func (sc *ShellController) random(cmd *shellcmd) (*Response, error) {
	limit := 3
	if v, ok := cmd.options["max"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 255 {
			return nil, fmt.Errorf("max must be 1-255, got %q", v)
		}
		limit = n
	}
	for _, sq := range sc.effects.Geometry().Squares() {
		sc.effects.Set(sq, uint8(frand.Intn(limit+1)))
	}
	return sc.show(cmd)
}

func (sc *ShellController) clear(cmd *shellcmd) (*Response, error) {
	sc.effects.Clear()
	sc.long.Clear()
	return msg("cleared"), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.effects.Display()), nil
}

func (sc *ShellController) hash(cmd *shellcmd) (*Response, error) {
	return msg(fmt.Sprintf("effects %016x long %016x", sc.effects.Hash(), sc.long.Hash())), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	if err := sc.config.SetKey(key, value); err != nil {
		return nil, err
	}
	switch key {
	case config.ConfigFiles, config.ConfigRanks:
		if err := sc.resetBoards(); err != nil {
			return nil, err
		}
	case config.ConfigExtractor:
		ext, err := sc.config.Extractor()
		if err != nil {
			return nil, err
		}
		sc.effects.SetExtractor(ext)
		sc.long.SetExtractor(ext)
	case config.ConfigDebug:
		if sc.config.GetBool(config.ConfigDebug) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	}
	return msg("set " + key + " to " + value), nil
}

func (sc *ShellController) exit(cmd *shellcmd) (*Response, error) {
	return nil, errExit
}
