package demo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/vegetable-set/utils/service"
	"github.com/tuannh982/vegetable-set/vegetable"
)

var ErrUsage = errors.New("usage")

const help = `commands:
  add <species> <weight>               add a vegetable of a known species
  new <name> <cal> <weight> <price>    add a vegetable with custom values,
                                       quote names with spaces: "Red Onion"
  remove <species> <weight>            remove a vegetable
  contains <species> <weight>          check membership
  list                                 print the set in insertion order
  sorted                               print the set ordered by calories
  range <min> <max>                    vegetables with calories in [min, max]
  calories | cost | size               aggregate queries
  clear                                remove everything
  species                              list known species
  help | quit`

// Shell is an interactive front end to a vegetable.Set. It runs as a service
// so that cancelling its context closes the terminal.
type Shell struct {
	service.SimpleService
	set    *vegetable.Set
	prompt string
	rl     *readline.Instance
	log    *log.Entry
}

func NewShell(set *vegetable.Set) *Shell {
	sh := &Shell{
		set:    set,
		prompt: "vegset> ",
		log:    log.WithFields(log.Fields{"component": "shell"}),
	}
	sh.SimpleService = *service.NewSimpleService(sh)
	return sh
}

func (sh *Shell) OnStart(ctx context.Context) error {
	rl, err := readline.New(sh.prompt)
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	sh.rl = rl
	sh.log.Info("quit with <ctrl>D or 'quit'")
	go sh.loop()
	return nil
}

func (sh *Shell) OnStop() {
	if sh.rl != nil {
		_ = sh.rl.Close()
	}
}

func (sh *Shell) loop() {
	defer sh.Stop()
	for {
		line, err := sh.rl.Readline()
		if err != nil {
			sh.log.WithError(err).Debug("readline finished")
			return
		}
		if sh.Exec(line) {
			pterm.Info.Println("Good bye!")
			return
		}
	}
}

// Exec evaluates one line and prints the outcome. It reports whether the
// shell should quit.
func (sh *Shell) Exec(line string) bool {
	out, quit, err := sh.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	if out != "" {
		pterm.Info.Println(out)
	}
	return quit
}

// LoadFile runs every non-empty line of filename through Exec. An empty
// filename is a no-op.
func (sh *Shell) LoadFile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "open init file %s", filename)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sh.log.WithFields(log.Fields{"line": lineno}).Debug(line)
		if sh.Exec(line) {
			break
		}
	}
	return errors.Wrapf(scanner.Err(), "read init file %s", filename)
}

// Eval evaluates one command line and returns the text to show.
func (sh *Shell) Eval(line string) (string, bool, error) {
	args, err := splitArgs(line)
	if err != nil {
		return "", false, err
	}
	if len(args) == 0 {
		return "", false, nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "quit", "exit":
		return "", true, nil
	case "help":
		return help, false, nil
	case "add":
		v, err := speciesArgs(cmd, args)
		if err != nil {
			return "", false, err
		}
		return sh.add(v)
	case "new":
		v, err := customArgs(args)
		if err != nil {
			return "", false, err
		}
		return sh.add(v)
	case "remove":
		v, err := speciesArgs(cmd, args)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("removed: %t", sh.set.Remove(v)), false, nil
	case "contains":
		v, err := speciesArgs(cmd, args)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("contains: %t", sh.set.Contains(v)), false, nil
	case "list":
		return sh.set.String(), false, nil
	case "sorted":
		return sorted(sh.set), false, nil
	case "range":
		floats, err := parseFloats(cmd, args, "<min> <max>")
		if err != nil {
			return "", false, err
		}
		found, err := sh.set.FindByCalorieRange(floats[0], floats[1])
		if err != nil {
			return "", false, err
		}
		return found.String(), false, nil
	case "calories":
		return fmt.Sprintf("%.2f cal", sh.set.TotalCalories()), false, nil
	case "cost":
		return fmt.Sprintf("$%.2f", sh.set.TotalCost()), false, nil
	case "size":
		return strconv.Itoa(sh.set.Size()), false, nil
	case "clear":
		sh.set.Clear()
		return "cleared", false, nil
	case "species":
		return strings.Join(vegetable.SpeciesKeys(), ", "), false, nil
	default:
		return "", false, errors.Errorf("unknown command %q, try 'help'", cmd)
	}
}

// splitArgs splits line on whitespace. A double-quoted word may contain
// spaces, and the quotes are dropped.
func splitArgs(line string) ([]string, error) {
	args := make([]string, 0)
	var word strings.Builder
	inWord, quoted := false, false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inWord = true
		case !quoted && unicode.IsSpace(r):
			if inWord {
				args = append(args, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if quoted {
		return nil, errors.Wrap(ErrUsage, "unterminated quote")
	}
	if inWord {
		args = append(args, word.String())
	}
	return args, nil
}

func (sh *Shell) add(v *vegetable.Vegetable) (string, bool, error) {
	added, err := sh.set.Add(v)
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("added: %t", added), false, nil
}

func parseFloats(cmd string, args []string, usage string) ([]float64, error) {
	want := len(strings.Fields(usage))
	if len(args) != want {
		return nil, errors.Wrapf(ErrUsage, "%s %s", cmd, usage)
	}
	floats := make([]float64, 0, want)
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: bad number", cmd)
		}
		floats = append(floats, f)
	}
	return floats, nil
}

func speciesArgs(cmd string, args []string) (*vegetable.Vegetable, error) {
	if len(args) != 2 {
		return nil, errors.Wrapf(ErrUsage, "%s <species> <weight>", cmd)
	}
	species, err := vegetable.LookupSpecies(strings.ToLower(args[0]))
	if err != nil {
		return nil, err
	}
	floats, err := parseFloats(cmd, args[1:], "<weight>")
	if err != nil {
		return nil, err
	}
	return species.New(floats[0])
}

func customArgs(args []string) (*vegetable.Vegetable, error) {
	if len(args) != 4 {
		return nil, errors.Wrap(ErrUsage, "new <name> <cal> <weight> <price>")
	}
	floats, err := parseFloats("new", args[1:], "<cal> <weight> <price>")
	if err != nil {
		return nil, err
	}
	return vegetable.New(args[0], floats[0], floats[1], floats[2])
}

// byCalories orders by calories, then name, weight and price. Set elements
// always differ in at least one of them, so the tree keeps every element.
func byCalories(a, b interface{}) int {
	x := a.(*vegetable.Vegetable)
	y := b.(*vegetable.Vegetable)
	if c := utils.Float64Comparator(x.Calories(), y.Calories()); c != 0 {
		return c
	}
	if c := utils.StringComparator(x.Name(), y.Name()); c != 0 {
		return c
	}
	if c := utils.Float64Comparator(x.Weight(), y.Weight()); c != 0 {
		return c
	}
	return utils.Float64Comparator(x.Price(), y.Price())
}

func sorted(set *vegetable.Set) string {
	tree := treeset.NewWith(byCalories)
	for _, v := range set.ToArray() {
		tree.Add(v)
	}
	parts := make([]string, 0, tree.Size())
	for _, v := range tree.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
