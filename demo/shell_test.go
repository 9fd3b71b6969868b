package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/vegetable-set/vegetable"
)

func eval(t *testing.T, sh *Shell, line string) string {
	out, quit, err := sh.Eval(line)
	require.Nil(t, err)
	require.Equal(t, false, quit)
	return out
}

func TestShellAddAndQuery(t *testing.T) {
	set := vegetable.NewSet()
	sh := NewShell(set)
	require.Equal(t, "added: true", eval(t, sh, "add carrot 150"))
	require.Equal(t, "added: false", eval(t, sh, "add Carrot 150.0004"))
	require.Equal(t, "added: true", eval(t, sh, "add tomato 200"))
	require.Equal(t, "added: true", eval(t, sh, "new Cucumber 15 300 1.99"))
	require.Equal(t, "3", eval(t, sh, "size"))
	require.Equal(t, 3, set.Size())
	require.Equal(t, "142.50 cal", eval(t, sh, "calories"))
	require.Equal(t, "$1.42", eval(t, sh, "cost"))
	require.Equal(t, "contains: true", eval(t, sh, "contains cucumber 300"))
	require.Equal(t, "[Tomato (200.0g, 18.0 cal/100g, $2.99/kg), Cucumber (300.0g, 15.0 cal/100g, $1.99/kg)]",
		eval(t, sh, "range 0 20"))
	require.Equal(t, "removed: true", eval(t, sh, "remove tomato 200"))
	require.Equal(t, "removed: false", eval(t, sh, "remove tomato 200"))
	require.Equal(t, "cleared", eval(t, sh, "clear"))
	require.Equal(t, "[]", eval(t, sh, "list"))
	require.Equal(t, "", eval(t, sh, "   "))
}

func TestShellSorted(t *testing.T) {
	sh := NewShell(vegetable.NewSet())
	eval(t, sh, "add carrot 100")
	eval(t, sh, "add lettuce 100")
	eval(t, sh, "add cucumber 100")
	eval(t, sh, "add cucumber 50")
	require.Equal(t,
		"[Cucumber (50.0g, 15.0 cal/100g, $1.99/kg), "+
			"Cucumber (100.0g, 15.0 cal/100g, $1.99/kg), "+
			"Lettuce (100.0g, 15.0 cal/100g, $2.49/kg), "+
			"Carrot (100.0g, 41.0 cal/100g, $1.49/kg)]",
		eval(t, sh, "sorted"))
	require.Equal(t, "[Carrot (100.0g, 41.0 cal/100g, $1.49/kg), "+
		"Lettuce (100.0g, 15.0 cal/100g, $2.49/kg), "+
		"Cucumber (100.0g, 15.0 cal/100g, $1.99/kg), "+
		"Cucumber (50.0g, 15.0 cal/100g, $1.99/kg)]",
		eval(t, sh, "list"))
}

func TestShellErrors(t *testing.T) {
	sh := NewShell(vegetable.NewSet())
	_, _, err := sh.Eval("range 20 10")
	require.True(t, errors.Is(err, vegetable.ErrInvalidRange))
	_, _, err = sh.Eval("add potato 100")
	require.True(t, errors.Is(err, vegetable.ErrUnknownSpecies))
	_, _, err = sh.Eval("add carrot -1")
	require.True(t, errors.Is(err, vegetable.ErrInvalidWeight))
	_, _, err = sh.Eval("add carrot")
	require.True(t, errors.Is(err, ErrUsage))
	_, _, err = sh.Eval("add carrot heavy")
	require.NotNil(t, err)
	_, _, err = sh.Eval("new Carrot 41 100")
	require.True(t, errors.Is(err, ErrUsage))
	_, _, err = sh.Eval("dance")
	require.NotNil(t, err)
}

func TestShellQuit(t *testing.T) {
	sh := NewShell(vegetable.NewSet())
	_, quit, err := sh.Eval("quit")
	require.Nil(t, err)
	require.Equal(t, true, quit)
	require.Equal(t, true, sh.Exec("exit"))
	require.Equal(t, false, sh.Exec("dance"))
}

func TestShellLoadFile(t *testing.T) {
	set := vegetable.NewSet()
	sh := NewShell(set)
	require.Nil(t, sh.LoadFile(""))
	name := filepath.Join(t.TempDir(), "init.txt")
	script := "# salad\nadd lettuce 100\n\nadd tomato 150\nadd potato 1\nquit\nadd onion 50\n"
	require.Nil(t, os.WriteFile(name, []byte(script), 0o600))
	require.Nil(t, sh.LoadFile(name))
	require.Equal(t, 2, set.Size())
	require.NotNil(t, sh.LoadFile(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestRun(t *testing.T) {
	require.Nil(t, Run())
}

func TestShellQuotedNames(t *testing.T) {
	set := vegetable.NewSet()
	sh := NewShell(set)
	require.Equal(t, "added: true", eval(t, sh, `new "Red Onion" 40 80 1.5`))
	require.Equal(t, "added: false", eval(t, sh, `new "Red Onion" 40 80 1.5`))
	require.Equal(t, "added: true", eval(t, sh, `new "" 0 10 1`))
	require.Equal(t, "[Red Onion (80.0g, 40.0 cal/100g, $1.50/kg),  (10.0g, 0.0 cal/100g, $1.00/kg)]",
		eval(t, sh, "list"))
	_, _, err := sh.Eval(`new "Red Onion 40 80 1.5`)
	require.True(t, errors.Is(err, ErrUsage))
}

func TestSplitArgs(t *testing.T) {
	args, err := splitArgs(`  new  "Bell  Pepper" 31 100 3.99 `)
	require.Nil(t, err)
	require.Equal(t, []string{"new", "Bell  Pepper", "31", "100", "3.99"}, args)
	args, err = splitArgs("   ")
	require.Nil(t, err)
	require.Equal(t, 0, len(args))
}
