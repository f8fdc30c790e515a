package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) Add(context.Context) error                   { return f.record("add", nil) }
func (f *fakeExec) Undo(context.Context) error                  { return f.record("undo", nil) }
func (f *fakeExec) List(context.Context) error                  { return f.record("list", nil) }
func (f *fakeExec) Search(_ context.Context, a []string) error  { return f.record("search", a) }
func (f *fakeExec) Categories(context.Context) error            { return f.record("categories", nil) }
func (f *fakeExec) Show(_ context.Context, a []string) error    { return f.record("show", a) }
func (f *fakeExec) Stats(context.Context) error                 { return f.record("stats", nil) }
func (f *fakeExec) Save(context.Context) error                  { return f.record("save", nil) }
func (f *fakeExec) Print(_ context.Context, a []string) error   { return f.record("print", a) }
func (f *fakeExec) Preview(_ context.Context, a []string) error { return f.record("preview", a) }
func (f *fakeExec) Export(_ context.Context, a []string) error  { return f.record("export", a) }
func (f *fakeExec) Backup(context.Context) error                { return f.record("backup", nil) }
func (f *fakeExec) Backups(context.Context) error               { return f.record("backups", nil) }
func (f *fakeExec) Restore(_ context.Context, a []string) error { return f.record("restore", a) }
func (f *fakeExec) Import(_ context.Context, a []string) error  { return f.record("import", a) }
func (f *fakeExec) Config(_ context.Context, a []string) error  { return f.record("config", a) }
func (f *fakeExec) Clear(context.Context) error                 { return f.record("clear", nil) }

func stubPrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := stubPrintln(t)

	input := strings.Join([]string{
		"help",
		"add",
		"",
		"LIST",
		"search tubo rame",
		"show 1a2b",
		"export pdf category EDILIZIA",
		"config set scale 120",
		"foobar",
		"exit",
		"undo",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "creami> " }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"add", "list", "search", "show", "export", "config"}, exec.calls)
	assert.Equal(t, []string{"tubo", "rame"}, exec.args[2])
	assert.Equal(t, []string{"pdf", "category", "EDILIZIA"}, exec.args[4])
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, *out, "creami> ")
}

func TestRunREPL_ReportsErrorsAndStopsAtEOF(t *testing.T) {
	out := stubPrintln(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("save\nstats")))

	assert.Equal(t, []string{"save", "stats"}, exec.calls)
	assert.Equal(t, []string{"Error: boom", "Error: boom"}, *out, "empty prompt is not printed")
}

func TestRunREPL_CancelledContext(t *testing.T) {
	stubPrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\n")))
	assert.Empty(t, exec.calls)
}
