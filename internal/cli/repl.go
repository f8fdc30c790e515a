package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context) error
	Undo(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Save(ctx context.Context) error
	Print(ctx context.Context, args []string) error
	Preview(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Backup(ctx context.Context) error
	Backups(ctx context.Context) error
	Restore(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Config(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
}

const helpText = `Available commands:
  add                              add an article
  undo                             remove the last article added
  list | l                         list articles grouped by category
  search [TERM]                    filter by description or code (no TERM clears)
  categories                       categories in the list
  show ID                          show one article (ID prefix is enough)
  stats                            list statistics
  save                             save now
  print [SCOPE]                    print through the browser
  preview [SCOPE]                  print preview in the terminal
  export csv|json|pdf|xlsx [SCOPE] write an export file
  backup                           write a backup file and keep a snapshot
  backups                          list kept snapshots
  restore N|FILE                   restore snapshot N or a backup file
  import FILE                      load articles from an export file
  config [show|set KEY VALUE|reset] print configuration
  clear                            delete all stored data
  exit | quit                      leave the program
SCOPE is: all | category NAME | single ID`

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is cancelled. Handler errors are reported and the loop carries on.
// An empty prompt is not printed.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if p := promptFn(); p != "" {
			printlnFn(p)
		}

		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var err error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)
		case "add":
			err = a.Add(ctx)
		case "undo":
			err = a.Undo(ctx)
		case "l", "list":
			err = a.List(ctx)
		case "search":
			err = a.Search(ctx, args)
		case "categories":
			err = a.Categories(ctx)
		case "show":
			err = a.Show(ctx, args)
		case "stats":
			err = a.Stats(ctx)
		case "save":
			err = a.Save(ctx)
		case "print":
			err = a.Print(ctx, args)
		case "preview":
			err = a.Preview(ctx, args)
		case "export":
			err = a.Export(ctx, args)
		case "backup":
			err = a.Backup(ctx)
		case "backups":
			err = a.Backups(ctx)
		case "restore":
			err = a.Restore(ctx, args)
		case "import":
			err = a.Import(ctx, args)
		case "config":
			err = a.Config(ctx, args)
		case "clear":
			err = a.Clear(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
		if readErr != nil {
			return
		}
	}
}
