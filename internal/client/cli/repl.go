package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Recipes(ctx context.Context, mealType, cuisine string, page int) error
	Search(ctx context.Context, query string, page int) error
	ByCuisine(ctx context.Context, cuisine string, page int) error
	ByMealType(ctx context.Context, mealType string, page int) error
	Show(ctx context.Context, id string) error
	Cuisines(ctx context.Context) error
	Tags(ctx context.Context) error
	Favorites(ctx context.Context) error
	ToggleFavorite(ctx context.Context, id string) error
	Plans(ctx context.Context) error
	NewPlan(ctx context.Context, name string) error
	DeletePlan(ctx context.Context, id string) error
	Schedule(ctx context.Context, recipeID, weekday, mealType string) error
	Profile(ctx context.Context) error
	Password(ctx context.Context) error
}

const (
	helpBrowse = "recipes [mealType] [cuisine] [page N], search <text> [page N], cuisine <name> [page N], " +
		"meal <type> [page N], show <id>, cuisines, tags, "
	helpGuest  = "Available commands: " + helpBrowse + "register, login, exit"
	helpMember = "Available commands: " + helpBrowse +
		"favorites, fav <id>, plans, newplan [name], delplan <id>, schedule <recipeId> <weekday> [mealType], " +
		"whoami, profile, password, logout, exit"
)

// membersOnly lists the commands that need a signed-in user.
var membersOnly = map[string]bool{
	"logout": true, "whoami": true, "favorites": true, "fav": true, "plans": true,
	"newplan": true, "delplan": true, "schedule": true, "profile": true, "password": true,
}

// runREPL starts a simple read–eval–print loop for the recipe book CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn). Account commands
// (favorites, meal plans, profile) are refused until the user logs in.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rb %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		if quit := dispatch(ctx, a, strings.Fields(line)); quit {
			return
		}
		if err != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, parts []string) (quit bool) {
	if len(parts) == 0 {
		return false
	}
	cmd, args := parts[0], parts[1:]

	var page int
	switch cmd {
	case "recipes", "search", "cuisine", "meal":
		args, page = pageArg(args)
	}

	if membersOnly[cmd] && !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return false
	}

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpMember)
		} else {
			printlnFn(helpGuest)
		}

	case "register":
		_ = a.Register(ctx)

	case "login":
		_ = a.Login(ctx)

	case "logout":
		_ = a.Logout(ctx)

	case "whoami":
		_ = a.WhoAmI(ctx)

	case "recipes":
		_ = a.Recipes(ctx, arg(args, 0), arg(args, 1), page)

	case "search":
		if len(args) == 0 {
			printlnFn("Usage: search <text> [page N]")
			return false
		}
		_ = a.Search(ctx, strings.Join(args, " "), page)

	case "cuisine":
		if len(args) == 0 {
			printlnFn("Usage: cuisine <name> [page N]")
			return false
		}
		_ = a.ByCuisine(ctx, strings.Join(args, " "), page)

	case "meal":
		if len(args) == 0 {
			printlnFn("Usage: meal <type> [page N]")
			return false
		}
		_ = a.ByMealType(ctx, args[0], page)

	case "show":
		if len(args) == 0 {
			printlnFn("Usage: show <id>")
			return false
		}
		_ = a.Show(ctx, args[0])

	case "cuisines":
		_ = a.Cuisines(ctx)

	case "tags":
		_ = a.Tags(ctx)

	case "favorites":
		_ = a.Favorites(ctx)

	case "fav":
		if len(args) == 0 {
			printlnFn("Usage: fav <id>")
			return false
		}
		_ = a.ToggleFavorite(ctx, args[0])

	case "plans":
		_ = a.Plans(ctx)

	case "newplan":
		_ = a.NewPlan(ctx, strings.Join(args, " "))

	case "delplan":
		if len(args) == 0 {
			printlnFn("Usage: delplan <id>")
			return false
		}
		_ = a.DeletePlan(ctx, args[0])

	case "schedule":
		if len(args) < 2 {
			printlnFn("Usage: schedule <recipeId> <weekday> [mealType]")
			return false
		}
		_ = a.Schedule(ctx, args[0], args[1], arg(args, 2))

	case "profile":
		_ = a.Profile(ctx)

	case "password":
		_ = a.Password(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}
	return false
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// pageArg strips a trailing "page N" from args. N must be a positive integer;
// otherwise args are returned unchanged and page is 0.
func pageArg(args []string) ([]string, int) {
	n := len(args)
	if n < 2 || !strings.EqualFold(args[n-2], "page") {
		return args, 0
	}
	p, err := strconv.Atoi(args[n-1])
	if err != nil || p < 1 {
		return args, 0
	}
	return args[:n-2], p
}
