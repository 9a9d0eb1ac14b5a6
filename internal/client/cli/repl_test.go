package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeExec) isLoggedIn() bool                  { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) Recipes(ctx context.Context, mealType, cuisine string, page int) error {
	return f.record("recipes %q %q %d", mealType, cuisine, page)
}
func (f *fakeExec) Search(ctx context.Context, q string, page int) error {
	return f.record("search %q %d", q, page)
}
func (f *fakeExec) ByCuisine(ctx context.Context, cuisine string, page int) error {
	return f.record("cuisine %q %d", cuisine, page)
}
func (f *fakeExec) ByMealType(ctx context.Context, mealType string, page int) error {
	return f.record("meal %q %d", mealType, page)
}
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show %s", id) }
func (f *fakeExec) Cuisines(ctx context.Context) error        { return f.record("cuisines") }
func (f *fakeExec) Tags(ctx context.Context) error            { return f.record("tags") }
func (f *fakeExec) Favorites(ctx context.Context) error       { return f.record("favorites") }
func (f *fakeExec) ToggleFavorite(ctx context.Context, id string) error {
	return f.record("fav %s", id)
}
func (f *fakeExec) Plans(ctx context.Context) error { return f.record("plans") }
func (f *fakeExec) NewPlan(ctx context.Context, name string) error {
	return f.record("newplan %q", name)
}
func (f *fakeExec) DeletePlan(ctx context.Context, id string) error {
	return f.record("delplan %s", id)
}
func (f *fakeExec) Schedule(ctx context.Context, recipeID, weekday, mealType string) error {
	return f.record("schedule %s %s %q", recipeID, weekday, mealType)
}
func (f *fakeExec) Profile(ctx context.Context) error  { return f.record("profile") }
func (f *fakeExec) Password(ctx context.Context) error { return f.record("password") }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	printed := capturePrints(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"help",
		"plans",
		"recipes",
		"recipes Dinner Italian",
		"recipes Dinner page 3",
		"search thai green curry",
		"search top 10 page 2",
		"cuisine Middle Eastern",
		"meal Snack page 2",
		"login",
		"help",
		"show r1",
		"fav r1",
		"newplan Summer page 2",
		"schedule r1 Monday",
		"schedule r2 friday Dinner",
		"delplan p1",
		"foobar",
		"logout",
		"exit",
		"cuisines",
	}, "\n")))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(status)" }, input)

	require.Equal(t, []string{
		`recipes "" "" 0`,
		`recipes "Dinner" "Italian" 0`,
		`recipes "Dinner" "" 3`,
		`search "thai green curry" 0`,
		`search "top 10" 2`,
		`cuisine "Middle Eastern" 0`,
		`meal "Snack" 2`,
		"login",
		"show r1",
		"fav r1",
		`newplan "Summer page 2"`,
		`schedule r1 Monday ""`,
		`schedule r2 friday "Dinner"`,
		"delplan p1",
		"logout",
	}, exec.calls)

	require.Contains(t, *printed, helpGuest)
	require.Contains(t, *printed, helpMember)
	require.Contains(t, *printed, "Please log in first.")
	require.Contains(t, *printed, "Unknown command:foobar")
	require.Contains(t, *printed, "rb (status)> ")
	require.Equal(t, "Bye!", (*printed)[len(*printed)-1])
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	printed := capturePrints(t)

	input := bufio.NewReader(strings.NewReader("show\nsearch\nsearch page 2\ncuisine\nmeal\nfav\ndelplan\nschedule r1\n\nquit\n"))
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, input)

	require.Empty(t, exec.calls)
	require.Contains(t, *printed, "Usage: show <id>")
	require.Contains(t, *printed, "Usage: search <text> [page N]")
	require.Contains(t, *printed, "Usage: cuisine <name> [page N]")
	require.Contains(t, *printed, "Usage: meal <type> [page N]")
	require.Contains(t, *printed, "Usage: fav <id>")
	require.Contains(t, *printed, "Usage: delplan <id>")
	require.Contains(t, *printed, "Usage: schedule <recipeId> <weekday> [mealType]")
}

func TestRunREPL_EOFRunsLastLine(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("tags")))
	require.Equal(t, []string{"tags"}, exec.calls)

	exec = &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("")))
	require.Empty(t, exec.calls)
}

func TestPageArg(t *testing.T) {
	cases := []struct {
		in   []string
		rest []string
		page int
	}{
		{nil, nil, 0},
		{[]string{"Dinner"}, []string{"Dinner"}, 0},
		{[]string{"page", "2"}, []string{}, 2},
		{[]string{"Dinner", "Page", "4"}, []string{"Dinner"}, 4},
		{[]string{"Dinner", "page", "0"}, []string{"Dinner", "page", "0"}, 0},
		{[]string{"Dinner", "page", "x"}, []string{"Dinner", "page", "x"}, 0},
	}
	for _, c := range cases {
		rest, page := pageArg(c.in)
		require.Equal(t, c.rest, rest, "%v", c.in)
		require.Equal(t, c.page, page, "%v", c.in)
	}
}
