package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/models"
)

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {"register -name <name> -email <email> -password <password>", (*App).register},
	"login":    {"login -email <email> -password <password>", (*App).login},
	"logout":   {"logout", (*App).logout},
	"list":     {"list [-status todo|in-progress|completed|pending|all] [-priority low|medium|high|all] [-search <text>] [-sort oldest|newest|title|priority]", (*App).list},
	"add":      {"add -title <title> [-description <text>] [-status <status>] [-priority <priority>]", (*App).add},
	"edit":     {"edit <id> [-title <title>] [-description <text>] [-status <status>] [-priority <priority>]", (*App).edit},
	"done":     {"done <id>", (*App).done},
	"rm":       {"rm <id>", (*App).remove},
	"stats":    {"stats", (*App).stats},
	"version":  {"version", (*App).version},
}

var commandOrder = []string{"register", "login", "logout", "list", "add", "edit", "done", "rm", "stats", "version"}

// App runs one subcommand per call against the task API.
type App struct {
	api    adapter.TaskAPI
	tokens *tokenStore
	out    io.Writer

	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// usage of the command being run, printed on -h or a flag error
	usage string
}

// NewApp creates the command-line application. The session token is read
// from and written to tokenFile; command output goes to out.
func NewApp(api adapter.TaskAPI, tokenFile string, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:       api,
		tokens:    newTokenStore(tokenFile),
		out:       out,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run executes args[0] with the remaining args as its flags and operands.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	a.api.SetToken(token)

	a.logger.Debug().Str("command", name).Bool("has_token", token != "").Msg("running command")

	a.usage = cmd.usage
	err = cmd.run(a, ctx, args[1:])
	if errors.Is(err, errHelpShown) {
		return nil
	}
	if errors.Is(err, adapter.ErrUnauthorized) && name != "login" {
		// the server no longer accepts the saved token
		if clearErr := a.tokens.Clear(); clearErr != nil {
			a.logger.Err(clearErr).Str("func", "*App.Run").Msg("failed to remove stale token")
		}
	}
	return err
}

func (a *App) printUsage() {
	var b strings.Builder
	b.WriteString("Usage: task-keeper [-s <url>] [-timeout <duration>] [-token-file <path>] <command> [flags]\n\nCommands:\n")
	for _, name := range commandOrder {
		b.WriteString("  ")
		b.WriteString(commands[name].usage)
		b.WriteString("\n")
	}
	_, _ = io.WriteString(a.out, b.String())
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(a.out, "Usage: task-keeper %s\n", a.usage)
	}
	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	err := a.api.Register(ctx, models.RegisterRequest{Name: *name, Email: *email, Password: *password})
	if err != nil {
		return err
	}

	a.print(tui.RenderMessage("Registered. Now log in with: task-keeper login -email " + *email + " -password <password>"))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	if err = a.tokens.Save(resp.Token); err != nil {
		return err
	}

	a.print(tui.RenderMessage(fmt.Sprintf("Signed in as %s <%s>", resp.Name, resp.Email)))
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("logout"), args); err != nil {
		return err
	}

	err := a.api.Logout(ctx)
	if err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}
	if clearErr := a.tokens.Clear(); clearErr != nil {
		return clearErr
	}

	a.print(tui.RenderMessage("Signed out"))
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list")
	status := fs.String("status", "", "status filter")
	priority := fs.String("priority", "", "priority filter")
	search := fs.String("search", "", "text to look for in title and description")
	sort := fs.String("sort", "", "ordering")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	tasks, err := a.api.ListTasks(ctx, models.TaskFilter{
		Status:   normalizeStatusFilter(*status),
		Priority: normalizePriorityFilter(*priority),
		Search:   *search,
		Sort:     models.TaskSort(strings.ToLower(strings.TrimSpace(*sort))),
	})
	if err != nil {
		return err
	}

	a.print(tui.RenderTaskList(tasks))
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	status := fs.String("status", "", "initial status (default todo)")
	priority := fs.String("priority", "", "priority (default medium)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	task, err := a.api.CreateTask(ctx, models.CreateTaskRequest{
		Title:       *title,
		Description: *description,
		Status:      models.TaskStatus(normalizeStatusFilter(*status)),
		Priority:    models.TaskPriority(normalizePriorityFilter(*priority)),
	})
	if err != nil {
		return err
	}

	a.print(tui.RenderTask(task))
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	id, rest := splitTaskID(args)

	fs := a.newFlagSet("edit")
	var update models.TaskUpdate
	fs.Func("title", "new title", func(v string) error {
		update.Title = &v
		return nil
	})
	fs.Func("description", "new description", func(v string) error {
		update.Description = &v
		return nil
	})
	fs.Func("status", "new status", func(v string) error {
		s := models.TaskStatus(normalizeStatusFilter(v))
		update.Status = &s
		return nil
	})
	fs.Func("priority", "new priority", func(v string) error {
		p := models.TaskPriority(normalizePriorityFilter(v))
		update.Priority = &p
		return nil
	})
	if err := parseFlags(fs, rest); err != nil {
		return err
	}
	if id == "" {
		id = fs.Arg(0)
	}
	if id == "" {
		return ErrMissingTaskID
	}
	if update.IsEmpty() {
		return ErrNothingToUpdate
	}

	task, err := a.api.UpdateTask(ctx, id, update)
	if err != nil {
		return err
	}

	a.print(tui.RenderTask(task))
	return nil
}

func (a *App) done(ctx context.Context, args []string) error {
	id, err := a.singleTaskID("done", args)
	if err != nil {
		return err
	}

	completed := models.TaskStatusCompleted
	task, err := a.api.UpdateTask(ctx, id, models.TaskUpdate{Status: &completed})
	if err != nil {
		return err
	}

	a.print(tui.RenderMessage(fmt.Sprintf("Completed: %s", task.Title)))
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	id, err := a.singleTaskID("rm", args)
	if err != nil {
		return err
	}

	result, err := a.api.DeleteTask(ctx, id)
	if err != nil {
		return err
	}

	a.print(tui.RenderMessage(fmt.Sprintf("Deleted %d task(s)", result.DeletedCount)))
	return nil
}

func (a *App) stats(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("stats"), args); err != nil {
		return err
	}

	stats, err := a.api.Stats(ctx)
	if err != nil {
		return err
	}

	a.print(tui.RenderStats(stats))
	return nil
}

// version prints the client build and, when reachable, the server version.
func (a *App) version(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("version"), args); err != nil {
		return err
	}

	serverVersion, err := a.api.Version(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*App.version").Msg("server version unavailable")
	}

	a.print(tui.RenderBuildInfo(a.buildInfo, serverVersion))
	return nil
}

func (a *App) singleTaskID(name string, args []string) (string, error) {
	fs := a.newFlagSet(name)
	if err := parseFlags(fs, args); err != nil {
		return "", err
	}
	id := strings.TrimSpace(fs.Arg(0))
	if id == "" {
		return "", ErrMissingTaskID
	}
	return id, nil
}

func (a *App) print(s string) {
	_, _ = io.WriteString(a.out, s)
}

// parseFlags treats -h as a successful no-op after the usage line has
// been printed.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return errHelpShown
	}
	return err
}

// errHelpShown stops a command after -h without reporting a failure.
var errHelpShown = errors.New("help shown")

// splitTaskID lets the id come before the flags: "edit <id> -title x".
func splitTaskID(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return strings.TrimSpace(args[0]), args[1:]
	}
	return "", args
}

// normalizeStatusFilter maps CLI spellings ("in-progress", "done") to the
// values the API expects. Unknown input is passed through for the server
// to reject.
func normalizeStatusFilter(v string) string {
	switch strings.ToLower(strings.Join(strings.FieldsFunc(v, isSeparator), "")) {
	case "":
		return ""
	case "todo":
		return string(models.TaskStatusTodo)
	case "inprogress":
		return string(models.TaskStatusInProgress)
	case "completed", "done":
		return string(models.TaskStatusCompleted)
	case "pending":
		return models.FilterStatusPending
	case "all":
		return models.FilterAll
	default:
		return v
	}
}

func normalizePriorityFilter(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return ""
	case "low":
		return string(models.TaskPriorityLow)
	case "medium":
		return string(models.TaskPriorityMedium)
	case "high":
		return string(models.TaskPriorityHigh)
	case "all":
		return models.FilterAll
	default:
		return v
	}
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}
