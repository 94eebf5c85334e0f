package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/models"
)

type testApp struct {
	app       *App
	api       *mock.MockTaskAPI
	out       *bytes.Buffer
	tokenFile string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mock.NewMockTaskAPI(ctrl)
	out := &bytes.Buffer{}
	tokenFile := filepath.Join(t.TempDir(), "session", "token")

	app := NewApp(api, tokenFile, models.NewAppBuildInfo("v0.1.0", "2026-01-01", "abc123"), out, logger.Nop())
	return &testApp{app: app, api: api, out: out, tokenFile: tokenFile}
}

func (ta *testApp) saveToken(t *testing.T, token string) {
	t.Helper()
	require.NoError(t, ta.app.tokens.Save(token))
}

func (ta *testApp) savedToken(t *testing.T) string {
	t.Helper()
	token, err := ta.app.tokens.Load()
	require.NoError(t, err)
	return token
}

func unauthorized() error {
	return adapter.NewResponseError(401, "Unauthorized", nil)
}

// ─── dispatch ───────────────────────────────────────────────────────────────

func TestRun_NoCommand(t *testing.T) {
	ta := newTestApp(t)

	err := ta.app.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, ta.out.String(), "Commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	ta := newTestApp(t)

	err := ta.app.Run(context.Background(), []string{"frobnicate"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			ta := newTestApp(t)

			require.NoError(t, ta.app.Run(context.Background(), []string{arg}))
			for _, name := range commandOrder {
				assert.Contains(t, ta.out.String(), commands[name].usage)
			}
		})
	}
}

func TestRun_CommandHelpFlag(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().SetToken("")

	require.NoError(t, ta.app.Run(context.Background(), []string{"add", "-h"}))
	assert.Contains(t, ta.out.String(), "Usage: task-keeper add -title")
}

func TestRun_BadFlag(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().SetToken("")

	err := ta.app.Run(context.Background(), []string{"list", "-colour", "red"})

	require.Error(t, err)
}

func TestRun_LoadsSavedToken(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "saved-token")

	gomock.InOrder(
		ta.api.EXPECT().SetToken("saved-token"),
		ta.api.EXPECT().Stats(gomock.Any()).Return(models.TaskStats{}, nil),
	)

	require.NoError(t, ta.app.Run(context.Background(), []string{"stats"}))
}

func TestRun_UnauthorizedClearsSavedToken(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "expired")

	ta.api.EXPECT().SetToken("expired")
	ta.api.EXPECT().ListTasks(gomock.Any(), models.TaskFilter{}).Return(nil, unauthorized())

	err := ta.app.Run(context.Background(), []string{"list"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, ta.savedToken(t))
}

func TestRun_OtherErrorKeepsToken(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().Stats(gomock.Any()).Return(models.TaskStats{}, adapter.NewResponseError(500, "Internal server error", nil))

	err := ta.app.Run(context.Background(), []string{"stats"})

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Equal(t, "tok", ta.savedToken(t))
}

// ─── auth commands ──────────────────────────────────────────────────────────

func TestRun_Register(t *testing.T) {
	ta := newTestApp(t)

	ta.api.EXPECT().SetToken("")
	ta.api.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	}).Return(nil)

	err := ta.app.Run(context.Background(), []string{"register", "-name", "Alice", "-email", "alice@example.com", "-password", "secret1"})

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "Registered")
	assert.Empty(t, ta.savedToken(t))
}

func TestRun_Login(t *testing.T) {
	ta := newTestApp(t)

	ta.api.EXPECT().SetToken("")
	ta.api.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"}).
		Return(models.LoginResponse{Token: "new-token", Name: "Alice", Email: "alice@example.com"}, nil)

	err := ta.app.Run(context.Background(), []string{"login", "-email", "alice@example.com", "-password", "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "new-token", ta.savedToken(t))
	assert.Contains(t, ta.out.String(), "Signed in as Alice <alice@example.com>")

	info, err := os.Stat(ta.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRun_LoginFailureKeepsPreviousToken(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "old")

	ta.api.EXPECT().SetToken("old")
	ta.api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, adapter.NewResponseError(400, "Invalid email or password", nil))

	err := ta.app.Run(context.Background(), []string{"login", "-email", "a@b.c", "-password", "wrong12"})

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, "old", ta.savedToken(t))
}

func TestRun_Logout(t *testing.T) {
	tests := []struct {
		name      string
		logoutErr error
		wantErr   error
		wantToken string
	}{
		{name: "success", wantToken: ""},
		{name: "token already rejected", logoutErr: unauthorized(), wantToken: ""},
		{name: "server failure", logoutErr: adapter.NewResponseError(500, "Internal server error", nil), wantErr: adapter.ErrInternalServerError, wantToken: "tok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.saveToken(t, "tok")

			ta.api.EXPECT().SetToken("tok")
			ta.api.EXPECT().Logout(gomock.Any()).Return(tt.logoutErr)

			err := ta.app.Run(context.Background(), []string{"logout"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Contains(t, ta.out.String(), "Signed out")
			}
			assert.Equal(t, tt.wantToken, ta.savedToken(t))
		})
	}
}

// ─── task commands ──────────────────────────────────────────────────────────

func TestRun_List(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().ListTasks(gomock.Any(), models.TaskFilter{
		Status:   "In Progress",
		Priority: "High",
		Search:   "report",
		Sort:     models.TaskSortNewest,
	}).Return([]models.Task{
		{ID: "t-1", Title: "Write report", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityHigh},
	}, nil)

	err := ta.app.Run(context.Background(), []string{"list", "-status", "in-progress", "-priority", "HIGH", "-search", "report", "-sort", "Newest"})

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "Write report")
	assert.Contains(t, ta.out.String(), "t-1")
}

func TestRun_Add(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().CreateTask(gomock.Any(), models.CreateTaskRequest{
		Title:       "Buy milk",
		Description: "2 litres",
		Priority:    models.TaskPriorityLow,
	}).Return(models.Task{ID: "t-2", Title: "Buy milk", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow}, nil)

	err := ta.app.Run(context.Background(), []string{"add", "-title", "Buy milk", "-description", "2 litres", "-priority", "low"})

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "t-2")
	assert.Contains(t, ta.out.String(), "Buy milk")
}

func TestRun_AddWithoutToken(t *testing.T) {
	ta := newTestApp(t)

	ta.api.EXPECT().SetToken("")
	ta.api.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(models.Task{}, adapter.ErrNoToken)

	err := ta.app.Run(context.Background(), []string{"add", "-title", "x"})

	assert.ErrorIs(t, err, adapter.ErrNoToken)
}

func TestRun_Edit(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	title := "Renamed"
	status := models.TaskStatusTodo
	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().UpdateTask(gomock.Any(), "t-1", models.TaskUpdate{Title: &title, Status: &status}).
		Return(models.Task{ID: "t-1", Title: "Renamed", Status: models.TaskStatusTodo}, nil)

	err := ta.app.Run(context.Background(), []string{"edit", "t-1", "-title", "Renamed", "-status", "todo"})

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), "Renamed")
}

func TestRun_EditArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no id", args: []string{"edit", "-title", "x"}, wantErr: ErrMissingTaskID},
		{name: "no fields", args: []string{"edit", "t-1"}, wantErr: ErrNothingToUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.api.EXPECT().SetToken("")

			err := ta.app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_Done(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	completed := models.TaskStatusCompleted
	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().UpdateTask(gomock.Any(), "t-9", models.TaskUpdate{Status: &completed}).
		Return(models.Task{ID: "t-9", Title: "Ship it", Status: completed}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"done", "t-9"}))
	assert.Contains(t, ta.out.String(), "Completed: Ship it")
}

func TestRun_DoneNotFound(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().UpdateTask(gomock.Any(), "missing", gomock.Any()).
		Return(models.Task{}, adapter.NewResponseError(404, "Content not found", nil))

	err := ta.app.Run(context.Background(), []string{"done", "missing"})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, "tok", ta.savedToken(t))
}

func TestRun_Remove(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().DeleteTask(gomock.Any(), "t-3").Return(models.DeleteResult{DeletedCount: 1}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"rm", "t-3"}))
	assert.Contains(t, ta.out.String(), "Deleted 1 task(s)")
}

func TestRun_RemoveWithoutID(t *testing.T) {
	ta := newTestApp(t)
	ta.api.EXPECT().SetToken("")

	err := ta.app.Run(context.Background(), []string{"rm"})

	assert.ErrorIs(t, err, ErrMissingTaskID)
}

func TestRun_Stats(t *testing.T) {
	ta := newTestApp(t)
	ta.saveToken(t, "tok")

	ta.api.EXPECT().SetToken("tok")
	ta.api.EXPECT().Stats(gomock.Any()).Return(models.TaskStats{
		Total: 4, Completed: 1, Pending: 3, CompletionRate: 25,
		PendingTasks: []models.Task{{Title: "Pay rent", Status: models.TaskStatusTodo}},
	}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"stats"}))
	assert.Contains(t, ta.out.String(), "Completion rate: 25%")
	assert.Contains(t, ta.out.String(), "Pay rent")
}

func TestRun_Version(t *testing.T) {
	ta := newTestApp(t)

	ta.api.EXPECT().SetToken("")
	ta.api.EXPECT().Version(gomock.Any()).Return("v0.2.0", nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, ta.out.String(), "v0.1.0")
	assert.Contains(t, ta.out.String(), "v0.2.0")
}

func TestRun_VersionServerDown(t *testing.T) {
	ta := newTestApp(t)

	ta.api.EXPECT().SetToken("")
	ta.api.EXPECT().Version(gomock.Any()).Return("", context.DeadlineExceeded)

	require.NoError(t, ta.app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, ta.out.String(), "v0.1.0")
}

// ─── helpers ────────────────────────────────────────────────────────────────

func TestNormalizeStatusFilter(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"todo":        "Todo",
		"In Progress": "In Progress",
		"in-progress": "In Progress",
		"in_progress": "In Progress",
		"done":        "Completed",
		"COMPLETED":   "Completed",
		"pending":     "Pending",
		"all":         "All",
		"someday":     "someday",
	}

	for in, want := range tests {
		assert.Equal(t, want, normalizeStatusFilter(in), in)
	}
}

func TestNormalizePriorityFilter(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"low":    "Low",
		" HIGH ": "High",
		"Medium": "Medium",
		"all":    "All",
		"urgent": "urgent",
	}

	for in, want := range tests {
		assert.Equal(t, want, normalizePriorityFilter(in), in)
	}
}

func TestSplitTaskID(t *testing.T) {
	id, rest := splitTaskID([]string{"t-1", "-title", "x"})
	assert.Equal(t, "t-1", id)
	assert.Equal(t, []string{"-title", "x"}, rest)

	id, rest = splitTaskID([]string{"-title", "x"})
	assert.Empty(t, id)
	assert.Equal(t, []string{"-title", "x"}, rest)
}
