package schedule

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/odpf/tabctl/client/cmd/internal/logger"
	"github.com/odpf/tabctl/core/schedule"
	"github.com/odpf/tabctl/internal/errors"
)

type fakeTableau struct {
	mu         sync.Mutex
	failSignIn bool
	schedules  []map[string]interface{}
}

func (f *fakeTableau) start() *httptest.Server {
	writeJSON := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/2.4/serverinfo", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"serverInfo": map[string]interface{}{"restApiVersion": "3.4"},
		})
	})
	mux.HandleFunc("/api/3.4/auth/signin", func(w http.ResponseWriter, _ *http.Request) {
		if f.failSignIn {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"error": map[string]string{"code": "401001", "summary": "Signin Error"},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"credentials": map[string]interface{}{
				"token": "token",
				"site":  map[string]string{"id": "site-1"},
				"user":  map[string]string{"id": "user-1"},
			},
		})
	})
	mux.HandleFunc("/api/3.4/auth/signout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/3.4/schedules", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.schedules = append(f.schedules, body["schedule"].(map[string]interface{}))
		id := len(f.schedules)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"schedule": map[string]interface{}{"id": fmt.Sprintf("schedule-%d", id), "state": "Active"},
		})
	})
	return httptest.NewServer(mux)
}

func (f *fakeTableau) names() []string {
	var names []string
	for _, s := range f.schedules {
		names = append(names, s["name"].(string))
	}
	return names
}

func TestCreateCommands(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	t.Run("should create the four schedules in order", func(t *testing.T) {
		fake := &fakeTableau{}
		srv := fake.start()
		defer srv.Close()

		var out bytes.Buffer
		all := &createAllCommand{logger: log.NewNoop(), printer: logger.NewPrinterWithWriter(&out)}
		cmd := &cobra.Command{Use: "all", PreRunE: all.PreRunE, RunE: all.RunE}
		injectConnectionFlags(cmd, &all.flags)
		cmd.SetArgs([]string{"-s", srv.URL, "-p", "ci", "-v", "secret"})

		err := cmd.Execute()

		assert.NoError(t, err)
		assert.Equal(t, []string{"Hourly-Schedule", "Daily-Schedule", "Weekly-Schedule", "Monthly-Schedule"}, fake.names())
		assert.Equal(t, "Hourly schedule created (ID: schedule-1).\n"+
			"Daily schedule created (ID: schedule-2).\n"+
			"Weekly schedule created (ID: schedule-3).\n"+
			"Monthly schedule created (ID: schedule-4).\n", out.String())
	})

	t.Run("should create weekly schedule with given weekdays", func(t *testing.T) {
		fake := &fakeTableau{}
		srv := fake.start()
		defer srv.Close()

		var out bytes.Buffer
		create := &createCommand{logger: log.NewNoop(), printer: logger.NewPrinterWithWriter(&out), kind: schedule.KindWeekly}
		cmd := &cobra.Command{Use: "weekly", PreRunE: create.PreRunE, RunE: create.RunE}
		create.injectFlags(cmd)
		cmd.SetArgs([]string{"-s", srv.URL, "-p", "ci", "-v", "secret", "--start", "08:00", "--weekdays", "tue,Sunday"})

		err := cmd.Execute()

		assert.NoError(t, err)
		assert.Len(t, fake.schedules, 1)
		details := fake.schedules[0]["frequencyDetails"].(map[string]interface{})
		assert.Equal(t, "08:00:00", details["start"])
		intervals := details["intervals"].(map[string]interface{})["interval"].([]interface{})
		assert.Equal(t, []interface{}{
			map[string]interface{}{"weekDay": "Tuesday"},
			map[string]interface{}{"weekDay": "Sunday"},
		}, intervals)
		assert.Equal(t, "Weekly schedule created (ID: schedule-1).\n", out.String())
	})

	t.Run("should reject malformed start time before signing in", func(t *testing.T) {
		fake := &fakeTableau{}
		srv := fake.start()
		defer srv.Close()

		var out bytes.Buffer
		create := &createCommand{logger: log.NewNoop(), printer: logger.NewPrinterWithWriter(&out), kind: schedule.KindDaily}
		cmd := &cobra.Command{Use: "daily", PreRunE: create.PreRunE, RunE: create.RunE}
		create.injectFlags(cmd)
		cmd.SetArgs([]string{"-s", srv.URL, "-p", "ci", "-v", "secret", "--start", "25:00"})

		err := cmd.Execute()

		assert.Error(t, err)
		assert.Empty(t, fake.schedules)
	})
}

func TestMenuCommand(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	t.Run("should stop without creating when sign in fails", func(t *testing.T) {
		fake := &fakeTableau{failSignIn: true}
		srv := fake.start()
		defer srv.Close()

		var out bytes.Buffer
		menu := &menuCommand{logger: log.NewNoop(), printer: logger.NewPrinterWithWriter(&out), in: strings.NewReader("5\n6\n")}
		cmd := &cobra.Command{Use: "menu", PreRunE: menu.PreRunE, RunE: menu.RunE}
		injectConnectionFlags(cmd, &menu.flags)
		cmd.SetArgs([]string{"-s", srv.URL, "-p", "ci", "-v", "wrong"})

		err := cmd.Execute()

		assert.True(t, errors.IsReported(err))
		assert.True(t, errors.IsErrorType(err, errors.ErrFailedPrecond))
		assert.Empty(t, fake.schedules)
		assert.Equal(t, "Sign-in failed: 401001: Signin Error\n", out.String())
	})

	t.Run("should create through one session", func(t *testing.T) {
		fake := &fakeTableau{}
		srv := fake.start()
		defer srv.Close()

		var out bytes.Buffer
		menu := &menuCommand{logger: log.NewNoop(), printer: logger.NewPrinterWithWriter(&out), in: strings.NewReader("4\n6\n")}
		cmd := &cobra.Command{Use: "menu", PreRunE: menu.PreRunE, RunE: menu.RunE}
		injectConnectionFlags(cmd, &menu.flags)
		cmd.SetArgs([]string{"-s", srv.URL, "-p", "ci", "-v", "secret"})

		err := cmd.Execute()

		assert.NoError(t, err)
		assert.Equal(t, []string{"Monthly-Schedule"}, fake.names())
		assert.Contains(t, out.String(), "Monthly schedule created (ID: schedule-1).\n")
	})
}
