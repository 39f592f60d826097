package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/vyra-go/internal/domain"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	t.Setenv(domain.DefaultAuthEnvVar, "")
	t.Setenv(domain.ModelOverrideEnvVar, "")
	t.Setenv("VYRA_CONFIG", "")
	t.Setenv("VYRA_ADDR", "")
	return filepath.Join(t.TempDir(), "config.yaml")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(Options{})
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAskOpensSite(t *testing.T) {
	cfg := isolateEnv(t)

	out, err := run(t, "", "--config", cfg, "ask", "Open", "YouTube")
	require.NoError(t, err)
	assert.Contains(t, out, "Vyra: Opening YouTube for you!")
	assert.Contains(t, out, "-> open https://www.youtube.com")
}

func TestAskFallsBackWithoutCredential(t *testing.T) {
	cfg := isolateEnv(t)

	out, err := run(t, "", "--config", cfg, "ask", "explain", "quantum", "physics")
	require.NoError(t, err)
	assert.Contains(t, out, domain.FallbackText)
}

func TestChatSession(t *testing.T) {
	cfg := isolateEnv(t)

	out, err := run(t, "open github\n\n:history\n:clear\nexit\n", "--config", cfg, "chat", "--session", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "session s1")
	assert.Contains(t, out, "Vyra: Opening GitHub!")
	assert.Contains(t, out, "No history recorded yet.")
	assert.Contains(t, out, "Chat history cleared")
}

func TestChatEndsOnEOF(t *testing.T) {
	cfg := isolateEnv(t)

	out, err := run(t, "search for cats on youtube", "--config", cfg, "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "session session_")
	assert.Contains(t, out, `search youtube for "cats"`)
}

func TestConfigShowOmitsCredential(t *testing.T) {
	cfg := isolateEnv(t)
	t.Setenv(domain.DefaultAuthEnvVar, "sk-or-secret")

	out, err := run(t, "", "--config", cfg, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# "+cfg)
	assert.Contains(t, out, "model_id:")
	assert.Contains(t, out, "gemini-2.0-flash-exp:free")
	assert.NotContains(t, out, "sk-or-secret")
}

func TestDoctorAndValidate(t *testing.T) {
	cfg := isolateEnv(t)

	out, err := run(t, "", "--config", cfg, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Config file")
	assert.Contains(t, out, "[WARN] Model credential")

	out, err = run(t, "", "--config", cfg, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Vyra version dev")
}

func TestHistoryCommandsTalkToServer(t *testing.T) {
	var cleared string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			SessionID string `json:"session_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/history":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"history": []domain.Exchange{{
					UserText:      "tell me about go",
					AssistantText: "Go is a language.",
					Timestamp:     time.Date(2024, 3, 5, 15, 4, 0, 0, time.UTC),
				}},
			})
		case "/api/clear-history":
			cleared = body.SessionID
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "Chat history cleared"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	out, err := run(t, "", "history", "list", "--server", srv.URL, "--session", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "you:  tell me about go")
	assert.Contains(t, out, "vyra: Go is a language.")

	out, err = run(t, "", "history", "clear", "--server", srv.URL, "-s", "s7")
	require.NoError(t, err)
	assert.Equal(t, "s7", cleared)
	assert.Contains(t, out, "Chat history cleared")
}
