package whitelist

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/basalt-mc/basalt/server/cause"
	"github.com/basalt-mc/basalt/server/event"
	"github.com/basalt-mc/basalt/server/plugin"
	"github.com/basalt-mc/basalt/server/world"
	"github.com/google/uuid"
)

type testWorld struct{}

func (testWorld) Name() string               { return "overworld" }
func (testWorld) Dimension() world.Dimension { return world.Overworld }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWhitelistAddRemovePersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "whitelist.toml")
	w, err := Load(path)
	if err != nil {
		t.Fatalf("load whitelist: %v", err)
	}

	added, err := w.Add("  Steve ")
	if err != nil || !added {
		t.Fatalf("expected Steve to be newly added, added=%v err=%v", added, err)
	}
	if added, _ := w.Add("steve"); added {
		t.Fatalf("expected a case-insensitive duplicate to not be added again")
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload whitelist: %v", err)
	}
	players := reloaded.Players()
	if len(players) != 1 || players[0] != "Steve" {
		t.Fatalf("expected the trimmed display name to survive a reload, got %v", players)
	}

	removed, err := reloaded.Remove("STEVE")
	if err != nil || !removed {
		t.Fatalf("expected Steve to be removed, removed=%v err=%v", removed, err)
	}
	if len(reloaded.Players()) != 0 {
		t.Fatalf("expected an empty whitelist, got %v", reloaded.Players())
	}
}

func TestWhitelistAllowed(t *testing.T) {
	t.Parallel()

	w, err := Load(filepath.Join(t.TempDir(), "whitelist.toml"))
	if err != nil {
		t.Fatalf("load whitelist: %v", err)
	}
	if _, err := w.Add("Steve"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if !w.Allowed("Alex") {
		t.Fatalf("expected every name to be allowed while not enforced")
	}
	w.SetEnabled(true)
	if w.Allowed("Alex") {
		t.Fatalf("expected Alex to be denied while enforced")
	}
	if !w.Allowed("steve") {
		t.Fatalf("expected a whitelisted name to be allowed case-insensitively")
	}
	if w.Allowed("   ") {
		t.Fatalf("expected a blank name to be denied while enforced")
	}
}

func TestGuardCancelsNonWhitelistedLogin(t *testing.T) {
	t.Parallel()

	w, err := Load(filepath.Join(t.TempDir(), "whitelist.toml"))
	if err != nil {
		t.Fatalf("load whitelist: %v", err)
	}
	if _, err := w.Add("Steve"); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.SetEnabled(true)

	hub := plugin.NewHub(testLogger(), plugin.DefaultConfig())
	hub.Attach("whitelist", NewGuard(w, testLogger()))

	allowedLogin, err := event.NewLogin(uuid.New(), "Steve", testWorld{}, world.Transform{})
	if err != nil {
		t.Fatalf("create login event: %v", err)
	}
	if _, _, allow := hub.DispatchLogin(cause.New(cause.Context{}, allowedLogin), allowedLogin); !allow {
		t.Fatalf("expected the whitelisted player to be allowed")
	}

	deniedLogin, err := event.NewLogin(uuid.New(), "Alex", testWorld{}, world.Transform{})
	if err != nil {
		t.Fatalf("create login event: %v", err)
	}
	if _, _, allow := hub.DispatchLogin(cause.New(cause.Context{}, deniedLogin), deniedLogin); allow {
		t.Fatalf("expected the non-whitelisted player to be denied")
	}
}
