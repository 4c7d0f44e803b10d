package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cfg := Default()

	if len(cfg.Scenarios) != 4 {
		t.Fatalf("expected 4 built-in scenarios, got %d", len(cfg.Scenarios))
	}
	ports := map[int]string{}
	for _, sc := range cfg.Scenarios {
		if sc.Name == "" || sc.Label == "" || sc.Target == "" {
			t.Fatalf("incomplete scenario: %+v", sc)
		}
		if prev, dup := ports[sc.Port]; dup {
			t.Fatalf("port %d shared by %s and %s", sc.Port, prev, sc.Name)
		}
		ports[sc.Port] = sc.Name
		if len(sc.Guidance) == 0 {
			t.Fatalf("scenario %s has no operator guidance", sc.Name)
		}
	}

	if _, ok := cfg.Find("web"); !ok {
		t.Fatalf("expected to find web scenario")
	}
	if _, ok := cfg.Find("nope"); ok {
		t.Fatalf("did not expect to find unknown scenario")
	}

	names := cfg.Names()
	if names[len(names)-1] != SuiteName {
		t.Fatalf("expected %q last in names, got %v", SuiteName, names)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AdapterBin != "dlv" {
		t.Fatalf("expected default adapter dlv, got %q", cfg.AdapterBin)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	body := `
adapter: /opt/delve/dlv
base_dir: /srv/targets
scenarios:
  - name: web
    port: 6001
  - name: fib
    target: ./other/fib
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AdapterBin != "/opt/delve/dlv" {
		t.Fatalf("adapter not overridden: %q", cfg.AdapterBin)
	}
	if cfg.BaseDir != "/srv/targets" {
		t.Fatalf("base dir not overridden: %q", cfg.BaseDir)
	}
	web, _ := cfg.Find("web")
	if web.Port != 6001 {
		t.Fatalf("web port not overridden: %d", web.Port)
	}
	if len(web.Guidance) == 0 {
		t.Fatalf("override must keep default guidance")
	}
	fib, _ := cfg.Find("fib")
	if fib.Target != "./other/fib" {
		t.Fatalf("fib target not overridden: %q", fib.Target)
	}
	if fib.Port != 5681 {
		t.Fatalf("unrelated field changed: %d", fib.Port)
	}
}

func TestLoadRejectsUnknownScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	body := `
scenarios:
  - name: mystery
    port: 7000
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown scenario override")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte("scenarios: [:::"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
