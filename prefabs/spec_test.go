package prefabs

import (
	"image/color"
	"testing"
	"time"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player: %v", err)
	}
	cfg := spec.MoverConfig(false)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded player tuning is invalid: %v", err)
	}
	if cfg.DashDuration != 500*time.Millisecond || cfg.DashCooldown != time.Second {
		t.Fatalf("unexpected dash timing %s/%s", cfg.DashDuration, cfg.DashCooldown)
	}
	if !cfg.DashEnabled {
		t.Fatalf("expected dash enabled")
	}
	if spec.MoverConfig(true).DashEnabled {
		t.Fatalf("basic config must disable dash")
	}
}

func TestLoadLevelSpec(t *testing.T) {
	spec, err := LoadLevelSpec()
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	if spec.Gravity <= 0 {
		t.Fatalf("expected positive gravity, got %v", spec.Gravity)
	}
	if len(spec.Platforms) == 0 {
		t.Fatalf("expected platforms")
	}
	for i, p := range spec.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			t.Fatalf("platform %d has empty extent %+v", i, p)
		}
	}
}

func TestDecodeDashDurations(t *testing.T) {
	src := []byte("dash:\n  enabled: true\n  duration: 250ms\n  cooldown: 1.5s\n")
	spec, err := DecodeSpec[PlayerSpec](src)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.Dash.Duration != 250*time.Millisecond || spec.Dash.Cooldown != 1500*time.Millisecond {
		t.Fatalf("unexpected durations %+v", spec.Dash)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `color: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `color: "10203080"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}, false},
		{"short", `color: "#fff"`, color.NRGBA{}, true},
		{"not_hex", `color: "#zz0000"`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := DecodeSpec[SpriteSpec]([]byte(c.src))
			if (err != nil) != c.wantErr {
				t.Fatalf("expected error=%v, got %v", c.wantErr, err)
			}
			if err != nil {
				return
			}
			if got := spec.Color.NRGBA(color.NRGBA{}); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestYAMLColorFallback(t *testing.T) {
	var c *YAMLColor
	fallback := color.NRGBA{R: 1, A: 255}
	if got := c.NRGBA(fallback); got != fallback {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestCleanPaths(t *testing.T) {
	scripts := map[string]string{
		"dash_demo":                 "scripts/dash_demo.tengo",
		"scripts/dash_demo.tengo":   "scripts/dash_demo.tengo",
		"prefabs/scripts/dash_demo": "scripts/dash_demo.tengo",
		"prefabs/hold_jump.tengo":   "scripts/hold_jump.tengo",
	}
	for in, want := range scripts {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if got := cleanPrefabPath("prefabs/player.yaml"); got != "player.yaml" {
		t.Fatalf("unexpected prefab path %q", got)
	}
}

func TestLoadScripts(t *testing.T) {
	for _, name := range []string{"dash_demo", "hold_jump", "spam_dash"} {
		src, err := LoadScript(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if len(src) == 0 {
			t.Fatalf("script %s is empty", name)
		}
	}
}

func TestWatchFilters(t *testing.T) {
	if !isSpecFile("prefabs/player.YAML") || isSpecFile("player.go") {
		t.Fatalf("spec filter mismatch")
	}
	if !isScriptFile("a/b.tengo") || isScriptFile("b.lua") {
		t.Fatalf("script filter mismatch")
	}
	if !IsPlayerSpec("/tmp/x/player.yaml") || IsLevelSpec("player.yaml") {
		t.Fatalf("prefab name match mismatch")
	}
}
