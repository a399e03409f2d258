package nativemenu_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

func TestParseOptions(t *testing.T) {
	opts, err := nativemenu.ParseOptions([]byte(`
enable_sounds = true
disable_phone = true
banner_frame_interval = "80ms"
language = "de"

[keys]
accept = "Space"
back = "Backspace"
down = "S"
`))
	if err != nil {
		t.Fatal(err)
	}

	if !opts.EnableSounds || !opts.DisablePhone || opts.DisablePlayerMovement {
		t.Fatalf("toggles = %+v", opts)
	}
	if opts.BannerFrameInterval != 80*time.Millisecond {
		t.Fatalf("banner interval = %v", opts.BannerFrameInterval)
	}
	if opts.Keys.Accept != constants.KeySpace || opts.Keys.Back != constants.KeyBackspace {
		t.Fatalf("keys = %+v", opts.Keys)
	}
	if opts.Keys.Down != constants.Letter('s') {
		t.Fatalf("down = %v, want S", opts.Keys.Down)
	}
	if opts.Keys.Up != constants.KeyUp {
		t.Fatalf("unset key lost its default: up = %v", opts.Keys.Up)
	}
	if opts.ControllerRepeatDelay != constants.DefaultControllerRepeatDelay {
		t.Fatalf("repeat delay = %v", opts.ControllerRepeatDelay)
	}
}

func TestParseOptionsRejectsUnknownKeyName(t *testing.T) {
	if _, err := nativemenu.ParseOptions([]byte("[keys]\nup = \"Joystick\"\n")); err == nil {
		t.Fatal("expected an error for an unknown key name")
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	if err := os.WriteFile(path, []byte("enable_controller_support = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := nativemenu.LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if !opts.EnableControllerSupport {
		t.Fatal("controller support not loaded")
	}

	if _, err := nativemenu.LoadOptions(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestKeyBindings(t *testing.T) {
	keys := nativemenu.DefaultOptions().Keys

	cases := map[constants.Key]constants.Action{
		constants.KeyUp:        constants.ActionUp,
		constants.KeyDown:      constants.ActionDown,
		constants.KeyLeft:      constants.ActionLeft,
		constants.KeyRight:     constants.ActionRight,
		constants.KeyEnter:     constants.ActionAccept,
		constants.KeyBackspace: constants.ActionNone,
		constants.KeyNone:      constants.ActionNone,
	}
	for key, want := range cases {
		if got := keys.ActionFor(key); got != want {
			t.Errorf("ActionFor(%v) = %v, want %v", key, got, want)
		}
	}

	if err := keys.Bind("Back", constants.KeyEscape); err != nil {
		t.Fatal(err)
	}
	if keys.ActionFor(constants.KeyEscape) != constants.ActionBack || keys.KeyFor(constants.ActionBack) != constants.KeyEscape {
		t.Fatal("back binding not applied")
	}

	if err := keys.Bind("jump", constants.KeySpace); !errors.Is(err, nativemenu.ErrUnknownAction) {
		t.Fatalf("Bind(jump) = %v, want ErrUnknownAction", err)
	}
}

func TestKeyPressUsesBindings(t *testing.T) {
	r := newTestRegistry(t, newFakeHost(), func(o *nativemenu.Options) {
		o.Keys.Down = constants.Letter('j')
	})
	m := r.NewMenu("Keys", "", nativemenu.WithItems(buttons(3)...))
	_ = r.Show(m)

	if out := r.ProcessKeyPress(constants.KeyDown); out != nativemenu.OutcomeNone {
		t.Fatalf("rebound arrow key = %v, want none", out)
	}
	if out := r.ProcessKeyPress(constants.Letter('J')); out != nativemenu.OutcomeMoved || m.SelectedIndex() != 1 {
		t.Fatalf("J = %v, selection %d", out, m.SelectedIndex())
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]constants.Key{
		"enter":   constants.KeyEnter,
		"G":       constants.Letter('g'),
		"7":       constants.Digit(7),
		"NumPad4": constants.KeyNumPad0 + 4,
		"F5":      constants.Function(5),
		"":        constants.KeyNone,
	}
	for name, want := range cases {
		got, err := constants.ParseKey(name)
		if err != nil || got != want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", name, got, err, want)
		}
		if want != constants.KeyNone {
			if back, _ := constants.ParseKey(got.String()); back != got {
				t.Errorf("%v does not round-trip through its name", got)
			}
		}
	}
	if _, err := constants.ParseKey("F13"); err == nil {
		t.Error("F13 parsed")
	}
}
