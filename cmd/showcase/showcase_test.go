package main

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	lua "github.com/yuin/gopher-lua"
)

func TestBuildShowcase(t *testing.T) {
	r := nativemenu.NewRegistry(nativemenu.Host{}, nativemenu.DefaultOptions())
	r.SetLogger(slog.New(slog.DiscardHandler))
	defer r.Close()

	n := &notifier{}
	m, err := buildShowcase(r, n)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 9 {
		t.Fatalf("showcase has %d items, want 9", m.Len())
	}

	_ = r.Show(m)
	r.ProcessKeyPress(constants.KeyEnter)
	if n.text != "You clicked on button: TestItem1" || !n.until.After(time.Now()) {
		t.Fatalf("notice = %q", n.text)
	}

	r.ProcessKeyPress(constants.KeyDown)
	if out := r.ProcessKeyPress(constants.KeyEnter); out != nativemenu.OutcomeRejected {
		t.Fatalf("disabled button = %v", out)
	}
	if strings.Contains(n.text, "disabled") {
		t.Fatal("disabled button clicked")
	}
}

func TestRunScript(t *testing.T) {
	r := nativemenu.NewRegistry(nativemenu.Host{}, nativemenu.DefaultOptions())
	r.SetLogger(slog.New(slog.DiscardHandler))
	defer r.Close()

	L := lua.NewState()
	defer L.Close()

	m, err := runScript(L, r, "showcase.lua")
	if err != nil {
		t.Fatal(err)
	}
	if m.Title != "NativeUI IV" || m.Len() != 2 {
		t.Fatalf("script menu = %q with %d items", m.Title, m.Len())
	}
}
