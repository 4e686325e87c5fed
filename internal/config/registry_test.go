package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ippctl/ippctl/internal/ipp"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Printers == nil {
		t.Error("NewRegistry().Printers should not be nil")
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %d, want %d", reg.Preferences.PollInterval, DefaultPollInterval)
	}
	if reg.Preferences.RequestingUser != ipp.DefaultRequestingUser {
		t.Errorf("RequestingUser = %q, want %q", reg.Preferences.RequestingUser, ipp.DefaultRequestingUser)
	}
}

func TestRegistryPrinterCRUD(t *testing.T) {
	reg := NewRegistry()

	reg.SetPrinter("office", &Printer{Host: "cups.lan", Port: 631, BasePath: "/printers/office"})

	p := reg.GetPrinter("office")
	if p == nil {
		t.Fatal("GetPrinter() returned nil after SetPrinter")
	}
	if p.Host != "cups.lan" {
		t.Errorf("Host = %q, want cups.lan", p.Host)
	}

	if reg.GetPrinter("lobby") != nil {
		t.Error("GetPrinter() should return nil for unknown printer")
	}

	if !reg.RemovePrinter("office") {
		t.Error("RemovePrinter() should report true for existing printer")
	}
	if reg.RemovePrinter("office") {
		t.Error("RemovePrinter() should report false for missing printer")
	}
}

func TestRegistryTouchPrinter(t *testing.T) {
	reg := NewRegistry()
	reg.SetPrinter("office", &Printer{Host: "cups.lan", Port: 631, BasePath: "/printers/office"})

	before := time.Now()
	reg.TouchPrinter("office")

	p := reg.GetPrinter("office")
	if p.LastSeen.Before(before) {
		t.Error("TouchPrinter() should update LastSeen")
	}

	// Unknown names are a no-op, not a panic
	reg.TouchPrinter("missing")
}

func TestPrinterEndpoint(t *testing.T) {
	p := &Printer{Host: "printer.local", Port: 631, TLS: true, BasePath: "/ipp/print"}

	want := ipp.Endpoint{Host: "printer.local", Port: 631, TLS: true, BasePath: "/ipp/print"}
	if got := p.Endpoint(); got != want {
		t.Errorf("Endpoint() = %+v, want %+v", got, want)
	}
}

func TestRegistryRequestingUser(t *testing.T) {
	reg := NewRegistry()
	reg.Preferences.RequestingUser = "frontdesk"
	if got := reg.RequestingUser(); got != "frontdesk" {
		t.Errorf("RequestingUser() = %q, want frontdesk", got)
	}

	reg.Preferences.RequestingUser = ""
	if got := reg.RequestingUser(); got != ipp.DefaultRequestingUser {
		t.Errorf("RequestingUser() = %q, want default", got)
	}
}

func TestRegistrySaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	reg := NewRegistry()
	reg.SetPrinter("office", &Printer{
		Host:     "cups.lan",
		Port:     631,
		TLS:      true,
		BasePath: "/printers/office",
		Username: "admin",
		Nickname: "Office Laser",
	})

	if err := reg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	p := loaded.GetPrinter("office")
	if p == nil {
		t.Fatal("loaded registry missing printer")
	}
	if p.Host != "cups.lan" || p.Port != 631 || !p.TLS || p.BasePath != "/printers/office" {
		t.Errorf("loaded printer = %+v", p)
	}
	if p.Username != "admin" || p.Nickname != "Office Laser" {
		t.Errorf("loaded printer metadata = %+v", p)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	reg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v, want default registry", err)
	}
	if reg.Version != 1 {
		t.Errorf("default registry version = %d, want 1", reg.Version)
	}
}

func TestLoadFromRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 9\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should reject unsupported versions")
	}
}

func TestSaveToWritesHeaderComment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := NewRegistry().SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# ippctl configuration file") {
		t.Error("saved config should start with the header comment")
	}
}

func TestPath(t *testing.T) {
	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Path() should end with config.yaml, got %v", path)
	}
	if !strings.Contains(path, "ippctl") {
		t.Errorf("Path() should contain 'ippctl', got %v", path)
	}
}
