package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"quantum-exchange/exchange"
	"quantum-exchange/models"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return ansi.Strip(out.String()), err
}

func tempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProtocolsCommand(t *testing.T) {
	out, err := execute(t, "", "protocols")
	if err != nil {
		t.Fatalf("protocols: %v", err)
	}
	for _, p := range models.Protocols {
		if !strings.Contains(out, p.FullName()) {
			t.Errorf("output missing %q", p.FullName())
		}
	}
}

func TestRunCommand(t *testing.T) {
	file := tempFile(t, "report.pdf", 4096)
	out, err := execute(t, "", "run", "--file", file, "--recipient", "QK-1", "--protocol", "e91", "--tick", "1ms", "--step", "25")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"Ekert 1991 Protocol", "report.pdf (4 KB)", " 25%", "100%", "Secure exchange completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCommandRequiresFileAndRecipient(t *testing.T) {
	_, err := execute(t, "", "run", "--recipient", "QK-1")
	if !errors.Is(err, exchange.ErrMissingInformation) {
		t.Errorf("err = %v, want ErrMissingInformation", err)
	}
}

func TestRunCommandInteractive(t *testing.T) {
	file := tempFile(t, "notes.txt", 10)
	out, err := execute(t, "BBM92\n"+file+"\nQK-7\n", "run", "-i", "--tick", "1ms", "--step", "50")
	if err != nil {
		t.Fatalf("run -i: %v", err)
	}
	if !strings.Contains(out, "Bennett-Brassard-Mermin 1992 Protocol") || !strings.Contains(out, "Secure exchange completed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunInteractiveOnlyAsksForMissing(t *testing.T) {
	file := tempFile(t, "notes.txt", 10)
	out, err := execute(t, "QK-7\n", "run", "-i", "--protocol", "E91", "--file", file, "--tick", "1ms", "--step", "50")
	if err != nil {
		t.Fatalf("run -i with flags: %v", err)
	}
	if strings.Contains(out, "unknown protocol") {
		t.Errorf("recipient answer was read as a protocol:\n%s", out)
	}
	for _, want := range []string{"Ekert 1991 Protocol", "QK-7", "Secure exchange completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := [][]string{
		{"protocols", "--protocol", "RSA"},
		{"protocols", "--step", "101"},
		{"protocols", "--tick=-1s"},
	}
	for _, args := range tests {
		if _, err := execute(t, "", args...); !errors.Is(err, models.ErrInvalidConfig) {
			t.Errorf("%v: err = %v, want ErrInvalidConfig", args, err)
		}
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	cfg := models.DefaultConfig
	cfg.TickInterval = time.Hour
	ex := exchange.New()
	ex.SetFile(models.FileInfo{Name: "a.bin"})
	ex.SetRecipient("QK")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := runHeadless(ctx, ex, cfg, &out, nil); err != nil {
		t.Fatalf("runHeadless() = %v", err)
	}
	if ex.Status() != models.StatusIdle {
		t.Errorf("status = %v, want idle", ex.Status())
	}
	if !strings.Contains(ansi.Strip(out.String()), "Exchange cancelled") {
		t.Errorf("output = %q", out.String())
	}
}
