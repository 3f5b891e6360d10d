package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"quantum-exchange/exchange"
	"quantum-exchange/models"
)

func TestProgressLine(t *testing.T) {
	tests := []struct {
		name     string
		status   models.ExchangeStatus
		progress int
		want     []string
	}{
		{"start", models.StatusProcessing, 0, []string{"[░░░░░░░░░░]", "  0%", "qubits   0/256", "eta 10s", "Key Generation"}},
		{"transmitting", models.StatusProcessing, 60, []string{"[██████░░░░]", " 60%", "qubits 153/256", "eta  4s", "Quantum Transmission"}},
		{"done", models.StatusCompleted, 100, []string{"[██████████]", "100%", "qubits 256/256", "eta  0s", "Privacy Amplification"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := exchange.Snapshot{
				Status:           tt.status,
				Progress:         tt.progress,
				QubitsProcessed:  tt.progress * models.QubitCount / models.MaxProgress,
				EstimatedSeconds: (models.MaxProgress - tt.progress + 9) / 10,
				Stages:           exchange.Stages(tt.status, tt.progress),
			}
			line := ProgressLine(snap, 10)
			for _, want := range tt.want {
				if !strings.Contains(line, want) {
					t.Errorf("ProgressLine() = %q, missing %q", line, want)
				}
			}
		})
	}
}

func TestProtocolTable(t *testing.T) {
	out := ansi.Strip(ProtocolTable(models.Protocols))
	for _, want := range []string{"Protocol", "Efficiency", "Ekert 1991 Protocol", "9/10", "Six-state", "6", "50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(strings.TrimRight(out, "\n"), "\n"); len(lines) < len(models.Protocols)+3 {
		t.Errorf("table has %d lines", len(lines))
	}
}

func TestPromptInputDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nE91\n"), &out)

	got, err := p.PromptInput("Protocol", "BB84")
	if err != nil || got != "BB84" {
		t.Errorf("PromptInput() = %q, %v; want default", got, err)
	}
	got, err = p.PromptInput("Protocol", "BB84")
	if err != nil || got != "E91" {
		t.Errorf("PromptInput() = %q, %v; want E91", got, err)
	}
	if _, err := p.PromptInput("Protocol", ""); err == nil {
		t.Error("expected an error at end of input")
	}
}

func TestPromptExchangeSetup(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "my report.pdf")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	// A bad protocol, a missing file and a blank recipient are each retried.
	input := strings.Join([]string{"rsa", "e91", filepath.Join(dir, "missing"), file, "", "QK-42"}, "\n") + "\n"
	var out bytes.Buffer
	cfg := models.Config{Protocol: "BB84"}

	if err := NewPrompter(strings.NewReader(input), &out).PromptExchangeSetup(&cfg, true); err != nil {
		t.Fatalf("PromptExchangeSetup() error = %v", err)
	}
	if cfg.Protocol != "e91" || cfg.FilePath != file || cfg.Recipient != "QK-42" {
		t.Errorf("cfg = %+v", cfg)
	}

	text := ansi.Strip(out.String())
	for _, want := range []string{"unknown protocol", "does not exist", "recipient key is required"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPromptExchangeSetupKeepsFlags(t *testing.T) {
	cfg := models.Config{Protocol: "BB84", FilePath: "already-set", Recipient: "QK"}
	var out bytes.Buffer
	if err := NewPrompter(strings.NewReader("\n"), &out).PromptExchangeSetup(&cfg, true); err != nil {
		t.Fatal(err)
	}
	if cfg.FilePath != "already-set" || cfg.Protocol != "BB84" {
		t.Errorf("cfg changed: %+v", cfg)
	}
}

func TestPromptExchangeSetupSkipsGivenProtocol(t *testing.T) {
	cfg := models.Config{Protocol: "E91", FilePath: "already-set"}
	var out bytes.Buffer
	if err := NewPrompter(strings.NewReader("QK-7\n"), &out).PromptExchangeSetup(&cfg, false); err != nil {
		t.Fatalf("PromptExchangeSetup() error = %v", err)
	}
	if cfg.Protocol != "E91" || cfg.Recipient != "QK-7" {
		t.Errorf("cfg = %+v, want protocol kept and recipient read", cfg)
	}
	if strings.Contains(ansi.Strip(out.String()), "Protocol (") {
		t.Error("asked for a protocol that was already given")
	}
}

func TestPrintCompletion(t *testing.T) {
	ex := exchange.New()
	ex.SetFile(models.FileInfo{Name: "report.pdf", Size: 1024})
	ex.SetRecipient("QK")
	run, err := ex.Start()
	if err != nil {
		t.Fatal(err)
	}
	for ex.Advance(run) {
	}

	var out bytes.Buffer
	PrintExchangeSetup(&out, ex)
	PrintCompletion(&out, ex)
	text := ansi.Strip(out.String())
	for _, want := range []string{"Bennett-Brassard 1984 Protocol", "report.pdf (1 KB)", "Exact Size:", "1.0 KB", models.EncryptionLabel, "Secure exchange completed", exchange.Partial(ex.Key(), 32)} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
