package exchange

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"quantum-exchange/models"
)

func newTestExchange(opts ...Option) *Exchange {
	base := []Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC) }),
	}
	return New(append(base, opts...)...)
}

func readyExchange(opts ...Option) *Exchange {
	ex := newTestExchange(opts...)
	ex.SetFile(models.FileInfo{Name: "report.pdf", Size: 20480})
	ex.SetRecipient("QK-recipient-0001")
	return ex
}

func TestStartRequiresFileAndRecipient(t *testing.T) {
	tests := []struct {
		name      string
		file      bool
		recipient string
	}{
		{"nothing", false, ""},
		{"file only", true, ""},
		{"blank recipient", true, "   "},
		{"recipient only", false, "QK-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := newTestExchange()
			if tt.file {
				ex.SetFile(models.FileInfo{Name: "a.txt"})
			}
			ex.SetRecipient(tt.recipient)

			if _, err := ex.Start(); !errors.Is(err, ErrMissingInformation) {
				t.Fatalf("Start() error = %v, want ErrMissingInformation", err)
			}
			if ex.Status() != models.StatusIdle {
				t.Errorf("status = %s, want idle", ex.Status())
			}
			if ex.Progress() != 0 {
				t.Errorf("progress = %d, want 0", ex.Progress())
			}
		})
	}
}

func TestExchangeRunsToCompletion(t *testing.T) {
	ex := readyExchange()

	run, err := ex.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if ex.Status() != models.StatusProcessing || ex.Progress() != 0 {
		t.Fatalf("after Start: status=%s progress=%d", ex.Status(), ex.Progress())
	}

	ticks := 0
	for ex.Advance(run) {
		ticks++
		if ex.Progress() != ticks*2 {
			t.Fatalf("tick %d: progress = %d, want %d", ticks, ex.Progress(), ticks*2)
		}
		if ticks > 100 {
			t.Fatal("exchange never completed")
		}
	}

	// 49 ticks keep going, the 50th completes.
	if ticks != 49 {
		t.Errorf("continuing ticks = %d, want 49", ticks)
	}
	if ex.Status() != models.StatusCompleted {
		t.Errorf("status = %s, want completed", ex.Status())
	}
	if ex.Progress() != 100 {
		t.Errorf("progress = %d, want 100", ex.Progress())
	}
	if ex.CompletedAt().IsZero() {
		t.Error("completion time not recorded")
	}

	// Further ticks are ignored.
	if ex.Advance(run) {
		t.Error("Advance after completion should stop the timer")
	}
	if ex.Progress() != 100 {
		t.Errorf("progress moved after completion: %d", ex.Progress())
	}
}

func TestProgressClampsToHundred(t *testing.T) {
	ex := readyExchange(WithStep(30))
	run, _ := ex.Start()

	for ex.Advance(run) {
	}
	if ex.Progress() != 100 {
		t.Errorf("progress = %d, want 100", ex.Progress())
	}
}

func TestStartWhileProcessing(t *testing.T) {
	ex := readyExchange()
	run, _ := ex.Start()
	ex.Advance(run)

	if _, err := ex.Start(); !errors.Is(err, ErrExchangeInProgress) {
		t.Fatalf("second Start() error = %v, want ErrExchangeInProgress", err)
	}
	if ex.Progress() != 2 {
		t.Errorf("progress = %d, want 2", ex.Progress())
	}
}

func TestCancelResetsAndInvalidatesTimer(t *testing.T) {
	ex := readyExchange()
	run, _ := ex.Start()
	for i := 0; i < 10; i++ {
		ex.Advance(run)
	}

	if !ex.Cancel() {
		t.Fatal("Cancel() = false while processing")
	}
	if ex.Status() != models.StatusIdle || ex.Progress() != 0 {
		t.Fatalf("after Cancel: status=%s progress=%d", ex.Status(), ex.Progress())
	}

	if ex.Advance(run) {
		t.Error("stale timer callback kept running")
	}
	if ex.Progress() != 0 {
		t.Errorf("stale callback moved progress to %d", ex.Progress())
	}

	// A new run is not affected by the old chain.
	run2, err := ex.Start()
	if err != nil {
		t.Fatalf("restart error = %v", err)
	}
	if run2 == run {
		t.Fatal("restart reused the cancelled run id")
	}
	ex.Advance(run)
	if ex.Progress() != 0 {
		t.Errorf("old run advanced new exchange to %d", ex.Progress())
	}
	ex.Advance(run2)
	if ex.Progress() != 2 {
		t.Errorf("progress = %d, want 2", ex.Progress())
	}
}

func TestCancelWhenNotProcessing(t *testing.T) {
	ex := readyExchange()
	if ex.Cancel() {
		t.Error("Cancel() on idle exchange reported a change")
	}

	run, _ := ex.Start()
	for ex.Advance(run) {
	}
	if ex.Cancel() {
		t.Error("Cancel() on completed exchange reported a change")
	}
	if ex.Status() != models.StatusCompleted {
		t.Errorf("status = %s, want completed", ex.Status())
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	ex := readyExchange()
	run, _ := ex.Start()
	for ex.Advance(run) {
	}

	if _, err := ex.Start(); err != nil {
		t.Fatalf("Start() after completion error = %v", err)
	}
	if ex.Status() != models.StatusProcessing || ex.Progress() != 0 {
		t.Errorf("status=%s progress=%d, want processing/0", ex.Status(), ex.Progress())
	}
}

func TestSnapshot(t *testing.T) {
	ex := readyExchange()
	snap := ex.Snapshot()
	if snap.EstimatedSeconds != 10 || snap.QubitsProcessed != 0 {
		t.Errorf("idle snapshot = %+v", snap)
	}

	run, _ := ex.Start()
	for i := 0; i < 25; i++ {
		ex.Advance(run)
	}
	snap = ex.Snapshot()
	if snap.Progress != 50 {
		t.Fatalf("progress = %d, want 50", snap.Progress)
	}
	if snap.QubitsProcessed != 128 {
		t.Errorf("QubitsProcessed = %d, want 128", snap.QubitsProcessed)
	}
	if snap.EstimatedSeconds != 5 {
		t.Errorf("EstimatedSeconds = %d, want 5", snap.EstimatedSeconds)
	}

	ex.Advance(run)
	snap = ex.Snapshot()
	if snap.EstimatedSeconds != 5 {
		t.Errorf("EstimatedSeconds at 52%% = %d, want 5", snap.EstimatedSeconds)
	}
}

func TestStages(t *testing.T) {
	tests := []struct {
		name     string
		status   models.ExchangeStatus
		progress int
		want     []models.StageState
	}{
		{"idle", models.StatusIdle, 0,
			[]models.StageState{models.StagePending, models.StagePending, models.StagePending, models.StagePending}},
		{"early", models.StatusProcessing, 50,
			[]models.StageState{models.StageComplete, models.StagePending, models.StagePending, models.StagePending}},
		{"late", models.StatusProcessing, 52,
			[]models.StageState{models.StageComplete, models.StageActive, models.StagePending, models.StagePending}},
		{"completed", models.StatusCompleted, 100,
			[]models.StageState{models.StageComplete, models.StageComplete, models.StageComplete, models.StageComplete}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := Stages(tt.status, tt.progress)
			if len(stages) != 4 {
				t.Fatalf("len(stages) = %d, want 4", len(stages))
			}
			for i, s := range stages {
				if s.State != tt.want[i] {
					t.Errorf("%s = %s, want %s", s.Name, s.State, tt.want[i])
				}
			}
		})
	}
}

func TestHistory(t *testing.T) {
	ex := readyExchange()
	if got := len(ex.History()); got != 3 {
		t.Fatalf("initial history length = %d, want 3", got)
	}

	ex.SetProtocol(models.ProtocolE91)
	run, _ := ex.Start()
	for ex.Advance(run) {
	}

	h := ex.History()
	if len(h) != 4 {
		t.Fatalf("history length = %d, want 4", len(h))
	}
	if h[0].FileName != "report.pdf" || h[0].Protocol != models.ProtocolE91 {
		t.Errorf("newest record = %+v", h[0])
	}
	if h[0].When != "3:04 PM" {
		t.Errorf("record time = %q, want 3:04 PM to match the seeded rows", h[0].When)
	}
	if h[1].FileName != "financial_report.pdf" {
		t.Errorf("seed entries should follow session entries, got %q", h[1].FileName)
	}
}

func TestSecurityLevelFollowsProtocol(t *testing.T) {
	ex := newTestExchange()
	want := map[models.Protocol]int{
		models.ProtocolBB84:     7,
		models.ProtocolE91:      9,
		models.ProtocolBBM92:    8,
		models.ProtocolSixState: 8,
	}
	for p, level := range want {
		ex.SetProtocol(p)
		if got := ex.SecurityLevel(); got != level {
			t.Errorf("SecurityLevel() with %s = %d, want %d", p, got, level)
		}
	}
}

func TestKeyStableAcrossCalls(t *testing.T) {
	ex := newTestExchange()
	key := ex.Key()
	if len(key) != 256 {
		t.Fatalf("len(key) = %d, want 256", len(key))
	}
	for _, c := range key {
		if !strings.ContainsRune(KeyAlphabet, c) {
			t.Fatalf("key contains %q outside the alphabet", c)
		}
	}

	ex.SetProtocol(models.ProtocolE91)
	run, _ := readyAndStart(ex)
	ex.Advance(run)
	ex.Cancel()
	if ex.Key() != key {
		t.Error("key changed during the session")
	}
}

func readyAndStart(ex *Exchange) (int, error) {
	ex.SetFile(models.FileInfo{Name: "x"})
	ex.SetRecipient("r")
	return ex.Start()
}

func TestRegenerateReceiveKey(t *testing.T) {
	ex := newTestExchange()
	first := ex.ReceiveKey()
	if len(first) != ReceiveKeyLength {
		t.Fatalf("receive key length = %d, want %d", len(first), ReceiveKeyLength)
	}
	key := ex.Key()

	second := ex.RegenerateReceiveKey()
	if second == first {
		t.Error("regenerated key equals the previous one")
	}
	if ex.ReceiveKey() != second {
		t.Error("ReceiveKey does not return the regenerated key")
	}
	if ex.Key() != key {
		t.Error("regenerating the receive key changed the exchange key")
	}
}
