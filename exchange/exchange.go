// Package exchange holds the state of a simulated quantum key exchange: the
// selected protocol, file and recipient, the status and progress counter,
// and the session key. Nothing here performs cryptography; progress is a
// counter advanced by a timer owned by the caller.
package exchange

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"quantum-exchange/models"
)

var (
	// ErrMissingInformation is returned by Start when no file is selected or
	// the recipient key is blank.
	ErrMissingInformation = errors.New("please select a file and enter recipient's quantum key")
	// ErrExchangeInProgress is returned by Start while an exchange is running.
	ErrExchangeInProgress = errors.New("an exchange is already in progress")
)

// Exchange is not safe for concurrent use. The owner (the TUI event loop or a
// Runner goroutine) serialises every call.
type Exchange struct {
	protocol  models.Protocol
	file      *models.FileInfo
	recipient string

	status   models.ExchangeStatus
	progress int
	step     int
	run      int

	key        string
	receiveKey string
	rng        *rand.Rand
	metrics    models.Metrics

	startedAt   time.Time
	completedAt time.Time
	history     []models.ExchangeRecord

	now func() time.Time
}

// Option configures an Exchange.
type Option func(*options)

type options struct {
	rng       *rand.Rand
	step      int
	keyLength int
	protocol  models.Protocol
	now       func() time.Time
}

// WithRand sets the source used to generate the session key.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithStep sets how many percentage points each Advance adds.
func WithStep(step int) Option {
	return func(o *options) {
		if step > 0 && step <= models.MaxProgress {
			o.step = step
		}
	}
}

func WithKeyLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.keyLength = n
		}
	}
}

func WithProtocol(p models.Protocol) Option {
	return func(o *options) { o.protocol = p }
}

// WithClock replaces time.Now for completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates an idle exchange and generates the session key.
func New(opts ...Option) *Exchange {
	o := options{
		step:      models.DefaultConfig.ProgressStep,
		keyLength: models.DefaultConfig.KeyLength,
		protocol:  models.ProtocolBB84,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Exchange{
		protocol:   o.protocol,
		status:     models.StatusIdle,
		step:       o.step,
		key:        GenerateKey(o.rng, o.keyLength),
		receiveKey: GenerateKey(o.rng, ReceiveKeyLength),
		rng:        o.rng,
		metrics:    models.DefaultMetrics(),
		now:        o.now,
	}
}

func (e *Exchange) Protocol() models.Protocol { return e.protocol }

func (e *Exchange) SetProtocol(p models.Protocol) { e.protocol = p }

// SecurityLevel is the score for the selected protocol.
func (e *Exchange) SecurityLevel() int { return e.protocol.SecurityLevel() }

// File returns the selected file, if any.
func (e *Exchange) File() (models.FileInfo, bool) {
	if e.file == nil {
		return models.FileInfo{}, false
	}
	return *e.file, true
}

func (e *Exchange) SetFile(f models.FileInfo) {
	e.file = &f
}

func (e *Exchange) Recipient() string { return e.recipient }

func (e *Exchange) SetRecipient(r string) { e.recipient = r }

func (e *Exchange) Status() models.ExchangeStatus { return e.status }

func (e *Exchange) Progress() int { return e.progress }

func (e *Exchange) Step() int { return e.step }

// Run identifies the current timer chain. It changes on every Start and
// Cancel so that callbacks scheduled for an earlier run can be discarded.
func (e *Exchange) Run() int { return e.run }

// Key is the session's generated display key.
func (e *Exchange) Key() string { return e.key }

// ReceiveKey is the shorter key shown on the "Your Quantum Key" card.
func (e *Exchange) ReceiveKey() string { return e.receiveKey }

// RegenerateReceiveKey replaces the receiving key. The exchange key is
// unaffected.
func (e *Exchange) RegenerateReceiveKey() string {
	e.receiveKey = GenerateKey(e.rng, ReceiveKeyLength)
	return e.receiveKey
}

func (e *Exchange) Metrics() models.Metrics { return e.metrics }

func (e *Exchange) StartedAt() time.Time { return e.startedAt }

func (e *Exchange) CompletedAt() time.Time { return e.completedAt }

// Start moves the exchange into processing with progress reset to zero and
// returns the run identifier the caller's timer must pass to Advance.
func (e *Exchange) Start() (int, error) {
	if e.status == models.StatusProcessing {
		return e.run, ErrExchangeInProgress
	}
	if e.file == nil || strings.TrimSpace(e.recipient) == "" {
		return e.run, ErrMissingInformation
	}

	e.run++
	e.status = models.StatusProcessing
	e.progress = 0
	e.startedAt = e.now()
	e.completedAt = time.Time{}
	return e.run, nil
}

// Advance is the timer callback. It reports whether the timer should keep
// firing: false once the exchange completes, or when run is stale or the
// exchange is not processing.
func (e *Exchange) Advance(run int) bool {
	if e.status != models.StatusProcessing || run != e.run {
		return false
	}

	e.progress += e.step
	if e.progress >= models.MaxProgress {
		e.progress = models.MaxProgress
		e.status = models.StatusCompleted
		e.completedAt = e.now()
		e.record()
		return false
	}
	return true
}

// Cancel returns a processing exchange to idle. It reports whether anything
// changed.
func (e *Exchange) Cancel() bool {
	if e.status != models.StatusProcessing {
		return false
	}
	e.run++
	e.status = models.StatusIdle
	e.progress = 0
	e.startedAt = time.Time{}
	return true
}

func (e *Exchange) record() {
	name := ""
	if e.file != nil {
		name = e.file.Name
	}
	rec := models.ExchangeRecord{
		FileName: name,
		Protocol: e.protocol,
		When:     e.completedAt.Format(models.HistoryTimeFormat),
		At:       e.completedAt,
	}
	e.history = append([]models.ExchangeRecord{rec}, e.history...)
}

// History returns this session's completed exchanges, newest first, followed
// by the sample entries the dashboard always shows.
func (e *Exchange) History() []models.ExchangeRecord {
	out := make([]models.ExchangeRecord, 0, len(e.history)+len(seedHistory))
	out = append(out, e.history...)
	out = append(out, seedHistory...)
	return out
}

var seedHistory = []models.ExchangeRecord{
	{FileName: "financial_report.pdf", Protocol: models.ProtocolBB84, When: "10:32 AM"},
	{FileName: "secure_image.png", Protocol: models.ProtocolE91, When: "Yesterday"},
	{FileName: "contract_v2.docx", Protocol: models.ProtocolBBM92, When: "Yesterday"},
}

// Snapshot is the derived data the views render.
type Snapshot struct {
	Protocol         models.Protocol
	Status           models.ExchangeStatus
	Progress         int
	QubitsProcessed  int
	EstimatedSeconds int
	Stages           []models.Stage
}

func (e *Exchange) Snapshot() Snapshot {
	return Snapshot{
		Protocol:         e.protocol,
		Status:           e.status,
		Progress:         e.progress,
		QubitsProcessed:  e.progress * models.QubitCount / models.MaxProgress,
		EstimatedSeconds: int(math.Ceil(float64(models.MaxProgress-e.progress) / 10)),
		Stages:           Stages(e.status, e.progress),
	}
}

// Stages derives the exchange status rows from status and progress.
func Stages(status models.ExchangeStatus, progress int) []models.Stage {
	keyGen := models.StagePending
	if status != models.StatusIdle {
		keyGen = models.StageComplete
	}

	transmission := models.StagePending
	switch {
	case status == models.StatusCompleted:
		transmission = models.StageComplete
	case status == models.StatusProcessing && progress > 50:
		transmission = models.StageActive
	}

	final := models.StagePending
	if status == models.StatusCompleted {
		final = models.StageComplete
	}

	return []models.Stage{
		{Name: "Key Generation", State: keyGen},
		{Name: "Quantum Transmission", State: transmission},
		{Name: "Error Correction", State: final},
		{Name: "Privacy Amplification", State: final},
	}
}
