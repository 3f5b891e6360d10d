package tui

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quantum-exchange/cache"
	"quantum-exchange/exchange"
	"quantum-exchange/models"
	"quantum-exchange/visualization"
)

// Tab is one of the three dashboard tabs
type Tab int

const (
	TabSetup Tab = iota
	TabVisualization
	TabMetrics
)

var tabNames = []string{"Setup", "Visualization", "Security Metrics"}

func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "Unknown"
}

// Focus is the setup-tab control receiving keys
type Focus int

const (
	FocusProtocol Focus = iota
	FocusFile
	FocusRecipient
	FocusStart
	focusCount
)

// noticeTone selects a notification's colour
type noticeTone int

const (
	noticeInfo noticeTone = iota
	noticeSuccess
	noticeWarning
	noticeDanger
)

type notice struct {
	title string
	body  string
	tone  noticeTone
	seq   int
}

// rightPaneMinWidth is the terminal width at which the activity pane opens
const rightPaneMinWidth = 130

// Model represents the dashboard
type Model struct {
	cfg    models.Config
	logger *slog.Logger

	width  int
	height int

	// Pane layout
	leftPaneWidth  int
	rightPaneWidth int
	showRightPane  bool
	paneHidden     bool

	tab   Tab
	focus Focus

	// Protocol dropdown
	dropdownOpen   bool
	dropdownCursor int

	// File selection
	picking bool
	picker  filepicker.Model

	recipientInput textinput.Model

	ex    *exchange.Exchange
	field *visualization.Field
	cache *cache.RenderCache

	progressBar progress.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap
	frame       int

	showDetails bool
	keyVisible  bool
	copied      bool
	copySeq     int
	clipboard   Clipboard

	notice    *notice
	noticeSeq int

	// Session activity for right pane
	outputSummary      []string
	outputScrollOffset int

	quitting bool
	err      error
}

// Option customises a Model.
type Option func(*Model)

// WithExchange replaces the exchange the model drives.
func WithExchange(ex *exchange.Exchange) Option {
	return func(m *Model) { m.ex = ex }
}

func WithClipboard(c Clipboard) Option {
	return func(m *Model) { m.clipboard = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithField replaces the particle field, for deterministic layouts.
func WithField(f *visualization.Field) Option {
	return func(m *Model) { m.field = f }
}

// NewModel creates the dashboard model. cfg must already be validated.
func NewModel(cfg models.Config, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter recipient's quantum key"
	ti.CharLimit = 512
	ti.Width = 40
	ti.Prompt = ""
	ti.PlaceholderStyle = placeholderStyle

	fp := filepicker.New()
	fp.AutoHeight = true
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = highlightStyle

	m := Model{
		cfg:            cfg,
		tab:            TabSetup,
		focus:          FocusProtocol,
		recipientInput: ti,
		picker:         fp,
		cache:          cache.NewRenderCache(5*time.Minute, 64),
		progressBar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spinner:        sp,
		help:           help.New(),
		keys:           newKeyMap(),
		outputSummary:  []string{},
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.clipboard == nil {
		m.clipboard = systemClipboard{}
	}
	if m.ex == nil {
		proto, err := models.ParseProtocol(cfg.Protocol)
		if err != nil {
			proto = models.ProtocolBB84
		}
		m.ex = exchange.New(
			exchange.WithProtocol(proto),
			exchange.WithStep(cfg.ProgressStep),
			exchange.WithKeyLength(cfg.KeyLength),
		)
	}
	if m.field == nil {
		m.field = visualization.NewField(cfg.ParticleCount, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), cfg.FrameInterval)
	}

	if cfg.Recipient != "" {
		m.recipientInput.SetValue(cfg.Recipient)
		m.ex.SetRecipient(cfg.Recipient)
	}
	m.dropdownCursor = protocolIndex(m.ex.Protocol())

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.cfg.FrameInterval), m.picker.Init()}
	if m.cfg.FilePath != "" {
		cmds = append(cmds, selectFileCmd(m.cfg.FilePath))
	}
	return tea.Batch(cmds...)
}

// Exchange exposes the driven exchange, mainly for callers inspecting the
// final state after the program exits.
func (m Model) Exchange() *exchange.Exchange { return m.ex }

func protocolIndex(p models.Protocol) int {
	for i, candidate := range models.Protocols {
		if candidate == p {
			return i
		}
	}
	return 0
}
