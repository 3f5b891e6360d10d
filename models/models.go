package models

import (
	"math"
	"time"
)

// ExchangeStatus is the lifecycle state of a simulated exchange.
type ExchangeStatus int

const (
	StatusIdle ExchangeStatus = iota
	StatusProcessing
	StatusCompleted
	// StatusError is declared for completeness; nothing ever sets it.
	StatusError
)

func (s ExchangeStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	MaxProgress = 100
	// QubitCount is the displayed number of qubits per exchange.
	QubitCount = 256
	// HistoryTimeFormat stamps session rows of the recent exchanges card.
	HistoryTimeFormat = "3:04 PM"
)

// Static figures shown across the dashboard. None of them is computed.
const (
	ErrorRate            = "0.03%"
	PrivacyAmplification = "1.42x"
	EntropyFigure        = "7.998 bits/byte"
	SecureKeyRate        = "1.28 kbps"
	EncryptionLabel      = "Quantum-resistant AES-256"
	ProtocolEncryption   = "Post-Quantum Hybrid Encryption"
	KeySizeLabel         = "256-bit Quantum Key"
)

// FileInfo is the part of a selected file the dashboard displays.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// KB returns the size in kilobytes, rounded to the nearest whole number.
func (f FileInfo) KB() int64 {
	return int64(math.Round(float64(f.Size) / 1024))
}

// ExchangeRecord is one row of the recent exchanges card.
type ExchangeRecord struct {
	FileName string
	Protocol Protocol
	When     string
	At       time.Time
}

// Stage is one row of the exchange status card.
type Stage struct {
	Name  string
	State StageState
}

type StageState int

const (
	StagePending StageState = iota
	StageActive
	StageComplete
)

func (s StageState) String() string {
	switch s {
	case StageActive:
		return "Active"
	case StageComplete:
		return "Complete"
	default:
		return "Pending"
	}
}
