package models

import (
	"errors"
	"fmt"
	"strings"
)

// Protocol is a cosmetic label that selects which static figures are shown.
type Protocol string

const (
	ProtocolBB84     Protocol = "BB84"
	ProtocolE91      Protocol = "E91"
	ProtocolBBM92    Protocol = "BBM92"
	ProtocolSixState Protocol = "Six-state"
)

var ErrUnknownProtocol = errors.New("unknown protocol")

// Protocols lists the selectable protocols in menu order.
var Protocols = []Protocol{ProtocolBB84, ProtocolE91, ProtocolBBM92, ProtocolSixState}

// LevelTone classifies a security level for colouring.
type LevelTone int

const (
	ToneDanger LevelTone = iota
	ToneWarning
	ToneSuccess
)

// ParseProtocol matches a protocol name case-insensitively.
func ParseProtocol(s string) (Protocol, error) {
	for _, p := range Protocols {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
}

func (p Protocol) String() string {
	return string(p)
}

// Label is the dropdown entry text.
func (p Protocol) Label() string {
	return string(p) + " Protocol"
}

// SecurityLevel is the quantum resistance score out of 10.
func (p Protocol) SecurityLevel() int {
	switch p {
	case ProtocolBB84:
		return 7
	case ProtocolE91:
		return 9
	case ProtocolBBM92, ProtocolSixState:
		return 8
	default:
		return 7
	}
}

// SecurityPercent is the bar value on the visualization protocol card.
func (p Protocol) SecurityPercent() int {
	switch p {
	case ProtocolBB84:
		return 70
	case ProtocolE91:
		return 90
	default:
		return 80
	}
}

func (p Protocol) Bases() int {
	if p == ProtocolSixState {
		return 6
	}
	return 4
}

func (p Protocol) Efficiency() string {
	if p == ProtocolBB84 {
		return "50%"
	}
	return "75%"
}

func (p Protocol) FullName() string {
	switch p {
	case ProtocolBB84:
		return "Bennett-Brassard 1984 Protocol"
	case ProtocolE91:
		return "Ekert 1991 Protocol"
	case ProtocolBBM92:
		return "Bennett-Brassard-Mermin 1992 Protocol"
	default:
		return "Six-state Protocol"
	}
}

// Tone maps a security level onto the success/warning/danger scale.
func Tone(level int) LevelTone {
	switch {
	case level > 7:
		return ToneSuccess
	case level > 4:
		return ToneWarning
	default:
		return ToneDanger
	}
}
