// Package layout maps the orientation signal to a layout mode.
package layout

import (
	"fmt"
	"strings"
)

// Orientation is the environmental signal supplied by the host.
type Orientation int

const (
	Unknown Orientation = iota
	Portrait
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	}
	return "unknown"
}

// MarshalText encodes the orientation by name.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ParseOrientation maps a flag or file value to an Orientation.
// "auto" and the empty string mean Unknown, which defers to other sources.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "p":
		return Portrait, nil
	case "landscape", "l":
		return Landscape, nil
	case "auto", "":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("unknown orientation %q (valid: auto, portrait, landscape)", s)
	}
}

// Mode is the layout derived from an orientation.
type Mode int

const (
	SinglePane Mode = iota
	DualPane
)

func (m Mode) String() string {
	if m == DualPane {
		return "dual-pane"
	}
	return "single-pane"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Resolve returns DualPane for Landscape and SinglePane for anything else.
func Resolve(o Orientation) Mode {
	if o == Landscape {
		return DualPane
	}
	return SinglePane
}

// DefaultAspect is the width/height ratio, in cells, at which a terminal
// counts as landscape. Cells are roughly twice as tall as they are wide.
const DefaultAspect = 2.0

// FromSize derives an orientation from terminal dimensions in cells.
func FromSize(width, height int, aspect float64) Orientation {
	if width <= 0 || height <= 0 {
		return Unknown
	}
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	if float64(width) >= aspect*float64(height) {
		return Landscape
	}
	return Portrait
}
