package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Signal collects the orientation sources the viewer listens to.
// Forced comes from the command line or the rotate key, File from the
// watched orientation file, Terminal from the window size.
type Signal struct {
	Forced   Orientation
	File     Orientation
	Terminal Orientation
}

// Effective returns the first known orientation in precedence order:
// Forced, then File, then Terminal.
func (s Signal) Effective() Orientation {
	for _, o := range []Orientation{s.Forced, s.File, s.Terminal} {
		if o != Unknown {
			return o
		}
	}
	return Unknown
}

// Rotate flips the effective orientation into Forced. An Unknown effective
// orientation rotates to Landscape.
func (s Signal) Rotate() Signal {
	if s.Effective() == Landscape {
		s.Forced = Portrait
	} else {
		s.Forced = Landscape
	}
	return s
}

// ReadOrientationFile parses the first word of the file at path.
// A missing file is not an error: it yields Unknown.
func ReadOrientationFile(path string) (Orientation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Unknown, nil
		}
		return Unknown, fmt.Errorf("read orientation file: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return Unknown, nil
	}
	return ParseOrientation(fields[0])
}
