// Package replay reads the text file a simulation run writes, one frame of
// particle positions per step:
//
//	Computation time: 0.016
//		Position: 0.5 1.25 0
//		Position: 1.5 1.25 0
//	<blank line>
package replay

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
)

const (
	headerPrefix   = "Computation time:"
	positionPrefix = "\tPosition"
)

type Frame struct {
	Time      float64
	Positions []vector.Vector
}

// Parse reads all frames from r. A frame ends at a blank line or at the end
// of input. Lines which are neither a header nor a position are ignored.
func Parse(r io.Reader) ([]Frame, error) {
	frames := []Frame{}
	var current *Frame
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, headerPrefix):
			if current != nil {
				frames = append(frames, *current)
			}
			t, err := parseHeader(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			current = &Frame{Time: t, Positions: []vector.Vector{}}
		case strings.HasPrefix(line, positionPrefix):
			if current == nil {
				return nil, errors.Errorf("line %d: position before first '%s' header", lineNo, headerPrefix)
			}
			pos, err := parsePosition(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			current.Positions = append(current.Positions, pos)
		case strings.TrimSpace(line) == "":
			if current != nil {
				frames = append(frames, *current)
				current = nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read replay")
	}
	if current != nil {
		frames = append(frames, *current)
	}
	return frames, nil
}

func parseHeader(line string) (float64, error) {
	fields := strings.Fields(line)
	t, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid computation time '%s'", line)
	}
	return t, nil
}

func parsePosition(line string) (vector.Vector, error) {
	_, coords, found := strings.Cut(line, ":")
	if !found {
		return nil, errors.Errorf("missing ':' in position '%s'", line)
	}
	fields := strings.Fields(coords)
	if len(fields) < 2 || len(fields) > 3 {
		return nil, errors.Errorf("position needs 2 or 3 coordinates, got %d", len(fields))
	}
	pos := make(vector.Vector, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid coordinate '%s'", f)
		}
		pos[i] = v
	}
	return pos, nil
}
