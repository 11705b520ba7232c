// Package protocol reads the referee's textual turn input and writes the
// bot's command line.
//
// Init block:
//
//	<cell count>
//	<kind> <resources> <n0> <n1> <n2> <n3> <n4> <n5>   (one line per cell)
//	<base count>
//	<my base ids...>
//	<opponent base ids...>
//
// Turn block, one line per cell in id order:
//
//	<resources> <my ants> <opponent ants>
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paq1/spring-challenge-2023/pkg/hive"
)

// ErrMalformed marks input that does not follow the protocol.
var ErrMalformed = errors.New("malformed input")

// Init is the map description read once at match start.
type Init struct {
	Cells    []hive.CellSpec
	MyBases  []hive.CellID
	OppBases []hive.CellID
}

// MyBase returns the base used as the source of every command.
func (in *Init) MyBase() hive.CellID { return in.MyBases[0] }

// OppBase returns the opponent's first base.
func (in *Init) OppBase() hive.CellID { return in.OppBases[0] }

// Decoder reads protocol blocks line by line.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Decoder{scanner: s}
}

// Line returns the number of lines consumed so far.
func (d *Decoder) Line() int { return d.line }

// ReadInit reads the map description block.
func (d *Decoder) ReadInit() (*Init, error) {
	n, err := d.readInts(1, 1)
	if err != nil {
		return nil, fmt.Errorf("cell count: %w", err)
	}
	count := n[0]
	if count <= 0 {
		return nil, d.malformed("cell count %d", count)
	}

	in := &Init{Cells: make([]hive.CellSpec, count)}
	for i := range in.Cells {
		f, err := d.readInts(2+hive.NeighborCount, 2+hive.NeighborCount)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		c := hive.CellSpec{Kind: hive.Kind(f[0]), Resources: f[1]}
		for s := 0; s < hive.NeighborCount; s++ {
			c.Neighbors[s] = hive.CellID(f[2+s])
		}
		in.Cells[i] = c
	}

	n, err = d.readInts(1, 1)
	if err != nil {
		return nil, fmt.Errorf("base count: %w", err)
	}
	bases := n[0]
	if bases <= 0 {
		return nil, d.malformed("base count %d", bases)
	}
	if in.MyBases, err = d.readBases(bases); err != nil {
		return nil, fmt.Errorf("my bases: %w", err)
	}
	if in.OppBases, err = d.readBases(bases); err != nil {
		return nil, fmt.Errorf("opponent bases: %w", err)
	}
	return in, nil
}

// ReadTurn reads one turn block of n cell records. It returns io.EOF when the
// input ends cleanly before the block starts; an end of input inside the
// block is reported as io.ErrUnexpectedEOF.
func (d *Decoder) ReadTurn(n int) ([]hive.CellState, error) {
	cells := make([]hive.CellState, n)
	for i := range cells {
		f, err := d.readInts(3, 3)
		if err != nil {
			if errors.Is(err, io.EOF) && i > 0 {
				return nil, fmt.Errorf("cell %d: %w", i, io.ErrUnexpectedEOF)
			}
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = hive.CellState{
			Resources: f[0],
			MyAnts:    hive.Known(f[1]),
			OppAnts:   hive.Known(f[2]),
		}
	}
	return cells, nil
}

func (d *Decoder) readBases(n int) ([]hive.CellID, error) {
	f, err := d.readInts(1, n)
	if err != nil {
		return nil, err
	}
	ids := make([]hive.CellID, len(f))
	for i, v := range f {
		ids[i] = hive.CellID(v)
	}
	return ids, nil
}

// readInts reads the next non-blank line and parses between lo and hi
// integer fields.
func (d *Decoder) readInts(lo, hi int) ([]int, error) {
	text, err := d.next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(text)
	if len(fields) < lo || len(fields) > hi {
		return nil, d.malformed("expected %d..%d fields, got %d in %q", lo, hi, len(fields), text)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, d.malformed("field %d: %q is not an integer", i, f)
		}
		out[i] = v
	}
	return out, nil
}

func (d *Decoder) next() (string, error) {
	for d.scanner.Scan() {
		d.line++
		text := strings.TrimSpace(d.scanner.Text())
		if text != "" {
			return text, nil
		}
	}
	if err := d.scanner.Err(); err != nil {
		return "", fmt.Errorf("line %d: read: %w", d.line+1, err)
	}
	return "", io.EOF
}

func (d *Decoder) malformed(format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", d.line, ErrMalformed, fmt.Sprintf(format, args...))
}
