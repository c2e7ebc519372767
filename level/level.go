// Package level decodes the pipe-delimited text level grammar into the
// initial grid a simulation state is built from. It is intentionally
// thin: the grammar has no nesting and no comments.
package level

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/cellmine/element"
)

// Sentinel errors identify the malformed-level failure modes; callers
// that care about which one fired should use errors.Is.
var (
	ErrTokenCount  = errors.New("level: token count does not match rows*cols+3")
	ErrUnknownCell = errors.New("level: cell code out of range")
	ErrAgentCount  = errors.New("level: exactly one agent cell is required")
	ErrBadInteger  = errors.New("level: non-integer token")
)

// Board is the decoded, validated result of parsing a level string.
type Board struct {
	Rows, Cols   int
	GemsRequired int
	Grid         []element.HiddenCellType
	AgentIdx     int
	AgentInExit  bool
}

// Parse decodes s per the grammar `rows|cols|gems_required|c0|c1|...`.
// Surrounding whitespace around any token is tolerated.
func Parse(s string) (*Board, error) {
	fields := strings.Split(s, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: got %d tokens, need at least 3", ErrTokenCount, len(fields))
	}

	rows, err := parseInt(fields[0])
	if err != nil {
		return nil, fmt.Errorf("level: rows: %w", err)
	}
	cols, err := parseInt(fields[1])
	if err != nil {
		return nil, fmt.Errorf("level: cols: %w", err)
	}
	gems, err := parseInt(fields[2])
	if err != nil {
		return nil, fmt.Errorf("level: gems_required: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows and cols must be positive", ErrTokenCount)
	}
	if gems < 0 {
		return nil, fmt.Errorf("level: gems_required must be non-negative, got %d", gems)
	}

	cellTokens := fields[3:]
	want := rows * cols
	if len(cellTokens) != want {
		return nil, fmt.Errorf("%w: got %d cell tokens, want %d", ErrTokenCount, len(cellTokens), want)
	}

	grid := make([]element.HiddenCellType, want)
	agentIdx := -1
	agentInExit := false
	for i, tok := range cellTokens {
		code, err := parseInt(tok)
		if err != nil {
			return nil, fmt.Errorf("level: cell %d: %w", i, err)
		}
		if code < 0 || code >= int(element.NumHiddenCellTypes) {
			return nil, fmt.Errorf("%w: cell %d has code %d", ErrUnknownCell, i, code)
		}
		kind := element.HiddenCellType(code)
		grid[i] = kind
		if kind == element.Agent || kind == element.AgentInExit {
			if agentIdx != -1 {
				return nil, fmt.Errorf("%w: found a second agent cell at %d (first at %d)", ErrAgentCount, i, agentIdx)
			}
			agentIdx = i
			agentInExit = kind == element.AgentInExit
		}
	}
	if agentIdx == -1 {
		return nil, fmt.Errorf("%w: no agent cell found", ErrAgentCount)
	}

	return &Board{
		Rows:         rows,
		Cols:         cols,
		GemsRequired: gems,
		Grid:         grid,
		AgentIdx:     agentIdx,
		AgentInExit:  agentInExit,
	}, nil
}

// Load reads a level string from path and parses it.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading %s: %w", path, err)
	}
	return Parse(string(data))
}

func parseInt(tok string) (int, error) {
	if tok == "" {
		return 0, ErrBadInteger
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadInteger, tok)
	}
	return n, nil
}

// Encode is the inverse of Parse, primarily useful for tests and for
// the CLI to round-trip a board it loaded.
func Encode(b *Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|%d|%d", b.Rows, b.Cols, b.GemsRequired)
	for _, kind := range b.Grid {
		fmt.Fprintf(&sb, "|%d", int(kind))
	}
	return sb.String()
}
