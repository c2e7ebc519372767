package level

import (
	"errors"
	"testing"
)

const trivialLevel = "3|3|0|1|1|1|1|0|1|1|1|1"

func TestParseValidLevel(t *testing.T) {
	b, err := Parse(trivialLevel)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Rows != 3 || b.Cols != 3 || b.GemsRequired != 0 {
		t.Fatalf("Rows/Cols/GemsRequired = %d/%d/%d, want 3/3/0", b.Rows, b.Cols, b.GemsRequired)
	}
	if len(b.Grid) != 9 {
		t.Fatalf("Grid length = %d, want 9", len(b.Grid))
	}
	if b.AgentIdx != 4 || b.AgentInExit {
		t.Fatalf("AgentIdx/AgentInExit = %d/%v, want 4/false", b.AgentIdx, b.AgentInExit)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	b, err := Parse(trivialLevel)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	encoded := Encode(b)
	b2, err := Parse(encoded)
	if err != nil {
		t.Fatalf("re-Parse of Encode output: %v", err)
	}
	if Encode(b2) != encoded {
		t.Fatalf("round trip mismatch: %q vs %q", Encode(b2), encoded)
	}
}

func TestParseToleratesWhitespace(t *testing.T) {
	spaced := "3 | 3 | 0 | 1 | 1 | 1 | 1 | 0 | 1 | 1 | 1 | 1"
	b, err := Parse(spaced)
	if err != nil {
		t.Fatalf("Parse with whitespace: %v", err)
	}
	if b.AgentIdx != 4 {
		t.Fatalf("AgentIdx = %d, want 4", b.AgentIdx)
	}
}

func TestParseRejectsWrongCellCount(t *testing.T) {
	_, err := Parse("3|3|0|1|1|1|1|0|1|1|1")
	if !errors.Is(err, ErrTokenCount) {
		t.Fatalf("expected ErrTokenCount, got %v", err)
	}
}

func TestParseRejectsTooFewFields(t *testing.T) {
	_, err := Parse("3|3")
	if !errors.Is(err, ErrTokenCount) {
		t.Fatalf("expected ErrTokenCount, got %v", err)
	}
}

func TestParseRejectsUnknownCellCode(t *testing.T) {
	_, err := Parse("3|3|0|1|1|1|1|0|1|1|1|999")
	if !errors.Is(err, ErrUnknownCell) {
		t.Fatalf("expected ErrUnknownCell, got %v", err)
	}
}

func TestParseRejectsNegativeCellCode(t *testing.T) {
	_, err := Parse("1|1|0|-1")
	if !errors.Is(err, ErrUnknownCell) {
		t.Fatalf("expected ErrUnknownCell, got %v", err)
	}
}

func TestParseRejectsNoAgent(t *testing.T) {
	_, err := Parse("3|3|0|1|1|1|1|1|1|1|1|1")
	if !errors.Is(err, ErrAgentCount) {
		t.Fatalf("expected ErrAgentCount, got %v", err)
	}
}

func TestParseRejectsTwoAgents(t *testing.T) {
	_, err := Parse("3|3|0|1|1|1|1|0|1|1|0|1")
	if !errors.Is(err, ErrAgentCount) {
		t.Fatalf("expected ErrAgentCount, got %v", err)
	}
}

func TestParseAcceptsAgentInExit(t *testing.T) {
	b, err := Parse("1|1|0|9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !b.AgentInExit {
		t.Fatal("expected AgentInExit to be true for code 9")
	}
}

func TestParseRejectsBadInteger(t *testing.T) {
	_, err := Parse("3|3|0|1|1|1|1|0|1|1|1|x")
	if !errors.Is(err, ErrBadInteger) {
		t.Fatalf("expected ErrBadInteger, got %v", err)
	}
}

func TestParseRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := Parse("0|3|0"); err == nil {
		t.Fatal("expected an error for zero rows")
	}
	if _, err := Parse("3|-1|0"); err == nil {
		t.Fatal("expected an error for negative cols")
	}
}

func TestParseRejectsNegativeGemsRequired(t *testing.T) {
	if _, err := Parse("1|1|-1|0"); err == nil {
		t.Fatal("expected an error for negative gems_required")
	}
}
