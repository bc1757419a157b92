package question

import (
	"testing"
)

func TestNormalize_StandardOptions(t *testing.T) {
	n := Normalize([]string{"Revenue", "Profit", "Assets", "Liabilities"})
	if !n.Valid {
		t.Error("expected valid question")
	}
	if n.Type != TypeStandard {
		t.Errorf("Type = %q, want %q", n.Type, TypeStandard)
	}
	if len(n.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", n.Warnings)
	}
}

func TestNormalize_AllOfTheAbove(t *testing.T) {
	n := Normalize([]string{"Revenue", "Profit", "Assets", "All of the above"})
	if n.Type != TypeAllAbove {
		t.Errorf("Type = %q, want %q", n.Type, TypeAllAbove)
	}
	if n.AllAboveIndex != 3 {
		t.Errorf("AllAboveIndex = %d, want 3", n.AllAboveIndex)
	}
}

func TestNormalize_AllAboveVariants(t *testing.T) {
	variants := []string{"All of the above", "all of these", "ALL OF THE ABOVE.", "All the above"}
	for _, v := range variants {
		n := Normalize([]string{"Revenue", "Profit", v})
		if n.AllAboveIndex != 2 {
			t.Errorf("variant %q: AllAboveIndex = %d, want 2", v, n.AllAboveIndex)
		}
	}
}

func TestNormalize_NoneOfTheAbove(t *testing.T) {
	n := Normalize([]string{"Revenue", "Profit", "None of the above"})
	if n.Type != TypeNoneAbove {
		t.Errorf("Type = %q, want %q", n.Type, TypeNoneAbove)
	}
	if n.NoneAboveIndex != 2 {
		t.Errorf("NoneAboveIndex = %d, want 2", n.NoneAboveIndex)
	}
}

func TestNormalize_CompositeOptions(t *testing.T) {
	cases := []string{"Both A and C", "A, B and C", "B and C only"}
	for _, c := range cases {
		n := Normalize([]string{"Revenue", "Profit", "Assets", c})
		if n.Type != TypeComposite {
			t.Errorf("option %q: Type = %q, want %q", c, n.Type, TypeComposite)
		}
		if len(n.CompositeIndices) != 1 || n.CompositeIndices[0] != 3 {
			t.Errorf("option %q: CompositeIndices = %v, want [3]", c, n.CompositeIndices)
		}
	}
}

func TestNormalize_BothMetaOptionsPresent(t *testing.T) {
	// "All of the above" and "none of the above" on the same question is
	// malformed content; it classifies as composite rather than either type.
	n := Normalize([]string{"Revenue", "Profit", "All of the above", "None of the above"})
	if n.Type != TypeComposite {
		t.Errorf("Type = %q, want %q", n.Type, TypeComposite)
	}
	if n.AllAboveIndex != 2 || n.NoneAboveIndex != 3 {
		t.Errorf("meta indices = (%d, %d), want (2, 3)", n.AllAboveIndex, n.NoneAboveIndex)
	}
}

func TestNormalize_DegenerateOptions(t *testing.T) {
	n := Normalize([]string{"", "B", "(2 marks)", "Revenue"})
	if n.Valid {
		t.Error("expected invalid with one usable option")
	}
	if len(n.EmptyIndices) != 1 || n.EmptyIndices[0] != 0 {
		t.Errorf("EmptyIndices = %v, want [0]", n.EmptyIndices)
	}
	if len(n.LetterOnlyIndices) != 1 || n.LetterOnlyIndices[0] != 1 {
		t.Errorf("LetterOnlyIndices = %v, want [1]", n.LetterOnlyIndices)
	}
	if len(n.MarksOnlyIndices) != 1 || n.MarksOnlyIndices[0] != 2 {
		t.Errorf("MarksOnlyIndices = %v, want [2]", n.MarksOnlyIndices)
	}
	if len(n.Warnings) == 0 {
		t.Error("expected warnings for degraded question")
	}
}

func TestNormalize_NilOptions(t *testing.T) {
	n := Normalize(nil)
	if n.Valid {
		t.Error("expected invalid for nil options")
	}
	if len(n.Warnings) != 1 {
		t.Errorf("Warnings = %v, want exactly one", n.Warnings)
	}
}

func TestCleanOption_LetterPrefixAndMarks(t *testing.T) {
	got := CleanOption("B)  Gross   profit (2 marks)")
	if got != "Gross profit" {
		t.Errorf("CleanOption() = %q, want %q", got, "Gross profit")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := []string{"A) Revenue (1 mark)", "  Profit  ", "B", "All of the above"}
	first := Normalize(raw)
	second := Normalize(first.Cleaned)

	for i := range first.Cleaned {
		if first.Cleaned[i] != second.Cleaned[i] {
			t.Errorf("option %d: %q re-normalized to %q", i, first.Cleaned[i], second.Cleaned[i])
		}
	}
	if first.Type != second.Type {
		t.Errorf("Type changed on re-normalize: %q -> %q", first.Type, second.Type)
	}
}
