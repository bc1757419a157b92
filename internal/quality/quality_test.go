package quality

import (
	"testing"

	"github.com/brighted/nable/internal/content"
)

func TestExpectedTime_PrefersAuthoredValue(t *testing.T) {
	it := content.Item{ExpectedTimeSecs: 25}
	if got := ExpectedTime(it); got != 25 {
		t.Errorf("expected time = %f, want authored 25", got)
	}
}

func TestDynamicExpectedTime(t *testing.T) {
	short := DynamicExpectedTime("What is profit?", []string{"A", "B"})
	if short != minExpectedSecs {
		t.Errorf("short item expected time = %f, want floor %f", short, minExpectedSecs)
	}

	long := DynamicExpectedTime(
		"Which of the following best describes the difference between gross profit and net profit for a sole trader preparing year-end accounts?",
		[]string{
			"Gross profit is calculated before deducting operating expenses",
			"Net profit is always larger than gross profit",
			"Gross profit includes interest received on savings",
			"Net profit excludes the cost of goods sold",
		})
	if long <= short {
		t.Errorf("long item expected time = %f, want more than %f", long, short)
	}
}

func TestCheckAnswer(t *testing.T) {
	it := content.Item{ExpectedTimeSecs: 20}
	if _, flagged := CheckAnswer(it, 45); flagged {
		t.Error("45s against 20s expected should not flag")
	}
	reason, flagged := CheckAnswer(it, 90)
	if !flagged || reason != ReasonSlowAnswer {
		t.Errorf("90s against 20s expected: reason=%q flagged=%v, want slow-answer flag", reason, flagged)
	}
}

func TestCheckPopulation(t *testing.T) {
	cases := []struct {
		name string
		item content.Item
		want bool
	}{
		{"low rate with flags", content.Item{Attempts: 40, CorrectCount: 8, FlagCount: 1}, true},
		{"low rate without flags", content.Item{Attempts: 40, CorrectCount: 8}, false},
		{"healthy rate with flags", content.Item{Attempts: 40, CorrectCount: 30, FlagCount: 2}, false},
		{"too few attempts", content.Item{Attempts: 5, CorrectCount: 0, FlagCount: 2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reason, got := CheckPopulation(c.item)
			if got != c.want {
				t.Errorf("flagged = %v, want %v", got, c.want)
			}
			if got && reason != ReasonLowSuccess {
				t.Errorf("reason = %q, want low-success-rate", reason)
			}
		})
	}
}

func TestShouldArchive(t *testing.T) {
	if ShouldArchive(ArchiveFlagThreshold - 1) {
		t.Error("archived below the threshold")
	}
	if !ShouldArchive(ArchiveFlagThreshold) {
		t.Error("not archived at the threshold")
	}
}

func TestPool(t *testing.T) {
	items := []content.Item{
		{ID: "ok"},
		{ID: "flagged", FlagCount: 3},
		{ID: "gone", Archived: true},
	}
	pool := Pool(items)
	if len(pool) != 1 || pool[0].ID != "ok" {
		t.Errorf("pool = %v, want only the clean item", ids(pool))
	}
}

func TestPool_FallsBackToFlaggedItems(t *testing.T) {
	items := []content.Item{
		{ID: "flagged", FlagCount: 4},
		{ID: "gone", Archived: true},
	}
	pool := Pool(items)
	if len(pool) != 1 || pool[0].ID != "flagged" {
		t.Errorf("pool = %v, want the flagged item when nothing clean remains", ids(pool))
	}
}

func ids(items []content.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
