package content

import (
	"strings"
	"testing"
)

func TestSampleBankLoads(t *testing.T) {
	items := SampleBank()
	if len(items) == 0 {
		t.Fatal("sample bank is empty")
	}

	seen := make(map[string]bool)
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true

		if it.Difficulty < 0 || it.Difficulty > 10 {
			t.Errorf("%s: difficulty %v out of range", it.ID, it.Difficulty)
		}
		for _, pre := range it.Prerequisites {
			if !KnownSkill(pre) {
				t.Errorf("%s: unknown prerequisite %q", it.ID, pre)
			}
		}
	}
}

func TestReadBankRejectsBadItems(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			name: "correct index out of range",
			json: `[{"id":"x","options":["a","b"],"correct_index":2,"skill_ids":["pob.cash-flow"]}]`,
			want: "out of range",
		},
		{
			name: "too few options",
			json: `[{"id":"x","options":["a"],"correct_index":0,"skill_ids":["pob.cash-flow"]}]`,
			want: "at least 2 options",
		},
		{
			name: "unknown skill",
			json: `[{"id":"x","options":["a","b"],"correct_index":0,"skill_ids":["pob.nonexistent"]}]`,
			want: "unknown skill",
		},
		{
			name: "missing id",
			json: `[{"options":["a","b"],"correct_index":0,"skill_ids":["pob.cash-flow"]}]`,
			want: "missing id",
		},
		{
			name: "unknown type",
			json: `[{"id":"x","options":["a","b"],"correct_index":0,"skill_ids":["pob.cash-flow"],"type":"video"}]`,
			want: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBank(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestReadBankDefaultsType(t *testing.T) {
	items, err := ReadBank(strings.NewReader(
		`[{"id":"x","options":["a","b"],"correct_index":0,"skill_ids":["pob.cash-flow"]}]`,
	))
	if err != nil {
		t.Fatalf("read bank: %v", err)
	}
	if items[0].Type != TypeStandard {
		t.Errorf("type = %q, want %q", items[0].Type, TypeStandard)
	}
}
