package sheets

import (
	"testing"

	"dog-profiles/internal/ports/rows"

	"github.com/google/go-cmp/cmp"
)

func TestRecords(t *testing.T) {
	cases := []struct {
		name   string
		values [][]any
		want   []rows.Row
	}{
		{
			name:   "no values",
			values: nil,
			want:   []rows.Row{},
		},
		{
			name:   "header only",
			values: [][]any{{"dog_id", "Name"}},
			want:   []rows.Row{},
		},
		{
			name: "short rows are padded",
			values: [][]any{
				{"dog_id", "Name", "Age"},
				{"d-1", "Rex", float64(4)},
				{"", "Luna"},
			},
			want: []rows.Row{
				{"dog_id": "d-1", "Name": "Rex", "Age": float64(4)},
				{"dog_id": "", "Name": "Luna", "Age": ""},
			},
		},
		{
			name: "extra cells and blank headers are ignored",
			values: [][]any{
				{"Name", "", "Sex"},
				{"Rex", "orphan", "M", "beyond header"},
			},
			want: []rows.Row{
				{"Name": "Rex", "Sex": "M"},
			},
		},
		{
			name: "duplicate header keeps last column",
			values: [][]any{
				{"Name", "Name"},
				{"first", "second"},
			},
			want: []rows.Row{
				{"Name": "second"},
			},
		},
		{
			name: "headers keep their exact spelling",
			values: [][]any{
				{"  Amount of food per meal  ", float64(2024)},
				{"200g", "x"},
			},
			want: []rows.Row{
				{"  Amount of food per meal  ": "200g", "2024": "x"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Records(tc.values)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuoteSheetTitle(t *testing.T) {
	if got := quoteSheetTitle("Form Responses 1"); got != "'Form Responses 1'" {
		t.Fatalf("unexpected range %q", got)
	}
	if got := quoteSheetTitle("Dog's sheet"); got != "'Dog''s sheet'" {
		t.Fatalf("unexpected escaped range %q", got)
	}
}
