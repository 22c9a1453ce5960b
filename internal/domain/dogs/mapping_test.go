package dogs

import (
	"testing"

	"dog-profiles/internal/ports/rows"

	"github.com/google/go-cmp/cmp"
)

func fullRow() rows.Row {
	return rows.Row{
		HeaderDogID:             "rex-01",
		HeaderDogName:           "Rex",
		HeaderDogAge:            float64(4),
		HeaderDogSex:            "Male",
		HeaderDogPhoto:          "https://drive.example/rex.jpg",
		HeaderOwnerName:         "Jane Doe",
		HeaderOwnerPhone:        "0612345678",
		HeaderPreferredContact:  "WhatsApp",
		HeaderFeedingTimes:      "Morning, Evening",
		HeaderFeedingAmount:     "200g",
		HeaderAllergies:         "Yes",
		HeaderAllergiesDetail:   "Chicken",
		HeaderWalkFrequency:     "Twice a day",
		HeaderWalkDuration:      float64(30),
		HeaderBarksInReactionTo: "Doorbell",
		HeaderAfraidOf:          "None",
		HeaderOwnersRemark:      "Loves belly rubs",
		HeaderMedicalConditions: "",
		"Timestamp":             "2025/01/02 10:00:00",
	}
}

func TestMapRow_FullRow(t *testing.T) {
	want := Profile{
		DogID: "rex-01",
		Dog: Dog{
			Name:     "Rex",
			Age:      float64(4),
			Sex:      "Male",
			PhotoURL: "https://drive.example/rex.jpg",
		},
		Owner: Owner{
			Name:             "Jane Doe",
			Phone:            "0612345678",
			PreferredContact: "WhatsApp",
		},
		Feeding: Feeding{
			Times:           "Morning, Evening",
			Amount:          "200g",
			Allergies:       "Yes",
			AllergiesDetail: "Chicken",
		},
		Walks: Walks{
			Frequency: "Twice a day",
			Duration:  float64(30),
		},
		Behavior: Behavior{
			BarksInReactionTo: "Doorbell",
			AfraidOf:          "None",
			OwnersRemark:      "Loves belly rubs",
			MedicalConditions: "",
		},
	}

	got := MapRow(fullRow(), 1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("MapRow mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRow_MissingHeadersBecomeNil(t *testing.T) {
	got := MapRow(rows.Row{}, 5)

	want := Profile{DogID: "5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("MapRow mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want, MapRow(nil, 5)); diff != "" {
		t.Fatalf("nil row mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRow_HeadersMatchExactly(t *testing.T) {
	row := rows.Row{
		"Amount of food per meal":            "trimmed header",
		"Food or environmental intolerances": "trimmed header",
		"name":                               "lowercase header",
	}

	got := MapRow(row, 1)
	if got.Feeding.Amount != nil || got.Feeding.Allergies != nil || got.Dog.Name != nil {
		t.Fatalf("headers must match exactly, got %+v", got)
	}
}

func TestResolveDogID(t *testing.T) {
	cases := []struct {
		name     string
		value    any
		present  bool
		position int
		want     string
	}{
		{"explicit string", "abc", true, 1, "abc"},
		{"empty string falls back", "", true, 3, "3"},
		{"missing falls back", nil, false, 7, "7"},
		{"nil falls back", nil, true, 2, "2"},
		{"integral number", float64(42), true, 1, "42"},
		{"fractional number", 4.5, true, 1, "4.5"},
		{"zero is falsy", float64(0), true, 9, "9"},
		{"false is falsy", false, true, 4, "4"},
		{"whitespace is truthy", " ", true, 4, " "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := rows.Row{}
			if tc.present {
				row[HeaderDogID] = tc.value
			}
			if got := ResolveDogID(row, tc.position); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			if got := MapRow(row, tc.position).DogID; got != tc.want {
				t.Fatalf("MapRow dog_id: expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFieldMappings_CoverEveryProfileField(t *testing.T) {
	seenPath := map[string]bool{}
	seenHeader := map[string]bool{}
	for _, m := range FieldMappings() {
		if seenPath[m.Path] {
			t.Fatalf("duplicated path %q", m.Path)
		}
		if seenHeader[m.Header] {
			t.Fatalf("duplicated header %q", m.Header)
		}
		seenPath[m.Path] = true
		seenHeader[m.Header] = true
	}

	if len(seenPath) != 17 {
		t.Fatalf("expected 17 mapped fields, got %d", len(seenPath))
	}

	// Cada setter escribe en su campo: con todos los headers presentes no queda ningún nil.
	row := rows.Row{}
	for _, m := range FieldMappings() {
		row[m.Header] = m.Path
	}
	p := MapRow(row, 1)
	values := []any{
		p.Dog.Name, p.Dog.Age, p.Dog.Sex, p.Dog.PhotoURL,
		p.Owner.Name, p.Owner.Phone, p.Owner.PreferredContact,
		p.Feeding.Times, p.Feeding.Amount, p.Feeding.Allergies, p.Feeding.AllergiesDetail,
		p.Walks.Frequency, p.Walks.Duration,
		p.Behavior.BarksInReactionTo, p.Behavior.AfraidOf, p.Behavior.OwnersRemark, p.Behavior.MedicalConditions,
	}
	for i, v := range values {
		if v == nil {
			t.Fatalf("field %d left unset", i)
		}
	}
	if p.Owner.PreferredContact != "owner.preferred_contact" {
		t.Fatalf("setter wired to the wrong field: %v", p.Owner.PreferredContact)
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"Rex", "Rex"},
		{float64(7), "7"},
		{float64(-3), "-3"},
		{2.25, "2.25"},
		{float32(1.5), "1.5"},
		{true, "true"},
		{12, "12"},
	}
	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Fatalf("stringify(%#v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
