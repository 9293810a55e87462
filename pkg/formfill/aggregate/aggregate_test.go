package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ukaji3/formfill-go/pkg/formfill/models"
)

func pairs(kv ...string) []models.Pair {
	out := make([]models.Pair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, models.Pair{Question: kv[i], Answer: kv[i+1]})
	}
	return out
}

func TestGroupQuestions(t *testing.T) {
	header := []string{"ФИО", "Q1 / A", "Q2 / X", "Q1 / B", "Q1", "Q1 / Баллы", "Q3 / a / b"}

	got := GroupQuestions(header, "")
	want := []models.QuestionGroup{
		{Key: "Q1", Columns: []string{"Q1 / A", "Q1 / B", "Q1 / Баллы"}},
		{Key: "Q2", Columns: []string{"Q2 / X"}},
		{Key: "Q3", Columns: []string{"Q3 / a / b"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupQuestions mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateRenderedAnswer(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		row    []string
		want   []models.Pair
	}{
		{
			name:   "main options and score",
			header: []string{"Q", "Q / A", "Q / B", "Q / Баллы"},
			row:    []string{"main", "x", "y", "7"},
			want:   pairs("Q", "main, A, B; баллы - 7"),
		},
		{
			name:   "options only",
			header: []string{"Q / A", "Q / B", "Q / C"},
			row:    []string{"1", "", "1"},
			want:   pairs("Q", "A, C"),
		},
		{
			name:   "score only",
			header: []string{"Q / A", "Q / Баллы"},
			row:    []string{"", "3"},
			want:   pairs("Q", "баллы - 3"),
		},
		{
			name:   "everything empty",
			header: []string{"Q", "Q / A", "Q / Баллы"},
			row:    []string{"", "", ""},
			want:   pairs("Q", ""),
		},
		{
			name:   "score marker is case sensitive",
			header: []string{"Q / баллы"},
			row:    []string{"4"},
			want:   pairs("Q", "баллы"),
		},
		{
			name:   "suffix keeps later separators",
			header: []string{"Q / a / b"},
			row:    []string{"1"},
			want:   pairs("Q", "a / b"),
		},
		{
			name:   "empty suffix contributes nothing",
			header: []string{"Q / ", "Q / A"},
			row:    []string{"1", "1"},
			want:   pairs("Q", "A"),
		},
		{
			name:   "duplicate header reads first occurrence",
			header: []string{"Q / Баллы", "Q / A", "Q / Баллы"},
			row:    []string{"1", "", "2"},
			want:   pairs("Q", "баллы - 1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.header, [][]string{tt.row}, DefaultOptions())
			if len(got) != 1 {
				t.Fatalf("expected 1 mapping, got %d", len(got))
			}
			if diff := cmp.Diff(tt.want, got[0].Pairs()); diff != "" {
				t.Errorf("answers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregateSimpleFields(t *testing.T) {
	header := []string{"ФИО", "Q / A", "Группа", "Q", "Email"}
	rows := [][]string{
		{"Иванов Иван", "1", "Б-101", "main", "ivanov@example.com"},
		{"Петров Петр", "", "Б-102"},
	}

	got := Aggregate(header, rows, DefaultOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(got))
	}

	want0 := pairs("Q", "main, A", "ФИО", "Иванов Иван", "Группа", "Б-101", "Email", "ivanov@example.com")
	if diff := cmp.Diff(want0, got[0].Pairs()); diff != "" {
		t.Errorf("row 0 mismatch (-want +got):\n%s", diff)
	}

	// Short row: Email is absent, the group is present but empty.
	want1 := pairs("Q", "", "ФИО", "Петров Петр", "Группа", "Б-102")
	if diff := cmp.Diff(want1, got[1].Pairs()); diff != "" {
		t.Errorf("row 1 mismatch (-want +got):\n%s", diff)
	}
	if got[1].Has("Email") {
		t.Error("short row should not carry Email")
	}
}

func TestAggregateEndToEndScenario(t *testing.T) {
	header := []string{"ФИО", "Вопрос / Да", "Вопрос / Баллы"}
	rows := [][]string{{"Иванов Иван", "Да", "5"}}

	got := Aggregate(header, rows, DefaultOptions())
	if len(got) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(got))
	}
	if diff := cmp.Diff(pairs("Вопрос", "Да; баллы - 5", "ФИО", "Иванов Иван"), got[0].Pairs()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if got := Aggregate(nil, [][]string{{"a"}}, DefaultOptions()); len(got) != 0 {
		t.Errorf("no header: got %d mappings", len(got))
	}
	if got := Aggregate([]string{"ФИО"}, nil, DefaultOptions()); len(got) != 0 {
		t.Errorf("no rows: got %d mappings", len(got))
	}
	if got := AggregateTable(nil, DefaultOptions()); len(got) != 0 {
		t.Errorf("nil table: got %d mappings", len(got))
	}
}

func TestAggregateCustomLiterals(t *testing.T) {
	opts := Options{Separator: " | ", ScoreMarker: "Score", ScoreLabel: "score"}
	header := []string{"Name", "Q | Yes", "Q | Score"}

	got := Aggregate(header, [][]string{{"O'Brien", "1", "9"}}, opts)
	if len(got) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(got))
	}
	if diff := cmp.Diff(pairs("Q", "Yes; score - 9", "Name", "O'Brien"), got[0].Pairs()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
