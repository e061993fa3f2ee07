package query_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"pgregory.net/rapid"

	"tasklist/internal/query"
	"tasklist/internal/service"
)

func titles(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func collectionGenerator() *rapid.Generator[[]service.Task] {
	return rapid.Custom(func(t *rapid.T) []service.Task {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		tasks := make([]service.Task, n)
		for i := range tasks {
			tasks[i] = service.Task{
				ID:    fmt.Sprint(i + 1),
				Title: rapid.StringMatching(`[A-Za-z ]{0,12}`).Draw(t, "title"),
			}
		}
		return tasks
	})
}

func phraseGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z]{0,3}`)
}

func TestFilter_SearchScenario(t *testing.T) {
	tasks := []service.Task{{ID: "1", Title: "Buy milk"}, {ID: "2", Title: "Clean house"}}

	assert.Equal(t, []service.Task{{ID: "1", Title: "Buy milk"}}, query.Filter(tasks, "buy"))
	assert.Equal(t, tasks, query.Filter(tasks, ""))
	assert.Empty(t, query.Filter(tasks, "zzz"))
}

func TestSort_Scenario(t *testing.T) {
	tasks := []service.Task{{ID: "1", Title: "Banana"}, {ID: "2", Title: "Apple"}}

	sorted := query.Project(tasks, query.Params{SortAlphabetically: true})
	assert.Equal(t, []string{"Apple", "Banana"}, titles(sorted))

	unsorted := query.Project(tasks, query.Params{})
	assert.Equal(t, []string{"Banana", "Apple"}, titles(unsorted))
}

func TestSort_LocaleAware(t *testing.T) {
	tasks := []service.Task{
		{ID: "1", Title: "banana"},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "Éclair"},
		{ID: "4", Title: "eggs"},
	}

	// Byte order would put "Apple" before "banana" but "eggs" before "Éclair".
	got := titles(query.Sort(tasks, language.Und))
	assert.Equal(t, []string{"Apple", "banana", "Éclair", "eggs"}, got)
}

func TestSort_Cyrillic(t *testing.T) {
	tasks := []service.Task{{ID: "1", Title: "Яблоко"}, {ID: "2", Title: "арбуз"}, {ID: "3", Title: "Ёлка"}}

	got := titles(query.Sort(tasks, language.Russian))
	assert.Equal(t, []string{"арбуз", "Ёлка", "Яблоко"}, got)
}

func TestProject_DoesNotMutate(t *testing.T) {
	tasks := []service.Task{{ID: "1", Title: "b"}, {ID: "2", Title: "a"}, {ID: "3", Title: "ab"}}
	before := slices.Clone(tasks)

	query.Project(tasks, query.Params{SearchPhrase: "a", SortAlphabetically: true})

	assert.Equal(t, before, tasks)
}

func TestFilter_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := collectionGenerator().Draw(t, "tasks")
		phrase := phraseGenerator().Draw(t, "phrase")

		got := query.Filter(tasks, phrase)

		for _, task := range got {
			if !query.Matches(task.Title, phrase) {
				t.Fatalf("%q in result does not contain %q", task.Title, phrase)
			}
		}
		var want []service.Task
		for _, task := range tasks {
			if query.Matches(task.Title, phrase) {
				want = append(want, task)
			}
		}
		if len(want) != len(got) {
			t.Fatalf("got %d tasks, want %d", len(got), len(want))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestSort_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := collectionGenerator().Draw(t, "tasks")

		once := query.Sort(tasks, language.Und)
		twice := query.Sort(once, language.Und)

		if !slices.Equal(once, twice) {
			t.Fatalf("sort not idempotent:\n%v\n%v", once, twice)
		}
	})
}

func TestFilterSort_Commute(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := collectionGenerator().Draw(t, "tasks")
		phrase := phraseGenerator().Draw(t, "phrase")

		a := query.Sort(query.Filter(tasks, phrase), language.Und)
		b := query.Filter(query.Sort(tasks, language.Und), phrase)

		if !slices.Equal(a, b) {
			t.Fatalf("filter/sort do not commute:\n%v\n%v", a, b)
		}
	})
}
