package tasks_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitask/internal/tasks"
)

func TestRoundTrip_PreservesPresence(t *testing.T) {
	docs := []string{
		`{"data":[{"text":"Todo"}]}`,
		`{"data":[{"text":"","notes":"","everyX":0,"completed":false,"isDue":false,"nextDue":[]}]}`,
		`{"data":[{"type":"daily","repeat":{"m":true,"su":false},"checklist":[{"completed":false,"text":"a","id":"1"}]}]}`,
		`{"data":[{},{"id":"x","frequency":"weekly","nextDue":["2026-10-19"]}]}`,
	}

	for _, doc := range docs {
		first, err := tasks.Decode(json.RawMessage(doc))
		require.NoError(t, err, doc)

		encoded, err := json.Marshal(first)
		require.NoError(t, err)

		second, err := tasks.Decode(encoded)
		require.NoError(t, err, string(encoded))

		assert.Equal(t, first.All(), second.All(), doc)
	}
}

func TestRoundTrip_Fixture(t *testing.T) {
	first, err := tasks.Decode(loadFixture(t, "tasks_user.json"))
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := tasks.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, first.All(), second.All())
}

func TestTaskMarshal_OmitsAbsentFields(t *testing.T) {
	text := "Todo"
	data, err := json.Marshal(tasks.Task{Text: &text})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Todo"}`, string(data))
}

func TestTasksMarshal_EmptyIsDataArray(t *testing.T) {
	data, err := json.Marshal(tasks.Tasks{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(data))
}

func TestQueries(t *testing.T) {
	all, err := tasks.Decode(loadFixture(t, "tasks_user.json"))
	require.NoError(t, err)

	assert.Equal(t, 1, all.Habits().Len())
	assert.Equal(t, 1, all.Dailies().Len())
	assert.Equal(t, 1, all.Todos().Len())
	assert.Equal(t, 1, all.Rewards().Len())
	assert.Equal(t, "Coffee", all.Rewards().At(0).TextOr(""))

	due := all.Due()
	require.Equal(t, 1, due.Len())
	assert.Equal(t, "Morning run", due.At(0).TextOr(""))

	none := all.OfType("quest")
	assert.Zero(t, none.Len())
}

func TestFilter_KeepsOrder(t *testing.T) {
	all, err := tasks.Decode(json.RawMessage(`{"data":[{"text":"a","completed":true},{"text":"b"},{"text":"c","completed":true}]}`))
	require.NoError(t, err)

	done := all.Filter(tasks.Task.IsCompleted)
	require.Equal(t, 2, done.Len())
	assert.Equal(t, "a", done.At(0).TextOr(""))
	assert.Equal(t, "c", done.At(1).TextOr(""))
}

func TestAll_ReturnsCopy(t *testing.T) {
	text := "original"
	ts := tasks.New([]tasks.Task{{Text: &text}})

	items := ts.All()
	other := "changed"
	items[0].Text = &other

	assert.Equal(t, "original", ts.At(0).TextOr(""))
}

func TestTask_Readers(t *testing.T) {
	var task tasks.Task
	assert.Equal(t, "(none)", task.TextOr("(none)"))
	assert.False(t, task.IsCompleted())
	assert.False(t, task.Due())
	assert.False(t, task.HasType(tasks.TypeTodo))
	assert.False(t, task.Repeat.On(tasks.Monday))
	assert.Nil(t, task.Repeat.ActiveDays())
	assert.Zero(t, task.Checklist.Done())
}
