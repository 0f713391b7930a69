package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpense_UnmarshalJSON(t *testing.T) {
	var e Expense
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","amount":12.5,"category":"food",
		"description":"Lunch","date":"2024-03-05","createdAt":"2024-03-05T10:00:00Z"}`), &e))

	assert.Equal(t, Expense{
		ID:          "a",
		Amount:      NewAmountFromString("12.5"),
		Category:    "food",
		Description: "Lunch",
		Date:        "2024-03-05",
		CreatedAt:   "2024-03-05T10:00:00Z",
	}, e)
}

func TestExpense_UnmarshalJSON_NonStringFieldsKeepRawText(t *testing.T) {
	var e Expense
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"amount":{"v":1},"category":true,
		"description":["a","b"],"date":20240306}`), &e))

	assert.Equal(t, "7", e.ID)
	assert.Equal(t, "true", e.Category)
	assert.Equal(t, `["a","b"]`, e.Description)
	assert.Equal(t, "20240306", e.Date)
	assert.False(t, e.Amount.Valid())
	_, ok := e.CalendarDate()
	assert.False(t, ok)
}

func TestExpense_UnmarshalJSON_MissingAndNullFields(t *testing.T) {
	var e Expense
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","description":null}`), &e))
	assert.Equal(t, Expense{ID: "x"}, e)
}

func TestExpense_UnmarshalJSON_NotAnObject(t *testing.T) {
	var e Expense
	assert.Error(t, json.Unmarshal([]byte(`"just text"`), &e))
	assert.Error(t, json.Unmarshal([]byte(`42`), &e))
}

func TestExpense_RoundTripKeepsDegradedValues(t *testing.T) {
	var e Expense
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b","amount":"n/a","date":20240306}`), &e))

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var again Expense
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, e, again)
}
