package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormStateStoresRejectedValues(t *testing.T) {
	f := NewFormState(ReviewFields...)

	f.Set(FieldFirstName, "J0hn", "Only alphabets are allowed")
	assert.Equal(t, "J0hn", f.Value(FieldFirstName))
	assert.Equal(t, "Only alphabets are allowed", f.Error(FieldFirstName))
	assert.True(t, f.HasErrors())

	f.Set(FieldFirstName, "John", "")
	assert.False(t, f.HasErrors())
}

func TestFormStateReset(t *testing.T) {
	f := NewFormState(ReviewFields...)
	f.Set(FieldLastName, "D0e", "Only alphabets are allowed")
	f.Set(FieldEmail, "j@x.com", "")

	f.Reset()

	for _, field := range ReviewFields {
		assert.True(t, f.Has(field))
		assert.Empty(t, f.Value(field))
		assert.Empty(t, f.Error(field))
	}
}

func TestFormStateSnapshotIsACopy(t *testing.T) {
	f := NewFormState(ReviewFields...)
	f.Set(FieldComments, "Nice", "")

	values, errs := f.Snapshot()
	values[FieldComments] = "changed"
	errs[FieldComments] = "changed"

	assert.Equal(t, "Nice", f.Value(FieldComments))
	assert.Empty(t, f.Error(FieldComments))
}

func TestStatusDialog(t *testing.T) {
	d := StatusDialog{Title: "Movie Add Status"}
	d.Show("Movie added successfully")
	assert.True(t, d.Open)
	assert.Equal(t, "Movie added successfully", d.Message)

	d.Close()
	assert.False(t, d.Open)
	assert.Equal(t, "Movie added successfully", d.Message)
}
