package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContact(t *testing.T) {
	raw := []byte(`{
		"id": "c1",
		"l": "7",
		"fileAsStr": "Doe, John",
		"t": "101,102",
		"rev": 42,
		"_attrs": {"firstName": "John", "lastName": "Doe", "email": "john@example.com"}
	}`)

	w, err := DecodeContact(raw)
	require.NoError(t, err)

	assert.Equal(t, "c1", w.ID)
	assert.Equal(t, "7", w.FolderID)
	assert.Equal(t, "Doe, John", w.FileAs)
	assert.Equal(t, "101,102", w.Tags)
	assert.Equal(t, "John", w.Attrs["firstName"])
}

func TestDecodeContact_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing id", raw: `{"l": "7"}`},
		{name: "missing parent folder", raw: `{"id": "c1"}`},
		{name: "non-string attr value", raw: `{"id": "c1", "l": "7", "_attrs": {"firstName": 5}}`},
		{name: "not json", raw: `{"id": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeContact([]byte(tt.raw))
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "contact", decodeErr.Kind)
		})
	}
}

func TestDecodeFolder(t *testing.T) {
	raw := []byte(`{
		"id": "1",
		"name": "USER_ROOT",
		"folder": [
			{"id": "7", "name": "Contacts", "l": "1", "view": "contact", "n": 12},
			{"id": "3", "name": "Trash", "l": "1", "n": 0}
		],
		"link": [
			{"id": "257", "name": "Shared", "l": "1", "view": "contact", "owner": "bob@example.com", "perm": "r"}
		]
	}`)

	w, err := DecodeFolder(raw)
	require.NoError(t, err)

	require.Len(t, w.Folders, 2)
	require.Len(t, w.Links, 1)
	assert.Equal(t, "Contacts", w.Folders[0].Name)
	assert.Equal(t, 12, w.Folders[0].ItemsCount)
	assert.Equal(t, "bob@example.com", w.Links[0].Owner)
}

func TestDecodeFolder_Invalid(t *testing.T) {
	_, err := DecodeFolder([]byte(`{"name": "no id"}`))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "folder", decodeErr.Kind)
}
