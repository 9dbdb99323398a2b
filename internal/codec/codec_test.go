package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookmarkCodec() *JSONCodec[models.Bookmark] {
	return NewJSONCodec[models.Bookmark]("Bookmark", "Bookmark")
}

func TestJSONCodec_Encode_NeverSynced(t *testing.T) {
	b := models.NewBookmark("Go", "https://go.dev")

	record, err := newBookmarkCodec().Encode(b)
	require.NoError(t, err)

	assert.Equal(t, b.ID, record.Name)
	assert.Equal(t, "Bookmark", record.Zone)
	assert.Equal(t, "Bookmark", record.Type)
	assert.Empty(t, record.ChangeTag)
	assert.JSONEq(t, `"Go"`, string(record.Fields["title"]))
	assert.JSONEq(t, `"https://go.dev"`, string(record.Fields["url"]))
}

func TestJSONCodec_Encode_CarriesSystemFields(t *testing.T) {
	modified := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	server := models.RemoteRecord{Name: "id-1", Zone: "Bookmark", Type: "Bookmark", ChangeTag: "v7", ModifiedAt: &modified}

	b := models.Bookmark{ID: "id-1", Title: "t"}.WithSystemFields(server.SystemFields())

	record, err := newBookmarkCodec().Encode(b)
	require.NoError(t, err)
	assert.Equal(t, "v7", record.ChangeTag)
	require.NotNil(t, record.ModifiedAt)
	assert.True(t, modified.Equal(*record.ModifiedAt))
}

func TestJSONCodec_Encode_EmptyName(t *testing.T) {
	_, err := newBookmarkCodec().Encode(models.Bookmark{})
	assert.ErrorIs(t, err, ErrEmptyRecordName)
}

func TestJSONCodec_Encode_BadSystemFields(t *testing.T) {
	b := models.Bookmark{ID: "x"}.WithSystemFields([]byte("{broken"))
	_, err := newBookmarkCodec().Encode(b)
	assert.Error(t, err)
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	c := newBookmarkCodec()
	original := models.Bookmark{
		ID:      "id-2",
		Title:   "Example",
		URL:     "https://example.com",
		Created: time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC),
	}

	record, err := c.Encode(original)
	require.NoError(t, err)

	record.ChangeTag = "server-tag"

	decoded, err := c.Decode(record)
	require.NoError(t, err)

	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Title, decoded.Title)
	assert.Equal(t, original.URL, decoded.URL)
	assert.True(t, original.Created.Equal(decoded.Created))

	info, err := models.ParseSystemFields(decoded.SystemFields())
	require.NoError(t, err)
	assert.Equal(t, "server-tag", info.ChangeTag)
}

func TestJSONCodec_Decode_TypeMismatch(t *testing.T) {
	_, err := newBookmarkCodec().Decode(models.RemoteRecord{Name: "x", Type: "Note"})
	assert.ErrorIs(t, err, ErrRecordTypeMismatch)
}

func TestJSONCodec_Decode_BadField(t *testing.T) {
	_, err := newBookmarkCodec().Decode(models.RemoteRecord{
		Name:   "x",
		Type:   "Bookmark",
		Fields: map[string]json.RawMessage{"created": json.RawMessage(`"not a time"`)},
	})
	assert.Error(t, err)
}
