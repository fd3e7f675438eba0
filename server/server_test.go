package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndClassifyOverHTTP(t *testing.T) {
	s := New(Config{})

	createBody := `{
		"bounds": {"x": 8, "y": 8, "width": 16},
		"precision": 1,
		"allow": [[[16,8],[8,16],[0,8],[8,0]]]
	}`
	req := httptest.NewRequest(http.MethodPost, "/terrain", bytes.NewBufferString(createBody))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	req = httptest.NewRequest(http.MethodGet, "/terrain/"+created.ID+"/classify?x=4.5&y=8", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var classified struct {
		Value uint8 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classified))
	assert.EqualValues(t, 0, classified.Value)

	req = httptest.NewRequest(http.MethodGet, "/terrain/"+created.ID+"/classify?x=4.5&y=1", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classified))
	assert.EqualValues(t, 0x99, classified.Value)
}

func TestInterpRejectsGridBackedTerrain(t *testing.T) {
	s := New(Config{})

	createBody := `{"bounds": {"x": 0, "y": 0, "width": 4}, "precision": 1, "allow": []}`
	req := httptest.NewRequest(http.MethodPost, "/terrain", bytes.NewBufferString(createBody))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req = httptest.NewRequest(http.MethodGet, "/terrain/"+created.ID+"/interp?x=0&y=0", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestClassifyUnknownHandleIs404(t *testing.T) {
	s := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/terrain/does-not-exist/classify?x=0&y=0", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
