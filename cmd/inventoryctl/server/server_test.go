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

func newTestServer(t *testing.T) *Server {
	t.Helper()
	keys, err := SetupAllCircuits()
	require.NoError(t, err)
	return NewServer(Config{Host: "localhost", Port: 0}, keys)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGenerateBlinding(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/blinding/generate", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["blinding"])
}

func TestCreateCommitment(t *testing.T) {
	s := newTestServer(t)
	blinding := doJSON(t, s, http.MethodPost, "/api/blinding/generate", nil)
	var blindingResp map[string]string
	require.NoError(t, json.Unmarshal(blinding.Body.Bytes(), &blindingResp))

	req := createCommitmentRequest{
		Slots:    []slotRequest{{ItemID: 1, Quantity: 10}},
		Blinding: blindingResp["blinding"],
	}
	w := doJSON(t, s, http.MethodPost, "/api/commitment/create", req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]byte
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["commitment"], 32)
}

func TestCreateCommitmentRejectsInvalidBlinding(t *testing.T) {
	s := newTestServer(t)
	req := createCommitmentRequest{
		Slots:    []slotRequest{{ItemID: 1, Quantity: 10}},
		Blinding: "not-a-field-element",
	}
	w := doJSON(t, s, http.MethodPost, "/api/commitment/create", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProveItemExistsRoundTrip(t *testing.T) {
	s := newTestServer(t)
	blinding := doJSON(t, s, http.MethodPost, "/api/blinding/generate", nil)
	var blindingResp map[string]string
	require.NoError(t, json.Unmarshal(blinding.Body.Bytes(), &blindingResp))

	req := proveItemExistsRequest{
		Slots:       []slotRequest{{ItemID: 1, Quantity: 10}, {ItemID: 2, Quantity: 5}},
		Blinding:    blindingResp["blinding"],
		ItemID:      1,
		MinQuantity: 5,
	}
	w := doJSON(t, s, http.MethodPost, "/api/prove/item-exists", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["proof"])
	assert.NotEmpty(t, resp["commitment"])
}

func TestProveItemExistsRejectsUnsatisfiedWitness(t *testing.T) {
	s := newTestServer(t)
	blinding := doJSON(t, s, http.MethodPost, "/api/blinding/generate", nil)
	var blindingResp map[string]string
	require.NoError(t, json.Unmarshal(blinding.Body.Bytes(), &blindingResp))

	req := proveItemExistsRequest{
		Slots:       []slotRequest{{ItemID: 1, Quantity: 10}},
		Blinding:    blindingResp["blinding"],
		ItemID:      1,
		MinQuantity: 999,
	}
	w := doJSON(t, s, http.MethodPost, "/api/prove/item-exists", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
