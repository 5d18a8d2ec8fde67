package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespondHistories_LevelFilter(t *testing.T) {
	histories := []LevelHistory{
		{Level: "l1"},
		{Level: "l2"},
	}

	rec := httptest.NewRecorder()
	respondHistories(rec, histories, "l2")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

func TestRespondHistories_UnknownLevel(t *testing.T) {
	histories := []LevelHistory{
		{Level: "l1"},
	}

	rec := httptest.NewRecorder()
	respondHistories(rec, histories, "nope")

	// Même réponse que le tableau par défaut pour un niveau inconnu
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "level not found in category", resp.Error)
}

func TestRespondRecords_UnknownLevel(t *testing.T) {
	computed := []model.WorldRecordBoard{
		{Level: "l1"},
	}

	rec := httptest.NewRecorder()
	respondRecords(rec, computed, "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "level not found in category", resp.Error)
}

func TestRespondHistories_NoFilter(t *testing.T) {
	rec := httptest.NewRecorder()
	respondHistories(rec, []LevelHistory{{Level: "l1"}, {Level: "l2"}}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
