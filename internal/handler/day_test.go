package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/backend/internal/calc"
	"github.com/wanderplan/backend/internal/domain"
	"github.com/wanderplan/backend/internal/store"
)

// seedDayID returns the ID of the store's seed day.
func seedDayID(docs *store.DocumentStore) string {
	return docs.Snapshot().Days[0].ID
}

// ---- POST /api/days --------------------------------------------------------

func TestCreateDay_201(t *testing.T) {
	docs := store.NewDocumentStore()
	h := newHTTPHandler(docs, nil, nil)

	rec := do(t, h, http.MethodPost, "/api/days", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	var day domain.Day
	decode(t, rec, &day)
	assert.Equal(t, "Day 2", day.Label)
	assert.Equal(t, day.ID, docs.Snapshot().ActiveDayID)
}

// ---- PATCH /api/days/{dayID} -----------------------------------------------

func TestUpdateDay_200(t *testing.T) {
	docs := store.NewDocumentStore()
	h := newHTTPHandler(docs, nil, nil)

	rec := do(t, h, http.MethodPatch, "/api/days/"+seedDayID(docs), `{"date": "2026-09-01"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var day domain.Day
	decode(t, rec, &day)
	assert.Equal(t, "2026-09-01", day.Date)
}

func TestUpdateDay_400_MissingDate(t *testing.T) {
	docs := store.NewDocumentStore()
	h := newHTTPHandler(docs, nil, nil)

	rec := do(t, h, http.MethodPatch, "/api/days/"+seedDayID(docs), `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))
}

func TestUpdateDay_404(t *testing.T) {
	h := newHTTPHandler(store.NewDocumentStore(), nil, nil)

	rec := do(t, h, http.MethodPatch, "/api/days/no-such-day", `{"date": "2026-09-01"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

// ---- DELETE /api/days/{dayID} ----------------------------------------------

func TestDeleteDay_204(t *testing.T) {
	docs := store.NewDocumentStore()
	h := newHTTPHandler(docs, nil, nil)
	second := docs.AddDay()

	rec := do(t, h, http.MethodDelete, "/api/days/"+second.ID, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, docs.Snapshot().Days, 1)
}

func TestDeleteDay_422_LastDay(t *testing.T) {
	docs := store.NewDocumentStore()
	h := newHTTPHandler(docs, nil, nil)

	rec := do(t, h, http.MethodDelete, "/api/days/"+seedDayID(docs), "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

// ---- POST /api/days/{dayID}/activate ---------------------------------------

func TestActivateDay_204(t *testing.T) {
	docs := store.NewDocumentStore()
	first := seedDayID(docs)
	docs.AddDay()
	h := newHTTPHandler(docs, nil, nil)

	rec := do(t, h, http.MethodPost, fmt.Sprintf("/api/days/%s/activate", first), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, first, docs.Snapshot().ActiveDayID)
}

func TestActivateDay_404(t *testing.T) {
	h := newHTTPHandler(store.NewDocumentStore(), nil, nil)

	rec := do(t, h, http.MethodPost, "/api/days/no-such-day/activate", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /api/days/{dayID}/leave-times -------------------------------------

func TestGetLeaveTimes_200(t *testing.T) {
	docs := store.NewDocumentStore()
	dayID := seedDayID(docs)
	first, err := docs.AddItem(dayID)
	require.NoError(t, err)
	second, err := docs.AddItem(dayID)
	require.NoError(t, err)
	loc1, loc2, tm := "淺草寺", "晴空塔", "11:00"
	_, err = docs.UpdateItem(dayID, first.ID, domain.ItemUpdate{Location: &loc1})
	require.NoError(t, err)
	_, err = docs.UpdateItem(dayID, second.ID, domain.ItemUpdate{Location: &loc2, Time: &tm})
	require.NoError(t, err)
	require.True(t, docs.ApplyEstimate(dayID, second.ID, loc1, loc2, domain.TransportTransit, "30 分"))
	h := newHTTPHandler(docs, nil, nil)

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/api/days/%s/leave-times", dayID), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var hints []calc.LeaveHint
	decode(t, rec, &hints)
	require.Len(t, hints, 1)
	assert.Equal(t, first.ID, hints[0].ItemID)
	assert.Equal(t, "10:30", hints[0].LeaveBy)
}

func TestGetLeaveTimes_200_EmptyDay(t *testing.T) {
	docs := store.NewDocumentStore()
	h := newHTTPHandler(docs, nil, nil)

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/api/days/%s/leave-times", seedDayID(docs)), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
