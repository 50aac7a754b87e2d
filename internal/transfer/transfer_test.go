package transfer_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/backend/internal/domain"
	"github.com/wanderplan/backend/internal/transfer"
)

func sampleSnapshot() domain.TripSnapshot {
	return domain.TripSnapshot{
		Days: []domain.Day{
			{ID: "d1", Label: "Day 1", Date: "2026-09-01", Items: []domain.ItineraryItem{
				{
					ID:                  "i1",
					Time:                "09:00",
					Location:            "淺草寺",
					Activity:            "參拜",
					TransportMode:       domain.TransportTransit,
					Notes:               "先買御守",
					EstimatedTravelTime: "30 分",
				},
			}},
			{ID: "d2", Label: "Day 2", Items: []domain.ItineraryItem{}},
		},
		PackingList: []domain.PackingCategory{
			{ID: "c1", Name: "衣物", Items: []domain.PackingItem{{ID: "p1", Text: "外套", Checked: true}}},
		},
		ActiveDayID: "d1",
	}
}

// ---- ExportJSON / ImportJSON -----------------------------------------------

func TestExportJSON_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	out, err := transfer.ExportJSON(snap, now)
	require.NoError(t, err)

	doc, err := transfer.ImportJSON(out)
	require.NoError(t, err)
	assert.Equal(t, snap.Days, doc.Days)
	assert.Equal(t, snap.PackingList, doc.PackingList)
	assert.True(t, now.Equal(doc.SavedAt))
}

func TestExportJSON_FieldNames(t *testing.T) {
	out, err := transfer.ExportJSON(sampleSnapshot(), time.Now())
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &m))
	// camelCase field names are the backup file contract.
	assert.Contains(t, m, "days")
	assert.Contains(t, m, "packingList")
	assert.Contains(t, m, "savedAt")

	var items []map[string]json.RawMessage
	var days []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(m["days"], &days))
	require.NoError(t, json.Unmarshal(days[0]["items"], &items))
	assert.Contains(t, items[0], "transportMode")
	assert.Contains(t, items[0], "estimatedTravelTime")
}

func TestImportJSON_NotJSONIsParseError(t *testing.T) {
	_, err := transfer.ImportJSON([]byte("definitely not json"))

	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestImportJSON_MissingDaysIsSchemaError(t *testing.T) {
	_, err := transfer.ImportJSON([]byte(`{"foo": 1}`))

	assert.ErrorIs(t, err, domain.ErrSchema)
}

func TestImportJSON_DaysNotArrayIsSchemaError(t *testing.T) {
	_, err := transfer.ImportJSON([]byte(`{"days": "tomorrow"}`))

	assert.ErrorIs(t, err, domain.ErrSchema)
}

func TestImportJSON_TopLevelArrayIsSchemaError(t *testing.T) {
	_, err := transfer.ImportJSON([]byte(`[1, 2, 3]`))

	assert.ErrorIs(t, err, domain.ErrSchema)
}

func TestImportJSON_PackingListOptional(t *testing.T) {
	doc, err := transfer.ImportJSON([]byte(`{"days": [{"label": "Day 1"}]}`))

	require.NoError(t, err)
	require.Len(t, doc.Days, 1)
	assert.Nil(t, doc.PackingList)
}

// ---- ExportText ------------------------------------------------------------

func TestExportText_Format(t *testing.T) {
	got := transfer.ExportText(sampleSnapshot())

	want := "✈️ 旅遊行程規劃 \n" +
		"\n" +
		"📅 Day 1 (2026-09-01)\n" +
		"   🕒 09:00 參拜\n" +
		"      📍 淺草寺\n" +
		"      🚗 大眾運輸 (30 分)\n" +
		"      📝 先買御守\n" +
		"\n" +
		"-------------------\n" +
		"📅 Day 2 (未定)\n" +
		"   (無行程)\n" +
		"-------------------\n"
	assert.Equal(t, want, got)
}

func TestExportText_OmitsEmptyNotes(t *testing.T) {
	snap := sampleSnapshot()
	snap.Days[0].Items[0].Notes = ""
	snap.Days[0].Items[0].EstimatedTravelTime = ""

	got := transfer.ExportText(snap)

	assert.NotContains(t, got, "📝")
	assert.Contains(t, got, "🚗 大眾運輸\n")
}

// ---- Filename --------------------------------------------------------------

func TestFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "wanderplan-2026-03-14.json", transfer.Filename(now))
}
