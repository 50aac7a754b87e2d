// Package transfer converts the trip document to and from its portable
// forms: the JSON backup envelope and the one-way human-readable text
// report. Import validation lives here; the store only sees documents
// that already passed the schema check.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wanderplan/backend/internal/domain"
)

// ExportJSON builds the backup envelope from a snapshot, stamping SavedAt
// with the given time, and serializes it as indented JSON. The byte-level
// format is a convenience export, not a versioned wire protocol; only the
// field names and types are contractual.
func ExportJSON(snap domain.TripSnapshot, now time.Time) ([]byte, error) {
	doc := domain.TripDocument{
		Days:        snap.Days,
		PackingList: snap.PackingList,
		SavedAt:     now,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("transfer.ExportJSON: %w", err)
	}
	return out, nil
}

// ImportJSON parses a backup file. It fails with domain.ErrParse when raw
// is not valid JSON at all, and with domain.ErrSchema when the document
// lacks a "days" array. The acceptance criterion is deliberately loose:
// any JSON object whose top-level "days" field is an array is accepted;
// "packingList" is optional.
func ImportJSON(raw []byte) (domain.TripDocument, error) {
	if !json.Valid(raw) {
		return domain.TripDocument{}, fmt.Errorf("transfer.ImportJSON: %w", domain.ErrParse)
	}

	var probe struct {
		Days json.RawMessage `json:"days"`
	}
	// A top-level value that is not an object (e.g. a bare array or number)
	// is valid JSON but cannot carry a "days" field: a schema problem.
	if err := json.Unmarshal(raw, &probe); err != nil || !isJSONArray(probe.Days) {
		return domain.TripDocument{}, fmt.Errorf("transfer.ImportJSON: %w", domain.ErrSchema)
	}

	var doc domain.TripDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Well-formed JSON with a days array whose elements do not fit the
		// document shape is a schema problem, not a parse problem.
		return domain.TripDocument{}, fmt.Errorf("transfer.ImportJSON: %w: %v", domain.ErrSchema, err)
	}
	return doc, nil
}

// isJSONArray reports whether the raw message is a JSON array value.
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// ExportText renders the itinerary as a plain-text report for clipboard
// and human consumption. One-way: never parsed back in.
func ExportText(snap domain.TripSnapshot) string {
	var b strings.Builder
	b.WriteString("✈️ 旅遊行程規劃 \n\n")
	for _, day := range snap.Days {
		date := day.Date
		if date == "" {
			date = "未定"
		}
		fmt.Fprintf(&b, "📅 %s (%s)\n", day.Label, date)
		if len(day.Items) == 0 {
			b.WriteString("   (無行程)\n")
		}
		for _, item := range day.Items {
			fmt.Fprintf(&b, "   🕒 %s %s\n", item.Time, item.Activity)
			fmt.Fprintf(&b, "      📍 %s\n", item.Location)
			transport := domain.TransportLabels[item.TransportMode]
			if item.EstimatedTravelTime != "" {
				transport += fmt.Sprintf(" (%s)", item.EstimatedTravelTime)
			}
			fmt.Fprintf(&b, "      🚗 %s\n", transport)
			if item.Notes != "" {
				fmt.Fprintf(&b, "      📝 %s\n", item.Notes)
			}
			b.WriteString("\n")
		}
		b.WriteString("-------------------\n")
	}
	return b.String()
}

// Filename returns the conventional backup file name for an export
// performed at the given time, e.g. "wanderplan-2026-03-14.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("wanderplan-%s.json", now.Format("2006-01-02"))
}
