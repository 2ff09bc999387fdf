package detect

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	"github.com/soocke/match-overlay-go/domain/geometry"
)

// Wire shapes exchanged with the external matching engine. Payloads are
// validated here at the boundary; a malformed batch is rejected in its
// entirety so the store keeps its last-known-good content.

type wireDetection struct {
	RelativeX      *float64 `json:"relative_x"`
	RelativeY      *float64 `json:"relative_y"`
	RelativeWidth  *float64 `json:"relative_width"`
	RelativeHeight *float64 `json:"relative_height"`
	Confidence     *float64 `json:"confidence"`
	ClassName      string   `json:"class_name"`
	ClassID        int      `json:"class_id"`
	BorderColor    string   `json:"border_color"`
}

type wireRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DecodeBatch parses a serialized detection batch. Every record must carry
// all four relative fields and a confidence in [0,1]; an explicit
// border_color must be a "#rrggbb" value. Any offending record fails the
// whole batch. Records without a border_color keep it empty; the renderer
// derives one from the class id.
func DecodeBatch(data []byte) ([]Record, error) {
	var wire []wireDetection
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("detection batch: %w", err)
	}
	records := make([]Record, 0, len(wire))
	for i, d := range wire {
		if d.RelativeX == nil || d.RelativeY == nil || d.RelativeWidth == nil || d.RelativeHeight == nil {
			return nil, fmt.Errorf("detection batch: record %d missing relative coordinates", i)
		}
		if d.Confidence == nil {
			return nil, fmt.Errorf("detection batch: record %d missing confidence", i)
		}
		if *d.Confidence < 0 || *d.Confidence > 1 {
			return nil, fmt.Errorf("detection batch: record %d confidence %v outside [0,1]", i, *d.Confidence)
		}
		if *d.RelativeWidth < 0 || *d.RelativeHeight < 0 {
			return nil, fmt.Errorf("detection batch: record %d has negative relative size", i)
		}
		if d.ClassName == "" {
			return nil, fmt.Errorf("detection batch: record %d missing class_name", i)
		}
		if d.BorderColor != "" && !hexColorRe.MatchString(d.BorderColor) {
			return nil, fmt.Errorf("detection batch: record %d border_color %q is not #rrggbb", i, d.BorderColor)
		}
		records = append(records, Record{
			RelX:        *d.RelativeX,
			RelY:        *d.RelativeY,
			RelW:        *d.RelativeWidth,
			RelH:        *d.RelativeHeight,
			Confidence:  *d.Confidence,
			ClassName:   d.ClassName,
			ClassID:     d.ClassID,
			BorderColor: d.BorderColor,
		})
	}
	return records, nil
}

// DecodeRect parses a serialized selection rectangle, rounding to the one
// decimal of precision the interactive layer reports.
func DecodeRect(data []byte) (geometry.ScreenRect, error) {
	var w wireRect
	if err := json.Unmarshal(data, &w); err != nil {
		return geometry.ScreenRect{}, fmt.Errorf("selection rect: %w", err)
	}
	if w.Width < 0 || w.Height < 0 {
		return geometry.ScreenRect{}, fmt.Errorf("selection rect: negative size %vx%v", w.Width, w.Height)
	}
	return geometry.ScreenRect{
		X:      round1(w.X),
		Y:      round1(w.Y),
		Width:  round1(w.Width),
		Height: round1(w.Height),
	}, nil
}

// EncodeRect serializes a committed selection rectangle for the engine.
func EncodeRect(r geometry.ScreenRect) []byte {
	data, _ := json.Marshal(wireRect{
		X:      round1(r.X),
		Y:      round1(r.Y),
		Width:  round1(r.Width),
		Height: round1(r.Height),
	})
	return data
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
