package calculator

import (
	"fmt"

	"StockWatch/internal/model"
)

// VolumeChange labels each day's volume against the previous trading day.
// The first day has no prior to compare and is always ChangeUndefined, as
// are days with unchanged volume.
func VolumeChange(s model.VolumeSeries) (model.VolumeChangeSeries, error) {
	if len(s.Points) == 0 {
		return model.VolumeChangeSeries{}, fmt.Errorf("volume change %s: %w", s.Ticker, model.ErrNoData)
	}

	out := model.VolumeChangeSeries{
		Ticker: s.Ticker,
		Points: make([]model.VolumeChangePoint, len(s.Points)),
	}
	for i, p := range s.Points {
		label := model.ChangeUndefined
		if i > 0 {
			label = classify(s.Points[i-1].Volume, p.Volume)
		}
		out.Points[i] = model.VolumeChangePoint{Date: p.Date, Volume: p.Volume, Change: label}
	}

	// Invariant: every label is a member of the allowed set.
	for _, p := range out.Points {
		switch p.Change {
		case model.ChangeIncrease, model.ChangeDecrease, model.ChangeUndefined:
		default:
			return model.VolumeChangeSeries{}, fmt.Errorf("label %q: %w", p.Change, model.ErrInvalidClassification)
		}
	}
	return out, nil
}

func classify(prev, cur int64) model.VolumeChange {
	switch {
	case cur > prev:
		return model.ChangeIncrease
	case cur < prev:
		return model.ChangeDecrease
	default:
		return model.ChangeUndefined
	}
}
