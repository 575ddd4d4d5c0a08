package ejaan

import (
	"fmt"
	"math"

	"github.com/ejaan-id/ejaan/internal/model"
)

// StandardMargins is the required page layout in centimeters.
var StandardMargins = model.Margins{Top: 3.0, Bottom: 2.5, Left: 2.5, Right: 2.5}

// marginTolerance absorbs rounding noise from the document parser.
const marginTolerance = 0.1

// detectMargins compares the supplied margins against StandardMargins
// and emits one document-level format error per deviating dimension.
// A nil margin spec skips the check entirely.
func detectMargins(m *model.Margins) []ranked {
	if m == nil {
		return nil
	}
	dims := []struct {
		name      string
		got, want float64
	}{
		{"Margin Atas", m.Top, StandardMargins.Top},
		{"Margin Bawah", m.Bottom, StandardMargins.Bottom},
		{"Margin Kiri", m.Left, StandardMargins.Left},
		{"Margin Kanan", m.Right, StandardMargins.Right},
	}

	var out []ranked
	for _, d := range dims {
		if math.Abs(d.got-d.want) <= marginTolerance {
			continue
		}
		out = append(out, ranked{model.DetectedError{
			Kind:        model.KindFormat,
			MatchedText: d.name,
			Suggestion:  fmt.Sprintf("Atur %s menjadi %.1f cm (saat ini %.2f cm)", d.name, d.want, d.got),
		}, rankFormat})
	}
	return out
}
