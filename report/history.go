package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/montepi/estimator"
)

// historyTimeLayout renders stored timestamps in the history table (UTC).
const historyTimeLayout = "2006-01-02 15:04:05"

// HistoryEntry is one previously saved run.
type HistoryEntry struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Seed      *int64           `json:"seed,omitempty"`
	Report    estimator.Report `json:"report"`
}

// WriteHistory renders saved runs to w, one row per entry in the given order.
// JSON output is an array ([] when entries is empty).
func WriteHistory(w io.Writer, entries []HistoryEntry, format Format) error {
	switch format {
	case FormatJSON:
		if entries == nil {
			entries = []HistoryEntry{}
		}
		return writeJSON(w, entries)
	case FormatTable:
		t := newTable("id", "created (UTC)", "dimension", "samples", "π", "conf. interval @95%", "seed")
		for _, e := range entries {
			rep := e.Report
			seed := "-"
			if e.Seed != nil {
				seed = strconv.FormatInt(*e.Seed, 10)
			}
			t.add(
				strconv.FormatInt(e.ID, 10),
				e.CreatedAt.UTC().Format(historyTimeLayout),
				formatCount(rep.Dimension),
				formatCount(rep.SampleCount),
				formatFixed(rep.Pi, rep.Precision),
				fmt.Sprintf("[%s, %s]", formatFixed(rep.Lower, rep.Precision), formatFixed(rep.Upper, rep.Precision)),
				seed,
			)
		}
		return t.write(w)
	default:
		return fmt.Errorf("WriteHistory: %w: %q", ErrUnknownFormat, format)
	}
}
