package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/montepi/coverage"
	"github.com/katalvlaran/montepi/estimator"
)

// WriteReport renders rep to w in the given format.
//
// The table mirrors the classic summary:
//
//	dimension, samples, samples in n-sphere, π, conf. interval @95%
func WriteReport(w io.Writer, rep estimator.Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rep)
	case FormatTable:
		t := newTable("quantity", "value")
		t.add("dimension", formatCount(rep.Dimension))
		t.add("samples", formatCount(rep.SampleCount))
		t.add(fmt.Sprintf("samples in %d-sphere", rep.Dimension), formatCount(rep.InsideCount))
		t.add("π", formatFixed(rep.Pi, rep.Precision))
		t.add("conf. interval @95%", fmt.Sprintf("[%s, %s]",
			formatFixed(rep.Lower, rep.Precision), formatFixed(rep.Upper, rep.Precision)))
		return t.write(w)
	default:
		return fmt.Errorf("WriteReport: %w: %q", ErrUnknownFormat, format)
	}
}

// WriteStudy renders a coverage study result to w in the given format.
func WriteStudy(w io.Writer, res coverage.Result, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatTable:
		t := newTable("quantity", "value")
		t.add("dimension", formatCount(res.Dimension))
		t.add("samples per run", formatCount(res.SampleCount))
		t.add("runs", formatCount(res.Runs))
		t.add("runs covering π", formatCount(res.Hits))
		t.add("coverage rate", fmt.Sprintf("%.3f", res.Rate))
		t.add("half-width", fmt.Sprintf("%.6g", res.HalfWidth))
		t.add("mean estimate", fmt.Sprintf("%.6f", res.MeanEstimate))
		t.add("stddev of estimates", fmt.Sprintf("%.6f", res.StdDevEstimate))
		t.add("median estimate", fmt.Sprintf("%.6f", res.MedianEstimate))
		t.add("range", fmt.Sprintf("[%.6f, %.6f]", res.MinEstimate, res.MaxEstimate))
		return t.write(w)
	default:
		return fmt.Errorf("WriteStudy: %w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
