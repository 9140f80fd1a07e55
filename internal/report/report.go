// Package report writes attack outcomes to the console, an append-only text
// log and a JSON summary file.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/sandokanCat/open-utils/internal/cracker"
)

// Reporter fans one outcome out to every configured sink. File sinks failing
// is never fatal: the result is already on the console, so failures only log
// a warning.
type Reporter struct {
	// Save is the append-only text log path. Empty disables it.
	Save string
	// JSON is the summary path, overwritten per target. Empty disables it.
	JSON string
	// Quiet suppresses all console output.
	Quiet  bool
	Logger zerolog.Logger
}

type foundRecord struct {
	Found          bool    `json:"found"`
	Hash           string  `json:"hash"`
	Algorithm      string  `json:"algorithm"`
	Password       string  `json:"password"`
	Generated      string  `json:"generated"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

type notFoundRecord struct {
	Found          bool    `json:"found"`
	Hash           string  `json:"hash"`
	Reason         string  `json:"reason"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// Report prints and persists one outcome. elapsed is the session elapsed
// time recorded in the JSON summary.
func (r *Reporter) Report(out cracker.Outcome, elapsed time.Duration) {
	if out.Found {
		r.reportFound(out, elapsed)
		return
	}
	r.reportNotFound(out, elapsed)
}

func (r *Reporter) reportFound(out cracker.Outcome, elapsed time.Duration) {
	if !r.Quiet {
		color.Green("\nSUCCESS! (%s)", strings.ToUpper(out.Algorithm.String()))
		fmt.Printf("Full password: '%s'\n", out.Secret)
		fmt.Printf("Generated Hash: %s\n", out.Digest)
	}
	if r.Save != "" {
		r.appendRecord(out)
	}
	if r.JSON != "" {
		r.writeJSON(foundRecord{
			Found:          true,
			Hash:           out.Hash,
			Algorithm:      out.Algorithm.String(),
			Password:       out.Secret,
			Generated:      out.Digest,
			ElapsedSeconds: roundSeconds(elapsed),
		})
	}
}

func (r *Reporter) reportNotFound(out cracker.Outcome, elapsed time.Duration) {
	if !r.Quiet {
		color.Red("Hash %s not found.", out.Hash)
	}
	if r.JSON != "" {
		r.writeJSON(notFoundRecord{
			Found:          false,
			Hash:           out.Hash,
			Reason:         "No match found",
			ElapsedSeconds: roundSeconds(elapsed),
		})
	}
}

func (r *Reporter) appendRecord(out cracker.Outcome) {
	f, err := os.OpenFile(r.Save, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.Logger.Warn().Err(err).Str("file", r.Save).Msg("could not save result")
		return
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s [%s] %s → %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		strings.ToUpper(out.Algorithm.String()), out.Secret, out.Digest)
	if err != nil {
		r.Logger.Warn().Err(err).Str("file", r.Save).Msg("could not save result")
		return
	}
	if !r.Quiet {
		fmt.Printf("Saved to '%s'\n", r.Save)
	}
}

func (r *Reporter) writeJSON(data any) {
	b, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		r.Logger.Warn().Err(err).Str("file", r.JSON).Msg("could not save JSON")
		return
	}
	if err := os.WriteFile(r.JSON, b, 0o644); err != nil {
		r.Logger.Warn().Err(err).Str("file", r.JSON).Msg("could not save JSON")
		return
	}
	if !r.Quiet {
		fmt.Printf("JSON saved to '%s'\n", r.JSON)
	}
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
