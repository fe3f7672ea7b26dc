package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatMarkdown, formatJSON, formatYAML:
		return true
	default:
		return false
	}
}

type paneView struct {
	Stage  string `json:"stage" yaml:"stage"`
	Status string `json:"status" yaml:"status"`
	Text   string `json:"text" yaml:"text"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

type weatherView struct {
	Location    string  `json:"location" yaml:"location"`
	AvgMaxTempC float64 `json:"avg_max_temp_c" yaml:"avg_max_temp_c"`
	AvgTemp     string  `json:"avg_temp" yaml:"avg_temp"`
}

type briefView struct {
	RunID       string       `json:"run_id" yaml:"run_id"`
	Origin      string       `json:"origin" yaml:"origin"`
	Destination string       `json:"destination" yaml:"destination"`
	Panes       []paneView   `json:"panes" yaml:"panes"`
	Weather     *weatherView `json:"weather,omitempty" yaml:"weather,omitempty"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
}

func toView(b models.Brief) briefView {
	v := briefView{
		RunID:       b.RunID,
		Origin:      b.Request.Origin,
		Destination: b.Request.Destination,
		GeneratedAt: b.GeneratedAt,
	}
	for _, p := range b.Panes() {
		pv := paneView{Stage: p.Stage.String(), Status: p.Status.String(), Text: p.Display()}
		if p.Err != nil {
			pv.Error = p.Err.Error()
		}
		v.Panes = append(v.Panes, pv)
	}
	if b.Weather != nil {
		v.Weather = &weatherView{
			Location:    b.Weather.Location,
			AvgMaxTempC: b.Weather.AvgMaxTempC,
			AvgTemp:     b.Weather.AverageTemp(),
		}
	}
	return v
}

func writeBrief(w io.Writer, format string, b models.Brief) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toView(b))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toView(b)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeMarkdown(w, b)
	}
}

var (
	headingOK   = color.New(color.FgCyan, color.Bold)
	headingFail = color.New(color.FgRed, color.Bold)
	faint       = color.New(color.Faint)
)

func writeMarkdown(w io.Writer, b models.Brief) error {
	titles := map[models.Stage]string{
		models.StageIntroduction: "🌍 Introduction",
		models.StageFlights:      "✈️ Flights",
		models.StageSummary:      "🧳 Summary",
	}

	faint.Fprintf(w, "<!-- %s → %s, run %s -->\n\n", b.Request.Origin, b.Request.Destination, b.RunID)
	for _, p := range b.Panes() {
		heading := headingOK
		if p.Failed() {
			heading = headingFail
		}
		heading.Fprintf(w, "## %s\n\n", titles[p.Stage])
		if _, err := fmt.Fprintf(w, "%s\n\n", strings.TrimRight(p.Display(), "\n")); err != nil {
			return err
		}
	}
	if b.Weather != nil {
		faint.Fprintf(w, "🌡️ %s: average daily high %s\n", b.Weather.Location, b.Weather.AverageTemp())
	}
	return nil
}
