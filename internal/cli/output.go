package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mcoot/guavagrams/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Verdict:
		o.printVerdict(v)
	case response.Pile:
		o.printf("Distribution: %s\n", v.Distribution)
		o.printf("Size: %d\n", v.Size)
		o.printf("Letters: %s\n", strings.Join(v.Letters, " "))
	case response.Draw:
		o.printf("Distribution: %s\n", v.Distribution)
		o.printf("Letters: %s\n", strings.Join(v.Letters, " "))
	case response.Distribution:
		o.printDistribution(v)
	case response.DictionaryList:
		if len(v.Dictionaries) == 0 {
			o.printf("No dictionaries loaded\n")
		}
		for _, d := range v.Dictionaries {
			o.printf("%s (%d words)\n", d.Name, d.WordCount)
		}
	case response.Dictionary:
		o.printf("%s (%d words)\n", v.Name, v.WordCount)
	case response.ScoreTable:
		o.printScoreTable(v)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printVerdict(v response.Verdict) {
	if v.Layout != "" {
		o.printf("%s\n", strings.TrimRight(v.Layout, "\n"))
	}
	o.printf("Words (%d):\n", len(v.Words))
	for _, w := range v.Breakdown {
		penalty := ""
		if w.Penalty != 1 {
			penalty = fmt.Sprintf(" x%.2f repeat", w.Penalty)
		}
		o.printf("  - %s: %d base x%.1f%s = %d pts\n", w.Word, w.Base, w.Multiplier, penalty, w.Points)
	}
	o.printf("Score: %d\n", v.Score)
}

func (o *Output) printDistribution(d response.Distribution) {
	o.printf("Distribution: %s\n", d.Name)
	o.printf("Total: %d\n", d.Total)
	for _, w := range d.Weights {
		o.printf("  %s: %d\n", w.Letter, w.Count)
	}
}

func (o *Output) printScoreTable(t response.ScoreTable) {
	letters := make([]string, 0, len(t))
	for l := range t {
		letters = append(letters, l)
	}
	slices.Sort(letters)
	for _, l := range letters {
		o.printf("  %s: %d\n", l, t[l])
	}
}
