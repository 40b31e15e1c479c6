package automatic

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

const histogramBins = 10

// Summary holds score statistics over a set of games.
type Summary struct {
	Games    int
	Finished int
	Words    int
	Mean     float64
	StdDev   float64
	Median   float64
	Max      float64
	// Scores are sorted in increasing order.
	Scores []float64
	hist   histogram.Histogram
}

// Summarize computes statistics over records. Nil records, from games that
// never ran, are skipped.
func Summarize(records []*GameRecord) *Summary {
	s := &Summary{}
	for _, r := range records {
		if r == nil {
			continue
		}
		s.Games++
		if r.Finished {
			s.Finished++
		}
		s.Words += len(r.Words)
		s.Scores = append(s.Scores, float64(r.Score))
	}
	if s.Games == 0 {
		return s
	}
	sort.Float64s(s.Scores)
	if s.Games > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(s.Scores, nil)
	} else {
		s.Mean = s.Scores[0]
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, s.Scores, nil)
	s.Max = floats.Max(s.Scores)
	s.hist = histogram.Hist(histogramBins, s.Scores)
	return s
}

func (s *Summary) String() string {
	var ss strings.Builder
	fmt.Fprintf(&ss, "Games played: %d (%d finished)\n", s.Games, s.Finished)
	if s.Games == 0 {
		return ss.String()
	}
	fmt.Fprintf(&ss, "Words found: %d (%.2f per game)\n", s.Words,
		float64(s.Words)/float64(s.Games))
	fmt.Fprintf(&ss, "Mean score: %.3f  Stdev: %.3f\n", s.Mean, s.StdDev)
	fmt.Fprintf(&ss, "Median score: %.1f  Max score: %.0f\n", s.Median, s.Max)
	ss.WriteString("\n")
	if err := histogram.Fprint(&ss, s.hist, histogram.Linear(40)); err != nil {
		fmt.Fprintf(&ss, "cannot draw histogram: %v\n", err)
	}
	return ss.String()
}

// AnalyzeLogFile reads a log written by PlayGames and summarizes it.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	contents, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	records := []*GameRecord{}
	if err := yaml.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath, err)
	}
	return Summarize(records), nil
}
