// Command potinfo prints properties of pot-head response curves and noise
// filters.
//
// Usage:
//
//	potinfo [flags]
//
// Examples:
//
//	potinfo -curves
//	potinfo -curves -steps 20
//	potinfo -filter ema -alpha 0.25
//	potinfo -filter ma -window 8 -tol 0.001
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/HybridChild/pot-head/measure/response"
	"github.com/HybridChild/pot-head/pot/curve"
	"github.com/HybridChild/pot-head/pot/filter"
)

func main() {
	curves := flag.Bool("curves", false, "print response curve tables")
	steps := flag.Int("steps", 10, "table resolution for -curves")
	filterKind := flag.String("filter", "", "analyze a noise filter: ema or ma")
	alpha := flag.Float64("alpha", 0.3, "EMA smoothing factor")
	window := flag.Int("window", 8, "moving average window length")
	tol := flag.Float64("tol", 0.01, "settling tolerance")
	fftSize := flag.Int("fft", 256, "FFT size for magnitude response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: potinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of pot-head response curves and noise filters.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*curves && *filterKind == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *curves {
		if err := printCurves(*steps); err != nil {
			fatal(err)
		}
	}

	if *filterKind != "" {
		cfg, err := filterConfig(*filterKind, *alpha, *window)
		if err != nil {
			fatal(err)
		}
		if err := printFilter(cfg, *tol, *fftSize); err != nil {
			fatal(err)
		}
	}
}

func filterConfig(kind string, alpha float64, window int) (filter.Config, error) {
	switch kind {
	case "ema":
		return filter.Config{Kind: filter.ExponentialMovingAverage, Alpha: alpha}, nil
	case "ma":
		return filter.Config{Kind: filter.MovingAverage, Window: window}, nil
	default:
		return filter.Config{}, fmt.Errorf("unknown filter %q (want ema or ma)", kind)
	}
}

func printCurves(steps int) error {
	linear, err := response.CurveTable(curve.Linear, steps)
	if err != nil {
		return err
	}

	logarithmic, err := response.CurveTable(curve.Logarithmic, steps)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "input\tlinear\tlogarithmic")

	for i := range linear {
		x := float64(i) / float64(steps)
		fmt.Fprintf(w, "%.3f\t%.6f\t%.6f\n", x, linear[i], logarithmic[i])
	}

	return w.Flush()
}

func printFilter(cfg filter.Config, tol float64, fftSize int) error {
	settle, err := response.SettlingTime(cfg, tol, 4096)
	if err != nil {
		return err
	}

	mag, err := response.Magnitude(cfg, fftSize)
	if err != nil {
		return err
	}

	// -3 dB point: first bin dropping below 1/sqrt(2).
	cutoff := -1
	for i, m := range mag {
		if m < 0.7071067811865476 {
			cutoff = i
			break
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "settling time (tol %g)\t%d samples\n", tol, settle)
	if cutoff >= 0 {
		fmt.Fprintf(w, "-3 dB point\t%.4f of sample rate\n", float64(cutoff)/float64(2*(len(mag)-1)))
	} else {
		fmt.Fprintf(w, "-3 dB point\tnone (flat in band)\n")
	}
	fmt.Fprintf(w, "dc gain\t%.6f\n", mag[0])
	fmt.Fprintf(w, "nyquist gain\t%.6f\n", mag[len(mag)-1])

	return w.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "potinfo:", err)
	os.Exit(1)
}
