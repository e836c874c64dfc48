// Command analysis is a decoding diagnostics tool. It generates a key pair,
// encodes random messages, injects errors of a chosen weight, decodes them
// with the traced decoder, and renders the syndrome-weight trajectory of
// every run as an interactive HTML line chart. Phase timings are printed to
// stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"qc-mdpc/field"
	"qc-mdpc/gf4"
	"qc-mdpc/internal/params"
	"qc-mdpc/mdpc"
	"qc-mdpc/prof"
	"qc-mdpc/prng"
)

type runResult struct {
	trace     []int
	ok        bool
	recovered bool
}

func main() {
	paramsPath := flag.String("params", "", "JSON parameter file (overridden by explicit flags)")
	blockSize := flag.Int("r", 0, "block size r")
	blockWeight := flag.Int("w", 0, "parity-check row weight w")
	errorWeight := flag.Int("errors", -1, "Hamming weight of the injected error vector")
	iterations := flag.Int("iters", 0, "decoder iteration budget")
	runs := flag.Int("runs", 0, "number of decode runs")
	seed := flag.String("seed", "", "seed for reproducible runs (empty: fresh randomness)")
	outPath := flag.String("out", "decoding_analysis.html", "output HTML file")
	flag.Parse()

	cfg := params.Default()
	if *paramsPath != "" {
		var err error
		cfg, err = params.Load(*paramsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load params: %v\n", err)
			os.Exit(1)
		}
	}
	if *blockSize > 0 {
		cfg.BlockSize = *blockSize
	}
	if *blockWeight > 0 {
		cfg.BlockWeight = *blockWeight
	}
	if *errorWeight >= 0 {
		cfg.ErrorWeight = *errorWeight
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *runs > 0 {
		cfg.Runs = *runs
	}
	if *seed != "" {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var src *prng.Source
	if cfg.Seed != "" {
		src = prng.NewSeededSource([]byte(cfg.Seed))
	} else {
		src = prng.NewSource()
	}

	var f gf4.Field
	fmt.Printf("key pair: r=%d w=%d over GF(4)\n", cfg.BlockSize, cfg.BlockWeight)
	kgStart := time.Now()
	enc, dec, err := mdpc.GenerateContexts[gf4.Element](f, src, cfg.BlockSize, cfg.BlockWeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "key generation: %v\n", err)
		os.Exit(1)
	}
	prof.Track(kgStart, "keygen")

	results := make([]runResult, 0, cfg.Runs)
	decoded := 0
	recovered := 0
	for run := 0; run < cfg.Runs; run++ {
		message := field.RandomVector[gf4.Element](f, src, cfg.BlockSize)
		encStart := time.Now()
		codeword, err := enc.Encode(message)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		prof.Track(encStart, "encode run "+strconv.Itoa(run+1))

		injected, err := field.RandomWeightedVector[gf4.Element](f, src, 2*cfg.BlockSize, cfg.ErrorWeight)
		if err != nil {
			fmt.Fprintf(os.Stderr, "inject: %v\n", err)
			os.Exit(1)
		}
		corrupted := make([]gf4.Element, 2*cfg.BlockSize)
		for i := range corrupted {
			corrupted[i] = codeword[i].Add(injected[i])
		}

		decStart := time.Now()
		errVec, trace, ok, err := dec.DecodeTraced(corrupted, cfg.Iterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode: %v\n", err)
			os.Exit(1)
		}
		prof.Track(decStart, "decode run "+strconv.Itoa(run+1))

		res := runResult{trace: trace, ok: ok}
		if ok {
			decoded++
			res.recovered = vectorsEqual(errVec, injected)
			if res.recovered {
				recovered++
			}
		}
		results = append(results, res)
		fmt.Printf("run %d: flips=%d decoded=%v exact=%v\n", run+1, len(trace), ok, res.recovered)
	}

	fmt.Printf("decoded %d/%d runs, %d recovered the injected error exactly\n", decoded, cfg.Runs, recovered)
	prof.Report(os.Stdout)

	if err := renderChart(*outPath, cfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

func vectorsEqual(a, b []gf4.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Sub(b[i]).IsZero() {
			return false
		}
	}
	return true
}

func renderChart(path string, cfg params.Analysis, results []runResult) error {
	maxLen := 0
	for _, res := range results {
		if len(res.trace) > maxLen {
			maxLen = len(res.trace)
		}
	}
	xLabels := make([]string, maxLen)
	for i := range xLabels {
		xLabels[i] = strconv.Itoa(i + 1)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Syndrome weight per flip",
			Subtitle: fmt.Sprintf("r=%d w=%d injected errors=%d budget=%d", cfg.BlockSize, cfg.BlockWeight, cfg.ErrorWeight, cfg.Iterations),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "flip"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "syndrome weight", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(xLabels)
	for i, res := range results {
		items := make([]opts.LineData, len(res.trace))
		for j, w := range res.trace {
			items[j] = opts.LineData{Value: w}
		}
		name := fmt.Sprintf("run %d", i+1)
		if !res.ok {
			name += " (failed)"
		}
		line.AddSeries(name, items)
	}

	page := components.NewPage().SetPageTitle("QC-MDPC decoding analysis")
	page.AddCharts(line)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := page.Render(out); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
