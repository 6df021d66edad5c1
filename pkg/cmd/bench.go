// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/consensys/go-fore/pkg/fore"
	"github.com/consensys/go-fore/pkg/util"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "measure encoding and reconstruction throughput.",
	Long: `Encode and reconstruct random ASCII data of increasing sizes, reporting the
	 throughput achieved for each.  Optionally renders the results as an HTML
	 bar chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys := configure(cmd)
		size := GetUint(cmd, "size")
		iterations := max(GetUint(cmd, "iterations"), 1)
		html := GetString(cmd, "html")
		//
		results := runBenchmarks(sys, benchSizes(size), iterations)
		//
		fmt.Printf("%12s %14s %14s\n", "size (KiB)", "encode MiB/s", "decode MiB/s")
		//
		for _, r := range results {
			fmt.Printf("%12d %14.2f %14.2f\n", r.size/1024, r.encode, r.decode)
		}
		//
		if html != "" {
			if err := renderBenchmarks(html, results); err != nil {
				fmt.Printf("error rendering chart: %s\n", err)
				os.Exit(1)
			}
			//
			fmt.Printf("chart written to %s\n", html)
		}
	},
}

// benchResult holds the throughput, in MiB/s, measured for a given input size
// in bytes.
type benchResult struct {
	size   uint
	encode float64
	decode float64
}

// benchSizes halves the given size (in KiB) down to 1 KiB, at most five times.
// Sizes are returned in bytes, smallest first.
func benchSizes(kib uint) []uint {
	var sizes []uint
	//
	for s := max(kib, 1); s >= 1 && len(sizes) < 5; s /= 2 {
		sizes = append(sizes, s*1024)
	}
	//
	slices.Reverse(sizes)
	//
	return sizes
}

func runBenchmarks(sys *fore.System, sizes []uint, iterations uint) []benchResult {
	results := make([]benchResult, len(sizes))
	//
	for i, size := range sizes {
		var (
			data  = randomASCII(size)
			total = uint64(size) * uint64(iterations)
			stats = util.NewPerfStats()
		)
		//
		results[i].size = size
		//
		for range iterations {
			sys.ProcessData(data)
		}
		//
		results[i].encode = stats.Throughput(total)
		stats.Log(fmt.Sprintf("Encoding %d KiB x %d", size/1024, iterations))
		// Reconstruct from a single encoding
		seq := sys.ProcessData(data)
		stats = util.NewPerfStats()
		//
		for range iterations {
			sys.Reconstruct(seq)
		}
		//
		results[i].decode = stats.Throughput(total)
		stats.Log(fmt.Sprintf("Reconstructing %d KiB x %d", size/1024, iterations))
	}
	//
	return results
}

func renderBenchmarks(filename string, results []benchResult) error {
	var (
		labels = make([]string, len(results))
		encode = make([]opts.BarData, len(results))
		decode = make([]opts.BarData, len(results))
	)
	//
	for i, r := range results {
		labels[i] = fmt.Sprintf("%d KiB", r.size/1024)
		encode[i] = opts.BarData{Value: r.encode}
		decode[i] = opts.BarData{Value: r.decode}
	}
	//
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "fore throughput", Subtitle: "MiB/s by input size"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "fore throughput", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("encode", encode).
		AddSeries("decode", decode)
	//
	page := components.NewPage()
	page.AddCharts(bar)
	//
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	//
	defer f.Close()
	//
	return page.Render(f)
}

func randomASCII(n uint) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rand.IntN(128))
	}
	//
	return data
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("size", 1024, "largest input size in KiB")
	benchCmd.Flags().Uint("iterations", 10, "number of runs per size")
	benchCmd.Flags().String("html", "", "render results as an HTML chart to the given file")
}
