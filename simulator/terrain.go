// Terrain file generator: produces synthetic (distance, elevation) profiles
// as CSV or XLSX for exercising the /v1/terrain/import endpoint without field
// survey data.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"
)

func main() {
	out := flag.String("o", ".", "output directory")
	name := flag.String("n", "terrain", "base name of the generated file")
	points := flag.Int("c", 200, "number of terrain points")
	length := flag.Float64("l", 10000, "route length in meters")
	relief := flag.Float64("r", 80, "maximum elevation swing in meters")
	format := flag.String("f", "csv", "output format: csv or xlsx")
	seed := flag.Int64("s", 0, "random seed (0 = time-based)")
	flag.Parse()

	if *points < 2 {
		log.Fatal("need at least 2 points")
	}

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	xs, zs := generate(rng, *points, *length, *relief)

	var (
		path string
		err  error
	)
	switch *format {
	case "csv":
		path = filepath.Join(*out, *name+".csv")
		err = writeCSV(path, xs, zs)
	case "xlsx":
		path = filepath.Join(*out, *name+".xlsx")
		err = writeXLSX(path, xs, zs)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("write %s: %v", path, err)
	}

	fmt.Printf("wrote %d points to %s\n", len(xs), path)
}

// generate builds a rolling profile: a smooth long-wave base with a bounded
// random walk on top, so downstream the route shows the crest-and-valley
// shape that triggers booster pump placement.
func generate(rng *rand.Rand, points int, length, relief float64) ([]float64, []float64) {
	xs := make([]float64, points)
	zs := make([]float64, points)

	walk := 0.0
	for i := range xs {
		frac := float64(i) / float64(points-1)
		xs[i] = length * frac

		walk += (rng.Float64() - 0.5) * relief / 20
		if walk > relief/2 {
			walk = relief / 2
		}
		if walk < -relief/2 {
			walk = -relief / 2
		}
		zs[i] = relief/2*math.Sin(2*math.Pi*frac*1.5) + walk
	}

	return xs, zs
}

func writeCSV(path string, xs, zs []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	for i := range xs {
		record := []string{
			strconv.FormatFloat(xs[i], 'f', 2, 64),
			strconv.FormatFloat(zs[i], 'f', 2, 64),
		}
		if err = w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func writeXLSX(path string, xs, zs []float64) error {
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	for i := range xs {
		cellA, _ := excelize.CoordinatesToCellName(1, i+1)
		cellB, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = wb.SetCellValue(sheet, cellA, xs[i])
		_ = wb.SetCellValue(sheet, cellB, zs[i])
	}

	return wb.SaveAs(path)
}
