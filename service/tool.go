package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"pipecalc/hydraulic"
	"pipecalc/model"
	"pipecalc/pkg/logger"
)

// parseTerrainCSV reads a two-column (distance, elevation) file with no
// header; a single leading non-numeric row is tolerated and skipped.
func parseTerrainCSV(r io.Reader) ([]float64, []float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var xs, zs []float64
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row %d: %w", row+1, err)
		}
		row++
		if len(record) < 2 {
			return nil, nil, fmt.Errorf("csv row %d has %d columns, want 2", row, len(record))
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if errX != nil || errZ != nil {
			if row == 1 { // header row
				continue
			}
			return nil, nil, fmt.Errorf("csv row %d is not numeric", row)
		}
		xs = append(xs, x)
		zs = append(zs, z)
	}

	return xs, zs, nil
}

// parseTerrainXLSX reads the first sheet of a workbook, taking the first two
// columns as (distance, elevation). Rows that fail to parse are skipped with a
// warning, matching how spreadsheet exports tend to carry stray footers.
func parseTerrainXLSX(r io.Reader) ([]float64, []float64, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		return nil, nil, err
	}

	var xs, zs []float64
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errX != nil || errZ != nil {
			if i > 0 {
				logger.Logger.Warnf("skipping non-numeric spreadsheet row %d", i+1)
			}
			continue
		}
		xs = append(xs, x)
		zs = append(zs, z)
	}

	return xs, zs, nil
}

func terrainFromPoints(points []model.TerrainPoint) hydraulic.Terrain {
	t := hydraulic.Terrain{
		X: make([]float64, len(points)),
		Z: make([]float64, len(points)),
	}
	for i, p := range points {
		t.X[i] = p.Distance
		t.Z[i] = p.Elevation
	}

	return t
}

func pumpSpecs(specs []PumpSpec) []hydraulic.Pump {
	pumps := make([]hydraulic.Pump, len(specs))
	for i, s := range specs {
		pumps[i] = hydraulic.Pump{Position: s.Position, Unknown: s.Head == nil}
		if s.Head != nil {
			pumps[i].Head = *s.Head
		}
	}

	return pumps
}
