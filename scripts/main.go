// Batch terrain importer: loads every CSV/XLSX profile in a directory
// straight into MySQL, for seeding an installation from an existing survey
// archive without going through the HTTP upload.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pipecalc/model"
)

var db *gorm.DB

const batchSize = 400

func main() {
	host := flag.String("h", "", "mysql host")
	port := flag.String("p", "", "mysql port")
	user := flag.String("u", "root", "mysql user")
	password := flag.String("a", "", "mysql password")
	fileDir := flag.String("d", "", "directory holding terrain files")
	flag.Parse()

	if *host == "" || *port == "" || *password == "" || *fileDir == "" {
		flag.Usage()
		return
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/pipecalc?charset=utf8mb4&parseTime=True&loc=Local", *user, *password, *host, *port)

	var err error
	db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Silent,
				Colorful:      false,
			},
		),
	})
	if err != nil {
		fmt.Printf("connect mysql failed: %v\n", err)
		return
	}

	files, err := os.ReadDir(*fileDir)
	if err != nil {
		fmt.Printf("read directory failed: %v\n", err)
		return
	}

	totalImported := 0
	for _, file := range files {
		now := time.Now()
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".csv" && ext != ".xlsx" {
			continue
		}

		filePath := filepath.Join(*fileDir, file.Name())
		name := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))

		f, err := os.Open(filePath)
		if err != nil {
			fmt.Printf("open %s failed: %v\n", filePath, err)
			continue
		}

		imported, err := importTerrain(f, name, ext)
		f.Close()
		if err != nil {
			fmt.Printf("import %s failed: %v\n", filePath, err)
		} else {
			fmt.Printf("imported %s, %d points, %.2fs\n", filePath, imported, time.Since(now).Seconds())
			totalImported += imported
		}
	}

	fmt.Printf("\nimported %d points in total\n", totalImported)
}

func importTerrain(file io.Reader, name, ext string) (int, error) {
	var (
		xs, zs []float64
		err    error
	)
	if ext == ".xlsx" {
		xs, zs, err = readXLSX(file)
	} else {
		xs, zs, err = readCSV(file)
	}
	if err != nil {
		return 0, err
	}
	if len(xs) < 2 {
		return 0, errors.New("fewer than 2 usable points")
	}

	profile := model.TerrainProfile{
		Name:       name,
		PointCount: len(xs),
		CreatedAt:  time.Now(),
	}

	tx := db.Begin()
	if err = tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	var batch []model.TerrainPoint
	for i := range xs {
		batch = append(batch, model.TerrainPoint{
			ProfileID: profile.ID,
			Seq:       i,
			Distance:  xs[i],
			Elevation: zs[i],
		})
		if len(batch) >= batchSize {
			if err = tx.Create(&batch).Error; err != nil {
				tx.Rollback()
				return 0, err
			}
			batch = nil
		}
	}
	if len(batch) > 0 {
		if err = tx.Create(&batch).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err = tx.Commit().Error; err != nil {
		return 0, err
	}

	return len(xs), nil
}

func readCSV(r io.Reader) ([]float64, []float64, error) {
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
			return nil, nil, err
		}
		row++
		if len(record) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if errX != nil || errZ != nil {
			if row == 1 { // header row
				continue
			}
			return nil, nil, fmt.Errorf("row %d is not numeric", row)
		}
		xs = append(xs, x)
		zs = append(zs, z)
	}

	return xs, zs, nil
}

func readXLSX(r io.Reader) ([]float64, []float64, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		return nil, nil, err
	}

	var xs, zs []float64
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		z, errZ := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errX != nil || errZ != nil {
			continue
		}
		xs = append(xs, x)
		zs = append(zs, z)
	}

	return xs, zs, nil
}
