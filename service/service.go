package service

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"pipecalc/hydraulic"
	"pipecalc/model"
	"pipecalc/pkg/logger"
)

const batchSize = 400

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db: db,
	}
}

// ImportTerrain stores a terrain polyline uploaded as CSV or XLSX under the
// given name. Points are written in insertion batches inside one transaction.
func (s *Service) ImportTerrain(file io.Reader, name, ext string) (*ImportTerrainResult, error) {
	var (
		xs, zs []float64
		err    error
	)
	switch strings.ToLower(ext) {
	case ".xlsx":
		xs, zs, err = parseTerrainXLSX(file)
	case ".csv", ".txt":
		xs, zs, err = parseTerrainCSV(file)
	default:
		return nil, fmt.Errorf("unsupported terrain file type %q", ext)
	}
	if err != nil {
		logger.Logger.Errorf("parse terrain file %s failed: %v", name, err)
		return nil, err
	}
	if len(xs) < 2 {
		return nil, errors.New("terrain file holds fewer than 2 usable points")
	}

	profile := model.TerrainProfile{
		Name:       name,
		PointCount: len(xs),
		CreatedAt:  time.Now(),
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err = tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create terrain profile: %w", err)
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
				return nil, fmt.Errorf("insert terrain points: %w", err)
			}
			batch = nil
		}
	}
	if len(batch) > 0 {
		if err = tx.Create(&batch).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("insert terrain points: %w", err)
		}
	}

	if err = tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit terrain import: %w", err)
	}

	return &ImportTerrainResult{
		TerrainID:      profile.ID,
		Name:           profile.Name,
		ImportedPoints: len(xs),
	}, nil
}

func (s *Service) GetTerrainList() ([]TerrainInfo, error) {
	var profiles []model.TerrainProfile
	if err := s.db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		logger.Logger.Errorf("list terrain profiles failed: %v", err)
		return nil, err
	}

	infos := make([]TerrainInfo, len(profiles))
	for i, p := range profiles {
		infos[i] = TerrainInfo{
			ID:         p.ID,
			Name:       p.Name,
			PointCount: p.PointCount,
			CreatedAt:  p.CreatedAt.Format(time.DateTime),
		}
	}

	return infos, nil
}

// terrain loads a stored polyline in sequence order.
func (s *Service) terrain(id int64) (hydraulic.Terrain, error) {
	var points []model.TerrainPoint
	err := s.db.Where("profile_id = ?", id).Order("seq ASC").Find(&points).Error
	if err != nil {
		return hydraulic.Terrain{}, err
	}
	if len(points) == 0 {
		return hydraulic.Terrain{}, fmt.Errorf("terrain %d not found", id)
	}

	return terrainFromPoints(points), nil
}
