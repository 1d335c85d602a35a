package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"pipecalc/pkg/conf"
	"pipecalc/pkg/logger"
	"pipecalc/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ImportTerrain(c *gin.Context) {
	var req importTerrainRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Logger.Errorf("terrain upload binding failed: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	name, err := terrainName(req.Name, req.File.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	file, err := req.File.Open()
	if err != nil {
		logger.Logger.Errorf("open uploaded file failed: %v", err)
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	defer file.Close()

	result, err := h.svc.ImportTerrain(file, name, fileExt(req.File.Filename))
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(result))

	logger.Logger.Infof("imported terrain %q with %d points", name, result.ImportedPoints)
}

func (h *Handler) GetTerrainList(c *gin.Context) {
	terrains, err := h.svc.GetTerrainList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(terrains))
}

func (h *Handler) ComputeForward(c *gin.Context) {
	var params service.ForwardParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Logger.Errorf("forward request binding failed: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	result, err := h.svc.RunForward(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(result))
}

func (h *Handler) ComputeBackward(c *gin.Context) {
	var params service.BackwardParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Logger.Errorf("backward request binding failed: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	result, err := h.svc.RunBackward(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(result))
}

func (h *Handler) ComputeBoundary(c *gin.Context) {
	var params service.BoundaryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Logger.Errorf("boundary request binding failed: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	result, err := h.svc.RunBoundary(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(result))
}

func (h *Handler) ComputeEndState(c *gin.Context) {
	var params service.EndStateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		logger.Logger.Errorf("end-state request binding failed: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}

	state, err := h.svc.EndState(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(state))
}

func (h *Handler) GetRunHistory(c *gin.Context) {
	terrainID := cast.ToInt64(c.Query("terrainId"))

	runs, err := h.svc.GetRunHistory(terrainID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(runs))
}

func (h *Handler) ExportRun(c *gin.Context) {
	runID := cast.ToInt64(c.Param("id"))
	if runID <= 0 {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, "invalid run id"))
		return
	}

	dir := conf.Conf.GetString("export.dir")
	if dir == "" {
		dir = "./exports"
	}

	path, err := h.svc.ExportRun(runID, dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
