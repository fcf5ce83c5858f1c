// Package server exposes the transform over HTTP: upload an export,
// download the flattened workbook.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcoglab/trialflat/pkg/trialflat"
	"github.com/langcoglab/trialflat/pkg/trialflat/models"
	"github.com/langcoglab/trialflat/pkg/trialflat/output"
)

const ApiVersion = "v1"

// WarningHeader carries run warnings on file responses, one header per warning.
const WarningHeader = "X-Trialflat-Warning"

// Response formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// MaxUploadSize bounds the multipart form kept in memory.
const MaxUploadSize = 32 << 20

// Controller handles transform requests for one layout.
type Controller struct {
	opts trialflat.Options
	log  logrus.FieldLogger
}

// NewController returns a controller using opts for every request.
func NewController(opts trialflat.Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{opts: opts, log: log}
}

// SetupRouter registers the API routes.
func SetupRouter(controller *Controller) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = MaxUploadSize
	router.Use(gin.Recovery())

	api := router.Group("/api/" + ApiVersion)
	api.POST("/process", controller.ProcessAction)
	api.GET("/layout", controller.LayoutAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}

// LayoutAction returns the active layout.
func (ctl *Controller) LayoutAction(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.opts.Layout)
}

// ProcessAction transforms the uploaded "file" and responds in the
// requested format.
func (ctl *Controller) ProcessAction(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", FormatXLSX))
	if format != FormatXLSX && format != FormatCSV && format != FormatJSON {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown format %q", format)})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload an Excel file first."})
		return
	}
	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	opts := ctl.opts
	opts.Logger = ctl.log.WithField("upload", fh.Filename)

	res, err := trialflat.TransformReader(c.Request.Context(), file, fh.Filename, opts)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	for _, w := range res.Warnings {
		c.Writer.Header().Add(WarningHeader, w.Message)
	}

	switch format {
	case FormatJSON:
		c.JSON(http.StatusOK, gin.H{
			"table":    res.Table.Records(),
			"warnings": res.Warnings,
		})
	case FormatCSV:
		ctl.respondFile(c, res, contentTypeCSV, replaceExt(ctl.opts.Layout.OutputFilename, ".csv"), output.WriteCSV)
	default:
		ctl.respondFile(c, res, contentTypeXLSX, ctl.opts.Layout.OutputFilename, output.WriteXLSX)
	}
}

// respondFile serializes fully before writing so a failed save sends no partial body.
func (ctl *Controller) respondFile(c *gin.Context, res *models.Result, contentType, name string, write func(w io.Writer, t models.Table) error) {
	var buf bytes.Buffer
	if err := write(&buf, res.Table); err != nil {
		ctl.respondError(c, trialflat.NewTransformError(trialflat.StageSave, name, err))
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (ctl *Controller) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var te *trialflat.TransformError
	if errors.As(err, &te) {
		switch te.Stage {
		case trialflat.StageLoad:
			status = http.StatusUnprocessableEntity
		case trialflat.StageTransform:
			status = http.StatusServiceUnavailable
		}
	}

	ctl.log.WithError(err).Error("Processing failed")
	c.JSON(status, gin.H{"error": fmt.Sprintf("An error occurred while processing the file: %v", err)})
}

func replaceExt(name, ext string) string {
	if name == "" {
		return "workbook" + ext
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
