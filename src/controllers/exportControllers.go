package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	service *services.ExportService
}

func NewExportController(service *services.ExportService) *ExportController {
	return &ExportController{service: service}
}

// ExportLoanHistory streams the completed-loans workbook
func (c *ExportController) ExportLoanHistory(ctx *gin.Context) {
	ctx.Header("Content-Type", xlsxContentType)
	ctx.Header("Content-Disposition", `attachment; filename="loan-history.xlsx"`)
	if err := c.service.ExportLoanHistory(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}

// ExportCatalog streams the catalog workbook
func (c *ExportController) ExportCatalog(ctx *gin.Context) {
	ctx.Header("Content-Type", xlsxContentType)
	ctx.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	if err := c.service.ExportCatalog(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}

// ImportGames handles a multipart .xlsx upload of games to register in bulk
func (c *ExportController) ImportGames(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A file upload is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	result, err := c.service.ImportGamesFromExcel(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"imported": result.Imported,
		"errors":   result.Errors,
	})
}
