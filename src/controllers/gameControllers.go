package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/dtos"
	"github.com/ludoteca/ludoteca-backend/src/services"
	"github.com/ludoteca/ludoteca-backend/src/utils"
)

type GameController struct {
	service *services.GameService
}

func NewGameController(service *services.GameService) *GameController {
	return &GameController{service: service}
}

// GetGames handles GET requests to list the active catalog with filters
func (c *GameController) GetGames(ctx *gin.Context) {
	search := ctx.Query("search")
	complexity := ctx.Query("complexity")
	onlyAvailable := ctx.Query("onlyAvailable") == "true"

	games, err := c.service.GetGames(search, complexity, onlyAvailable)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, games)
}

// RegisterFull handles POST requests to create a game together with its
// initial batch of physical copies
func (c *GameController) RegisterFull(ctx *gin.Context) {
	var dto dtos.RegisterGameDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := c.service.RegisterWithCopies(&dto)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingTitle),
			errors.Is(err, services.ErrMissingPrefix),
			errors.Is(err, services.ErrNegativeAmount):
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Game registered with its physical copies",
		"game":    game,
	})
}

// UpdateGame handles PUT requests to overwrite a game's fields
func (c *GameController) UpdateGame(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var dto dtos.UpdateGameDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := c.service.UpdateGame(id, &dto)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, game)
}

// DeleteGame handles DELETE requests; games are archived, never removed
func (c *GameController) DeleteGame(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := c.service.SoftDeleteGame(id); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Game archived"})
}

// GetGameCopies handles GET requests to list the physical copies of a game
func (c *GameController) GetGameCopies(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	copies, err := c.service.GetCopies(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, copies)
}

// GetGameImage streams the game's box art. Drive-hosted images are fetched
// through the Drive API; anything else is a plain redirect.
func (c *GameController) GetGameImage(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	game, err := c.service.GetGameByID(id)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if game.ImageURL == nil || *game.ImageURL == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Game has no image"})
		return
	}

	if !utils.IsGoogleDriveURL(*game.ImageURL) {
		ctx.Redirect(http.StatusFound, *game.ImageURL)
		return
	}

	fileID, err := utils.ExtractFileIDFromURL(*game.ImageURL)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	body, mimeType, err := utils.DownloadFileFromGoogleDrive(fileID)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	ctx.Header("Content-Type", mimeType)
	ctx.Status(http.StatusOK)
	io.Copy(ctx.Writer, body)
}
