package mazeapi

import (
	"errors"
	"net/http"
	"time"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/mazegen"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze generation and retrieval over HTTP.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.getMaze)
		mazes.GET("/:ID/text", mc.getMazeText)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.generate)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	record, err := mc.mazeService.Create(request.Width, request.Height, seed)
	if err != nil {
		if errors.Is(err, mazegen.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// getMaze retrieves a stored maze as JSON.
func (mc *MazeController) getMaze(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// getMazeText retrieves a stored maze in its plain-text grid form.
func (mc *MazeController) getMazeText(ctx *gin.Context) {
	record, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, record.Grid)
}

// lookup resolves the ID path parameter to a stored maze, writing the error
// response itself when that fails.
func (mc *MazeController) lookup(ctx *gin.Context) (record *dmn.MazeRecord, ok bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return nil, false
	}

	record, err = mc.mazeService.Get(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return nil, false
	}
	return record, true
}
