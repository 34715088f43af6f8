package solverapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// leaderboardLimit is how many rows a leaderboard query returns.
const leaderboardLimit = 10

// RaceController manages solver races and leaderboard queries over HTTP.
type RaceController struct {
	raceManager i.RaceManager
}

// NewRaceController initializes a RaceController.
func NewRaceController(rm i.RaceManager) (*RaceController, error) {
	return &RaceController{
		raceManager: rm,
	}, nil
}

// RegisterPublic registers public routes.
func (rc *RaceController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes/:ID/leaderboard", rc.leaderboard)
}

// RegisterProtected registers protected routes.
func (rc *RaceController) RegisterProtected(route *gin.RouterGroup) {
	races := route.Group("/races")
	{
		races.POST("/", rc.create)
		races.POST("/:ID/steps", rc.step)
		races.GET("/:ID", rc.snapshot)
		races.DELETE("/:ID", rc.remove)
	}
}

// create handles race creation requests.
func (rc *RaceController) create(ctx *gin.Context) {
	var request CreateRaceRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := rc.raceManager.NewRace(ctx, request.MazeID, request.Strategies)
	if err != nil {
		if errors.Is(err, solver.ErrUnknownStrategy) || errors.Is(err, solver.ErrMissingEndpoints) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

// step advances a race.
func (rc *RaceController) step(ctx *gin.Context) {
	raceID, ok := parseID(ctx)
	if !ok {
		return
	}

	var request StepRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := rc.raceManager.Advance(ctx, raceID, request.Count)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "race not found"})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// snapshot returns the current state of a race without advancing it.
func (rc *RaceController) snapshot(ctx *gin.Context) {
	raceID, ok := parseID(ctx)
	if !ok {
		return
	}

	view, err := rc.raceManager.Snapshot(raceID)
	if err != nil {
		if errors.Is(err, service.ErrRaceNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "race not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading race"})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// remove drops a race.
func (rc *RaceController) remove(ctx *gin.Context) {
	raceID, ok := parseID(ctx)
	if !ok {
		return
	}

	rc.raceManager.Remove(raceID)
	ctx.Status(http.StatusNoContent)
}

// leaderboard lists the best finished runs on a maze.
func (rc *RaceController) leaderboard(ctx *gin.Context) {
	mazeID, ok := parseID(ctx)
	if !ok {
		return
	}

	entries, err := rc.raceManager.Leaderboard(ctx, mazeID, leaderboardLimit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := &LeaderboardResponse{MazeID: mazeID.String()}
	for _, entry := range entries {
		response.Entries = append(response.Entries, LeaderboardEntry{
			Run:   entry.Member,
			Steps: int(entry.Score),
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// parseID resolves the ID path parameter, writing the error response itself
// when that fails.
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}
