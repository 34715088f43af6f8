package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-solver-api/api"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	"github.com/beka-birhanu/maze-solver-api/api/identity"
	"github.com/beka-birhanu/maze-solver-api/api/mazeapi"
	"github.com/beka-birhanu/maze-solver-api/api/solverapi"
	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/sortedstorage"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/token"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// boardTTLSeconds is how long an idle leaderboard survives in Redis.
const boardTTLSeconds = 7 * 24 * 60 * 60

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *goredis.Client
	userRepo       i.UserRepo
	mazeRepo       i.MazeRepo
	scoreBoard     i.ScoreBoard
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mazeService    i.MazeService
	raceManager    i.RaceManager
	authController api_i.Controller
	mazeController api_i.Controller
	raceController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Fatalf("%s[FATAL]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	redisClient = goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Fatalf("%s[FATAL]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Connected to Redis", config.LogInfoColor, config.LogColorReset)
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Printf("%s[INFO]%s Repositories initialized", config.LogInfoColor, config.LogColorReset)
}

func initScoreBoard() {
	var err error
	scoreBoard, err = sortedstorage.NewRedisScoreBoard(redisClient, boardTTLSeconds)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating score board: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Score board initialized", config.LogInfoColor, config.LogColorReset)
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s[INFO]%s JWT Tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating auth service: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Auth service initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeService() {
	mazeLogger := log.New(os.Stdout, fmt.Sprintf("%s[MAZE]%s ", config.ColorBlue, config.ColorReset), log.LstdFlags)
	var err error
	mazeService, err = service.NewMazeService(mazeRepo, mazeLogger)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating maze service: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Maze service initialized", config.LogInfoColor, config.LogColorReset)
}

func initRaceManager() {
	raceLogger := log.New(os.Stdout, fmt.Sprintf("%s[RACE]%s ", config.ColorMagenta, config.ColorReset), log.LstdFlags)
	var err error
	raceManager, err = service.NewRaceManager(&service.RaceManagerConfig{
		MazeRepo: mazeRepo,
		Board:    scoreBoard,
		Logger:   raceLogger,
	})
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating race manager: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Race manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initControllers() {
	var err error
	authController = identity.NewIdentityServer(authService)

	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating maze controller: %v", config.LogErrorColor, config.LogColorReset, err)
	}

	raceController, err = solverapi.NewRaceController(raceManager)
	if err != nil {
		appLogger.Fatalf("%s[FATAL]%s Creating race controller: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Controllers initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController, raceController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	appLogger = log.New(os.Stdout, fmt.Sprintf("%s[APP]%s ", config.ColorGreen, config.ColorReset), log.LstdFlags)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initScoreBoard()
	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initRaceManager()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Fatalf("%s[FATAL]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
	}
}
