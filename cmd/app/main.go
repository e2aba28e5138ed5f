package main

import (
	"context"
	"html/template"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"giftfinder/cmd/fx/backend_fx"
	"giftfinder/cmd/fx/catalog_fx"
	"giftfinder/cmd/fx/config_fx"
	"giftfinder/cmd/fx/controllers_fx"
	"giftfinder/cmd/fx/flow_fx"
	"giftfinder/cmd/fx/order_fx"
	"giftfinder/cmd/fx/session_fx"
	"giftfinder/cmd/fx/survey_fx"
	"giftfinder/internal/api/controllers"
	"giftfinder/internal/config"
	"giftfinder/internal/services"
	"giftfinder/pkg/memcache"
	"giftfinder/pkg/middleware"
	"giftfinder/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	app := fx.New(
		fx.Provide(ProvideLogger),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		config_fx.Module,
		backend_fx.Module,
		flow_fx.Module,
		session_fx.Module,
		catalog_fx.Module,
		survey_fx.Module,
		order_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	surveyController *controllers.SurveyController,
	catalogController *controllers.CatalogController,
	orderController *controllers.OrderController,
	session services.SessionServiceInterface,
	flow memcache.FlowStore,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	r.SetFuncMap(template.FuncMap{
		"stars": utils.StarRating,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	RegisterRoutes(r, authController, surveyController, catalogController, orderController, session, flow)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	surveyController *controllers.SurveyController,
	catalogController *controllers.CatalogController,
	orderController *controllers.OrderController,
	session services.SessionServiceInterface,
	flow memcache.FlowStore) {

	r.GET("/login", authController.ShowLogin)
	r.POST("/auth/login", authController.Login)
	r.POST("/auth/register", authController.Register)
	r.POST("/auth/logout", authController.Logout)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(session))

	authed.GET("/", middleware.SurveyGate(session), surveyController.Show)
	authed.POST("/survey/answer", surveyController.Answer)
	authed.POST("/survey/next", surveyController.Next)
	authed.POST("/survey/previous", surveyController.Previous)
	authed.POST("/survey/submit", surveyController.Submit)

	authed.GET("/recommendations", catalogController.Show)
	authed.POST("/recommendations/toggle", catalogController.Toggle)
	authed.POST("/recommendations/select", catalogController.Select)
	authed.POST("/chat/message", catalogController.ChatMessage)

	authed.GET("/shipping", middleware.RequireSelectedGift(flow), orderController.ShowShipping)
	authed.POST("/shipping", middleware.RequireSelectedGift(flow), orderController.SubmitShipping)
	authed.GET("/confirmation", middleware.RequireOrder(flow), orderController.ShowConfirmation)
}
