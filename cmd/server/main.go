package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"contentplanner/config"
	"contentplanner/pkg/ai"
	"contentplanner/pkg/middleware"
	"contentplanner/pkg/render"
	"contentplanner/pkg/session"
	"contentplanner/router"
	"contentplanner/web"

	// Health
	healthCtrlImp "contentplanner/pkg/health/controllerImp"

	// Model
	modelCtrlImp "contentplanner/pkg/model/controllerImp"
	modelSvc "contentplanner/pkg/model/serviceImp"

	// Plan
	planCtrlImp "contentplanner/pkg/plan/controllerImp"
	planSvc "contentplanner/pkg/plan/serviceImp"
)

func main() {
	logger := logrus.New()

	// 1) Config
	cfg, err := config.Load(logger)
	if err != nil {
		logger.WithError(err).Fatal("config")
	}
	cfg.ConfigureLogger(logger)

	// 2) Server
	e, err := newServer(cfg, ai.NewGeminiFactory(ai.GeminiOptions{
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		Timeout:    cfg.HTTPTimeout,
	}), logger)
	if err != nil {
		logger.WithError(err).Fatal("setup")
	}

	// 3) Start
	logger.Infof("listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}

func newServer(cfg config.AppConfig, clients ai.Factory, logger *logrus.Logger) (*echo.Echo, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(logger))

	store := session.NewStore()
	md := render.NewMarkdown()

	// Model selector (re-discovers on every generation)
	mSvc := modelSvc.NewModelService(clients, cfg.ModelPriorities, cfg.DefaultModel, logger)
	mCtrl := modelCtrlImp.NewModelCtrl(mSvc, store, md, logger)

	// Plan generator + offline fallback
	pSvc := planSvc.NewPlanService(mSvc, clients, ai.NewMock(cfg.MockDelay), cfg.RetryDelay, logger)
	pCtrl := planCtrlImp.NewPlanCtrl(pSvc, store, md, logger)

	hCtrl := healthCtrlImp.NewHealthCtrl(store)

	return router.New(e, pCtrl, mCtrl, hCtrl), nil
}
