package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"imagestudio/internal/config"
	"imagestudio/internal/database"
	"imagestudio/internal/events"
	"imagestudio/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		return
	}

	db, err := database.Init(database.Config{
		Path:     cfg.DBPath,
		LogLevel: cfg.DBLogLevel,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	vault, err := services.OpenCredentialVault(cfg)
	if err != nil {
		fmt.Println("Error opening keyring:", err)
		return
	}

	//Create each service
	dbService, err := services.NewDbServices(db, vault, cfg)
	if err != nil {
		fmt.Println("Error creating services:", err)
		return
	}

	app := NewApp(dbService)
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Image Studio",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Image Studio",
		},
		BackgroundColour: &options.RGBA{R: 13, G: 11, B: 20, A: 1},
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
			dbService.StartDbServices(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.Storage,
			dbService.AppSettings,
			dbService.CustomProviders,
			dbService.ControlPanel,
			dbService.Settings,
			dbService.StorageEvents,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
