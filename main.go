package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/logger"
	"github.com/clubsite/server/web"
	"github.com/clubsite/server/web/cache"
)

func initLogging() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())
	initLogging()

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}
	if err := cache.Init(); err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	if err := server.Stop(); err != nil {
		logger.Warning("shutdown:", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warning("cache close:", err)
	}
	if err := database.CloseDB(); err != nil {
		logger.Warning("database close:", err)
	}
	logger.CloseLogger()
}

func runMigrate() {
	initLogging()
	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}
	if err := database.CloseDB(); err != nil {
		log.Fatal(err)
	}
	log.Println("migration complete")
}

// runSeed fills empty content tables with a handful of starter rows so a
// fresh install has something to render.
func runSeed() {
	initLogging()
	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}
	db := database.GetDB()

	var count int64
	db.Model(&model.Member{}).Count(&count)
	if count == 0 {
		db.Create(&model.Member{Name: "Founding Member", Link: "https://example.com"})
	}
	db.Model(&model.FriendLink{}).Count(&count)
	if count == 0 {
		db.Create(&model.FriendLink{Title: "Example", Url: "https://example.com"})
	}
	db.Model(&model.Announcement{}).Count(&count)
	if count == 0 {
		db.Create(&model.Announcement{
			Title:     "Welcome",
			Content:   "The site is up.",
			Type:      "info",
			Enabled:   true,
			Closeable: true,
		})
	}

	if err := database.CloseDB(); err != nil {
		log.Fatal(err)
	}
	log.Println("seed complete")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "clubsite",
		Short: "Club website backend server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Run the web server (default)",
			Run: func(cmd *cobra.Command, args []string) {
				runWebServer()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			Run: func(cmd *cobra.Command, args []string) {
				runMigrate()
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert starter content into empty tables",
			Run: func(cmd *cobra.Command, args []string) {
				runSeed()
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
