// Interactive image editor: load an image, apply transformations, undo/redo.
package main

import (
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"interactive-image-editor/internal/gui"
)

const (
	AppID      = "com.example.interactive-image-editor"
	AppVersion = "1.0.0"
)

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	flag.Parse()

	logger := initLogger(*debugMode)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": *debugMode,
	}).Info("Starting interactive image editor")

	fyneApp := app.NewWithID(AppID)

	editor := gui.NewApplication(fyneApp, logger)

	// An image path on the command line is opened at startup.
	if path := flag.Arg(0); path != "" {
		editor.LoadImageFromPath(path)
	}

	editor.ShowAndRun()

	logger.Info("Application shutting down")
	os.Exit(0)
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
