package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"schedsim/api"
	"schedsim/config"
	"schedsim/internal/output"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
	"schedsim/internal/tui"
)

func main() {
	interactive := flag.Bool("i", false, "interactive menu")
	interactiveLong := flag.Bool("interactive", false, "interactive menu")
	demo := flag.Bool("demo", false, "compare every policy over the example workload and exit")
	flag.Parse()

	cfg := config.GetSchedulerConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}
	logger := newLogger(cfg)

	switch {
	case *interactive || *interactiveLong:
		// Log lines would tear the terminal UI apart.
		logger.SetOutput(io.Discard)
		if err := tui.Run(cfg, logger); err != nil {
			log.Fatalln(err)
		}
	case *demo:
		if err := runDemo(cfg, logger); err != nil {
			log.Fatalln(err)
		}
	default:
		runServer(cfg, logger)
	}
}

func newLogger(cfg *config.SchedulerConfig) *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

func runDemo(cfg *config.SchedulerConfig, logger *logrus.Logger) error {
	scheduler, err := schedulers.NewScheduler(cfg.Cores, logger)
	if err != nil {
		return err
	}
	if err := scheduler.AddProcesses(requests.ExampleJobs()); err != nil {
		return err
	}
	comparison, err := scheduler.CompareAll(cfg.RoundRobinTimeQuantum, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	if err != nil {
		return err
	}
	output.RenderComparison(os.Stdout, comparison)
	return nil
}

func runServer(cfg *config.SchedulerConfig, logger *logrus.Logger) {
	app := fiber.New()
	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg, logger))

	logger.WithField("port", cfg.Port).Info("starting scheduler api")
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
