package main

import (
	"context"
	"log"
	"os"

	echoapi "github.com/trezcool/isko/apps/api/echo"
	"github.com/trezcool/isko/core"
	"github.com/trezcool/isko/core/academic"
	exportsvc "github.com/trezcool/isko/services/export"
	logsvc "github.com/trezcool/isko/services/logger"
	filestore "github.com/trezcool/isko/storage/kv/file"
	memstore "github.com/trezcool/isko/storage/kv/memory"
	redisstore "github.com/trezcool/isko/storage/kv/redis"
)

func main() {
	conf, err := core.NewConfig()
	errAndDie(err)

	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std, conf)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up the persistence gateway
	var gateway academic.Gateway
	switch conf.Storage.Backend {
	case "memory":
		gateway = memstore.Open()
	case "redis":
		store, err := redisstore.Open(conf)
		errAndDie(err)
		defer store.Close()
		gateway = store
	default:
		store, err := filestore.Open(conf.Storage.Path)
		errAndDie(err)
		gateway = store
	}

	// set up services
	svc := academic.NewService(gateway, logger)
	svc.Restore(context.Background())

	var exporter academic.Exporter
	switch conf.Export.Format {
	case "xlsx":
		exporter = exportsvc.NewExcelService(conf)
	case "txt":
		exporter = exportsvc.NewTextService(conf)
	default:
		exporter = exportsvc.NewPDFService(conf)
	}

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Conf:        conf,
			Logger:      logger,
			AcademicSvc: svc,
			Exporter:    exporter,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
