package main

import (
	"log"
	"net/http"

	"github.com/cbsinteractive/editmaster/config"
	"github.com/cbsinteractive/editmaster/db"
	"github.com/cbsinteractive/editmaster/service"
	"github.com/cbsinteractive/editmaster/service/exceptions"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("loading config: ", err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}

	reporter, err := exceptions.NewReporter(cfg.SentryDSN, cfg.Environment)
	if err != nil {
		logger.Fatal("unable to initialize exception reporter: ", err)
	}
	store, err := db.NewClient(&db.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})
	if err != nil {
		logger.Fatal("unable to initialize storage: ", err)
	}

	srv := service.NewServer(cfg, logger, store, reporter)
	logger.Info("listening on ", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv); err != nil {
		logger.Fatal("server encountered a fatal error: ", err)
	}
}
