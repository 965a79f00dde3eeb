package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/artfolio/internal/adminctl"
	"github.com/dmitrijs2005/artfolio/internal/dbx"
	"github.com/dmitrijs2005/artfolio/internal/server/config"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/artfolio/internal/server/services"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := dbx.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("%v", err)
	}

	app := adminctl.NewApp(services.NewUserService(db, rm, cfg), os.Stdin, os.Stdout)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Printf("%v", err)
		db.Close()
		os.Exit(1)
	}

}
