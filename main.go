package main

import (
	"log"

	internalApp "github.com/FrancoCalegari/demobodega/internal/app"
	"github.com/FrancoCalegari/demobodega/pkg/app"

	_ "github.com/FrancoCalegari/demobodega/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
)

func main() {
	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency container
	container := internalApp.NewContainer(pb)

	// 3. Routes
	app.RegisterRoutes(pb, container)

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
