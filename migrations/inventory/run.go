package main

import (
	"embed"

	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/config"
	"github.com/jaiswal09/medi-sys-offline-sub001/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
