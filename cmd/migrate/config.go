package main

import (
	"bookshelf/internal/app"
)

func loadEnvFiles() {
	app.LoadEnvFiles()
}

func migrationsDir() string {
	return app.GetEnv("MIGRATIONS_DIR", "db/migrations")
}
