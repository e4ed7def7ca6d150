package main

import (
	"catalog/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the catalog tables.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
