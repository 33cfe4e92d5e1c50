package main

import (
	"catlog/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CatModel{},
		model.ToiletEventModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
