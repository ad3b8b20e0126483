// Command foodgram-import loads the ingredient and tag catalogs from JSON
// files of the form [{"name": "...", "measurement_unit": "..."}] and
// [{"name": "...", "slug": "...", "color": "..."}].
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodgram/internal/config"
	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/repository"
	"github.com/nikolayk812/foodgram/internal/service"
	"go.uber.org/zap"
)

type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type tagRecord struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

func main() {
	ingredientsFile := flag.String("ingredients", "", "path to ingredients JSON")
	tagsFile := flag.String("tags", "", "path to tags JSON")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *ingredientsFile == "" && *tagsFile == "" {
		logger.Fatal("nothing to import: pass -ingredients and/or -tags")
	}

	if err := run(*ingredientsFile, *tagsFile, logger); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}

func run(ingredientsFile, tagsFile string, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dbURL, err := config.DatabaseURL()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	catalog := service.NewCatalogService(repository.NewStore(pool), logger)

	if ingredientsFile != "" {
		var records []ingredientRecord
		if err := readJSON(ingredientsFile, &records); err != nil {
			return err
		}

		ingredients := make([]domain.Ingredient, 0, len(records))
		for _, r := range records {
			ingredients = append(ingredients, domain.Ingredient{Name: r.Name, MeasurementUnit: r.MeasurementUnit})
		}

		if _, err := catalog.ImportIngredients(ctx, ingredients); err != nil {
			return fmt.Errorf("catalog.ImportIngredients: %w", err)
		}
	}

	if tagsFile != "" {
		var records []tagRecord
		if err := readJSON(tagsFile, &records); err != nil {
			return err
		}

		tags := make([]domain.Tag, 0, len(records))
		for _, r := range records {
			tags = append(tags, domain.Tag{Name: r.Name, Slug: r.Slug, Color: r.Color})
		}

		if _, err := catalog.ImportTags(ctx, tags); err != nil {
			return fmt.Errorf("catalog.ImportTags: %w", err)
		}
	}

	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json.Unmarshal[%s]: %w", path, err)
	}
	return nil
}
