// Seeds the training_modules collection from the YAML files in the content
// directory. Run it once at deploy time, and again whenever content changes
// (then hit /api/admin/content/reload to bust the cache).
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"veritek/config"
	"veritek/database"
	trainingRepo "veritek/database/repository/training"
	"veritek/models"

	"gopkg.in/yaml.v3"
)

func main() {
	dir := flag.String("dir", "", "content directory (defaults to CONTENT_DIR)")
	flag.Parse()

	config.LoadConfig()
	if *dir == "" {
		*dir = config.AppConfig.ContentDir
	}

	database.InitDB()
	repo := trainingRepo.NewMongoTrainingRepo()

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Failed to read content directory %s: %v", *dir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeded := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(*dir, name))
		if err != nil {
			log.Fatalf("Failed to read %s: %v", name, err)
		}

		var module models.TrainingModule
		if err := yaml.Unmarshal(data, &module); err != nil {
			log.Fatalf("Failed to parse %s: %v", name, err)
		}
		if module.ID == "" {
			log.Fatalf("Module in %s has no id", name)
		}

		if err := repo.Upsert(ctx, module); err != nil {
			log.Fatalf("Failed to upsert module %s: %v", module.ID, err)
		}
		log.Printf("Seeded module %s (%d chapters)", module.ID, len(module.Chapters))
		seeded++
	}

	log.Printf("Done: %d module(s) seeded", seeded)
}
