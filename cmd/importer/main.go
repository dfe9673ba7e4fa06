package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"petcatalog/internal/config"
	"petcatalog/internal/ingest"
	applog "petcatalog/internal/log"
	"petcatalog/internal/repos"
	"petcatalog/internal/services"
)

func main() {
	cfg := config.Load()

	csvPath := flag.String("csv", cfg.CSVFile, "source CSV file")
	jsonPath := flag.String("out", cfg.JSONFile, "JSON output file")
	variant := flag.String("variant", cfg.Variant, "export layout: full or simple")
	dsn := flag.String("db", "", "optional catalog DB to load records into")
	flag.Parse()

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	v := ingest.Variant(*variant)
	if v != ingest.VariantFull && v != ingest.VariantSimple {
		log.Fatalf("unknown variant %q (want full or simple)", *variant)
	}

	runID := uuid.NewString()
	applog.Info(nil, "import.start", map[string]any{
		"run_id": runID, "csv": *csvPath, "variant": *variant,
	})

	pipe := ingest.New(v)
	records, err := pipe.ProcessFile(*csvPath)
	if err != nil {
		applog.Error(nil, "import.read", err, map[string]any{"run_id": runID})
		log.Fatal(err)
	}
	if len(records) == 0 {
		log.Fatal("no products processed, check the CSV file")
	}

	if err := ingest.WriteJSON(*jsonPath, records); err != nil {
		applog.Error(nil, "import.write", err, map[string]any{"run_id": runID})
		log.Fatal(err)
	}
	applog.Info(nil, "import.written", map[string]any{
		"run_id": runID, "out": *jsonPath, "products": len(records),
	})

	if *dsn != "" {
		db, err := repos.OpenDB(*dsn)
		if err != nil {
			log.Fatal(err)
		}
		imp := services.NewImportService(
			repos.NewCategoryRepo(db), repos.NewBrandRepo(db), repos.NewProductRepo(db))
		n, err := imp.Load(records)
		if err != nil {
			applog.Error(nil, "import.load", err, map[string]any{"run_id": runID, "loaded": n})
			log.Fatal(err)
		}
		applog.Info(nil, "import.loaded", map[string]any{"run_id": runID, "loaded": n})
	}

	summary := ingest.Summarize(records)
	fmt.Println()
	summary.Write(os.Stdout, v)
}
