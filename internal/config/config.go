package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	// Importer defaults; CLI flags override these.
	CSVFile  string
	JSONFile string
	Variant  string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "petcatalog.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")

	csvFile := os.Getenv("CSV_FILE")
	if csvFile == "" {
		csvFile = "./data/produtos.csv"
	}
	jsonFile := os.Getenv("JSON_FILE")
	if jsonFile == "" {
		jsonFile = "./data/produtos.json"
	}
	variant := os.Getenv("IMPORT_VARIANT")
	if variant == "" {
		variant = "simple"
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile,
		CSVFile: csvFile, JSONFile: jsonFile, Variant: variant}
	log.Printf("[config] PORT=%s DB_DSN=%s VARIANT=%s", cfg.Port, cfg.DBDSN, cfg.Variant)
	return cfg
}
