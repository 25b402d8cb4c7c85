package main

import (
	"log"

	"github.com/joho/godotenv"

	"goeda/adapters/excel"
	"goeda/api"
	"goeda/app"
	"goeda/internal/audit"
	"goeda/internal/config"
	"goeda/internal/testkit"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] failed to load configuration: %v", err)
	}

	auditor, err := buildAuditor(cfg)
	if err != nil {
		log.Fatalf("[Main] failed to load dataset: %v", err)
	}

	tbl := auditor.Table()
	log.Printf("[Main] dataset %q loaded (%d columns, %d rows)", tbl.Name(), tbl.NumCols(), tbl.NumRows())

	if err := api.NewApp(auditor, cfg).Start(); err != nil {
		log.Fatalf("[Main] server failed: %v", err)
	}
}

func buildAuditor(cfg *config.Config) (*app.Auditor, error) {
	bounds := audit.BoundsOptions{
		Factor:      cfg.Audit.Factor,
		FloorAtZero: cfg.Audit.FloorAtZero,
	}

	if cfg.Data.File == "" {
		log.Printf("[Main] DATA_FILE not set, serving the seeded demo dataset")
		tbl, err := testkit.NewGenerator(testkit.DefaultGeneratorConfig()).OrdersTable()
		if err != nil {
			return nil, err
		}
		return app.NewAuditor(tbl, bounds), nil
	}

	tbl, err := excel.NewDataReader(cfg.Data.File, cfg.Data.SheetName).ReadTable()
	if err != nil {
		return nil, err
	}
	return app.NewAuditor(tbl, bounds), nil
}
