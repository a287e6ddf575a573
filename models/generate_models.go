package models

import (
	"fmt"
	"log"
	"os"
	"sort"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Model generation usage:

Set GENERATE_MODELS=true and run the binary. The schema is migrated with verbose
logging, a column drift report is printed and type-safe query helpers are written
to ./generated.

Example drift output:
=== COLUMN DRIFT REPORT ===
--- Table: ideas ---
Found 1 columns not accounted for in model:
  - legacy_priority

=== SUMMARY ===
Total drifted columns across all tables: 1
*/

func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	verboseLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 verboseLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(
		Board{},
		Tag{},
		IdeaGroup{},
		Idea{},
		IdeaConnection{},
	)

	fmt.Println("Migrating models...")
	if err := db.AutoMigrate(All()...); err != nil {
		fmt.Printf("Error during models migration: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Database migration completed successfully!")

	PrintColumnDriftReport(db)

	g.Execute()
	fmt.Println("Model generation complete!")
}

// ColumnDrift returns, per table, the database columns that no model field maps to.
// Tables that do not exist yet are skipped.
func ColumnDrift(db *gorm.DB) (map[string][]string, error) {
	drift := make(map[string][]string)

	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		if !db.Migrator().HasTable(model) {
			continue
		}

		columns, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("read columns of %s: %w", stmt.Schema.Table, err)
		}

		known := make(map[string]bool, len(stmt.Schema.Fields))
		for _, field := range stmt.Schema.Fields {
			if field.DBName != "" {
				known[field.DBName] = true
			}
		}

		for _, column := range columns {
			if !known[column.Name()] {
				drift[stmt.Schema.Table] = append(drift[stmt.Schema.Table], column.Name())
			}
		}
	}

	return drift, nil
}

// PrintColumnDriftReport prints the result of ColumnDrift in a human readable form
func PrintColumnDriftReport(db *gorm.DB) {
	fmt.Println("=== COLUMN DRIFT REPORT ===")

	drift, err := ColumnDrift(db)
	if err != nil {
		fmt.Printf("Error generating column drift report: %v\n", err)
		return
	}

	tables := make([]string, 0, len(drift))
	for table := range drift {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	total := 0
	for _, table := range tables {
		fmt.Printf("\n--- Table: %s ---\n", table)
		fmt.Printf("Found %d columns not accounted for in model:\n", len(drift[table]))
		for _, col := range drift[table] {
			fmt.Printf("  - %s\n", col)
		}
		total += len(drift[table])
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Total drifted columns across all tables: %d\n", total)
}
