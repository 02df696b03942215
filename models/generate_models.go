package models

import (
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"sort"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Schema maintenance modes, selected with environment variables before the server starts:

	GENERATE_MODELS=true         migrate every table, print the column report and emit
	                             typed query helpers into ./generated
	GENERATE_COLUMN_REPORT=true  only print the column report

The report lists columns that exist in Supabase but have no field in the Go model, e.g.

	--- Table: videos ---
	Found 1 columns not accounted for in model:
	  - duration_seconds
*/

// AllModels lists every table owned by the site, parents before children.
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Project{},
		&Note{},
		&Video{},
		&ContactMessage{},
		&User{},
	}
}

// tableModels maps table names to the model describing them.
var tableModels = map[string]interface{}{
	"categories":       Category{},
	"contact_messages": ContactMessage{},
	"notes":            Note{},
	"projects":         Project{},
	"users":            User{},
	"videos":           Video{},
}

// GenerateModels migrates the schema and generates query helpers with gorm/gen.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	verbose := db.Session(&gorm.Session{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				LogLevel: logger.Info,
				Colorful: true,
			},
		),
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	if err := verbose.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	if _, err := WriteColumnReport(verbose, os.Stdout); err != nil {
		return err
	}

	if outPath == "" {
		outPath = "./generated"
	}
	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(verbose)
	g.ApplyBasic(AllModels()...)
	g.Execute()

	return nil
}

// WriteColumnReport prints, per table, the database columns missing from the models
// and returns how many were found in total.
func WriteColumnReport(db *gorm.DB, w io.Writer) (int, error) {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	tableNames := make([]string, 0, len(tableModels))
	for tableName := range tableModels {
		tableNames = append(tableNames, tableName)
	}
	sort.Strings(tableNames)

	total := 0
	for _, tableName := range tableNames {
		fmt.Fprintf(w, "\n--- Table: %s ---\n", tableName)

		dbColumns, err := tableColumns(db, tableName)
		if err != nil {
			return total, err
		}
		if len(dbColumns) == 0 {
			fmt.Fprintln(w, "Table does not exist yet (will be created during migration)")
			continue
		}

		missing := missingColumns(dbColumns, modelColumns(tableModels[tableName]))
		if len(missing) == 0 {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
			continue
		}

		fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(missing))
		for _, col := range missing {
			fmt.Fprintf(w, "  - %s\n", col)
		}
		total += len(missing)
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\nTotal mismatched columns across all tables: %d\n", total)
	return total, nil
}

func tableColumns(db *gorm.DB, tableName string) ([]string, error) {
	var columns []string
	err := db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`, tableName).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}
	return columns, nil
}

// modelColumns reads the column names declared in gorm tags, skipping relations.
func modelColumns(model interface{}) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if column := columnFromGormTag(field.Tag.Get("gorm")); column != "" {
			columns = append(columns, column)
		}
	}
	return columns
}

func columnFromGormTag(gormTag string) string {
	for _, part := range strings.Split(gormTag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

func missingColumns(dbColumns, modelFields []string) []string {
	known := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		known[field] = true
	}

	var missing []string
	for _, col := range dbColumns {
		if !known[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
