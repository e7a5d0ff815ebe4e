// Command export_catalog writes the careers table to a JSON catalog file that
// consolidate-catalog and import-catalog accept, so a database catalog can be edited and
// re-imported.
//
// Usage:
//
//	go run ./cmd/tools/export_catalog -out catalog.json
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/career-compass/internal/db"
)

func main() {
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	careers, err := database.ListCareers(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to list careers: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(careers, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to encode careers: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if *out == "" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Exported %d careers to %s\n", len(careers), *out)
}
