package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"tablecast/internal/app"
	"tablecast/internal/cell"
	"tablecast/internal/excel"
	"tablecast/internal/export"
	"tablecast/internal/gsheets"
	"tablecast/internal/table"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	file := flag.String("file", "", "Path to an .xlsx workbook to read")
	sheet := flag.String("sheet", "", "Worksheet name (default: first sheet)")
	spreadsheetID := flag.String("spreadsheet-id", "", "Google Sheets spreadsheet ID to read instead of a local file")
	typesFlag := flag.String("types", "", "Comma-separated column types (skip, date, numeric, text, list); empty to guess")
	naFlag := flag.String("na", "", "Comma-separated strings treated as missing (overrides NA_VALUES)")
	guessMax := flag.Int("guess-max", 0, "Maximum rows sampled when guessing column types (overrides GUESS_MAX)")
	header := flag.Bool("header", true, "Use the first row as column names")
	out := flag.String("out", "-", "CSV output path, or - for stdout")
	bqTarget := flag.String("bq", "", "BigQuery destination as dataset.table (optional)")
	flag.Parse()

	log.Info().
		Str("file", *file).
		Str("spreadsheet_id", *spreadsheetID).
		Msg("Starting tablecast")

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *guessMax != 0 {
		config.GuessMax = *guessMax
	}
	if *naFlag != "" {
		config.NA = strings.Split(*naFlag, ",")
	}

	ctx := context.Background()

	// Load the raw cell stream from the requested container
	var raw table.RawSheet
	switch {
	case *file != "":
		raw, err = excel.Open(*file, *sheet)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read workbook")
		}
	case *spreadsheetID != "":
		client, cerr := gsheets.NewClient(ctx, config.CredentialsFile)
		if cerr != nil {
			log.Fatal().Err(cerr).Msg("Failed to create sheets client")
		}
		raw, err = client.FetchSheet(ctx, *spreadsheetID, *sheet)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to fetch spreadsheet")
		}
	default:
		log.Fatal().Msg("Either -file or -spreadsheet-id is required")
	}

	opts := table.Options{
		NA:       cell.NewNaSet(config.NA...),
		GuessMax: config.GuessMax,
	}

	if *header {
		opts.Names, raw = table.SplitHeader(raw)
	}

	if *typesFlag != "" {
		warn := &cell.Warnings{}
		types, terr := cell.ParseColTypes(strings.Split(*typesFlag, ","), warn)
		if terr != nil {
			log.Fatal().Err(terr).Msg("Invalid -types flag")
		}
		opts.Types = types
	}

	tbl, err := table.Read(raw, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to materialize table")
	}

	log.Info().
		Int("rows", tbl.NRows).
		Int("columns", len(tbl.Columns)).
		Int("warnings", len(tbl.Warnings)).
		Msg("Materialized table")

	// Write CSV output
	w := os.Stdout
	if *out != "-" {
		fh, ferr := os.Create(*out)
		if ferr != nil {
			log.Fatal().Err(ferr).Msg("Failed to create output file")
		}
		defer fh.Close()
		w = fh
	}
	if err := export.WriteCSV(w, tbl); err != nil {
		log.Fatal().Err(err).Msg("Failed to write CSV")
	}

	// Optional BigQuery upload
	if *bqTarget != "" {
		dataset, tableID, ok := strings.Cut(*bqTarget, ".")
		if !ok {
			log.Fatal().Str("bq", *bqTarget).Msg("BigQuery destination must be dataset.table")
		}
		if config.BigQueryProject == "" {
			log.Fatal().Msg("BIGQUERY_PROJECT is required for BigQuery uploads")
		}

		client, cerr := bigquery.NewClient(ctx, config.BigQueryProject,
			option.WithCredentialsFile(config.CredentialsFile))
		if cerr != nil {
			log.Fatal().Err(cerr).Msg("Failed to create BigQuery client")
		}
		defer client.Close()

		if err := export.Upload(ctx, client, dataset, tableID, tbl); err != nil {
			log.Fatal().Err(err).Msg("Failed to upload table")
		}
	}
}
