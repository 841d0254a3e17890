package export

import (
	"context"
	"fmt"

	"tablecast/internal/cell"
	"tablecast/internal/config"
	"tablecast/internal/table"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog/log"
)

// Schema derives a BigQuery schema from the table's resolved columns.
// Numeric columns map to FLOAT64, date columns to TIMESTAMP; everything
// else (text, list, blank) maps to nullable STRING via its rendered form.
func Schema(t *table.Table) bigquery.Schema {
	schema := make(bigquery.Schema, 0, len(t.Columns))
	for j := range t.Columns {
		c := &t.Columns[j]
		fs := &bigquery.FieldSchema{Name: c.Name}
		switch c.Type {
		case cell.ColNumeric:
			fs.Type = bigquery.FloatFieldType
		case cell.ColDate:
			fs.Type = bigquery.TimestampFieldType
		default:
			fs.Type = bigquery.StringFieldType
		}
		schema = append(schema, fs)
	}
	return schema
}

// rowSaver streams one table row into the insert buffer without copying
// the column data.
type rowSaver struct {
	t   *table.Table
	row int
}

// Save implements bigquery.ValueSaver. Missing cells become nil values.
func (r rowSaver) Save() (map[string]bigquery.Value, string, error) {
	values := make(map[string]bigquery.Value, len(r.t.Columns))
	for j := range r.t.Columns {
		c := &r.t.Columns[j]
		switch c.Type {
		case cell.ColNumeric:
			v := c.Numbers[r.row]
			if v != v { // NaN
				values[c.Name] = nil
			} else {
				values[c.Name] = v
			}
		case cell.ColDate:
			if ts := c.Times[r.row]; ts != nil {
				values[c.Name] = *ts
			} else {
				values[c.Name] = nil
			}
		default:
			if s, ok := c.Render(r.row); ok {
				values[c.Name] = s
			} else {
				values[c.Name] = nil
			}
		}
	}
	// No natural dedupe key for spreadsheet rows; let BigQuery assign one.
	return values, "", nil
}

// Upload streams the table into the given dataset and table, creating the
// destination with the derived schema when it does not exist yet.
func Upload(ctx context.Context, client *bigquery.Client, datasetID, tableID string, t *table.Table) error {
	dst := client.Dataset(datasetID).Table(tableID)

	if _, err := dst.Metadata(ctx); err != nil {
		meta := &bigquery.TableMetadata{Schema: Schema(t)}
		if err := dst.Create(ctx, meta); err != nil {
			return fmt.Errorf("failed to create table %s.%s: %w", datasetID, tableID, err)
		}
	}

	savers := make([]bigquery.ValueSaver, 0, t.NRows)
	for i := 0; i < t.NRows; i++ {
		savers = append(savers, rowSaver{t: t, row: i})
	}

	inserter := dst.Inserter()
	err := config.Retry(ctx, config.DefaultResilienceConfig.Upload, func() error {
		return inserter.Put(ctx, savers)
	})
	if err != nil {
		return fmt.Errorf("failed to insert rows: %w", err)
	}

	log.Info().
		Str("dataset", datasetID).
		Str("table", tableID).
		Int("rows", t.NRows).
		Msg("Uploaded table to BigQuery")

	return nil
}
