package gsheets

import (
	"context"
	"fmt"

	"tablecast/internal/cell"
	"tablecast/internal/config"
	"tablecast/internal/table"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// boolErrRecord is the legacy record id for boolean/error cells, the same
// mapping the xlsx source uses for error cells.
const boolErrRecord = cell.RecordKind(517)

// Client fetches spreadsheet grid data from the Google Sheets API and
// converts it into the engine's input model. Serial numbers from Sheets
// use the 1900 date system, so Date1904 is always false here.
type Client struct {
	service *sheets.Service
	retry   config.RetryConfig
}

// NewClient creates a new Google Sheets client with the provided credentials
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
		retry:   config.DefaultResilienceConfig.SheetFetch,
	}, nil
}

// FetchSheet downloads one sheet's grid data, including number formats,
// and converts it to a raw sheet. An empty sheet name selects the
// spreadsheet's first sheet.
func (c *Client) FetchSheet(ctx context.Context, spreadsheetID, sheetName string) (table.RawSheet, error) {
	var resp *sheets.Spreadsheet
	err := config.Retry(ctx, c.retry, func() error {
		call := c.service.Spreadsheets.Get(spreadsheetID).
			IncludeGridData(true).
			Context(ctx)
		if sheetName != "" {
			call = call.Ranges(sheetName)
		}
		var err error
		resp, err = call.Do()
		return err
	})
	if err != nil {
		return table.RawSheet{}, fmt.Errorf("failed to fetch spreadsheet: %w", err)
	}

	if len(resp.Sheets) == 0 || len(resp.Sheets[0].Data) == 0 {
		return table.RawSheet{}, fmt.Errorf("spreadsheet %s has no grid data", spreadsheetID)
	}

	grid := resp.Sheets[0].Data[0]
	sheet := convertGrid(grid)

	log.Debug().
		Str("spreadsheet_id", spreadsheetID).
		Int("rows", sheet.NRows).
		Int("columns", sheet.NCols).
		Msg("Fetched sheet grid data")

	return sheet, nil
}

// formatRegistry assigns number-format ids to the distinct formats seen in
// the grid, building the synthetic style table the classifier consumes.
// Formats the API marks as date-like map onto built-in date ids; others
// get custom ids so pattern-based detection still applies.
type formatRegistry struct {
	ids      []int
	byKey    map[string]int
	formats  map[int]string
	nextByID int
}

func newFormatRegistry() *formatRegistry {
	return &formatRegistry{
		byKey:    make(map[string]int),
		formats:  make(map[int]string),
		nextByID: 164,
	}
}

// register returns the style index for a number format.
func (r *formatRegistry) register(nf *sheets.NumberFormat) int {
	var id int
	switch {
	case nf == nil:
		id = 0
	case nf.Type == "DATE":
		id = 14
	case nf.Type == "TIME":
		id = 20
	case nf.Type == "DATE_TIME":
		id = 22
	case nf.Pattern != "":
		key := nf.Type + "\x00" + nf.Pattern
		if existing, ok := r.byKey[key]; ok {
			id = existing
		} else {
			id = r.nextByID
			r.nextByID++
			r.byKey[key] = id
			r.formats[id] = nf.Pattern
		}
	default:
		id = 0
	}

	r.ids = append(r.ids, id)
	return len(r.ids) - 1
}

// NumFmt implements cell.StyleTable over the registered formats.
func (r *formatRegistry) NumFmt(xf int) int {
	if xf < 0 || xf >= len(r.ids) {
		return 0
	}
	return r.ids[xf]
}

func convertGrid(grid *sheets.GridData) table.RawSheet {
	reg := newFormatRegistry()
	sheet := table.RawSheet{
		NRows:  len(grid.RowData),
		Styles: reg,
	}

	for r, rd := range grid.RowData {
		if len(rd.Values) > sheet.NCols {
			sheet.NCols = len(rd.Values)
		}
		for c, cd := range rd.Values {
			rc, ok := convertCell(r, c, cd, reg)
			if ok {
				sheet.Cells = append(sheet.Cells, rc)
			}
		}
	}

	sheet.Custom = cell.NewCustomDateFormats(reg.formats)
	return sheet
}

// convertCell maps one API cell onto the engine's record model.
func convertCell(r, c int, cd *sheets.CellData, reg *formatRegistry) (cell.RawCell, bool) {
	if cd == nil || cd.EffectiveValue == nil {
		return cell.RawCell{}, false
	}

	rc := cell.RawCell{Row: r, Col: c}
	if cd.EffectiveFormat != nil {
		rc.XF = reg.register(cd.EffectiveFormat.NumberFormat)
	} else {
		rc.XF = reg.register(nil)
	}

	formula := cd.UserEnteredValue != nil && cd.UserEnteredValue.FormulaValue != nil
	ev := cd.EffectiveValue

	switch {
	case ev.StringValue != nil:
		if formula {
			rc.Kind = cell.KindFormula
			rc.HasText = true
		} else {
			rc.Kind = cell.KindLabelSST
		}
		rc.Text = *ev.StringValue
	case ev.NumberValue != nil:
		if formula {
			rc.Kind = cell.KindFormula
		} else {
			rc.Kind = cell.KindNumber
		}
		rc.Number = *ev.NumberValue
	case ev.BoolValue != nil:
		rc.Kind = cell.KindNumber
		if *ev.BoolValue {
			rc.Number = 1
		}
	case ev.ErrorValue != nil:
		// Surfaces through the classifier's unknown-kind diagnostic.
		rc.Kind = boolErrRecord
		rc.Text = ev.ErrorValue.Message
	default:
		return cell.RawCell{}, false
	}

	return rc, true
}
