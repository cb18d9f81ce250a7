package sheetbatch

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

type recordedBatch struct {
	spreadsheetID string
	requests      []*sheets.Request
}

// fakeAPI stands in for the Google Sheets service so that cache and queue
// behaviour can be exercised without network I/O.
type fakeAPI struct {
	spreadsheets map[string]*sheets.Spreadsheet
	grids        map[string]map[int64]*sheets.Sheet
	batches      []recordedBatch
	batchErr     error
}

func newFakeAPI(spreadsheets ...*sheets.Spreadsheet) *fakeAPI {
	f := fakeAPI{
		spreadsheets: map[string]*sheets.Spreadsheet{},
		grids:        map[string]map[int64]*sheets.Sheet{},
	}

	for _, ss := range spreadsheets {
		f.spreadsheets[ss.SpreadsheetId] = ss
	}

	return &f
}

func (f *fakeAPI) createSpreadsheet(ctx context.Context, title string) (*sheets.Spreadsheet, error) {
	ss := sheets.Spreadsheet{
		SpreadsheetId: fmt.Sprintf("created-%v", len(f.spreadsheets)+1),
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					SheetId: 0,
					Title:   "Sheet1",
				},
			},
		},
	}

	f.spreadsheets[ss.SpreadsheetId] = &ss

	return &ss, nil
}

func (f *fakeAPI) getSpreadsheet(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error) {
	if ss, ok := f.spreadsheets[spreadsheetID]; ok {
		return ss, nil
	}

	return nil, &RemoteError{Op: "get", SpreadsheetID: spreadsheetID, Err: fmt.Errorf("no such spreadsheet")}
}

func (f *fakeAPI) getSheetGrid(ctx context.Context, spreadsheetID string, sheetID int64) (*sheets.Sheet, error) {
	if grids, ok := f.grids[spreadsheetID]; ok {
		if sheet, ok := grids[sheetID]; ok {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("sheet %v of spreadsheet %v: %w", sheetID, spreadsheetID, ErrNotFound)
}

func (f *fakeAPI) batchUpdate(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error {
	recorded := recordedBatch{
		spreadsheetID: spreadsheetID,
		requests:      append([]*sheets.Request{}, requests...),
	}

	f.batches = append(f.batches, recorded)

	return f.batchErr
}

func strv(s string) *sheets.ExtendedValue {
	return &sheets.ExtendedValue{StringValue: &s}
}

func numv(n float64) *sheets.ExtendedValue {
	return &sheets.ExtendedValue{NumberValue: &n}
}

func boolv(b bool) *sheets.ExtendedValue {
	return &sheets.ExtendedValue{BoolValue: &b}
}

func formulav(f string) *sheets.ExtendedValue {
	return &sheets.ExtendedValue{FormulaValue: &f}
}

func gridCell(entered *sheets.ExtendedValue, effective *sheets.ExtendedValue, formatted string) *sheets.CellData {
	return &sheets.CellData{
		UserEnteredValue: entered,
		EffectiveValue:   effective,
		FormattedValue:   formatted,
	}
}

// testSpreadsheet has two sheets: "Inventory" (sheet id 0) with a small grid
// and one merged range, and "Archive" (sheet id 3) with no grid data.
func testSpreadsheet() *sheets.Spreadsheet {
	return &sheets.Spreadsheet{
		SpreadsheetId: "ss-test-1",
		Properties: &sheets.SpreadsheetProperties{
			Title: "Stocktake",
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					SheetId: 0,
					Title:   "Inventory",
					Index:   0,
					GridProperties: &sheets.GridProperties{
						RowCount:    10,
						ColumnCount: 5,
					},
				},
				Data: []*sheets.GridData{
					{
						RowData: []*sheets.RowData{
							{
								Values: []*sheets.CellData{
									gridCell(strv("Item"), strv("Item"), "Item"),
									gridCell(strv("Qty"), strv("Qty"), "Qty"),
								},
							},
							{
								Values: []*sheets.CellData{
									gridCell(strv("Widget"), strv("Widget"), "Widget"),
									gridCell(numv(3), numv(3), "3"),
								},
							},
							{
								Values: []*sheets.CellData{
									nil,
									gridCell(boolv(true), boolv(true), "TRUE"),
									gridCell(formulav("=B2*2"), numv(6), "6"),
								},
							},
						},
					},
				},
				Merges: []*sheets.GridRange{
					{
						SheetId:          0,
						StartRowIndex:    0,
						EndRowIndex:      1,
						StartColumnIndex: 0,
						EndColumnIndex:   2,
					},
				},
			},
			{
				Properties: &sheets.SheetProperties{
					SheetId: 3,
					Title:   "Archive",
					Index:   1,
					Hidden:  true,
				},
			},
		},
	}
}

func testClient(opts ...Option) (*Client, *fakeAPI) {
	api := newFakeAPI(testSpreadsheet())

	return newClient(api, opts...), api
}
