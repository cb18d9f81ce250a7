package sheetbatch

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// api is the boundary to the Google Sheets service. Keeping it narrow means the
// cache and deposit queue can be exercised against a fake without network I/O,
// and [][]interface{} style API plumbing stays out of the core.
type api interface {
	createSpreadsheet(ctx context.Context, title string) (*sheets.Spreadsheet, error)
	getSpreadsheet(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error)
	getSheetGrid(ctx context.Context, spreadsheetID string, sheetID int64) (*sheets.Sheet, error)
	batchUpdate(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error
}

type googleAPI struct {
	service *sheets.Service
}

func (g *googleAPI) createSpreadsheet(ctx context.Context, title string) (*sheets.Spreadsheet, error) {
	spreadsheet := sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}

	created, err := g.service.Spreadsheets.Create(&spreadsheet).Context(ctx).Do()
	if err != nil {
		return nil, &RemoteError{Op: "create", Err: err}
	}

	return created, nil
}

func (g *googleAPI) getSpreadsheet(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := g.service.Spreadsheets.Get(spreadsheetID).IncludeGridData(true).Context(ctx).Do()
	if err != nil {
		return nil, &RemoteError{Op: "get", SpreadsheetID: spreadsheetID, Err: err}
	}

	return spreadsheet, nil
}

func (g *googleAPI) getSheetGrid(ctx context.Context, spreadsheetID string, sheetID int64) (*sheets.Sheet, error) {
	rq := sheets.GetSpreadsheetByDataFilterRequest{
		DataFilters: []*sheets.DataFilter{
			{
				GridRange: &sheets.GridRange{
					SheetId: sheetID,
				},
			},
		},
		IncludeGridData: true,
	}

	spreadsheet, err := g.service.Spreadsheets.GetByDataFilter(spreadsheetID, &rq).Context(ctx).Do()
	if err != nil {
		return nil, &RemoteError{Op: "getByDataFilter", SpreadsheetID: spreadsheetID, Err: err}
	}

	if len(spreadsheet.Sheets) == 0 {
		return nil, fmt.Errorf("sheet %v of spreadsheet %v: %w", sheetID, spreadsheetID, ErrNotFound)
	}

	return spreadsheet.Sheets[0], nil
}

func (g *googleAPI) batchUpdate(ctx context.Context, spreadsheetID string, requests []*sheets.Request) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	if _, err := g.service.Spreadsheets.BatchUpdate(spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return &RemoteError{Op: "batchUpdate", SpreadsheetID: spreadsheetID, Err: err}
	}

	return nil
}
