package sheetbatch

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Spreadsheet is a handle to a remote spreadsheet backed by a locally cached
// copy of its JSON. Sheet lookups and reads resolve against the cache only;
// the cache reflects the last explicit fetch, not necessarily the live remote
// state, and staleness is the caller's responsibility.
type Spreadsheet struct {
	client *Client
	id     string
	raw    *sheets.Spreadsheet
	staged []int64 // sheet ids deposited by AddSheet, pending flush
}

func (s *Spreadsheet) ID() string {
	return s.id
}

func (s *Spreadsheet) URL() string {
	return "https://docs.google.com/spreadsheets/d/" + s.id
}

func (s *Spreadsheet) Title() string {
	if s.raw == nil || s.raw.Properties == nil {
		return ""
	}

	return s.raw.Properties.Title
}

// Refresh refetches the spreadsheet with full grid data and replaces the
// cached copy. The old cache remains visible until the fetch completes. Sheet
// handles obtained before the refresh keep their old snapshot - look them up
// again to see the new one.
func (s *Spreadsheet) Refresh(ctx context.Context) error {
	raw, err := s.client.api.getSpreadsheet(ctx, s.id)
	if err != nil {
		return err
	}

	s.raw = raw
	s.staged = nil

	return nil
}

// Sheets returns handles to all sheets in the cached spreadsheet, in sheet
// order.
func (s *Spreadsheet) Sheets() []*Sheet {
	list := make([]*Sheet, 0, len(s.raw.Sheets))
	for _, raw := range s.raw.Sheets {
		list = append(list, s.sheet(raw))
	}

	return list
}

// SheetByID resolves a sheet by its sheet id, failing with ErrNotFound if the
// cached spreadsheet has no such sheet.
func (s *Spreadsheet) SheetByID(sheetID int64) (*Sheet, error) {
	for _, raw := range s.raw.Sheets {
		if raw.Properties != nil && raw.Properties.SheetId == sheetID {
			return s.sheet(raw), nil
		}
	}

	return nil, fmt.Errorf("sheet %v: %w", sheetID, ErrNotFound)
}

// SheetByIndex resolves a sheet by its zero-based index.
func (s *Spreadsheet) SheetByIndex(index int64) (*Sheet, error) {
	if index < 0 || index >= int64(len(s.raw.Sheets)) {
		return nil, fmt.Errorf("sheet index %v: %w", index, ErrNotFound)
	}

	return s.sheet(s.raw.Sheets[index]), nil
}

// SheetByTitle resolves a sheet by title, failing with ErrNotFound if absent
// from the cache. A lookup miss does not mutate the cache - refresh first if
// the sheet was added remotely.
func (s *Spreadsheet) SheetByTitle(title string) (*Sheet, error) {
	for _, raw := range s.raw.Sheets {
		if raw.Properties != nil && raw.Properties.Title == title {
			return s.sheet(raw), nil
		}
	}

	return nil, fmt.Errorf("sheet %q: %w", title, ErrNotFound)
}

func (s *Spreadsheet) sheet(raw *sheets.Sheet) *Sheet {
	sheet := Sheet{
		spreadsheet: s,
		raw:         raw,
	}

	if raw.Properties != nil {
		sheet.id = raw.Properties.SheetId
	}

	return &sheet
}

// UpdateTitle deposits a request to rename the spreadsheet.
func (s *Spreadsheet) UpdateTitle(title string) {
	s.client.deposit(s.id, &sheets.Request{
		UpdateSpreadsheetProperties: &sheets.UpdateSpreadsheetPropertiesRequest{
			Properties: &sheets.SpreadsheetProperties{
				Title: title,
			},
			Fields: "title",
		},
	})
}

// AddSheet deposits a request to add a new sheet, choosing the smallest
// non-negative sheet id not present in the cache or already staged. The
// returned handle is usable for staging further requests but has no cached
// grid until the deposits are flushed and the spreadsheet refreshed.
func (s *Spreadsheet) AddSheet() *Sheet {
	used := map[int64]bool{}
	for _, raw := range s.raw.Sheets {
		if raw.Properties != nil {
			used[raw.Properties.SheetId] = true
		}
	}
	for _, id := range s.staged {
		used[id] = true
	}

	sheetID := int64(0)
	for used[sheetID] {
		sheetID++
	}

	s.client.deposit(s.id, &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				SheetId:         sheetID,
				ForceSendFields: []string{"SheetId"},
			},
		},
	})

	s.staged = append(s.staged, sheetID)

	return s.sheet(&sheets.Sheet{
		Properties: &sheets.SheetProperties{
			SheetId: sheetID,
		},
	})
}
