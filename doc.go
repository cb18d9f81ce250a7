// Copyright 2026 sheetbatch. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetbatch is a convenience layer over the Google Sheets v4 API that batches
cell writes into single batchUpdate calls and serves reads from a locally cached copy
of the spreadsheet.

The Sheets API meters write quota per request, not per cell, so N staged edits flushed
as one batch consume one quota unit. A Client accumulates staged requests ("deposits")
per spreadsheet and sends each spreadsheet's queue as a single batchUpdate when Flush
is invoked. Reads index the spreadsheet JSON fetched by OpenByID or Refresh - they
never touch the network, and the cache is only as fresh as the last explicit refresh.

The sheetbatch CLI supports the following commands:

  - authorise, to authorise sheetbatch to access Google Sheets
  - create, to create a new spreadsheet
  - get, to download a worksheet as a TSV or XLSX file
  - put, to upload a TSV file to a worksheet as one batched update
  - version, to display the current version

Clients, spreadsheets and sheets are not safe for concurrent use - the cache and
deposit queue are plain process-local state with no locking.
*/
package sheetbatch
