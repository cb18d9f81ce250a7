package sheetbatch

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"google.golang.org/api/sheets/v4"
)

const (
	// DefaultWriteQuota is the Sheets API write quota - the number of write
	// requests allowed per DefaultWriteQuotaWindow, per user.
	DefaultWriteQuota = 100

	// DefaultWriteQuotaWindow is the sliding window over which the write
	// quota is metered.
	DefaultWriteQuotaWindow = 100 * time.Second
)

// Client communicates with the Google Sheets API. It owns the deposit queue:
// staged write requests accumulate here, keyed by spreadsheet, until Flush
// sends each spreadsheet's queue as a single batchUpdate call.
//
// A Client is created once at startup and held for the process lifetime. It is
// not safe for concurrent use.
type Client struct {
	api      api
	email    string
	deposits *requestQueue
	limiter  *writeLimiter

	quotaLimit  int
	quotaWindow time.Duration
	clock       clockwork.Clock
}

type Option func(*Client)

// WithAccountEmail sets the Google account email recorded as editor on staged
// sheet protection requests. Protection staging fails without it.
func WithAccountEmail(email string) Option {
	return func(c *Client) {
		c.email = email
	}
}

// WithWriteQuota overrides the write-quota pacing. A limit of 0 disables
// pacing altogether.
func WithWriteQuota(limit int, window time.Duration) Option {
	return func(c *Client) {
		c.quotaLimit = limit
		c.quotaWindow = window
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// NewClient wraps an authenticated Sheets service handle.
func NewClient(service *sheets.Service, opts ...Option) *Client {
	return newClient(&googleAPI{service: service}, opts...)
}

func newClient(api api, opts ...Option) *Client {
	c := Client{
		api:         api,
		deposits:    newRequestQueue(),
		quotaLimit:  DefaultWriteQuota,
		quotaWindow: DefaultWriteQuotaWindow,
		clock:       clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	c.limiter = newWriteLimiter(c.quotaLimit, c.quotaWindow, c.clock)

	return &c
}

// CreateSpreadsheet creates a new spreadsheet with the given title and returns
// a handle to it. The returned handle has no grid data cached - Refresh it
// before reading cell values.
func (c *Client) CreateSpreadsheet(ctx context.Context, title string) (*Spreadsheet, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	raw, err := c.api.createSpreadsheet(ctx, title)
	if err != nil {
		return nil, err
	}

	c.limiter.record()

	return &Spreadsheet{client: c, id: raw.SpreadsheetId, raw: raw}, nil
}

// OpenByID fetches the spreadsheet with its full grid data and returns a
// handle whose reads are served from the fetched snapshot.
func (c *Client) OpenByID(ctx context.Context, spreadsheetID string) (*Spreadsheet, error) {
	raw, err := c.api.getSpreadsheet(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	return &Spreadsheet{client: c, id: raw.SpreadsheetId, raw: raw}, nil
}

// Pending returns the number of deposited requests not yet flushed.
func (c *Client) Pending() int {
	return c.deposits.size()
}

// Flush executes all deposited requests: each touched spreadsheet's queue is
// serialized into one batchUpdate call, in first-deposit order. A successful
// call clears that spreadsheet's queue; on failure the queue is left intact so
// the caller may retry the identical batch. Whether a failed batch partially
// applied remotely is undefined - the remote call is treated as opaque-atomic.
func (c *Client) Flush(ctx context.Context) error {
	for _, spreadsheetID := range c.deposits.spreadsheets() {
		if err := c.flush(ctx, spreadsheetID); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) flush(ctx context.Context, spreadsheetID string) error {
	requests := c.deposits.requests(spreadsheetID)
	if len(requests) == 0 {
		c.deposits.clear(spreadsheetID)
		return nil
	}

	if err := c.limiter.wait(ctx); err != nil {
		return err
	}

	if err := c.api.batchUpdate(ctx, spreadsheetID, requests); err != nil {
		return err
	}

	c.limiter.record()
	c.deposits.clear(spreadsheetID)

	return nil
}

func (c *Client) deposit(spreadsheetID string, rq *sheets.Request) {
	c.deposits.deposit(spreadsheetID, rq)
}
