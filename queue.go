package sheetbatch

import (
	"google.golang.org/api/sheets/v4"
)

// requestQueue holds deposited batchUpdate requests per spreadsheet, preserving
// both deposit order within a spreadsheet and first-deposit order across
// spreadsheets. Entries are appended, never reordered, and removed only by a
// successful flush.
type requestQueue struct {
	order  []string
	queues map[string][]*sheets.Request
}

func newRequestQueue() *requestQueue {
	return &requestQueue{
		queues: map[string][]*sheets.Request{},
	}
}

func (q *requestQueue) deposit(spreadsheetID string, rq *sheets.Request) {
	if _, ok := q.queues[spreadsheetID]; !ok {
		q.order = append(q.order, spreadsheetID)
	}

	q.queues[spreadsheetID] = append(q.queues[spreadsheetID], rq)
}

func (q *requestQueue) spreadsheets() []string {
	ids := make([]string, len(q.order))
	copy(ids, q.order)

	return ids
}

func (q *requestQueue) requests(spreadsheetID string) []*sheets.Request {
	return q.queues[spreadsheetID]
}

func (q *requestQueue) clear(spreadsheetID string) {
	delete(q.queues, spreadsheetID)

	for i, id := range q.order {
		if id == spreadsheetID {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}

func (q *requestQueue) size() int {
	n := 0
	for _, requests := range q.queues {
		n += len(requests)
	}

	return n
}
