package hood

import (
	"context"
	"fmt"
	"io"
	"iter"

	json "github.com/goccy/go-json"
)

// page is one paginated listing response. The API links pages with absolute
// URLs; next is null on the last page.
type page[T any] struct {
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Results  []T     `json:"results"`
}

// Paginator walks a paginated listing one record at a time, fetching pages
// on demand. It is forward-only: a consumed page is never requested again,
// and a drained paginator cannot be restarted. Each Paginator owns its own
// cursor, so several may run against the same Client concurrently.
type Paginator[T any] struct {
	client *Client
	buf    []T
	next   *string
}

func newPaginator[T any](c *Client, start string) *Paginator[T] {
	return &Paginator[T]{client: c, next: &start}
}

// Next returns the next record, fetching the next page when the current one
// is drained. It returns Done once the last page has been consumed. A fetch
// or decode failure is returned as-is and leaves the cursor on the failed
// page; callers should normally treat the sequence as ended.
func (p *Paginator[T]) Next(ctx context.Context) (*T, error) {
	for {
		if len(p.buf) > 0 {
			rec := p.buf[0]
			p.buf = p.buf[1:]
			return &rec, nil
		}
		if p.next == nil {
			return nil, Done
		}
		var pg page[T]
		if err := p.client.get(ctx, *p.next, &pg); err != nil {
			return nil, err
		}
		// An empty page with a next link just loops to the following fetch.
		p.buf = pg.Results
		p.next = pg.Next
	}
}

// All adapts the paginator to a range-over-func sequence. Iteration stops at
// the end of the listing or after the first error is yielded.
func (p *Paginator[T]) All(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for {
			rec, err := p.Next(ctx)
			if err == Done {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// decodeStrict decodes JSON rejecting unknown fields, so server-side schema
// drift fails loudly instead of being silently dropped.
func decodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
