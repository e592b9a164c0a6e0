package service

import (
	"context"
	"errors"

	"github.com/mmcdole/artgrid/internal/domain"
)

// fakeSource serves ids 1..total and can be told to fail specific pages
type fakeSource struct {
	total   int
	failing map[int]error
	calls   []int
}

func newFakeSource(total int) *fakeSource {
	return &fakeSource{total: total, failing: map[int]error{}}
}

func (f *fakeSource) FetchPage(ctx context.Context, page, limit int) (domain.Page, error) {
	f.calls = append(f.calls, page)
	if err := ctx.Err(); err != nil {
		return domain.Page{}, err
	}
	if err, ok := f.failing[page]; ok {
		return domain.Page{}, err
	}

	out := domain.Page{Total: f.total, Number: page, Size: limit}
	start := (page - 1) * limit
	for id := start + 1; id <= start+limit && id <= f.total; id++ {
		out.Items = append(out.Items, domain.Artwork{ID: id})
	}
	return out, nil
}

var errOffline = errors.New("dial tcp: connection refused")
