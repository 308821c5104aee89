package pager

import (
	"context"
	"errors"
	"sync"

	"github.com/mmcdole/gallery/internal/domain"
)

var errBoom = errors.New("connection reset")

// fakeRepo serves records 1..total from memory
type fakeRepo struct {
	mu    sync.Mutex
	total int
	fail  map[int]error // page -> error to return
	block chan struct{} // when set, GetPage waits for it to close
	calls []int
}

func newFakeRepo(total int) *fakeRepo {
	return &fakeRepo{total: total, fail: make(map[int]error)}
}

func (r *fakeRepo) GetPage(ctx context.Context, pageNumber, limit int) (domain.Page, error) {
	r.mu.Lock()
	r.calls = append(r.calls, pageNumber)
	block := r.block
	err := r.fail[pageNumber]
	r.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return domain.Page{}, ctx.Err()
		}
	}
	if err != nil {
		return domain.Page{}, err
	}

	start := (pageNumber - 1) * limit
	var records []domain.Record
	for id := start + 1; id <= min(start+limit, r.total); id++ {
		records = append(records, domain.Record{ID: id, Title: "Artwork"})
	}
	return domain.Page{
		Number:     pageNumber,
		Records:    records,
		Total:      r.total,
		Limit:      limit,
		TotalPages: (r.total + limit - 1) / limit,
	}, nil
}

func (r *fakeRepo) setFail(page int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.fail, page)
		return
	}
	r.fail[page] = err
}

func (r *fakeRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
