// Package remote holds the request-lifecycle state for one backend
// collection. Every resource store embeds a Resource and gets the same
// fetch/create/update/delete semantics: a failed call surfaces its error but
// never discards data from the last successful one.
package remote

import (
	"context"
	"fmt"
	"sync"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
)

// State tracks where a collection is in its request lifecycle.
type State int

const (
	NotAsked State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case NotAsked:
		return "not_asked"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Config wires a Resource to its backend collection. ListKeys and ItemKeys
// are the envelope key candidates for list and single-record responses. ID
// extracts the record identifier used to match updates and deletes.
type Config[T any] struct {
	Client   *apiclient.Client
	BasePath string
	ListKeys []string
	ItemKeys []string
	ID       func(T) string
}

// Resource is a mutex-guarded collection snapshot plus its lifecycle state.
type Resource[T any] struct {
	cfg Config[T]

	mu      sync.Mutex
	state   State
	items   []T
	current *T
	err     error
}

func New[T any](cfg Config[T]) *Resource[T] {
	return &Resource[T]{cfg: cfg}
}

// State returns the lifecycle state of the last collection request.
func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the error from the last failed request, nil otherwise.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Items returns a copy of the collection snapshot.
func (r *Resource[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Current returns the last individually fetched record, nil when none.
func (r *Resource[T]) Current() *T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil
	}
	c := *r.current
	return &c
}

func (r *Resource[T]) beginRequest() {
	r.mu.Lock()
	r.state = Loading
	r.err = nil
	r.mu.Unlock()
}

func (r *Resource[T]) failRequest(err error) {
	r.mu.Lock()
	r.state = Failed
	r.err = err
	r.mu.Unlock()
}

// FetchAll replaces the collection snapshot with the backend's current list.
func (r *Resource[T]) FetchAll(ctx context.Context, opts ...apiclient.RequestOption) error {
	r.beginRequest()

	var env apiclient.Envelope
	if err := r.cfg.Client.Get(ctx, r.cfg.BasePath, &env, opts...); err != nil {
		r.failRequest(err)
		return err
	}

	var items []T
	if err := env.Unmarshal(&items, r.cfg.ListKeys...); err != nil {
		err = fmt.Errorf("decode %s list: %w", r.cfg.BasePath, err)
		r.failRequest(err)
		return err
	}

	r.mu.Lock()
	r.state = Loaded
	r.items = items
	r.mu.Unlock()
	return nil
}

// FetchOne loads a single record and makes it current.
func (r *Resource[T]) FetchOne(ctx context.Context, id string, opts ...apiclient.RequestOption) error {
	r.beginRequest()

	var env apiclient.Envelope
	if err := r.cfg.Client.Get(ctx, r.cfg.BasePath+"/"+id, &env, opts...); err != nil {
		r.failRequest(err)
		return err
	}

	var item T
	if err := env.Unmarshal(&item, r.cfg.ItemKeys...); err != nil {
		err = fmt.Errorf("decode %s record: %w", r.cfg.BasePath, err)
		r.failRequest(err)
		return err
	}

	r.mu.Lock()
	r.state = Loaded
	r.current = &item
	r.mu.Unlock()
	return nil
}

// Create submits body and appends the created record to the snapshot.
func (r *Resource[T]) Create(ctx context.Context, body interface{}, opts ...apiclient.RequestOption) (*T, error) {
	r.beginRequest()

	var env apiclient.Envelope
	if err := r.cfg.Client.Post(ctx, r.cfg.BasePath, body, &env, opts...); err != nil {
		r.failRequest(err)
		return nil, err
	}

	var item T
	if err := env.Unmarshal(&item, r.cfg.ItemKeys...); err != nil {
		err = fmt.Errorf("decode created %s record: %w", r.cfg.BasePath, err)
		r.failRequest(err)
		return nil, err
	}

	r.mu.Lock()
	r.state = Loaded
	r.items = append(r.items, item)
	r.mu.Unlock()
	return &item, nil
}

// Update submits body for id and replaces the matching snapshot entry. The
// current record is refreshed when it is the one updated.
func (r *Resource[T]) Update(ctx context.Context, id string, body interface{}, opts ...apiclient.RequestOption) (*T, error) {
	r.beginRequest()

	var env apiclient.Envelope
	if err := r.cfg.Client.Put(ctx, r.cfg.BasePath+"/"+id, body, &env, opts...); err != nil {
		r.failRequest(err)
		return nil, err
	}

	var item T
	if err := env.Unmarshal(&item, r.cfg.ItemKeys...); err != nil {
		err = fmt.Errorf("decode updated %s record: %w", r.cfg.BasePath, err)
		r.failRequest(err)
		return nil, err
	}

	r.mu.Lock()
	r.state = Loaded
	for i := range r.items {
		if r.cfg.ID(r.items[i]) == id {
			r.items[i] = item
			break
		}
	}
	if r.current != nil && r.cfg.ID(*r.current) == id {
		r.current = &item
	}
	r.mu.Unlock()
	return &item, nil
}

// Delete removes id on the backend and from the snapshot. The current record
// is cleared when it is the one deleted.
func (r *Resource[T]) Delete(ctx context.Context, id string, opts ...apiclient.RequestOption) error {
	r.beginRequest()

	if err := r.cfg.Client.Delete(ctx, r.cfg.BasePath+"/"+id, opts...); err != nil {
		r.failRequest(err)
		return err
	}

	r.mu.Lock()
	r.state = Loaded
	kept := r.items[:0]
	for _, item := range r.items {
		if r.cfg.ID(item) != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	if r.current != nil && r.cfg.ID(*r.current) == id {
		r.current = nil
	}
	r.mu.Unlock()
	return nil
}

// Hydrate installs a snapshot obtained outside the request path, e.g. from a
// cache, and marks the resource loaded.
func (r *Resource[T]) Hydrate(items []T) {
	r.mu.Lock()
	r.state = Loaded
	r.items = items
	r.err = nil
	r.mu.Unlock()
}

// Reset returns the resource to its initial empty state.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	r.state = NotAsked
	r.items = nil
	r.current = nil
	r.err = nil
	r.mu.Unlock()
}
