package rightnow

import (
	"context"
	"fmt"
	"reflect"

	"golang.org/x/sync/errgroup"
)

// Entity is a domain object addressed by a single identifier that can absorb
// normalized response attributes.
type Entity interface {
	Key() string
	SetKey(key string)
	Merge(data map[string]any) error
}

// Ref names an entity either by bare identifier or by a partially populated
// entity that results are merged into.
type Ref[E Entity] struct {
	id      string
	entity  E
	partial bool
}

// ByID refers to an entity by its identifier.
func ByID[E Entity](id string) Ref[E] {
	return Ref[E]{id: id}
}

// ByEntity refers to an existing entity, which is updated in place when
// fetched. A nil entity makes FetchMany fail with ErrNilEntity.
func ByEntity[E Entity](entity E) Ref[E] {
	return Ref[E]{entity: entity, partial: true}
}

// ID returns the identifier sent to the API for this reference.
func (r Ref[E]) ID() string {
	if r.partial {
		return r.entity.Key()
	}
	return r.id
}

// BatchSpec describes a single-entity lookup action.
type BatchSpec[E Entity] struct {
	// Action is the remote action, e.g. "PostGet".
	Action string
	// IDParam is the request parameter carrying the identifier.
	IDParam string
	// PayloadKey is the response key holding the entity, after key normalization.
	PayloadKey string
	// New returns an empty entity for bare identifier references.
	New func() E
}

type batchCall struct {
	id   string
	resp *Response
	err  error
}

// FetchMany issues one signed request per reference concurrently, waits for
// all of them, and returns results in input order. Responses are matched by
// position only. A position whose payload is not an object yields the zero E.
// The first failing position, in input order, fails the whole call.
func FetchMany[E Entity](ctx context.Context, c *Client, spec BatchSpec[E], refs []Ref[E], opts ...CallOption) ([]E, error) {
	for i, ref := range refs {
		if ref.partial && isNilEntity(ref.entity) {
			return nil, fmt.Errorf("%s reference %d: %w", spec.Action, i, ErrNilEntity)
		}
	}

	co := newCallOptions(opts)
	calls := make([]batchCall, len(refs))

	var g errgroup.Group
	for i, ref := range refs {
		calls[i].id = ref.ID()
		g.Go(func() error {
			calls[i].resp, calls[i].err = c.send(ctx, spec.Action, Params{spec.IDParam: calls[i].id}, co)
			return nil
		})
	}
	g.Wait()

	c.logger.Debug().
		Str("action", spec.Action).
		Int("count", len(refs)).
		Msg("Completed batch fetch")

	results := make([]E, len(refs))
	for i, ref := range refs {
		call := calls[i]
		if call.err != nil {
			return nil, call.err
		}

		body, err := Parse(call.resp)
		if err != nil {
			return nil, err
		}

		data, ok := entityPayload(body, spec.PayloadKey)
		if !ok {
			continue
		}

		entity := ref.entity
		if !ref.partial {
			entity = spec.New()
		}
		if err := entity.Merge(data); err != nil {
			return nil, fmt.Errorf("%s %s: %w", spec.Action, call.id, err)
		}
		entity.SetKey(call.id)
		results[i] = entity
	}

	return results, nil
}

// isNilEntity reports whether e is nil or a nil pointer.
func isNilEntity[E Entity](e E) bool {
	v := reflect.ValueOf(e)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// entityPayload returns body[key] after key normalization, if it is an object.
func entityPayload(body any, key string) (map[string]any, bool) {
	obj, ok := NormalizeKeys(body).(map[string]any)
	if !ok {
		return nil, false
	}
	data, ok := obj[key].(map[string]any)
	return data, ok
}
