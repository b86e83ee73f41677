package httpapi

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is the typed client for one REST collection: GET/POST/PUT/DELETE
// under /{name}. It satisfies crud.Service.
type Resource[T any] struct {
	client *Client
	name   string
}

func NewResource[T any](client *Client, name string) *Resource[T] {
	return &Resource[T]{client: client, name: name}
}

func (r *Resource[T]) Name() string { return r.name }

// List fetches the full collection; there is no server-side paging.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.getJSON(ctx, r.name, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts the entity and returns the persisted echo, id assigned.
func (r *Resource[T]) Create(ctx context.Context, ent T) (T, error) {
	var out T
	if err := r.client.sendJSON(ctx, http.MethodPost, r.name, ent, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update puts the entity and returns the persisted echo.
func (r *Resource[T]) Update(ctx context.Context, id int, ent T) (T, error) {
	var out T
	if err := r.client.sendJSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.name, id), ent, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.client.delete(ctx, fmt.Sprintf("%s/%d", r.name, id))
}
