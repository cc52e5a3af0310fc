// Package item implements the item records owned by users.
package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/ejapp/backend/store"
)

type ItemSrvc struct {
	store *store.Store
}

func NewItemSrvc(s *store.Store) *ItemSrvc {
	return &ItemSrvc{store: s}
}

// Create stores a new item owned by the given user.
func (s *ItemSrvc) Create(ctx context.Context, ownerID int64, title string) (store.Item, error) {
	if strings.TrimSpace(title) == "" {
		return store.Item{}, newErrTitleEmpty()
	}
	it, err := s.store.CreateItem(ctx, ownerID, title)
	if err != nil {
		return store.Item{}, newErrInternalSE().SetDebug(fmt.Errorf("create item: %w", err))
	}
	return it, nil
}

// ListByOwner returns the owner's items in creation order.
func (s *ItemSrvc) ListByOwner(ctx context.Context, ownerID int64) ([]store.Item, error) {
	items, err := s.store.ItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(fmt.Errorf("list items: %w", err))
	}
	return items, nil
}
