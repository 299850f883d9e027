package usecase

import (
	"context"

	"profilemap/internal/domain/directory"
)

// DirectoryQuery is a one-shot derivation request.
type DirectoryQuery struct {
	Filters    directory.Filters
	SelectedID string
}

// ViewState is a view session's id together with its freshly derived view.
type ViewState struct {
	ViewID string `json:"view_id"`
	directory.View
}

// DirectoryUsecase derives what the directory and map render.
//
// Derive is stateless. View sessions hold one engine per client on the
// server; each read reconciles the session against the current store.
type DirectoryUsecase interface {
	Derive(query DirectoryQuery) directory.View

	OpenView(ctx context.Context) (*ViewState, error)
	GetView(ctx context.Context, viewID string) (*ViewState, error)
	SetSearch(ctx context.Context, viewID, text string) (*ViewState, error)
	SetLocationFilter(ctx context.Context, viewID, text string) (*ViewState, error)
	SetNameFilter(ctx context.Context, viewID, text string) (*ViewState, error)
	// Select points the session's selection at profileID; empty clears it.
	Select(ctx context.Context, viewID, profileID string) (*ViewState, error)
	// CloseView discards a session. Closing an unknown session is a no-op.
	CloseView(ctx context.Context, viewID string) error
}

// SessionObserver is told how many view sessions are open after each change.
type SessionObserver interface {
	SetViewSessions(n int)
}
