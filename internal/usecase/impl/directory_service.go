package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"profilemap/config"
	deliverycontext "profilemap/internal/delivery/context"
	"profilemap/internal/domain/directory"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/fx"
)

// viewSession is one client's engine. The engine itself is not concurrency-safe.
// live flips to false exactly once, when the session leaves the cache.
type viewSession struct {
	mu     sync.Mutex
	engine *directory.Engine
	live   atomic.Bool
}

// DirectoryServiceParams holds dependencies for the directory usecase, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	Profiles usecase.ProfileUsecase
	Config   *config.Config
	Observer usecase.SessionObserver `optional:"true"`
	Logger   *slog.Logger
}

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	profiles usecase.ProfileUsecase
	policy   directory.ViewportPolicy
	sessions *expirable.LRU[string, *viewSession]
	open     atomic.Int64
	observer usecase.SessionObserver
	logger   *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
// Sessions idle for longer than views.idleTtl, or pushed out by views.maxSessions, are dropped.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	srv := &directoryService{
		profiles: params.Profiles,
		policy:   ViewportPolicyFromConfig(params.Config),
		observer: params.Observer,
		logger:   params.Logger,
	}
	srv.sessions = expirable.NewLRU[string, *viewSession](
		params.Config.Views.MaxSessions,
		// Runs under the cache lock, so it must not call back into the cache.
		func(_ string, session *viewSession) {
			if session.live.CompareAndSwap(true, false) {
				srv.reportSessions(srv.open.Add(-1))
			}
		},
		params.Config.Views.IdleTTL,
	)

	return srv
}

// ViewportPolicyFromConfig maps the viewport config section onto a policy, using
// the defaults for anything left unset.
func ViewportPolicyFromConfig(cfg *config.Config) directory.ViewportPolicy {
	policy := directory.DefaultViewportPolicy()
	if cfg == nil {
		return policy
	}

	vc := cfg.Viewport
	if vc.FlyToZoom > 0 {
		policy.FlyToZoom = vc.FlyToZoom
	}
	if vc.FallbackZoom > 0 {
		policy.FallbackZoom = vc.FallbackZoom
	}
	if vc.PaddingPx > 0 {
		policy.PaddingPx = vc.PaddingPx
	}
	if vc.FlyDuration > 0 {
		policy.FlyDuration = vc.FlyDuration
	}
	if vc.EaseLinearity > 0 {
		policy.EaseLinearity = vc.EaseLinearity
	}

	return policy
}

// Derive computes a view for a throwaway engine.
func (srv *directoryService) Derive(query usecase.DirectoryQuery) directory.View {
	engine := directory.NewEngine(srv.policy)
	engine.SetFilters(query.Filters)
	engine.Select(query.SelectedID)

	return engine.Derive(srv.profiles.Snapshot())
}

func (srv *directoryService) OpenView(ctx context.Context) (*usecase.ViewState, error) {
	viewID := uuid.NewString()
	session := &viewSession{engine: directory.NewEngine(srv.policy)}
	session.live.Store(true)
	srv.sessions.Add(viewID, session)
	srv.reportSessions(srv.open.Add(1))

	srv.getLogger(ctx).Debug("View session opened", slog.String("view_id", viewID))

	return srv.render(viewID, session), nil
}

func (srv *directoryService) GetView(_ context.Context, viewID string) (*usecase.ViewState, error) {
	return srv.apply(viewID, nil)
}

func (srv *directoryService) SetSearch(_ context.Context, viewID, text string) (*usecase.ViewState, error) {
	return srv.apply(viewID, func(e *directory.Engine) { e.SetSearch(text) })
}

func (srv *directoryService) SetLocationFilter(_ context.Context, viewID, text string) (*usecase.ViewState, error) {
	return srv.apply(viewID, func(e *directory.Engine) { e.SetLocationFilter(text) })
}

func (srv *directoryService) SetNameFilter(_ context.Context, viewID, text string) (*usecase.ViewState, error) {
	return srv.apply(viewID, func(e *directory.Engine) { e.SetNameFilter(text) })
}

func (srv *directoryService) Select(_ context.Context, viewID, profileID string) (*usecase.ViewState, error) {
	return srv.apply(viewID, func(e *directory.Engine) { e.Select(profileID) })
}

func (srv *directoryService) CloseView(ctx context.Context, viewID string) error {
	if srv.sessions.Remove(viewID) {
		srv.getLogger(ctx).Debug("View session closed", slog.String("view_id", viewID))
	}

	return nil
}

// apply runs change against the session and renders it.
func (srv *directoryService) apply(viewID string, change func(*directory.Engine)) (*usecase.ViewState, error) {
	session, ok := srv.sessions.Get(viewID)
	if !ok || !srv.keepAlive(viewID, session) {
		return nil, domainerrors.ErrViewNotFound
	}

	if change != nil {
		session.mu.Lock()
		change(session.engine)
		session.mu.Unlock()
	}

	return srv.render(viewID, session), nil
}

// keepAlive re-adds session so its idle timer restarts. When the session was
// closed or expired after it was looked up, the re-added entry is dropped again
// and keepAlive reports false.
func (srv *directoryService) keepAlive(viewID string, session *viewSession) bool {
	srv.sessions.Add(viewID, session)
	if session.live.Load() {
		return true
	}
	srv.sessions.Remove(viewID)

	return false
}

func (srv *directoryService) render(viewID string, session *viewSession) *usecase.ViewState {
	snap := srv.profiles.Snapshot()

	session.mu.Lock()
	defer session.mu.Unlock()

	return &usecase.ViewState{
		ViewID: viewID,
		View:   session.engine.Derive(snap),
	}
}

func (srv *directoryService) reportSessions(n int64) {
	if srv.observer != nil {
		srv.observer.SetViewSessions(int(n))
	}
}

func (srv *directoryService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
