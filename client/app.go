// Package client ties the session store to the subscription manager: the
// dashboard lifecycle of a signed-in user. On sign-in it opens the live
// queries for that identity; on sign-out or identity switch it tears them
// down, so the aggregate can never outlive the identity it was built for.
package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"taskflow/model"
	"taskflow/session"
	"taskflow/subscription"
)

type App struct {
	session *session.Store
	watcher subscription.Watcher
	log     *zap.Logger

	mu      sync.Mutex
	ctx     context.Context
	manager *subscription.Manager
	stop    func()
	out     chan subscription.Aggregate

	unsubscribe func()
}

func NewApp(sess *session.Store, watcher subscription.Watcher, log *zap.Logger) *App {
	return &App{
		session: sess,
		watcher: watcher,
		log:     log,
		out:     make(chan subscription.Aggregate, 1),
	}
}

// Run follows the session until ctx ends. The identity listener fires
// immediately, so a user already signed in gets subscriptions right away.
func (a *App) Run(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	a.unsubscribe = a.session.OnChange(func(u *model.User) {
		if u == nil {
			a.stopManager()
			return
		}
		a.startManager(*u)
	})

	<-ctx.Done()
	a.Close()
}

// Snapshots delivers the latest aggregate across sign-ins; the channel
// survives identity changes.
func (a *App) Snapshots() <-chan subscription.Aggregate {
	return a.out
}

// Manager exposes the current identity's manager, or nil when signed out.
func (a *App) Manager() *subscription.Manager {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.manager
}

func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.stopManager()
}

func (a *App) startManager(u model.User) {
	a.stopManager()

	a.mu.Lock()
	mgr := subscription.NewManager(a.watcher, a.log)
	snaps := mgr.Start(a.ctx, u.UID)
	forwardCtx, cancelForward := context.WithCancel(a.ctx)
	a.manager = mgr
	a.stop = func() {
		cancelForward()
		mgr.Stop()
	}
	a.mu.Unlock()

	go func() {
		for {
			select {
			case agg, ok := <-snaps:
				if !ok {
					return
				}
				for {
					select {
					case a.out <- agg:
					default:
						select {
						case <-a.out:
						default:
						}
						continue
					}
					break
				}
			case <-forwardCtx.Done():
				return
			}
		}
	}()
	a.log.Info("dashboard subscriptions started", zap.String("uid", u.UID))
}

func (a *App) stopManager() {
	a.mu.Lock()
	stop := a.stop
	a.stop = nil
	a.manager = nil
	a.mu.Unlock()
	if stop != nil {
		stop()
		a.log.Info("dashboard subscriptions stopped")
	}
}
