package profile

import (
	"context"
	"log"

	"radsafe/internal/nav"
	"radsafe/internal/session"
)

// Reconciler refreshes the session's profile from the remote service when
// the settings screen becomes active. It is an enrichment layer: every
// failure leaves the session untouched and is never surfaced.
type Reconciler struct {
	client   *Client
	sessions *session.Manager
	router   *nav.Router
}

func NewReconciler(client *Client, sessions *session.Manager, router *nav.Router) *Reconciler {
	return &Reconciler{client: client, sessions: sessions, router: router}
}

// RemoteEnabled reports whether a profile service is configured at all.
func (reconciler *Reconciler) RemoteEnabled() bool {
	return reconciler.client.Enabled()
}

// Reconcile fetches the remote profile for the current user and lets the
// remote copy win for name and photo when they differ. Email is never
// taken from the remote. A response that arrives after the user navigated
// away from the screen it was fetched for is discarded.
func (reconciler *Reconciler) Reconcile(ctx context.Context) {
	state := reconciler.sessions.Current()
	if !state.Authenticated || state.CurrentUser == nil || state.CurrentUser.ID == "" {
		return
	}

	before := reconciler.router.State()
	remote, err := reconciler.client.FetchProfile(ctx, state.CurrentUser.ID)
	if err != nil {
		return
	}
	if remote.Name == "" && remote.ProfilePhoto == "" {
		return
	}

	if reconciler.router.State() != before {
		return
	}

	if reconciler.sessions.ApplyRemoteProfile(remote.Name, remote.ProfilePhoto) {
		log.Printf("profile reconciled from remote for user %s", state.CurrentUser.ID)
	}
}
