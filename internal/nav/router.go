package nav

import (
	"sync"
	"time"
)

// DefaultSplashDelay is how long the welcome screen is shown before the
// automatic transition to the auth screen.
const DefaultSplashDelay = 2 * time.Second

// State is the navigation cursor. RenderToken changes on every navigation
// so a destination screen always mounts fresh.
type State struct {
	Screen      Screen `json:"screen"`
	RenderToken uint64 `json:"renderToken"`
}

// Router owns the active screen and drives all transitions. All methods
// are safe for concurrent use; transitions are serialized under one lock
// so two rapid navigations resolve to the last one applied.
type Router struct {
	mu          sync.Mutex
	screen      Screen
	renderToken uint64
	splashDelay time.Duration
	splashTimer *time.Timer
}

func NewRouter() *Router {
	return NewRouterWithSplashDelay(DefaultSplashDelay)
}

func NewRouterWithSplashDelay(delay time.Duration) *Router {
	return &Router{
		screen:      ScreenWelcome,
		renderToken: 1,
		splashDelay: delay,
	}
}

// State returns the current navigation cursor.
func (router *Router) State() State {
	router.mu.Lock()
	defer router.mu.Unlock()
	return State{Screen: router.screen, RenderToken: router.renderToken}
}

// StartSplashTimer schedules the automatic welcome-to-auth transition. Any
// navigation before the delay elapses cancels it; a timer that still fires
// after the screen changed is a no-op.
func (router *Router) StartSplashTimer() {
	router.mu.Lock()
	defer router.mu.Unlock()

	if router.screen != ScreenWelcome || router.splashTimer != nil {
		return
	}

	scheduledToken := router.renderToken
	router.splashTimer = time.AfterFunc(router.splashDelay, func() {
		router.mu.Lock()
		defer router.mu.Unlock()

		router.splashTimer = nil
		if router.screen != ScreenWelcome || router.renderToken != scheduledToken {
			return
		}
		router.transitionLocked(ScreenAuth)
	})
}

// Navigate moves to the target screen. Unknown identifiers fall back to
// the dashboard instead of erroring.
func (router *Router) Navigate(target Screen) State {
	router.mu.Lock()
	defer router.mu.Unlock()

	if !Known(target) {
		target = ScreenDashboard
	}
	router.transitionLocked(target)
	return State{Screen: router.screen, RenderToken: router.renderToken}
}

// GoBack moves to the fixed back target of the active screen.
func (router *Router) GoBack() State {
	router.mu.Lock()
	defer router.mu.Unlock()

	router.transitionLocked(BackTarget(router.screen))
	return State{Screen: router.screen, RenderToken: router.renderToken}
}

// TabBarVisible recomputes whether the persistent tab bar shows for the
// active screen.
func (router *Router) TabBarVisible(authenticated bool) bool {
	router.mu.Lock()
	defer router.mu.Unlock()
	return authenticated && !tabBarHidden[router.screen]
}

func (router *Router) transitionLocked(target Screen) {
	if router.splashTimer != nil {
		router.splashTimer.Stop()
		router.splashTimer = nil
	}
	router.screen = target
	router.renderToken++
}
