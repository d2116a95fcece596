package nav

// Screen identifies one full-page view of the client.
type Screen string

const (
	ScreenWelcome         Screen = "welcome"
	ScreenAuth            Screen = "auth"
	ScreenDashboard       Screen = "dashboard"
	ScreenMonitor         Screen = "monitor"
	ScreenAnalytics       Screen = "analytics"
	ScreenSettings        Screen = "settings"
	ScreenEditProfile     Screen = "editprofile"
	ScreenPrivacy         Screen = "privacy"
	ScreenML              Screen = "ml"
	ScreenMapping         Screen = "mapping"
	ScreenIoT             Screen = "iot"
	ScreenAlerts          Screen = "alerts"
	ScreenChatbot         Screen = "chatbot"
	ScreenRecommendations Screen = "recommendations"
	ScreenAdmin           Screen = "admin"
)

var knownScreens = map[Screen]bool{
	ScreenWelcome:         true,
	ScreenAuth:            true,
	ScreenDashboard:       true,
	ScreenMonitor:         true,
	ScreenAnalytics:       true,
	ScreenSettings:        true,
	ScreenEditProfile:     true,
	ScreenPrivacy:         true,
	ScreenML:              true,
	ScreenMapping:         true,
	ScreenIoT:             true,
	ScreenAlerts:          true,
	ScreenChatbot:         true,
	ScreenRecommendations: true,
	ScreenAdmin:           true,
}

// TabScreens are the destinations of the persistent tab bar, in display
// order.
var TabScreens = []Screen{
	ScreenDashboard,
	ScreenMonitor,
	ScreenAnalytics,
	ScreenChatbot,
	ScreenSettings,
}

// backTargets is the declarative back map. Back is a fixed lookup, not a
// history stack: the two settings sub-screens return to settings, every
// other screen returns to the dashboard.
var backTargets = map[Screen]Screen{
	ScreenEditProfile: ScreenSettings,
	ScreenPrivacy:     ScreenSettings,
}

// tabBarHidden lists the screens that suppress the tab bar even for an
// authenticated user.
var tabBarHidden = map[Screen]bool{
	ScreenWelcome:     true,
	ScreenAuth:        true,
	ScreenEditProfile: true,
	ScreenPrivacy:     true,
}

// Known reports whether the identifier names a screen in the fixed set.
func Known(screen Screen) bool {
	return knownScreens[screen]
}

// BackTarget resolves the fixed back destination for a screen.
func BackTarget(screen Screen) Screen {
	if target, ok := backTargets[screen]; ok {
		return target
	}
	return ScreenDashboard
}
