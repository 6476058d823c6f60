package portal

import "context"

// View is the portal screen the gate routes to.
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
)

// Gate decides which view to render on load. It depends only on the
// SessionProvider capability, never on the concrete variant; a provider
// error routes to the login view rather than failing the page.
func Gate(ctx context.Context, provider SessionProvider) View {
	authenticated, err := provider.CheckAuthenticated(ctx)
	if err != nil || !authenticated {
		return ViewLogin
	}
	return ViewDashboard
}
