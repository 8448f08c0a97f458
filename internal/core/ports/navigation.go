package ports

import (
	"context"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// Screen is a top-level view of the application.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenApp      Screen = "app"
)

// Tab is an in-app view available after login.
type Tab string

const (
	TabNewReservation Tab = "nova_reserva"
	TabReservations   Tab = "minhas_reservas"
	TabContracts      Tab = "contratos"
)

// Panel is what the new-reservation tab renders.
type Panel string

const (
	PanelForm         Panel = "form"
	PanelConfirmation Panel = "confirmation"
)

// NavigationRequest is the screen/tab the client asks to show.
type NavigationRequest struct {
	Screen Screen
	Tab    Tab
	// Select is true when the user clicked the tab rather than re-rendering it.
	Select bool
}

// NavigationTab describes one entry of the tab bar.
type NavigationTab struct {
	Tab    Tab    `json:"tab"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// NavigationState is the resolved view for a session.
type NavigationState struct {
	Screen  Screen                     `json:"screen"`
	Tab     Tab                        `json:"tab,omitempty"`
	Panel   Panel                      `json:"panel,omitempty"`
	Title   string                     `json:"title,omitempty"`
	Role    domain.Role                `json:"role"`
	User    *domain.User               `json:"user,omitempty"`
	Tabs    []NavigationTab            `json:"tabs,omitempty"`
	Pending *domain.PendingReservation `json:"pending,omitempty"`
}

type NavigationService interface {
	Resolve(ctx context.Context, session *domain.Session, req NavigationRequest) (*NavigationState, error)
}
