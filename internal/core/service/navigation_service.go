package service

import (
	"context"
	"errors"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

var tabOrder = []ports.Tab{ports.TabNewReservation, ports.TabReservations, ports.TabContracts}

// NavigationService gates screens and tabs by session and role.
type NavigationService struct {
	pending ports.PendingService
}

func NewNavigationService(pending ports.PendingService) *NavigationService {
	return &NavigationService{pending: pending}
}

// Resolve picks the screen to render. Anonymous callers only reach login and
// register; authenticated callers always land in the app. Selecting the
// new-reservation tab while a reservation is confirmed starts a fresh one.
func (n *NavigationService) Resolve(ctx context.Context, session *domain.Session, req ports.NavigationRequest) (*ports.NavigationState, error) {
	role := domain.RoleOfSession(session)
	if session == nil {
		screen := ports.ScreenLogin
		if req.Screen == ports.ScreenRegister {
			screen = ports.ScreenRegister
		}
		return &ports.NavigationState{Screen: screen, Role: role}, nil
	}

	tab := req.Tab
	if !knownTab(tab) {
		tab = ports.TabNewReservation
	}

	user := session.User
	state := &ports.NavigationState{
		Screen: ports.ScreenApp,
		Tab:    tab,
		Title:  TabTitle(tab, role),
		Role:   role,
		User:   &user,
	}
	for _, t := range tabOrder {
		state.Tabs = append(state.Tabs, ports.NavigationTab{Tab: t, Title: TabTitle(t, role), Active: t == tab})
	}

	if tab != ports.TabNewReservation {
		return state, nil
	}

	p, err := n.pending.Current(ctx, session)
	switch {
	case errors.Is(err, domain.ErrNoPendingReservation):
		state.Panel = ports.PanelForm
		return state, nil
	case err != nil:
		return nil, err
	}

	if p.Stage == domain.StageConfirmed && req.Select {
		if err := n.pending.Reset(ctx, session); err != nil {
			return nil, err
		}
		state.Panel = ports.PanelForm
		return state, nil
	}

	state.Pending = p
	state.Panel = ports.PanelForm
	if p.Stage == domain.StageConfirmed {
		state.Panel = ports.PanelConfirmation
	}
	return state, nil
}

// TabTitle is the label of a tab as seen by role.
func TabTitle(tab ports.Tab, role domain.Role) string {
	switch tab {
	case ports.TabReservations:
		if role == domain.RoleAdmin {
			return "Todas as Reservas"
		}
		return "Minhas Reservas"
	case ports.TabContracts:
		return "Contratos de Eventos"
	default:
		return "Nova Reserva"
	}
}

func knownTab(t ports.Tab) bool {
	for _, known := range tabOrder {
		if t == known {
			return true
		}
	}
	return false
}
