package service

import (
	"context"
	"errors"
	"testing"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

func TestNavigationService_AnonymousOnlyReachesAuthScreens(t *testing.T) {
	f := newPendingFixture(t)
	nav := NewNavigationService(f.svc)
	ctx := context.Background()

	cases := []struct {
		req  ports.NavigationRequest
		want ports.Screen
	}{
		{ports.NavigationRequest{}, ports.ScreenLogin},
		{ports.NavigationRequest{Screen: ports.ScreenRegister}, ports.ScreenRegister},
		{ports.NavigationRequest{Screen: ports.ScreenApp, Tab: ports.TabContracts}, ports.ScreenLogin},
	}
	for _, tc := range cases {
		st, err := nav.Resolve(ctx, nil, tc.req)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if st.Screen != tc.want || st.Role != domain.RoleAnonymous || st.Tab != "" {
			t.Errorf("Resolve(%+v) = %+v, want screen %s", tc.req, st, tc.want)
		}
	}
}

func TestNavigationService_AuthenticatedLandsInApp(t *testing.T) {
	f := newPendingFixture(t)
	nav := NewNavigationService(f.svc)

	st, err := nav.Resolve(context.Background(), clientSession("s1", "joao"), ports.NavigationRequest{Screen: ports.ScreenLogin})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if st.Screen != ports.ScreenApp || st.Tab != ports.TabNewReservation || st.Panel != ports.PanelForm {
		t.Errorf("unexpected state %+v", st)
	}
	if len(st.Tabs) != 3 || !st.Tabs[0].Active {
		t.Errorf("unexpected tabs %+v", st.Tabs)
	}
}

func TestNavigationService_TitlesByRole(t *testing.T) {
	if got := TabTitle(ports.TabReservations, domain.RoleAdmin); got != "Todas as Reservas" {
		t.Errorf("admin title = %q", got)
	}
	if got := TabTitle(ports.TabReservations, domain.RoleClient); got != "Minhas Reservas" {
		t.Errorf("client title = %q", got)
	}
}

func TestNavigationService_ConfirmedPanelAndSelectReset(t *testing.T) {
	f := newPendingFixture(t)
	nav := NewNavigationService(f.svc)
	ctx := context.Background()
	sess := clientSession("s1", "joao")

	_, _ = f.svc.SaveDraft(ctx, sess, validDraft())
	_, _, _ = f.svc.Confirm(ctx, sess)

	st, _ := nav.Resolve(ctx, sess, ports.NavigationRequest{Tab: ports.TabNewReservation})
	if st.Panel != ports.PanelConfirmation || st.Pending == nil {
		t.Fatalf("re-render should keep the confirmation, got %+v", st)
	}

	st, _ = nav.Resolve(ctx, sess, ports.NavigationRequest{Tab: ports.TabNewReservation, Select: true})
	if st.Panel != ports.PanelForm || st.Pending != nil {
		t.Fatalf("selecting the tab should start a fresh form, got %+v", st)
	}
	if _, err := f.svc.Current(ctx, sess); !errors.Is(err, domain.ErrNoPendingReservation) {
		t.Errorf("pending should be reset, got %v", err)
	}
}

func TestNavigationService_UnknownTabFallsBack(t *testing.T) {
	f := newPendingFixture(t)
	nav := NewNavigationService(f.svc)

	st, _ := nav.Resolve(context.Background(), adminSession("s1"), ports.NavigationRequest{Tab: "financeiro"})
	if st.Tab != ports.TabNewReservation || st.Role != domain.RoleAdmin {
		t.Errorf("unexpected state %+v", st)
	}
}
