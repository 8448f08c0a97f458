package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

func TestWriteReservations(t *testing.T) {
	now := time.Date(2030, 6, 15, 10, 0, 0, 0, time.UTC)
	items := []domain.Reservation{
		{ID: 1700000012345, Owner: "joao", Name: "Ana", Phone: "11999990000", GuestCount: 12,
			Date: "2030-07-01", Time: "20:00", Occasion: "casamento", EventType: domain.EventTypePackage},
		{ID: 1700000099999, Owner: "maria", Name: "Bia", Phone: "1133334444", GuestCount: 4,
			Date: "2030-01-01", Time: "12:00", Occasion: "reunião", EventType: domain.EventTypeCommon},
	}

	var buf bytes.Buffer
	if err := WriteReservations(&buf, items, now); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Número" || rows[0][6] != "Ocasião" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "12345" || rows[1][1] != "Ana" || rows[1][7] != "Pacote" || rows[1][9] != "Sim" {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if rows[2][8] != "maria" || rows[2][9] != "Não" {
		t.Errorf("unexpected second row %v", rows[2])
	}
}

func TestWriteReservations_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReservations(&buf, nil, time.Now()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a workbook even without reservations")
	}
}
