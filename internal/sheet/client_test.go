package sheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleCSV = `Empleado,Tipo,Dirección de envío,Fecha de llenar,Nombre del cliente (usuario/codigo),Nombre de quien recibe (maria/secretaria),Pago,Latitud,Longitud,Notas internas
Ana,Regular,Calle 5 #12,2024-01-01 10:00,farmacia01,maria/secretaria,25,18.47,-69.88,ignorar
Luis,Urgente,Av. Independencia,2024-01-02 09:00,clinica02,,75,,-69.90,
,,,,,,,,,
`

func TestClientFetch_MapsHeadersToCanonicalColumns(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	rows, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 data rows, got %d", len(rows))
	}

	first := rows[0]
	if first[ColEmployee] != "Ana" {
		t.Errorf("expected employee Ana, got %q", first[ColEmployee])
	}
	if first[ColAddress] != "Calle 5 #12" {
		t.Errorf("expected address to map from Spanish header, got %q", first[ColAddress])
	}
	if first[ColClientName] != "farmacia01" {
		t.Errorf("expected client name to map by prefix, got %q", first[ColClientName])
	}
	if first[ColPayment] != "25" {
		t.Errorf("expected payment 25, got %q", first[ColPayment])
	}
	if _, ok := first["notas internas"]; ok {
		t.Error("unrecognized columns must be dropped")
	}

	// Blank cells are absent, not empty strings.
	second := rows[1]
	if _, ok := second[ColRecipientName]; ok {
		t.Error("expected blank recipient cell to be absent")
	}
	if _, ok := second[ColLatitude]; ok {
		t.Error("expected blank latitude cell to be absent")
	}

	// Fully blank rows still come through; normalization drops them.
	if len(rows[2]) != 0 {
		t.Errorf("expected the blank row to carry no values, got %v", rows[2])
	}
}

func TestClientFetch_NonOKStatusIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet not published", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestClientFetch_EmptySheetIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Empleado,Pago\n"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable for header-only sheet, got %v", err)
	}
}

func TestClientFetch_NetworkErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on.

	client := NewClient(srv.URL, nil)
	_, err := client.Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestCanonicalColumn(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		header string
		want   string
	}{
		{header: "Empleado", want: ColEmployee},
		{header: "  empleado  ", want: ColEmployee},
		{header: "Fecha de llenar", want: ColTimestamp},
		{header: "Nombre del cliente (usuario/codigo)", want: ColClientName},
		{header: "Nombre de quien recibe (maria/secretaria, juan/asistente)", want: ColRecipientName},
		{header: "Columna misteriosa", want: ""},
	}

	for _, tc := range testCases {
		if got := canonicalColumn(tc.header); got != tc.want {
			t.Errorf("canonicalColumn(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
