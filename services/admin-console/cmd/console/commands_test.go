package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carniceria-admin/services/admin-console/internal/client"
	"carniceria-admin/services/admin-console/internal/manager"
	"carniceria-admin/services/admin-console/internal/models"
)

// fakeAPI serves the /tipopago contract from memory and counts calls.
type fakeAPI struct {
	mu        sync.Mutex
	items     []models.PaymentType
	gets      int
	posts     []models.CreateRequest
	failPosts bool
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/tipopago/":
		f.gets++
		json.NewEncoder(w).Encode(f.items)
	case r.Method == http.MethodPost && r.URL.Path == "/tipopago/agregar":
		var req models.CreateRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.posts = append(f.posts, req)
		if f.failPosts {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.items = append(f.items, models.PaymentType{ID: len(f.items) + 1, Description: req.Description, Status: req.Status})
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true}`))
	default:
		http.NotFound(w, r)
	}
}

func newFixture(t *testing.T) (*fakeAPI, *manager.Manager, *bytes.Buffer) {
	t.Helper()
	api := &fakeAPI{items: []models.PaymentType{
		{ID: 1, Description: "Efectivo", Status: 1},
		{ID: 2, Description: "Tarjeta", Status: 1},
	}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	c := client.New(srv.URL, 2*time.Second, zap.NewNop())
	m := manager.New(c, c, manager.NewConsoleNotifier(out, zap.NewNop()), zap.NewNop())
	return api, m, out
}

func TestRunList(t *testing.T) {
	api, m, out := newFixture(t)

	require.NoError(t, runList(context.Background(), m, out))
	assert.Equal(t, 1, api.gets)
	assert.Contains(t, out.String(), "Efectivo")
	assert.Contains(t, out.String(), "Tarjeta")
}

func TestRunSearch(t *testing.T) {
	api, m, out := newFixture(t)

	require.NoError(t, runSearch(context.Background(), m, out, "Efectivo"))
	assert.Equal(t, 1, api.gets)
	assert.Contains(t, out.String(), "Efectivo")
	assert.NotContains(t, out.String(), "Tarjeta")
}

func TestRunAdd(t *testing.T) {
	api, m, out := newFixture(t)

	require.NoError(t, runAdd(context.Background(), m, out, "Transferencia"))

	require.Len(t, api.posts, 1)
	assert.Equal(t, models.CreateRequest{Description: "Transferencia", Status: 1}, api.posts[0])
	assert.Equal(t, 2, api.gets)
	assert.Contains(t, out.String(), manager.MsgCreated)
	assert.Contains(t, out.String(), "Transferencia")
}

func TestRunAddRejected(t *testing.T) {
	tests := []struct {
		name        string
		description string
		message     string
	}{
		{name: "Empty", description: "", message: manager.MsgEmptyField},
		{name: "Duplicate", description: "Efectivo", message: manager.MsgDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, m, out := newFixture(t)

			err := runAdd(context.Background(), m, out, tt.description)

			assert.ErrorIs(t, err, errReported)
			assert.Empty(t, api.posts)
			assert.Contains(t, out.String(), tt.message)
		})
	}
}

func TestRunAddServerFailure(t *testing.T) {
	api, m, out := newFixture(t)
	api.failPosts = true

	err := runAdd(context.Background(), m, out, "Nuevo Tipo")

	assert.ErrorIs(t, err, errReported)
	assert.Len(t, api.posts, 1)
	assert.Equal(t, 1, api.gets)
	assert.Contains(t, out.String(), manager.MsgCreateFailed)
	assert.NotContains(t, out.String(), manager.MsgCreated)
}

func TestRunListBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	out := &bytes.Buffer{}
	c := client.New(srv.URL, time.Second, zap.NewNop())
	m := manager.New(c, c, manager.NewConsoleNotifier(out, zap.NewNop()), zap.NewNop())

	err := runList(context.Background(), m, out)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out.String(), manager.MsgLoadFailed)
}

func TestRunShell(t *testing.T) {
	api, m, out := newFixture(t)

	script := strings.Join([]string{
		"buscar Efectivo",
		"agregar",
		"",
		"agregar",
		"Efectivo",
		"agregar",
		"Transferencia",
		"buscar",
		"listar",
		"desconocido",
		"salir",
	}, "\n")

	require.NoError(t, runShell(context.Background(), m, strings.NewReader(script), out))

	text := out.String()
	assert.Contains(t, text, `Búsqueda: "Efectivo" (1 resultados)`)
	assert.Contains(t, text, manager.MsgEmptyField)
	assert.Contains(t, text, manager.MsgDuplicate)
	assert.Contains(t, text, manager.MsgCreated)
	assert.Contains(t, text, "Comando desconocido: desconocido")
	assert.Contains(t, text, manager.LabelInputPlaceholder)

	require.Len(t, api.posts, 1)
	assert.Equal(t, "Transferencia", api.posts[0].Description)
	assert.Equal(t, 2, api.gets)
	assert.Equal(t, manager.ModalClosed, m.Modal())
}

func TestRunShellEOFInsideForm(t *testing.T) {
	api, m, out := newFixture(t)

	require.NoError(t, runShell(context.Background(), m, strings.NewReader("agregar\n"), out))
	assert.Empty(t, api.posts)
	assert.Equal(t, manager.ModalOpen, m.Modal())
}

func TestRunShellRefusesAddWithoutFreshList(t *testing.T) {
	api := &fakeAPI{items: []models.PaymentType{{ID: 1, Description: "Efectivo", Status: 1}}}
	var down atomic.Bool
	down.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() && r.Method == http.MethodGet {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		api.ServeHTTP(w, r)
	}))
	defer srv.Close()

	out := &bytes.Buffer{}
	c := client.New(srv.URL, time.Second, zap.NewNop())
	m := manager.New(c, c, manager.NewConsoleNotifier(out, zap.NewNop()), zap.NewNop())

	in, feed := io.Pipe()
	done := make(chan error, 1)
	go func() { done <- runShell(context.Background(), m, in, out) }()

	// Lines are fed one by one so the backend can recover before "recargar".
	fmt.Fprintln(feed, "agregar")
	fmt.Fprintln(feed, "Efectivo")
	fmt.Fprintln(feed, "listar")
	down.Store(false)
	fmt.Fprintln(feed, "recargar")
	fmt.Fprintln(feed, "agregar")
	fmt.Fprintln(feed, "Transferencia")
	fmt.Fprintln(feed, "salir")
	feed.Close()
	require.NoError(t, <-done)

	text := out.String()
	assert.Contains(t, text, needsFreshList)
	assert.Contains(t, text, "Comando desconocido: Efectivo")
	assert.Contains(t, text, manager.MsgCreated)
	require.Len(t, api.posts, 1)
	assert.Equal(t, "Transferencia", api.posts[0].Description)
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"list", "search", "add", "shell"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	add, _, _ := root.Find([]string{"add"})
	assert.Equal(t, manager.LabelAddTrigger, add.Short)
}
