package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	httpapi "tatini-menu/menu-svc/internal/api/http"
	"tatini-menu/menu-svc/internal/domain"
	"tatini-menu/menu-svc/internal/service"
	"tatini-menu/menu-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
}

func (w *capturingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, msgs...)
	return nil
}

type guestClient struct {
	t      *testing.T
	router http.Handler
	device string
	sess   string
}

func (g *guestClient) do(method, path, body string) *httptest.ResponseRecorder {
	g.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(httpapi.DeviceHeader, g.device)
	req.Header.Set(httpapi.SessionHeader, g.sess)
	rr := httptest.NewRecorder()
	g.router.ServeHTTP(rr, req)
	return rr
}

func (g *guestClient) view(method, path, body string) domain.SessionView {
	g.t.Helper()
	rr := g.do(method, path, body)
	require.Equal(g.t, http.StatusOK, rr.Code, rr.Body.String())
	var v domain.SessionView
	require.NoError(g.t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

// newStack wires menu-svc the way main does, on miniredis and an in-memory
// Kafka writer.
func newStack(t *testing.T) (*miniredis.Miniredis, http.Handler, *service.OrderingService, *capturingWriter) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	writer := &capturingWriter{}
	categories, err := service.LoadCatalog(context.Background(), nil)
	require.NoError(t, err)

	menu := service.NewMenuService(categories, domain.DefaultVenue(), 15, service.DefaultQRGenerator{BaseURL: "http://localhost:3000"}, "https://g.page/r/review")
	ordering := service.NewOrderingService(
		menu,
		storage.NewRedisTableStore(rdb, 15),
		storage.NewRedisReviewGate(rdb, 12*time.Hour),
		storage.NewKafkaPublisher(writer),
		service.OrderingConfig{TableCount: 15, WhatsAppPhone: "917420096566"},
	)
	t.Cleanup(ordering.Close)

	return mr, httpapi.NewRouter(httpapi.NewHandler(menu, ordering)), ordering, writer
}

func TestFlow_GuestOrdersOverWhatsAppAndShowsWaiter(t *testing.T) {
	mr, router, _, writer := newStack(t)
	guest := &guestClient{t: t, router: router, device: testDeviceID, sess: testSessionID}

	v := guest.view("GET", "/api/session", "")
	assert.Equal(t, "table_select", v.State)

	v = guest.view("PUT", "/api/session/table", `{"table":4}`)
	assert.Equal(t, "menu", v.State)
	got, err := mr.Get("tatini_table:" + testDeviceID)
	require.NoError(t, err)
	assert.Equal(t, "4", got)

	guest.view("POST", "/api/session/cart/items", `{"dish_id":"cc"}`)
	v = guest.view("POST", "/api/session/cart/items", `{"dish_id":"cc"}`)
	assert.Equal(t, 2, v.TotalQuantity)

	rr := guest.do("GET", "/api/session/order/whatsapp", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var link domain.OutboundLink
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &link))
	encoded := strings.TrimPrefix(link.URL, "https://wa.me/917420096566?text=")
	decoded, err := url.PathUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, "🪑 Table 4\n\n🧾 Order:\n• Crispy Corn x2 — ₹560\n\n💰 Estimated Total: ₹560", decoded)

	guest.view("POST", "/api/session/cart/open", "")
	rr = guest.do("POST", "/api/session/order/waiter", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var confirmation domain.WaiterConfirmation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &confirmation))
	assert.True(t, confirmation.ReviewPrompt)
	assert.True(t, mr.Exists("tatini_review_shown:"+testSessionID))

	v = guest.view("POST", "/api/session/review/dismiss", "")
	assert.Equal(t, "menu", v.State)

	require.Len(t, writer.messages, 2)
	var first, second domain.OrderEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &first))
	require.NoError(t, json.Unmarshal(writer.messages[1].Value, &second))
	assert.Equal(t, domain.EventOrderWhatsApp, first.Type)
	assert.Equal(t, domain.EventOrderWaiter, second.Type)
	assert.Equal(t, "4", string(writer.messages[0].Key))
}

func TestFlow_TableSurvivesRestartButCartDoesNot(t *testing.T) {
	mr, router, ordering, _ := newStack(t)
	guest := &guestClient{t: t, router: router, device: testDeviceID, sess: testSessionID}

	guest.view("PUT", "/api/session/table", `{"table":7}`)
	guest.view("POST", "/api/session/cart/items", `{"dish_id":"vm"}`)

	// Dropping every in-memory session stands in for a reload on a fresh process.
	assert.Equal(t, 1, ordering.Sweep(-time.Hour))

	v := guest.view("GET", "/api/session", "")
	require.NotNil(t, v.Table)
	assert.Equal(t, 7, *v.Table)
	assert.Empty(t, v.Lines)

	v = guest.view("DELETE", "/api/session/table", "")
	assert.Nil(t, v.Table)
	assert.False(t, mr.Exists("tatini_table:"+testDeviceID))
}

func TestFlow_ReviewPromptOncePerBrowserSession(t *testing.T) {
	_, router, _, _ := newStack(t)
	guest := &guestClient{t: t, router: router, device: testDeviceID, sess: testSessionID}

	guest.view("PUT", "/api/session/table", `{"table":2}`)
	guest.view("POST", "/api/session/cart/items", `{"dish_id":"bpm"}`)

	prompts := 0
	for i := 0; i < 2; i++ {
		guest.view("POST", "/api/session/cart/open", "")
		rr := guest.do("POST", "/api/session/order/waiter", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var c domain.WaiterConfirmation
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
		if c.ReviewPrompt {
			prompts++
			guest.view("POST", "/api/session/review/dismiss", "")
		}
	}
	assert.Equal(t, 1, prompts)

	// A new browser session on the same device is asked again.
	guest.sess = "9e2b7d4c-1f3a-4c5b-8d6e-7f8091a2b3c4"
	guest.view("POST", "/api/session/cart/items", `{"dish_id":"bpm"}`)
	guest.view("POST", "/api/session/cart/open", "")
	rr := guest.do("POST", "/api/session/order/waiter", "")
	var c domain.WaiterConfirmation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.True(t, c.ReviewPrompt)
}

func TestFlow_NewBrowserSessionKeepsTableOnly(t *testing.T) {
	_, router, _, _ := newStack(t)
	guest := &guestClient{t: t, router: router, device: testDeviceID, sess: testSessionID}

	guest.view("PUT", "/api/session/table", `{"table":3}`)
	guest.view("POST", "/api/session/cart/items", `{"dish_id":"cc"}`)
	guest.view("PUT", "/api/session/cart/note", `{"note":"no onion"}`)

	guest.sess = "3f6c2a1e-7b4d-4e8f-9a0b-1c2d3e4f5a6b"
	v := guest.view("GET", "/api/session", "")
	assert.Equal(t, "menu", v.State)
	require.NotNil(t, v.Table)
	assert.Equal(t, 3, *v.Table)
	assert.Empty(t, v.Lines)
	assert.Empty(t, v.OrderNote)

	rr := guest.do("POST", "/api/session/cart/open", "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	guest.sess = testSessionID
	v = guest.view("GET", "/api/session", "")
	assert.Len(t, v.Lines, 1)
	assert.Equal(t, "no onion", v.OrderNote)
}
