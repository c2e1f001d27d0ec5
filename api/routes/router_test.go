package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	"github.com/stockpulse-app/stockpulse-backend/pkg/config"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080", LogLevel: "error"},
		Session: config.SessionConfig{
			DefaultRole:  "ADMIN",
			LogoutRole:   "STORE_MANAGER",
			SeedFixtures: true,
		},
		Search: config.SearchConfig{MinQueryLength: 3},
	}
}

func newTestRouter(t *testing.T, role enums.Role) (http.Handler, *session.Session) {
	t.Helper()
	sess := session.New(session.Options{
		DefaultRole: role,
		Clock:       func() time.Time { return time.Date(2023, 10, 27, 12, 0, 0, 0, time.UTC) },
	})
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("error")})
	return NewRouter(testConfig(), logg, sess, prometheus.NewRegistry()), sess
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return envelope.Data
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	for _, path := range []string{"/health/live", "/health/ready"} {
		resp := doJSON(t, router, http.MethodGet, path, "")
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
		if got := resp.Header().Get("X-StockPulse-Env"); got != "test" {
			t.Fatalf("expected env header got %q", got)
		}
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodGet, "/metrics", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for /metrics got %d", resp.Code)
	}
}

func TestUsersRouteRequiresEditUsersCapability(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleWarehouseStaff)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/users", "")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for warehouse staff got %d", resp.Code)
	}

	adminRouter, _ := newTestRouter(t, enums.RoleAdmin)
	resp = doJSON(t, adminRouter, http.MethodGet, "/api/v1/users", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestStockItemWriteRequiresManageStock(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleProcurementTeam)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/stock-items", `{"name":"Packing Tape"}`)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for procurement got %d", resp.Code)
	}

	// Reads stay open for roles that can see the list screen.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/stock-items", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 reading stock items got %d", resp.Code)
	}
}

func TestSwitchRoleRejectsUnknownRole(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/session/role", `{"role":"SUPERVISOR"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role got %d", resp.Code)
	}
}

func TestSwitchRoleChangesCapabilityGates(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/session/role", `{"role":"WAREHOUSE_STAFF"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 switching role got %d", resp.Code)
	}
	data := decodeData(t, resp)
	if data["role"] != "WAREHOUSE_STAFF" {
		t.Fatalf("expected WAREHOUSE_STAFF got %v", data["role"])
	}
	if data["actorName"] != "David Warehouse" {
		t.Fatalf("expected resolved actor name got %v", data["actorName"])
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/users", "")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 after downgrade got %d", resp.Code)
	}
}

func TestLogoutFallsBackToConfiguredRole(t *testing.T) {
	router, sess := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/session/logout", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for logout got %d", resp.Code)
	}
	if sess.Role() != enums.RoleStoreManager {
		t.Fatalf("expected STORE_MANAGER after logout got %s", sess.Role())
	}
}

func TestNavigationRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/view/navigate",
		`{"screen":"STOCK_ITEM_DETAIL","params":{"itemId":"stk-1"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 navigating got %d", resp.Code)
	}
	data := decodeData(t, resp)
	if data["screen"] != "STOCK_ITEM_DETAIL" {
		t.Fatalf("expected detail screen got %v", data["screen"])
	}
	if data["notFound"] == true {
		t.Fatal("expected stk-1 to resolve")
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/view/back", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 going back got %d", resp.Code)
	}
	data = decodeData(t, resp)
	if data["screen"] != "DASHBOARD" {
		t.Fatalf("expected dashboard after back got %v", data["screen"])
	}
}

func TestNavigateRejectsUnknownScreen(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/view/navigate", `{"screen":"SETTINGS"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown screen got %d", resp.Code)
	}
}

func TestBreadcrumbOutOfRange(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/view/breadcrumb", `{"index":7}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range index got %d", resp.Code)
	}
}

func TestDetailViewMarksMissingRecord(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/view/navigate",
		`{"screen":"ORDER_DETAIL","params":{"orderId":"ord-999"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 navigating to missing record got %d", resp.Code)
	}
	data := decodeData(t, resp)
	if data["notFound"] != true {
		t.Fatal("expected notFound for missing order")
	}
}

func TestSearchEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/search?q=milk", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for search got %d", resp.Code)
	}
	data := decodeData(t, resp)
	results, ok := data["results"].([]any)
	if !ok {
		t.Fatalf("expected results array got %T", data["results"])
	}
	// stk-3 plus the rejected milk order ord-4.
	if len(results) != 2 {
		t.Fatalf("expected 2 milk hits got %d", len(results))
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/search?q=mi", "")
	data = decodeData(t, resp)
	if results, _ := data["results"].([]any); len(results) != 0 {
		t.Fatalf("expected no hits below query threshold got %d", len(results))
	}
}

func TestSearchRejectsBadLimit(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/search?q=milk&limit=abc", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit got %d", resp.Code)
	}
}

func TestOrderWorkflowOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	// ord-1 starts in PENDING_REVIEW.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/approve", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 approving got %d", resp.Code)
	}
	data := decodeData(t, resp)
	if data["status"] != "APPROVED" {
		t.Fatalf("expected APPROVED got %v", data["status"])
	}
	if data["approvedBy"] != "Alice Admin" {
		t.Fatalf("expected approver attribution got %v", data["approvedBy"])
	}

	// Approving twice is an invalid transition, not a forbidden one.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/approve", "")
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 re-approving got %d", resp.Code)
	}

	// Only procurement places approved orders.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/mark-ordered", "")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin mark-ordered got %d", resp.Code)
	}

	doJSON(t, router, http.MethodPost, "/api/v1/session/role", `{"role":"PROCUREMENT_TEAM"}`)
	resp = doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/mark-ordered", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for procurement mark-ordered got %d", resp.Code)
	}

	doJSON(t, router, http.MethodPost, "/api/v1/session/role", `{"role":"WAREHOUSE_STAFF"}`)
	resp = doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/mark-received", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for warehouse receive got %d", resp.Code)
	}
	data = decodeData(t, resp)
	if data["status"] != "RECEIVED" {
		t.Fatalf("expected RECEIVED got %v", data["status"])
	}

	// The received quantity lands on the linked item: 15 + 50.
	resp = doJSON(t, router, http.MethodGet, "/api/v1/stock-items/stk-2", "")
	item := decodeData(t, resp)
	if item["quantity"] != float64(65) {
		t.Fatalf("expected quantity 65 after receipt got %v", item["quantity"])
	}
}

func TestRejectOrderReasonIsOptional(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	// No body at all still rejects; the history entry carries no reason.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/reject", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 rejecting without body got %d", resp.Code)
	}
	data := decodeData(t, resp)
	if data["status"] != "REJECTED" {
		t.Fatalf("expected REJECTED got %v", data["status"])
	}
	history := data["workflowHistory"].([]any)
	last := history[len(history)-1].(map[string]any)
	if _, ok := last["reason"]; ok {
		t.Fatalf("expected no reason on history entry got %v", last["reason"])
	}
}

func TestRejectOrderWithEmptyBodyObject(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/reject", `{}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 rejecting with empty object got %d", resp.Code)
	}
}

func TestRejectOrderRecordsGivenReason(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-1/reject", `{"reason":"budget freeze"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 rejecting got %d", resp.Code)
	}
	data := decodeData(t, resp)
	if data["approvedBy"] != "Alice Admin" {
		t.Fatalf("expected rejecting user on approvedBy got %v", data["approvedBy"])
	}
	history := data["workflowHistory"].([]any)
	last := history[len(history)-1].(map[string]any)
	if last["reason"] != "budget freeze" {
		t.Fatalf("expected reason on history entry got %v", last["reason"])
	}
}

func TestCreateStockItemRejectsUnknownFields(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/stock-items", `{"name":"Tape","warehouse":"loc-1"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field got %d", resp.Code)
	}
}

func TestUpdateMissingOrderReturns404(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/orders/ord-999", `{"quantity":5}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing order got %d", resp.Code)
	}
}

func TestCreateStockItemAssignsFreshID(t *testing.T) {
	router, _ := newTestRouter(t, enums.RoleAdmin)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/stock-items", `{"name":"Packing Tape","quantity":40}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating item got %d", resp.Code)
	}
	data := decodeData(t, resp)
	id, _ := data["id"].(string)
	if !strings.HasPrefix(id, "stk-") {
		t.Fatalf("expected stk- prefixed id got %q", id)
	}
	if data["status"] != "IN_STOCK" {
		t.Fatalf("expected IN_STOCK default got %v", data["status"])
	}
}
