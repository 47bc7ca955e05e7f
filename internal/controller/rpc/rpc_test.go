package rpc_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"udm/internal/catalog"
	"udm/internal/catalog/catalogclient"
	catalogrpc "udm/internal/catalog/rpc"
	"udm/internal/controller"
	"udm/internal/controller/gpio"
	"udm/internal/controller/rpc"
	"udm/internal/model"
	"udm/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) (http.Handler, *catalogclient.Client) {
	t.Helper()
	ctx := context.Background()

	catalogPath := filepath.Join(t.TempDir(), "catalog.db")
	catalogBackend, err := sqlite.Open(ctx, catalogPath)
	if err != nil {
		t.Fatalf("open catalog backend: %v", err)
	}
	t.Cleanup(func() { catalogBackend.Close() })
	if err := catalogBackend.GenSchemaCatalog(ctx); err != nil {
		t.Fatalf("gen catalog schema: %v", err)
	}
	catalogHandler := catalogrpc.NewHandler(catalog.New(catalogBackend), nil)
	catalogSrv := httptest.NewServer(catalogrpc.NewRouter(catalogHandler, nil))
	t.Cleanup(catalogSrv.Close)

	client, err := catalogclient.New(catalogclient.Config{BaseURL: catalogSrv.URL})
	if err != nil {
		t.Fatalf("new catalogclient: %v", err)
	}

	controllerPath := filepath.Join(t.TempDir(), "controller.db")
	controllerBackend, err := sqlite.Open(ctx, controllerPath)
	if err != nil {
		t.Fatalf("open controller backend: %v", err)
	}
	t.Cleanup(func() { controllerBackend.Close() })
	if err := controllerBackend.GenSchemaController(ctx); err != nil {
		t.Fatalf("gen controller schema: %v", err)
	}

	svc := controller.New(controllerBackend, client, gpio.NewSimulator())
	h := rpc.NewHandler(svc, nil)
	return rpc.NewRouter(h, nil), client
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDispenseAndCleanReturnRequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/dispense/", controller.DispenseRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("dispense: status %d body %s", rec.Code, rec.Body.String())
	}
	var dispenseResp controller.DispenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &dispenseResp); err != nil {
		t.Fatalf("decode dispense response: %v", err)
	}
	if dispenseResp.RequestID.String() == "" {
		t.Fatalf("expected nonempty request id")
	}

	rec = doJSON(t, router, http.MethodPost, "/clean/", controller.CleanRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("clean: status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestStopEmergencyReturnsOK(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/stop/", controller.StopEmergencyRequest{GPIOPin: 7})
	if rec.Code != http.StatusOK {
		t.Fatalf("stop: status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestPollReturnsUnimplemented(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/poll/", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("poll: expected 409, got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Kind != "api_failure" {
		t.Fatalf("expected kind api_failure, got %q", body.Kind)
	}
}

func TestPumpInfoRequiresLookupField(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/pumps/info/", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestPumpInfoByPumpNumber(t *testing.T) {
	router, client := newTestRouter(t)

	pumpNumber := 3
	gpioPin := 17
	ctx := context.Background()
	if _, err := client.AddFluidRegulator(ctx, model.FluidRegulator{
		Kind:       model.RegulatorPump,
		PumpNumber: &pumpNumber,
		GPIOPin:    &gpioPin,
	}); err != nil {
		t.Fatalf("seed fluid regulator: %v", err)
	}

	rec := doJSON(t, router, http.MethodGet, "/pumps/info/?pump_number=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("pumps/info: status %d body %s", rec.Code, rec.Body.String())
	}
	var resp controller.GetPumpGPIOInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode pumps/info response: %v", err)
	}
	if resp.RequestID.String() == "" {
		t.Fatalf("expected nonempty request id")
	}
}

func TestPumpInfoFailsClosedOnNoMatch(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/pumps/info/?pump_number=99", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for no match, got %d body %s", rec.Code, rec.Body.String())
	}
}
