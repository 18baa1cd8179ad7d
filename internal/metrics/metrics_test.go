package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("hospital")
	b := NewCollector("hospital")

	a.BookingsTotal.WithLabelValues("book", "ok").Inc()

	want := `hospital_scheduling_bookings_total{operation="book",outcome="ok"} 1`
	if !strings.Contains(scrape(t, a), want) {
		t.Errorf("collector a missing %s", want)
	}
	if strings.Contains(scrape(t, b), "hospital_scheduling_bookings_total{") {
		t.Error("collector b saw a's booking")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector("hospital")
	c.RequestsTotal.WithLabelValues("/hospital.v1.HospitalService/BookAppointment", "OK").Inc()

	body := scrape(t, c)
	if !strings.Contains(body, "hospital_grpc_requests_total") {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("runtime collector not registered")
	}
}
