package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goeda/app"
	"goeda/domain/report"
	"goeda/domain/table"
	"goeda/internal/audit"
	"goeda/internal/config"
)

func testApp(t *testing.T) *App {
	t.Helper()
	tbl := table.New("orders")
	cols := []*table.Column{
		table.NewNumericColumn("order_value", []float64{1, 2, 2, 3, 100}),
		table.NewNumericColumn("delivery_days", []float64{3, math.NaN(), 4, 5, 6}),
		table.NewCategoricalColumn("city", []string{"sp", "rj", "sp", "sp", "bh"}),
	}
	for _, c := range cols {
		require.NoError(t, tbl.AddColumn(c))
	}

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Audit.Factor = 1.5
	cfg.Audit.FloorAtZero = true
	cfg.Audit.HistogramBins = 5

	auditor := app.NewAuditor(tbl, audit.BoundsOptions{Factor: cfg.Audit.Factor, FloorAtZero: cfg.Audit.FloorAtZero})
	return NewApp(auditor, cfg)
}

func doRequest(t *testing.T, a *App, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleColumns(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/api/columns")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Dataset string `json:"dataset"`
		Rows    int    `json:"rows"`
		Columns []struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "orders", body.Dataset)
	assert.Equal(t, 5, body.Rows)
	assert.Len(t, body.Columns, 3)
	assert.Equal(t, "numeric", body.Columns[0].Kind)
}

func TestHandleMissing(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/api/missing")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary report.MissingSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Len(t, summary.Columns, 1)
	assert.Equal(t, "delivery_days", summary.Columns[0].Column)
	assert.Equal(t, 20.0, summary.Columns[0].Percentage)

	// computed_at must encode as an RFC 3339 string, not an empty object
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	var computedAt string
	require.NoError(t, json.Unmarshal(raw["computed_at"], &computedAt))
	parsed, err := time.Parse(time.RFC3339Nano, computedAt)
	require.NoError(t, err)
	assert.False(t, parsed.IsZero())
	assert.False(t, summary.ComputedAt.IsZero())
}

func TestHandleOutliers(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/api/outliers/order_value")
	require.Equal(t, http.StatusOK, rec.Code)

	var rep report.OutlierReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 1, rep.OutlierCount)
	assert.Equal(t, 0.5, rep.Bounds.Lower)
	assert.Equal(t, 4.5, rep.Bounds.Upper)
}

func TestHandleOutliers_ErrorMapping(t *testing.T) {
	a := testApp(t)

	rec := doRequest(t, a, http.MethodGet, "/api/outliers/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, a, http.MethodGet, "/api/outliers/city")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NON_NUMERIC_COLUMN", body["code"])
}

func TestHandleFrequency(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/api/frequency/city")
	require.Equal(t, http.StatusOK, rec.Code)

	var freq report.FrequencyTable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &freq))
	require.NotEmpty(t, freq.Entries)
	assert.Equal(t, "sp", freq.Entries[0].Value)
	assert.Equal(t, 3, freq.Entries[0].Count)
	assert.Equal(t, "60.0%", freq.Entries[0].PercentLabel)
}

func TestHandleHistogram_BadBins(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/api/histogram/order_value?bins=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCleanOutliers(t *testing.T) {
	a := testApp(t)

	rec := doRequest(t, a, http.MethodPost, "/api/clean/outliers/order_value")
	require.Equal(t, http.StatusOK, rec.Code)

	var result cleanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2.0, result.Median)

	// The mutation is visible on the next audit
	rec = doRequest(t, a, http.MethodGet, "/api/outliers/order_value")
	require.Equal(t, http.StatusOK, rec.Code)
	var rep report.OutlierReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.False(t, rep.HasOutliers())
}

func TestRespondError_Unclassified(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, fmt.Errorf("backing store went away"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
}

func TestHandleReport_HTML(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/report")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.Contains(rec.Body.String(), "Dataset Report"), "report HTML should contain the title")
}
