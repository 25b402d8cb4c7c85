package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"goeda/domain/table"
	"goeda/internal/errors"
)

// columnInfo is the JSON shape of one column in the listing endpoint
type columnInfo struct {
	Name      string     `json:"name"`
	Kind      table.Kind `json:"kind"`
	NullCount int        `json:"null_count"`
}

func (a *App) handleColumns(w http.ResponseWriter, r *http.Request) {
	tbl := a.auditor.Table()
	out := struct {
		Dataset string       `json:"dataset"`
		Rows    int          `json:"rows"`
		Columns []columnInfo `json:"columns"`
	}{
		Dataset: tbl.Name(),
		Rows:    tbl.NumRows(),
	}
	for _, col := range tbl.Columns() {
		out.Columns = append(out.Columns, columnInfo{
			Name:      col.Name(),
			Kind:      col.Kind(),
			NullCount: col.NullCount(),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (a *App) handleMissing(w http.ResponseWriter, r *http.Request) {
	summary, err := a.auditor.Missing()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (a *App) handleOutlierScan(w http.ResponseWriter, r *http.Request) {
	reports, err := a.auditor.ScanOutliers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func (a *App) handleOutliers(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	rep, err := a.auditor.Outliers(column)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rep)
}

func (a *App) handleFrequency(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	freq, err := a.auditor.Frequency(column)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, freq)
}

func (a *App) handleHistogram(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")

	bins := a.cfg.Audit.HistogramBins
	if raw := r.URL.Query().Get("bins"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, errors.InvalidInput("bins must be an integer"))
			return
		}
		bins = parsed
	}

	hist, err := a.auditor.Histogram(column, bins)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, hist)
}

func (a *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.auditor.Profile()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// cleanResult reports the median a remediation used
type cleanResult struct {
	Column string  `json:"column"`
	Median float64 `json:"median"`
}

func (a *App) handleImputeMissing(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	median, err := a.auditor.ImputeMissing(column)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cleanResult{Column: column, Median: median})
}

func (a *App) handleReplaceOutliers(w http.ResponseWriter, r *http.Request) {
	column := chi.URLParam(r, "column")
	median, err := a.auditor.ReplaceOutliers(column)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cleanResult{Column: column, Median: median})
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	md, err := a.auditor.MarkdownReport(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	page := markdown.ToHTML([]byte(md), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps domain errors to HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.CodeColumnNotFound:
		status = http.StatusNotFound
	case errors.CodeNonNumericColumn, errors.CodeInvalidInput, errors.CodeInsufficientData:
		status = http.StatusBadRequest
	}

	// Errors neither structured nor mapped to a domain sentinel are unexpected
	if status == http.StatusInternalServerError && !errors.IsAppError(err) {
		log.Printf("[API] unclassified error: %v", err)
	}

	respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  code,
	})
}
