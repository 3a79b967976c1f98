package http

import (
	"net/http"
	"strconv"
	"time"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.reports.OverdueRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *ReportHandler) PopularItems(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 5)
	items, err := h.reports.PopularItems(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []service.PopularItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ReportHandler) TopSpenders(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", time.Now().Year())
	limit := queryInt(r, "limit", 5)
	spenders, err := h.reports.TopSpenders(r.Context(), year, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if spenders == nil {
		spenders = []service.TopSpender{}
	}
	writeJSON(w, http.StatusOK, spenders)
}

func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	granularity := service.Granularity(r.URL.Query().Get("granularity"))
	if granularity == "" {
		granularity = service.GranularityMonth
	}
	buckets, err := h.reports.RevenueBuckets(r.Context(), granularity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
