package handler

import (
	"net/http"
	"runtime"
	"time"

	"dealerdrive-api/internal/repository"
	"dealerdrive-api/pkg/response"
)

// AdminHandler handles admin panel HTTP requests.
type AdminHandler struct {
	cars      repository.CarRepository
	enquiries repository.EnquiryRepository
	backend   string // store backend: json, memory, sqlite or mysql
	startTime time.Time
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	cars repository.CarRepository,
	enquiries repository.EnquiryRepository,
	backend string,
) *AdminHandler {
	return &AdminHandler{
		cars:      cars,
		enquiries: enquiries,
		backend:   backend,
		startTime: time.Now(),
	}
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats := make(map[string]interface{})

	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["uptime_human"] = time.Since(h.startTime).Round(time.Second).String()
	stats["server_time"] = time.Now().Format(time.RFC3339)
	stats["store_backend"] = h.backend

	if cars, err := h.cars.List(ctx); err == nil {
		featured := 0
		for _, c := range cars {
			if c.Featured {
				featured++
			}
		}
		stats["inventory"] = map[string]interface{}{
			"total_cars":    len(cars),
			"featured_cars": featured,
			"status":        "ok",
		}
	} else {
		stats["inventory"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	}

	if enquiries, err := h.enquiries.List(ctx); err == nil {
		stats["enquiries"] = map[string]interface{}{
			"total":  len(enquiries),
			"status": "ok",
		}
	} else {
		stats["enquiries"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["memory"] = map[string]interface{}{
		"alloc_mb":   float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":     float64(memStats.Sys) / 1024 / 1024,
		"num_gc":     memStats.NumGC,
		"goroutines": runtime.NumGoroutine(),
	}

	stats["runtime"] = map[string]interface{}{
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"cpus":       runtime.NumCPU(),
	}

	response.OK(w, stats)
}
