package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"contentplanner/pkg/session"
)

var appStart = time.Now()

type HealthCtrl struct {
	store *session.Store
}

func NewHealthCtrl(store *session.Store) *HealthCtrl { return &HealthCtrl{store: store} }

func (h *HealthCtrl) Health(c echo.Context) error {
	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	sessOK := h.store != nil
	sessErr := ""
	hasPlan := false
	if sessOK {
		hasPlan = h.store.Load().HasPlan()
	} else {
		sessErr = "session store is nil"
	}

	status := http.StatusOK
	if !sessOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": sessOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"session": sub{OK: sessOK, Err: sessErr},
		},
		"has_plan": hasPlan,
		"time":     time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
