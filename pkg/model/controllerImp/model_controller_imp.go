package controllerImp

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"contentplanner/entities"
	"contentplanner/pkg/model/controller"
	"contentplanner/pkg/model/service"
	"contentplanner/pkg/render"
	"contentplanner/pkg/session"
	"contentplanner/web"
)

var errNoKey = errors.New("no API key entered")

type ModelCtrl struct {
	svc    service.ModelService
	store  *session.Store
	md     *render.Markdown
	logger *logrus.Logger
}

func NewModelCtrl(svc service.ModelService, store *session.Store, md *render.Markdown, logger *logrus.Logger) controller.ModelController {
	return &ModelCtrl{svc: svc, store: store, md: md, logger: logger}
}

func (h *ModelCtrl) list(ctx context.Context, raw string) ([]string, error) {
	cred, ok := entities.ParseCredential(raw).(entities.RealCredential)
	if !ok {
		return nil, errNoKey
	}
	models, err := h.svc.ListAvailable(ctx, cred)
	if err != nil {
		h.logger.WithError(err).WithField("key", cred.String()).Warn("[model] access check failed")
		return nil, err
	}
	return models, nil
}

// Check is independent of plan generation; it re-renders the page with the
// diagnostics next to whatever plan is already shown.
func (h *ModelCtrl) Check(c echo.Context) error {
	key := c.FormValue("api_key")
	models, err := h.list(c.Request().Context(), key)

	page, perr := web.NewPage(h.store.Load(), h.md)
	if perr != nil {
		return perr
	}
	page.APIKey = key
	if s := c.FormValue("summary"); s != "" {
		page.Summary = s
	}
	page.Diagnostics = &web.Diagnostics{Models: models}
	if err != nil {
		page.Diagnostics.Error = err.Error()
	}
	return c.Render(http.StatusOK, "index.html", page)
}

func (h *ModelCtrl) CheckJSON(c echo.Context) error {
	var body struct {
		APIKey string `json:"api_key"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	models, err := h.list(c.Request().Context(), body.APIKey)
	if errors.Is(err, errNoKey) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	if models == nil {
		models = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(models), "models": models})
}
