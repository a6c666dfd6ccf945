package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"contentplanner/entities"
	"contentplanner/pkg/download"
	"contentplanner/pkg/plan/controller"
	"contentplanner/pkg/plan/service"
	"contentplanner/pkg/plan/types"
	"contentplanner/pkg/render"
	"contentplanner/pkg/session"
	"contentplanner/web"
)

type PlanCtrl struct {
	svc    service.PlanService
	store  *session.Store
	md     *render.Markdown
	logger *logrus.Logger
}

func NewPlanCtrl(svc service.PlanService, store *session.Store, md *render.Markdown, logger *logrus.Logger) controller.PlanController {
	return &PlanCtrl{svc: svc, store: store, md: md, logger: logger}
}

func (h *PlanCtrl) Index(c echo.Context) error {
	page, err := web.NewPage(h.store.Load(), h.md)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index.html", page)
}

func (h *PlanCtrl) submit(c echo.Context, in entities.Submission) (entities.Session, service.Report) {
	var rep service.Report
	sess := h.store.Update(func(cur entities.Session) entities.Session {
		next, r := h.svc.Submit(c.Request().Context(), cur, in)
		rep = r
		return next
	})
	return sess, rep
}

func (h *PlanCtrl) Submit(c echo.Context) error {
	in := entities.Submission{
		Credential: c.FormValue("api_key"),
		Summary:    c.FormValue("summary"),
	}
	sess, rep := h.submit(c, in)

	page, err := web.NewPage(sess, h.md)
	if err != nil {
		h.logger.WithError(err).Error("[plan] render page")
		return err
	}
	page.APIKey = in.Credential
	page.Summary = in.Summary
	page.Notices = rep.Notices
	return c.Render(http.StatusOK, "index.html", page)
}

func (h *PlanCtrl) Download(c echo.Context) error {
	sess := h.store.Load()
	if !sess.HasPlan() {
		return c.String(http.StatusNotFound, "no content plan generated yet")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+download.Filename+`"`)
	return c.Blob(http.StatusOK, download.ContentType, []byte(sess.Last.Text))
}

type planResponse struct {
	Ran      service.Path       `json:"ran,omitempty"`
	Outcome  string             `json:"outcome,omitempty"`
	Model    string             `json:"model,omitempty"`
	Plan     *string            `json:"plan"`
	Download *download.Artifact `json:"download,omitempty"`
	Notices  []entities.Notice  `json:"notices"`
}

func (h *PlanCtrl) SubmitJSON(c echo.Context) error {
	var in entities.Submission
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	sess, rep := h.submit(c, in)

	resp := planResponse{Ran: rep.Path, Notices: rep.Notices}
	if resp.Notices == nil {
		resp.Notices = []entities.Notice{}
	}
	status := http.StatusOK
	switch rep.Path {
	case service.PathRejected:
		status = http.StatusBadRequest
	case service.PathGenerate:
		resp.Outcome = rep.Generation.Outcome.String()
		resp.Model = rep.Generation.Model
		switch rep.Generation.Outcome {
		case types.OutcomeFailedBusy:
			status = http.StatusTooManyRequests
		case types.OutcomeFailedOther:
			status = http.StatusBadGateway
		}
	}
	if status == http.StatusOK && sess.HasPlan() {
		text := sess.Last.Text
		art := download.New(text)
		resp.Plan = &text
		resp.Download = &art
	}
	return c.JSON(status, resp)
}
