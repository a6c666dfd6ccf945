package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"contentplanner/entities"
	"contentplanner/pkg/ai"
	modelsvc "contentplanner/pkg/model/service"
	"contentplanner/pkg/plan/service"
	"contentplanner/pkg/plan/types"
)

const (
	msgEmptySummary = "Please write a summary first."
	msgSimulation   = "Running in Simulation Mode (No API Key detected)."
	msgBusy         = "Still busy! Please wait a minute before trying again."
)

type PlanSvc struct {
	models     modelsvc.ModelService
	clients    ai.Factory
	mock       *ai.MockClient
	retryDelay time.Duration
	sleep      func(context.Context, time.Duration) error
	now        func() time.Time
	logger     *logrus.Logger
}

type Option func(*PlanSvc)

// WithSleep replaces the wait before the rate-limit retry.
func WithSleep(fn func(context.Context, time.Duration) error) Option {
	return func(s *PlanSvc) { s.sleep = fn }
}

func WithClock(now func() time.Time) Option {
	return func(s *PlanSvc) { s.now = now }
}

func NewPlanService(models modelsvc.ModelService, clients ai.Factory, mock *ai.MockClient, retryDelay time.Duration, logger *logrus.Logger, opts ...Option) *PlanSvc {
	s := &PlanSvc{
		models:     models,
		clients:    clients,
		mock:       mock,
		retryDelay: retryDelay,
		sleep:      sleepCtx,
		now:        time.Now,
		logger:     logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var _ service.PlanService = (*PlanSvc)(nil)

// step is the transition function of the generation state machine: given
// whether the retry has been spent and the result of the latest attempt, it
// yields either a terminal outcome or a request to retry.
func step(retried bool, err error) (outcome types.Outcome, retry bool) {
	switch {
	case err == nil && !retried:
		return types.OutcomeSuccess, false
	case err == nil:
		return types.OutcomeSuccessAfterRetry, false
	case retried:
		return types.OutcomeFailedBusy, false
	case ai.IsRateLimited(err):
		return 0, true
	default:
		return types.OutcomeFailedOther, false
	}
}

func (s *PlanSvc) Generate(ctx context.Context, cred entities.RealCredential, summary string, notify func(entities.Notice)) types.Generation {
	if notify == nil {
		notify = func(entities.Notice) {}
	}
	model := s.models.Select(ctx, cred)
	client := s.clients(cred.Key)
	prompt := BuildPrompt(summary)
	log := s.logger.WithFields(logrus.Fields{"model": model, "key": cred.String()})

	notify(entities.Info(fmt.Sprintf("🤖 AI is brainstorming using %s...", model)))

	gen := types.Generation{Model: model}
	retried := false
	for {
		text, err := client.GenerateContent(ctx, model, prompt)
		outcome, retry := step(retried, err)
		if retry {
			log.WithError(err).Warn("[plan] rate limited, retrying once")
			notify(entities.Warning(fmt.Sprintf("🚦 High Traffic (Rate Limit Hit). Retrying automatically in %s...", humanDelay(s.retryDelay))))
			if werr := s.sleep(ctx, s.retryDelay); werr != nil {
				// The caller went away during the wait; no retry is sent.
				err = werr
				outcome = types.OutcomeFailedBusy
			} else {
				retried = true
				continue
			}
		}

		gen.Outcome = outcome
		switch outcome {
		case types.OutcomeSuccess, types.OutcomeSuccessAfterRetry:
			gen.Text = text
			log.WithField("outcome", outcome).Info("[plan] generated")
		case types.OutcomeFailedBusy:
			gen.Err = err
			log.WithError(err).Warn("[plan] still rate limited")
			notify(entities.Error(msgBusy))
		case types.OutcomeFailedOther:
			gen.Err = err
			log.WithError(err).Error("[plan] generation failed")
			notify(entities.Error("API Error: " + err.Error()))
		}
		return gen
	}
}

func (s *PlanSvc) Submit(ctx context.Context, sess entities.Session, in entities.Submission) (entities.Session, service.Report) {
	var rep service.Report
	notify := func(n entities.Notice) { rep.Notices = append(rep.Notices, n) }

	if strings.TrimSpace(in.Summary) == "" {
		notify(entities.Warning(msgEmptySummary))
		return sess, rep
	}

	switch cred := entities.ParseCredential(in.Credential).(type) {
	case entities.RealCredential:
		rep.Path = service.PathGenerate
		gen := s.Generate(ctx, cred, in.Summary, notify)
		rep.Generation = &gen
		if gen.Outcome.OK() {
			sess = sess.WithPlan(entities.ContentPlan{Text: gen.Text, Model: gen.Model, CreatedAt: s.now()})
		}
	case entities.NoCredential:
		rep.Path = service.PathMock
		notify(entities.Warning(msgSimulation))
		text := s.mock.Plan(ctx, in.Summary)
		sess = sess.WithPlan(entities.ContentPlan{Text: text, Mock: true, CreatedAt: s.now()})
		s.logger.Info("[plan] mock plan generated")
	}
	return sess, rep
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func humanDelay(d time.Duration) string {
	if d%time.Second == 0 {
		n := int(d / time.Second)
		if n == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", n)
	}
	return d.String()
}
