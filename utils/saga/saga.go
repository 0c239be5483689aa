package saga

import (
	"context"

	"vouchers-system/utils/helpers"
)

type Step struct {
	Name           string
	Index          int
	Func           func(ctx context.Context) error
	CompensateFunc func(ctx context.Context) error
	Options        *Options
}

type Options struct {
	// SkipCompensateOnError leaves already-executed steps untouched when this
	// step fails. Used for best-effort steps whose failure must not unwind the
	// rest of the pipeline.
	SkipCompensateOnError bool
}

type Result struct {
	ExecutionError   error
	CompensateErrors []error
}

type Saga struct {
	Name  string
	steps []*Step
}

func NewSaga(name string) *Saga {
	return &Saga{Name: name}
}

func (sg *Saga) AddStep(step *Step) error {
	sg.steps = append(sg.steps, step)
	step.Index = len(sg.steps) - 1
	return nil
}

type Coordinator struct {
	ExecutionID string
	Ctx         context.Context
	StepCtx     context.Context
	Saga        *Saga
	Store       Store
	Sinks       []Sink
}

func NewCoordinator(ctx, stepCtx context.Context, sg *Saga, store Store, sinks ...Sink) *Coordinator {
	return &Coordinator{
		ExecutionID: helpers.GetUUId(),
		Ctx:         ctx,
		StepCtx:     stepCtx,
		Saga:        sg,
		Store:       store,
		Sinks:       sinks,
	}
}

func (c *Coordinator) appendLog(lg *Log) {
	lg.ExecutionID = c.ExecutionID
	lg.SagaName = c.Saga.Name
	lg.Time = helpers.GetCurrentTime()

	if c.Store != nil {
		c.Store.Append(lg)
	}
	for _, sink := range c.Sinks {
		sink.Append(lg)
	}
}

// Play executes every step in order. The first step error aborts the run and
// triggers the CompensateFunc of the failed step and every step before it, in
// reverse order, unless the failed step opted out of compensation.
func (c *Coordinator) Play() (res *Result) {
	res = &Result{}

	c.appendLog(&Log{State: LogTypeStartSaga})

	for _, step := range c.Saga.steps {
		c.appendLog(&Log{State: LogTypeSagaStepExec, StepNumber: step.Index, StepName: step.Name})

		err := step.Func(c.StepCtx)
		if err == nil {
			continue
		}

		res.ExecutionError = err
		c.appendLog(&Log{State: LogTypeSagaAbort, StepNumber: step.Index, StepName: step.Name, StepError: err.Error()})

		if step.Options != nil && step.Options.SkipCompensateOnError {
			break
		}

		for i := step.Index; i >= 0; i-- {
			compensate := c.Saga.steps[i]
			if compensate.CompensateFunc == nil {
				continue
			}

			lg := &Log{State: LogTypeSagaStepCompensate, StepNumber: compensate.Index, StepName: compensate.Name}
			if cErr := compensate.CompensateFunc(c.StepCtx); cErr != nil {
				res.CompensateErrors = append(res.CompensateErrors, cErr)
				lg.StepError = cErr.Error()
			}
			c.appendLog(lg)
		}

		break
	}

	c.appendLog(&Log{State: LogTypeSagaComplete, StepNumber: len(c.Saga.steps)})

	return res
}
