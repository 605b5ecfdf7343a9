package docent

import "github.com/rs/zerolog"

// LoggingObserver mirrors tour lifecycle notifications onto a zerolog
// logger: state changes and target measurements at debug level, step
// and lifecycle changes at info, hook failures at error.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver wraps logger as a tour observer.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

var _ ExtendedObserver = (*LoggingObserver)(nil)

func (l *LoggingObserver) OnStateChange(state State) {
	l.logger.Debug().
		Str("status", string(state.Status)).
		Int("step_index", state.StepIndex).
		Float64("progress", state.Progress).
		Msg("tour state changed")
}

func (l *LoggingObserver) OnStepChange(from, to *Step, direction Direction) {
	evt := l.logger.Info().
		Str("direction", string(direction)).
		Str("to", to.ID)
	if from != nil {
		evt = evt.Str("from", from.ID)
	}
	evt.Msg("tour step changed")
}

func (l *LoggingObserver) OnTargetChange(step *Step, rect *Rect) {
	evt := l.logger.Debug().Str("step", step.ID)
	if rect == nil {
		evt.Bool("resolved", false).Msg("tour target unresolved")
		return
	}
	evt.Float64("x", rect.X).
		Float64("y", rect.Y).
		Float64("width", rect.Width).
		Float64("height", rect.Height).
		Msg("tour target measured")
}

func (l *LoggingObserver) OnTourStarted(state State) {
	l.logger.Info().
		Int("total_steps", state.TotalSteps).
		Msg("tour started")
}

func (l *LoggingObserver) OnTourEnded(reason EndReason, state State) {
	l.logger.Info().
		Str("reason", string(reason)).
		Msg("tour ended")
}

func (l *LoggingObserver) OnTourPaused(state State) {
	l.logger.Info().
		Int("step_index", state.StepIndex).
		Msg("tour paused")
}

func (l *LoggingObserver) OnTourResumed(state State) {
	l.logger.Info().
		Int("step_index", state.StepIndex).
		Msg("tour resumed")
}

func (l *LoggingObserver) OnHookError(step *Step, phase HookPhase, err error) {
	l.logger.Error().
		Err(err).
		Str("step", step.ID).
		Str("phase", string(phase)).
		Msg("tour hook failed")
}
