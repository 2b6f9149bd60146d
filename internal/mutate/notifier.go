package mutate

import "github.com/dkotenko/abook/internal/logger"

// Notifier is the user-visible notification sink. Every failed mutation
// produces exactly one Failure call; operations with confirmation
// semantics (deletes, moves, shares) produce one Success call as well.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// logNotifier is the default sink used when the UI has not installed one.
type logNotifier struct {
	logger *logger.Logger
}

func (n *logNotifier) Success(msg string) {
	n.logger.Info().Str("notification", "success").Msg(msg)
}

func (n *logNotifier) Failure(msg string) {
	n.logger.Warn().Str("notification", "failure").Msg(msg)
}
