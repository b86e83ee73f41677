package crud

import "github.com/sirupsen/logrus"

// Notifier receives the one-shot user-visible notices (the toast/alert
// feedback of the previous UI). The default implementation logs them.
type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

type logNotifier struct {
	log *logrus.Logger
}

func (n *logNotifier) Success(msg string) { n.log.Info(msg) }
func (n *logNotifier) Warn(msg string)    { n.log.Warn(msg) }
func (n *logNotifier) Error(msg string)   { n.log.Error(msg) }
