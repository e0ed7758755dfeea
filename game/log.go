package game

import "github.com/sirupsen/logrus"

// Log is the logger for the game core and everything driving it.
var Log *logrus.Logger

func init() {
	Log = logrus.New()
}
