package cmdutil

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// The engine logs query compilation at info and walk progress at
// debug, so those are the only levels worth exposing above the
// default.
var levelMap = map[string]log.Level{
	"warn":  log.WarnLevel,
	"info":  log.InfoLevel,
	"debug": log.DebugLevel,
}

var allLevels = []string{"warn", "info", "debug"}

// ParseLevel converts a level name into a logrus level.
func ParseLevel(s string) (log.Level, error) {
	if level, ok := levelMap[s]; ok {
		return level, nil
	}
	return log.FatalLevel,
		fmt.Errorf("%v is not a valid level. Valid levels are %v", s, strings.Join(allLevels, ", "))
}
