package wisp

import "github.com/juju/loggo"

// Each pipeline stage owns its own logger so verbosity can be tuned per
// stage without a single global switch.
var (
	lexerLogger  = loggo.GetLogger("wisp.lexer")
	parserLogger = loggo.GetLogger("wisp.parser")
	evalLogger   = loggo.GetLogger("wisp.eval")
)

// SetLogLevel configures the severity of all wisp loggers at once. The
// command-line driver calls this from its --verbose flag.
func SetLogLevel(level loggo.Level) {
	lexerLogger.SetLogLevel(level)
	parserLogger.SetLogLevel(level)
	evalLogger.SetLogLevel(level)
}
