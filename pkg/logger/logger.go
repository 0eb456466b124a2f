package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Development gets a human
// console writer; everything else stays structured JSON.
func Init(env string) {
	InitWithOutput(env, os.Stderr)
}

// InitWithOutput is Init with an explicit sink. The MCP server must keep
// stdout clean for the protocol stream, so it logs to stderr explicitly.
func InitWithOutput(env string, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
	} else {
		log.Logger = log.Output(out)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
