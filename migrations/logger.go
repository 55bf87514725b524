package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/internal/logger"
)

// gooseLogger routes goose output into zerolog instead of stdout.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "migrations.Migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("func", "migrations.Migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
