package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/dream-journal/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	s := MustGetEnvAsString(ctx, name)

	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// MustGetEnvAsStrings splits a comma-separated variable, dropping blanks.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	return splitList(MustGetEnvAsString(ctx, name))
}

// MustGetEnvAsLocation loads an IANA timezone such as "Europe/London".
func MustGetEnvAsLocation(ctx context.Context, name string) *time.Location {
	s := MustGetEnvAsString(ctx, name)

	loc, err := time.LoadLocation(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as timezone",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as timezone [%s]: %s", name, s))
	}

	return loc
}

func GetEnvOrString(name, def string) string {
	if s, exists := os.LookupEnv(name); exists {
		return s
	}
	return def
}

func GetEnvOrInt(ctx context.Context, name string, def int) int {
	if _, exists := os.LookupEnv(name); !exists {
		return def
	}
	return MustGetEnvAsInt(ctx, name)
}

func GetEnvOrDuration(ctx context.Context, name string, def time.Duration) time.Duration {
	if _, exists := os.LookupEnv(name); !exists {
		return def
	}
	return MustGetEnvAsDuration(ctx, name)
}

func GetEnvOrLocation(ctx context.Context, name string, def *time.Location) *time.Location {
	if s, exists := os.LookupEnv(name); !exists || s == "" {
		return def
	}
	return MustGetEnvAsLocation(ctx, name)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
