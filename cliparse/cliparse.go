package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       int
	Candidates []string
}

// ParseFlags validates flags and sets port number and candidate list
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var candidates string

	// .env is optional; real env vars take precedence over its contents
	godotenv.Load()

	fs := flag.NewFlagSet("live-tally", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&candidates, "c", "", "Comma-separated candidate list")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if candidates == "" {
		candidates = os.Getenv("CANDIDATES")
	}
	if candidates == "" {
		return Config{}, errors.New("candidate list required (use -c or CANDIDATES env)")
	}

	for _, c := range strings.Split(candidates, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			return Config{}, errors.New("candidate list contains an empty entry")
		}
		cfg.Candidates = append(cfg.Candidates, c)
	}

	return cfg, nil
}
