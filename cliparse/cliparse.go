package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Members      []string
}

// ParseFlags validates flags and sets the port, database, and member list
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var members string

	fs := flag.NewFlagSet("secret-santa", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (or SQLite file path)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// The member list is fixed at configuration time, not runtime-derived
	fs.StringVar(&members, "m", "", "Comma-separated member names")

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
			cfg.Port = 8484 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "santa.db" // local SQLite file
	}

	if members == "" {
		members = os.Getenv("MEMBERS")
	}
	parsed, err := ParseMembers(members)
	if err != nil {
		return Config{}, err
	}
	cfg.Members = parsed

	return cfg, nil
}

// ParseMembers splits a comma-separated member list, trimming whitespace and
// dropping empty entries. Order is preserved; names must be unique and at
// least 2 are required.
func ParseMembers(raw string) ([]string, error) {
	if raw == "" {
		return nil, errors.New("member list required (use -m or MEMBERS env)")
	}

	seen := make(map[string]bool)
	var members []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate member name %q", name)
		}
		seen[name] = true
		members = append(members, name)
	}

	if len(members) < 2 {
		return nil, errors.New("at least 2 members required")
	}

	return members, nil
}
