package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	baseFile  = ".env"
	localFile = ".env.local"
)

// Load reads .env, then lets an optional .env.local override it. Variables
// already present in the process environment win over both files.
// A -port flag overrides PORT.
func Load() error {
	env, err := godotenv.Read(baseFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", baseFile, err)
	}

	local, err := godotenv.Read(localFile)
	switch {
	case err == nil:
		for k, v := range local {
			env[k] = v
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read %s: %w", localFile, err)
	}

	for k, v := range env {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}

	var portFlag string
	if flag.Lookup("port") == nil {
		flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
