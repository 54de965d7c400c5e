package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vertex-lab/pagerank/pkg/models"
	"github.com/vertex-lab/pagerank/pkg/utils/logger"
)

// The configuration parameters of the pagerank command.
type Config struct {
	Log       *logger.Aggregate
	LogWriter io.Writer

	// the probability of following a link instead of jumping to a random page
	Alpha float64

	// the number of steps of the sampling estimator
	Samples int

	// where to publish graph and ranks; empty means don't persist
	RedisAddress string
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		LogWriter: os.Stdout,
		Alpha:     models.DefaultAlpha,
		Samples:   models.DefaultSamples,
	}
}

// LoadConfig() reads the variables from the environment (and from a .env
// file, if present) and parses them into a config struct.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var config = NewConfig()
	var err error

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stdout
			if strings.HasSuffix(val, ".log") {
				config.LogWriter, err = os.OpenFile(val, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
			}

		case "DAMPING":
			config.Alpha, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

			if config.Alpha <= 0 || config.Alpha >= 1 {
				return nil, models.ErrInvalidAlpha
			}

		case "SAMPLES":
			config.Samples, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

			if config.Samples <= 0 {
				return nil, models.ErrInvalidSampleCount
			}

		case "REDIS_ADDRESS":
			config.RedisAddress = val
		}
	}

	config.Log = logger.New(config.LogWriter)
	return config, nil
}

// CloseLogs() closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout {
		file.Close()
	}
}
