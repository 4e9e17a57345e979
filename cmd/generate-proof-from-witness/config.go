package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the flag and environment configuration of the CLI. Every flag
// can also be set through the environment with the ORBINUM_ prefix, dots
// replaced by underscores (e.g. ORBINUM_LOG_LEVEL).
type Config struct {
	Backend  string `mapstructure:"backend"`
	R1CS     string `mapstructure:"r1cs"`
	Encoding string `mapstructure:"encoding"`
	Log      struct {
		Level  string `mapstructure:"level"`
		Output string `mapstructure:"output"`
	} `mapstructure:"log"`
}

func loadConfig() (*Config, []string, error) {
	flag.String("backend", "gnark", "proving backend {gnark, rapidsnark}")
	flag.String("r1cs", "", "path to the compiled constraint system (gnark backend only)")
	flag.String("encoding", "hex", "witness value encoding {hex, dec}")
	flag.String("log.level", "info", "log level {debug, info, warn, error}")
	flag.String("log.output", "stderr", "log output {stdout, stderr, <file>}")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"Usage: %s [flags] <witness-file> <proving-key-file> [num-public-signals]\n\nFlags:\n%s",
			"generate-proof-from-witness", flag.CommandLine.FlagUsages())
	}
	flag.Parse()

	viper.SetEnvPrefix("ORBINUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		return nil, nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	conf := &Config{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return conf, flag.Args(), nil
}
