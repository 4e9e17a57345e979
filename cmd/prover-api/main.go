// Command prover-api serves the proof generation pipeline over HTTP. Circuits
// are declared in a YAML config file; each one names its proving key material
// and public-signal count and becomes a POST /proofs/{name} resource.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/orbinum/groth16-prover/api"
	"github.com/orbinum/groth16-prover/log"
	"github.com/orbinum/groth16-prover/prover"
	"github.com/orbinum/groth16-prover/witness"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// Config is the full configuration of the API server. Flags take precedence
// over the config file, the ORBINUM_ environment prefix over defaults.
type Config struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Backend      string `mapstructure:"backend"`
	KeyCacheSize int    `mapstructure:"keyCacheSize"`
	Log          struct {
		Level  string `mapstructure:"level"`
		Output string `mapstructure:"output"`
	} `mapstructure:"log"`
	Circuits map[string]CircuitConfig `mapstructure:"circuits"`
}

// CircuitConfig declares one provable circuit in the config file.
type CircuitConfig struct {
	ProvingKey       string `mapstructure:"provingKey"`
	ConstraintSystem string `mapstructure:"constraintSystem"`
	NumPublicSignals int    `mapstructure:"numPublicSignals"`
}

func loadConfig() (*Config, error) {
	flag.String("config", "", "path to the YAML config file")
	flag.String("host", "0.0.0.0", "network interface to bind to")
	flag.Int("port", 9090, "TCP port to listen on")
	flag.String("backend", "gnark", "proving backend {gnark, rapidsnark}")
	flag.Int("keyCacheSize", 4, "number of proving keys kept in memory (0 disables caching)")
	flag.String("log.level", "info", "log level {debug, info, warn, error}")
	flag.String("log.output", "stderr", "log output {stdout, stderr, <file>}")
	flag.Parse()

	viper.SetEnvPrefix("ORBINUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	conf := &Config{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return conf, nil
}

func main() {
	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	log.Init(conf.Log.Level, conf.Log.Output)
	log.Infow("starting prover API", "version", Version,
		"backend", conf.Backend, "circuits", len(conf.Circuits))

	var backend prover.Backend
	switch conf.Backend {
	case "gnark":
		backend = prover.GnarkBackend{}
	case "rapidsnark":
		backend = prover.RapidsnarkBackend{}
	default:
		log.Fatalf("unknown backend %q", conf.Backend)
	}

	circuits := make(map[string]api.Circuit, len(conf.Circuits))
	for name, cc := range conf.Circuits {
		if cc.ProvingKey == "" {
			log.Fatalf("circuit %q: missing provingKey", name)
		}
		if conf.Backend == "gnark" && cc.ConstraintSystem == "" {
			log.Fatalf("circuit %q: gnark backend requires constraintSystem", name)
		}
		count := cc.NumPublicSignals
		if count == 0 {
			count = witness.DefaultNumPublicSignals
		}
		circuits[name] = api.Circuit{
			Key: prover.KeySource{
				KeyPath:              cc.ProvingKey,
				ConstraintSystemPath: cc.ConstraintSystem,
			},
			NumPublicSignals: count,
		}
	}

	a, err := api.New(&api.Config{
		Circuits:     circuits,
		Backend:      backend,
		KeyCacheSize: conf.KeyCacheSize,
	})
	if err != nil {
		log.Fatalf("could not create API: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.ListenAndServe(ctx, conf.Host, conf.Port); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
	log.Infof("shutdown complete")
}
