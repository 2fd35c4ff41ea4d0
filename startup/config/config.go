package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	ExploreDBHost string
	ExploreDBPort string
	ExploreDBUser string
	ExploreDBPass string
	Secret        string
	JaegerAddress string
	RBACModelPath string
	RBACPolicy    string
}

func NewConfig() *Config {
	// Local runs keep settings in a .env file, deployments inject real
	// environment variables. Absence of the file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		ExploreDBHost: os.Getenv("EXPLORE_DB_HOST"),
		ExploreDBPort: os.Getenv("EXPLORE_DB_PORT"),
		ExploreDBUser: os.Getenv("EXPLORE_DB_USER"),
		ExploreDBPass: os.Getenv("EXPLORE_DB_PASS"),
		Secret:        os.Getenv("ACCESS_TOKEN_SECRET"),
		JaegerAddress: os.Getenv("JAEGER_ADDRESS"),
		RBACModelPath: os.Getenv("RBAC_MODEL_PATH"),
		RBACPolicy:    os.Getenv("RBAC_POLICY_PATH"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.RBACModelPath == "" {
		cfg.RBACModelPath = "./rbac_model.conf"
	}
	if cfg.RBACPolicy == "" {
		cfg.RBACPolicy = "./policy.csv"
	}

	return cfg
}
