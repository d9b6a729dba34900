package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel int    `toml:"log_level"`

	RaffleService RPCConfigs   `toml:"raffle_service"`
	Ledger        RPCConfigs   `toml:"ledger"`
	Token         TokenConfigs `toml:"token"`
	SagaStore     StoreConfigs `toml:"saga_store"`
}

type RPCConfigs struct {
	// URL of the JSON-RPC endpoint of the collaborator.
	URL string `toml:"url"`

	// Principal identifying the collaborator on the ledger. The raffle
	// service's principal is the spender of every approved allowance.
	Principal string `toml:"principal"`

	// RPCName prefixes every method name, following the collaborator's
	// namespace convention (e.g. "draffle" -> "draffle_getAllRaffles").
	RPCName string `toml:"rpc_name"`
}

type TokenConfigs struct {
	// ScalingFactor converts a display amount (whole tokens) into the
	// ledger's base unit. The ICRC ledger uses e8s.
	ScalingFactor int64 `toml:"scaling_factor"`
}

type StoreConfigs struct {
	DSN string `toml:"dsn"`
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: 1,
		RaffleService: RPCConfigs{
			URL:       "http://localhost:4943",
			RPCName:   "draffle",
			Principal: "draffle-backend",
		},
		Ledger: RPCConfigs{
			URL: "http://localhost:4944",
		},
		Token:     TokenConfigs{ScalingFactor: 100_000_000},
		SagaStore: StoreConfigs{DSN: ":memory:"},
	}
}

// Load reads a TOML file over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}
