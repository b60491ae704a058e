package experiments

import (
	"fmt"
	"kvinti/meta"
	"kvinti/searcher"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AgentConfig struct {
	ID              int           `yaml:"id"`
	Tier            searcher.Tier `yaml:"tier"`
	Goroutines      int           `yaml:"goroutines"`
	RandomFirstMove bool          `yaml:"random_first_move"`
}

// Config describes a batch of self-play games. Every matchup names two agent
// IDs; seats alternate between games so both agents start equally often.
type Config struct {
	Name     string        `yaml:"name"`
	Seed     uint64        `yaml:"seed"` // 0 seeds from the clock
	Games    int           `yaml:"games"`
	MaxMoves int           `yaml:"max_moves"`
	Delay    time.Duration `yaml:"delay"`
	OutDir   string        `yaml:"out_dir"` // empty skips the CSV files
	Agents   []AgentConfig `yaml:"agents"`
	MatchUps [][]int       `yaml:"matchups"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML, fills defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "selfplay"
	}
	if c.Games == 0 {
		c.Games = 1
	}
	if c.MaxMoves == 0 {
		c.MaxMoves = meta.MAX_TURNS
	}
	for i := range c.Agents {
		if c.Agents[i].Goroutines == 0 {
			c.Agents[i].Goroutines = meta.GO_ROUTINES
		}
	}
}

func (c Config) Validate() error {
	if c.Games < 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxMoves < 0 {
		return fmt.Errorf("max_moves must be positive, got %d", c.MaxMoves)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("no matchups configured")
	}

	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		if a.Goroutines < 1 {
			return fmt.Errorf("agent %d: goroutines must be positive, got %d", a.ID, a.Goroutines)
		}
		ids[a.ID] = true
	}
	for i, m := range c.MatchUps {
		if len(m) != 2 {
			return fmt.Errorf("matchup %d: want two agent ids, got %d", i+1, len(m))
		}
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("matchup %d: unknown agent id %d", i+1, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
