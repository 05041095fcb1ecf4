package helpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/cmd/tui/types"
	"github.com/kcaldas/termfolio/pkg/clock"
)

const settingsFileName = "settings.tui.json"

type ConfigManager struct {
	configPath string
	config     *types.Config
	loaded     bool
	mu         sync.RWMutex
}

// NewConfigManager keeps settings.tui.json in dir
func NewConfigManager(dir string) *ConfigManager {
	return &ConfigManager{
		configPath: filepath.Join(dir, settingsFileName),
	}
}

func (h *ConfigManager) Path() string {
	return h.configPath
}

func (h *ConfigManager) Load() (*types.Config, error) {
	config := h.GetDefaultConfig()

	data, err := os.ReadFile(h.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

func (h *ConfigManager) Save(config *types.Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(h.configPath, data, 0644)
}

// GetConfig returns the current config, loading it on first use.
// A broken settings file yields the defaults.
func (h *ConfigManager) GetConfig() *types.Config {
	h.mu.RLock()
	if h.loaded {
		defer h.mu.RUnlock()
		return h.config
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loaded {
		return h.config
	}

	config, err := h.Load()
	if err != nil {
		config = h.GetDefaultConfig()
	}

	h.config = config
	h.loaded = true
	return h.config
}

// UpdateConfig updates the config and optionally saves to disk
func (h *ConfigManager) UpdateConfig(fn func(*types.Config), save bool) error {
	_ = h.GetConfig()

	h.mu.Lock()
	defer h.mu.Unlock()

	fn(h.config)

	if save {
		return h.Save(h.config)
	}
	return nil
}

func (h *ConfigManager) GetDefaultConfig() *types.Config {
	return &types.Config{
		OutputMode:   "true",
		GlamourTheme: "auto",
		ShowClock:    true,
		ShowBorders:  true,
		ClockFormat:  clock.DefaultPattern,
	}
}

// GetGocuiOutputMode converts the string config to the appropriate gocui.OutputMode
func (h *ConfigManager) GetGocuiOutputMode(outputMode string) gocui.OutputMode {
	switch outputMode {
	case "normal":
		return gocui.OutputNormal
	case "256":
		return gocui.Output256
	case "simulator":
		return gocui.OutputSimulator
	default:
		return gocui.OutputTrue
	}
}
