package helpers

type Helpers struct {
	Clipboard *Clipboard
	Config    *ConfigManager
}

func NewHelpers(settingsDir string) *Helpers {
	return &Helpers{
		Clipboard: NewClipboard(),
		Config:    NewConfigManager(settingsDir),
	}
}
