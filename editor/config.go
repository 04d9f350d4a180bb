package editor

import "time"

// Config configures the editor Model.
type Config struct {
	// Initial text for an unnamed document.
	Text string

	// Rendering options.
	Style  Style
	KeyMap KeyMap

	// Banner is centered on an empty document when ShowWelcome is set.
	Banner      string
	ShowWelcome bool

	// ScrollMargin is the number of rows kept between the caret and the top or
	// bottom edge while moving.
	ScrollMargin int

	// MessageTimeout is how long a message stays in the message bar.
	// Defaults to 5s.
	MessageTimeout time.Duration

	// OnChange is called after every update that changed the document or
	// moved the caret.
	OnChange func(ChangeEvent)

	// Now replaces time.Now, for tests.
	Now func() time.Time
}

const defaultMessageTimeout = 5 * time.Second

func normalizeConfig(cfg Config) Config {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = defaultMessageTimeout
	}
	if cfg.ScrollMargin < 0 {
		cfg.ScrollMargin = 0
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}
