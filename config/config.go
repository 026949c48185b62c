package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "gobang/config.json"
	logFile = "gobang/gobang.log"
)

const (
	MinBoardSize = 5
	MaxBoardSize = 26
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor    int `json:"board" env:"GOBANG_COLOR_BOARD" env-default:"180"`
	BoardColorAlt int `json:"board_alt" env:"GOBANG_COLOR_BOARD_ALT" env-default:"180"`
	PlayerAColor  int `json:"player_a" env:"GOBANG_COLOR_PLAYER_A" env-default:"22"`
	PlayerBColor  int `json:"player_b" env:"GOBANG_COLOR_PLAYER_B" env-default:"160"`
	LineColor     int `json:"line" env:"GOBANG_COLOR_LINE" env-default:"94"`
	CursorColorBG int `json:"cursor_bg" env:"GOBANG_COLOR_CURSOR_BG" env-default:"4"`
	LastPlayedBG  int `json:"last_played_bg" env:"GOBANG_COLOR_LAST_PLAYED_BG" env-default:"2"`
	WinningRunBG  int `json:"winning_run_bg" env:"GOBANG_COLOR_WINNING_RUN_BG" env-default:"220"`
}

type ConfigSymbols struct {
	PlayerA     string `json:"player_a" env:"GOBANG_SYMBOL_PLAYER_A" env-default:"X"`
	PlayerB     string `json:"player_b" env:"GOBANG_SYMBOL_PLAYER_B" env-default:"O"`
	BoardSquare string `json:"board" env:"GOBANG_SYMBOL_BOARD" env-default:"┼"`
}

// Theme controls how the board is drawn. The zero value of every flag is the
// default look.
type Theme struct {
	PlainCursor    bool          `json:"plain_cursor" env:"GOBANG_PLAIN_CURSOR"`
	HideLastPlayed bool          `json:"hide_last_played" env:"GOBANG_HIDE_LAST_PLAYED"`
	NoGridLines    bool          `json:"no_grid_lines" env:"GOBANG_NO_GRID_LINES"`
	Colors         ConfigColors  `json:"colors"`
	Symbols        ConfigSymbols `json:"symbols"`
}

// BoardConfig holds game settings.
type BoardConfig struct {
	Size   int `json:"size" env:"GOBANG_BOARD_SIZE" env-default:"10"`
	PollMS int `json:"poll_ms" env:"GOBANG_POLL_MS" env-default:"50"`
}

// PollInterval returns the input poll timeout.
func (b BoardConfig) PollInterval() time.Duration {
	return time.Duration(b.PollMS) * time.Millisecond
}

// LogConfig controls the debug log written while the screen is active.
type LogConfig struct {
	Level string `json:"level" env:"GOBANG_LOG_LEVEL" env-default:"info"`
	File  string `json:"file" env:"GOBANG_LOG_FILE"`
}

type Config struct {
	Board BoardConfig `json:"board"`
	Theme Theme       `json:"theme"`
	Log   LogConfig   `json:"log"`
}

// InitConfig loads the user's config file if one exists under the XDG config
// directories, applies environment overrides and validates the result.
func InitConfig() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		path = ""
	}
	return Load(path)
}

// Load reads the config at path, or only defaults and environment variables
// when path is empty.
func Load(path string) (*Config, error) {
	var config Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &config)
	} else {
		err = cleanenv.ReadEnv(&config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return &InvalidConfig{fmt.Sprintf("board size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Board.Size)}
	}
	if c.Board.PollMS <= 0 {
		return &InvalidConfig{"poll_ms must be positive"}
	}
	for _, s := range []string{c.Theme.Symbols.PlayerA, c.Theme.Symbols.PlayerB, c.Theme.Symbols.BoardSquare} {
		if utf8.RuneCountInString(s) != 1 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be exactly one character", s)}
		}
		r, _ := utf8.DecodeRuneInString(s)
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// Symbol returns the single rune of a validated symbol string.
func Symbol(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// LogPath returns the configured log file, defaulting to the XDG state
// directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
