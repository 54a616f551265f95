package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the root configuration for stp, stored in ~/.stp/config.json.
// The file supports single-line // comments for documentation purposes.
// Every key can be overridden by an STP_ environment variable, e.g.
// STP_SCHEDULE_WINDOW_START=08:00.
type Config struct {
	// DataFile is the planner document path. Empty = ~/.stp/planner.json.
	DataFile string
	Log      LogConfig
	Schedule ScheduleConfig
	Reminder ReminderConfig
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// Format is "console" or "json".
	Format string
}

// ScheduleConfig holds defaults for auto-scheduling and new subjects.
type ScheduleConfig struct {
	WindowStart     string
	WindowEnd       string
	SessionHours    float64
	BreakHours      float64
	DailyStudyHours float64
}

// ReminderConfig controls `stp remind`.
type ReminderConfig struct {
	// LeadMinutes is how long before a session starts it is reported.
	LeadMinutes int
}

const (
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "console"
	DefaultWindowStart     = "09:00"
	DefaultWindowEnd       = "21:00"
	DefaultSessionHours    = 2.0
	DefaultBreakHours      = 0.5
	DefaultDailyStudyHours = 3.0
	DefaultLeadMinutes     = 15
)

// envPrefix namespaces environment overrides.
const envPrefix = "STP"

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Log: LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Schedule: ScheduleConfig{
			WindowStart:     DefaultWindowStart,
			WindowEnd:       DefaultWindowEnd,
			SessionHours:    DefaultSessionHours,
			BreakHours:      DefaultBreakHours,
			DailyStudyHours: DefaultDailyStudyHours,
		},
		Reminder: ReminderConfig{LeadMinutes: DefaultLeadMinutes},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// stp configuration – ~/.stp/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Any key can also be set through the environment, for example
// STP_SCHEDULE_WINDOW_START=08:00 or STP_LOG_LEVEL=debug.
{
  // Planner data file. Leave empty to use ~/.stp/planner.json.
  "data_file": "",

  // ── Logging ──────────────────────────────────────────────────────────────
  "log": {
    // One of debug, info, warn, error.
    "level": "warn",
    // "console" for humans, "json" for machines.
    "format": "console"
  },

  // ── Auto-scheduling defaults (override per run with flags) ───────────────
  "schedule": {
    // Daily availability window, HH:MM.
    "window_start": "09:00",
    "window_end": "21:00",
    // Length of one study session and the break after it, in hours.
    "session_hours": 2,
    "break_hours": 0.5,
    // Per-subject daily cap used when a subject is added without one.
    "daily_study_hours": 3
  },

  // ── Reminders ────────────────────────────────────────────────────────────
  "reminder": {
    // Minutes before a session starts that stp remind reports it.
    "lead_minutes": 15
  }
}
`

// configFilePath returns the path to ~/.stp/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".stp", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("schedule.window_start", d.Schedule.WindowStart)
	v.SetDefault("schedule.window_end", d.Schedule.WindowEnd)
	v.SetDefault("schedule.session_hours", d.Schedule.SessionHours)
	v.SetDefault("schedule.break_hours", d.Schedule.BreakHours)
	v.SetDefault("schedule.daily_study_hours", d.Schedule.DailyStudyHours)
	v.SetDefault("reminder.lead_minutes", d.Reminder.LeadMinutes)
}

// Load reads ~/.stp/config.json, creating it with annotated defaults on first
// run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path. A .env file in the working
// directory is loaded into the environment first, then STP_ variables
// override file values. A missing file is created from the template.
func LoadFrom(path string) (Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		data = []byte(configTemplate)
	} else if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(stripLineComments(data))); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	cfg := Config{
		DataFile: v.GetString("data_file"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Schedule: ScheduleConfig{
			WindowStart:     v.GetString("schedule.window_start"),
			WindowEnd:       v.GetString("schedule.window_end"),
			SessionHours:    v.GetFloat64("schedule.session_hours"),
			BreakHours:      v.GetFloat64("schedule.break_hours"),
			DailyStudyHours: v.GetFloat64("schedule.daily_study_hours"),
		},
		Reminder: ReminderConfig{
			LeadMinutes: v.GetInt("reminder.lead_minutes"),
		},
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user blanks a value.
	d := defaultConfig()
	if cfg.Schedule.WindowStart == "" {
		cfg.Schedule.WindowStart = d.Schedule.WindowStart
	}
	if cfg.Schedule.WindowEnd == "" {
		cfg.Schedule.WindowEnd = d.Schedule.WindowEnd
	}
	if cfg.Schedule.SessionHours <= 0 {
		cfg.Schedule.SessionHours = d.Schedule.SessionHours
	}
	if cfg.Schedule.BreakHours < 0 {
		cfg.Schedule.BreakHours = 0
	}
	if cfg.Schedule.DailyStudyHours <= 0 {
		cfg.Schedule.DailyStudyHours = d.Schedule.DailyStudyHours
	}
	if cfg.Reminder.LeadMinutes <= 0 {
		cfg.Reminder.LeadMinutes = d.Reminder.LeadMinutes
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
