package constants

const (
	AppName            = "gearup"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/gearup/gearup.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TimestampFormat is the stored timestamp format (YYYY-MM-DD HH:MM:SS)
	TimestampFormat = "2006-01-02 15:04:05"

	// Notify constants
	NotifierLockfileName   = "gearup-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.kbpkavisika.gearup"

	// Reminder task identity. At most one recurring hydration reminder is
	// registered under this name at a time.
	HydrationWorkName = "hydration_reminder_work"

	MinutesPerDay = 24 * 60
)

const (
	// Reminder settings defaults
	DefaultRemindersEnabled    = true
	DefaultReminderIntervalMin = 60
	DefaultReminderStartMin    = 8 * 60  // 08:00
	DefaultReminderEndMin      = 22 * 60 // 22:00
)
