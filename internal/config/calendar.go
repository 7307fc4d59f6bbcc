package config

const (
	envCalendarCredentialsPath    = "GOOGLE_CALENDAR_CREDENTIALS_PATH"
	envCalendarTokenPath          = "GOOGLE_CALENDAR_TOKEN_PATH"
	envCalendarServiceAccountPath = "GOOGLE_CALENDAR_SERVICE_ACCOUNT_PATH"
	envCalendarUseADC             = "GOOGLE_CALENDAR_USE_ADC"
	envCalendarAPIKey             = "GOOGLE_CALENDAR_API_KEY"
	envCalendarID                 = "GOOGLE_CALENDAR_ID"

	defaultCalendarTokenPath = "token.json"
	defaultCalendarID        = "primary"
)

// CalendarConfig controls how the Google Calendar sink authenticates.
type CalendarConfig struct {
	CredentialsPath    string
	TokenPath          string
	ServiceAccountPath string
	UseADC             bool
	APIKey             string
	CalendarID         string
}

func loadCalendar() CalendarConfig {
	return CalendarConfig{
		CredentialsPath:    envOrDefault(envCalendarCredentialsPath, ""),
		TokenPath:          envOrDefault(envCalendarTokenPath, defaultCalendarTokenPath),
		ServiceAccountPath: envOrDefault(envCalendarServiceAccountPath, ""),
		UseADC:             boolEnvOrDefault(envCalendarUseADC, false),
		APIKey:             envOrDefault(envCalendarAPIKey, ""),
		CalendarID:         envOrDefault(envCalendarID, defaultCalendarID),
	}
}
