package config

const (
	DefaultTimeZone = "Asia/Karachi"

	// Service ports (overridable per service in services.yaml)
	GatewayPort       = 8081
	LedgerServicePort = 7143

	// Upload limits enforced before bytes reach the extraction pipeline
	MaxUploadBytes = 10 << 20

	// Retention job defaults
	DefaultRetentionDays     = 180
	DefaultRetentionSchedule = "0 3 * * *" // daily at 03:00
)
