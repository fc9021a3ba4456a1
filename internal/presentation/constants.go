package presentation

const (
	IDParam       = "id"
	APIPrefix     = "/api"
	MediaPath     = "/media"
	PublicPath    = "/public/media"
	HealthPath    = "/health"
	MetricsPath   = "/metrics"
	UploadsPrefix = "/uploads"
)
