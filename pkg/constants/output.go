package constants

// CLI Output Formatting.
const (
	// BannerWidth is the width of the "=" banners printed around a run.
	BannerWidth = 50

	// ReportFilePrefix prefixes the name of saved run reports.
	ReportFilePrefix = "gitlab-forker-report"
)
