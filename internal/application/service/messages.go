package service

// Texts shown in place of real data. The HTTP and CLI surfaces render them as-is.
const (
	NoFlightsMessage      = "🚫 No recent flight data found. Try different airports."
	NoWeatherMessage      = "Could not retrieve weather data."
	SummarySkippedMessage = "⏭️ Summary skipped: introduction unavailable."

	IntroErrorPrefix   = "❌ Introduction error: "
	FlightErrorPrefix  = "❌ Flight data error: "
	SummaryErrorPrefix = "❌ Summary error: "
)

// DefaultTemperature is the sampling temperature for both completion calls.
const DefaultTemperature float32 = 0.7
