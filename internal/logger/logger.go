package logger

import (
	"fmt"
	"time"
)

// Codes ANSI pour les couleurs
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

func logf(color, prefix, message string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s%s\n", colorGray, timestamp, colorReset, color, prefix, fmt.Sprintf(message, args...), colorReset)
}

// Info log une information générale (bleu)
func Info(message string, args ...interface{}) {
	logf(colorBlue, "", message, args...)
}

// Success log un succès (vert)
func Success(message string, args ...interface{}) {
	logf(colorGreen, "✓ ", message, args...)
}

// Warning log un avertissement (jaune)
func Warning(message string, args ...interface{}) {
	logf(colorYellow, "⚠ ", message, args...)
}

// Error log une erreur (rouge)
func Error(message string, args ...interface{}) {
	logf(colorRed, "✗ ", message, args...)
}

// Request log une requête HTTP avec son status et sa durée
func Request(method, path string, statusCode int, duration time.Duration) {
	timestamp := time.Now().Format("15:04:05")

	var color string
	switch {
	case statusCode >= 200 && statusCode < 300:
		color = colorGreen
	case statusCode >= 300 && statusCode < 400:
		color = colorCyan
	case statusCode >= 400 && statusCode < 500:
		color = colorYellow
	default:
		color = colorRed
	}

	var durationStr string
	switch {
	case duration < time.Millisecond:
		durationStr = fmt.Sprintf("%.0fµs", float64(duration.Microseconds()))
	case duration < time.Second:
		durationStr = fmt.Sprintf("%.0fms", float64(duration.Milliseconds()))
	default:
		durationStr = fmt.Sprintf("%.2fs", duration.Seconds())
	}

	fmt.Printf("%s[%s]%s %s%-6s%s %s%-50s%s %s[%d]%s %s(%s)%s\n",
		colorGray, timestamp, colorReset,
		colorPurple, method, colorReset,
		colorWhite, path, colorReset,
		color, statusCode, colorReset,
		colorGray, durationStr, colorReset)
}
