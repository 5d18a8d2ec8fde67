package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// LogInfo affiche un message d'information en jaune
func LogInfo(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Yellow("[INFO] %s", message)
}

// LogError affiche un message d'erreur en rouge
func LogError(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Red("[ERROR] %s", message)
}

// LogDebug affiche un message de debug en cyan
func LogDebug(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Cyan("[DEBUG] %s", message)
}

// LogRequest affiche les détails d'une requête HTTP entrante
func LogRequest(method, path, ip string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	color.Yellow("[%s] %s %s from %s", timestamp, method, path, ip)
}

// LogIntegrity affiche les lignes écartées par le moteur de classement
// (références manquantes, valeurs invalides). Une ligne écartée n'est pas
// une erreur fatale: le tableau est calculé sans elle
func LogIntegrity(game string, dropped int, reasons []string) {
	if dropped == 0 {
		return
	}
	color.Red("[INTEGRITY] %s: %d submission(s) dropped", game, dropped)
	for _, reason := range reasons {
		color.Red("[INTEGRITY]   - %s", reason)
	}
}
