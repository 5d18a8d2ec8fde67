package handler

import (
	"net/http"

	"github.com/tony-montemuro/smb-website-sub002/internal/cache"
	"github.com/tony-montemuro/smb-website-sub002/internal/config"
	"github.com/tony-montemuro/smb-website-sub002/internal/services"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// État partagé des handlers: cache des tableaux et service d'upload.
// L'upload d'avatar est optionnel (cloudinarySvc nil si non configuré)
var (
	boards        = cache.New()
	cloudinarySvc *services.CloudinaryService
)

// Init prépare les services des handlers à partir de la configuration
func Init(cfg *config.Config) {
	svc, err := services.NewCloudinaryService(cfg)
	if err != nil {
		utils.LogInfo("cloudinary disabled: %v", err)
		return
	}
	cloudinarySvc = svc
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
