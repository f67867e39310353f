package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"lawroute/services/lawyerprofile"
	"lawroute/services/storage"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxPhotoSize caps profile photo uploads at 5 MB.
const maxPhotoSize = 5 << 20

// ProfileHandler exposes the lawyer profile endpoints.
type ProfileHandler struct {
	ProfileService lawyerprofile.ProfileService
	// StorageService may be nil when photo storage is not configured;
	// photo uploads are rejected in that case.
	StorageService storage.StorageService
}

// UpdateProfileHandler handles PUT /api/lawyer-profiles/me. The payload is
// a merge-patch; completeness is recomputed on every update.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	updated, err := h.ProfileService.Update(actor, payload)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListProfilesHandler handles GET /api/lawyer-profiles.
func (h *ProfileHandler) ListProfilesHandler(c *gin.Context) {
	profiles, err := h.ProfileService.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// UploadProfilePhotoHandler handles POST /api/lawyer-profiles/me/photo.
// The photo is staged to a temp file, pushed to media storage, and its
// delivery URL stored on the profile.
func (h *ProfileHandler) UploadProfilePhotoHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if h.StorageService == nil {
		utils.RespondError(c, utils.Validationf("photo storage is not configured"))
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		utils.RespondError(c, utils.Validationf("a photo file is required"))
		return
	}
	if file.Size > maxPhotoSize {
		utils.RespondError(c, utils.Validationf("photo must be smaller than 5MB"))
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.RespondError(c, err)
		return
	}
	defer os.Remove(tmpPath)

	url, publicID, err := h.StorageService.UploadFile(c.Request.Context(), tmpPath, "lawyer-profiles")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	updated, err := h.ProfileService.SetProfilePhoto(actor, url)
	if err != nil {
		// The profile update failed; drop the orphaned upload.
		if delErr := h.StorageService.DeleteFile(c.Request.Context(), publicID); delErr != nil {
			utils.GetLogger().Warn("Failed to clean up orphaned upload",
				zap.String("publicID", publicID), zap.Error(delErr))
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
