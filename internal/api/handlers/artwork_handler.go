package handlers

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/visionbridge/visionbridge/internal/identity"
	"github.com/visionbridge/visionbridge/internal/models"
	"github.com/visionbridge/visionbridge/internal/providers/llm"
	"github.com/visionbridge/visionbridge/internal/services"
	"github.com/visionbridge/visionbridge/internal/storage"
	"github.com/visionbridge/visionbridge/internal/utils"
)

const maxUploadBytes = 16 << 20

var allowedImageExt = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

type ArtworkHandler struct {
	svc      services.AnalysisService
	images   storage.ImageStore
	resolver identity.Resolver
}

func NewArtworkHandler(svc services.AnalysisService, images storage.ImageStore, resolver identity.Resolver) *ArtworkHandler {
	return &ArtworkHandler{svc: svc, images: images, resolver: resolver}
}

type UploadResponse struct {
	Success        bool               `json:"success"`
	Data           models.ArtworkData `json:"data"`
	ImageURL       string             `json:"image_url"`
	ConversationID string             `json:"conversation_id"`
}

func (h *ArtworkHandler) Upload(c *gin.Context) {
	const op = "ArtworkHandler.Upload"

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "No file part", err))
		return
	}
	if fh.Filename == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "No selected file", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > maxUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large (max 16MB)", nil))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExt[ext]; !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unsupported image type", nil))
		return
	}

	// Optional JSON-encoded color-impression seed; malformed input is
	// silently ignored, matching the upload contract.
	var impressions map[string]string
	if raw := c.PostForm("color_impressions"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &impressions); err != nil {
			impressions = nil
		}
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, services.MsgAnalyzeFailed, err))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, services.MsgAnalyzeFailed, err))
		return
	}

	name := "artwork_" + randomHex(8) + ext
	format := storage.FormatFromPath(name)
	path, url, err := h.images.Save(c.Request.Context(), name, "image/"+format, bytes.NewReader(data))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, services.MsgAnalyzeFailed, err))
		return
	}

	rec, err := h.svc.Analyze(c.Request.Context(), llm.Image{Format: format, Data: data}, path, impressions)
	if err != nil {
		writeError(c, err)
		return
	}

	// Bind the fresh conversation to the caller.
	h.resolver.Bind(c.Writer, c.Request, rec.ID)

	c.JSON(http.StatusOK, UploadResponse{
		Success:        true,
		Data:           rec.ArtworkData,
		ImageURL:       url,
		ConversationID: rec.ID,
	})
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
