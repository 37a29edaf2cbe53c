package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuboard/internal/policy"
	"menuboard/internal/services"
	"menuboard/pkg/middleware"
	"menuboard/pkg/utils"
)

// maxImageBytes bounds a single uploaded photo.
const maxImageBytes = 10 << 20

// unitGate authorizes actions addressed to a unit by name.
type unitGate struct {
	unitService services.UnitServiceInterface
}

// allow writes the error response itself and reports whether the handler may
// continue. Units that do not exist yet are only reachable by admins; the
// write paths create them on first use.
func (g unitGate) allow(c *gin.Context, action policy.Action, unit string) (policy.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return policy.Actor{}, false
	}

	found, err := g.unitService.LookupUnit(c.Request.Context(), unit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return actor, false
	}

	target := uuid.Nil
	if found != nil {
		target = found.ID
	}
	if err := policy.Authorize(actor, action, target); err != nil {
		utils.HandleServiceError(c, err)
		return actor, false
	}
	return actor, true
}

// readImage returns the optional "image" file of a multipart request.
func readImage(c *gin.Context) (*services.ImageUpload, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if header.Size > maxImageBytes {
		return nil, utils.ErrImageTooLarge
	}

	return openUpload(header)
}

func openUpload(header *multipart.FileHeader) (*services.ImageUpload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return nil, err
	}
	return &services.ImageUpload{Content: content, FileName: header.Filename}, nil
}
