package handler

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"restaurantapi/internal/asset"
	"restaurantapi/internal/storage"
)

// ServeUpload streams a stored asset from the storage backend. It is used
// when assets do not live on the local filesystem (e.g. MinIO).
func ServeUpload(store *asset.Store, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("filename"))
		if err != nil {
			return fiber.ErrNotFound
		}
		rc, info, err := store.Open(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.ErrNotFound
			}
			return internalError(c, log, "serve_upload", err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(info.Size, 10))
		return c.SendStream(rc, int(info.Size))
	}
}
