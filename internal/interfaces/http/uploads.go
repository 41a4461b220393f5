package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/inventory"
)

// saveUpload stores the multipart file under field and returns its media
// reference. A missing file is not an error: evidence images are optional,
// the reference number is what validation requires. fasthttp reports an
// absent field as a generic lookup error, so any FormFile failure reads as
// "no file".
func saveUpload(c *fiber.Ctx, store inventory.EvidenceStore, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return store.Save(c.Context(), fh.Filename, f)
}
