package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"restaurantapi/internal/asset"
	"restaurantapi/internal/model"
)

// imageField is the multipart file field carrying a food image.
const imageField = "image"

// foodRequest is a parsed create/update body. Close releases the upload.
type foodRequest struct {
	Input  model.FoodInput
	Upload *asset.Upload
	file   multipart.File
}

func (r *foodRequest) Close() {
	if r.file != nil {
		r.file.Close()
	}
}

// parseFoodRequest reads name, price, category and description from a
// multipart form (with an optional image file) or a JSON object. Fields are
// not validated; an absent field stays nil. Any other content type yields an
// empty input, which the database then rejects.
func parseFoodRequest(c *fiber.Ctx) (*foodRequest, error) {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		return parseMultipartFood(c)
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		return parseJSONFood(c.Body())
	default:
		return &foodRequest{}, nil
	}
}

func parseMultipartFood(c *fiber.Ctx) (*foodRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	field := func(name string) *string {
		if v, ok := form.Value[name]; ok && len(v) > 0 {
			s := v[0]
			return &s
		}
		return nil
	}

	req := &foodRequest{Input: model.FoodInput{
		Name:        field("name"),
		Price:       field("price"),
		Category:    field("category"),
		Description: field("description"),
	}}

	if files := form.File[imageField]; len(files) > 0 {
		fh := files[0]
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open uploaded file: %w", err)
		}
		req.file = f
		req.Upload = &asset.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
			Body:        f,
		}
	}
	return req, nil
}

func parseJSONFood(body []byte) (*foodRequest, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return &foodRequest{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse json body: %w", err)
	}

	return &foodRequest{Input: model.FoodInput{
		Name:        jsonField(raw, "name"),
		Price:       jsonField(raw, "price"),
		Category:    jsonField(raw, "category"),
		Description: jsonField(raw, "description"),
	}}, nil
}

// jsonField renders a JSON value as text. Numbers keep their literal form
// ("5.50" stays "5.50"); null or a missing key yields nil.
func jsonField(raw map[string]any, key string) *string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		b, _ := json.Marshal(v)
		s = string(b)
	}
	return &s
}
