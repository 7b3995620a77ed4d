package routes

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"

	"ngekos-server/utils"
)

const maxUploadSize = 2 << 20 // 2MB

var uploadTags = []string{"profile", "property"}

var uploadExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// UploadImage stores a JPEG/PNG/WEBP file under the public uploads
// directory and returns its public URL. MIME is sniffed from content,
// not trusted from the request.
func UploadImage(ctx iris.Context) {
	tag := ctx.FormValueDefault("type", "profile")
	if !slices.Contains(uploadTags, tag) {
		utils.CreateValidationError("type must be profile or property", ctx)
		return
	}

	file, _, err := ctx.FormFile("file")
	if err != nil {
		utils.CreateValidationError("file is required", ctx)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if len(data) > maxUploadSize {
		utils.CreateValidationError("file must be 2MB or smaller", ctx)
		return
	}

	mime := http.DetectContentType(data)
	ext, ok := uploadExtensions[mime]
	if !ok {
		utils.CreateValidationError("file must be a JPEG, PNG or WEBP image", ctx)
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = filepath.Join("public", "uploads")
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	filename := fmt.Sprintf("%s-%d-%s.%s", tag, time.Now().UnixMilli(), utils.GenerateShortToken(4), ext)
	if err := os.WriteFile(filepath.Join(uploadDir, filename), data, 0o644); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Created(ctx, iris.Map{
		"url":      "/uploads/" + filename,
		"filename": filename,
		"size":     len(data),
		"mimeType": mime,
	})
}
