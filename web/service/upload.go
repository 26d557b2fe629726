package service

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/policy"
)

// Upload destination categories. Everything outside the whitelist collapses to
// CategoryGeneral, so a caller-supplied category can never steer the write
// outside the upload root.
const (
	CategoryWorks      = "works"
	CategoryNews       = "news"
	CategoryMemberLogo = "member_logos"
	CategoryGeneral    = "general"
)

const maxUploadSize = 2 << 20 // 2 MB

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".svg":  true,
}

var allowedContentTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// memberCategories is the subset of destinations the member role may write to.
var memberCategories = map[string]bool{
	CategoryWorks: true,
	CategoryNews:  true,
}

type UploadService struct {
	Root string
}

// NormalizeCategory coerces any caller-supplied category onto the whitelist.
func (s *UploadService) NormalizeCategory(category string) string {
	switch category {
	case CategoryWorks, CategoryNews, CategoryMemberLogo, CategoryGeneral:
		return category
	}
	return CategoryGeneral
}

// Authorize applies the per-role destination policy to an already normalized
// category. Admins and editors may write anywhere; members only to works and
// news.
func (s *UploadService) Authorize(identity policy.Identity, category string) error {
	if identity.Role == model.RoleMember && !memberCategories[category] {
		return fmt.Errorf("%w: members can only upload for works or news", common.ErrForbidden)
	}
	return nil
}

// ValidateFile enforces the extension whitelist, the declared content type
// whitelist and the size ceiling. Both name and type must pass, not either.
func (s *UploadService) ValidateFile(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return common.ValidationErrorf("unsupported file type")
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return common.ValidationErrorf("unsupported file type")
	}
	if header.Size > maxUploadSize {
		return common.ValidationErrorf("file exceeds the %d byte limit", maxUploadSize)
	}
	return nil
}

// DestPath builds the on-disk destination for a new upload: a fresh random
// name with the original extension under the category folder. The category is
// normalized before this is called, so the joined path stays inside Root.
func (s *UploadService) DestPath(category, originalName string) (dst string, publicPath string, err error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	dir := filepath.Join(s.Root, category)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", "", err
	}
	return filepath.Join(dir, name), "/uploads/" + category + "/" + name, nil
}
