package service

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/policy"
)

func TestNormalizeCategory(t *testing.T) {
	svc := UploadService{Root: "uploads"}

	tests := []struct {
		name     string
		category string
		expected string
	}{
		{"known category passes through", "works", "works"},
		{"news passes through", "news", "news"},
		{"member logos pass through", "member_logos", "member_logos"},
		{"empty becomes general", "", "general"},
		{"unknown becomes general", "banners", "general"},
		{"traversal attempt becomes general", "../../etc", "general"},
		{"absolute path becomes general", "/etc/passwd", "general"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.NormalizeCategory(tc.category); got != tc.expected {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tc.category, got, tc.expected)
			}
		})
	}
}

func TestUploadAuthorize(t *testing.T) {
	svc := UploadService{Root: "uploads"}

	tests := []struct {
		name      string
		role      string
		category  string
		forbidden bool
	}{
		{"admin anywhere", model.RoleAdmin, "general", false},
		{"editor anywhere", model.RoleEditor, "member_logos", false},
		{"member to works", model.RoleMember, "works", false},
		{"member to news", model.RoleMember, "news", false},
		{"member to general refused", model.RoleMember, "general", true},
		{"member to member_logos refused", model.RoleMember, "member_logos", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Authorize(policy.Identity{Id: 1, Role: tc.role}, tc.category)
			if tc.forbidden != errors.Is(err, common.ErrForbidden) {
				t.Errorf("Authorize(%s, %s) = %v, forbidden expectation %v", tc.role, tc.category, err, tc.forbidden)
			}
		})
	}
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{Filename: name, Size: size}
	h.Header = textproto.MIMEHeader{}
	h.Header.Set("Content-Type", contentType)
	return h
}

func TestUploadValidateFile(t *testing.T) {
	svc := UploadService{Root: "uploads"}

	tests := []struct {
		name   string
		header *multipart.FileHeader
		valid  bool
	}{
		{"png ok", fileHeader("a.png", "image/png", 100), true},
		{"jpeg ok", fileHeader("a.jpg", "image/jpeg", 100), true},
		{"uppercase extension ok", fileHeader("a.PNG", "image/png", 100), true},
		{"svg ok", fileHeader("a.svg", "image/svg+xml", 100), true},
		{"right size boundary", fileHeader("a.webp", "image/webp", 2<<20), true},
		{"too large", fileHeader("a.png", "image/png", 2<<20+1), false},
		{"bad extension", fileHeader("a.exe", "image/png", 100), false},
		{"bad content type", fileHeader("a.png", "application/octet-stream", 100), false},
		{"no extension", fileHeader("png", "image/png", 100), false},
		{"gif refused on both axes", fileHeader("a.gif", "image/gif", 100), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ValidateFile(tc.header)
			if tc.valid && err != nil {
				t.Errorf("ValidateFile(%s) unexpected error: %v", tc.header.Filename, err)
			}
			if !tc.valid && !errors.Is(err, common.ErrValidation) {
				t.Errorf("ValidateFile(%s) expected validation error, got %v", tc.header.Filename, err)
			}
		})
	}
}

func TestUploadDestPathStaysInsideRoot(t *testing.T) {
	svc := UploadService{Root: t.TempDir()}

	dst, publicPath, err := svc.DestPath("works", "photo.PNG")
	if err != nil {
		t.Fatal(err)
	}
	if len(dst) == 0 || len(publicPath) == 0 {
		t.Fatal("expected non-empty paths")
	}
	if got, want := publicPath[:15], "/uploads/works/"; got != want {
		t.Errorf("public path prefix = %q, want %q", got, want)
	}
	// the original file name never appears in the destination
	if strings.Contains(dst, "photo") || strings.Contains(publicPath, "photo") {
		t.Errorf("destination leaks the original file name: %s", dst)
	}
	if !strings.HasSuffix(dst, ".png") {
		t.Errorf("extension not preserved lowercase: %s", dst)
	}
}
