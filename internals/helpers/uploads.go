// file: internals/helpers/uploads.go
package helper

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename — <tanggal>-<uuid>-<nama asli tersanitasi>
func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// SaveUpload menyimpan file multipart ke <uploadRoot>/<folder>/ dan
// mengembalikan path relatif (folder/filename) untuk disimpan di record.
// Isi file tidak pernah diinspeksi di sini.
func SaveUpload(fh *multipart.FileHeader, uploadRoot, folder string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(uploadRoot, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	filename := GenerateUniqueFilename(fh.Filename)
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("gagal membuat file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("gagal menulis file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(folder, filename)), nil
}

// WriteUpload menyimpan bytes hasil proses (mis. konversi webp) ke
// <uploadRoot>/<folder>/ dengan nama unik dan extension yang diberikan.
func WriteUpload(data []byte, uploadRoot, folder, originalFilename, newExt string) (string, error) {
	dir := filepath.Join(uploadRoot, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	base := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))
	filename := GenerateUniqueFilename(base) + newExt
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menulis file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(folder, filename)), nil
}

// FileExtUpper — "materi.PDF" → "PDF", tanpa titik. Kosong kalau tidak ada ekstensi.
func FileExtUpper(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

// HumanFileSize — bytes → "12.34 MB" (dipakai di metadata materi).
func HumanFileSize(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}
