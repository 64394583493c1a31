// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// batas lebar thumbnail/profile picture setelah resize
const maxImageWidth = 1280

// ConvertToWebp membaca gambar upload (jpg/png/webp), resize bila terlalu
// lebar, lalu encode ulang ke webp lossy. Dipakai untuk thumbnail course
// dan foto profil supaya ukuran file kecil.
func ConvertToWebp(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak didukung: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 82}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveImageAsWebp — shortcut: konversi lalu simpan lewat WriteUpload.
func SaveImageAsWebp(fh *multipart.FileHeader, uploadRoot, folder string) (string, error) {
	data, err := ConvertToWebp(fh)
	if err != nil {
		return "", err
	}
	return WriteUpload(data, uploadRoot, folder, fh.Filename, ".webp")
}

// IsImageFilename — cek kasar berdasarkan ekstensi, untuk memutuskan
// apakah upload layak dikonversi webp.
func IsImageFilename(name string) bool {
	low := strings.ToLower(name)
	return strings.HasSuffix(low, ".jpg") ||
		strings.HasSuffix(low, ".jpeg") ||
		strings.HasSuffix(low, ".png") ||
		strings.HasSuffix(low, ".webp")
}
