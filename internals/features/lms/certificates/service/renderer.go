// internals/features/lms/certificates/service/renderer.go
package service

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	canvasWidth  = 1200
	canvasHeight = 900
)

var accentColor = color.RGBA{R: 25, G: 164, B: 219, A: 255}

// RenderInput — data yang dicetak ke sertifikat.
type RenderInput struct {
	StudentName      string
	CourseName       string
	CertificateTitle string
	InstructorName   string
	IssueDate        time.Time
	CredentialID     string
	TemplatePath     *string // relatif terhadap uploadRoot, boleh nil
}

// RenderCertificate membuat PNG sertifikat di <uploadRoot>/certificates/
// dengan nama <credential>.png dan mengembalikan path relatifnya.
// Kalau template course tersedia, dipakai sebagai kanvas; kalau tidak,
// digambar kanvas putih 1200x900 berbingkai.
func RenderCertificate(in RenderInput, uploadRoot string) (string, error) {
	canvas, err := loadCanvas(in.TemplatePath, uploadRoot)
	if err != nil {
		return "", err
	}

	drawCenteredText(canvas, "Certificate of Completion", 100, accentColor)
	drawCenteredText(canvas, in.CertificateTitle, 200, color.Black)
	drawCenteredText(canvas, in.StudentName, 350, color.Black)
	drawCenteredText(canvas, "has successfully completed the course", 450, color.Black)
	drawCenteredText(canvas, in.CourseName, 500, color.Black)
	drawCenteredText(canvas, fmt.Sprintf("Date: %s", in.IssueDate.Format("January 2, 2006")), 700, color.Black)
	drawCenteredText(canvas, fmt.Sprintf("Instructor: %s", in.InstructorName), 750, color.Black)
	drawCenteredText(canvas, fmt.Sprintf("Credential ID: %s", in.CredentialID), 820, color.Black)

	dir := filepath.Join(uploadRoot, "certificates")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder sertifikat: %w", err)
	}

	filename := in.CredentialID + ".png"
	out, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("gagal membuat file sertifikat: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, canvas); err != nil {
		return "", fmt.Errorf("gagal encode sertifikat: %w", err)
	}

	return filepath.ToSlash(filepath.Join("certificates", filename)), nil
}

func loadCanvas(templatePath *string, uploadRoot string) (*image.RGBA, error) {
	if templatePath != nil && *templatePath != "" {
		full := filepath.Join(uploadRoot, filepath.FromSlash(*templatePath))
		if img, err := imaging.Open(full); err == nil {
			img = imaging.Resize(img, canvasWidth, canvasHeight, imaging.Lanczos)
			canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
			draw.Draw(canvas, canvas.Bounds(), img, image.Point{}, draw.Src)
			return canvas, nil
		}
		// template rusak/hilang → jatuh ke kanvas kosong
	}

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	drawBorder(canvas)
	return canvas, nil
}

func drawBorder(canvas *image.RGBA) {
	const inset, thickness = 20, 5
	for t := 0; t < thickness; t++ {
		x0, y0 := inset+t, inset+t
		x1, y1 := canvasWidth-inset-t-1, canvasHeight-inset-t-1
		for x := x0; x <= x1; x++ {
			canvas.Set(x, y0, accentColor)
			canvas.Set(x, y1, accentColor)
		}
		for y := y0; y <= y1; y++ {
			canvas.Set(x0, y, accentColor)
			canvas.Set(x1, y, accentColor)
		}
	}
}

func drawCenteredText(canvas *image.RGBA, text string, y int, col color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((canvasWidth - width) / 2),
			Y: fixed.I(y),
		},
	}
	d.DrawString(text)
}
