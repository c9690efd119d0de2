package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"parish-liturgy-backend/internal/liturgy"
)

const (
	initialAvatarPrefix = "avatar-initial-"
	initialAvatarExt    = ".png"
	initialAvatarSize   = 128
)

var (
	errAvatarServiceMissing = errors.New("avatar service is not configured")

	// Liturgical red background, white initial.
	avatarBackground = color.RGBA{R: 0xc4, G: 0x1e, B: 0x3a, A: 255}
)

// AvatarService writes initial-letter placeholder images for people that
// have no photo. Files are created once per initial and reused.
type AvatarService struct {
	uploadDir string
	mu        sync.Mutex
}

func NewAvatarService(uploadDir string) *AvatarService {
	return &AvatarService{uploadDir: uploadDir}
}

// EnsureInitialAvatar returns the public URL of the avatar for name's first
// letter, rendering it on first use. A blank name yields "".
func (s *AvatarService) EnsureInitialAvatar(name string) (string, error) {
	if s == nil || s.uploadDir == "" {
		return "", errAvatarServiceMissing
	}

	glyph, key := resolveInitial(name)
	if glyph == "" {
		return "", nil
	}

	filename := initialAvatarPrefix + key + initialAvatarExt
	filePath := filepath.Join(s.uploadDir, filename)
	url := "/uploads/" + filename

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(filePath); err == nil {
		return url, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	img, err := renderInitialAvatar(glyph)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.uploadDir, filename+".tmp-*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return url, nil
}

// Warm renders the avatar for every initial in letters ahead of first use.
func (s *AvatarService) Warm(ctx context.Context, letters string) error {
	for _, r := range letters {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.EnsureInitialAvatar(string(r)); err != nil {
			return err
		}
	}
	return nil
}

// FillAvatars gives every avatar row without an image a generated initial.
// Rows whose avatar cannot be generated are left as they are.
func (s *AvatarService) FillAvatars(doc *liturgy.Document) error {
	if s == nil || doc == nil {
		return nil
	}

	var firstErr error
	for i := range doc.Sections {
		elements := doc.Sections[i].Elements
		for j, element := range elements {
			row, ok := element.(liturgy.InfoRowWithAvatar)
			if !ok || strings.TrimSpace(row.AvatarURL) != "" {
				continue
			}
			url, err := s.EnsureInitialAvatar(row.Value)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			row.AvatarURL = url
			elements[j] = row
		}
	}
	return firstErr
}

func resolveInitial(name string) (string, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ""
	}

	r, _ := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError {
		return "", ""
	}

	upper := unicode.ToUpper(r)
	glyph := string(upper)
	key := strings.ToLower(glyph)
	if len(key) != 1 || !isASCIIAlphaNumeric(key[0]) {
		key = fmt.Sprintf("u%x", upper)
	}

	return glyph, key
}

func isASCIIAlphaNumeric(value byte) bool {
	return (value >= 'a' && value <= 'z') || (value >= '0' && value <= '9')
}

func renderInitialAvatar(letter string) (image.Image, error) {
	const size = initialAvatarSize

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: avatarBackground}, image.Point{}, draw.Src)

	face, err := monoFace(float64(size) * 0.5)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, letter)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P((size-width)/2, (size+height)/2-int(math.Round(size*0.04))),
	}
	drawer.DrawString(letter)

	return img, nil
}

func monoFace(size float64) (font.Face, error) {
	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
