package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func newTestTranscoder(maxWidth int) *Transcoder {
	return &Transcoder{ffmpeg: &FFmpeg{}, maxImageWidth: maxWidth}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestProcessImagePNG(t *testing.T) {
	tr := newTestTranscoder(1920)
	data := encodePNG(t, 10, 10)

	res := tr.Process(context.Background(), data, "image/png")
	if !res.Compressed {
		t.Fatal("expected compressed result")
	}
	if res.ContentType != "image/png" {
		t.Fatalf("content type = %q, want image/png", res.ContentType)
	}
	img, err := png.Decode(bytes.NewReader(res.Data))
	if err != nil {
		t.Fatalf("output not decodable png: %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Fatalf("small image was resized, width = %d", img.Bounds().Dx())
	}
}

func TestProcessImageResizesWideInput(t *testing.T) {
	tr := newTestTranscoder(20)
	data := encodePNG(t, 30, 10)

	res := tr.Process(context.Background(), data, "image/png")
	if !res.Compressed {
		t.Fatal("expected compressed result")
	}
	img, err := png.Decode(bytes.NewReader(res.Data))
	if err != nil {
		t.Fatalf("output not decodable png: %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Fatalf("output width = %d, want 20", img.Bounds().Dx())
	}
}

func TestProcessCorruptImagePassesThrough(t *testing.T) {
	tr := newTestTranscoder(1920)
	data := []byte("definitely not an image")

	res := tr.Process(context.Background(), data, "image/jpeg")
	if res.Compressed {
		t.Fatal("corrupt image must not be marked compressed")
	}
	if !bytes.Equal(res.Data, data) {
		t.Fatal("corrupt image must pass through unchanged")
	}
	if res.ContentType != "image/jpeg" {
		t.Fatalf("content type = %q, want original image/jpeg", res.ContentType)
	}
}

func TestProcessNonMediaPassesThrough(t *testing.T) {
	tr := newTestTranscoder(1920)
	data := []byte("%PDF-1.4 ...")

	res := tr.Process(context.Background(), data, "application/pdf")
	if res.Compressed || res.Poster != nil {
		t.Fatal("non-media input must pass through untouched")
	}
	if !bytes.Equal(res.Data, data) || res.ContentType != "application/pdf" {
		t.Fatal("non-media data or content type changed")
	}
}

func TestProcessVideoWithoutEncoderPassesThrough(t *testing.T) {
	tr := newTestTranscoder(1920)
	data := []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p'}

	res := tr.Process(context.Background(), data, "video/quicktime")
	if res.Compressed || res.Poster != nil {
		t.Fatal("video must pass through when encoder is unavailable")
	}
	if !bytes.Equal(res.Data, data) || res.ContentType != "video/quicktime" {
		t.Fatal("video data or content type changed")
	}
}
