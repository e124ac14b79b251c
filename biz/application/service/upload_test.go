package service

import "testing"

func TestExtForContentType(t *testing.T) {
	cases := []struct {
		ct   string
		want string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/webp", ".webp"},
		{"video/mp4", ".mp4"},
		{"application/pdf", ""},
	}
	for _, c := range cases {
		if got := extForContentType(c.ct); got != c.want {
			t.Errorf("extForContentType(%q) = %q, want %q", c.ct, got, c.want)
		}
	}
}

func TestReplaceExt(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		want string
	}{
		{"clip.mov", ".mp4", "clip.mp4"},
		{"photo", ".jpg", "photo.jpg"},
		{"archive.tar.gz", ".webp", "archive.tar.webp"},
		{"keep.png", "", "keep.png"},
	}
	for _, c := range cases {
		if got := replaceExt(c.name, c.ext); got != c.want {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", c.name, c.ext, got, c.want)
		}
	}
}
