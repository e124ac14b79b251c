package media

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Oosh Mudgeeraba", "oosh-mudgeeraba"},
		{"A!! b__c", "a-b-c"},
		{"  trimmed  ", "trimmed"},
		{"already-fine", "already-fine"},
		{"---", "unknown"},
		{"", "unknown"},
		{"日本語のみ", "unknown"},
		{"MiXeD Case 42", "mixed-case-42"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Slugify(long)
	if len(got) != 80 {
		t.Fatalf("Slugify long input length = %d, want 80", len(got))
	}
}

func TestMakeKeyShape(t *testing.T) {
	key := MakeKey("Oosh Mudgeeraba", "The Rockets", "hw-123", "My Video.MP4")

	parts := strings.Split(key, "/")
	if len(parts) != 8 {
		t.Fatalf("key %q has %d segments, want 8", key, len(parts))
	}
	if parts[0] != "school" {
		t.Errorf("segment 0 = %q, want school", parts[0])
	}
	if parts[1] != "oosh-mudgeeraba" {
		t.Errorf("school slug = %q", parts[1])
	}
	if len(parts[2]) != 4 || len(parts[3]) != 2 {
		t.Errorf("date segments = %q/%q, want YYYY/MM", parts[2], parts[3])
	}
	if parts[5] != "the-rockets" {
		t.Errorf("group slug = %q", parts[5])
	}
	if parts[6] != "hw-123" {
		t.Errorf("homework id segment = %q", parts[6])
	}
	// 两处时间戳取自同一时刻
	if want := parts[4] + "-my-video-mp4"; parts[7] != want {
		t.Errorf("filename segment = %q, want %q", parts[7], want)
	}
}

func TestPosterKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"school/x/video.mp4", "school/x/video.png"},
		{"school/x/video.tar.gz", "school/x/video.tar.png"},
		{"school/x/noext", "school/x/noext.png"},
		{"clip.MOV", "clip.png"},
	}
	for _, c := range cases {
		if got := PosterKey(c.in); got != c.want {
			t.Errorf("PosterKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPosterURLKeepsQuery(t *testing.T) {
	got := PosterURL("https://b.s3.ap-southeast-2.amazonaws.com/a/v.mp4?sig=abc")
	want := "https://b.s3.ap-southeast-2.amazonaws.com/a/v.png?sig=abc"
	if got != want {
		t.Fatalf("PosterURL = %q, want %q", got, want)
	}
}

func TestPosterURLMatchesPosterKey(t *testing.T) {
	videoURL := "https://b.s3.us-east-1.amazonaws.com/school/s/v.mp4"
	_, key, ok := ParseS3URL(videoURL)
	if !ok {
		t.Fatal("ParseS3URL failed")
	}
	_, posterKey, ok := ParseS3URL(PosterURL(videoURL))
	if !ok {
		t.Fatal("ParseS3URL on poster url failed")
	}
	if posterKey != PosterKey(key) {
		t.Fatalf("poster url key %q != PosterKey %q", posterKey, PosterKey(key))
	}
}

func TestParseS3URL(t *testing.T) {
	bucket, key, ok := ParseS3URL("https://my-bucket.s3.ap-southeast-2.amazonaws.com/school/a/b.mp4")
	if !ok || bucket != "my-bucket" || key != "school/a/b.mp4" {
		t.Fatalf("got %q %q %v", bucket, key, ok)
	}

	bucket, key, ok = ParseS3URL("https://my-bucket.s3-us-west-2.amazonaws.com/k.mp4")
	if !ok || bucket != "my-bucket" || key != "k.mp4" {
		t.Fatalf("legacy style: got %q %q %v", bucket, key, ok)
	}

	for _, bad := range []string{
		"https://example.com/a/b.mp4",
		"https://s3.amazonaws.com/",
		"not a url at all\x7f",
		"",
	} {
		if _, _, ok := ParseS3URL(bad); ok {
			t.Errorf("ParseS3URL(%q) unexpectedly ok", bad)
		}
	}
}
