package storage

import "testing"

func TestExtractKey(t *testing.T) {
	c := &S3Client{bucket: "homework-media"}

	cases := []struct {
		in   string
		want string
	}{
		{"https://homework-media.s3.ap-southeast-2.amazonaws.com/school/a/b.jpg", "school/a/b.jpg"},
		{"https://s3.ap-southeast-2.amazonaws.com/homework-media/school/a/b.jpg", "homework-media/school/a/b.jpg"},
		{"school/a/b.jpg", "school/a/b.jpg"},
		{"https://cdn.example.com/homework-media/school/a/b.jpg", "school/a/b.jpg"},
		{"https://other.example.com/x.jpg", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := c.ExtractKey(tc.in); got != tc.want {
			t.Errorf("ExtractKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
