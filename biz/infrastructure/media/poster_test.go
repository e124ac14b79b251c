package media

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeStore struct {
	exists    map[string]bool
	headErr   error
	headCalls int
	downloads int
	uploads   int
}

func (f *fakeStore) Head(ctx context.Context, bucket, key string) (bool, error) {
	f.headCalls++
	if f.headErr != nil {
		return false, f.headErr
	}
	return f.exists[key], nil
}

func (f *fakeStore) Download(ctx context.Context, bucket, key, destPath string) error {
	f.downloads++
	return errors.New("no backend in test")
}

func (f *fakeStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	f.uploads++
	return nil
}

const testVideoURL = "https://bucket.s3.ap-southeast-2.amazonaws.com/school/a/b.mp4"

func TestEnsurePostersKnownPosterSkipsStore(t *testing.T) {
	store := &fakeStore{}
	cache := NewPosterCache(store, &FFmpeg{})

	existing := []string{PosterURL(testVideoURL)}
	got := cache.EnsurePosters(context.Background(), []string{testVideoURL}, existing)

	if store.headCalls != 0 || store.downloads != 0 || store.uploads != 0 {
		t.Fatalf("store touched for already-known poster: %+v", store)
	}
	if !reflect.DeepEqual(got, existing) {
		t.Fatalf("got %v, want existing set %v", got, existing)
	}
}

func TestEnsurePostersHeadHit(t *testing.T) {
	store := &fakeStore{exists: map[string]bool{"school/a/b.png": true}}
	cache := NewPosterCache(store, &FFmpeg{})

	got := cache.EnsurePosters(context.Background(), []string{testVideoURL}, nil)

	want := []string{PosterURL(testVideoURL)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if store.headCalls != 1 || store.downloads != 0 || store.uploads != 0 {
		t.Fatalf("unexpected store calls: %+v", store)
	}
}

func TestEnsurePostersHeadErrorSkipsVideo(t *testing.T) {
	store := &fakeStore{headErr: errors.New("access denied")}
	cache := NewPosterCache(store, &FFmpeg{})

	existing := []string{"https://bucket.s3.ap-southeast-2.amazonaws.com/other.png"}
	got := cache.EnsurePosters(context.Background(), []string{testVideoURL}, existing)

	if !reflect.DeepEqual(got, existing) {
		t.Fatalf("head failure must leave existing set unchanged, got %v", got)
	}
	if store.downloads != 0 || store.uploads != 0 {
		t.Fatalf("generation attempted after head failure: %+v", store)
	}
}

func TestEnsurePostersEncoderUnavailableSkipsVideo(t *testing.T) {
	store := &fakeStore{}
	cache := NewPosterCache(store, &FFmpeg{})

	got := cache.EnsurePosters(context.Background(), []string{testVideoURL}, nil)

	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
	if store.downloads != 0 {
		t.Fatal("download attempted without encoder")
	}
}

func TestEnsurePostersIgnoresUnparseableURLs(t *testing.T) {
	store := &fakeStore{}
	cache := NewPosterCache(store, &FFmpeg{})

	got := cache.EnsurePosters(context.Background(),
		[]string{"https://example.com/v.mp4", "", "   "}, nil)

	if len(got) != 0 || store.headCalls != 0 {
		t.Fatalf("non-s3 urls must be skipped entirely, got %v calls %+v", got, store)
	}
}

func TestEnsurePostersIdempotent(t *testing.T) {
	store := &fakeStore{exists: map[string]bool{"school/a/b.png": true}}
	cache := NewPosterCache(store, &FFmpeg{})

	first := cache.EnsurePosters(context.Background(), []string{testVideoURL, testVideoURL}, nil)
	second := cache.EnsurePosters(context.Background(), []string{testVideoURL}, first)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second run changed result: %v vs %v", first, second)
	}
	if store.headCalls != 1 {
		t.Fatalf("head called %d times, want 1", store.headCalls)
	}
}
