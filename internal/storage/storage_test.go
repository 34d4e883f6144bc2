package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gnibdocs/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndParseKey(t *testing.T) {
	key := BuildKey("sess1", types.DocTypePassport, "doc1", "My Passport.PDF")
	assert.Equal(t, "uploads/sess1/passport/doc1.pdf", key)

	sessionID, docType, docID, ok := ParseKey(key)
	require.True(t, ok)
	assert.Equal(t, "sess1", sessionID)
	assert.Equal(t, types.DocTypePassport, docType)
	assert.Equal(t, "doc1", docID)

	_, _, _, ok = ParseKey("other/sess1/passport/doc1.pdf")
	assert.False(t, ok)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType("a.PDF", "application/octet-stream"))
	assert.Equal(t, "image/jpeg", ContentType("a.jpeg", ""))
	assert.Equal(t, "image/png", ContentType("a.png", ""))
	assert.Equal(t, "text/plain", ContentType("a.txt", "text/plain"))
	assert.Equal(t, "application/octet-stream", ContentType("a", ""))
}

type fakeS3 struct {
	put    *s3.PutObjectInput
	body   string
	delete *s3.DeleteObjectInput
	err    error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params
	b, _ := io.ReadAll(params.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.delete = params
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3StoragePutAndDelete(t *testing.T) {
	client := &fakeS3{}
	store := NewS3Storage(client, "bucket")

	err := store.Put(context.Background(), "uploads/s/passport/d.pdf", strings.NewReader("data"), 4, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "bucket", aws.ToString(client.put.Bucket))
	assert.Equal(t, "uploads/s/passport/d.pdf", aws.ToString(client.put.Key))
	assert.Equal(t, int64(4), aws.ToInt64(client.put.ContentLength))
	assert.Equal(t, "data", client.body)

	require.NoError(t, store.Delete(context.Background(), "uploads/s/passport/d.pdf"))
	assert.Equal(t, "uploads/s/passport/d.pdf", aws.ToString(client.delete.Key))
}

func TestS3StorageWrapsErrors(t *testing.T) {
	store := NewS3Storage(&fakeS3{err: errors.New("boom")}, "bucket")

	err := store.Put(context.Background(), "k", strings.NewReader(""), 0, "application/pdf")
	assert.ErrorContains(t, err, "put object k")
}

func TestSupabaseStoragePut(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewSupabaseStorage("project", "key", "docs")
	store.baseURL = srv.URL

	err := store.Put(context.Background(), "uploads/s/passport/d.pdf", strings.NewReader("pdf"), 3, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/object/docs/uploads/s/passport/d.pdf", gotPath)
	assert.Equal(t, "Bearer key", gotAuth)
	assert.Equal(t, "pdf", gotBody)
}

func TestSupabaseStorageDeleteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("denied"))
	}))
	defer srv.Close()

	store := NewSupabaseStorage("project", "key", "docs")
	store.baseURL = srv.URL

	err := store.Delete(context.Background(), "uploads/s/passport/d.pdf")
	assert.ErrorContains(t, err, "delete failed with status 403: denied")
}
