package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectClient struct {
	putInput    *s3.PutObjectInput
	putBody     string
	putErr      error
	deleteInput *s3.DeleteObjectInput
	deleteErr   error
}

func (f *fakeObjectClient) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = params
	if params.Body != nil {
		b, _ := io.ReadAll(params.Body)
		f.putBody = string(b)
	}
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectClient) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInput = params
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	input *s3.GetObjectInput
	url   string
	err   error
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: f.url}, nil
}

func TestUploadSendsBucketKeyAndContentType(t *testing.T) {
	client := &fakeObjectClient{}
	store := NewDocumentStoreWithClient(client, &fakePresigner{}, "lexsuite-docs")

	err := store.Upload(context.Background(), "u1/abc.pdf", "application/pdf", strings.NewReader("contract body"), 13)
	require.NoError(t, err)

	require.NotNil(t, client.putInput)
	assert.Equal(t, "lexsuite-docs", *client.putInput.Bucket)
	assert.Equal(t, "u1/abc.pdf", *client.putInput.Key)
	assert.Equal(t, "application/pdf", *client.putInput.ContentType)
	assert.Equal(t, int64(13), *client.putInput.ContentLength)
	assert.Equal(t, "contract body", client.putBody)
}

func TestUploadWrapsClientError(t *testing.T) {
	client := &fakeObjectClient{putErr: errors.New("access denied")}
	store := NewDocumentStoreWithClient(client, &fakePresigner{}, "lexsuite-docs")

	err := store.Upload(context.Background(), "u1/abc.pdf", "application/pdf", strings.NewReader("x"), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "u1/abc.pdf")
	assert.Contains(t, err.Error(), "access denied")
}

func TestPresignDownloadReturnsURL(t *testing.T) {
	presigner := &fakePresigner{url: "https://s3.example.test/lexsuite-docs/u1/abc.pdf?X-Amz-Signature=sig"}
	store := NewDocumentStoreWithClient(&fakeObjectClient{}, presigner, "lexsuite-docs")

	url, err := store.PresignDownload(context.Background(), "u1/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, presigner.url, url)

	require.NotNil(t, presigner.input)
	assert.Equal(t, "lexsuite-docs", *presigner.input.Bucket)
	assert.Equal(t, "u1/abc.pdf", *presigner.input.Key)
}

func TestDeleteRemovesObject(t *testing.T) {
	client := &fakeObjectClient{}
	store := NewDocumentStoreWithClient(client, &fakePresigner{}, "lexsuite-docs")

	require.NoError(t, store.Delete(context.Background(), "u1/abc.pdf"))
	require.NotNil(t, client.deleteInput)
	assert.Equal(t, "lexsuite-docs", *client.deleteInput.Bucket)
	assert.Equal(t, "u1/abc.pdf", *client.deleteInput.Key)
}
