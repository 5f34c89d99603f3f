package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	err     error
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string][]byte{}} }

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("no such key")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3_Contract(t *testing.T) {
	f := newFakeS3()
	runStoreContract(t, &S3{client: f, bucket: "vault"})
	_, ok := f.objects["vault/items/empty"]
	assert.True(t, ok)
}

func TestS3_BackendErrorsAreWrapped(t *testing.T) {
	s := &S3{client: &fakeS3{objects: map[string][]byte{}, err: errors.New("503")}, bucket: "vault"}
	ctx := context.Background()

	err := s.Write(ctx, "k", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3 put k")

	_, err = s.Read(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	err = s.Remove(ctx, "k")
	assert.Contains(t, err.Error(), "s3 delete k")
}

func TestS3_RejectsEscapingKeys(t *testing.T) {
	f := newFakeS3()
	f.objects["vault/x"] = []byte("outside")
	s := &S3{client: f, bucket: "vault"}
	ctx := context.Background()

	for _, key := range []string{"", "/etc/passwd", "../x", "items/../../x", "items/./x"} {
		assert.Error(t, s.Write(ctx, key, []byte("x")), "key %q", key)
		_, err := s.Read(ctx, key)
		assert.Error(t, err, "key %q", key)
		assert.Error(t, s.Remove(ctx, key), "key %q", key)
	}
	assert.Equal(t, []byte("outside"), f.objects["vault/x"])
}

func TestNewS3_UsesConfigAndEndpoint(t *testing.T) {
	oldLoad, oldNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = oldLoad, oldNew })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		var lo config.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{Region: lo.Region}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		for _, fn := range optFns {
			fn(&opts)
		}
		return newFakeS3()
	}

	s, err := NewS3(context.Background(), S3Config{Region: "us-east-1", Bucket: "vault", BaseEndpoint: "http://127.0.0.1:9000/"})
	require.NoError(t, err)
	assert.Equal(t, "vault", s.bucket)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000/", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3_Errors(t *testing.T) {
	_, err := NewS3(context.Background(), S3Config{})
	assert.Error(t, err)

	oldLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = oldLoad })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err = NewS3(context.Background(), S3Config{Bucket: "b"})
	assert.ErrorContains(t, err, "no config")
}
