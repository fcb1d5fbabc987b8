package imagestore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixed = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

func clock() time.Time { return fixed }

func TestFileName(t *testing.T) {
	assert.Equal(t, "pest_42_20240309_140507.png", FileName(42, fixed))
}

func TestLocalSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	name, err := NewLocal(dir, clock).Save(context.Background(), 7, []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	assert.Equal(t, "pest_7_20240309_140507.png", name)

	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b)
}

func TestLocalSaveUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err := NewLocal(file, clock).Save(context.Background(), 1, []byte("x"))
	assert.Error(t, err)
}

type putMock struct {
	in  *s3.PutObjectInput
	err error
}

func (m *putMock) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.in = in
	return &s3.PutObjectOutput{}, m.err
}

func TestS3Save(t *testing.T) {
	m := &putMock{}
	name, err := NewS3WithClient(m, "farm-images", "pest/", clock).Save(context.Background(), 3, []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "pest_3_20240309_140507.png", name)

	require.NotNil(t, m.in)
	assert.Equal(t, "farm-images", aws.ToString(m.in.Bucket))
	assert.Equal(t, "pest/pest_3_20240309_140507.png", aws.ToString(m.in.Key))
	assert.Equal(t, int64(3), aws.ToInt64(m.in.ContentLength))
	body, err := io.ReadAll(m.in.Body)
	require.NoError(t, err)
	assert.Equal(t, "img", string(body))
}

func TestS3SaveError(t *testing.T) {
	m := &putMock{err: errors.New("AccessDenied")}
	_, err := NewS3WithClient(m, "b", "", clock).Save(context.Background(), 3, []byte("img"))
	assert.ErrorContains(t, err, "AccessDenied")
}

func TestNewS3NeedsBucket(t *testing.T) {
	_, err := NewS3(context.Background(), "", "pest/")
	assert.ErrorContains(t, err, "S3_BUCKET")
}
