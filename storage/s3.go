package storage

import (
	"io"
	"net/http"
	"strings"

	"inkwell/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	BucketName string
	Prefix     string
	s3Client   *s3.S3
}

func NewS3Storage(bucketName, prefix string) StorageAPI {
	awsConfig := aws.NewConfig().WithRegion(config.S3_REGION)
	if config.S3_ACCESS_KEY != "" {
		awsConfig = awsConfig.WithCredentials(
			credentials.NewStaticCredentials(config.S3_ACCESS_KEY, config.S3_SECRET_KEY, ""))
	}
	return &S3Storage{
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
		s3Client:   s3.New(session.Must(session.NewSession(awsConfig))),
	}
}

func (s *S3Storage) getRemotePath(path string) string {
	if s.Prefix == "" {
		return path
	}
	return s.Prefix + "/" + path
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.BucketName,
		Key:    aws.String(s.getRemotePath(path)),
		Body:   reader,
	})
	// The S3 uploader doesn't report the size
	return 0, err
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.BucketName,
		Key:    aws.String(s.getRemotePath(path)),
	})
	if err != nil {
		http.NotFound(writer, request)
		return
	}
	defer resp.Body.Close()
	if resp.ContentType != nil {
		writer.Header().Set("Content-Type", *resp.ContentType)
	}
	_, _ = io.Copy(writer, resp.Body)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.BucketName,
		Key:    aws.String(s.getRemotePath(path)),
	})
	return err
}
