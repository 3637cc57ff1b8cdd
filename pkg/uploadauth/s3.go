package uploadauth

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Signer hands the browser a presigned PUT URL so media goes straight
// to the bucket without passing through this server.
type S3Signer struct {
	Region string
	Bucket string
	TTL    time.Duration
}

func (s *S3Signer) Sign() (*Credentials, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(s.Region),
	})
	if err != nil {
		return nil, err
	}

	key := "video/" + uuid.New().String()
	req, _ := s3.New(sess).PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})

	uploadURL, err := req.Presign(s.TTL)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		UploadURL: uploadURL,
		Key:       key,
		Expire:    time.Now().Add(s.TTL).Unix(),
	}, nil
}
