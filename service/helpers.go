package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/liber/data"
	"github.com/gabriel-vasile/mimetype"
)

// detectMimeType detects the content type of a multipart file. The whole file
// is buffered first because the multipart stream can only be read once.
func (s *service) detectMimeType(file multipart.File, fileHeader *multipart.FileHeader) ([]byte, *mimetype.MIME, error) {
	size := fileHeader.Size
	buffer := make([]byte, size)
	_, err := file.Read(buffer)
	if err != nil {
		return nil, nil, err
	}
	mtype := mimetype.Detect(buffer)
	return buffer, mtype, nil
}

// uploadFileToS3 saves a form file to the aws bucket and returns the public
// URL of the uploaded object or an error if any.
func (s *service) uploadFileToS3(client *s3.Client, buffer []byte, mtype *mimetype.MIME, fileHeader *multipart.FileHeader, scope string) (string, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}
	var uniqueFileName string
	uploader := manager.NewUploader(client)
	switch scope {
	case data.ScopeCover:
		uniqueFileName = "bookcovers/" + strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)) + filepath.Ext(fileHeader.Filename)
		_, err = uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:        aws.String(s.config.S3.Bucket),
			Key:           aws.String(uniqueFileName),
			Body:          bytes.NewReader(buffer),
			ContentLength: *aws.Int64(fileHeader.Size),
			ContentType:   aws.String(mtype.String()),
		})
		uniqueFileName = "https://" + s.config.S3.Bucket + ".s3." + s.config.S3.Region + ".amazonaws.com/" + uniqueFileName
	}
	if err != nil {
		return "", err
	}
	return uniqueFileName, nil
}

// today returns the current calendar date according to the service clock.
func (s *service) today() data.Date {
	return data.NewDate(s.clock.Now())
}

// overdueThreshold returns the borrow date before which an outstanding loan
// counts as overdue. A loan borrowed on the threshold date itself is due
// today and not yet overdue.
func (s *service) overdueThreshold() data.Date {
	return s.today().AddDays(-s.config.Loan.DueDays)
}

// background launches a background goroutine and recovers from panics inside
// the goroutine. It accepts an arbitrary function as a parameter and executes
// the function parameter inside the goroutine.
func (s *service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.logger.PrintError(fmt.Errorf("%s", err), nil)
			}
		}()
		fn()
	}()
}
