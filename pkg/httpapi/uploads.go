package httpapi

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
)

// uploadResponse mirrors the storage endpoint's payload:
// {"files": {"<fieldKey>": {"fileUrl": ..., "fileName": ...}}}.
type uploadResponse struct {
	Files map[string]struct {
		FileURL  string `json:"fileUrl"`
		FileName string `json:"fileName"`
	} `json:"files"`
}

// Uploader sends file contents to POST /upload as multipart form data and
// returns the persisted reference. It satisfies crud.Uploader.
type Uploader struct {
	client  *Client
	path    string
	maxSize int64
}

func NewUploader(client *Client, path string, maxSize int64) *Uploader {
	if path == "" {
		path = "/upload"
	}
	return &Uploader{client: client, path: path, maxSize: maxSize}
}

func (u *Uploader) Upload(ctx context.Context, field, fileName string, r io.Reader) (crud.FileRef, error) {
	var ref crud.FileRef

	// A non-positive maxSize means no local limit.
	src := r
	if u.maxSize > 0 {
		src = io.LimitReader(r, u.maxSize+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return ref, errors.Wrapf(err, "httpapi: reading %q", fileName)
	}
	if u.maxSize > 0 && int64(len(data)) > u.maxSize {
		return ref, errors.Errorf("httpapi: %q exceeds the %d byte upload limit", fileName, u.maxSize)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", mimetype.Detect(data).String())
	part, err := writer.CreatePart(header)
	if err != nil {
		return ref, errors.Wrap(err, "httpapi: building multipart body")
	}
	if _, err := part.Write(data); err != nil {
		return ref, errors.Wrap(err, "httpapi: building multipart body")
	}
	if err := writer.WriteField("upload_id", uuid.NewString()); err != nil {
		return ref, errors.Wrap(err, "httpapi: building multipart body")
	}
	if err := writer.Close(); err != nil {
		return ref, errors.Wrap(err, "httpapi: building multipart body")
	}

	var resp uploadResponse
	if err := u.client.do(ctx, http.MethodPost, u.path, writer.FormDataContentType(), body, &resp); err != nil {
		return ref, err
	}

	file, ok := resp.Files[field]
	if !ok || file.FileURL == "" {
		return ref, errors.Errorf("httpapi: upload response is missing a URL for %q", field)
	}
	ref.URL = u.client.ResolveFileURL(file.FileURL)
	ref.Name = file.FileName
	if ref.Name == "" {
		ref.Name = fileName
	}
	return ref, nil
}
