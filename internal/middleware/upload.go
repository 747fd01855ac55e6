package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/InkwellLabs/inkwell-backend/internal/utils"
	"github.com/InkwellLabs/inkwell-backend/internal/web"
)

// MaxUploadSize is the ceiling for a single uploaded file.
const MaxUploadSize = 10 << 20 // 10 MiB

// formOverhead leaves room for the non-file fields and multipart framing on
// top of the file ceiling.
const formOverhead = 512 << 10

// Upload buffers at most one multipart file (under the given field name)
// fully into memory and attaches it to the request context. Non-multipart
// requests and multipart requests without a file pass through untouched;
// whether a file is required is the handler's call. Only the declared MIME
// type is checked, the bytes themselves are not sniffed for image-ness.
func Upload(field string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+formOverhead)
			if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					web.Error(w, http.StatusBadRequest, "File too large")
					return
				}
				web.Error(w, http.StatusBadRequest, "Invalid multipart form")
				return
			}

			file, header, err := r.FormFile(field)
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) {
					next.ServeHTTP(w, r)
					return
				}
				web.Error(w, http.StatusBadRequest, "Invalid multipart form")
				return
			}
			defer file.Close()

			if header.Size > MaxUploadSize {
				web.Error(w, http.StatusBadRequest, "File too large")
				return
			}

			contentType := header.Header.Get("Content-Type")
			if !strings.HasPrefix(contentType, "image/") {
				web.Error(w, http.StatusBadRequest, "Only image files are allowed")
				return
			}

			data, err := io.ReadAll(file)
			if err != nil {
				web.Error(w, http.StatusBadRequest, "Invalid multipart form")
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextFileKey, &utils.UploadedFile{
				Data:        data,
				Filename:    header.Filename,
				ContentType: contentType,
				Size:        header.Size,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
