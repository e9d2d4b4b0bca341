package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(Field, name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File[Field][0]
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads") // Not yet created; Save must make it

	url, err := Save(fileHeader(t, "photo.jpg", "fake image data"), dir)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("PublicPath", func(t *testing.T) {
		if !strings.HasPrefix(url, PublicPrefix+"/") {
			t.Errorf("url %q must start with %q", url, PublicPrefix+"/")
		}
		if !strings.HasSuffix(url, ".jpg") {
			t.Errorf("url %q must keep the original extension", url)
		}
	})

	t.Run("FileContent", func(t *testing.T) {
		name := strings.TrimPrefix(url, PublicPrefix+"/")
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "fake image data" {
			t.Errorf("stored content = %q", b)
		}
	})
}

func TestSaveNoExtension(t *testing.T) {
	dir := t.TempDir()
	url, err := Save(fileHeader(t, "photo", "x"), dir)
	if err != nil {
		t.Fatal(err)
	}
	name := strings.TrimPrefix(url, PublicPrefix+"/")
	if name == "" || strings.Contains(name, ".") {
		t.Errorf("extensionless upload produced name %q", name)
	}
}
