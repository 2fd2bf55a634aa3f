package util

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader собирает multipart.FileHeader так же, как его собирает
// http-сервер при разборе формы
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestFileStore_Save_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := NewFileStore(dir, 1<<20)
	require.NoError(t, err)

	content := []byte("fake-jpeg-bytes")
	header := makeFileHeader(t, "sofa.jpg", "image/jpeg", content)

	// Act
	name, err := store.Save(header)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	saved, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestFileStore_Save_UniqueNames(t *testing.T) {
	// Arrange
	store, err := NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	header := makeFileHeader(t, "sofa.png", "image/png", []byte("png"))

	// Act
	name1, err1 := store.Save(header)
	name2, err2 := store.Save(header)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, name1, name2)
}

func TestFileStore_Save_ExtensionFromContentType(t *testing.T) {
	// Arrange - расширение в имени не из списка разрешенных,
	// берется расширение по MIME-типу
	store, err := NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	header := makeFileHeader(t, "photo.bin", "image/webp", []byte("webp"))

	// Act
	name, err := store.Save(header)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".webp"))
}

func TestFileStore_Save_UnsupportedType(t *testing.T) {
	// Arrange
	store, err := NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	header := makeFileHeader(t, "report.pdf", "application/pdf", []byte("%PDF"))

	// Act
	name, err := store.Save(header)

	// Assert
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
	assert.Empty(t, name)
}

func TestFileStore_Save_FileTooLarge(t *testing.T) {
	// Arrange
	store, err := NewFileStore(t.TempDir(), 4)
	require.NoError(t, err)

	header := makeFileHeader(t, "big.jpg", "image/jpeg", []byte("more-than-four-bytes"))

	// Act
	name, err := store.Save(header)

	// Assert
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, name)
}

func TestFileStore_Remove_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := NewFileStore(dir, 1<<20)
	require.NoError(t, err)

	name, err := store.Save(makeFileHeader(t, "sofa.jpg", "image/jpeg", []byte("img")))
	require.NoError(t, err)

	// Act
	err = store.Remove(name)

	// Assert
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStore_Remove_MissingFileIsNotError(t *testing.T) {
	// Arrange
	store, err := NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	// Act
	err = store.Remove("no-such-file.jpg")

	// Assert
	assert.NoError(t, err)
}

func TestFileStore_Remove_RejectsPathTraversal(t *testing.T) {
	// Arrange
	store, err := NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	// Act
	err = store.Remove("../etc/passwd")

	// Assert
	assert.Error(t, err)
}

func TestFileStore_List(t *testing.T) {
	// Arrange
	store, err := NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	name1, err := store.Save(makeFileHeader(t, "a.jpg", "image/jpeg", []byte("a")))
	require.NoError(t, err)
	name2, err := store.Save(makeFileHeader(t, "b.png", "image/png", []byte("b")))
	require.NoError(t, err)

	// Act
	files, err := store.List()

	// Assert
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Contains(t, files, name1)
	assert.Contains(t, files, name2)
}
