package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/fathima-sithara/media-gallery/internal/handlers"
	"github.com/fathima-sithara/media-gallery/internal/middleware"
	"github.com/fathima-sithara/media-gallery/internal/repository"
	"github.com/fathima-sithara/media-gallery/internal/routes"
	"github.com/fathima-sithara/media-gallery/internal/services"
	"github.com/fathima-sithara/media-gallery/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type testEnv struct {
	app       *fiber.App
	store     *storage.DiskStore
	paintings *repository.MemoryPaintingRepo
	audios    *repository.MemoryAudioRepo
	videos    *repository.MemoryDanceVideoRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	logger := zap.NewNop().Sugar()

	env := &testEnv{
		store:     store,
		paintings: repository.NewMemoryPaintingRepo(),
		audios:    repository.NewMemoryAudioRepo(),
		videos:    repository.NewMemoryDanceVideoRepo(),
	}

	app := fiber.New(fiber.Config{
		Views: handlers.NewViewEngine("../../web/views"),
	})
	app.Use(middleware.MethodOverride())
	routes.Setup(app,
		handlers.NewPageHandler(),
		handlers.NewPaintingHandler(services.NewPaintingService(env.paintings, store), logger),
		handlers.NewMusicHandler(services.NewAudioService(env.audios, store), logger),
		handlers.NewDanceHandler(services.NewDanceVideoService(env.videos, store), logger),
	)
	env.app = app
	return env
}

func uploadRequest(t *testing.T, target, field, filename, contentType string, data []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestStaticPagesRender(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/", "/signup", "/signin", "/upload", "/upload-paint", "/upload-music", "/upload-dance"} {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestDanceShortcutRedirects(t *testing.T) {
	env := newTestEnv(t)
	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/dance", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dance-videos", resp.Header.Get("Location"))
}

func TestEmptyListsRender(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/paintings", "/music", "/dance-videos"} {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "empty list renders a page, not an error")
	}
}

func TestPaintingUploadFlow(t *testing.T) {
	env := newTestEnv(t)

	content := []byte("png payload")
	req := uploadRequest(t, "/paintings", "image", "sunset.png", "image/png", content,
		map[string]string{"name": "Sunset", "desc": "Evening sky"})
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/paintings", resp.Header.Get("Location"))

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/paintings", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), "Sunset")

	items, err := env.paintings.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "image/png", items[0].Image.ContentType)
	assert.Equal(t, content, items[0].Image.Data)
}

func TestUnsupportedAudioLeavesLibraryUnchanged(t *testing.T) {
	env := newTestEnv(t)

	req := uploadRequest(t, "/music", "file", "t.wav", "audio/wav", []byte("RIFF"),
		map[string]string{"title": "Bad"})
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	items, err := env.audios.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMusicUploadDetailAndDelete(t *testing.T) {
	env := newTestEnv(t)

	req := uploadRequest(t, "/music", "file", "track.mp3", "audio/mpeg", []byte("mp3 data"),
		map[string]string{"title": "Night Drive", "artist": "Neon", "tags": "synth,retro"})
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/music", resp.Header.Get("Location"))

	items, err := env.audios.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	id := items[0].ID.Hex()

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/music/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), "Night Drive")

	resp, err = env.app.Test(httptest.NewRequest(http.MethodDelete, "/music/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/music/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDanceUploadKeepsFileAfterDelete(t *testing.T) {
	env := newTestEnv(t)

	req := uploadRequest(t, "/dance-videos", "file", "routine.mp4", "video/mp4", []byte("mp4 data"),
		map[string]string{"title": "Routine", "description": "Studio session"})
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dance-videos", resp.Header.Get("Location"))

	items, err := env.videos.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].FileURL, "/uploads/file-")

	resp, err = env.app.Test(httptest.NewRequest(http.MethodDelete, "/dance-videos/"+items[0].ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	// record gone, file still staged
	items, err = env.videos.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteMissingPaintingIs404(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodDelete, "/paintings/"+primitive.NewObjectID().Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodDelete, "/paintings/not-a-hex-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDetailMissingIs404(t *testing.T) {
	env := newTestEnv(t)
	for _, prefix := range []string{"/paintings/", "/music/", "/dance-videos/"} {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, prefix+primitive.NewObjectID().Hex(), nil))
		require.NoError(t, err, prefix)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, prefix)
	}
}

func TestMethodOverrideDeletesViaForm(t *testing.T) {
	env := newTestEnv(t)

	req := uploadRequest(t, "/paintings", "image", "a.gif", "image/gif", []byte("GIF89a"),
		map[string]string{"name": "A"})
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	items, err := env.paintings.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	// HTML form delete: POST with ?_method=DELETE
	resp, err = env.app.Test(httptest.NewRequest(http.MethodPost, "/paintings/"+items[0].ID.Hex()+"?_method=DELETE", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	items, err = env.paintings.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListCountMatchesCreates(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		req := uploadRequest(t, "/paintings", "image", fmt.Sprintf("p%d.png", i), "image/png", []byte{byte(i)},
			map[string]string{"name": fmt.Sprintf("P%d", i)})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusFound, resp.StatusCode)
	}

	items, err := env.paintings.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/paintings/"+item.ID.Hex(), nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "each created record is retrievable by its key")
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", bodyOf(t, resp))
}
